package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"trynex-storefront/internal/domain"
	"trynex-storefront/internal/service"
	"trynex-storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPromoRouter(t *testing.T) chi.Router {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	handler := NewPromoHandler(service.NewPromoService(store.NewPromoCodeStore()), logger)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func promoPayload() CreatePromoCodeRequest {
	return CreatePromoCodeRequest{
		Code:          "WELCOME10",
		Description:   "10% off your first order",
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 10,
	}
}

func TestCreatePromoCodeEndpoint(t *testing.T) {
	r := newPromoRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/promo-codes", promoPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.PromoCode
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "WELCOME10", created.Code)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.CurrentUses)
}

func TestCreateDuplicatePromoCode(t *testing.T) {
	r := newPromoRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/promo-codes", promoPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/promo-codes", promoPayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePromoCodeRejectsUnknownDiscountType(t *testing.T) {
	r := newPromoRouter(t)

	payload := promoPayload()
	payload.DiscountType = "bogo"

	w := doJSON(t, r, http.MethodPost, "/api/promo-codes", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPromoCodeByCodeEndpoint(t *testing.T) {
	r := newPromoRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/promo-codes", promoPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/promo-codes/WELCOME10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.PromoCode
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "WELCOME10", got.Code)

	w = doJSON(t, r, http.MethodGet, "/api/promo-codes/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePromoCodeEndpoint(t *testing.T) {
	r := newPromoRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/promo-codes", promoPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.PromoCode
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	inactive := false
	uses := 3
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/promo-codes/%d", created.ID), UpdatePromoCodeRequest{
		IsActive:    &inactive,
		CurrentUses: &uses,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated domain.PromoCode
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.False(t, updated.IsActive)
	assert.Equal(t, 3, updated.CurrentUses)
	assert.Equal(t, created.Code, updated.Code)
}

func TestDeletePromoCodeEndpoint(t *testing.T) {
	r := newPromoRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/promo-codes", promoPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.PromoCode
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	path := fmt.Sprintf("/api/promo-codes/%d", created.ID)

	w = doJSON(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
