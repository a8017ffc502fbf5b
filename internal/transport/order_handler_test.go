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

func newOrderRouter(t *testing.T) chi.Router {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	handler := NewOrderHandler(service.NewOrderService(store.NewOrderStore()), logger)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func orderPayload() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerName:    "Rahim Uddin",
		CustomerPhone:   "01712345678",
		CustomerAddress: "House 12, Road 5, Dhanmondi, Dhaka",
		Items: []OrderItemRequest{
			{ProductID: 1, Name: "Classic Mug", Price: 30000, Quantity: 2},
		},
		TotalAmount: 60000,
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	r := newOrderRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "TN000001", created.OrderID)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
	assert.Equal(t, domain.PaymentStatusAdvance, created.PaymentStatus)
	assert.Equal(t, domain.DefaultAdvancePaid, created.AdvancePaid)
}

func TestCreateOrderSerializesItemsAsProducts(t *testing.T) {
	r := newOrderRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	assert.Contains(t, raw, "products")
	assert.Contains(t, raw, "orderId")
	assert.NotContains(t, raw, "items")
}

func TestCreateOrderValidation(t *testing.T) {
	r := newOrderRouter(t)

	payload := orderPayload()
	payload.CustomerPhone = ""
	payload.TotalAmount = 0

	w := doJSON(t, r, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsUnknownStatus(t *testing.T) {
	r := newOrderRouter(t)

	payload := orderPayload()
	payload.Status = "cancelled"

	w := doJSON(t, r, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackOrderEndpoint(t *testing.T) {
	r := newOrderRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders/track/TN000001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tracked domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&tracked))
	assert.Equal(t, "Rahim Uddin", tracked.CustomerName)

	w = doJSON(t, r, http.MethodGet, "/api/orders/track/TN999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderPartialOverHTTP(t *testing.T) {
	r := newOrderRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	status := domain.OrderStatusConfirmed
	payment := domain.PaymentStatusFull
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/orders/%d", created.ID), UpdateOrderRequest{
		Status:        &status,
		PaymentStatus: &payment,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, domain.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, domain.PaymentStatusFull, updated.PaymentStatus)
	assert.Equal(t, created.OrderID, updated.OrderID)
	assert.Equal(t, created.CustomerName, updated.CustomerName)
	assert.Equal(t, created.TotalAmount, updated.TotalAmount)
}

func TestUpdateMissingOrderOverHTTP(t *testing.T) {
	r := newOrderRouter(t)

	status := domain.OrderStatusShipped
	w := doJSON(t, r, http.MethodPut, "/api/orders/99", UpdateOrderRequest{Status: &status})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersNewestFirstOverHTTP(t *testing.T) {
	r := newOrderRouter(t)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/orders", orderPayload())
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	require.Len(t, orders, 3)
	assert.Equal(t, "TN000003", orders[0].OrderID)
	assert.Equal(t, "TN000001", orders[2].OrderID)
}
