package transport

import (
	"encoding/json"
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

func newContentRouter(t *testing.T) chi.Router {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	handler := NewContentHandler(service.NewContentService(store.NewSiteContentStore()), logger)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestUpdateContentCreatesMissingKey(t *testing.T) {
	r := newContentRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/site-content/hero_title", UpdateContentRequest{
		Value: "Premium Gifts",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created domain.SiteContent
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "hero_title", created.Key)
	assert.Equal(t, "Premium Gifts", created.Value)

	w = doJSON(t, r, http.MethodGet, "/api/site-content/hero_title", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateContentRequiresValue(t *testing.T) {
	r := newContentRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/site-content/hero_title", UpdateContentRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetContentNotFound(t *testing.T) {
	r := newContentRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/site-content/missing_key", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListContent(t *testing.T) {
	r := newContentRouter(t)

	for _, key := range []string{"site_title", "footer_text"} {
		w := doJSON(t, r, http.MethodPut, "/api/site-content/"+key, UpdateContentRequest{Value: "v"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/site-content", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var content []domain.SiteContent
	require.NoError(t, json.NewDecoder(w.Body).Decode(&content))
	assert.Len(t, content, 2)
}
