package transport

import (
	"errors"
	"net/http"

	"trynex-storefront/internal/middleware"
	"trynex-storefront/internal/service"
	"trynex-storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpdateContentRequest represents the site content update payload
type UpdateContentRequest struct {
	Value string `json:"value" validate:"required"`
}

// ContentHandler handles HTTP requests for site content operations
type ContentHandler struct {
	content service.ContentService
	logger  *zap.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(content service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		content: content,
		logger:  logger,
	}
}

// RegisterRoutes registers all site content routes
func (h *ContentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/site-content", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{key}", h.Get)
		r.Put("/{key}", h.Update)
	})
}

func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	content, err := h.content.ListContent(r.Context())
	if err != nil {
		h.logger.Error("Failed to list site content", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch site content")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, content)
}

func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	content, err := h.content.GetContent(r.Context(), key)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "content not found")
			return
		}
		h.logger.Error("Failed to get site content", zap.Error(err), zap.String("key", key))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch site content")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, content)
}

// Update upserts the value under key: updating an absent key creates it.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req UpdateContentRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Site content validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "value is required")
		return
	}

	content, err := h.content.UpdateContent(r.Context(), key, req.Value)
	if err != nil {
		h.logger.Error("Failed to update site content", zap.Error(err), zap.String("key", key))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update site content")
		return
	}

	h.logger.Info("Site content updated", zap.String("key", key))
	middleware.RespondWithJSON(w, http.StatusOK, content)
}
