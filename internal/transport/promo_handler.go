package transport

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"trynex-storefront/internal/domain"
	"trynex-storefront/internal/middleware"
	"trynex-storefront/internal/service"
	"trynex-storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreatePromoCodeRequest represents the promo code creation payload
type CreatePromoCodeRequest struct {
	Code          string     `json:"code" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	DiscountType  string     `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue int64      `json:"discountValue" validate:"required,gt=0"`
	MinimumAmount *int64     `json:"minimumAmount" validate:"omitempty,gt=0"`
	MaxUses       *int       `json:"maxUses" validate:"omitempty,gt=0"`
	IsActive      *bool      `json:"isActive"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

// UpdatePromoCodeRequest represents a partial promo code update
type UpdatePromoCodeRequest struct {
	Code          *string    `json:"code" validate:"omitempty,min=1"`
	Description   *string    `json:"description" validate:"omitempty,min=1"`
	DiscountType  *string    `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue *int64     `json:"discountValue" validate:"omitempty,gt=0"`
	MinimumAmount *int64     `json:"minimumAmount" validate:"omitempty,gt=0"`
	MaxUses       *int       `json:"maxUses" validate:"omitempty,gt=0"`
	CurrentUses   *int       `json:"currentUses" validate:"omitempty,gte=0"`
	IsActive      *bool      `json:"isActive"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

// PromoHandler handles HTTP requests for promo code operations
type PromoHandler struct {
	promos service.PromoService
	logger *zap.Logger
}

// NewPromoHandler creates a new PromoHandler
func NewPromoHandler(promos service.PromoService, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{
		promos: promos,
		logger: logger,
	}
}

// RegisterRoutes registers all promo code routes
func (h *PromoHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/promo-codes", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{code}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	codes, err := h.promos.ListPromoCodes(r.Context())
	if err != nil {
		h.logger.Error("Failed to list promo codes", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch promo codes")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, codes)
}

func (h *PromoHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	promo, err := h.promos.GetPromoCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, store.ErrPromoCodeNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "promo code not found")
			return
		}
		h.logger.Error("Failed to get promo code", zap.Error(err), zap.String("code", code))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch promo code")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, promo)
}

func (h *PromoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePromoCodeRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Promo code validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	promo := &domain.PromoCode{
		Code:          req.Code,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinimumAmount: req.MinimumAmount,
		MaxUses:       req.MaxUses,
		IsActive:      true,
		ExpiresAt:     req.ExpiresAt,
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	created, err := h.promos.CreatePromoCode(r.Context(), promo)
	if err != nil {
		if errors.Is(err, service.ErrPromoCodeExists) {
			middleware.RespondWithError(w, http.StatusBadRequest, "promo code already exists")
			return
		}
		h.logger.Error("Failed to create promo code", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create promo code")
		return
	}

	h.logger.Info("Promo code created", zap.Int("id", created.ID), zap.String("code", created.Code))
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *PromoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid promo code id")
		return
	}

	var req UpdatePromoCodeRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Promo code update validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	promo, err := h.promos.UpdatePromoCode(r.Context(), id, domain.PromoCodePatch{
		Code:          req.Code,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinimumAmount: req.MinimumAmount,
		MaxUses:       req.MaxUses,
		CurrentUses:   req.CurrentUses,
		IsActive:      req.IsActive,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, store.ErrPromoCodeNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "promo code not found")
			return
		}
		h.logger.Error("Failed to update promo code", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update promo code")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, promo)
}

func (h *PromoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid promo code id")
		return
	}

	if err := h.promos.DeletePromoCode(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrPromoCodeNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "promo code not found")
			return
		}
		h.logger.Error("Failed to delete promo code", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete promo code")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
