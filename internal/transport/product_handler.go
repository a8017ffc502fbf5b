package transport

import (
	"errors"
	"net/http"
	"strconv"

	"trynex-storefront/internal/domain"
	"trynex-storefront/internal/middleware"
	"trynex-storefront/internal/service"
	"trynex-storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload. Prices
// are integer minor currency units.
type CreateProductRequest struct {
	Name          string                  `json:"name" validate:"required"`
	Description   string                  `json:"description" validate:"required"`
	Price         int64                   `json:"price" validate:"required,gt=0"`
	OriginalPrice *int64                  `json:"originalPrice" validate:"omitempty,gt=0"`
	Category      string                  `json:"category" validate:"required"`
	Images        []string                `json:"images" validate:"required,min=1,dive,required"`
	Variants      *domain.ProductVariants `json:"variants"`
	InStock       int                     `json:"inStock" validate:"gte=0"`
	Featured      bool                    `json:"featured"`
}

// UpdateProductRequest represents a partial product update; absent
// fields leave the stored values untouched.
type UpdateProductRequest struct {
	Name          *string                 `json:"name" validate:"omitempty,min=1"`
	Description   *string                 `json:"description" validate:"omitempty,min=1"`
	Price         *int64                  `json:"price" validate:"omitempty,gt=0"`
	OriginalPrice *int64                  `json:"originalPrice" validate:"omitempty,gt=0"`
	Category      *string                 `json:"category" validate:"omitempty,min=1"`
	Images        []string                `json:"images" validate:"omitempty,min=1,dive,required"`
	Variants      *domain.ProductVariants `json:"variants"`
	InStock       *int                    `json:"inStock" validate:"omitempty,gte=0"`
	Featured      *bool                   `json:"featured"`
}

// ProductHandler handles HTTP requests for catalog operations
type ProductHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog service.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns the filtered catalog view. Exactly one filter is applied
// per request: featured wins over category, category over search.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := service.ProductQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Featured: r.URL.Query().Get("featured") == "true",
	}

	products, err := h.catalog.ListProducts(r.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), &domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Images:        req.Images,
		Variants:      req.Variants,
		InStock:       req.InStock,
		Featured:      req.Featured,
	})
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.Int("id", product.ID), zap.String("name", product.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product update validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, domain.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Images:        req.Images,
		Variants:      req.Variants,
		InStock:       req.InStock,
		Featured:      req.Featured,
	})
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to update product", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to delete product", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	h.logger.Info("Product deleted", zap.Int("id", id))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
