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

// OrderItemRequest is one line item of an order. Name and unit price
// are snapshots taken at purchase time.
type OrderItemRequest struct {
	ProductID int    `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Price     int64  `json:"price" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Variant   string `json:"variant"`
}

// CreateOrderRequest represents the order creation payload
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerPhone   string             `json:"customerPhone" validate:"required"`
	CustomerAddress string             `json:"customerAddress" validate:"required"`
	Items           []OrderItemRequest `json:"products" validate:"required,min=1,dive"`
	TotalAmount     int64              `json:"totalAmount" validate:"required,gt=0"`
	AdvancePaid     *int64             `json:"advancePaid" validate:"omitempty,gt=0"`
	Status          string             `json:"status" validate:"omitempty,oneof=pending confirmed processing shipped delivered"`
	PaymentStatus   string             `json:"paymentStatus" validate:"omitempty,oneof=advance partial full"`
	Notes           *string            `json:"notes"`
}

// UpdateOrderRequest represents a partial order update; absent fields
// keep their stored values. Order ids are immutable and not accepted.
type UpdateOrderRequest struct {
	CustomerName    *string            `json:"customerName" validate:"omitempty,min=1"`
	CustomerPhone   *string            `json:"customerPhone" validate:"omitempty,min=1"`
	CustomerAddress *string            `json:"customerAddress" validate:"omitempty,min=1"`
	Items           []OrderItemRequest `json:"products" validate:"omitempty,min=1,dive"`
	TotalAmount     *int64             `json:"totalAmount" validate:"omitempty,gt=0"`
	AdvancePaid     *int64             `json:"advancePaid" validate:"omitempty,gt=0"`
	Status          *string            `json:"status" validate:"omitempty,oneof=pending confirmed processing shipped delivered"`
	PaymentStatus   *string            `json:"paymentStatus" validate:"omitempty,oneof=advance partial full"`
	Notes           *string            `json:"notes"`
}

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orders service.OrderService
	logger *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/track/{orderId}", h.Track)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
	})
}

// List returns all orders newest-first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("Failed to get order", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// Track resolves an order by its customer-facing business identifier.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.orders.TrackOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("Failed to track order", zap.Error(err), zap.String("order_id", orderID))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to track order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order := &domain.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           toOrderItems(req.Items),
		TotalAmount:     req.TotalAmount,
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
		Notes:           req.Notes,
	}
	if req.AdvancePaid != nil {
		order.AdvancePaid = *req.AdvancePaid
	}

	created, err := h.orders.CreateOrder(r.Context(), order)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to create order", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	h.logger.Info("Order created",
		zap.Int("id", created.ID),
		zap.String("order_id", created.OrderID),
		zap.Int64("total_amount", created.TotalAmount),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req UpdateOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order update validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.OrderPatch{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		TotalAmount:     req.TotalAmount,
		AdvancePaid:     req.AdvancePaid,
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
		Notes:           req.Notes,
	}
	if req.Items != nil {
		patch.Items = toOrderItems(req.Items)
	}

	order, err := h.orders.UpdateOrder(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		if errors.Is(err, service.ErrInvalidOrder) {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to update order", zap.Error(err), zap.Int("id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}

func toOrderItems(items []OrderItemRequest) []domain.OrderItem {
	converted := make([]domain.OrderItem, len(items))
	for i, item := range items {
		converted[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Variant:   item.Variant,
		}
	}
	return converted
}
