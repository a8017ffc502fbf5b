package service

import (
	"context"
	"errors"
	"fmt"

	"trynex-storefront/internal/domain"
	"trynex-storefront/internal/store"
)

// ErrInvalidOrder marks order input rejected before any mutation is
// attempted; the wrapping message carries the field-level detail.
var ErrInvalidOrder = errors.New("invalid order")

// OrderService defines the business rules of the order lifecycle atop
// the generic store.
type OrderService interface {
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	TrackOrder(ctx context.Context, orderID string) (*domain.Order, error)
	CreateOrder(ctx context.Context, o *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id int, patch domain.OrderPatch) (*domain.Order, error)
}

type orderService struct {
	orders store.OrderStore
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(orders store.OrderStore) OrderService {
	return &orderService{orders: orders}
}

// ListOrders returns all orders newest-first.
func (s *orderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// TrackOrder resolves an order by its customer-facing business
// identifier, not the internal numeric id.
func (s *orderService) TrackOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.GetByOrderID(ctx, orderID)
}

// CreateOrder validates the input and inserts the order. The store
// derives the business identifier and applies the creation defaults.
// Product stock is intentionally not decremented (observed behavior of
// the storefront; stock stays informational).
func (s *orderService) CreateOrder(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if err := validateOrder(o); err != nil {
		return nil, err
	}
	return s.orders.Create(ctx, o)
}

// UpdateOrder merges the provided fields over the stored order; fields
// omitted from the patch retain their prior values.
func (s *orderService) UpdateOrder(ctx context.Context, id int, patch domain.OrderPatch) (*domain.Order, error) {
	if patch.Items != nil {
		if err := validateItems(patch.Items); err != nil {
			return nil, err
		}
	}
	if patch.TotalAmount != nil && *patch.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrInvalidOrder)
	}
	return s.orders.Update(ctx, id, patch)
}

func validateOrder(o *domain.Order) error {
	if o.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidOrder)
	}
	if o.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidOrder)
	}
	if o.CustomerAddress == "" {
		return fmt.Errorf("%w: customer address is required", ErrInvalidOrder)
	}
	if err := validateItems(o.Items); err != nil {
		return err
	}
	if o.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount must be positive", ErrInvalidOrder)
	}
	return nil
}

func validateItems(items []domain.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrInvalidOrder)
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item quantity must be at least 1", ErrInvalidOrder)
		}
	}
	return nil
}
