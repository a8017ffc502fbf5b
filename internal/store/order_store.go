package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"trynex-storefront/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore defines the interface for order data access. Orders have
// no delete operation.
type OrderStore interface {
	List(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, id int, patch domain.OrderPatch) (*domain.Order, error)
}

type orderStore struct {
	mu     sync.Mutex
	byID   map[int]*domain.Order
	nextID int
}

// NewOrderStore creates an empty in-memory order collection.
func NewOrderStore() OrderStore {
	return &orderStore{
		byID:   make(map[int]*domain.Order),
		nextID: 1,
	}
}

// orderIDFor derives the business identifier from the numeric id:
// a fixed prefix plus the id zero-padded to six digits. Ids wider than
// six digits are not truncated (id 1234567 -> "TN1234567").
func orderIDFor(id int) string {
	return fmt.Sprintf("TN%06d", id)
}

// List returns all orders newest-first by creation time. Ids are
// assigned in creation order, so equal timestamps break ties by
// descending id to keep the ordering strict.
func (s *orderStore) List(ctx context.Context) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*domain.Order, 0, len(s.byID))
	for _, o := range s.byID {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

func (s *orderStore) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// GetByOrderID resolves an order by its business identifier.
func (s *orderStore) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.byID {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Create assigns the id, derives the immutable business identifier and
// applies creation defaults: status "pending", payment status "advance",
// fixed advance payment when unset.
func (s *orderStore) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := *o
	stored.ID = s.nextID
	stored.OrderID = orderIDFor(stored.ID)
	s.nextID++

	if stored.Status == "" {
		stored.Status = domain.OrderStatusPending
	}
	if stored.PaymentStatus == "" {
		stored.PaymentStatus = domain.PaymentStatusAdvance
	}
	if stored.AdvancePaid == 0 {
		stored.AdvancePaid = domain.DefaultAdvancePaid
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.byID[stored.ID] = &stored
	return &stored, nil
}

// Update merges the non-nil patch fields over the existing record.
// ID and OrderID are immutable; omitted fields keep their prior values.
func (s *orderStore) Update(ctx context.Context, id int, patch domain.OrderPatch) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}

	updated := *existing
	if patch.CustomerName != nil {
		updated.CustomerName = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		updated.CustomerPhone = *patch.CustomerPhone
	}
	if patch.CustomerAddress != nil {
		updated.CustomerAddress = *patch.CustomerAddress
	}
	if patch.Items != nil {
		updated.Items = patch.Items
	}
	if patch.TotalAmount != nil {
		updated.TotalAmount = *patch.TotalAmount
	}
	if patch.AdvancePaid != nil {
		updated.AdvancePaid = *patch.AdvancePaid
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		updated.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Notes != nil {
		updated.Notes = patch.Notes
	}
	updated.UpdatedAt = time.Now()

	s.byID[id] = &updated
	return &updated, nil
}
