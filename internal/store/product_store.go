package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"trynex-storefront/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductStore defines the interface for product data access.
type ProductStore interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type productStore struct {
	mu     sync.Mutex
	byID   map[int]*domain.Product
	nextID int
}

// NewProductStore creates an empty in-memory product collection.
func NewProductStore() ProductStore {
	return &productStore{
		byID:   make(map[int]*domain.Product),
		nextID: 1,
	}
}

// List returns all products in no guaranteed order.
func (s *productStore) List(ctx context.Context) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]*domain.Product, 0, len(s.byID))
	for _, p := range s.byID {
		products = append(products, p)
	}
	return products, nil
}

func (s *productStore) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Create assigns the next id and timestamps, then inserts a copy of p.
func (s *productStore) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := *p
	stored.ID = s.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.nextID++

	s.byID[stored.ID] = &stored
	return &stored, nil
}

// Update merges the non-nil patch fields over the existing record and
// refreshes UpdatedAt. Omitted fields keep their prior values.
func (s *productStore) Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	updated := *existing
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Price != nil {
		updated.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		updated.OriginalPrice = patch.OriginalPrice
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.Images != nil {
		updated.Images = patch.Images
	}
	if patch.Variants != nil {
		updated.Variants = patch.Variants
	}
	if patch.InStock != nil {
		updated.InStock = *patch.InStock
	}
	if patch.Featured != nil {
		updated.Featured = *patch.Featured
	}
	updated.UpdatedAt = time.Now()

	s.byID[id] = &updated
	return &updated, nil
}

// Delete removes the product. The freed id is never reassigned.
func (s *productStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.byID, id)
	return nil
}
