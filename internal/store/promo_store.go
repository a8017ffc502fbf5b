package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"trynex-storefront/internal/domain"
)

var ErrPromoCodeNotFound = errors.New("promo code not found")

// PromoCodeStore defines the interface for promo code data access.
// Code uniqueness is a caller concern; storage does not enforce it.
type PromoCodeStore interface {
	List(ctx context.Context) ([]*domain.PromoCode, error)
	GetByID(ctx context.Context, id int) (*domain.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	Create(ctx context.Context, pc *domain.PromoCode) (*domain.PromoCode, error)
	Update(ctx context.Context, id int, patch domain.PromoCodePatch) (*domain.PromoCode, error)
	Delete(ctx context.Context, id int) error
}

type promoCodeStore struct {
	mu     sync.Mutex
	byID   map[int]*domain.PromoCode
	nextID int
}

// NewPromoCodeStore creates an empty in-memory promo code collection.
func NewPromoCodeStore() PromoCodeStore {
	return &promoCodeStore{
		byID:   make(map[int]*domain.PromoCode),
		nextID: 1,
	}
}

func (s *promoCodeStore) List(ctx context.Context) ([]*domain.PromoCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := make([]*domain.PromoCode, 0, len(s.byID))
	for _, pc := range s.byID {
		codes = append(codes, pc)
	}
	return codes, nil
}

func (s *promoCodeStore) GetByID(ctx context.Context, id int) (*domain.PromoCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pc, ok := s.byID[id]
	if !ok {
		return nil, ErrPromoCodeNotFound
	}
	return pc, nil
}

func (s *promoCodeStore) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pc := range s.byID {
		if pc.Code == code {
			return pc, nil
		}
	}
	return nil, ErrPromoCodeNotFound
}

// Create assigns the id and starts the usage counter at zero.
func (s *promoCodeStore) Create(ctx context.Context, pc *domain.PromoCode) (*domain.PromoCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *pc
	stored.ID = s.nextID
	stored.CurrentUses = 0
	stored.CreatedAt = time.Now()
	s.nextID++

	s.byID[stored.ID] = &stored
	return &stored, nil
}

// Update merges the non-nil patch fields. CurrentUses is monotonic:
// a patch value lower than the stored counter is ignored.
func (s *promoCodeStore) Update(ctx context.Context, id int, patch domain.PromoCodePatch) (*domain.PromoCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[id]
	if !ok {
		return nil, ErrPromoCodeNotFound
	}

	updated := *existing
	if patch.Code != nil {
		updated.Code = *patch.Code
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.DiscountType != nil {
		updated.DiscountType = *patch.DiscountType
	}
	if patch.DiscountValue != nil {
		updated.DiscountValue = *patch.DiscountValue
	}
	if patch.MinimumAmount != nil {
		updated.MinimumAmount = patch.MinimumAmount
	}
	if patch.MaxUses != nil {
		updated.MaxUses = patch.MaxUses
	}
	if patch.CurrentUses != nil && *patch.CurrentUses > updated.CurrentUses {
		updated.CurrentUses = *patch.CurrentUses
	}
	if patch.IsActive != nil {
		updated.IsActive = *patch.IsActive
	}
	if patch.ExpiresAt != nil {
		updated.ExpiresAt = patch.ExpiresAt
	}

	s.byID[id] = &updated
	return &updated, nil
}

func (s *promoCodeStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrPromoCodeNotFound
	}
	delete(s.byID, id)
	return nil
}
