package service

import (
	"context"
	"errors"
	"fmt"

	"trynex-storefront/internal/domain"
	"trynex-storefront/internal/store"
)

// ErrPromoCodeExists is returned when creating a promo code whose code
// string is already in use. Uniqueness lives here, not in storage.
var ErrPromoCodeExists = errors.New("promo code already exists")

// PromoService defines the business logic for promo codes.
type PromoService interface {
	ListPromoCodes(ctx context.Context) ([]*domain.PromoCode, error)
	GetPromoCode(ctx context.Context, code string) (*domain.PromoCode, error)
	CreatePromoCode(ctx context.Context, pc *domain.PromoCode) (*domain.PromoCode, error)
	UpdatePromoCode(ctx context.Context, id int, patch domain.PromoCodePatch) (*domain.PromoCode, error)
	DeletePromoCode(ctx context.Context, id int) error
}

type promoService struct {
	promos store.PromoCodeStore
}

// NewPromoService creates a new instance of PromoService.
func NewPromoService(promos store.PromoCodeStore) PromoService {
	return &promoService{promos: promos}
}

func (s *promoService) ListPromoCodes(ctx context.Context) ([]*domain.PromoCode, error) {
	return s.promos.List(ctx)
}

func (s *promoService) GetPromoCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	return s.promos.GetByCode(ctx, code)
}

func (s *promoService) CreatePromoCode(ctx context.Context, pc *domain.PromoCode) (*domain.PromoCode, error) {
	existing, err := s.promos.GetByCode(ctx, pc.Code)
	if err != nil && !errors.Is(err, store.ErrPromoCodeNotFound) {
		return nil, fmt.Errorf("failed to check existing promo code: %w", err)
	}
	if existing != nil {
		return nil, ErrPromoCodeExists
	}
	return s.promos.Create(ctx, pc)
}

func (s *promoService) UpdatePromoCode(ctx context.Context, id int, patch domain.PromoCodePatch) (*domain.PromoCode, error) {
	return s.promos.Update(ctx, id, patch)
}

func (s *promoService) DeletePromoCode(ctx context.Context, id int) error {
	return s.promos.Delete(ctx, id)
}
