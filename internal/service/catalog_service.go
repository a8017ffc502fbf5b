package service

import (
	"context"
	"strings"

	"trynex-storefront/internal/domain"
	"trynex-storefront/internal/store"
)

// ProductQuery carries the catalog filter parameters of a single
// request. Only one filter mode is active per query, with precedence
// featured > category > search > unfiltered; the filters never combine.
type ProductQuery struct {
	Category string
	Search   string
	Featured bool
}

// CatalogService defines the business logic for the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, q ProductQuery) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type catalogService struct {
	products store.ProductStore
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(products store.ProductStore) CatalogService {
	return &catalogService{products: products}
}

// ListProducts returns the filtered product view. An unknown category or
// a search with no hits yields an empty slice, never an error.
func (s *catalogService) ListProducts(ctx context.Context, q ProductQuery) ([]*domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case q.Featured:
		return filterProducts(products, func(p *domain.Product) bool {
			return p.Featured
		}), nil
	case q.Category != "" && q.Category != "all":
		// Exact, case-sensitive category match.
		return filterProducts(products, func(p *domain.Product) bool {
			return p.Category == q.Category
		}), nil
	case q.Search != "":
		needle := strings.ToLower(q.Search)
		return filterProducts(products, func(p *domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) ||
				strings.Contains(strings.ToLower(p.Category), needle)
		}), nil
	default:
		return products, nil
	}
}

func filterProducts(products []*domain.Product, keep func(*domain.Product) bool) []*domain.Product {
	matched := []*domain.Product{}
	for _, p := range products {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	return s.products.Create(ctx, p)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error) {
	return s.products.Update(ctx, id, patch)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int) error {
	return s.products.Delete(ctx, id)
}
