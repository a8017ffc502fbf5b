package service

import (
	"context"

	"trynex-storefront/internal/domain"
	"trynex-storefront/internal/store"
)

// ContentService defines the business logic for site content fragments.
type ContentService interface {
	ListContent(ctx context.Context) ([]*domain.SiteContent, error)
	GetContent(ctx context.Context, key string) (*domain.SiteContent, error)
	UpdateContent(ctx context.Context, key, value string) (*domain.SiteContent, error)
}

type contentService struct {
	content store.SiteContentStore
}

// NewContentService creates a new instance of ContentService.
func NewContentService(content store.SiteContentStore) ContentService {
	return &contentService{content: content}
}

func (s *contentService) ListContent(ctx context.Context) ([]*domain.SiteContent, error) {
	return s.content.List(ctx)
}

func (s *contentService) GetContent(ctx context.Context, key string) (*domain.SiteContent, error) {
	return s.content.GetByKey(ctx, key)
}

// UpdateContent upserts: updating an absent key creates it.
func (s *contentService) UpdateContent(ctx context.Context, key, value string) (*domain.SiteContent, error) {
	return s.content.Upsert(ctx, key, value)
}
