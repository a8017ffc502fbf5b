package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"trynex-storefront/internal/domain"
)

var ErrContentNotFound = errors.New("site content not found")

// SiteContentStore defines the interface for site content data access.
// Content is keyed by string key and has upsert semantics; there is no
// delete operation.
type SiteContentStore interface {
	List(ctx context.Context) ([]*domain.SiteContent, error)
	GetByKey(ctx context.Context, key string) (*domain.SiteContent, error)
	Upsert(ctx context.Context, key, value string) (*domain.SiteContent, error)
}

type siteContentStore struct {
	mu     sync.Mutex
	byKey  map[string]*domain.SiteContent
	nextID int
}

// NewSiteContentStore creates an empty in-memory site content collection.
func NewSiteContentStore() SiteContentStore {
	return &siteContentStore{
		byKey:  make(map[string]*domain.SiteContent),
		nextID: 1,
	}
}

func (s *siteContentStore) List(ctx context.Context) ([]*domain.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := make([]*domain.SiteContent, 0, len(s.byKey))
	for _, c := range s.byKey {
		content = append(content, c)
	}
	return content, nil
}

func (s *siteContentStore) GetByKey(ctx context.Context, key string) (*domain.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byKey[key]
	if !ok {
		return nil, ErrContentNotFound
	}
	return c, nil
}

// Upsert updates the value under key, creating the record when absent,
// and refreshes UpdatedAt either way. The numeric id is kept across
// updates of an existing key.
func (s *siteContentStore) Upsert(ctx context.Context, key, value string) (*domain.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	if existing, ok := s.byKey[key]; ok {
		id = existing.ID
	} else {
		s.nextID++
	}

	updated := &domain.SiteContent{
		ID:        id,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	s.byKey[key] = updated
	return updated, nil
}
