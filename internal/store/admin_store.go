package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"trynex-storefront/internal/domain"
)

var ErrAdminNotFound = errors.New("admin not found")

// AdminStore defines the interface for admin record access. Exactly one
// admin is seeded; there are no update or delete operations.
type AdminStore interface {
	List(ctx context.Context) ([]*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
}

type adminStore struct {
	mu     sync.Mutex
	byID   map[int]*domain.Admin
	nextID int
}

// NewAdminStore creates an empty in-memory admin collection.
func NewAdminStore() AdminStore {
	return &adminStore{
		byID:   make(map[int]*domain.Admin),
		nextID: 1,
	}
}

func (s *adminStore) List(ctx context.Context) ([]*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admins := make([]*domain.Admin, 0, len(s.byID))
	for _, a := range s.byID {
		admins = append(admins, a)
	}
	return admins, nil
}

func (s *adminStore) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (s *adminStore) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *a
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.nextID++

	s.byID[stored.ID] = &stored
	return &stored, nil
}
