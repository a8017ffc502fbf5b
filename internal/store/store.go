// Package store holds the process-memory entity collections. Each
// collection guards its map with a mutex and allocates ids from a
// per-collection counter starting at 1; ids are never reused, even
// after deletion. Nothing survives a restart.
//
// All mutating operations are copy-on-write: records handed out by
// List/Get are snapshots that are never mutated afterwards, so callers
// may read them without further locking.
package store

// Store bundles one collection per entity type. Construct once at
// process start and pass by handle; tests build fresh instances.
type Store struct {
	Products ProductStore
	Orders   OrderStore
	Promos   PromoCodeStore
	Content  SiteContentStore
	Admins   AdminStore
}

// New creates an empty store. Call Seed to load the initial catalog,
// site content, and admin record.
func New() *Store {
	return &Store{
		Products: NewProductStore(),
		Orders:   NewOrderStore(),
		Promos:   NewPromoCodeStore(),
		Content:  NewSiteContentStore(),
		Admins:   NewAdminStore(),
	}
}
