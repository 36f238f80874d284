package catalog

import (
	"sync"

	"github.com/unipro/glassfinder/internal/domain"
)

// Store is the in-memory owner of the model and product tables.
// Initialize swaps both tables in one step; readers always see a complete snapshot.
type Store struct {
	snapshot *domain.Catalog
	version  uint64
	mutex    sync.RWMutex
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{
		snapshot: &domain.Catalog{Models: []string{}, Products: []domain.Product{}},
	}
}

// Initialize replaces both tables. Nil arguments become empty tables.
// The slices are owned by the store afterwards and must not be mutated by the caller.
func (s *Store) Initialize(models []string, products []domain.Product) {
	if models == nil {
		models = []string{}
	}
	if products == nil {
		products = []domain.Product{}
	}

	next := &domain.Catalog{Models: models, Products: products}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot = next
	s.version++
}

// Snapshot returns the current catalog
func (s *Store) Snapshot() *domain.Catalog {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshot
}

// Version returns how many times the store has been initialized
func (s *Store) Version() uint64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.version
}

// Size returns the number of models and products in the current snapshot
func (s *Store) Size() (models, products int) {
	c := s.Snapshot()
	return len(c.Models), len(c.Products)
}
