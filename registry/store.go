package registry

import (
	"sync"

	"github.com/fwojciec/uidoc"
)

var _ uidoc.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory uidoc.CatalogStore holding the single
// catalog entry for the lifetime of the process.
type CatalogStore struct {
	mu         sync.RWMutex
	components []*uidoc.Component
	loaded     bool
}

// NewCatalogStore returns an empty catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// Get returns the cached catalog. ok is false before first population.
func (s *CatalogStore) Get() ([]*uidoc.Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.components, s.loaded
}

// Set stores the catalog. Racing writers are not deduplicated; the last
// write wins.
func (s *CatalogStore) Set(components []*uidoc.Component) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = components
	s.loaded = true
}

var _ uidoc.DetailStore = (*DetailStore)(nil)

// DetailStore is an in-memory uidoc.DetailStore mapping component names to
// extracted detail records. Entries are never evicted.
type DetailStore struct {
	mu      sync.RWMutex
	details map[string]*uidoc.ComponentDetail
}

// NewDetailStore returns an empty detail store.
func NewDetailStore() *DetailStore {
	return &DetailStore{details: make(map[string]*uidoc.ComponentDetail)}
}

// Get returns the cached detail for a name. ok is false if absent.
func (s *DetailStore) Get(name string) (*uidoc.ComponentDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	detail, ok := s.details[name]
	return detail, ok
}

// Set stores a detail record under its name.
func (s *DetailStore) Set(name string, detail *uidoc.ComponentDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[name] = detail
}
