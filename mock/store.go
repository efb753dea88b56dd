package mock

import "github.com/fwojciec/uidoc"

var _ uidoc.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is a mock implementation of uidoc.CatalogStore.
type CatalogStore struct {
	GetFn func() ([]*uidoc.Component, bool)
	SetFn func(components []*uidoc.Component)
}

func (s *CatalogStore) Get() ([]*uidoc.Component, bool) {
	return s.GetFn()
}

func (s *CatalogStore) Set(components []*uidoc.Component) {
	s.SetFn(components)
}

var _ uidoc.DetailStore = (*DetailStore)(nil)

// DetailStore is a mock implementation of uidoc.DetailStore.
type DetailStore struct {
	GetFn func(name string) (*uidoc.ComponentDetail, bool)
	SetFn func(name string, detail *uidoc.ComponentDetail)
}

func (s *DetailStore) Get(name string) (*uidoc.ComponentDetail, bool) {
	return s.GetFn(name)
}

func (s *DetailStore) Set(name string, detail *uidoc.ComponentDetail) {
	s.SetFn(name, detail)
}
