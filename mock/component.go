package mock

import (
	"context"

	"github.com/fwojciec/uidoc"
)

var _ uidoc.ComponentService = (*ComponentService)(nil)

// ComponentService is a mock implementation of uidoc.ComponentService.
type ComponentService struct {
	ListComponentsFn       func(ctx context.Context) ([]*uidoc.Component, error)
	GetComponentDetailsFn  func(ctx context.Context, name string) (*uidoc.ComponentDetail, error)
	GetComponentExamplesFn func(ctx context.Context, name string) ([]*uidoc.Example, error)
	SearchComponentsFn     func(ctx context.Context, query string) ([]*uidoc.Component, error)
}

func (s *ComponentService) ListComponents(ctx context.Context) ([]*uidoc.Component, error) {
	return s.ListComponentsFn(ctx)
}

func (s *ComponentService) GetComponentDetails(ctx context.Context, name string) (*uidoc.ComponentDetail, error) {
	return s.GetComponentDetailsFn(ctx, name)
}

func (s *ComponentService) GetComponentExamples(ctx context.Context, name string) ([]*uidoc.Example, error) {
	return s.GetComponentExamplesFn(ctx, name)
}

func (s *ComponentService) SearchComponents(ctx context.Context, query string) ([]*uidoc.Component, error) {
	return s.SearchComponentsFn(ctx, query)
}
