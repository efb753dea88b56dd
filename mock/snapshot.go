package mock

import (
	"context"

	"github.com/fwojciec/uidoc"
)

var _ uidoc.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of uidoc.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn     func(ctx context.Context, snap *uidoc.ComponentSnapshot) error
	FindSnapshotByNameFn func(ctx context.Context, name string) (*uidoc.ComponentSnapshot, error)
	FindSnapshotsFn      func(ctx context.Context, filter uidoc.SnapshotFilter) ([]*uidoc.ComponentSnapshot, error)
	DeleteSnapshotFn     func(ctx context.Context, name string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *uidoc.ComponentSnapshot) error {
	return s.CreateSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByName(ctx context.Context, name string) (*uidoc.ComponentSnapshot, error) {
	return s.FindSnapshotByNameFn(ctx, name)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter uidoc.SnapshotFilter) ([]*uidoc.ComponentSnapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, name string) error {
	return s.DeleteSnapshotFn(ctx, name)
}
