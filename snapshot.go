package uidoc

import (
	"context"
	"time"
)

// ComponentSnapshot is a persisted capture of one component: the extracted
// detail record, the collected examples, and the page rendered as markdown.
type ComponentSnapshot struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	URL          string     `json:"url"`
	SourceURL    string     `json:"sourceUrl"`
	Installation string     `json:"installation"`
	Usage        string     `json:"usage"`
	Markdown     string     `json:"markdown"`
	ContentHash  string     `json:"contentHash"`
	Examples     []*Example `json:"examples"`
	FetchedAt    time.Time  `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *ComponentSnapshot) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "snapshot component name required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "snapshot component URL required")
	}
	return nil
}

// SnapshotService persists component snapshots for offline use.
type SnapshotService interface {
	// CreateSnapshot stores a snapshot, replacing any existing snapshot
	// with the same component name.
	CreateSnapshot(ctx context.Context, snap *ComponentSnapshot) error

	// FindSnapshotByName retrieves a snapshot by component name.
	// Returns ENOTFOUND if no snapshot exists for the name.
	FindSnapshotByName(ctx context.Context, name string) (*ComponentSnapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, ordered by name.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*ComponentSnapshot, error)

	// DeleteSnapshot permanently removes a snapshot and its examples.
	// Returns ENOTFOUND if no snapshot exists for the name.
	DeleteSnapshot(ctx context.Context, name string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DomainLimiter provides per-domain rate limiting for bulk fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
