package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/uidoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ uidoc.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements uidoc.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot stores a snapshot, replacing any existing snapshot with the
// same component name.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *uidoc.ComponentSnapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now().UTC()
	}

	// Dropping the prior row also drops its example rows via the cascade.
	if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE name = ?", snap.Name); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, name, description, url, source_url, installation, usage, markdown, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.Name, snap.Description, snap.URL, snap.SourceURL, snap.Installation,
		snap.Usage, snap.Markdown, snap.ContentHash, snap.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, example := range snap.Examples {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO snapshot_examples (id, snapshot_id, position, title, code, description)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), snap.ID, i, example.Title, example.Code, example.Description)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindSnapshotByName retrieves a snapshot by component name.
func (s *SnapshotService) FindSnapshotByName(ctx context.Context, name string) (*uidoc.ComponentSnapshot, error) {
	var snap uidoc.ComponentSnapshot
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, url, source_url, installation, usage, markdown, content_hash, fetched_at
		FROM snapshots
		WHERE name = ?
	`, name).Scan(&snap.ID, &snap.Name, &snap.Description, &snap.URL, &snap.SourceURL,
		&snap.Installation, &snap.Usage, &snap.Markdown, &snap.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, uidoc.Errorf(uidoc.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}

	snap.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	snap.Examples, err = s.findExamples(ctx, snap.ID)
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// FindSnapshots retrieves snapshots matching the filter, ordered by component name.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter uidoc.SnapshotFilter) ([]*uidoc.ComponentSnapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, description, url, source_url, installation, usage, markdown, content_hash, fetched_at FROM snapshots WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*uidoc.ComponentSnapshot
	for rows.Next() {
		var snap uidoc.ComponentSnapshot
		var fetchedAt string

		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Description, &snap.URL, &snap.SourceURL,
			&snap.Installation, &snap.Usage, &snap.Markdown, &snap.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		snap.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, snap := range snapshots {
		snap.Examples, err = s.findExamples(ctx, snap.ID)
		if err != nil {
			return nil, err
		}
	}

	return snapshots, nil
}

// DeleteSnapshot permanently removes a snapshot and its examples.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE name = ?", name)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return uidoc.Errorf(uidoc.ENOTFOUND, "snapshot not found")
	}

	return nil
}

// findExamples loads the example rows for a snapshot in stored order.
func (s *SnapshotService) findExamples(ctx context.Context, snapshotID string) ([]*uidoc.Example, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, code, description
		FROM snapshot_examples
		WHERE snapshot_id = ?
		ORDER BY position ASC
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var examples []*uidoc.Example
	for rows.Next() {
		var example uidoc.Example
		if err := rows.Scan(&example.Title, &example.Code, &example.Description); err != nil {
			return nil, err
		}
		examples = append(examples, &example)
	}

	return examples, rows.Err()
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
