package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/uidoc"
	"github.com/fwojciec/uidoc/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWALMode compares write performance between WAL and rollback journal modes.
// This simulates a snapshot workload: storing many component snapshots with examples.
func BenchmarkWALMode(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkSnapshotInserts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkSnapshotInserts(b, true)
	})
}

func benchmarkSnapshotInserts(b *testing.B, useWAL bool) {
	b.Helper()

	// Create a temporary file for the database
	tmpDir := b.TempDir()
	dbPath := filepath.Join(tmpDir, "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	// Open enables WAL for file-based databases, so the rollback case
	// switches back to the default journal.
	if !useWAL {
		ctx := context.Background()
		_, err := db.ExecContext(ctx, "PRAGMA journal_mode = DELETE")
		require.NoError(b, err)
	}

	defer func() {
		db.Close()
		// Clean up WAL files if they exist
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	ctx := context.Background()
	svc := sqlite.NewSnapshotService(db)

	// Reset timer to exclude setup time
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		snap := &uidoc.ComponentSnapshot{
			Name:        fmt.Sprintf("component-%d", i),
			Description: fmt.Sprintf("Component %d for benchmarking.", i),
			URL:         fmt.Sprintf("https://ui.example.com/docs/components/component-%d", i),
			Markdown:    fmt.Sprintf("# Component %d\n\nThis is the documentation of component %d with some additional text to make it more realistic. Lorem ipsum dolor sit amet, consectetur adipiscing elit.", i, i),
			Examples: []*uidoc.Example{
				{Title: "Default", Code: fmt.Sprintf("<Component%d />", i)},
				{Title: "Outline", Code: fmt.Sprintf("<Component%d variant=\"outline\" />", i)},
			},
		}
		if err := svc.CreateSnapshot(ctx, snap); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBulkInserts tests storing a batch of snapshots (simulating a full catalog snapshot).
func BenchmarkBulkInserts(b *testing.B) {
	const snapshotsPerRun = 100

	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkBulkInserts(b, false, snapshotsPerRun)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkBulkInserts(b, true, snapshotsPerRun)
	})
}

func benchmarkBulkInserts(b *testing.B, useWAL bool, snapshotsPerRun int) {
	b.Helper()

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		tmpDir := b.TempDir()
		dbPath := filepath.Join(tmpDir, fmt.Sprintf("bench%d.db", i))

		db := sqlite.NewDB(dbPath)
		require.NoError(b, db.Open())

		if !useWAL {
			ctx := context.Background()
			_, err := db.ExecContext(ctx, "PRAGMA journal_mode = DELETE")
			require.NoError(b, err)
		}

		ctx := context.Background()
		svc := sqlite.NewSnapshotService(db)

		b.StartTimer()

		// Store a batch of snapshots
		for j := 0; j < snapshotsPerRun; j++ {
			snap := &uidoc.ComponentSnapshot{
				Name:     fmt.Sprintf("component-%d", j),
				URL:      fmt.Sprintf("https://ui.example.com/docs/components/component-%d", j),
				Markdown: fmt.Sprintf("# Component %d\n\nDocumentation for component %d. Lorem ipsum dolor sit amet.", j, j),
				Examples: []*uidoc.Example{
					{Title: "Default", Code: fmt.Sprintf("<Component%d />", j)},
				},
			}
			if err := svc.CreateSnapshot(ctx, snap); err != nil {
				b.Fatal(err)
			}
		}

		b.StopTimer()
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}
}
