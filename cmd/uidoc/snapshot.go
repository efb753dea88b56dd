package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/uidoc"
	"github.com/fwojciec/uidoc/crawl"
	"github.com/fwojciec/uidoc/fs"
)

// Run executes the snapshot command.
func (c *SnapshotCmd) Run(deps *Dependencies) error {
	if c.List {
		return c.runList(deps)
	}
	if c.Show != "" {
		return c.runShow(deps)
	}
	if c.Export != "" {
		return c.runExport(deps)
	}
	return c.runCrawl(deps)
}

// runList prints the stored snapshots, one per line.
func (c *SnapshotCmd) runList(deps *Dependencies) error {
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, uidoc.SnapshotFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots stored. Run 'uidoc snapshot' to create them.")
		return nil
	}

	for _, snap := range snaps {
		fmt.Fprintf(deps.Stdout, "%-24s %8s  %s\n",
			snap.Name, crawl.FormatBytes(len(snap.Markdown)), snap.FetchedAt.Format(time.RFC3339))
	}

	return nil
}

// runShow prints one stored snapshot's markdown.
func (c *SnapshotCmd) runShow(deps *Dependencies) error {
	snap, err := deps.Snapshots.FindSnapshotByName(deps.Ctx, c.Show)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, snap.Markdown)
	return nil
}

// runExport writes the stored snapshots as markdown files.
func (c *SnapshotCmd) runExport(deps *Dependencies) error {
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, uidoc.SnapshotFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots stored. Run 'uidoc snapshot' to create them.")
		return nil
	}

	if err := fs.NewExporter(c.Export).Export(snaps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d snapshots to %s\n", len(snaps), c.Export)
	return nil
}

// runCrawl snapshots the full catalog.
func (c *SnapshotCmd) runCrawl(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Snapshotting %d components from %s\n",
				event.Total, crawl.TruncateURL(deps.Site.IndexURL(), 60))
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", event.Completed, event.Total, event.Name)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Name, event.Error)
		case crawl.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Snapshotter.SnapshotCatalog(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error snapshotting: %v\n", err)
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	fmt.Fprintf(deps.Stdout, "Saved %d snapshots (%s, %s)\n",
		result.Saved, crawl.FormatBytes(result.Bytes), crawl.FormatTokens(result.Tokens))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Failed %d components\n", result.Failed)
	}

	return nil
}
