// Package crawl provides bulk snapshot orchestration. It walks the
// component catalog through the query service, renders each documentation
// page to markdown, and persists the results for offline use.
package crawl

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/uidoc"
	"golang.org/x/sync/errgroup"
)

// Snapshotter orchestrates snapshotting the full component catalog.
type Snapshotter struct {
	Components   uidoc.ComponentService
	Fetcher      uidoc.Fetcher
	Extractor    uidoc.ContentExtractor
	Converter    uidoc.Converter
	Snapshots    uidoc.SnapshotService
	TokenCounter uidoc.TokenCounter
	Concurrency  int
}

// Result holds the outcome of a snapshot run.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
	Tokens int
}

// ProgressEvent reports progress during a snapshot run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting snapshot progress.
type ProgressFunc func(event ProgressEvent)

// snapshotResult holds the outcome of processing a single component.
type snapshotResult struct {
	position int
	name     string
	snap     *uidoc.ComponentSnapshot
	err      error
}

// SnapshotCatalog snapshots every component in the catalog and saves the
// results. The progress callback, if provided, receives events as the run
// proceeds. Failed components are counted, never retried.
func (s *Snapshotter) SnapshotCatalog(ctx context.Context, progress ProgressFunc) (*Result, error) {
	components, err := s.Components.ListComponents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}

	if len(components) == 0 {
		return &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan snapshotResult, len(components))

	var completed atomic.Int64
	total := len(components)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, component := range components {
			i, component := i, component
			g.Go(func() error {
				result := s.processComponent(gctx, i, component)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in catalog order.
	results := make([]snapshotResult, len(components))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Name:      result.name,
					Error:     result.err,
				})
			}
		} else {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					Name:      result.name,
				})
			}
		}
	}

	var savedCount int
	var totalBytes int
	var totalTokens int

	for _, result := range results {
		if result.err != nil {
			continue
		}

		if err := s.Snapshots.CreateSnapshot(ctx, result.snap); err != nil {
			failedCount++
			continue
		}

		savedCount++
		totalBytes += len(result.snap.Markdown)
		if s.TokenCounter != nil {
			if tokens, err := s.TokenCounter.CountTokens(ctx, result.snap.Markdown); err == nil {
				totalTokens += tokens
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:  savedCount,
		Failed: failedCount,
		Bytes:  totalBytes,
		Tokens: totalTokens,
	}, nil
}

// processComponent builds the snapshot for a single component: the extracted
// detail record, the collected examples, and the page rendered as markdown.
func (s *Snapshotter) processComponent(ctx context.Context, position int, component *uidoc.Component) snapshotResult {
	result := snapshotResult{
		position: position,
		name:     component.Name,
	}

	detail, err := s.Components.GetComponentDetails(ctx, component.Name)
	if err != nil {
		result.err = err
		return result
	}

	examples, err := s.Components.GetComponentExamples(ctx, component.Name)
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := s.renderMarkdown(ctx, detail.URL)
	if err != nil {
		result.err = err
		return result
	}

	result.snap = &uidoc.ComponentSnapshot{
		Name:         detail.Name,
		Description:  detail.Description,
		URL:          detail.URL,
		SourceURL:    detail.SourceURL,
		Installation: detail.Installation,
		Usage:        detail.Usage,
		Markdown:     markdown,
		ContentHash:  ComputeHash(markdown),
		Examples:     examples,
		FetchedAt:    time.Now().UTC(),
	}

	return result
}

// renderMarkdown fetches a documentation page and renders its main content
// as markdown.
func (s *Snapshotter) renderMarkdown(ctx context.Context, url string) (string, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return "", err
	}

	return s.Converter.Convert(extracted.ContentHTML)
}
