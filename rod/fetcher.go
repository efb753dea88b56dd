package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/uidoc"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page fetch, including navigation and
// JavaScript execution.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements uidoc.Fetcher at compile time.
var _ uidoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Component registries are typically client-rendered, so the static HTML a
// plain GET returns can miss most of the page content.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", uidoc.Errorf(uidoc.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	// Create a new page
	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	// Navigate to URL
	if err := page.Navigate(url); err != nil {
		return "", err
	}

	// Wait for page to load
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := serializeHTML(page)
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()

	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// serializeHTML returns the document HTML with the content of open shadow
// roots appended, so markup rendered inside web components survives
// serialization. outerHTML alone omits shadow DOM content.
func serializeHTML(page *rod.Page) (string, error) {
	obj, err := page.Eval(`() => {
		const parts = [document.documentElement.outerHTML];
		const walk = (root) => {
			for (const el of root.querySelectorAll('*')) {
				if (el.shadowRoot) {
					parts.push(el.shadowRoot.innerHTML);
					walk(el.shadowRoot);
				}
			}
		};
		walk(document);
		return parts.join('\n');
	}`)
	if err != nil {
		return "", err
	}
	return obj.Value.Str(), nil
}
