package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/uidoc"
)

var _ uidoc.Fetcher = (*RateLimitedFetcher)(nil)

// RateLimitedFetcher decorates a Fetcher with per-domain rate limiting.
// Snapshot runs wrap the shared fetcher with it, so every fetch in the
// pipeline honors the same budget, including the ones the query service
// issues internally.
type RateLimitedFetcher struct {
	fetcher uidoc.Fetcher
	limiter uidoc.DomainLimiter
}

// NewRateLimitedFetcher wraps fetcher so each Fetch waits for the target
// domain's rate budget first.
func NewRateLimitedFetcher(fetcher uidoc.Fetcher, limiter uidoc.DomainLimiter) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		fetcher: fetcher,
		limiter: limiter,
	}
}

// Fetch waits for the domain's rate budget, then delegates to the wrapped
// fetcher.
func (f *RateLimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", uidoc.Errorf(uidoc.EINTERNAL, "invalid fetch URL %q: %v", rawURL, err)
	}

	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return "", err
	}

	return f.fetcher.Fetch(ctx, rawURL)
}

// Close closes the wrapped fetcher.
func (f *RateLimitedFetcher) Close() error {
	return f.fetcher.Close()
}
