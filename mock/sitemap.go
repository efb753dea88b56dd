package mock

import (
	"context"

	"github.com/fwojciec/uidoc"
)

var _ uidoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of uidoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn          func(ctx context.Context, baseURL string, filter *uidoc.URLFilter) ([]string, error)
	DiscoverComponentURLsFn func(ctx context.Context, site uidoc.Site) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *uidoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

func (s *SitemapService) DiscoverComponentURLs(ctx context.Context, site uidoc.Site) ([]string, error) {
	return s.DiscoverComponentURLsFn(ctx, site)
}
