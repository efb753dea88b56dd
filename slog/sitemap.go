package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uidoc"
)

// Ensure LoggingSitemapService implements uidoc.SitemapService.
var _ uidoc.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   uidoc.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next uidoc.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *uidoc.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}

// DiscoverComponentURLs delegates to the wrapped service and logs the
// operation.
func (s *LoggingSitemapService) DiscoverComponentURLs(ctx context.Context, site uidoc.Site) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap component discovery",
			"url", site.DocsBaseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverComponentURLs(ctx, site)
}
