package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/uidoc"
	main "github.com/fwojciec/uidoc/cmd/uidoc"
	"github.com/fwojciec/uidoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports agreement when catalog and sitemap match", func(t *testing.T) {
		t.Parallel()

		components := &mock.ComponentService{
			ListComponentsFn: func(context.Context) ([]*uidoc.Component, error) {
				return []*uidoc.Component{
					{Name: "accordion", URL: "https://ui.shadcn.com/docs/components/accordion"},
					{Name: "button", URL: "https://ui.shadcn.com/docs/components/button"},
				}, nil
			},
		}
		sitemaps := &mock.SitemapService{
			DiscoverComponentURLsFn: func(_ context.Context, site uidoc.Site) ([]string, error) {
				assert.Equal(t, "https://ui.shadcn.com", site.DocsBaseURL)
				return []string{
					"https://ui.shadcn.com/docs/components/accordion",
					"https://ui.shadcn.com/docs/components/button",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Site:       uidoc.DefaultSite(),
			Components: components,
			Sitemaps:   sitemaps,
		}

		cmd := &main.AuditCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Catalog: 2 components, sitemap: 2 component pages")
		assert.Contains(t, stdout.String(), "Catalog and sitemap agree.")
	})

	t.Run("lists discrepancies in both directions", func(t *testing.T) {
		t.Parallel()

		components := &mock.ComponentService{
			ListComponentsFn: func(context.Context) ([]*uidoc.Component, error) {
				return []*uidoc.Component{
					{Name: "button", URL: "https://ui.shadcn.com/docs/components/button"},
					{Name: "tooltip", URL: "https://ui.shadcn.com/docs/components/tooltip"},
				}, nil
			},
		}
		sitemaps := &mock.SitemapService{
			DiscoverComponentURLsFn: func(context.Context, uidoc.Site) ([]string, error) {
				return []string{
					"https://ui.shadcn.com/docs/components/button",
					"https://ui.shadcn.com/docs/components/dialog",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Site:       uidoc.DefaultSite(),
			Components: components,
			Sitemaps:   sitemaps,
		}

		cmd := &main.AuditCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "In sitemap but not the catalog (1):")
		assert.Contains(t, stdout.String(), "dialog")
		assert.Contains(t, stdout.String(), "In catalog but not the sitemap (1):")
		assert.Contains(t, stdout.String(), "tooltip")
	})

	t.Run("ignores sitemap URLs outside the component docs", func(t *testing.T) {
		t.Parallel()

		components := &mock.ComponentService{
			ListComponentsFn: func(context.Context) ([]*uidoc.Component, error) {
				return []*uidoc.Component{
					{Name: "button", URL: "https://ui.shadcn.com/docs/components/button"},
				}, nil
			},
		}
		sitemaps := &mock.SitemapService{
			DiscoverComponentURLsFn: func(context.Context, uidoc.Site) ([]string, error) {
				return []string{
					"https://ui.shadcn.com/docs/components/button",
					"https://ui.shadcn.com/docs/components/",
					"https://ui.shadcn.com/docs/installation",
					"https://ui.shadcn.com/docs/components/button/changelog",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Site:       uidoc.DefaultSite(),
			Components: components,
			Sitemaps:   sitemaps,
		}

		cmd := &main.AuditCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Catalog: 1 components, sitemap: 1 component pages")
		assert.Contains(t, stdout.String(), "Catalog and sitemap agree.")
	})

	t.Run("returns error when sitemap discovery fails", func(t *testing.T) {
		t.Parallel()

		components := &mock.ComponentService{
			ListComponentsFn: func(context.Context) ([]*uidoc.Component, error) {
				return []*uidoc.Component{{Name: "button"}}, nil
			},
		}
		sitemaps := &mock.SitemapService{
			DiscoverComponentURLsFn: func(context.Context, uidoc.Site) ([]string, error) {
				return nil, uidoc.Errorf(uidoc.EINTERNAL, "failed to fetch sitemap: connection refused")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Site:       uidoc.DefaultSite(),
			Components: components,
			Sitemaps:   sitemaps,
		}

		cmd := &main.AuditCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, uidoc.EINTERNAL, uidoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "failed to fetch sitemap")
	})
}
