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

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches, extracts and converts the component page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://ui.shadcn.com/docs/components/button", url)
				return "<html><body><main><h1>Button</h1></main></body></html>", nil
			},
		}
		extractor := &mock.ContentExtractor{
			ExtractFn: func(html string) (*uidoc.ExtractResult, error) {
				assert.Contains(t, html, "<main>")
				return &uidoc.ExtractResult{Title: "Button", ContentHTML: "<h1>Button</h1>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<h1>Button</h1>", html)
				return "# Button", nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Site:      uidoc.DefaultSite(),
			Fetcher:   fetcher,
			Extractor: extractor,
			Converter: converter,
		}

		cmd := &main.DocsCmd{Name: "button"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "# Button\n", stdout.String())
	})

	t.Run("returns not found with a hint when the page does not exist", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", uidoc.Errorf(uidoc.ENOTFOUND, "page not found")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Site:    uidoc.DefaultSite(),
			Fetcher: fetcher,
		}

		cmd := &main.DocsCmd{Name: "ghost"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, uidoc.ENOTFOUND, uidoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), `component "ghost" not found`)
		assert.Contains(t, stderr.String(), "uidoc list")
	})

	t.Run("returns invalid when the name is blank", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Site:   uidoc.DefaultSite(),
		}

		cmd := &main.DocsCmd{Name: "   "}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, uidoc.EINVALID, uidoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "component name required")
	})

	t.Run("propagates extraction failures", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<html></html>", nil
			},
		}
		extractor := &mock.ContentExtractor{
			ExtractFn: func(string) (*uidoc.ExtractResult, error) {
				return nil, uidoc.Errorf(uidoc.EINTERNAL, "extraction failed: no content")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Site:      uidoc.DefaultSite(),
			Fetcher:   fetcher,
			Extractor: extractor,
		}

		cmd := &main.DocsCmd{Name: "button"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, uidoc.EINTERNAL, uidoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "extraction failed: no content")
	})
}
