package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/uidoc"
	"github.com/fwojciec/uidoc/mock"
	"github.com/fwojciec/uidoc/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heading(level int, text string) uidoc.Node {
	return uidoc.Node{Kind: uidoc.NodeHeading, Level: level, Text: text}
}

func paragraph(text string) uidoc.Node {
	return uidoc.Node{Kind: uidoc.NodeParagraph, Text: text}
}

func code(text string) uidoc.Node {
	return uidoc.Node{Kind: uidoc.NodeCode, Text: text}
}

func tabs(children ...uidoc.Node) uidoc.Node {
	return uidoc.Node{Kind: uidoc.NodeTabs, Children: children}
}

func container(children ...uidoc.Node) uidoc.Node {
	return uidoc.Node{Kind: uidoc.NodeContainer, Children: children}
}

// buttonPageNodes is a parsed component page with every extractable field
// populated.
func buttonPageNodes() []uidoc.Node {
	return []uidoc.Node{
		heading(1, "Button"),
		paragraph("Displays a button or a component that looks like a button."),
		heading(2, "Installation"),
		tabs(code("npx shadcn@latest add button")),
		heading(2, "Usage"),
		code(`import { Button } from "@/components/ui/button"`),
		heading(2, "Examples"),
		heading(3, "Outline"),
		tabs(code(`<Button variant="outline">Outline</Button>`)),
	}
}

func TestService_ListComponents(t *testing.T) {
	t.Parallel()

	t.Run("scans the index once and serves the cached catalog", func(t *testing.T) {
		t.Parallel()

		site := uidoc.DefaultSite()
		fetchCalls := 0
		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetchCalls++
					assert.Equal(t, site.IndexURL(), url)
					return "<html>", nil
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(html string) ([]uidoc.Link, error) {
					return []uidoc.Link{
						{Href: "/docs/components/button", Text: "Button"},
						{Href: "/docs/installation", Text: "Installation"},
						{Href: "/docs/components/badge", Text: "Badge"},
					}, nil
				},
			},
			Site:    site,
			Catalog: registry.NewCatalogStore(),
		}

		first, err := s.ListComponents(context.Background())
		require.NoError(t, err)
		require.Len(t, first, 2)
		assert.Equal(t, "button", first[0].Name)
		assert.Equal(t, site.ComponentURL("button"), first[0].URL)
		assert.Equal(t, "badge", first[1].Name)

		second, err := s.ListComponents(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, fetchCalls)
	})

	t.Run("index fetch failure is an internal error", func(t *testing.T) {
		t.Parallel()

		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", errors.New("connection refused")
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
		}

		_, err := s.ListComponents(context.Background())
		require.Error(t, err)
		assert.Equal(t, uidoc.EINTERNAL, uidoc.ErrorCode(err))
	})

	t.Run("index fetch failure is internal even when upstream reports not found", func(t *testing.T) {
		t.Parallel()

		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", uidoc.Errorf(uidoc.ENOTFOUND, "resource not found")
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
		}

		_, err := s.ListComponents(context.Background())
		require.Error(t, err)
		assert.Equal(t, uidoc.EINTERNAL, uidoc.ErrorCode(err))
	})

	t.Run("link scan failure is an internal error", func(t *testing.T) {
		t.Parallel()

		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html>", nil
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(html string) ([]uidoc.Link, error) {
					return nil, errors.New("malformed document")
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
		}

		_, err := s.ListComponents(context.Background())
		require.Error(t, err)
		assert.Equal(t, uidoc.EINTERNAL, uidoc.ErrorCode(err))
	})
}

func TestService_GetComponentDetails(t *testing.T) {
	t.Parallel()

	t.Run("extracts the full detail record", func(t *testing.T) {
		t.Parallel()

		site := uidoc.DefaultSite()
		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, site.ComponentURL("button"), url)
					return "<html>", nil
				},
			},
			Parser: &mock.DocumentParser{
				ParseFn: func(html string) ([]uidoc.Node, error) {
					return buttonPageNodes(), nil
				},
			},
			Site:    site,
			Catalog: registry.NewCatalogStore(),
			Details: registry.NewDetailStore(),
		}

		detail, err := s.GetComponentDetails(context.Background(), "button")
		require.NoError(t, err)
		assert.Equal(t, "button", detail.Name)
		assert.Equal(t, "Displays a button or a component that looks like a button.", detail.Description)
		assert.Equal(t, site.ComponentURL("button"), detail.URL)
		assert.Equal(t, site.SourceURL("button"), detail.SourceURL)
		assert.Equal(t, "npx shadcn@latest add button", detail.Installation)
		assert.Equal(t, `import { Button } from "@/components/ui/button"`, detail.Usage)

		require.Contains(t, detail.Props, "Outline")
		outline := detail.Props["Outline"]
		assert.Equal(t, uidoc.VariantType, outline.Type)
		assert.Equal(t, "Outline variant of the button component", outline.Description)
		assert.False(t, outline.Required)
		assert.Equal(t, `<Button variant="outline">Outline</Button>`, outline.Example)
	})

	t.Run("serves the cached record without a second fetch", func(t *testing.T) {
		t.Parallel()

		fetchCalls := 0
		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					fetchCalls++
					return "<html>", nil
				},
			},
			Parser: &mock.DocumentParser{
				ParseFn: func(html string) ([]uidoc.Node, error) {
					return buttonPageNodes(), nil
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
			Details: registry.NewDetailStore(),
		}

		first, err := s.GetComponentDetails(context.Background(), "button")
		require.NoError(t, err)
		second, err := s.GetComponentDetails(context.Background(), "button")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, fetchCalls)
	})

	t.Run("a failed lookup writes no cache entry", func(t *testing.T) {
		t.Parallel()

		fetchCalls := 0
		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetchCalls++
					return "", uidoc.Errorf(uidoc.ENOTFOUND, "resource not found: %s", url)
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
			Details: registry.NewDetailStore(),
		}

		_, err := s.GetComponentDetails(context.Background(), "ghost")
		require.Error(t, err)
		assert.Equal(t, uidoc.ENOTFOUND, uidoc.ErrorCode(err))
		assert.Equal(t, `component "ghost" not found`, uidoc.ErrorMessage(err))

		_, err = s.GetComponentDetails(context.Background(), "ghost")
		require.Error(t, err)
		assert.Equal(t, uidoc.ENOTFOUND, uidoc.ErrorCode(err))
		assert.Equal(t, 2, fetchCalls)
	})

	t.Run("other fetch failures pass through as internal", func(t *testing.T) {
		t.Parallel()

		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", errors.New("connection reset")
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
			Details: registry.NewDetailStore(),
		}

		_, err := s.GetComponentDetails(context.Background(), "button")
		require.Error(t, err)
		assert.Equal(t, uidoc.EINTERNAL, uidoc.ErrorCode(err))
	})

	t.Run("empty name fails before any fetch", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "   "} {
			fetchCalls := 0
			s := &registry.Service{
				Fetcher: &mock.Fetcher{
					FetchFn: func(_ context.Context, _ string) (string, error) {
						fetchCalls++
						return "", nil
					},
				},
				Site:    uidoc.DefaultSite(),
				Catalog: registry.NewCatalogStore(),
				Details: registry.NewDetailStore(),
			}

			_, err := s.GetComponentDetails(context.Background(), name)
			require.Error(t, err)
			assert.Equal(t, uidoc.EINVALID, uidoc.ErrorCode(err))
			assert.Equal(t, 0, fetchCalls)
		}
	})
}

func TestService_GetComponentExamples(t *testing.T) {
	t.Parallel()

	// newExamplesService routes fetches by URL: the component page parses to
	// pageNodes, the demo file returns demoBody or demoErr.
	newExamplesService := func(pageNodes []uidoc.Node, demoBody string, demoErr error, counts map[string]int) *registry.Service {
		site := uidoc.DefaultSite()
		return &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if counts != nil {
						counts[url]++
					}
					if url == site.DemoURL("button") {
						return demoBody, demoErr
					}
					return "<html>", nil
				},
			},
			Parser: &mock.DocumentParser{
				ParseFn: func(html string) ([]uidoc.Node, error) {
					return pageNodes, nil
				},
			},
			Site:    site,
			Catalog: registry.NewCatalogStore(),
			Details: registry.NewDetailStore(),
		}
	}

	t.Run("collects page examples then the demo entry", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			heading(2, "Foo"),
			code("const a = 1"),
			container(code("const b = 2")),
		}
		s := newExamplesService(nodes, "export default function ButtonDemo() {}", nil, nil)

		examples, err := s.GetComponentExamples(context.Background(), "button")
		require.NoError(t, err)
		require.Len(t, examples, 3)

		assert.Equal(t, "Foo", examples[0].Title)
		assert.Equal(t, "Foo example", examples[0].Description)
		assert.Equal(t, "const a = 1", examples[0].Code)

		assert.Equal(t, "Code Example 2", examples[1].Title)
		assert.Equal(t, "Code example", examples[1].Description)
		assert.Equal(t, "const b = 2", examples[1].Code)

		assert.Equal(t, "button demo", examples[2].Title)
		assert.Equal(t, "Demo from the component registry", examples[2].Description)
		assert.Equal(t, "export default function ButtonDemo() {}", examples[2].Code)
	})

	t.Run("demo code is preserved verbatim", func(t *testing.T) {
		t.Parallel()

		s := newExamplesService(nil, "  indented\n", nil, nil)

		examples, err := s.GetComponentExamples(context.Background(), "button")
		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, "  indented\n", examples[0].Code)
	})

	t.Run("omits the demo entry when the demo fetch fails", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{code("const a = 1")}
		s := newExamplesService(nodes, "", uidoc.Errorf(uidoc.ENOTFOUND, "resource not found"), nil)

		examples, err := s.GetComponentExamples(context.Background(), "button")
		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, "Code Example 1", examples[0].Title)
	})

	t.Run("omits the demo entry when the demo file is empty", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{code("const a = 1")}
		s := newExamplesService(nodes, "   \n", nil, nil)

		examples, err := s.GetComponentExamples(context.Background(), "button")
		require.NoError(t, err)
		require.Len(t, examples, 1)
	})

	t.Run("results are not cached between calls", func(t *testing.T) {
		t.Parallel()

		site := uidoc.DefaultSite()
		counts := make(map[string]int)
		s := newExamplesService([]uidoc.Node{code("const a = 1")}, "demo", nil, counts)

		_, err := s.GetComponentExamples(context.Background(), "button")
		require.NoError(t, err)
		_, err = s.GetComponentExamples(context.Background(), "button")
		require.NoError(t, err)

		assert.Equal(t, 2, counts[site.ComponentURL("button")])
		assert.Equal(t, 2, counts[site.DemoURL("button")])
	})

	t.Run("unknown component is not found", func(t *testing.T) {
		t.Parallel()

		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", uidoc.Errorf(uidoc.ENOTFOUND, "resource not found: %s", url)
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
			Details: registry.NewDetailStore(),
		}

		_, err := s.GetComponentExamples(context.Background(), "ghost")
		require.Error(t, err)
		assert.Equal(t, uidoc.ENOTFOUND, uidoc.ErrorCode(err))
		assert.Equal(t, `component "ghost" not found`, uidoc.ErrorMessage(err))
	})

	t.Run("empty name fails before any fetch", func(t *testing.T) {
		t.Parallel()

		fetchCalls := 0
		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					fetchCalls++
					return "", nil
				},
			},
			Site: uidoc.DefaultSite(),
		}

		_, err := s.GetComponentExamples(context.Background(), "  ")
		require.Error(t, err)
		assert.Equal(t, uidoc.EINVALID, uidoc.ErrorCode(err))
		assert.Equal(t, 0, fetchCalls)
	})
}

func TestService_SearchComponents(t *testing.T) {
	t.Parallel()

	// preloadedService returns a service whose catalog store already holds
	// the given components, so no fetch should ever happen.
	preloadedService := func(t *testing.T, components []*uidoc.Component) *registry.Service {
		t.Helper()
		catalog := registry.NewCatalogStore()
		catalog.Set(components)
		return &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					t.Error("unexpected fetch with a populated catalog")
					return "", nil
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: catalog,
		}
	}

	t.Run("matches name substrings", func(t *testing.T) {
		t.Parallel()

		s := preloadedService(t, []*uidoc.Component{
			{Name: "button"},
			{Name: "badge"},
		})

		matches, err := s.SearchComponents(context.Background(), "butt")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "button", matches[0].Name)
	})

	t.Run("matches lowercased descriptions", func(t *testing.T) {
		t.Parallel()

		s := preloadedService(t, []*uidoc.Component{
			{Name: "button", Description: "Displays a button."},
			{Name: "dialog", Description: "A window Overlaid on the primary content."},
		})

		matches, err := s.SearchComponents(context.Background(), "overlaid")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "dialog", matches[0].Name)
	})

	t.Run("lowercases the query", func(t *testing.T) {
		t.Parallel()

		s := preloadedService(t, []*uidoc.Component{
			{Name: "button"},
			{Name: "badge"},
		})

		matches, err := s.SearchComponents(context.Background(), "BUTTON")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "button", matches[0].Name)
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		t.Parallel()

		s := preloadedService(t, []*uidoc.Component{
			{Name: "button", Description: "Displays a button."},
			{Name: "calendar", Description: "A date field."},
			{Name: "badge", Description: "Displays a badge."},
		})

		matches, err := s.SearchComponents(context.Background(), "displays")
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "button", matches[0].Name)
		assert.Equal(t, "badge", matches[1].Name)
	})

	t.Run("returns no matches for an unknown term", func(t *testing.T) {
		t.Parallel()

		s := preloadedService(t, []*uidoc.Component{{Name: "button"}})

		matches, err := s.SearchComponents(context.Background(), "carousel")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("loads the catalog when absent", func(t *testing.T) {
		t.Parallel()

		fetchCalls := 0
		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					fetchCalls++
					return "<html>", nil
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(html string) ([]uidoc.Link, error) {
					return []uidoc.Link{{Href: "/docs/components/button", Text: "Button"}}, nil
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
		}

		matches, err := s.SearchComponents(context.Background(), "button")
		require.NoError(t, err)
		require.Len(t, matches, 1)

		_, err = s.ListComponents(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, fetchCalls)
	})

	t.Run("empty query fails before any fetch", func(t *testing.T) {
		t.Parallel()

		fetchCalls := 0
		s := &registry.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					fetchCalls++
					return "", nil
				},
			},
			Site:    uidoc.DefaultSite(),
			Catalog: registry.NewCatalogStore(),
		}

		_, err := s.SearchComponents(context.Background(), " ")
		require.Error(t, err)
		assert.Equal(t, uidoc.EINVALID, uidoc.ErrorCode(err))
		assert.Equal(t, 0, fetchCalls)
	})
}
