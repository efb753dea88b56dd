package main

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/fwojciec/uidoc"
)

// Run executes the audit command: compare the catalog scanned from the
// index page against the component pages published in the site's sitemap.
func (c *AuditCmd) Run(deps *Dependencies) error {
	components, err := deps.Components.ListComponents(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	urls, err := deps.Sitemaps.DiscoverComponentURLs(deps.Ctx, deps.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	catalog := make(map[string]bool, len(components))
	for _, component := range components {
		catalog[component.Name] = true
	}

	sitemap := make(map[string]bool, len(urls))
	for _, raw := range urls {
		if name := componentNameFromURL(raw); name != "" {
			sitemap[name] = true
		}
	}

	var missingFromCatalog, missingFromSitemap []string
	for name := range sitemap {
		if !catalog[name] {
			missingFromCatalog = append(missingFromCatalog, name)
		}
	}
	for name := range catalog {
		if !sitemap[name] {
			missingFromSitemap = append(missingFromSitemap, name)
		}
	}
	sort.Strings(missingFromCatalog)
	sort.Strings(missingFromSitemap)

	fmt.Fprintf(deps.Stdout, "Catalog: %d components, sitemap: %d component pages\n", len(catalog), len(sitemap))

	if len(missingFromCatalog) == 0 && len(missingFromSitemap) == 0 {
		fmt.Fprintln(deps.Stdout, "Catalog and sitemap agree.")
		return nil
	}

	if len(missingFromCatalog) > 0 {
		fmt.Fprintf(deps.Stdout, "\nIn sitemap but not the catalog (%d):\n", len(missingFromCatalog))
		for _, name := range missingFromCatalog {
			fmt.Fprintf(deps.Stdout, "  %s\n", name)
		}
	}

	if len(missingFromSitemap) > 0 {
		fmt.Fprintf(deps.Stdout, "\nIn catalog but not the sitemap (%d):\n", len(missingFromSitemap))
		for _, name := range missingFromSitemap {
			fmt.Fprintf(deps.Stdout, "  %s\n", name)
		}
	}

	return nil
}

// componentNameFromURL extracts the component name from a docs page URL.
// Returns "" when the URL is not a direct component page.
func componentNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	path := strings.TrimSuffix(parsed.Path, "/")
	if !strings.HasPrefix(path, uidoc.ComponentLinkPrefix) {
		return ""
	}

	name := strings.TrimPrefix(path, uidoc.ComponentLinkPrefix)
	if name == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}
