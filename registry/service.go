// Package registry implements uidoc.ComponentService against a live
// component documentation site and its source repository.
package registry

import (
	"context"
	"strings"

	"github.com/fwojciec/uidoc"
	"github.com/fwojciec/uidoc/extract"
)

var _ uidoc.ComponentService = (*Service)(nil)

// Service answers component queries by fetching documentation pages on
// demand and caching results in the injected stores for the lifetime of
// the process. Each query performs at most one fetch per resource; there
// are no retries.
type Service struct {
	Fetcher uidoc.Fetcher
	Parser  uidoc.DocumentParser
	Links   uidoc.LinkExtractor
	Site    uidoc.Site
	Catalog uidoc.CatalogStore
	Details uidoc.DetailStore
}

// ListComponents returns the component catalog in documentation index
// order. The index page is scanned once; later calls serve the cached
// catalog without fetching.
func (s *Service) ListComponents(ctx context.Context) ([]*uidoc.Component, error) {
	if components, ok := s.Catalog.Get(); ok {
		return components, nil
	}

	body, err := s.Fetcher.Fetch(ctx, s.Site.IndexURL())
	if err != nil {
		return nil, uidoc.Errorf(uidoc.EINTERNAL, "failed to fetch component index: %v", err)
	}

	links, err := s.Links.ExtractLinks(body)
	if err != nil {
		return nil, uidoc.Errorf(uidoc.EINTERNAL, "failed to scan component index: %v", err)
	}

	components := extract.Catalog(links, s.Site)
	s.Catalog.Set(components)
	return components, nil
}

// GetComponentDetails returns the extracted detail record for a component.
// The documentation page is fetched and parsed on the first request for a
// name; later requests serve the cached record. Failed lookups write no
// cache entry, so a later request for the same name fetches again.
func (s *Service) GetComponentDetails(ctx context.Context, name string) (*uidoc.ComponentDetail, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, uidoc.Errorf(uidoc.EINVALID, "component name required")
	}

	if detail, ok := s.Details.Get(name); ok {
		return detail, nil
	}

	body, err := s.Fetcher.Fetch(ctx, s.Site.ComponentURL(name))
	if err != nil {
		if uidoc.ErrorCode(err) == uidoc.ENOTFOUND {
			return nil, uidoc.Errorf(uidoc.ENOTFOUND, "component %q not found", name)
		}
		return nil, err
	}

	nodes, err := s.Parser.Parse(body)
	if err != nil {
		return nil, err
	}

	detail := &uidoc.ComponentDetail{
		Name:         name,
		Description:  extract.Description(nodes),
		URL:          s.Site.ComponentURL(name),
		SourceURL:    s.Site.SourceURL(name),
		Installation: extract.Installation(nodes),
		Usage:        extract.Usage(nodes),
		Props:        extract.Variants(nodes, name),
	}
	s.Details.Set(name, detail)
	return detail, nil
}

// GetComponentExamples returns every code example for a component: the
// examples collected from its documentation page followed by the demo file
// from the source repository. Results are collected fresh on every call.
func (s *Service) GetComponentExamples(ctx context.Context, name string) ([]*uidoc.Example, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, uidoc.Errorf(uidoc.EINVALID, "component name required")
	}

	body, err := s.Fetcher.Fetch(ctx, s.Site.ComponentURL(name))
	if err != nil {
		if uidoc.ErrorCode(err) == uidoc.ENOTFOUND {
			return nil, uidoc.Errorf(uidoc.ENOTFOUND, "component %q not found", name)
		}
		return nil, err
	}

	nodes, err := s.Parser.Parse(body)
	if err != nil {
		return nil, err
	}

	examples := extract.PageExamples(nodes)
	if demo := s.fetchDemo(ctx, name); demo != nil {
		examples = append(examples, demo)
	}
	return examples, nil
}

// fetchDemo retrieves the component's demo file from the source repository.
// The demo is one of several example sources, so any failure or an empty
// file yields nil instead of an error.
func (s *Service) fetchDemo(ctx context.Context, name string) *uidoc.Example {
	code, err := s.Fetcher.Fetch(ctx, s.Site.DemoURL(name))
	if err != nil || strings.TrimSpace(code) == "" {
		return nil
	}

	return &uidoc.Example{
		Title:       name + " demo",
		Description: "Demo from the component registry",
		Code:        code,
	}
}

// SearchComponents filters the catalog to components whose name or
// description contains the query, preserving catalog order. The catalog is
// loaded first if absent. Matching is case-insensitive on the query side.
func (s *Service) SearchComponents(ctx context.Context, query string) ([]*uidoc.Component, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, uidoc.Errorf(uidoc.EINVALID, "query required")
	}

	components, err := s.ListComponents(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matches []*uidoc.Component
	for _, c := range components {
		if strings.Contains(c.Name, q) || strings.Contains(strings.ToLower(c.Description), q) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}
