package uidoc

import "context"

// Component identifies a single entry in the registry's component catalog.
// At the catalog stage only the name and documentation URL are known; the
// description is filled in when the component's page is fetched.
type Component struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ComponentDetail is the full extracted record for one component.
// The extraction fields degrade independently: a page missing a section
// yields an empty field, never an error.
type ComponentDetail struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	URL          string                 `json:"url"`
	SourceURL    string                 `json:"sourceUrl"`
	Installation string                 `json:"installation"`
	Usage        string                 `json:"usage"`
	Props        map[string]VariantSpec `json:"props,omitempty"`
}

// VariantType is the Type value carried by every VariantSpec.
const VariantType = "variant"

// VariantSpec describes one visual variant of a component, derived from a
// level-3 heading in the page's Examples section.
type VariantSpec struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Example     string `json:"example"`
}

// ComponentService is the query surface over the registry's documentation.
//
// Results are cached per key for the lifetime of the process: the catalog is
// fetched at most once, and each component's detail at most once. Example
// collection is recomputed on every call. No operation ever retries a fetch.
type ComponentService interface {
	// ListComponents returns the component catalog in document order.
	ListComponents(ctx context.Context) ([]*Component, error)

	// GetComponentDetails returns the extracted detail record for a component.
	// Returns EINVALID if name is empty or whitespace, before any fetch.
	// Returns ENOTFOUND if the registry has no page for the component.
	GetComponentDetails(ctx context.Context, name string) (*ComponentDetail, error)

	// GetComponentExamples returns the component's code examples in
	// collection order.
	// Returns EINVALID if name is empty or whitespace, before any fetch.
	// Returns ENOTFOUND if the registry has no page for the component.
	GetComponentExamples(ctx context.Context, name string) ([]*Example, error)

	// SearchComponents returns catalog entries whose name contains the query,
	// or whose lowercased description contains the query, preserving catalog
	// order.
	// Returns EINVALID if query is empty or whitespace, before any fetch.
	SearchComponents(ctx context.Context, query string) ([]*Component, error)
}
