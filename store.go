package uidoc

// CatalogStore caches the component catalog for the lifetime of the process.
// There is a single entry with no expiry. Implementations must be safe for
// concurrent use, but callers racing to populate an absent entry are not
// deduplicated; the last write wins and all writes carry equivalent data.
type CatalogStore interface {
	// Get returns the cached catalog. ok is false before first population.
	Get() (components []*Component, ok bool)

	// Set stores the catalog.
	Set(components []*Component)
}

// DetailStore caches extracted component details by name for the lifetime
// of the process. Entries are immutable once written and are never evicted.
// Lookups that failed upstream write no entry, so a later request for the
// same name fetches again.
type DetailStore interface {
	// Get returns the cached detail for a name. ok is false if absent.
	Get(name string) (detail *ComponentDetail, ok bool)

	// Set stores a detail record under its name.
	Set(name string, detail *ComponentDetail)
}
