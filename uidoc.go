// Package uidoc provides structured access to a UI component registry's
// documentation. It extracts component metadata (description, installation,
// usage, variant props, runnable examples) from the registry's documentation
// site and source repository, and serves it through a small set of cached
// query operations.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package uidoc
