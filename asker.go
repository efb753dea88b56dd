package uidoc

import "context"

// Asker provides natural language question answering over a component's
// extracted documentation.
type Asker interface {
	// Ask answers a natural language question about a component, grounded
	// in its extracted detail record and examples.
	// Returns EINVALID if name or question is empty.
	// Returns ENOTFOUND if the component does not exist.
	Ask(ctx context.Context, name string, question string) (string, error)
}
