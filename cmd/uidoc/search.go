package main

import (
	"fmt"

	"github.com/fwojciec/uidoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	matches, err := deps.Components.SearchComponents(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "No components match %q.\n", c.Query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, uidoc.FormatComponents(matches))
	return nil
}
