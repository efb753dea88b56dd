package main

import (
	"fmt"

	"github.com/fwojciec/uidoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	components, err := deps.Components.ListComponents(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	if len(components) == 0 {
		fmt.Fprintln(deps.Stdout, "No components found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, uidoc.FormatComponents(components))
	return nil
}
