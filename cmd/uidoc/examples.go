package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/uidoc"
)

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	examples, err := deps.Components.GetComponentExamples(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		data, err := json.MarshalIndent(examples, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	if len(examples) == 0 {
		fmt.Fprintf(deps.Stdout, "No examples found for %q.\n", c.Name)
		return nil
	}

	fmt.Fprintln(deps.Stdout, uidoc.FormatExamples(examples))
	return nil
}
