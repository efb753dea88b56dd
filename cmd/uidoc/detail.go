package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/uidoc"
)

// Run executes the detail command.
func (c *DetailCmd) Run(deps *Dependencies) error {
	detail, err := deps.Components.GetComponentDetails(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	fmt.Fprintln(deps.Stdout, uidoc.FormatDetail(detail))
	return nil
}
