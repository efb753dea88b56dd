package main

import (
	"fmt"

	"github.com/fwojciec/uidoc"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Name, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
