package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/uidoc"
)

// Run executes the docs command: fetch the component's documentation page,
// isolate its main content, and print it as markdown.
func (c *DocsCmd) Run(deps *Dependencies) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		fmt.Fprintln(deps.Stderr, "error: component name required")
		return uidoc.Errorf(uidoc.EINVALID, "component name required")
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, deps.Site.ComponentURL(name))
	if err != nil {
		if uidoc.ErrorCode(err) == uidoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: component %q not found. Use 'uidoc list' to see available components.\n", name)
			return uidoc.Errorf(uidoc.ENOTFOUND, "component %q not found", name)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	extracted, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uidoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
