package main

import (
	"fmt"

	uimcp "github.com/fwojciec/uidoc/mcp"
)

// Run executes the serve command. The MCP transport owns the process's
// real stdin and stdout; everything the command itself prints goes to
// stderr.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := uimcp.NewServer(deps.Components)

	fmt.Fprintln(deps.Stderr, "Serving component documentation tools on stdio")
	return server.ServeStdio()
}
