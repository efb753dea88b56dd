// Package mcp exposes the component documentation service over the Model
// Context Protocol's stdio transport.
package mcp

import (
	"github.com/fwojciec/uidoc"
	"github.com/mark3labs/mcp-go/server"
)

// Server is an MCP server with the component documentation tools registered.
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates a Server exposing the given ComponentService.
func NewServer(service uidoc.ComponentService) *Server {
	s := server.NewMCPServer(
		"uidoc",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	AddListComponentsTool(s, service)
	AddGetComponentDetailsTool(s, service)
	AddGetComponentExamplesTool(s, service)
	AddSearchComponentsTool(s, service)

	return &Server{mcp: s}
}

// ServeStdio serves requests on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
