package main

import (
	"context"
	"io"

	"github.com/fwojciec/uidoc"
	"github.com/fwojciec/uidoc/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Site        uidoc.Site
	Components  uidoc.ComponentService
	Snapshots   uidoc.SnapshotService
	Sitemaps    uidoc.SitemapService
	Fetcher     uidoc.Fetcher
	Extractor   uidoc.ContentExtractor
	Converter   uidoc.Converter
	Snapshotter *crawl.Snapshotter
	Asker       uidoc.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve    ServeCmd    `cmd:"" help:"Serve the component documentation tools over MCP stdio"`
	List     ListCmd     `cmd:"" help:"List components in the registry catalog"`
	Detail   DetailCmd   `cmd:"" help:"Show a component's extracted documentation record"`
	Examples ExamplesCmd `cmd:"" help:"Show a component's code examples"`
	Search   SearchCmd   `cmd:"" help:"Search components by name or description"`
	Docs     DocsCmd     `cmd:"" help:"Render a component's documentation page as markdown"`
	Snapshot SnapshotCmd `cmd:"" help:"Snapshot the component catalog into a local database"`
	Audit    AuditCmd    `cmd:"" help:"Compare the catalog against the site's sitemap"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about a component"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DetailCmd is the "detail" subcommand.
type DetailCmd struct {
	Name string `arg:"" help:"Component name"`
	JSON bool   `help:"Print the record as JSON"`
}

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct {
	Name string `arg:"" help:"Component name"`
	JSON bool   `help:"Print the examples as JSON"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Substring to match against names and descriptions"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name      string `arg:"" help:"Component name"`
	Render    string `default:"auto" enum:"auto,always,never" help:"Browser rendering: auto probes the site, always forces the browser, never uses plain HTTP"`
	Extractor string `default:"trafilatura" enum:"trafilatura,readability" help:"Content extractor used before markdown conversion"`
}

// SnapshotCmd is the "snapshot" subcommand.
type SnapshotCmd struct {
	List        bool    `short:"l" help:"List stored snapshots instead of crawling"`
	Show        string  `help:"Print one stored snapshot's markdown and exit"`
	Export      string  `help:"Export stored snapshots as markdown files into a directory and exit" placeholder:"DIR"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64 `default:"2" help:"Per-domain request rate limit"`
	Render      string  `default:"auto" enum:"auto,always,never" help:"Browser rendering: auto probes the site, always forces the browser, never uses plain HTTP"`
	Extractor   string  `default:"trafilatura" enum:"trafilatura,readability" help:"Content extractor used before markdown conversion"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Name     string `arg:"" help:"Component name"`
	Question string `arg:"" help:"Question to ask about the component"`
}
