package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/uidoc"
	"github.com/fwojciec/uidoc/crawl"
	"github.com/fwojciec/uidoc/gemini"
	"github.com/fwojciec/uidoc/goquery"
	"github.com/fwojciec/uidoc/htmltomarkdown"
	uihttp "github.com/fwojciec/uidoc/http"
	"github.com/fwojciec/uidoc/readability"
	"github.com/fwojciec/uidoc/registry"
	"github.com/fwojciec/uidoc/rod"
	uislog "github.com/fwojciec/uidoc/slog"
	"github.com/fwojciec/uidoc/sqlite"
	"github.com/fwojciec/uidoc/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used by the snapshot command. Set before calling Run().
	DBPath string

	// Registry endpoints. Overridable for end-to-end testing.
	Site uidoc.Site

	// SQLite database, open only while a snapshot command runs.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Site:   uidoc.DefaultSite(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Site:   m.Site,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("uidoc"),
		kong.Description("Query UI component documentation from the command line"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'uidoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Commands that query the live registry share one service wiring.
	switch cmd {
	case "list", "detail", "examples", "search", "audit", "ask":
		deps.Components = newComponentService(uihttp.NewFetcher(), m.Site)
	}

	if cmd == "serve" {
		// The MCP transport owns the process's real stdout, so logs go
		// to stderr.
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher := uislog.NewLoggingFetcher(uihttp.NewFetcher(), logger)
		service := newComponentService(fetcher, m.Site)
		deps.Components = uislog.NewLoggingComponentService(service, logger)
	}

	if cmd == "audit" {
		deps.Sitemaps = uihttp.NewSitemapService(nil)
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, deps.Components)
	}

	if cmd == "docs" {
		extractor := newExtractor(cli.Docs.Extractor)
		fetcher, err := m.wireRenderingFetcher(ctx, cli.Docs.Render, extractor, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Extractor = extractor
		deps.Converter = htmltomarkdown.NewConverter()
	}

	if cmd == "snapshot" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set UIDOC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Snapshots = sqlite.NewSnapshotService(m.DB)

		// The --list, --show and --export modes read the database only.
		if !cli.Snapshot.List && cli.Snapshot.Show == "" && cli.Snapshot.Export == "" {
			extractor := newExtractor(cli.Snapshot.Extractor)
			base, err := m.wireRenderingFetcher(ctx, cli.Snapshot.Render, extractor, stderr)
			if err != nil {
				return err
			}
			defer base.Close()

			// Every fetch in the snapshot pipeline goes through the
			// rate-limited fetcher, including the ones the query
			// service issues internally.
			limiter := crawl.NewDomainLimiter(cli.Snapshot.RPS)
			fetcher := crawl.NewRateLimitedFetcher(base, limiter)

			var tokenCounter uidoc.TokenCounter
			if tc, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
				tokenCounter = tc
			} else {
				fmt.Fprintf(stderr, "warning: token counts disabled: %v\n", err)
			}

			deps.Snapshotter = &crawl.Snapshotter{
				Components:   newComponentService(fetcher, m.Site),
				Fetcher:      fetcher,
				Extractor:    extractor,
				Converter:    htmltomarkdown.NewConverter(),
				Snapshots:    deps.Snapshots,
				TokenCounter: tokenCounter,
				Concurrency:  cli.Snapshot.Concurrency,
			}
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting during snapshot runs.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("UIDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "uidoc.db"
	}
	dir := filepath.Join(home, ".uidoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "uidoc.db")
}

// newComponentService assembles the live registry query service.
func newComponentService(fetcher uidoc.Fetcher, site uidoc.Site) *registry.Service {
	return &registry.Service{
		Fetcher: fetcher,
		Parser:  goquery.NewParser(),
		Links:   goquery.NewLinkExtractor(),
		Site:    site,
		Catalog: registry.NewCatalogStore(),
		Details: registry.NewDetailStore(),
	}
}

// newExtractor selects the content extractor by name.
func newExtractor(name string) uidoc.ContentExtractor {
	if name == "readability" {
		return readability.NewExtractor()
	}
	return trafilatura.NewExtractor()
}

// wireRenderingFetcher picks the page fetcher for the rendering commands.
// In auto mode it fetches the docs index with plain HTTP and with the
// browser and keeps the browser only when rendering adds content. It
// always returns a usable fetcher unless the browser was explicitly
// required and failed to start.
func (m *Main) wireRenderingFetcher(ctx context.Context, mode string, extractor uidoc.ContentExtractor, stderr io.Writer) (uidoc.Fetcher, error) {
	httpFetcher := uihttp.NewFetcher()

	switch mode {
	case "never":
		return httpFetcher, nil
	case "always":
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return rodFetcher, nil
	}

	probeURL := m.Site.IndexURL()

	staticHTML, err := httpFetcher.Fetch(ctx, probeURL)
	if err != nil {
		// Plain HTTP cannot reach the site; the browser is the only
		// remaining option, best effort.
		rodFetcher, rodErr := rod.NewFetcher()
		if rodErr != nil {
			return httpFetcher, nil
		}
		return rodFetcher, nil
	}

	rodFetcher, err := rod.NewFetcher()
	if err != nil {
		return httpFetcher, nil
	}

	renderedHTML, err := rodFetcher.Fetch(ctx, probeURL)
	if err != nil {
		_ = rodFetcher.Close()
		return httpFetcher, nil
	}

	if crawl.RenderingRequired(staticHTML, renderedHTML, extractor) {
		return rodFetcher, nil
	}

	_ = rodFetcher.Close()
	return httpFetcher, nil
}
