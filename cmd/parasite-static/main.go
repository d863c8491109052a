package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	parasite "github.com/trstickland/parasite-static"
	"github.com/trstickland/parasite-static/goquery"
	"github.com/trstickland/parasite-static/html"
	"github.com/trstickland/parasite-static/htmltomarkdown"
	parasitehttp "github.com/trstickland/parasite-static/http"
	parasiteslog "github.com/trstickland/parasite-static/slog"
	"github.com/trstickland/parasite-static/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the entity registry.
	DB *sqlite.DB

	// Entity registry service, exposed for end-to-end testing.
	EntityService parasite.EntityService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("parasite-static"),
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
		return fmt.Errorf("no command specified. Run 'parasite-static --help' to see available commands")
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

	// Open the entity registry
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PARASITE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.EntityService = sqlite.NewEntityService(m.DB)
	deps.DB = m.DB
	deps.Entities = m.EntityService

	// Wire command-specific dependencies
	if cmd == "sync" {
		logger := slog.New(slog.DiscardHandler)
		if cli.Sync.Verbose {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}
		deps.Logger = logger

		fetcher := parasitehttp.NewFetcher(parasitehttp.WithRateLimit(cli.Sync.Rate))
		deps.Fetcher = parasiteslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()

		deps.Extractor = html.NewExtractor()
		if cli.Sync.Markdown {
			deps.Converter = htmltomarkdown.NewConverter()
		}

		switch cli.Sync.Source {
		case "sitemap":
			deps.Source = parasitehttp.NewSitemapSource(nil, cli.Sync.BaseURL)
		case "catalog":
			catalogURL := cli.Sync.Catalog
			if catalogURL == "" {
				catalogURL = strings.TrimSuffix(cli.Sync.BaseURL, "/") + "/species.html"
			}
			deps.Source = goquery.NewCatalogSource(deps.Fetcher, catalogURL)
		default:
			deps.Source = &registrySource{entities: m.EntityService}
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PARASITE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "parasite-static.db"
	}
	dir := filepath.Join(home, ".parasite-static")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "entities.db")
}
