package main

import (
	"context"
	"io"
	"log/slog"

	parasite "github.com/trstickland/parasite-static"
	"github.com/trstickland/parasite-static/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Entities  parasite.EntityService
	Fetcher   parasite.Fetcher
	Extractor parasite.SectionExtractor
	Converter parasite.Converter
	Source    parasite.EntitySource
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sync         SyncCmd         `cmd:"" help:"Fetch genome pages and reconcile static artifacts on disk"`
	Missing      MissingCmd      `cmd:"" help:"List expected artifacts that are absent for an entity"`
	Placeholders PlaceholdersCmd `cmd:"" help:"Create placeholder markers for an entity's missing artifacts"`
	Add          AddCmd          `cmd:"" help:"Register a species/bioproject entity"`
	List         ListCmd         `cmd:"" help:"List all registered entities"`
	Delete       DeleteCmd       `cmd:"" help:"Delete a registered entity"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Root     string  `short:"r" default:"." env:"PARASITE_ROOT" help:"Root directory for the artifact tree"`
	BaseURL  string  `default:"https://parasite.wormbase.org" help:"Site base URL"`
	Source   string  `default:"registry" enum:"registry,sitemap,catalog" help:"Where to discover entities (registry, sitemap, catalog)"`
	Catalog  string  `help:"Catalog page URL (catalog source only; defaults to BASE-URL/species.html)"`
	Markdown bool    `short:"m" help:"Convert section markup to Markdown before writing"`
	Rate     float64 `default:"2" help:"Maximum fetches per second"`
	Verbose  bool    `short:"v" help:"Log fetch activity to stderr"`
}

// MissingCmd is the "missing" subcommand.
type MissingCmd struct {
	Species    string `arg:"" help:"Species name (e.g. ancylostoma_ceylanicum)"`
	Bioproject string `arg:"" help:"Bioproject accession (e.g. PRJNA231479)"`
	Root       string `short:"r" default:"." env:"PARASITE_ROOT" help:"Root directory for the artifact tree"`
}

// PlaceholdersCmd is the "placeholders" subcommand.
type PlaceholdersCmd struct {
	Species    string `arg:"" help:"Species name"`
	Bioproject string `arg:"" help:"Bioproject accession"`
	Root       string `short:"r" default:"." env:"PARASITE_ROOT" help:"Root directory for the artifact tree"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Species    string `arg:"" help:"Species name"`
	Bioproject string `arg:"" help:"Bioproject accession"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Species    string `arg:"" help:"Species name"`
	Bioproject string `arg:"" help:"Bioproject accession"`
	Force      bool   `help:"Confirm deletion"`
}
