package main

import (
	"fmt"

	parasite "github.com/trstickland/parasite-static"
	"github.com/trstickland/parasite-static/mirror"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	m := &mirror.Mirror{
		Source:    deps.Source,
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Converter: deps.Converter,
		BaseURL:   c.BaseURL,
		Root:      c.Root,
		Logger:    deps.Logger,
	}

	summary, err := m.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d entities: %d fetched, %d skipped, %d placeheld, %d materialized, %d parse failures\n",
		summary.Entities, summary.Fetched, summary.Skipped, summary.Placeheld, summary.Materialized, summary.ParseFailures)
	return nil
}
