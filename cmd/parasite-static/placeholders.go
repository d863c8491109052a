package main

import (
	"fmt"
	"path/filepath"

	parasite "github.com/trstickland/parasite-static"
	"github.com/trstickland/parasite-static/fs"
)

// Run executes the placeholders command.
func (c *PlaceholdersCmd) Run(deps *Dependencies) error {
	entity := parasite.Entity{Species: c.Species, Bioproject: c.Bioproject}
	if err := entity.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	leaf, err := fs.EnsureEntityDir(c.Root, entity.Species, entity.Bioproject)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}
	speciesDir := filepath.Dir(leaf)

	speciesMarkers, err := fs.CreatePlaceholders(speciesDir, entity.SpeciesBase(), parasite.SpeciesSuffixes())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}
	leafMarkers, err := fs.CreatePlaceholders(leaf, entity.ScanBase(), parasite.BioprojectSuffixes())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	for _, path := range append(speciesMarkers, leafMarkers...) {
		fmt.Fprintln(deps.Stdout, path)
	}
	return nil
}
