package main

import (
	"fmt"
	"os"
	"path/filepath"

	parasite "github.com/trstickland/parasite-static"
	"github.com/trstickland/parasite-static/fs"
)

// Run executes the missing command.
func (c *MissingCmd) Run(deps *Dependencies) error {
	entity := parasite.Entity{Species: c.Species, Bioproject: c.Bioproject}
	if err := entity.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	speciesDir := filepath.Join(c.Root, entity.Species)
	leaf := filepath.Join(speciesDir, entity.Bioproject)

	speciesMissing, err := missingArtifacts(speciesDir, entity.SpeciesBase(), parasite.SpeciesSuffixes())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}
	leafMissing, err := missingArtifacts(leaf, entity.ScanBase(), parasite.BioprojectSuffixes())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	missing := append(speciesMissing, leafMissing...)
	if len(missing) == 0 {
		fmt.Fprintf(deps.Stdout, "All artifacts present for %s\n", entity.PageName())
		return nil
	}

	for _, path := range missing {
		fmt.Fprintln(deps.Stdout, path)
	}
	return nil
}

// missingArtifacts reports the absent artifacts for base under dir. A
// directory that has not been bootstrapped yet holds nothing, so every
// expected artifact is missing; this command only observes and never
// creates the nesting itself.
func missingArtifacts(dir, base string, suffixes []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		paths := make([]string, 0, len(suffixes))
		for _, suffix := range suffixes {
			paths = append(paths, filepath.Join(dir, base+suffix))
		}
		return paths, nil
	}
	return fs.FindMissing(dir, base, suffixes)
}
