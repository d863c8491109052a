package main

import (
	"fmt"

	parasite "github.com/trstickland/parasite-static"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entities, err := deps.Entities.FindEntities(deps.Ctx, parasite.EntityFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	if len(entities) == 0 {
		fmt.Fprintln(deps.Stdout, "No entities registered. Use 'parasite-static add' to register one.")
		return nil
	}

	for _, e := range entities {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", e.ID, e.Species, e.Bioproject)
	}

	return nil
}
