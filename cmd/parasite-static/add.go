package main

import (
	"fmt"

	parasite "github.com/trstickland/parasite-static"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	entity := &parasite.Entity{
		Species:    c.Species,
		Bioproject: c.Bioproject,
	}

	if err := deps.Entities.CreateEntity(deps.Ctx, entity); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Registered %s (%s)\n", entity.PageName(), entity.ID)
	return nil
}
