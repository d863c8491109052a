package main

import (
	"fmt"

	parasite "github.com/trstickland/parasite-static"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return parasite.Errorf(parasite.EINVALID, "use --force to confirm deletion")
	}

	entities, err := deps.Entities.FindEntities(deps.Ctx, parasite.EntityFilter{
		Species:    &c.Species,
		Bioproject: &c.Bioproject,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	if len(entities) == 0 {
		fmt.Fprintf(deps.Stderr, "error: entity %s/%s not found. Use 'parasite-static list' to see registered entities.\n", c.Species, c.Bioproject)
		return parasite.Errorf(parasite.ENOTFOUND, "entity %s/%s not found", c.Species, c.Bioproject)
	}

	entity := entities[0]
	if err := deps.Entities.DeleteEntity(deps.Ctx, entity.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parasite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", entity.PageName())
	return nil
}
