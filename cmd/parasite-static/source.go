package main

import (
	"context"

	parasite "github.com/trstickland/parasite-static"
)

// registrySource enumerates entities from the local registry rather
// than from the remote site.
type registrySource struct {
	entities parasite.EntityService
}

var _ parasite.EntitySource = (*registrySource)(nil)

func (s *registrySource) Discover(ctx context.Context) ([]parasite.Entity, error) {
	found, err := s.entities.FindEntities(ctx, parasite.EntityFilter{})
	if err != nil {
		return nil, err
	}
	entities := make([]parasite.Entity, len(found))
	for i, e := range found {
		entities[i] = *e
	}
	return entities, nil
}
