package mock

import (
	"context"

	parasite "github.com/trstickland/parasite-static"
)

var _ parasite.EntityService = (*EntityService)(nil)

// EntityService is a mock implementation of parasite.EntityService.
type EntityService struct {
	CreateEntityFn func(ctx context.Context, entity *parasite.Entity) error
	FindEntitiesFn func(ctx context.Context, filter parasite.EntityFilter) ([]*parasite.Entity, error)
	DeleteEntityFn func(ctx context.Context, id string) error
}

func (s *EntityService) CreateEntity(ctx context.Context, entity *parasite.Entity) error {
	return s.CreateEntityFn(ctx, entity)
}

func (s *EntityService) FindEntities(ctx context.Context, filter parasite.EntityFilter) ([]*parasite.Entity, error) {
	return s.FindEntitiesFn(ctx, filter)
}

func (s *EntityService) DeleteEntity(ctx context.Context, id string) error {
	return s.DeleteEntityFn(ctx, id)
}
