package mock

import (
	"context"

	parasite "github.com/trstickland/parasite-static"
)

var _ parasite.EntitySource = (*EntitySource)(nil)

// EntitySource is a mock implementation of parasite.EntitySource.
type EntitySource struct {
	DiscoverFn func(ctx context.Context) ([]parasite.Entity, error)
}

func (s *EntitySource) Discover(ctx context.Context) ([]parasite.Entity, error) {
	return s.DiscoverFn(ctx)
}
