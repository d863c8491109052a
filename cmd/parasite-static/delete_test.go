package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parasite "github.com/trstickland/parasite-static"
	main "github.com/trstickland/parasite-static/cmd/parasite-static"
	"github.com/trstickland/parasite-static/mock"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{Species: "Acanthocheilonema_viteae", Bioproject: "PRJEB1697"}

		err := cmd.Run(deps)

		assert.Equal(t, parasite.EINVALID, parasite.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes matching entity", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		entities := &mock.EntityService{
			FindEntitiesFn: func(_ context.Context, filter parasite.EntityFilter) ([]*parasite.Entity, error) {
				require.NotNil(t, filter.Species)
				require.NotNil(t, filter.Bioproject)
				return []*parasite.Entity{
					{ID: "ent-123", Species: *filter.Species, Bioproject: *filter.Bioproject},
				}, nil
			},
			DeleteEntityFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Entities: entities,
		}

		cmd := &main.DeleteCmd{Species: "Acanthocheilonema_viteae", Bioproject: "PRJEB1697", Force: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "ent-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted Acanthocheilonema_viteae_prjeb1697")
	})

	t.Run("reports not found for unknown entity", func(t *testing.T) {
		t.Parallel()

		entities := &mock.EntityService{
			FindEntitiesFn: func(_ context.Context, _ parasite.EntityFilter) ([]*parasite.Entity, error) {
				return nil, nil
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Entities: entities,
		}

		cmd := &main.DeleteCmd{Species: "Unknown_worm", Bioproject: "PRJXX0000", Force: true}

		err := cmd.Run(deps)

		assert.Equal(t, parasite.ENOTFOUND, parasite.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
