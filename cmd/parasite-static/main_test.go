package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/trstickland/parasite-static/cmd/parasite-static"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help with error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{}, stdout, stderr)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "sync")
	})

	t.Run("help command succeeds", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Commands")
	})

	t.Run("add then list round-trips through the registry", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "entities.db")
		ctx := context.Background()

		addMain := main.NewMain()
		addMain.DBPath = dbPath
		stdout := &bytes.Buffer{}
		err := addMain.Run(ctx, []string{"add", "Acanthocheilonema_viteae", "PRJEB1697"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Registered Acanthocheilonema_viteae_prjeb1697")

		listMain := main.NewMain()
		listMain.DBPath = dbPath
		stdout = &bytes.Buffer{}
		err = listMain.Run(ctx, []string{"list"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Acanthocheilonema_viteae")
		assert.Contains(t, stdout.String(), "PRJEB1697")
	})

	t.Run("delete without force fails", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "entities.db")
		ctx := context.Background()

		addMain := main.NewMain()
		addMain.DBPath = dbPath
		err := addMain.Run(ctx, []string{"add", "Litomosoides_sigmodontis", "PRJEB3075"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		delMain := main.NewMain()
		delMain.DBPath = dbPath
		stderr := &bytes.Buffer{}
		err = delMain.Run(ctx, []string{"delete", "Litomosoides_sigmodontis", "PRJEB3075"}, &bytes.Buffer{}, stderr)
		assert.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("unknown command is rejected", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()

		err := m.Run(context.Background(), []string{"frobnicate"}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Error(t, err)
	})
}
