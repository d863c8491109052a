package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parasite "github.com/trstickland/parasite-static"
	main "github.com/trstickland/parasite-static/cmd/parasite-static"
	"github.com/trstickland/parasite-static/html"
	"github.com/trstickland/parasite-static/mock"
)

func TestSyncCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("materializes sections from a published page", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		page := `<div>
			<a name="about">About</a>
			<p>A filarial nematode.</p>
		</div>
		<div>
			<a name="assembly">Assembly</a>
			<p>Contig N50 of 27 kb.</p>
		</div>`

		source := &mock.EntitySource{
			DiscoverFn: func(_ context.Context) ([]parasite.Entity, error) {
				return []parasite.Entity{
					{Species: "Acanthocheilonema_viteae", Bioproject: "prjeb1697"},
				}, nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://example.org/Acanthocheilonema_viteae_prjeb1697", url)
				return page, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Source:    source,
			Fetcher:   fetcher,
			Extractor: html.NewExtractor(),
		}

		cmd := &main.SyncCmd{Root: root, BaseURL: "https://example.org"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1 materialized")

		about := filepath.Join(root, "Acanthocheilonema_viteae", "Acanthocheilonema_viteae.about.md")
		data, err := os.ReadFile(about)
		require.NoError(t, err)
		assert.Contains(t, string(data), "filarial nematode")

		assembly := filepath.Join(root, "Acanthocheilonema_viteae", "prjeb1697",
			"Acanthocheilonema_viteae_PRJEB1697_assembly.md")
		assert.FileExists(t, assembly)
	})

	t.Run("placeholds entities without a published page", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()

		source := &mock.EntitySource{
			DiscoverFn: func(_ context.Context) ([]parasite.Entity, error) {
				return []parasite.Entity{
					{Species: "Litomosoides_sigmodontis", Bioproject: "prjeb3075"},
				}, nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", parasite.Errorf(parasite.ENOTFOUND, "no page at %s", url)
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Source:    source,
			Fetcher:   fetcher,
			Extractor: html.NewExtractor(),
		}

		cmd := &main.SyncCmd{Root: root, BaseURL: "https://example.org"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1 placeheld")

		leaf := filepath.Join(root, "Litomosoides_sigmodontis", "prjeb3075")
		assert.FileExists(t, filepath.Join(leaf,
			"Litomosoides_sigmodontis_PRJEB3075.about.md.placeholder"))
	})

	t.Run("returns error when discovery fails", func(t *testing.T) {
		t.Parallel()

		source := &mock.EntitySource{
			DiscoverFn: func(_ context.Context) ([]parasite.Entity, error) {
				return nil, errors.New("catalog unreachable")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Source:    source,
			Fetcher:   &mock.Fetcher{},
			Extractor: html.NewExtractor(),
		}

		cmd := &main.SyncCmd{Root: t.TempDir(), BaseURL: "https://example.org"}

		err := cmd.Run(deps)

		assert.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
