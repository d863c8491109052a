package htmltomarkdown_test

import (
	"testing"

	parasite "github.com/trstickland/parasite-static"
	"github.com/trstickland/parasite-static/htmltomarkdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>The genome assembly was produced from pooled worms.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "The genome assembly was produced from pooled worms.")
	})

	t.Run("converts section markup with links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<a name="about">About</a><p>See <a href="https://example.com">the project page</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[the project page](https://example.com)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Scaffold N50</li><li>Contig N50</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Scaffold N50")
		assert.Contains(t, md, "- Contig N50")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   \n ")

		require.Error(t, err)
		assert.Equal(t, parasite.EINVALID, parasite.ErrorCode(err))
	})
}
