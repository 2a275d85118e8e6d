package words_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("embedded defaults", func(t *testing.T) {
		t.Parallel()

		d, err := words.Load("", "")
		require.NoError(t, err)
		a, g := d.Stats()
		assert.Greater(t, a, 100)
		assert.GreaterOrEqual(t, g, a)
		assert.True(t, d.IsAnswer("crane"))
		assert.True(t, d.IsAllowed("CRANE"))
		assert.True(t, d.IsAllowed("slate"))
		assert.False(t, d.IsAllowed("xyzzy"))
	})

	t.Run("both files", func(t *testing.T) {
		t.Parallel()

		ans := writeList(t, "answers.txt", "# answers\nCrane\nslate\ntoolong\n\n")
		all := writeList(t, "allowed.txt", "xyzzy\nab1cd\n")
		d, err := words.Load(ans, all)
		require.NoError(t, err)

		assert.Equal(t, []string{"crane", "slate"}, d.Answers())
		assert.True(t, d.IsAllowed("xyzzy"))
		assert.True(t, d.IsAllowed("crane"))
		assert.False(t, d.IsAnswer("xyzzy"))
		assert.False(t, d.IsAllowed("ab1cd"))
	})

	t.Run("allowed file only serves both lists", func(t *testing.T) {
		t.Parallel()

		all := writeList(t, "allowed.txt", "crane\n")
		d, err := words.Load("", all)
		require.NoError(t, err)
		assert.True(t, d.IsAnswer("crane"))
		assert.Equal(t, "crane", d.RandomAnswer())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := words.Load("", filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("empty answers", func(t *testing.T) {
		t.Parallel()

		_, err := words.FromLists([]string{"no"}, nil)
		assert.ErrorIs(t, err, words.ErrEmpty)
	})
}

func TestDictionary_RandomAnswer(t *testing.T) {
	t.Parallel()

	d, err := words.FromLists([]string{"crane", "slate", "trace"}, nil)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.True(t, d.IsAnswer(d.RandomAnswer()))
	}
}
