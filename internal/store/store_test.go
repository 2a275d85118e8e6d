package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	t.Parallel()

	impls := map[string]func(t *testing.T) store.Store{
		"memory": func(*testing.T) store.Store { return store.NewMemoryStore() },
		"sqlite": func(t *testing.T) store.Store {
			s, err := store.OpenSQLite(":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}

	for name, open := range impls {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			st := open(t)

			_, err := st.Get(ctx, "missing")
			assert.ErrorIs(t, err, store.ErrNotFound)

			g := game.New("crane", "daily")
			require.NoError(t, st.Save(ctx, g))

			got, err := st.Get(ctx, g.ID)
			require.NoError(t, err)
			assert.Equal(t, "crane", got.Answer)
			assert.Equal(t, "daily", got.Mode)
			assert.Empty(t, got.Guesses)
			assert.Equal(t, 6, got.Rows)

			// Mutating a loaded copy does not leak into the store.
			_, err = got.ApplyGuess("slate", nil)
			require.NoError(t, err)
			again, err := st.Get(ctx, g.ID)
			require.NoError(t, err)
			assert.Empty(t, again.Guesses)

			_, err = got.ApplyGuess("crane", nil)
			require.NoError(t, err)
			require.NoError(t, st.Save(ctx, got))

			final, err := st.Get(ctx, g.ID)
			require.NoError(t, err)
			assert.Equal(t, []string{"slate", "crane"}, final.Guesses)
			assert.True(t, final.Finished)
			assert.True(t, final.Won)
		})
	}
}

func TestOpenSQLite_Reopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "wordle.db")

	s1, err := store.OpenSQLite(path)
	require.NoError(t, err)
	g := game.New("crane", "")
	require.NoError(t, s1.Save(ctx, g))
	require.NoError(t, s1.Close())

	// Migrations are idempotent and data survives.
	s2, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()
	got, err := s2.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)
}
