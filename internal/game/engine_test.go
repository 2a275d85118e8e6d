package game_test

import (
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	G = game.MarkGreen
	Y = game.MarkYellow
	X = game.MarkGray
)

func TestScore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		answer, guess string
		want          []game.Mark
	}{
		{"crane", "crane", []game.Mark{G, G, G, G, G}},
		{"crane", "slate", []game.Mark{X, X, G, X, G}},
		{"crane", "trace", []game.Mark{X, G, G, Y, G}},
		// Only one E in the answer: the green one consumes it.
		{"crane", "eerie", []game.Mark{X, X, Y, X, G}},
		// Two Ls in the guess, one in the answer: the first is yellow.
		{"plant", "hello", []game.Mark{X, X, Y, X, X}},
		{"abbey", "babes", []game.Mark{Y, Y, G, G, X}},
	}
	for _, tc := range cases {
		t.Run(tc.answer+"/"+tc.guess, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, game.Score(tc.answer, tc.guess))
		})
	}
}

func TestGame_ApplyGuess(t *testing.T) {
	t.Parallel()

	t.Run("win", func(t *testing.T) {
		t.Parallel()

		g := game.New("CRANE", "")
		assert.Equal(t, "crane", g.Answer)
		assert.NotEmpty(t, g.ID)

		marks, err := g.ApplyGuess("Crane", nil)
		require.NoError(t, err)
		assert.Equal(t, []game.Mark{G, G, G, G, G}, marks)
		assert.Equal(t, "won", g.State())

		_, err = g.ApplyGuess("slate", nil)
		assert.ErrorIs(t, err, game.ErrFinished)
	})

	t.Run("loss after six", func(t *testing.T) {
		t.Parallel()

		g := game.New("crane", "")
		for i := 0; i < 6; i++ {
			assert.Equal(t, "playing", g.State())
			_, err := g.ApplyGuess("slate", nil)
			require.NoError(t, err)
		}
		assert.Equal(t, "lost", g.State())
		assert.Len(t, g.Guesses, 6)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		g := game.New("crane", "")
		_, err := g.ApplyGuess("cran", nil)
		assert.ErrorIs(t, err, game.ErrInvalidGuess)
		_, err = g.ApplyGuess("cr4ne", nil)
		assert.ErrorIs(t, err, game.ErrInvalidGuess)

		onlyCrane := func(w string) bool { return w == "crane" }
		_, err = g.ApplyGuess("xyzzy", onlyCrane)
		assert.ErrorIs(t, err, game.ErrNotAllowed)

		var rej *game.RejectError
		assert.True(t, errors.As(err, &rej))
		assert.Equal(t, "Not in word list.", rej.Reason)
		assert.Empty(t, g.Guesses)
	})

	t.Run("ids are unique", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, game.New("crane", "").ID, game.New("crane", "").ID)
	})
}
