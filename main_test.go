package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
)

func TestRootCmd(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["play"])
	assert.True(t, names["serve"])

	// The root command plays by default and takes the play flags.
	assert.NotNil(t, root.RunE)
	assert.NotNil(t, root.Flags().Lookup("api-url"))
	assert.NotNil(t, root.Flags().Lookup("daily"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestSetupLogging(t *testing.T) {
	require.NoError(t, setupLogging("debug", io.Discard))
	assert.Error(t, setupLogging("loud", io.Discard))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		st, closeFn, err := openStore("")
		require.NoError(t, err)
		defer closeFn()
		_, isSQLite := st.(*store.SQLite)
		assert.False(t, isSQLite)
	})

	t.Run("sqlite", func(t *testing.T) {
		st, closeFn, err := openStore(filepath.Join(t.TempDir(), "wordle.db"))
		require.NoError(t, err)
		defer closeFn()

		g := game.New("crane", "")
		require.NoError(t, st.Save(ctx, g))
		got, err := st.Get(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, "crane", got.Answer)
	})
}
