// internal/store/memory.go
//
// Persistence for evaluator-side games.
// Two implementations of Store live in this package:
//   - memory (this file): map keyed by game ID, guarded by an RWMutex,
//     lost on restart. The default when no DB_PATH is configured.
//   - SQLite (sqlite.go): durable, survives restarts.
//
// Both hand out copies, so a caller mutating a *game.Game it loaded does
// not affect the stored state until it calls Save.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// ErrNotFound is returned by Get for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for games.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

// Save stores a copy of g.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = clone(g)
	return nil
}

// Get returns a copy of the stored game.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return clone(g), nil
	}
	return nil, ErrNotFound
}

func clone(g *game.Game) *game.Game {
	c := *g
	c.Guesses = append([]string{}, g.Guesses...)
	return &c
}
