// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Upserting and loading games.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite is a Store backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (creating if missing) the database at dsn and applies
// migrations. ":memory:" gives a private in-memory database.
func OpenSQLite(dsn string) (*SQLite, error) {
	memory := dsn == ":memory:"
	if !memory {
		// Ensure the directory exists for ./data/wordle.db and the like.
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if memory {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := migrate(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// Save inserts or updates g.
func (s *SQLite) Save(ctx context.Context, g *game.Game) error {
	var finishedAt any
	if g.Finished {
		finishedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO games (id, answer, mode, guesses, finished, won, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            guesses     = excluded.guesses,
            finished    = excluded.finished,
            won         = excluded.won,
            finished_at = COALESCE(games.finished_at, excluded.finished_at)`,
		g.ID, g.Answer, g.Mode, strings.Join(g.Guesses, ","),
		boolInt(g.Finished), boolInt(g.Won), g.StartedAt.UTC().Format(time.RFC3339), finishedAt,
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", g.ID, err)
	}
	return nil
}

// Get loads a game by ID.
func (s *SQLite) Get(ctx context.Context, id string) (*game.Game, error) {
	var (
		g        game.Game
		guesses  string
		finished int
		won      int
		started  string
	)
	err := s.db.QueryRowContext(ctx, `
        SELECT id, answer, mode, guesses, finished, won, started_at
        FROM games WHERE id = ?`, id,
	).Scan(&g.ID, &g.Answer, &g.Mode, &guesses, &finished, &won, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}

	g.Rows, g.Cols = 6, 5
	g.Guesses = []string{}
	if guesses != "" {
		g.Guesses = strings.Split(guesses, ",")
	}
	g.Finished, g.Won = finished == 1, won == 1
	g.StartedAt, _ = time.Parse(time.RFC3339, started)
	return &g, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// migrate applies *.sql files from fsys in lexical order.
// Each runs in its own transaction and is recorded in _migrations,
// so re-running is a no-op.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}
