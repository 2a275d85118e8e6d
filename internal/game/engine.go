// internal/game/engine.go
//
// Game engine for a single evaluator-side game.
// Responsibilities:
//   - Create new games with fixed dimensions (6x5).
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses using the classic two-pass algorithm.
//   - Track state transitions: playing → won/lost.
//
// Validation failures are returned as *RejectError so the HTTP layer can
// hand the reason to the player verbatim.

package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultRows = 6
	defaultCols = 5
)

// RejectError is a guess the engine refused to record.
type RejectError struct {
	Reason string
}

func (e *RejectError) Error() string { return e.Reason }

// Rejection reasons.
var (
	ErrFinished     = &RejectError{Reason: "Game is already over."}
	ErrInvalidGuess = &RejectError{Reason: "Guess must be 5 letters."}
	ErrNotAllowed   = &RejectError{Reason: "Not in word list."}
)

// New constructs a new game with the given lowercase answer.
func New(answer, mode string) *Game {
	return &Game{
		ID:        uuid.NewString(),
		Answer:    strings.ToLower(answer),
		Mode:      mode,
		Rows:      defaultRows,
		Cols:      defaultCols,
		Guesses:   []string{},
		StartedAt: time.Now().UTC(),
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// allowed reports whether a word is in the dictionary; nil allows everything.
//
// State transitions:
//   - If every tile is green → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string, allowed func(string) bool) ([]Mark, error) {
	if g.Finished {
		return nil, ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, ErrInvalidGuess
	}
	if allowed != nil && !allowed(guess) {
		return nil, ErrNotAllowed
	}

	marks := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if allGreen(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, nil
}

// State reports "playing", "won" or "lost".
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score implements the standard two-pass scoring algorithm.
//
// Pass 1: mark exact matches green and count the remaining answer letters.
// Pass 2: for each other guess letter, mark yellow while unused copies of
// that letter remain, otherwise gray.
//
// This gives the expected result with repeated letters in either word.
func Score(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	if len(answer) != n {
		for i := range res {
			res[i] = MarkGray
		}
		return res
	}

	// Letter frequency for the non-green positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkGreen
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkGreen {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkYellow
			counts[j]--
		} else {
			res[i] = MarkGray
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func allGreen(m []Mark) bool {
	for _, x := range m {
		if x != MarkGreen {
			return false
		}
	}
	return true
}
