// internal/game/types.go
//
// Core type definitions for the evaluator's game engine.
// Defines:
//   - Mark: per-letter result of a guess, in the wire vocabulary the client
//     consumes (green/yellow/gray).
//   - Game: state for a single in-progress or finished game.

package game

import "time"

// Mark represents the evaluation result for a single letter in a guess.
//   - "green":  letter is correct and in the correct position.
//   - "yellow": letter exists in the answer but in a different position.
//   - "gray":   letter does not exist in the answer (or all copies are used).
type Mark string

const (
	MarkGreen  Mark = "green"
	MarkYellow Mark = "yellow"
	MarkGray   Mark = "gray"
)

// Game holds the state of a single game on the evaluator.
type Game struct {
	ID        string    // Unique game identifier (UUID).
	Answer    string    // The solution word (always lowercase).
	Mode      string    // "" for a random answer, "daily" for the daily word.
	Rows      int       // Maximum number of guesses allowed (6).
	Cols      int       // Number of letters per word (5).
	Guesses   []string  // Guesses made so far (lowercased), in order.
	Finished  bool      // True once the game is over (won or lost).
	Won       bool      // True if the game was finished with a win.
	StartedAt time.Time // When the game was created.
}
