// internal/session/types.go
//
// Value types shared by the session state machine and its consumers.
// Defines:
//   - Mark: per-letter feedback (gray/yellow/green), ordered by strength.
//   - Guess: an immutable submitted word paired with its feedback.
//   - Status: coarse game state (loading/playing/won/lost).

package session

import (
	"fmt"
	"strings"
)

const (
	// WordLength is the number of letters in every guess.
	WordLength = 5
	// MaxAttempts is the number of guesses after which an unsolved game is lost.
	MaxAttempts = 6
)

// Mark is the feedback for one letter position.
// The numeric order is the precedence order: a stronger mark always wins.
type Mark uint8

const (
	MarkNone   Mark = iota // letter never guessed
	MarkGray               // letter absent from the answer
	MarkYellow             // letter present, wrong position
	MarkGreen              // letter in the correct position
)

// String returns the wire name of the mark ("" for MarkNone).
func (m Mark) String() string {
	switch m {
	case MarkGray:
		return "gray"
	case MarkYellow:
		return "yellow"
	case MarkGreen:
		return "green"
	}
	return ""
}

// ParseMark maps a wire name to a Mark. "grey" is accepted as an alias.
func ParseMark(s string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gray", "grey":
		return MarkGray, nil
	case "yellow":
		return MarkYellow, nil
	case "green":
		return MarkGreen, nil
	}
	return MarkNone, fmt.Errorf("unknown feedback mark %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mark) MarshalText() ([]byte, error) {
	if m == MarkNone || m > MarkGreen {
		return nil, fmt.Errorf("cannot marshal mark %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mark) UnmarshalText(b []byte) error {
	v, err := ParseMark(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Guess is a completed, evaluated guess. It cannot be modified after creation.
type Guess struct {
	word     string
	feedback [WordLength]Mark
}

// NewGuess validates word and feedback and builds a Guess.
// The word is normalized to lowercase.
func NewGuess(word string, feedback []Mark) (Guess, error) {
	word = strings.ToLower(word)
	if len(word) != WordLength || !isWord(word) {
		return Guess{}, fmt.Errorf("invalid guess word %q", word)
	}
	if len(feedback) != WordLength {
		return Guess{}, fmt.Errorf("feedback has %d marks, want %d", len(feedback), WordLength)
	}
	g := Guess{word: word}
	for i, m := range feedback {
		if m < MarkGray || m > MarkGreen {
			return Guess{}, fmt.Errorf("invalid mark at position %d", i)
		}
		g.feedback[i] = m
	}
	return g, nil
}

// Word returns the lowercase guessed word.
func (g Guess) Word() string { return g.word }

// Feedback returns a copy of the per-position marks.
func (g Guess) Feedback() [WordLength]Mark { return g.feedback }

// Correct reports whether every position is green.
func (g Guess) Correct() bool {
	for _, m := range g.feedback {
		if m != MarkGreen {
			return false
		}
	}
	return true
}

// Status is the coarse game status.
type Status int

const (
	StatusLoading Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Finished reports whether the status is terminal (won or lost).
func (s Status) Finished() bool { return s == StatusWon || s == StatusLost }

// isLetter reports whether r is an ASCII letter a–z (after lowercasing).
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }

// isWord reports whether s is all lowercase ASCII letters.
func isWord(s string) bool {
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}
