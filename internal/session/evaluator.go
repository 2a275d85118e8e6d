package session

import (
	"context"
	"errors"
)

// Evaluator is the remote service that owns the answer and judges guesses.
// Implementations return *RejectedError when the evaluator refuses a guess
// (for example, a word it does not recognize); any other error is treated as
// a transport failure.
type Evaluator interface {
	// StartGame begins a new game and returns its opaque session identifier.
	StartGame(ctx context.Context) (string, error)

	// SubmitGuess asks the evaluator to judge word for the given session.
	SubmitGuess(ctx context.Context, sessionID, word string) (Verdict, error)
}

// Verdict is the evaluator's judgement of an accepted guess.
type Verdict struct {
	Feedback     []Mark // one mark per letter position
	Correct      bool   // the guess is the answer
	AttemptCount int    // guesses recorded by the evaluator, including this one
}

// RejectedError reports a guess the evaluator refused to record.
type RejectedError struct {
	Reason string // human-readable, may be empty
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return "guess rejected"
	}
	return "guess rejected: " + e.Reason
}

// ErrProtocol marks evaluator responses that contradict local state.
// A session that sees one stops accepting input until it is restarted.
var ErrProtocol = errors.New("evaluator protocol violation")

// User-facing messages.
const (
	MsgStartFailed  = "Failed to start game."
	MsgNotEnough    = "Not enough letters"
	MsgNetworkError = "Network error."
	MsgRejected     = "Error."
	MsgOutOfSync    = "Session out of sync. Start a new game."
)
