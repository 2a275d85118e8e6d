// Package mock provides test doubles for session interfaces using function fields.
package mock

import (
	"context"
	"sync/atomic"

	"github.com/robalobadob/wordle/apps/go-tui/internal/session"
)

// Interface compliance check.
var _ session.Evaluator = (*Evaluator)(nil)

// Evaluator is a test double for session.Evaluator.
// Set the function fields for the methods you need; calls are counted.
type Evaluator struct {
	StartGameFn   func(ctx context.Context) (string, error)
	SubmitGuessFn func(ctx context.Context, sessionID, word string) (session.Verdict, error)

	starts  atomic.Int64
	submits atomic.Int64
}

// StartGame delegates to StartGameFn.
func (e *Evaluator) StartGame(ctx context.Context) (string, error) {
	e.starts.Add(1)
	return e.StartGameFn(ctx)
}

// SubmitGuess delegates to SubmitGuessFn.
func (e *Evaluator) SubmitGuess(ctx context.Context, sessionID, word string) (session.Verdict, error) {
	e.submits.Add(1)
	return e.SubmitGuessFn(ctx, sessionID, word)
}

// StartCalls returns how many times StartGame was called.
func (e *Evaluator) StartCalls() int { return int(e.starts.Load()) }

// SubmitCalls returns how many times SubmitGuess was called.
func (e *Evaluator) SubmitCalls() int { return int(e.submits.Load()) }

// Scripted returns an Evaluator that starts games with id and judges each
// guess against answer using a simple positional comparison. Good enough
// for tests that only need plausible feedback.
func Scripted(id, answer string) *Evaluator {
	var attempts atomic.Int64
	return &Evaluator{
		StartGameFn: func(context.Context) (string, error) {
			attempts.Store(0)
			return id, nil
		},
		SubmitGuessFn: func(_ context.Context, _ string, word string) (session.Verdict, error) {
			n := attempts.Add(1)
			return session.Verdict{
				Feedback:     Feedback(word, answer),
				Correct:      word == answer,
				AttemptCount: int(n),
			}, nil
		},
	}
}

// Feedback marks each position green on an exact match, yellow when the
// letter occurs elsewhere in answer, and gray otherwise.
func Feedback(word, answer string) []session.Mark {
	out := make([]session.Mark, len(word))
	for i := range word {
		switch {
		case i < len(answer) && word[i] == answer[i]:
			out[i] = session.MarkGreen
		case containsByte(answer, word[i]):
			out[i] = session.MarkYellow
		default:
			out[i] = session.MarkGray
		}
	}
	return out
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
