// Package tui is the terminal front end: a Bubble Tea program that renders a
// session and feeds it keyboard and mouse input.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/wordle/apps/go-tui/internal/session"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. Cancelling ctx quits the program.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// OutcomeMsg carries the result of an evaluator round trip back to the
// model.
type OutcomeMsg struct {
	Outcome session.Outcome
}

// roundTripCmd runs rt off the event loop. A nil rt gives a nil command.
func roundTripCmd(ctx context.Context, rt session.RoundTrip) tea.Cmd {
	if rt == nil {
		return nil
	}
	return func() tea.Msg {
		return OutcomeMsg{Outcome: rt(ctx)}
	}
}
