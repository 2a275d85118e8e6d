package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-tui/internal/session"
)

// Styles holds the lipgloss styles used to draw the board.
type Styles struct {
	Title   lipgloss.Style
	Green   lipgloss.Style
	Yellow  lipgloss.Style
	Gray    lipgloss.Style
	Unknown lipgloss.Style // keyboard key with no information yet
	Draft   lipgloss.Style // tile holding an unsubmitted letter
	Empty   lipgloss.Style // tile with nothing in it
	Message lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the classic green/yellow/gray palette.
func DefaultStyles() Styles {
	tile := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6aaa64")),
		Green:   tile.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#6aaa64")),
		Yellow:  tile.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#c9b458")),
		Gray:    tile.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#787c7e")),
		Unknown: tile.Foreground(lipgloss.Color("#1a1a1b")).Background(lipgloss.Color("#d3d6da")),
		Draft:   tile.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#3a3a3c")),
		Empty:   tile.Background(lipgloss.Color("#121213")),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("#bb0000")),
		Status:  lipgloss.NewStyle().Bold(true),
		Help:    lipgloss.NewStyle().Faint(true),
	}
}

// mark returns the style for a tile or key with the given mark.
func (s Styles) mark(m session.Mark) lipgloss.Style {
	switch m {
	case session.MarkGreen:
		return s.Green
	case session.MarkYellow:
		return s.Yellow
	case session.MarkGray:
		return s.Gray
	}
	return s.Unknown
}
