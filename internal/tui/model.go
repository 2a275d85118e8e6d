package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/input"
	"github.com/robalobadob/wordle/apps/go-tui/internal/session"
)

var _ tea.Model = Model{}

// Screen lines of the fixed layout.
const (
	titleLine   = 0
	gridTop     = 2
	messageLine = gridTop + session.MaxAttempts + 1
	statusLine  = messageLine + 1
	keyboardTop = statusLine + 2
	helpLine    = keyboardTop + 4
)

const titleText = "WORDLE"

const (
	tileWidth = 3
	gridWidth = session.WordLength*tileWidth + (session.WordLength-1)*keyGap
)

// KeyMap holds the bindings the model handles itself. Letters, backspace
// and enter go through the input package.
type KeyMap struct {
	Quit    key.Binding
	Restart key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Restart: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new game")),
	}
}

// Model is the Bubble Tea model for the game.
type Model struct {
	ctx    context.Context
	sess   *session.Session
	disp   *input.Dispatcher
	keys   KeyMap
	styles Styles
	err    error
}

// New creates a Model driving s. Round trips run with ctx.
func New(ctx context.Context, s *session.Session) Model {
	return Model{
		ctx:    ctx,
		sess:   s,
		disp:   input.NewDispatcher(s),
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

// Snapshot returns the current session state.
func (m Model) Snapshot() session.Snapshot { return m.sess.Snapshot() }

// Err returns the last round trip failure, if any.
func (m Model) Err() error { return m.err }

// Init starts the first game.
func (m Model) Init() tea.Cmd {
	return roundTripCmd(m.ctx, m.sess.BeginStart())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			log.Debug().Msg("restart requested")
			m.err = nil
			return m, roundTripCmd(m.ctx, m.sess.Restart())
		}
		return m, roundTripCmd(m.ctx, m.disp.HandleKey(msg))

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		label, ok := keyAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		return m, roundTripCmd(m.ctx, m.disp.HandleScreenKey(label))

	case OutcomeMsg:
		m.err = m.sess.Resolve(msg.Outcome)
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.sess.Snapshot()
	lines := make([]string, helpLine+1)

	title := m.styles.Title.Render(titleText)
	lines[titleLine] = padTo((keyboardWidth()-lipgloss.Width(title))/2) + title

	indent := padTo((keyboardWidth() - gridWidth) / 2)
	for r := 0; r < session.MaxAttempts; r++ {
		lines[gridTop+r] = indent + m.renderRow(snap, r)
	}

	if snap.Message != "" {
		lines[messageLine] = m.styles.Message.Render(snap.Message)
	}
	lines[statusLine] = m.styles.Status.Render(statusText(snap))

	for i, row := range m.renderKeyboard(snap.Letters) {
		lines[keyboardTop+i] = row
	}

	lines[helpLine] = m.styles.Help.Render(fmt.Sprintf("%s %s • %s %s",
		m.keys.Restart.Help().Key, m.keys.Restart.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc))

	return strings.Join(lines, "\n")
}

// renderRow draws grid row r: a submitted guess, the draft, or empty tiles.
func (m Model) renderRow(snap session.Snapshot, r int) string {
	tiles := make([]string, session.WordLength)
	for c := range tiles {
		switch {
		case r < len(snap.Guesses):
			g := snap.Guesses[r]
			tiles[c] = m.styles.mark(g.Feedback()[c]).Render(upper(g.Word()[c]))
		case r == len(snap.Guesses) && c < len(snap.Draft):
			tiles[c] = m.styles.Draft.Render(upper(snap.Draft[c]))
		default:
			tiles[c] = m.styles.Empty.Render(" ")
		}
	}
	return strings.Join(tiles, padTo(keyGap))
}

// renderKeyboard draws the on-screen keyboard at the columns keyboardLayout
// assigns, colored by the best mark seen for each letter.
func (m Model) renderKeyboard(letters session.LetterStatusMap) []string {
	rows := make([]strings.Builder, len(input.KeyboardRows))
	cursor := make([]int, len(rows))
	for _, k := range keyboardLayout(0) {
		st := m.styles.Unknown
		if len(k.label) == 1 {
			st = m.styles.mark(letters.Get(rune(k.label[0])))
		}
		rows[k.line].WriteString(padTo(k.x0 - cursor[k.line]))
		rows[k.line].WriteString(st.Render(k.label))
		cursor[k.line] = k.x1
	}
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

// statusText describes where the game stands.
func statusText(snap session.Snapshot) string {
	switch snap.Status {
	case session.StatusLoading:
		if snap.Pending {
			return "Starting game..."
		}
		return "No game. Press ctrl+n to try again."
	case session.StatusWon:
		return "Correct! Press ctrl+n to play again."
	case session.StatusLost:
		return "Out of attempts! Press ctrl+n to play again."
	}
	if snap.Fault != nil {
		return "Press ctrl+n to start over."
	}
	if snap.Pending {
		return "Checking..."
	}
	return fmt.Sprintf("Guess %d of %d", snap.AttemptCount+1, session.MaxAttempts)
}

func upper(b byte) string {
	return strings.ToUpper(string(b))
}
