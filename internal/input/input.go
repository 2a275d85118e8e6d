// internal/input/input.go
//
// Input normalization for the game client.
// Two raw sources feed the same three logical actions:
//   - physical key presses (Bubble Tea key messages), via FromKeyMsg.
//   - on-screen keyboard activations (key labels), via FromScreenKey.
// The Dispatcher applies an Intent to the active session, identically for
// both sources. Anything that is not a single letter, delete, or confirm is
// dropped, as is every intent that arrives while the session is not editable.

package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/wordle/apps/go-tui/internal/session"
)

// Action is a logical guess-editing action.
type Action int

const (
	ActionNone Action = iota
	ActionAppendLetter
	ActionDeleteLetter
	ActionSubmitGuess
)

func (a Action) String() string {
	switch a {
	case ActionAppendLetter:
		return "append"
	case ActionDeleteLetter:
		return "delete"
	case ActionSubmitGuess:
		return "submit"
	}
	return "none"
}

// Intent is a normalized input event. Letter is set only for ActionAppendLetter
// and is always lowercase a–z.
type Intent struct {
	Action Action
	Letter rune
}

// On-screen labels for the delete and confirm keys.
const (
	LabelEnter     = "ENTER"
	LabelBackspace = "BKSP"
)

// KeyboardRows is the on-screen keyboard layout, top to bottom.
var KeyboardRows = [][]string{
	strings.Split("QWERTYUIOP", ""),
	strings.Split("ASDFGHJKL", ""),
	append(append([]string{LabelEnter}, strings.Split("ZXCVBNM", "")...), LabelBackspace),
}

// Physical key bindings for the non-letter actions.
var (
	DeleteKey = key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete"))
	SubmitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
)

// FromKeyMsg translates a physical key press.
func FromKeyMsg(msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, DeleteKey):
		return Intent{Action: ActionDeleteLetter}
	case key.Matches(msg, SubmitKey):
		return Intent{Action: ActionSubmitGuess}
	case msg.Type == tea.KeyRunes && !msg.Alt && !msg.Paste && len(msg.Runes) == 1:
		return letterIntent(msg.Runes[0])
	}
	return Intent{}
}

// FromScreenKey translates an on-screen key label ("Q", "ENTER", "BKSP").
func FromScreenKey(label string) Intent {
	switch label {
	case LabelEnter:
		return Intent{Action: ActionSubmitGuess}
	case LabelBackspace:
		return Intent{Action: ActionDeleteLetter}
	}
	r := []rune(label)
	if len(r) != 1 {
		return Intent{}
	}
	return letterIntent(r[0])
}

func letterIntent(r rune) Intent {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return Intent{}
	}
	return Intent{Action: ActionAppendLetter, Letter: r}
}

// Target is the state machine intents are applied to.
// *session.Session satisfies it.
type Target interface {
	Editable() bool
	AppendLetter(r rune) bool
	DeleteLetter() bool
	BeginSubmit() session.RoundTrip
}

var _ Target = (*session.Session)(nil)

// Dispatcher applies intents from any source to a Target.
type Dispatcher struct {
	target Target
}

// NewDispatcher returns a Dispatcher bound to t.
func NewDispatcher(t Target) *Dispatcher {
	return &Dispatcher{target: t}
}

// Dispatch applies in. A submit returns the round trip to run, if one was
// started; every other intent returns nil.
func (d *Dispatcher) Dispatch(in Intent) session.RoundTrip {
	if in.Action == ActionNone || !d.target.Editable() {
		return nil
	}
	switch in.Action {
	case ActionAppendLetter:
		d.target.AppendLetter(in.Letter)
	case ActionDeleteLetter:
		d.target.DeleteLetter()
	case ActionSubmitGuess:
		return d.target.BeginSubmit()
	}
	return nil
}

// HandleKey dispatches a physical key press.
func (d *Dispatcher) HandleKey(msg tea.KeyMsg) session.RoundTrip {
	return d.Dispatch(FromKeyMsg(msg))
}

// HandleScreenKey dispatches an on-screen key activation.
func (d *Dispatcher) HandleScreenKey(label string) session.RoundTrip {
	return d.Dispatch(FromScreenKey(label))
}
