// internal/session/session.go
//
// Client-side state machine for a single game.
// Responsibilities:
//   - Track the session identifier, guess history, draft, status and message.
//   - Gate every edit on the Playing state and on the absence of a pending
//     round trip.
//   - Split evaluator calls into Begin (validate + mark pending) and Resolve
//     (apply result), so an event loop can run the network call elsewhere.
//   - Keep LetterStatusMap as a projection of the completed guesses.
//
// Transitions:
//   loading → playing   (start succeeded)
//   playing → won       (evaluator reports the guess correct)
//   playing → lost      (sixth incorrect guess)
// Restart discards everything and returns to loading.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Snapshot is a read-only copy of the session for presentation.
type Snapshot struct {
	SessionID    string
	Guesses      []Guess
	Draft        string
	Status       Status
	Message      string
	AttemptCount int
	Letters      LetterStatusMap
	Pending      bool  // a start or submit round trip is outstanding
	Fault        error // non-nil once the session is desynchronized
}

// RoundTrip performs one evaluator call. It touches no session state and is
// safe to run on another goroutine; hand its Outcome back to Resolve.
type RoundTrip func(ctx context.Context) Outcome

// Outcome is the result of a RoundTrip.
type Outcome interface {
	generation() uint64
}

type startOutcome struct {
	gen uint64
	id  string
	err error
}

func (o startOutcome) generation() uint64 { return o.gen }

type guessOutcome struct {
	gen     uint64
	word    string
	verdict Verdict
	err     error
}

func (o guessOutcome) generation() uint64 { return o.gen }

// Session is one game attempt. It is not safe for concurrent use: all
// methods must be called from the goroutine that owns it.
type Session struct {
	ev  Evaluator
	gen uint64 // bumped on Restart; stale outcomes are dropped

	id       string
	guesses  []Guess
	draft    []rune
	status   Status
	message  string
	attempts int
	letters  LetterStatusMap

	starting   bool
	submitting bool
	fault      error

	subs    map[int]func(Snapshot)
	nextSub int
}

// New returns a session in the Loading state. Call Start (or BeginStart) to
// obtain a session identifier from the evaluator.
func New(ev Evaluator) *Session {
	return &Session{ev: ev, status: StatusLoading, subs: make(map[int]func(Snapshot))}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:    s.id,
		Guesses:      append([]Guess(nil), s.guesses...),
		Draft:        string(s.draft),
		Status:       s.status,
		Message:      s.message,
		AttemptCount: s.attempts,
		Letters:      s.letters,
		Pending:      s.starting || s.submitting,
		Fault:        s.fault,
	}
}

// Subscribe registers fn to be called with a fresh Snapshot after every
// change. The returned function removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Session) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.subs {
		fn(snap)
	}
}

// Editable reports whether the draft may be changed or submitted.
func (s *Session) Editable() bool {
	return s.status == StatusPlaying && !s.submitting && s.fault == nil
}

// AppendLetter adds r to the draft. It reports whether anything changed.
// Non-letters, a full draft, and a non-editable session are all no-ops.
func (s *Session) AppendLetter(r rune) bool {
	if !s.Editable() {
		return false
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if !isLetter(r) || len(s.draft) >= WordLength {
		return false
	}
	s.draft = append(s.draft, r)
	s.message = ""
	s.notify()
	return true
}

// DeleteLetter removes the last draft letter. It reports whether anything changed.
func (s *Session) DeleteLetter() bool {
	if !s.Editable() || len(s.draft) == 0 {
		return false
	}
	s.draft = s.draft[:len(s.draft)-1]
	s.message = ""
	s.notify()
	return true
}

// BeginStart marks a start request as pending and returns the round trip
// that performs it. It returns nil unless the session is Loading with no
// start already outstanding.
func (s *Session) BeginStart() RoundTrip {
	if s.status != StatusLoading || s.starting {
		return nil
	}
	s.starting = true
	s.notify()

	gen, ev := s.gen, s.ev
	return func(ctx context.Context) Outcome {
		id, err := ev.StartGame(ctx)
		return startOutcome{gen: gen, id: id, err: err}
	}
}

// BeginSubmit validates the draft and marks a submission as pending.
// It returns nil when nothing should be sent: the session is not editable,
// or the draft is short (in which case the message is set instead).
// While the returned round trip is outstanding the session rejects every
// edit and every further submission.
func (s *Session) BeginSubmit() RoundTrip {
	if !s.Editable() {
		return nil
	}
	if len(s.draft) < WordLength {
		s.message = MsgNotEnough
		s.notify()
		return nil
	}
	s.submitting = true
	s.notify()

	gen, ev, id, word := s.gen, s.ev, s.id, string(s.draft)
	return func(ctx context.Context) Outcome {
		v, err := ev.SubmitGuess(ctx, id, word)
		return guessOutcome{gen: gen, word: word, verdict: v, err: err}
	}
}

// Resolve applies the outcome of a round trip begun on this session.
// Outcomes from before the last Restart are ignored. The returned error is
// the failure that was surfaced to the player, if any.
func (s *Session) Resolve(o Outcome) error {
	if o == nil {
		return nil
	}
	if o.generation() != s.gen {
		log.Debug().Uint64("gen", o.generation()).Uint64("current", s.gen).Msg("dropping stale outcome")
		return nil
	}
	var err error
	switch o := o.(type) {
	case startOutcome:
		err = s.resolveStart(o)
	case guessOutcome:
		err = s.resolveGuess(o)
	default:
		return fmt.Errorf("unknown outcome %T", o)
	}
	s.notify()
	return err
}

func (s *Session) resolveStart(o startOutcome) error {
	if !s.starting {
		return nil
	}
	s.starting = false
	if o.err == nil && o.id == "" {
		o.err = errors.New("evaluator returned an empty session id")
	}
	if o.err != nil {
		log.Warn().Err(o.err).Msg("start game failed")
		s.message = MsgStartFailed
		return o.err
	}
	s.id = o.id
	s.status = StatusPlaying
	s.message = ""
	log.Info().Str("session", s.id).Msg("game started")
	return nil
}

func (s *Session) resolveGuess(o guessOutcome) error {
	if !s.submitting {
		return nil
	}
	s.submitting = false

	var rejected *RejectedError
	switch {
	case errors.As(o.err, &rejected):
		s.message = rejected.Reason
		if s.message == "" {
			s.message = MsgRejected
		}
		log.Info().Str("word", o.word).Str("reason", rejected.Reason).Msg("guess rejected")
		return o.err
	case errors.Is(o.err, ErrProtocol):
		return s.desync(o.err)
	case o.err != nil:
		log.Warn().Err(o.err).Str("word", o.word).Msg("submit guess failed")
		s.message = MsgNetworkError
		return o.err
	}

	v := o.verdict
	if want := len(s.guesses) + 1; v.AttemptCount != want {
		return s.desync(fmt.Errorf("%w: evaluator reports %d attempts, expected %d", ErrProtocol, v.AttemptCount, want))
	}
	g, err := NewGuess(o.word, v.Feedback)
	if err != nil {
		return s.desync(fmt.Errorf("%w: %v", ErrProtocol, err))
	}

	s.guesses = append(s.guesses, g)
	s.attempts = v.AttemptCount
	s.draft = s.draft[:0]
	s.message = ""
	s.letters = Merge(s.letters, g.word, g.feedback)

	switch {
	case v.Correct:
		s.status = StatusWon
	case s.attempts >= MaxAttempts:
		s.status = StatusLost
	}
	log.Info().Str("word", g.word).Int("attempt", s.attempts).Stringer("status", s.status).Msg("guess accepted")
	return nil
}

// desync records a protocol fault; the session accepts nothing until Restart.
func (s *Session) desync(err error) error {
	log.Error().Err(err).Str("session", s.id).Msg("session desynchronized")
	s.fault = err
	s.message = MsgOutOfSync
	return err
}

// Start runs BeginStart and Resolve synchronously.
func (s *Session) Start(ctx context.Context) error {
	rt := s.BeginStart()
	if rt == nil {
		return nil
	}
	return s.Resolve(rt(ctx))
}

// SubmitGuess runs BeginSubmit and Resolve synchronously.
func (s *Session) SubmitGuess(ctx context.Context) error {
	rt := s.BeginSubmit()
	if rt == nil {
		return nil
	}
	return s.Resolve(rt(ctx))
}

// Restart throws away the current game, including any outstanding round
// trip, and begins a new one. Subscriptions survive.
func (s *Session) Restart() RoundTrip {
	s.gen++
	s.id = ""
	s.guesses = nil
	s.draft = nil
	s.status = StatusLoading
	s.message = ""
	s.attempts = 0
	s.letters = LetterStatusMap{}
	s.starting = false
	s.submitting = false
	s.fault = nil
	return s.BeginStart()
}
