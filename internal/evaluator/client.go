// internal/evaluator/client.go
//
// HTTP client for the remote Wordle evaluator.
//
// Endpoints:
//   POST {base}/start  body: {"mode": "..."} (optional)  →  {"game_id": "..."}
//   POST {base}/guess  body: {"game_id": "...", "guess": "..."}
//                      →  {"feedback": ["green"|"yellow"|"gray", ...], "correct": bool, "guesses": int}
//
// Errors are reported with a non-2xx status and {"detail": "..."}.
// A 4xx answer is a rejection (*session.RejectedError). A 2xx body that
// does not decode (an unknown mark, say) wraps session.ErrProtocol.
// Everything else that fails is a transport failure.

package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/session"
)

// Interface compliance check.
var _ session.Evaluator = (*Client)(nil)

const (
	startPath = "/start"
	guessPath = "/guess"

	// maxBody bounds how much of a response is read.
	maxBody = 64 << 10
)

// ErrStatus wraps unexpected (non-4xx) HTTP statuses.
var ErrStatus = errors.New("unexpected evaluator status")

// Client implements session.Evaluator over HTTP.
type Client struct {
	baseURL    string
	mode       string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMode sets the game mode requested on start ("" or "daily").
func WithMode(mode string) Option {
	return func(c *Client) { c.mode = mode }
}

// New creates a Client for the evaluator at baseURL, e.g. "http://localhost:5175".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type startReq struct {
	Mode string `json:"mode,omitempty"`
}

type startRes struct {
	GameID string `json:"game_id"`
}

type guessReq struct {
	GameID string `json:"game_id"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Feedback []session.Mark `json:"feedback"`
	Correct  bool           `json:"correct"`
	Guesses  int            `json:"guesses"`
}

type errorRes struct {
	Detail string `json:"detail"`
}

// StartGame requests a new game and returns its identifier.
func (c *Client) StartGame(ctx context.Context) (string, error) {
	var res startRes
	if err := c.post(ctx, startPath, startReq{Mode: c.mode}, &res); err != nil {
		return "", err
	}
	if res.GameID == "" {
		return "", errors.New("evaluator: start response has no game_id")
	}
	return res.GameID, nil
}

// SubmitGuess sends word for judgement.
func (c *Client) SubmitGuess(ctx context.Context, sessionID, word string) (session.Verdict, error) {
	var res guessRes
	if err := c.post(ctx, guessPath, guessReq{GameID: sessionID, Guess: word}, &res); err != nil {
		return session.Verdict{}, err
	}
	return session.Verdict{
		Feedback:     res.Feedback,
		Correct:      res.Correct,
		AttemptCount: res.Guesses,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("evaluator request failed")
		return fmt.Errorf("evaluator: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("evaluator: read body: %w", err)
	}
	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("evaluator round trip")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseHTTPError(resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, out); err != nil {
		// A 2xx the client cannot read means the two sides disagree.
		return fmt.Errorf("evaluator: %w: decode %s response: %v", session.ErrProtocol, path, err)
	}
	return nil
}

// parseHTTPError maps a non-2xx response to an error.
func parseHTTPError(status int, body []byte) error {
	var e errorRes
	_ = json.Unmarshal(body, &e)
	if status >= 400 && status < 500 {
		return &session.RejectedError{Reason: e.Detail}
	}
	if e.Detail != "" {
		return fmt.Errorf("evaluator: %w %d: %s", ErrStatus, status, e.Detail)
	}
	return fmt.Errorf("evaluator: %w %d", ErrStatus, status)
}
