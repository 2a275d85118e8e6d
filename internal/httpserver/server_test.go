package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-tui/internal/evaluator"
	"github.com/robalobadob/wordle/apps/go-tui/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-tui/internal/session"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

var testConfig = httpserver.Config{
	JWTSecret:    "test-secret",
	TokenTTL:     time.Hour,
	DailySalt:    "salt",
	ClientOrigin: "http://localhost:5173",
}

// newTestServer serves a dictionary whose only answer is "crane".
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dict, err := words.FromLists([]string{"crane"}, []string{"slate", "trace", "react", "eerie", "lemon"})
	require.NoError(t, err)
	srv := httptest.NewServer(httpserver.New(store.NewMemoryStore(), dict, testConfig).Router())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func startGame(t *testing.T, base string) string {
	t.Helper()

	status, out := post(t, base+"/start", "")
	require.Equal(t, http.StatusOK, status)
	id, _ := out["game_id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_Start(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	t.Run("empty body", func(t *testing.T) {
		startGame(t, srv.URL)
	})

	t.Run("daily mode", func(t *testing.T) {
		status, out := post(t, srv.URL+"/start", `{"mode":"daily"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, out["game_id"])
	})

	t.Run("unknown mode", func(t *testing.T) {
		status, out := post(t, srv.URL+"/start", `{"mode":"hard"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Unknown mode.", out["detail"])
	})

	t.Run("malformed body", func(t *testing.T) {
		status, out := post(t, srv.URL+"/start", `{`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Invalid request body.", out["detail"])
	})
}

func TestServer_Guess(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	t.Run("scored", func(t *testing.T) {
		id := startGame(t, srv.URL)
		status, out := post(t, srv.URL+"/guess", `{"game_id":"`+id+`","guess":"TRACE"}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []any{"gray", "green", "green", "yellow", "green"}, out["feedback"])
		assert.Equal(t, false, out["correct"])
		assert.EqualValues(t, 1, out["guesses"])
	})

	t.Run("rejections", func(t *testing.T) {
		id := startGame(t, srv.URL)
		tests := []struct {
			name   string
			body   string
			status int
			detail string
		}{
			{"not in list", `{"game_id":"` + id + `","guess":"xyzzy"}`, http.StatusBadRequest, "Not in word list."},
			{"too short", `{"game_id":"` + id + `","guess":"cran"}`, http.StatusBadRequest, "Guess must be 5 letters."},
			{"bad token", `{"game_id":"nope","guess":"crane"}`, http.StatusUnauthorized, "Invalid game token."},
			{"bad body", `not json`, http.StatusBadRequest, "Invalid request body."},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				status, out := post(t, srv.URL+"/guess", tt.body)
				assert.Equal(t, tt.status, status)
				assert.Equal(t, tt.detail, out["detail"])
			})
		}
	})

	t.Run("finished game", func(t *testing.T) {
		id := startGame(t, srv.URL)
		status, out := post(t, srv.URL+"/guess", `{"game_id":"`+id+`","guess":"crane"}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, out["correct"])

		status, out = post(t, srv.URL+"/guess", `{"game_id":"`+id+`","guess":"slate"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Game is already over.", out["detail"])
	})

	t.Run("token from another server", func(t *testing.T) {
		other := newTestServer(t)
		id := startGame(t, other.URL)
		status, _ := post(t, srv.URL+"/guess", `{"game_id":"`+id+`","guess":"crane"}`)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestServer_ConcurrentGuesses(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	id := startGame(t, srv.URL)

	const n = 12
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted []int
		over     int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/guess", "application/json",
				strings.NewReader(`{"game_id":"`+id+`","guess":"lemon"}`))
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()
			var out map[string]any
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

			mu.Lock()
			defer mu.Unlock()
			switch resp.StatusCode {
			case http.StatusOK:
				g, _ := out["guesses"].(float64)
				accepted = append(accepted, int(g))
			case http.StatusBadRequest:
				assert.Equal(t, "Game is already over.", out["detail"])
				over++
			default:
				t.Errorf("unexpected status %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	// Every accepted guess saw its own attempt number; none were lost.
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, accepted)
	assert.Equal(t, n-6, over)
}

func TestServer_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	ctx := context.Background()
	s := session.New(evaluator.New(srv.URL))

	require.NoError(t, s.Start(ctx))
	require.Equal(t, session.StatusPlaying, s.Snapshot().Status)

	// Rejected words keep the draft and surface the server's reason.
	for _, r := range "xyzzy" {
		s.AppendLetter(r)
	}
	require.Error(t, s.SubmitGuess(ctx))
	snap := s.Snapshot()
	assert.Equal(t, "Not in word list.", snap.Message)
	assert.Equal(t, "xyzzy", snap.Draft)
	assert.Empty(t, snap.Guesses)

	for i := 0; i < 5; i++ {
		s.DeleteLetter()
	}
	for _, word := range []string{"slate", "crane"} {
		for _, r := range word {
			s.AppendLetter(r)
		}
		require.NoError(t, s.SubmitGuess(ctx))
	}

	snap = s.Snapshot()
	assert.Equal(t, session.StatusWon, snap.Status)
	assert.Equal(t, 2, snap.AttemptCount)
	assert.Equal(t, session.MarkGreen, snap.Letters.Get('c'))
	assert.Equal(t, session.MarkGray, snap.Letters.Get('s'))
	assert.Equal(t, session.MarkGreen, snap.Letters.Get('a'))
}

func TestServer_SessionLoss(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	ctx := context.Background()
	s := session.New(evaluator.New(srv.URL))
	require.NoError(t, s.Start(ctx))

	for i := 0; i < session.MaxAttempts; i++ {
		for _, r := range "lemon" {
			s.AppendLetter(r)
		}
		require.NoError(t, s.SubmitGuess(ctx))
	}
	snap := s.Snapshot()
	assert.Equal(t, session.StatusLost, snap.Status)
	assert.Len(t, snap.Guesses, session.MaxAttempts)
}
