// internal/httpserver/server.go
//
// HTTP server for the development evaluator.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /start, POST /guess.
//
// Notes:
//   - The game_id returned by /start is a signed token (see tokens.go); the
//     client treats it as opaque and sends it back with every guess.
//   - Every error body is {"detail": "..."} so clients can show it verbatim.
//   - 4xx means the request was understood and refused; 5xx means the
//     evaluator itself failed.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

// Config holds the server's tunables.
type Config struct {
	JWTSecret    string        // HMAC key for game tokens
	TokenTTL     time.Duration // game token lifetime; 0 = no expiry
	DailySalt    string        // salt for the daily word
	ClientOrigin string        // allowed CORS origin
}

// Server bundles router, game store, dictionary and daily picker.
type Server struct {
	r      *chi.Mux
	store  store.Store
	dict   *words.Dictionary
	tokens tokens
	daily  *daily.Picker
	now    func() time.Time
	locks  sync.Map // game ID -> *sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary, cfg Config) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		store: st,
		dict:  dict,
		daily: daily.NewPicker(cfg.DailySalt, dict.Answers()),
		now:   time.Now,
	}
	s.tokens = tokens{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL, now: func() time.Time { return s.now() }}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-evaluator","endpoints":["/health","POST /start","POST /guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.dict.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	// --- game ---
	s.r.Post("/start", s.handleStart)
	s.r.Post("/guess", s.handleGuess)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found: "+r.URL.Path)
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog logs method, path, status and latency with the request ID.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	lvl := zerolog.InfoLevel
	if status >= 500 {
		lvl = zerolog.ErrorLevel
	}
	hlog.FromRequest(r).WithLevel(lvl).
		Str("reqId", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("elapsed", d).
		Msg("request")
})

// ------------------------------ GAME ---------------------------------------

type startReq struct {
	Mode string `json:"mode"` // "" | "daily"
}

type startRes struct {
	GameID string `json:"game_id"`
}

// handleStart creates a game and returns its token.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var answer string
	switch {
	case req.Mode == daily.Mode:
		answer = s.daily.Pick(s.now())
	case req.Mode != "":
		writeError(w, http.StatusBadRequest, "Unknown mode.")
		return
	default:
		answer = s.dict.RandomAnswer()
	}

	g := game.New(answer, req.Mode)
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "Could not save game.")
		return
	}
	tok, err := s.tokens.issue(g.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("issue token")
		writeError(w, http.StatusInternalServerError, "Could not issue game token.")
		return
	}

	hlog.FromRequest(r).Info().Str("gameId", g.ID).Str("mode", g.Mode).Msg("game started")
	writeJSON(w, http.StatusOK, startRes{GameID: tok})
}

type guessReq struct {
	GameID string `json:"game_id"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Feedback []game.Mark `json:"feedback"`
	Correct  bool        `json:"correct"`
	Guesses  int         `json:"guesses"`
}

// handleGuess applies a guess to a stored game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	id, err := s.tokens.parse(req.GameID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid game token.")
		return
	}
	defer s.lockGame(id)()

	g, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Game not found.")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", id).Msg("load game")
		writeError(w, http.StatusInternalServerError, "Could not load game.")
		return
	}

	marks, err := g.ApplyGuess(req.Guess, s.dict.IsAllowed)
	var rej *game.RejectError
	if errors.As(err, &rej) {
		writeError(w, http.StatusBadRequest, rej.Reason)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not apply guess.")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", id).Msg("save game")
		writeError(w, http.StatusInternalServerError, "Could not save game.")
		return
	}

	hlog.FromRequest(r).Debug().Str("gameId", id).Int("guesses", len(g.Guesses)).Str("state", g.State()).Msg("guess applied")
	writeJSON(w, http.StatusOK, guessRes{Feedback: marks, Correct: g.Won, Guesses: len(g.Guesses)})
}

// ------------------------------- helpers -----------------------------------

// lockGame serializes load, apply and save for one game. It returns the
// unlock function.
func (s *Server) lockGame(id string) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
