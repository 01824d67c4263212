// internal/httpserver/server.go
//
// HTTP front end for hangman rounds.
// Responsibilities:
//   - Router + middleware (request IDs, access logs, panic recovery,
//     timeouts, JSON content type, CORS).
//   - Public endpoints: "/", "/health".
//   - Round endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//
// Notes:
//   - /game/new returns a signed round token; guesses and reads must present
//     it as "Authorization: Bearer <token>".
//   - Finished rounds are dropped from the store after the final response.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/progress"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// Options configures a Server.
type Options struct {
	ClientOrigin string        // allowed CORS origin
	TokenSecret  string        // HS256 key for round tokens
	TokenTTL     time.Duration // round token lifetime
	MinLength    int           // default when a request omits minLength
	MaxLength    int           // default when a request omits maxLength
}

// Server bundles router, round store and the round collaborators.
type Server struct {
	r        *chi.Mux
	store    store.Store
	words    words.Source
	progress progress.Provider
	opts     Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, src words.Source, p progress.Provider, opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), store: st, words: src, progress: p, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(15 * time.Second)) // covers the Wordnik lookup
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"hangman","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- rounds ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found"})
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Str("requestId", chimw.GetReqID(r.Context())).
		Msg("request")
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single browser origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ ROUNDS -------------------------------------

type newGameReq struct {
	MinLength int `json:"minLength"`
	MaxLength int `json:"maxLength"`
}

type newGameRes struct {
	Token string `json:"token"`
	game.Snapshot
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type errorRes struct {
	Error string         `json:"error"`
	State *game.Snapshot `json:"round,omitempty"`
}

// handleNewGame picks a word and opens a round.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body (sized or chunked) asks for the default range.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
		return
	}
	if req.MinLength == 0 && req.MaxLength == 0 {
		req.MinLength, req.MaxLength = s.opts.MinLength, s.opts.MaxLength
	}

	g, err := game.Start(r.Context(), s.words, s.progress, req.MinLength, req.MaxLength)
	if err != nil {
		status, code := startError(err)
		hlog.FromRequest(r).Warn().Err(err).Int("minLength", req.MinLength).
			Int("maxLength", req.MaxLength).Msg("start round")
		writeJSON(w, status, errorRes{Error: code})
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save round")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "save_failed"})
		return
	}
	tok, err := s.signRoundToken(g.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign round token")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "sign_failed"})
		return
	}

	hlog.FromRequest(r).Info().Str("gameId", g.ID).Msg("round started")
	writeJSON(w, http.StatusOK, newGameRes{Token: tok, Snapshot: g.Snapshot()})
}

// handleGuess applies one guess to the caller's round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
		return
	}
	if !s.authorized(w, r, req.GameID) {
		return
	}

	var snap game.Snapshot
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		_, err := g.Guess(req.Guess)
		snap = g.Snapshot()
		return err
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found"})
		return
	case errors.Is(err, game.ErrInvalidGuess):
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "invalid_guess", State: &snap})
		return
	case errors.Is(err, game.ErrRepeatedGuess):
		writeJSON(w, http.StatusConflict, errorRes{Error: "repeated_guess", State: &snap})
		return
	case errors.Is(err, game.ErrRoundOver):
		writeJSON(w, http.StatusConflict, errorRes{Error: "round_over", State: &snap})
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("gameId", req.GameID).Msg("guess")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "guess_failed"})
		return
	}

	if snap.Outcome.Terminal() {
		if err := s.store.Delete(r.Context(), req.GameID); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("gameId", req.GameID).Msg("drop finished round")
		}
		hlog.FromRequest(r).Info().Str("gameId", req.GameID).Str("state", string(snap.Outcome)).Msg("round finished")
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleGetGame returns the current state of the caller's round.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.authorized(w, r, id) {
		return
	}
	snap, err := s.store.Snapshot(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// startError maps round-startup failures to a status and error code.
func startError(err error) (int, string) {
	switch {
	case errors.Is(err, words.ErrInvalidRange):
		return http.StatusBadRequest, "invalid_range"
	case errors.Is(err, words.ErrNoCandidates):
		return http.StatusUnprocessableEntity, "no_candidates"
	case errors.Is(err, words.ErrResourceUnavailable):
		return http.StatusServiceUnavailable, "word_list_unavailable"
	case errors.Is(err, words.ErrRemoteUnavailable):
		return http.StatusBadGateway, "word_service_unavailable"
	default:
		return http.StatusInternalServerError, "no_word"
	}
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

