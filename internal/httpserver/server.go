// internal/httpserver/server.go
//
// HTTP server wiring for the spelling-game generation backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /api/generate-game, POST /api/generate-all-games.
//   - Diagnostics: GET /api/test-groq exercises the remote completion client.
//
// Notes:
//   - CORS is origin-aware via CLIENT_ORIGIN.
//   - Input validation happens here: empty words and unknown game types are
//     rejected with 400 before any generation work starts.
//   - The batch endpoint never fails as a whole: malformed and unknown
//     entries are logged and skipped.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/kailai-13/spellforge/internal/game"
)

// Generator produces one result envelope per word/game-type pair.
type Generator interface {
	Generate(ctx context.Context, word string, t game.GameType) (game.Result, error)
}

// Remote is the completion client surface the server needs for diagnostics.
type Remote interface {
	Complete(ctx context.Context, prompt string) string
	Configured() bool
}

// Server bundles the router, the challenge generator, and the remote client.
type Server struct {
	r      *chi.Mux
	gen    Generator
	remote Remote
}

// New constructs a Server, installs middleware, and registers routes.
func New(gen Generator, remote Remote) *Server {
	s := &Server{r: chi.NewRouter(), gen: gen, remote: remote}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(45 * time.Second)) // bound handler time (remote call is 30s)
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // CORS for the practice client

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"spellforge","endpoints":["/health","POST /api/generate-game","POST /api/generate-all-games","GET /api/test-groq"]}`))
	})
	s.r.Get("/health", s.handleHealth)
	s.r.Get("/api/test-groq", s.handleTestGroq)

	// Game generation
	s.r.Post("/api/generate-game", s.handleGenerateGame)
	s.r.Post("/api/generate-all-games", s.handleGenerateAllGames)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

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

// corsFromEnv enables CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// gameReq is the payload for POST /api/generate-game and each entry of the
// batch endpoint.
type gameReq struct {
	Word     string `json:"word"`
	GameType string `json:"game_type"`
}

// batchReq is the payload for POST /api/generate-all-games.
type batchReq struct {
	Words []gameReq `json:"words"`
}

// batchRes wraps the successfully generated batch entries.
type batchRes struct {
	Results []game.Result `json:"results"`
}

// handleGenerateGame generates a single game. 400 on missing/empty fields or
// an unknown game type, 500 if generation itself fails.
func (s *Server) handleGenerateGame(w http.ResponseWriter, r *http.Request) {
	var req gameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Word and game_type are required"}`, http.StatusBadRequest)
		return
	}

	word := strings.ToLower(strings.TrimSpace(req.Word))
	gt := game.GameType(req.GameType)

	if req.GameType == "" {
		http.Error(w, `{"error":"Word and game_type are required"}`, http.StatusBadRequest)
		return
	}
	if word == "" {
		http.Error(w, `{"error":"Word cannot be empty"}`, http.StatusBadRequest)
		return
	}
	if !game.KnownType(gt) {
		http.Error(w, `{"error":"Invalid game type"}`, http.StatusBadRequest)
		return
	}

	log.Info().Str("word", word).Str("gameType", string(gt)).Msg("generating game")

	res, err := s.gen.Generate(r.Context(), word, gt)
	if err != nil {
		log.Error().Err(err).Str("word", word).Msg("game generation failed")
		http.Error(w, `{"error":"Failed to generate game for word '`+word+`'"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleGenerateAllGames generates games for a list of word/game-type pairs.
// Malformed entries and unknown game types are skipped, never fatal.
func (s *Server) handleGenerateAllGames(w http.ResponseWriter, r *http.Request) {
	var req batchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Words == nil {
		http.Error(w, `{"error":"Words array is required"}`, http.StatusBadRequest)
		return
	}

	log.Info().Int("count", len(req.Words)).Msg("generating game batch")

	results := make([]game.Result, 0, len(req.Words))
	for _, item := range req.Words {
		word := strings.ToLower(strings.TrimSpace(item.Word))
		gt := game.GameType(item.GameType)

		if word == "" || item.GameType == "" {
			continue
		}
		if !game.KnownType(gt) {
			log.Warn().Str("gameType", item.GameType).Msg("skipping unknown game type")
			continue
		}

		res, err := s.gen.Generate(r.Context(), word, gt)
		if err != nil {
			log.Error().Err(err).Str("word", word).Msg("skipping failed batch entry")
			continue
		}
		results = append(results, res)
	}

	log.Info().Int("generated", len(results)).Msg("game batch done")
	_ = json.NewEncoder(w).Encode(batchRes{Results: results})
}

// --------------------------- diagnostics -----------------------------------

// handleHealth reports liveness plus whether the remote API is configured.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":                  "healthy",
		"groq_api_key_configured": s.remote.Configured(),
	})
}

// handleTestGroq sends a fixed prompt through the remote client to verify
// end-to-end connectivity.
func (s *Server) handleTestGroq(w http.ResponseWriter, r *http.Request) {
	if !s.remote.Configured() {
		http.Error(w, `{"error":"GROQ_API_KEY not configured"}`, http.StatusInternalServerError)
		return
	}
	resp := s.remote.Complete(r.Context(), "Say 'Hello, this is a test!'")
	if resp == "" {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "Failed to connect to Groq API",
		})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":   "success",
		"message":  "Groq API is working",
		"response": resp,
	})
}
