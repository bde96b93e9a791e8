// internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery,
//     request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints under /solve (session-token gated after /new).
//   - Hidden-word game endpoints under /game.
//   - History endpoints backed by SQLite.
//
// Live sessions are held in the store; finished results are persisted
// best-effort to the history database.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/gnossen/wordle-solver/internal/history"
	"github.com/gnossen/wordle-solver/internal/solver"
	"github.com/gnossen/wordle-solver/internal/store"
)

// Server bundles router, live-session store, DB handle, and the
// dictionary shared by all sessions.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *sql.DB
	cfg   solver.Config
	vocab []string
	salt  string
}

// New constructs a Server, installs middleware, and registers routes.
// vocab is the full dictionary used for new sessions and games.
func New(st store.Store, db *sql.DB, cfg solver.Config, vocab []string) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		store: st,
		db:    db,
		cfg:   cfg,
		vocab: vocab,
		salt:  getEnv("DAILY_SALT", "local_dev_salt"),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve/new","POST /solve/feedback","POST /game/new","POST /game/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": len(s.vocab), "wordLen": s.cfg.WordLen})
	})

	s.mountSolve()
	s.mountGame()

	s.r.Get("/history/recent", s.handleHistory)

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

// handleHistory returns the most recent finished games and solves.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	games, err := history.RecentGames(r.Context(), s.db, limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	solves, err := history.RecentSolves(r.Context(), s.db, limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"games": games, "solves": solves})
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables CORS for a single origin from CLIENT_ORIGIN.
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

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
