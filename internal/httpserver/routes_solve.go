// internal/httpserver/routes_solve.go
//
// Solver-side endpoints. A session is one live engine instance:
//   - POST /solve/new         → start a session, get token + candidate
//   - POST /solve/feedback    → apply x/v/o feedback to the candidate
//   - POST /solve/invalidate  → drop a candidate the game rejected
//   - GET  /solve/candidates  → ranked remaining words
//
// Engine-level failures map to 409: conflicting feedback and an
// exhausted vocabulary both mean the session's model of the hidden
// word is broken and the round cannot continue.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/gnossen/wordle-solver/internal/history"
	"github.com/gnossen/wordle-solver/internal/solver"
	"github.com/gnossen/wordle-solver/internal/store"
)

// mountSolve registers all /solve routes.
func (s *Server) mountSolve() {
	s.r.Route("/solve", func(r chi.Router) {
		r.Post("/new", s.handleSolveNew)
		r.With(s.requireSession()).Post("/feedback", s.handleSolveFeedback)
		r.With(s.requireSession()).Post("/invalidate", s.handleSolveInvalidate)
		r.With(s.requireSession()).Get("/candidates", s.handleSolveCandidates)
	})
}

type solveStateRes struct {
	Candidate solver.Candidate `json:"candidate"`
	Remaining int              `json:"remaining"`
	Solved    bool             `json:"solved,omitempty"`
}

type solveNewRes struct {
	Token string `json:"token"`
	solveStateRes
}

// handleSolveNew starts a session over the server's dictionary and
// returns its token with the opening suggestion.
func (s *Server) handleSolveNew(w http.ResponseWriter, r *http.Request) {
	sv, err := solver.New(s.cfg, s.vocab)
	if err != nil {
		log.Error().Err(err).Msg("create solver")
		http.Error(w, `{"error":"solver_init_failed"}`, http.StatusInternalServerError)
		return
	}
	sess := &store.Session{
		ID:        genID(),
		Solver:    sv,
		StartedAt: time.Now(),
	}
	if err := s.store.SaveSession(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	token, err := issueToken(sess.ID)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(solveNewRes{
		Token: token,
		solveStateRes: solveStateRes{
			Candidate: sv.Best(),
			Remaining: sv.Remaining(),
		},
	})
}

type feedbackReq struct {
	Feedback string `json:"feedback"` // x/v/o, one char per position
}

// handleSolveFeedback applies one round of feedback to the session's
// current best candidate and returns the next suggestion.
func (s *Server) handleSolveFeedback(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if sess.Finished {
		http.Error(w, `{"error":"session_finished"}`, http.StatusConflict)
		return
	}
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	fb, err := solver.ParseFeedback(req.Feedback, sess.Solver.Config().WordLen)
	if err != nil {
		http.Error(w, `{"error":"invalid_feedback"}`, http.StatusBadRequest)
		return
	}

	guessed := sess.Solver.Best().Word
	if err := sess.Solver.ApplyFeedback(guessed, fb); err != nil {
		s.solveError(w, err)
		return
	}
	sess.Rounds++
	if fb.AllHit() {
		sess.Finished = true
		s.recordSolve(r, sess, guessed, true)
	}
	if err := s.store.SaveSession(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(solveStateRes{
		Candidate: sess.Solver.Best(),
		Remaining: sess.Solver.Remaining(),
		Solved:    sess.Finished,
	})
}

// handleSolveInvalidate drops the current candidate, for when the
// opposing side does not recognize it as a word.
func (s *Server) handleSolveInvalidate(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if sess.Finished {
		http.Error(w, `{"error":"session_finished"}`, http.StatusConflict)
		return
	}
	if err := sess.Solver.Invalidate(sess.Solver.Best().Word); err != nil {
		s.solveError(w, err)
		return
	}
	if err := s.store.SaveSession(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(solveStateRes{
		Candidate: sess.Solver.Best(),
		Remaining: sess.Solver.Remaining(),
	})
}

// handleSolveCandidates returns the ranked list, best first.
func (s *Server) handleSolveCandidates(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	ranked := sess.Solver.Ranked()
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < len(ranked) {
			ranked = ranked[:n]
		}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": ranked,
		"remaining":  sess.Solver.Remaining(),
	})
}

// solveError translates engine failures into HTTP responses.
func (s *Server) solveError(w http.ResponseWriter, err error) {
	var conflict *solver.ConflictError
	switch {
	case errors.As(err, &conflict):
		http.Error(w, `{"error":"conflicting_feedback","detail":"`+conflict.Error()+`"}`, http.StatusConflict)
	case errors.Is(err, solver.ErrNoCandidates):
		http.Error(w, `{"error":"no_candidates"}`, http.StatusConflict)
	default:
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
	}
}

// recordSolve persists a finished session, best effort.
func (s *Server) recordSolve(r *http.Request, sess *store.Session, answer string, solved bool) {
	err := history.InsertSolve(r.Context(), s.db, history.SolveResult{
		ID:         sess.ID,
		WordLen:    sess.Solver.Config().WordLen,
		Rounds:     sess.Rounds,
		Remaining:  sess.Solver.Remaining(),
		Solved:     solved,
		Answer:     answer,
		StartedAt:  sess.StartedAt,
		FinishedAt: time.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("record solve")
	}
}

// genID creates a 22-char URL-safe, crypto-random identifier.
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
