// internal/httpserver/routes_game.go
//
// Hidden-word side over HTTP:
//   - POST /game/new    → start a game (random answer, or fixed for tests)
//   - POST /game/daily  → start today's deterministic game
//   - POST /game/guess  → submit a guess, get per-letter feedback
//
// Finished games are persisted to history, best effort.

package httpserver

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/gnossen/wordle-solver/internal/daily"
	"github.com/gnossen/wordle-solver/internal/game"
	"github.com/gnossen/wordle-solver/internal/history"
	"github.com/gnossen/wordle-solver/internal/solver"
)

// mountGame registers all /game routes.
func (s *Server) mountGame() {
	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleGameNew)
		r.Post("/daily", s.handleGameDaily)
		r.Post("/guess", s.handleGameGuess)
	})
}

type gameNewReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type gameNewRes struct {
	GameID  string `json:"gameId"`
	WordLen int    `json:"wordLen"`
}

func (s *Server) handleGameNew(w http.ResponseWriter, r *http.Request) {
	var req gameNewReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	answer := req.Answer
	if answer == "" {
		answer = s.randomWord()
	}
	g, err := game.New(answer)
	if err != nil {
		http.Error(w, `{"error":"invalid_answer"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.SaveGame(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(gameNewRes{GameID: g.ID, WordLen: g.WordLen})
}

// handleGameDaily starts a game whose answer is the word of the day.
// Same salt + dictionary means the same answer on every server.
func (s *Server) handleGameDaily(w http.ResponseWriter, r *http.Request) {
	idx := daily.WordIndex(time.Now(), s.salt, len(s.vocab))
	g, err := game.New(s.vocab[idx])
	if err != nil {
		http.Error(w, `{"error":"invalid_answer"}`, http.StatusInternalServerError)
		return
	}
	g.Daily = true
	if err := s.store.SaveGame(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(gameNewRes{GameID: g.ID, WordLen: g.WordLen})
}

type gameGuessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type gameGuessRes struct {
	Feedback string        `json:"feedback"` // compact x/v/o form
	Marks    []solver.Mark `json:"marks"`
	State    string        `json:"state"` // "playing" | "won"
}

func (s *Server) handleGameGuess(w http.ResponseWriter, r *http.Request) {
	var req gameGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.GetGame(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	fb, state, err := g.ApplyGuess(req.Guess)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.SaveGame(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	if g.Finished {
		s.recordGame(r, g)
	}
	_ = json.NewEncoder(w).Encode(gameGuessRes{Feedback: fb.String(), Marks: fb, State: state})
}

// recordGame persists a finished game, best effort.
func (s *Server) recordGame(r *http.Request, g *game.Game) {
	err := history.InsertGame(r.Context(), s.db, history.GameResult{
		ID:         g.ID,
		Answer:     g.Answer,
		WordLen:    g.WordLen,
		Guesses:    len(g.Guesses),
		Daily:      g.Daily,
		StartedAt:  g.StartedAt,
		FinishedAt: time.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record game")
	}
}

// randomWord picks a uniformly random dictionary word.
func (s *Server) randomWord() string {
	if len(s.vocab) == 0 {
		return ""
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(s.vocab))))
	return s.vocab[nBig.Int64()]
}
