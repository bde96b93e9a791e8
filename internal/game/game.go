// internal/game/game.go
//
// The hidden-word side of the solver pair: holds a secret answer,
// validates guesses, and renders per-letter feedback.
//
// The feedback rule is the simple per-position one: exact match is a
// hit; otherwise a letter appearing anywhere in the answer is marked
// present at every position it is guessed, even when the answer holds
// fewer copies. That repeat behavior is intentional and the solver is
// calibrated against it; do not replace it with the two-pass
// counted-duplicates rule.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gnossen/wordle-solver/internal/solver"
)

// Game holds the state of a single hidden-word session.
type Game struct {
	ID        string    // random hex identifier
	Answer    string    // the hidden word, lowercase
	WordLen   int       // letters per guess
	Guesses   []string  // guesses made so far
	Finished  bool      // set once the answer is fully hit
	Daily     bool      // answer picked by the daily schedule
	StartedAt time.Time // creation time, for history records
}

// New constructs a game around answer. The answer fixes the word
// length for the session.
func New(answer string) (*Game, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" || !isAlpha(answer) {
		return nil, errors.New("game: answer must be a non-empty lowercase word")
	}
	return &Game{
		ID:        randomID(),
		Answer:    answer,
		WordLen:   len(answer),
		Guesses:   []string{},
		StartedAt: time.Now(),
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the feedback and the coarse state ("playing" or "won").
func (g *Game) ApplyGuess(guess string) (solver.Feedback, string, error) {
	if g.Finished {
		return nil, g.State(), errors.New("game finished")
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.WordLen || !isAlpha(guess) {
		return nil, g.State(), errors.New("invalid guess")
	}

	fb := feedbackFor(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)
	if fb.AllHit() {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports a coarse string representation of the game state.
func (g *Game) State() string {
	if g.Finished {
		return "won"
	}
	return "playing"
}

// feedbackFor compares guess to answer position by position.
func feedbackFor(answer, guess string) solver.Feedback {
	fb := make(solver.Feedback, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case guess[i] == answer[i]:
			fb[i] = solver.MarkHit
		case strings.IndexByte(answer, guess[i]) >= 0:
			fb[i] = solver.MarkPresent
		default:
			fb[i] = solver.MarkMiss
		}
	}
	return fb
}

// isAlpha checks that s consists only of lowercase a-z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
