// internal/store/memory.go
//
// In-memory store for live sessions: hidden-word games on one side,
// solver sessions on the other. Ephemeral by design — finished
// results go to the history database, live state does not survive a
// restart.
//
// Concurrency-safe via RWMutex; HTTP handlers for different sessions
// run in parallel even though each engine instance is single-owner.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gnossen/wordle-solver/internal/game"
	"github.com/gnossen/wordle-solver/internal/solver"
)

// ErrNotFound is returned when an ID has no live entry.
var ErrNotFound = errors.New("store: not found")

// Session is one live solver run: the engine plus bookkeeping for
// the history record written when it finishes.
type Session struct {
	ID        string
	Solver    *solver.Solver
	StartedAt time.Time
	Rounds    int  // feedback rounds applied so far
	Finished  bool // set once an all-hit round lands
}

// Store is the persistence interface for live sessions.
// Implementations may be backed by memory (this package), Redis, etc.
type Store interface {
	SaveGame(ctx context.Context, g *game.Game) error
	GetGame(ctx context.Context, id string) (*game.Game, error)
	SaveSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
}

type memory struct {
	mu       sync.RWMutex
	games    map[string]*game.Game
	sessions map[string]*Session
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		games:    make(map[string]*game.Game),
		sessions: make(map[string]*Session),
	}
}

func (m *memory) SaveGame(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) GetGame(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) SaveSession(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) GetSession(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
