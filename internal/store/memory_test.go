package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnossen/wordle-solver/internal/game"
	"github.com/gnossen/wordle-solver/internal/solver"
)

func TestMemoryStoreGames(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	g, err := game.New("crane")
	require.NoError(t, err)
	require.NoError(t, m.SaveGame(ctx, g))

	got, err := m.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = m.GetGame(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSessions(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	sv, err := solver.New(solver.DefaultConfig(), []string{"crane"})
	require.NoError(t, err)
	sess := &Session{ID: "s1", Solver: sv, StartedAt: time.Now()}
	require.NoError(t, m.SaveSession(ctx, sess))

	got, err := m.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = m.GetSession(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
