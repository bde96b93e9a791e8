package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureSolver(t *testing.T) *Solver {
	t.Helper()
	s, err := New(DefaultConfig(), fiveWords)
	require.NoError(t, err)
	return s
}

func TestNewValidatesInput(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = New(DefaultConfig(), []string{"abc"})
	assert.Error(t, err)

	_, err = New(Config{WordLen: 0, Alphabet: 26}, []string{"a"})
	assert.Error(t, err)
}

func TestInitialRanking(t *testing.T) {
	s := newFixtureSolver(t)

	// Scores: angle/ankle 6.4, stale/table 6.0, apple 4.0.
	// Ties keep vocabulary (alphabetical) order.
	var order []string
	for _, c := range s.Ranked() {
		order = append(order, c.Word)
	}
	assert.Equal(t, []string{"angle", "ankle", "stale", "table", "apple"}, order)
	assert.Equal(t, "angle", s.Best().Word)
	assert.InDelta(t, 6.4, s.Best().Score, scoreTol)
}

func TestRankingDeterminism(t *testing.T) {
	a := newFixtureSolver(t)
	b := newFixtureSolver(t)
	assert.Equal(t, a.Ranked(), b.Ranked())
}

func TestInvalidate(t *testing.T) {
	s := newFixtureSolver(t)
	best := s.Best().Word

	require.NoError(t, s.Invalidate(best))
	assert.Equal(t, 4, s.Remaining())
	for _, c := range s.Ranked() {
		assert.NotEqual(t, best, c.Word)
	}

	assert.Error(t, s.Invalidate("zzzzz"))
	assert.Equal(t, 4, s.Remaining())
}

func TestApplyFeedbackFiltersVocabulary(t *testing.T) {
	vocab := []string{"aback", "alive", "angle", "apple", "train"}
	s, err := New(DefaultConfig(), vocab)
	require.NoError(t, err)

	// "apple" → hit on a, misses on p, p, l, e. Everything containing
	// p, l, or e goes, as does anything not starting with a.
	fb, err := ParseFeedback("oxxxx", 5)
	require.NoError(t, err)
	require.NoError(t, s.ApplyFeedback("apple", fb))

	assert.Equal(t, 1, s.Remaining())
	assert.Equal(t, "aback", s.Best().Word)
}

func TestApplyFeedbackIdempotentFilter(t *testing.T) {
	vocab := []string{"aback", "alive", "angle", "apple", "train"}
	s, err := New(DefaultConfig(), vocab)
	require.NoError(t, err)

	fb, err := ParseFeedback("oxxxx", 5)
	require.NoError(t, err)
	require.NoError(t, s.ApplyFeedback("apple", fb))
	before := s.Remaining()

	// Re-applying already-satisfied constraints changes nothing.
	require.NoError(t, s.ApplyFeedback("apple", fb))
	assert.Equal(t, before, s.Remaining())
	assert.Equal(t, "aback", s.Best().Word)
}

func TestApplyFeedbackExhaustsVocabulary(t *testing.T) {
	cfg := Config{WordLen: 2, Alphabet: 26}
	s, err := New(cfg, []string{"ab"})
	require.NoError(t, err)

	fb := Feedback{MarkMiss, MarkMiss}
	assert.ErrorIs(t, s.ApplyFeedback("ab", fb), ErrNoCandidates)
}

func TestApplyFeedbackConflict(t *testing.T) {
	cfg := Config{WordLen: 2, Alphabet: 26}
	s, err := New(cfg, []string{"aa", "ab", "bb"})
	require.NoError(t, err)

	// Round one: a confirmed at position 0, present-elsewhere at 1.
	require.NoError(t, s.ApplyFeedback("aa", Feedback{MarkHit, MarkPresent}))
	assert.Equal(t, 1, s.Remaining())
	assert.Equal(t, "ab", s.Best().Word)

	// Round two claims b also sits at position 0 — contradictory.
	err = s.ApplyFeedback("bb", Feedback{MarkHit, MarkMiss})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 0, conflict.Pos)
	assert.Equal(t, byte('a'), conflict.Have)
	assert.Equal(t, byte('b'), conflict.Got)
}

func TestApplyFeedbackShapeValidation(t *testing.T) {
	s := newFixtureSolver(t)
	assert.Error(t, s.ApplyFeedback("angle", Feedback{MarkHit}))
	assert.Error(t, s.ApplyFeedback("toolong", make(Feedback, 5)))
}

func TestParseFeedback(t *testing.T) {
	fb, err := ParseFeedback("xvoxo", 5)
	require.NoError(t, err)
	assert.Equal(t, Feedback{MarkMiss, MarkPresent, MarkHit, MarkMiss, MarkHit}, fb)
	assert.Equal(t, "xvoxo", fb.String())
	assert.False(t, fb.AllHit())

	fb, err = ParseFeedback("OOOOO", 5)
	require.NoError(t, err)
	assert.True(t, fb.AllHit())

	_, err = ParseFeedback("xxx", 5)
	assert.Error(t, err)
	_, err = ParseFeedback("xxqxx", 5)
	assert.Error(t, err)
}

func TestPriorString(t *testing.T) {
	cfg := Config{WordLen: 3, Alphabet: 26}
	p := NewPrior(cfg)
	p.Eliminate('z')
	p.MarkAbsentAt('b', 2)
	require.NoError(t, p.MarkHere('a', 0))

	s := p.String()
	assert.Contains(t, s, "z")
	assert.Contains(t, s, "a:+")
	assert.Contains(t, s, "b:-.-")
}
