package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiveWords is the shared hand-checked fixture. Alphabetical, the
// same order words.Read would produce.
var fiveWords = []string{"angle", "ankle", "apple", "stale", "table"}

func li(c byte) int { return int(c - 'a') }

func TestBuildMatricesM(t *testing.T) {
	mx := buildMatrices(DefaultConfig(), fiveWords)

	// Position 0 first letters: a, a, a, s, t.
	assert.Equal(t, 3, mx.M[li('a')][0])
	assert.Equal(t, 1, mx.M[li('s')][0])
	assert.Equal(t, 1, mx.M[li('t')][0])

	// Every word has l at position 3 and e at position 4.
	assert.Equal(t, 5, mx.M[li('l')][3])
	assert.Equal(t, 5, mx.M[li('e')][4])

	// p appears only in apple.
	assert.Equal(t, 1, mx.M[li('p')][1])
	assert.Equal(t, 1, mx.M[li('p')][2])
	assert.Equal(t, 0, mx.M[li('p')][0])
}

func TestBuildMatricesN(t *testing.T) {
	mx := buildMatrices(DefaultConfig(), fiveWords)

	// N[c][i] counts words containing c whose letter at i is not c.
	// All five words contain a; stale and table lack a at position 0.
	assert.Equal(t, 2, mx.N[li('a')][0])
	// Only table has a at position 1; the other four a-words count.
	assert.Equal(t, 4, mx.N[li('a')][1])
	// l sits at position 3 in every word, so no word counts there...
	assert.Equal(t, 0, mx.N[li('l')][3])
	// ...but all five count at every other position.
	assert.Equal(t, 5, mx.N[li('l')][0])
	assert.Equal(t, 5, mx.N[li('l')][4])
	// n appears only in angle and ankle, both at position 1.
	assert.Equal(t, 0, mx.N[li('n')][1])
	assert.Equal(t, 2, mx.N[li('n')][0])
	// t: in stale (pos 1) and table (pos 0).
	assert.Equal(t, 1, mx.N[li('t')][0])
	assert.Equal(t, 1, mx.N[li('t')][1])
	assert.Equal(t, 2, mx.N[li('t')][2])
}

func TestBuildMatricesDimensions(t *testing.T) {
	cfg := Config{WordLen: 3, Alphabet: 4}
	mx := buildMatrices(cfg, []string{"abc", "cba"})
	require.Len(t, mx.M, 4)
	require.Len(t, mx.M[0], 3)
	assert.Equal(t, 1, mx.M[li('a')][0])
	assert.Equal(t, 1, mx.M[li('a')][2])
	// b occupies position 1 in both words, so it never counts in N there.
	assert.Equal(t, 0, mx.N[li('b')][1])
	assert.Equal(t, 2, mx.N[li('b')][0])
}
