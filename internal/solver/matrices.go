// internal/solver/matrices.go
//
// Per-letter, per-position frequency tables over the current
// vocabulary. M[c][i] counts words with letter c at position i.
// N[c][i] counts, for each position i occupied by some other letter,
// the words that contain c somewhere — equivalently, the words that
// contain c but not at position i. N's counting is deliberate and the
// scoring formula is calibrated against it; see scoreWord.

package solver

// Matrices holds the two frequency tables, indexed [letter][position].
type Matrices struct {
	M [][]int
	N [][]int
}

// buildMatrices derives fresh tables from vocab. It is a full rebuild
// on every call: the vocabulary only ever shrinks, so there is no
// incremental path to maintain.
func buildMatrices(cfg Config, vocab []string) *Matrices {
	mx := &Matrices{
		M: newTable(cfg),
		N: newTable(cfg),
	}
	distinct := make([]bool, cfg.Alphabet)
	for _, word := range vocab {
		for i := range distinct {
			distinct[i] = false
		}
		for i := 0; i < len(word); i++ {
			distinct[word[i]-'a'] = true
		}
		for i := 0; i < len(word); i++ {
			c := int(word[i] - 'a')
			mx.M[c][i]++
			for k := 0; k < cfg.Alphabet; k++ {
				if distinct[k] && k != c {
					mx.N[k][i]++
				}
			}
		}
	}
	return mx
}

func newTable(cfg Config) [][]int {
	t := make([][]int, cfg.Alphabet)
	for i := range t {
		t[i] = make([]int, cfg.WordLen)
	}
	return t
}
