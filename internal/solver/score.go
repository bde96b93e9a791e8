// internal/solver/score.go
//
// Expected-information scoring for one candidate guess. The score is
// a probability-weighted count of vocabulary words a guess is
// expected to eliminate, summed over positions, using the current
// frequency matrices as outcome probabilities.

package solver

import "strings"

// scoreWord scores a single candidate against the current matrices,
// vocabulary size w, and prior. Pure; always >= 0.
//
// Each position contributes one of:
//   - 0, when the letter can teach us nothing here: already
//     eliminated, placement here already resolved, a repeat of an
//     earlier untracked letter, or a letter every remaining word has
//     at this position;
//   - for a letter not yet known to be in the word, the expected
//     eliminations across the three feedback outcomes (confirmed
//     here, present elsewhere, absent);
//   - for a letter known present but unplaced here, the expected
//     eliminations of the binary is-it-here test: 2M - 2M²/W.
func scoreWord(word string, mx *Matrices, w int, p *Prior) float64 {
	var score float64
	for i := 0; i < len(word); i++ {
		c := int(word[i] - 'a')
		switch {
		case p.eliminated[c]:
			// Known absent; repeating it wastes the position.

		case !p.known[c]:
			if strings.IndexByte(word[:i], word[i]) >= 0 {
				// A repeat adds no presence information beyond the
				// first occurrence.
				continue
			}
			m := mx.M[c][i]
			if m == w {
				// Every remaining word has c here; the test is vacuous
				// (and e1 below would be zero).
				continue
			}
			p1 := float64(m) / float64(w)
			e1 := float64(w - m)
			n := float64(mx.N[c][i])
			p2 := n / e1
			e2 := float64(w) - n
			e3 := float64(m) + n
			e4 := p2*e2 + (1-p2)*e3
			score += p1*e1 + (1-p1)*e4

		default:
			// Known present; only an unresolved position is worth
			// testing.
			if p.status[c][i] != StatusUnknown {
				continue
			}
			m := float64(mx.M[c][i])
			score += 2*m - 2*(m*m/float64(w))
		}
	}
	return score
}
