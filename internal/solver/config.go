// internal/solver/config.go
//
// Engine dimensions. Word length and alphabet size are threaded
// through every constructor rather than living in package constants,
// so solvers for different lengths can coexist in one process.

package solver

import "fmt"

const (
	defaultWordLen  = 5
	defaultAlphabet = 26
)

// Config fixes the dimensions of a single game: the word length and
// the size of the (contiguous, 'a'-based) alphabet.
type Config struct {
	WordLen  int // letters per word
	Alphabet int // number of letters, 'a' .. 'a'+Alphabet-1
}

// DefaultConfig returns the classic 5-letter, a-z configuration.
func DefaultConfig() Config {
	return Config{WordLen: defaultWordLen, Alphabet: defaultAlphabet}
}

func (c Config) validate() error {
	if c.WordLen <= 0 {
		return fmt.Errorf("solver: word length must be positive, got %d", c.WordLen)
	}
	if c.Alphabet <= 0 || c.Alphabet > 26 {
		return fmt.Errorf("solver: alphabet size must be in 1..26, got %d", c.Alphabet)
	}
	return nil
}

// checkWord reports whether w has the configured length and uses only
// letters inside the configured alphabet.
func (c Config) checkWord(w string) error {
	if len(w) != c.WordLen {
		return fmt.Errorf("solver: word %q has length %d, want %d", w, len(w), c.WordLen)
	}
	for i := 0; i < len(w); i++ {
		if li := int(w[i]) - 'a'; li < 0 || li >= c.Alphabet {
			return fmt.Errorf("solver: word %q has letter %q outside alphabet", w, w[i])
		}
	}
	return nil
}
