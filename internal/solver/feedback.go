// internal/solver/feedback.go
//
// Per-letter feedback marks and their wire form.
// Marks travel two ways:
//   - as JSON strings ("hit"/"present"/"miss") on the HTTP API, and
//   - as compact x/v/o lines on the interactive CLIs, one character
//     per position: x = miss, v = present elsewhere, o = hit.

package solver

import (
	"fmt"
	"strings"
)

// Mark is the verdict for a single letter of a guess.
type Mark string

const (
	MarkHit     Mark = "hit"     // letter confirmed at this position
	MarkPresent Mark = "present" // letter in the word, elsewhere
	MarkMiss    Mark = "miss"    // letter not in the word
)

// Feedback is a positionally-aligned sequence of marks for one guess.
type Feedback []Mark

// ParseFeedback decodes an x/v/o line into a Feedback of length
// wordLen. Shape errors are rejected here so the engine never sees
// malformed feedback.
func ParseFeedback(s string, wordLen int) (Feedback, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != wordLen {
		return nil, fmt.Errorf("feedback %q has length %d, want %d", s, len(s), wordLen)
	}
	fb := make(Feedback, wordLen)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'x':
			fb[i] = MarkMiss
		case 'v':
			fb[i] = MarkPresent
		case 'o':
			fb[i] = MarkHit
		default:
			return nil, fmt.Errorf("feedback %q has unrecognized symbol %q", s, s[i])
		}
	}
	return fb, nil
}

// String renders the compact x/v/o form.
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, m := range f {
		switch m {
		case MarkHit:
			b.WriteByte('o')
		case MarkPresent:
			b.WriteByte('v')
		default:
			b.WriteByte('x')
		}
	}
	return b.String()
}

// AllHit reports whether every position is a hit.
func (f Feedback) AllHit() bool {
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return len(f) > 0
}
