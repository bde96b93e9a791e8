// internal/solver/solver.go
//
// The ranking engine: owns the candidate vocabulary and the prior,
// recomputes frequency matrices and scores after every mutation, and
// surfaces a deterministic ranking. Single-owner, synchronous — there
// is no concurrency here, so no locking.

package solver

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoCandidates means the accumulated constraints rule out every
// word in the source vocabulary: either the feedback was wrong or the
// hidden word was never in the dictionary. Not recoverable.
var ErrNoCandidates = errors.New("solver: no candidate words remaining")

// Candidate pairs a vocabulary word with its expected-information
// score. Higher is more informative.
type Candidate struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Solver tracks one game: the shrinking vocabulary, the prior, and
// the current ranking. Vocabulary words are removed by feedback
// filtering or Invalidate, never added.
type Solver struct {
	cfg    Config
	vocab  []string
	prior  *Prior
	mx     *Matrices
	ranked []Candidate
}

// New builds a solver over vocab and computes the initial ranking.
// vocab must be non-empty, deduplicated, and uniform in length; its
// order is the tie-break order of the ranking.
func New(cfg Config, vocab []string) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	for _, w := range vocab {
		if err := cfg.checkWord(w); err != nil {
			return nil, err
		}
	}
	s := &Solver{
		cfg:   cfg,
		vocab: append([]string(nil), vocab...),
		prior: NewPrior(cfg),
	}
	if err := s.recalculate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the engine dimensions.
func (s *Solver) Config() Config { return s.cfg }

// Best returns the top-ranked candidate.
func (s *Solver) Best() Candidate { return s.ranked[0] }

// Ranked returns the full ranking, best first. Callers must not
// mutate the returned slice.
func (s *Solver) Ranked() []Candidate { return s.ranked }

// Remaining returns the current vocabulary size.
func (s *Solver) Remaining() int { return len(s.vocab) }

// Prior exposes the accumulated constraints, for diagnostics.
func (s *Solver) Prior() *Prior { return s.prior }

// Invalidate removes exactly word from the vocabulary and re-ranks.
// Used when the opposing side rejects the suggestion as not a word.
func (s *Solver) Invalidate(word string) error {
	for i, w := range s.vocab {
		if w == word {
			s.vocab = append(s.vocab[:i], s.vocab[i+1:]...)
			return s.recalculate()
		}
	}
	return fmt.Errorf("solver: %q is not in the vocabulary", word)
}

// ApplyFeedback folds one round of feedback for word into the prior,
// filters the vocabulary down to consistent words, and re-ranks.
// Returns a *ConflictError on contradictory feedback and
// ErrNoCandidates when nothing survives the filter.
func (s *Solver) ApplyFeedback(word string, fb Feedback) error {
	if len(fb) != s.cfg.WordLen {
		return fmt.Errorf("solver: feedback length %d, want %d", len(fb), s.cfg.WordLen)
	}
	if err := s.cfg.checkWord(word); err != nil {
		return err
	}
	for i := 0; i < len(word); i++ {
		switch fb[i] {
		case MarkMiss:
			s.prior.Eliminate(word[i])
		case MarkPresent:
			s.prior.MarkAbsentAt(word[i], i)
		case MarkHit:
			if err := s.prior.MarkHere(word[i], i); err != nil {
				return err
			}
		default:
			return fmt.Errorf("solver: unrecognized mark %q", fb[i])
		}
	}
	s.filter()
	return s.recalculate()
}

// filter drops vocabulary words inconsistent with the prior.
func (s *Solver) filter() {
	kept := s.vocab[:0]
	for _, w := range s.vocab {
		if s.prior.Allows(w) {
			kept = append(kept, w)
		}
	}
	s.vocab = kept
}

// recalculate rebuilds the matrices, rescores every word, and sorts.
// The sort is stable so equal scores keep vocabulary order, making
// the ranking reproducible.
func (s *Solver) recalculate() error {
	if len(s.vocab) == 0 {
		return ErrNoCandidates
	}
	s.mx = buildMatrices(s.cfg, s.vocab)
	w := len(s.vocab)
	s.ranked = make([]Candidate, w)
	for i, word := range s.vocab {
		s.ranked[i] = Candidate{Word: word, Score: scoreWord(word, s.mx, w, s.prior)}
	}
	sort.SliceStable(s.ranked, func(i, j int) bool {
		return s.ranked[i].Score > s.ranked[j].Score
	})
	return nil
}
