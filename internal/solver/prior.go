// internal/solver/prior.go
//
// Accumulated constraint state ("prior"): which letters are proven
// absent from the hidden word, which are known present, and per
// (letter, position) whether placement is confirmed, ruled out, or
// still open. Knowledge only ever accumulates; a fresh Prior starts
// a new game.
//
// Tables are fixed-size, indexed by letter offset from 'a', so there
// is no allocate-on-read and iteration order is deterministic.

package solver

import (
	"fmt"
	"strings"
)

// PosStatus is the placement knowledge for one (letter, position).
type PosStatus int8

const (
	StatusUnknown    PosStatus = 0  // may or may not be here
	StatusAbsentHere PosStatus = -1 // proven not here
	StatusHere       PosStatus = 1  // proven here
)

// ConflictError reports contradictory feedback: two different letters
// both confirmed at the same position. The round cannot continue, but
// the caller decides whether the process survives.
type ConflictError struct {
	Pos  int
	Have byte // letter already confirmed at Pos
	Got  byte // letter newly claimed at Pos
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting feedback: position %d cannot hold both %q and %q", e.Pos, e.Have, e.Got)
}

// Prior holds everything learned from feedback so far.
type Prior struct {
	cfg        Config
	eliminated []bool        // letter proven absent from the word entirely
	known      []bool        // letter proven present somewhere in the word
	status     [][]PosStatus // [letter][position] placement knowledge
}

// NewPrior returns an empty prior for the given dimensions.
func NewPrior(cfg Config) *Prior {
	p := &Prior{
		cfg:        cfg,
		eliminated: make([]bool, cfg.Alphabet),
		known:      make([]bool, cfg.Alphabet),
		status:     make([][]PosStatus, cfg.Alphabet),
	}
	for i := range p.status {
		p.status[i] = make([]PosStatus, cfg.WordLen)
	}
	return p
}

// Eliminate records that c does not appear in the word at all.
func (p *Prior) Eliminate(c byte) {
	p.eliminated[c-'a'] = true
}

// MarkAbsentAt records that c is in the word but not at position i.
func (p *Prior) MarkAbsentAt(c byte, i int) {
	p.known[c-'a'] = true
	p.status[c-'a'][i] = StatusAbsentHere
}

// MarkHere records that c occupies position i. Every other letter is
// ruled out at i, since a position holds exactly one letter. If a
// different letter is already confirmed at i the feedback stream is
// contradictory and a ConflictError is returned.
func (p *Prior) MarkHere(c byte, i int) error {
	ci := int(c - 'a')
	for k := 0; k < p.cfg.Alphabet; k++ {
		if k == ci {
			continue
		}
		if p.status[k][i] == StatusHere {
			return &ConflictError{Pos: i, Have: byte('a' + k), Got: c}
		}
		p.status[k][i] = StatusAbsentHere
	}
	p.known[ci] = true
	p.status[ci][i] = StatusHere
	return nil
}

// Allows reports whether w is still consistent with the prior: none
// of its letters are eliminated, and no letter sits on a position
// where it is ruled out.
func (p *Prior) Allows(w string) bool {
	for i := 0; i < len(w); i++ {
		c := int(w[i] - 'a')
		if p.eliminated[c] {
			return false
		}
		if p.status[c][i] == StatusAbsentHere {
			return false
		}
	}
	return true
}

// String renders the prior for the solver CLI's debug command.
func (p *Prior) String() string {
	var b strings.Builder
	b.WriteString("eliminated={")
	first := true
	for c := 0; c < p.cfg.Alphabet; c++ {
		if !p.eliminated[c] {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		b.WriteByte(byte('a' + c))
		first = false
	}
	b.WriteString("} placements={")
	first = true
	for c := 0; c < p.cfg.Alphabet; c++ {
		if !p.known[c] {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		b.WriteByte(byte('a' + c))
		b.WriteByte(':')
		for i := 0; i < p.cfg.WordLen; i++ {
			switch p.status[c][i] {
			case StatusHere:
				b.WriteByte('+')
			case StatusAbsentHere:
				b.WriteByte('-')
			default:
				b.WriteByte('.')
			}
		}
		first = false
	}
	b.WriteByte('}')
	return b.String()
}
