package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Effect is the presentation annotation applied to a candidate after an
// answer. It never influences scoring.
type Effect int

const (
	EffectNone        Effect = iota // Not yet annotated; selectable
	EffectCorrect                   // The chosen, correct answer
	EffectRevealed                  // The correct answer after a wrong pick
	EffectWrongChosen               // The wrong answer that was picked
	EffectFaded                     // Everything else
)

// String returns the configuration name of the effect.
func (e Effect) String() string {
	switch e {
	case EffectCorrect:
		return "correct"
	case EffectRevealed:
		return "revealed"
	case EffectWrongChosen:
		return "wrong-chosen"
	case EffectFaded:
		return "faded"
	default:
		return ""
	}
}

// ParseEffect parses an effect name as produced by String.
func ParseEffect(s string) (Effect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return EffectNone, nil
	case "correct":
		return EffectCorrect, nil
	case "revealed":
		return EffectRevealed, nil
	case "wrong-chosen":
		return EffectWrongChosen, nil
	case "faded":
		return EffectFaded, nil
	}
	return EffectNone, fmt.Errorf("unknown effect %q", s)
}

// CandidateKind distinguishes numeric tiles from decorative ones.
type CandidateKind int

const (
	KindNumber CandidateKind = iota
	KindDecoy
)

// Candidate is one tile in the answer grid.
type Candidate struct {
	Kind CandidateKind

	// Value is the number shown on a KindNumber tile.
	Value int

	// Decoy is the catalog name of a KindDecoy tile.
	Decoy string

	Effect Effect
}

// NumberCandidate returns an unannotated numeric tile.
func NumberCandidate(v int) Candidate {
	return Candidate{Kind: KindNumber, Value: v}
}

// DecoyCandidate returns an unannotated decorative tile.
func DecoyCandidate(name string) Candidate {
	return Candidate{Kind: KindDecoy, Decoy: name}
}

// ID returns the text identifying the tile: the number or decoy name.
func (c Candidate) ID() string {
	if c.Kind == KindDecoy {
		return c.Decoy
	}
	return strconv.Itoa(c.Value)
}

// IsNumber reports whether the tile carries a number.
func (c Candidate) IsNumber() bool {
	return c.Kind == KindNumber
}

// WithEffect returns a copy of the candidate carrying e.
func (c Candidate) WithEffect(e Effect) Candidate {
	c.Effect = e
	return c
}

// Selectable reports whether the tile can still be picked.
func (c Candidate) Selectable() bool {
	return c.Kind == KindNumber && c.Effect == EffectNone
}

// AnswerSet is the displayed, ordered grid of candidates for a question.
type AnswerSet []Candidate

// Numbers returns the numeric tiles in display order.
func (a AnswerSet) Numbers() []Candidate {
	var out []Candidate
	for _, c := range a {
		if c.Kind == KindNumber {
			out = append(out, c)
		}
	}
	return out
}

// Decoys returns the decorative tiles in display order.
func (a AnswerSet) Decoys() []Candidate {
	var out []Candidate
	for _, c := range a {
		if c.Kind == KindDecoy {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many numeric tiles show v.
func (a AnswerSet) Count(v int) int {
	n := 0
	for _, c := range a {
		if c.Kind == KindNumber && c.Value == v {
			n++
		}
	}
	return n
}

// IndexOf returns the position of the numeric tile showing v, or -1.
func (a AnswerSet) IndexOf(v int) int {
	for i, c := range a {
		if c.Kind == KindNumber && c.Value == v {
			return i
		}
	}
	return -1
}

// Annotated reports whether any tile carries an effect.
func (a AnswerSet) Annotated() bool {
	for _, c := range a {
		if c.Effect != EffectNone {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (a AnswerSet) Clone() AnswerSet {
	if a == nil {
		return nil
	}
	out := make(AnswerSet, len(a))
	copy(out, a)
	return out
}
