// Package nfa builds and simulates the Thompson NFA that a compiled pattern
// compiles down to. States and transitions are value types keyed on
// RangeSet-based predicates rather than bytes, since the engine matches
// code points directly.
package nfa

import (
	"strconv"
	"strings"

	"github.com/tkarabela/regexautomata/rangeset"
)

// TransitionPredicate is a pair of optional RangeSets over the code points
// immediately before and after the current position. A nil side is
// unconstrained; the predicate holds iff every non-nil side contains its
// respective character.
type TransitionPredicate struct {
	Previous *rangeset.RangeSet
	Next     *rangeset.RangeSet
}

func (p TransitionPredicate) matches(prev, next int) bool {
	if p.Previous != nil && !p.Previous.Contains(prev) {
		return false
	}
	if p.Next != nil && !p.Next.Contains(next) {
		return false
	}
	return true
}

func (p TransitionPredicate) key() string {
	var b strings.Builder
	if p.Previous != nil {
		b.WriteString(p.Previous.Key())
	}
	b.WriteByte(';')
	if p.Next != nil {
		b.WriteString(p.Next.Key())
	}
	return b.String()
}

// noGroup is the sentinel meaning "this transition does not open or close a
// capturing group". Group 0 (the whole match) is a valid group number, so
// -1 rather than 0 marks absence.
const noGroup = -1

// Transition is a single NFA edge label. ConsumeChar=false marks a
// zero-width transition. BeginGroup/EndGroup (noGroup when absent) record
// the capture-boundary action taken when the transition fires. A
// transition matches (previous, next) iff Predicates is empty (meaning
// unconditional) or any predicate in it holds.
type Transition struct {
	Predicates  []TransitionPredicate
	ConsumeChar bool
	BeginGroup  int
	EndGroup    int
}

func epsilon() Transition { return Transition{BeginGroup: noGroup, EndGroup: noGroup} }

// Matches reports whether the transition fires given the code point before
// (prev) and after (next) the current position.
func (t Transition) Matches(prev, next int) bool {
	if len(t.Predicates) == 0 {
		return true
	}
	for _, p := range t.Predicates {
		if p.matches(prev, next) {
			return true
		}
	}
	return false
}

// isTrivialEpsilon reports whether t is the "trivial ε" the builder uses
// purely for structural wiring (Concat/Union/Iteration splicing): zero
// width, unconditional, and carrying no group marker. These are the only
// transitions the ε-elimination pass removes.
func (t Transition) isTrivialEpsilon() bool {
	return !t.ConsumeChar && len(t.Predicates) == 0 && t.BeginGroup == noGroup && t.EndGroup == noGroup
}

// key returns a structural identity for t, used to merge transitions that
// are equal in every field but were constructed independently (e.g. two
// Union branches both producing the same boundary assertion). This keeps
// the adjacency map's keys meaningful across repeated ε-elimination passes.
func (t Transition) key() string {
	var b strings.Builder
	if t.ConsumeChar {
		b.WriteByte('c')
	} else {
		b.WriteByte('e')
	}
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(t.BeginGroup))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(t.EndGroup))
	b.WriteByte(':')
	for _, p := range t.Predicates {
		b.WriteString(p.key())
		b.WriteByte(',')
	}
	return b.String()
}
