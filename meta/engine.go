// Package meta implements the meta-engine orchestrator.
//
// engine.go contains the Engine struct definition.

package meta

import (
	"sync"

	"github.com/coregx/ahocorasick"
	"github.com/tkarabela/regexautomata/nfa"
	"github.com/tkarabela/regexautomata/prefilter"
)

// Engine is a compiled pattern ready to search text. It owns an immutable
// NFA plus whatever literal-based prefilter the pattern's literals support;
// Find/FindAll/IsMatch use the prefilter only to skip non-matching regions
// of the haystack, never to decide a match on their own.
//
// Thread safety: Engine is safe for concurrent use. Each search borrows a
// pooled *nfa.Simulator via sync.Pool, following the same pattern the Go
// standard library's regexp package uses for its machine pool.
type Engine struct {
	nfa        *nfa.NFA
	numGroups  int
	groupNames map[string]int
	ignoreCase bool
	config     Config

	// pf and ahoCorasick are mutually exclusive: pf handles the single
	// literal case (memchr/memmem), ahoCorasick the multi-literal case.
	// prefilterFromPrefix records whether the literal came from
	// ExtractPrefixes (usable to anchor the simulator at the candidate
	// position) or ExtractSuffixes (usable only as a fast-rejection check,
	// since a required suffix's position does not bound where a match
	// could start).
	pf                  prefilter.Prefilter
	ahoCorasick         *ahocorasick.Automaton
	prefilterFromPrefix bool

	pool sync.Pool
}

func (e *Engine) getSimulator() *nfa.Simulator {
	if sim, ok := e.pool.Get().(*nfa.Simulator); ok {
		return sim
	}
	return nfa.NewSimulator(e.nfa, e.numGroups, e.ignoreCase)
}

func (e *Engine) putSimulator(sim *nfa.Simulator) {
	e.pool.Put(sim)
}

// NumGroups returns the total capture group count, including group 0 (the
// whole match).
func (e *Engine) NumGroups() int {
	return e.numGroups
}

// GroupNames returns the declared name-to-group-number mapping.
func (e *Engine) GroupNames() map[string]int {
	return e.groupNames
}
