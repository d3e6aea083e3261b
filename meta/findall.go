// Package meta implements the meta-engine orchestrator.
//
// findall.go implements the all-matches search.

package meta

import "github.com/tkarabela/regexautomata/nfa"

// FindAll returns every non-overlapping leftmost-longest match in text, in
// left-to-right order.
//
// Unlike Find, FindAll does not use the prefilter to skip ahead: once a
// match is found the simulator must resume scanning from its end, which
// already visits every position the prefilter could have skipped, so a
// second candidate scan would add overhead without skipping any work.
func (e *Engine) FindAll(text string) []nfa.Match {
	sim := e.getSimulator()
	defer e.putSimulator(sim)
	return sim.FindAll([]rune(text))
}
