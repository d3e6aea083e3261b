// Package meta implements the meta-engine orchestrator.
//
// find.go implements candidate-accelerated search.

package meta

import (
	"unicode/utf8"

	"github.com/tkarabela/regexautomata/nfa"
	"github.com/tkarabela/regexautomata/prefilter"
)

// Find returns the leftmost-longest match in text, or false if there is
// none.
//
// When the pattern has a usable prefix literal (or alternation of
// literals), Find scans for it with the prefilter/Aho-Corasick automaton
// and only runs the simulator, anchored, at each candidate position —
// skipping the regions of text the literal rules out. A suffix-only
// literal is used just to fail fast: if it is absent from text at all, no
// match is possible.
//
// A single-needle prefilter is wrapped in a prefilter.Tracker for the
// duration of the call: if most candidates turn out to be false positives
// on this particular text (e.g. a common letter picked as the rarest byte
// of a pattern that doesn't actually appear), the tracker disables it and
// Find falls back to an unaccelerated scan for the remainder of the text
// instead of paying per-candidate verification cost indefinitely.
func (e *Engine) Find(text string) (nfa.Match, bool) {
	sim := e.getSimulator()
	defer e.putSimulator(sim)

	if !e.hasPrefilter() {
		return sim.FindFrom([]rune(text), 0, false)
	}

	haystack := []byte(text)

	if !e.prefilterFromPrefix {
		if _, ok := e.nextCandidate(haystack, 0, nil); !ok {
			return nfa.Match{}, false
		}
		return sim.FindFrom([]rune(text), 0, false)
	}

	var tracker *prefilter.Tracker
	if e.pf != nil {
		tracker = prefilter.NewTracker(e.pf)
	}

	runes := []rune(text)
	start := 0
	for {
		bytePos, ok := e.nextCandidate(haystack, start, tracker)
		if !ok {
			if tracker != nil && !tracker.IsActive() {
				return sim.FindFrom(runes, runeOffset(text, start), false)
			}
			return nfa.Match{}, false
		}
		// A literal occurrence that doesn't land on a rune boundary is a
		// coincidental byte match, not a real candidate; skip past it.
		if bytePos < len(haystack) && !utf8.RuneStart(haystack[bytePos]) {
			start = bytePos + 1
			continue
		}
		runePos := utf8.RuneCountInString(text[:bytePos])
		if m, ok := sim.FindFrom(runes, runePos, true); ok {
			if tracker != nil {
				tracker.ConfirmMatch()
			}
			return m, true
		}
		start = bytePos + 1
		if tracker != nil && !tracker.IsActive() {
			return sim.FindFrom(runes, runeOffset(text, start), false)
		}
	}
}

// runeOffset converts a byte offset into text (0 <= bytePos <= len(text))
// to the equivalent rune index.
func runeOffset(text string, bytePos int) int {
	return utf8.RuneCountInString(text[:bytePos])
}

// IsMatch reports whether the pattern matches anywhere in text.
func (e *Engine) IsMatch(text string) bool {
	_, ok := e.Find(text)
	return ok
}

// MatchAnchored returns the leftmost-longest match starting exactly at
// position 0 of text, or false if the pattern does not match there. It
// bypasses the prefilter: anchoring rules out every candidate but one, so a
// literal scan would only add overhead.
func (e *Engine) MatchAnchored(text string) (nfa.Match, bool) {
	sim := e.getSimulator()
	defer e.putSimulator(sim)
	return sim.FindFrom([]rune(text), 0, true)
}

func (e *Engine) hasPrefilter() bool {
	return e.pf != nil || e.ahoCorasick != nil
}

// nextCandidate returns the byte offset of the next literal occurrence at
// or after from, or false if none remains. When tracker is non-nil it is
// used instead of e.pf directly, so its effectiveness statistics reflect
// every candidate this search considers.
func (e *Engine) nextCandidate(haystack []byte, from int, tracker *prefilter.Tracker) (int, bool) {
	if e.ahoCorasick != nil {
		m := e.ahoCorasick.Find(haystack, from)
		if m == nil {
			return 0, false
		}
		return m.Start, true
	}
	if tracker != nil {
		pos := tracker.Find(haystack, from)
		if pos == -1 {
			return 0, false
		}
		return pos, true
	}
	if e.pf != nil {
		pos := e.pf.Find(haystack, from)
		if pos == -1 {
			return 0, false
		}
		return pos, true
	}
	return 0, false
}
