package nfa

import (
	"github.com/tkarabela/regexautomata/internal/conv"
	"github.com/tkarabela/regexautomata/internal/sparse"
	"github.com/tkarabela/regexautomata/rangeset"
)

// GroupMatch is the span of a single capture group within a Match. Start is
// -1 if the group never participated; End is -1 while the group is still
// open during simulation (never observable on a finished Match).
type GroupMatch struct {
	Start, End int
}

// Match is one accepted run through the NFA: the overall span (Groups[0])
// plus every numbered capture group's span.
type Match struct {
	Start, End int
	Groups     []GroupMatch
}

// cowGroups gives every head its own capture vector with copy-on-write
// semantics, ported from the teacher's cowCaptures: splitting a head at a
// Union or Iteration point is a refcount bump, not an allocation; only a
// BeginGroup/EndGroup transition forces a copy, and only when the vector is
// actually shared with another live head.
type cowGroups struct {
	shared *sharedGroups
}

type sharedGroups struct {
	data []GroupMatch
	refs int
}

func newGroups(numGroups int) cowGroups {
	data := make([]GroupMatch, numGroups)
	for i := range data {
		data[i] = GroupMatch{Start: -1, End: -1}
	}
	return cowGroups{shared: &sharedGroups{data: data, refs: 1}}
}

func (g cowGroups) clone() cowGroups {
	g.shared.refs++
	return g
}

func (g cowGroups) withBegin(group, pos int) cowGroups {
	return g.set(group, pos, g.shared.data[group].End)
}

func (g cowGroups) withEnd(group, pos int) cowGroups {
	return g.set(group, g.shared.data[group].Start, pos)
}

func (g cowGroups) set(group, start, end int) cowGroups {
	if g.shared.refs > 1 {
		data := make([]GroupMatch, len(g.shared.data))
		copy(data, g.shared.data)
		data[group] = GroupMatch{Start: start, End: end}
		g.shared.refs--
		return cowGroups{shared: &sharedGroups{data: data, refs: 1}}
	}
	g.shared.data[group] = GroupMatch{Start: start, End: end}
	return g
}

func (g cowGroups) snapshot() []GroupMatch {
	out := make([]GroupMatch, len(g.shared.data))
	copy(out, g.shared.data)
	return out
}

// head is a single parallel evaluation: NFA state, the code point position
// this thread's match attempt started at, and its capture vector.
type head struct {
	state  StateID
	start  int
	groups cowGroups
}

// Simulator executes an NFA over a rune slice using Pike's parallel-thread
// algorithm, generalized from single-character-consuming transitions to
// RangeSet predicates over (previous, next) code points so that boundary
// assertions and capture markers participate in the same zero-width
// closure step.
type Simulator struct {
	nfa        *NFA
	numGroups  int
	ignoreCase bool

	queue, nextQueue []head
	visited          *sparse.SparseSet
}

// NewSimulator builds a Simulator for nfa. numGroups is the total capture
// group count including group 0 (the whole match), i.e.
// syntax.Result.MaxGroupNumber+1.
func NewSimulator(nfa *NFA, numGroups int, ignoreCase bool) *Simulator {
	capacity := nfa.NumStates()
	if capacity < 16 {
		capacity = 16
	}
	return &Simulator{
		nfa:        nfa,
		numGroups:  numGroups,
		ignoreCase: ignoreCase,
		queue:      make([]head, 0, capacity),
		nextQueue:  make([]head, 0, capacity),
		visited:    sparse.NewSparseSet(conv.IntToUint32(capacity)),
	}
}

// charAt returns the case-folded code point at text[p], or rangeset.EOF if
// p lies outside [0, len(text)).
func (s *Simulator) charAt(text []rune, p int) int {
	if p < 0 || p >= len(text) {
		return rangeset.EOF
	}
	c := int(text[p])
	if s.ignoreCase {
		return rangeset.FoldASCII(c)
	}
	return c
}

// addHead expands h through the zero-width closure (recursively following
// every non-consuming transition whose predicate matches prev/next at pos),
// appending every state it reaches to the queue at most once per call,
// first-claimed wins. A state's future behavior depends only on the state
// itself, never on the path taken to reach it, so when two heads would
// claim the same state, the one already in the queue (which, by seeding
// order, always has the smaller or equal start) stays and the later one is
// dropped without changing which match is eventually reported.
func (s *Simulator) addHead(queue *[]head, h head, prev, next, pos int) {
	if s.visited.Contains(uint32(h.state)) {
		return
	}
	s.visited.Insert(uint32(h.state))
	*queue = append(*queue, h)

	for _, e := range s.nfa.edgesFrom(h.state) {
		if e.Transition.ConsumeChar {
			continue
		}
		if !e.Transition.Matches(prev, next) {
			continue
		}
		g := h.groups
		if e.Transition.BeginGroup != noGroup {
			g = g.clone().withBegin(e.Transition.BeginGroup, pos)
		}
		if e.Transition.EndGroup != noGroup {
			g = g.clone().withEnd(e.Transition.EndGroup, pos)
		}
		for to := range e.Targets {
			s.addHead(queue, head{state: to, start: h.start, groups: g}, prev, next, pos)
		}
	}
}

// search runs one leftmost-longest match attempt starting at or after
// from. If anchored, only a single head is seeded, at from, and the
// longest match beginning exactly there is reported. Otherwise a new start
// head is seeded at every position up to and including the first position
// a match is found at, implementing the implicit unanchored `.*?` prefix.
func (s *Simulator) search(text []rune, from int, anchored bool) (Match, bool) {
	end := len(text)
	s.queue = s.queue[:0]

	bestStart, bestEnd := -1, -1
	var bestGroups []GroupMatch

	for pos := from; pos <= end; pos++ {
		// s.queue holds heads carried over from the previous position's
		// character consumption (empty on the first iteration); seed a new
		// unanchored start head alongside them before closing, so both are
		// covered by one closure pass below.
		if bestStart == -1 && (!anchored || pos == from) {
			s.queue = append(s.queue, head{state: s.nfa.Initial(), start: pos, groups: newGroups(s.numGroups)})
		}

		prev := s.charAt(text, pos-1)
		next := s.charAt(text, pos)
		s.visited.Clear()
		closed := make([]head, 0, len(s.queue))
		for _, h := range s.queue {
			s.addHead(&closed, h, prev, next, pos)
		}
		s.queue = closed

		for _, h := range s.queue {
			if !s.nfa.IsFinal(h.state) {
				continue
			}
			if bestStart == -1 || h.start < bestStart || (h.start == bestStart && pos > bestEnd) {
				bestStart = h.start
				bestEnd = pos
				bestGroups = h.groups.snapshot()
			}
		}

		if pos == end {
			break
		}
		if len(s.queue) == 0 {
			if anchored || bestStart != -1 {
				break
			}
			continue
		}
		if bestStart != -1 {
			hasCandidate := false
			for _, h := range s.queue {
				if h.start <= bestStart {
					hasCandidate = true
					break
				}
			}
			if !hasCandidate {
				break
			}
		}

		c := s.charAt(text, pos)
		s.nextQueue = s.nextQueue[:0]
		for _, h := range s.queue {
			for _, e := range s.nfa.edgesFrom(h.state) {
				if !e.Transition.ConsumeChar || !e.Transition.Matches(rangeset.EOF, c) {
					continue
				}
				for to := range e.Targets {
					s.nextQueue = append(s.nextQueue, head{state: to, start: h.start, groups: h.groups.clone()})
				}
			}
		}
		s.queue, s.nextQueue = s.nextQueue, s.queue[:0]
	}

	if bestStart == -1 {
		return Match{}, false
	}
	bestGroups[0] = GroupMatch{Start: bestStart, End: bestEnd}
	return Match{Start: bestStart, End: bestEnd, Groups: bestGroups}, true
}

// FindFrom returns the first leftmost-longest match at or after from. If
// anchored, the match (if any) must start exactly at from.
func (s *Simulator) FindFrom(text []rune, from int, anchored bool) (Match, bool) {
	return s.search(text, from, anchored)
}

// FindAll returns every non-overlapping leftmost-longest match in text, in
// left-to-right order, advancing past each match (or by one code point for
// a zero-width match) to find the next one.
func (s *Simulator) FindAll(text []rune) []Match {
	var out []Match
	pos := 0
	for pos <= len(text) {
		m, ok := s.search(text, pos, false)
		if !ok {
			break
		}
		out = append(out, m)
		if m.End > pos {
			pos = m.End
		} else {
			pos++
		}
	}
	return out
}
