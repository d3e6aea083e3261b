package nfa

// StateID indexes a state within an NFA. States are numbered densely from
// 0 after construction; there is no separate "invalid" sentinel because
// every StateID an NFA hands out is always valid for that NFA.
type StateID uint32

// edge is one adjacency-map entry: a single Transition and the set of
// states it can lead to. Structurally-equal transitions leaving the same
// state are always merged into one edge (see fragment.addEdge), which is
// what keeps the ε-elimination fixpoint (spec.md's design note on
// value-typed Transition equality) intact across repeated passes.
type edge struct {
	Transition Transition
	Targets    map[StateID]bool
}

type adjacency struct {
	edges []*edge
	index map[string]int
}

// NFA is an immutable automaton over RangeSet predicates with capture
// markers, built by Build and executed by a Simulator. After construction
// there is exactly one final state (the builder always wraps the pattern
// root in Group 0, whose closing transition lands on a single state).
type NFA struct {
	initial StateID
	final   map[StateID]bool
	adj     []*adjacency
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int { return len(n.adj) }

// Initial returns the automaton's single initial state.
func (n *NFA) Initial() StateID { return n.initial }

// IsFinal reports whether s is an accepting state.
func (n *NFA) IsFinal(s StateID) bool { return n.final[s] }

// edgesFrom returns the outgoing edges of s.
func (n *NFA) edgesFrom(s StateID) []*edge { return n.adj[s].edges }
