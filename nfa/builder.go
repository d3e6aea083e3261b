package nfa

import (
	"fmt"

	"github.com/tkarabela/regexautomata/rangeset"
	"github.com/tkarabela/regexautomata/syntax"
)

// fragment is a self-contained NFA piece built for one AST subtree: states
// numbered densely from 0, with its own initial state and final-state set.
// Combinators (concat, union, iteration, group) splice two fragments by
// copying one into the other at an offset equal to the destination's
// current state count — the "disjoint renumbering" spec.md's NFABuilder
// table describes.
type fragment struct {
	numStates int
	initial   StateID
	finals    map[StateID]bool
	adj       []*adjacency
}

func newFragment() *fragment {
	return &fragment{finals: map[StateID]bool{}}
}

func (f *fragment) newState() StateID {
	id := StateID(f.numStates)
	f.numStates++
	f.adj = append(f.adj, &adjacency{index: map[string]int{}})
	return id
}

func (f *fragment) addEdge(from StateID, t Transition, to StateID) {
	a := f.adj[from]
	key := t.key()
	if idx, ok := a.index[key]; ok {
		a.edges[idx].Targets[to] = true
		return
	}
	a.index[key] = len(a.edges)
	a.edges = append(a.edges, &edge{Transition: t, Targets: map[StateID]bool{to: true}})
}

// appendFragment copies every state and edge of src into dst, returning the
// offset applied to src's state numbering.
func appendFragment(dst, src *fragment) StateID {
	offset := StateID(dst.numStates)
	for i := 0; i < src.numStates; i++ {
		dst.newState()
	}
	for i, a := range src.adj {
		from := offset + StateID(i)
		for _, e := range a.edges {
			for to := range e.Targets {
				dst.addEdge(from, e.Transition, offset+to)
			}
		}
	}
	return offset
}

// Build runs Thompson construction over the processed AST (already wrapped
// in Group 0 by syntax.Process) and returns the resulting NFA after
// trivial-ε elimination. It panics if node contains a syntax.Repetition
// node, since the ASTProcessor is responsible for eliminating every one
// before the tree reaches this package — encountering one here is a
// programming error, not a malformed pattern.
func Build(node syntax.Node) *NFA {
	f := buildFragment(node)
	f = eliminateTrivialEpsilon(f)
	return &NFA{initial: f.initial, final: f.finals, adj: f.adj}
}

func buildFragment(node syntax.Node) *fragment {
	switch n := node.(type) {
	case syntax.Empty:
		f := newFragment()
		s := f.newState()
		f.initial = s
		f.finals[s] = true
		return f

	case syntax.CharacterSet:
		f := newFragment()
		a := f.newState()
		b := f.newState()
		f.initial = a
		f.finals[b] = true
		set := n.Set
		f.addEdge(a, Transition{
			Predicates:  []TransitionPredicate{{Next: &set}},
			ConsumeChar: true,
			BeginGroup:  noGroup,
			EndGroup:    noGroup,
		}, b)
		return f

	case syntax.BoundaryAssertion:
		f := newFragment()
		a := f.newState()
		b := f.newState()
		f.initial = a
		f.finals[b] = true
		f.addEdge(a, boundaryTransition(n.Kind), b)
		return f

	case syntax.Concat:
		return concatFragments(buildFragment(n.U), buildFragment(n.V))

	case syntax.Union:
		return unionFragments(buildFragment(n.U), buildFragment(n.V))

	case syntax.Iteration:
		return iterateFragment(buildFragment(n.U))

	case syntax.Group:
		return groupFragment(n.Number, buildFragment(n.U))

	default:
		panic(&ErrInternal{Msg: fmt.Sprintf("unexpected AST node %T reached the NFA builder", node)})
	}
}

func concatFragments(fu, fv *fragment) *fragment {
	out := newFragment()
	offU := appendFragment(out, fu)
	offV := appendFragment(out, fv)
	out.initial = offU + fu.initial
	for s := range fu.finals {
		out.addEdge(offU+s, epsilon(), offV+fv.initial)
	}
	for s := range fv.finals {
		out.finals[offV+s] = true
	}
	return out
}

func unionFragments(fu, fv *fragment) *fragment {
	out := newFragment()
	s0 := out.newState()
	offU := appendFragment(out, fu)
	offV := appendFragment(out, fv)
	out.initial = s0
	out.addEdge(s0, epsilon(), offU+fu.initial)
	out.addEdge(s0, epsilon(), offV+fv.initial)
	for s := range fu.finals {
		out.finals[offU+s] = true
	}
	for s := range fv.finals {
		out.finals[offV+s] = true
	}
	return out
}

func iterateFragment(fu *fragment) *fragment {
	out := newFragment()
	off := appendFragment(out, fu)
	out.initial = off + fu.initial
	for s := range fu.finals {
		out.addEdge(off+s, epsilon(), out.initial)
		out.finals[off+s] = true
	}
	out.finals[out.initial] = true
	return out
}

func groupFragment(number int, fu *fragment) *fragment {
	out := newFragment()
	s0 := out.newState()
	off := appendFragment(out, fu)
	s1 := out.newState()
	out.initial = s0
	out.addEdge(s0, Transition{BeginGroup: number, EndGroup: noGroup}, off+fu.initial)
	for s := range fu.finals {
		out.addEdge(off+s, Transition{BeginGroup: noGroup, EndGroup: number}, s1)
	}
	out.finals[s1] = true
	return out
}

func boundaryTransition(kind syntax.BoundaryKind) Transition {
	eof := rangeset.Single(rangeset.EOF)
	switch kind {
	case syntax.InputStart:
		return Transition{Predicates: []TransitionPredicate{{Previous: &eof}}, BeginGroup: noGroup, EndGroup: noGroup}
	case syntax.InputEnd:
		return Transition{Predicates: []TransitionPredicate{{Next: &eof}}, BeginGroup: noGroup, EndGroup: noGroup}
	case syntax.LineStart:
		s := rangeset.New([]int{rangeset.EOF, '\n'}, nil)
		return Transition{Predicates: []TransitionPredicate{{Previous: &s}}, BeginGroup: noGroup, EndGroup: noGroup}
	case syntax.LineEnd:
		s := rangeset.New([]int{rangeset.EOF, '\n'}, nil)
		return Transition{Predicates: []TransitionPredicate{{Next: &s}}, BeginGroup: noGroup, EndGroup: noGroup}
	case syntax.WordBoundary:
		w, nw, e := rangeset.WORD, rangeset.NONWORD, rangeset.Single(rangeset.EOF)
		return Transition{
			Predicates: []TransitionPredicate{
				{Previous: &w, Next: &nw},
				{Previous: &w, Next: &e},
				{Previous: &nw, Next: &w},
				{Previous: &e, Next: &w},
			},
			BeginGroup: noGroup, EndGroup: noGroup,
		}
	case syntax.NonWordBoundary:
		w, nw, e := rangeset.WORD, rangeset.NONWORD, rangeset.Single(rangeset.EOF)
		return Transition{
			Predicates: []TransitionPredicate{
				{Previous: &w, Next: &w},
				{Previous: &nw, Next: &nw},
				{Previous: &nw, Next: &e},
				{Previous: &e, Next: &nw},
			},
			BeginGroup: noGroup, EndGroup: noGroup,
		}
	default:
		panic(&ErrInternal{Msg: fmt.Sprintf("unknown boundary kind %v", kind)})
	}
}

// eliminateTrivialEpsilon removes every zero-width, unconditional,
// group-less transition, per spec.md §4.5: for each state u, compute its
// trivial-ε closure C(u), copy into u's outgoing set every non-trivial
// transition leaving any v in C(u), and mark u final if any v in C(u) was
// final. The result is pruned to states reachable from the initial state
// and renumbered densely.
func eliminateTrivialEpsilon(f *fragment) *fragment {
	closures := make([]map[StateID]bool, f.numStates)
	for s := 0; s < f.numStates; s++ {
		closures[s] = trivialClosure(f, StateID(s))
	}

	out := newFragment()
	for i := 0; i < f.numStates; i++ {
		out.newState()
	}
	out.initial = f.initial

	for s := 0; s < f.numStates; s++ {
		u := StateID(s)
		for v := range closures[u] {
			if f.finals[v] {
				out.finals[u] = true
			}
			for _, e := range f.adj[v].edges {
				if e.Transition.isTrivialEpsilon() {
					continue
				}
				for to := range e.Targets {
					out.addEdge(u, e.Transition, to)
				}
			}
		}
	}
	return pruneAndRenumber(out)
}

func trivialClosure(f *fragment, start StateID) map[StateID]bool {
	seen := map[StateID]bool{start: true}
	stack := []StateID{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range f.adj[u].edges {
			if !e.Transition.isTrivialEpsilon() {
				continue
			}
			for to := range e.Targets {
				if !seen[to] {
					seen[to] = true
					stack = append(stack, to)
				}
			}
		}
	}
	return seen
}

func pruneAndRenumber(f *fragment) *fragment {
	var order []StateID
	seen := map[StateID]bool{}
	var visit func(StateID)
	visit = func(u StateID) {
		if seen[u] {
			return
		}
		seen[u] = true
		order = append(order, u)
		for _, e := range f.adj[u].edges {
			for to := range e.Targets {
				visit(to)
			}
		}
	}
	visit(f.initial)

	remap := make(map[StateID]StateID, len(order))
	for i, u := range order {
		remap[u] = StateID(i)
	}

	out := newFragment()
	for range order {
		out.newState()
	}
	out.initial = remap[f.initial]
	for _, u := range order {
		nu := remap[u]
		if f.finals[u] {
			out.finals[nu] = true
		}
		for _, e := range f.adj[u].edges {
			for to := range e.Targets {
				out.addEdge(nu, e.Transition, remap[to])
			}
		}
	}
	return out
}
