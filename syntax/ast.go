package syntax

import "github.com/tkarabela/regexautomata/rangeset"

// Node is the tagged union produced by the Parser and rewritten in place by
// the ASTProcessor. A tree is owned by its root; children are never shared
// between two parents (use Clone when a subtree must be duplicated, as the
// ASTProcessor does when desugaring bounded repetition).
type Node interface {
	isNode()
	Clone() Node
}

// Empty matches the empty string.
type Empty struct{}

func (Empty) isNode()        {}
func (Empty) Clone() Node    { return Empty{} }

// CharacterSet matches a single code point drawn from Set. Label is a short
// human-readable description used in diagnostics (e.g. "." or "[a-z]").
type CharacterSet struct {
	Set   rangeset.RangeSet
	Label string
}

func (CharacterSet) isNode() {}
func (n CharacterSet) Clone() Node { return n }

// BoundaryAssertion matches the empty string at positions satisfying Kind.
type BoundaryAssertion struct {
	Kind BoundaryKind
}

func (BoundaryAssertion) isNode()     {}
func (n BoundaryAssertion) Clone() Node { return n }

// Concat matches U followed by V.
type Concat struct {
	U, V Node
}

func (Concat) isNode() {}
func (n Concat) Clone() Node {
	return Concat{U: n.U.Clone(), V: n.V.Clone()}
}

// Union matches U or V (U preferred; used only for leftmost-longest
// bookkeeping during construction, the simulator explores both).
type Union struct {
	U, V Node
}

func (Union) isNode() {}
func (n Union) Clone() Node {
	return Union{U: n.U.Clone(), V: n.V.Clone()}
}

// Repetition is the raw AST node the Parser produces for `*`, `+`, `?`, and
// `{m,n}` alike: min repetitions of U followed by up to (Max-Min) further
// optional copies, Max == nil meaning unbounded. The ASTProcessor eliminates
// every Repetition node, replacing it with Iteration and/or Concat/Union
// trees; no Repetition node survives processing.
type Repetition struct {
	U   Node
	Min int
	Max *int
	Pos int // source position of the repetition operator, for diagnostics
}

func (Repetition) isNode() {}
func (n Repetition) Clone() Node {
	var max *int
	if n.Max != nil {
		m := *n.Max
		max = &m
	}
	return Repetition{U: n.U.Clone(), Min: n.Min, Max: max, Pos: n.Pos}
}

// Iteration matches zero or more repetitions of U. It only ever appears in
// the processed AST, produced by the ASTProcessor from Repetition{0,nil}.
type Iteration struct {
	U Node
}

func (Iteration) isNode() {}
func (n Iteration) Clone() Node { return Iteration{U: n.U.Clone()} }

// Group wraps U as capturing group Number (0 is the whole-match group added
// by the ASTProcessor). Name is "" for unnamed groups.
type Group struct {
	Number int
	Name   string
	U      Node
}

func (Group) isNode() {}
func (n Group) Clone() Node {
	return Group{Number: n.Number, Name: n.Name, U: n.U.Clone()}
}
