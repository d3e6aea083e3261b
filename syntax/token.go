package syntax

import "github.com/tkarabela/regexautomata/rangeset"

// Span is a half-open range of rune offsets [Start, End) into the original
// pattern text, used for diagnostics.
type Span struct {
	Start, End int
}

// Token is the tagged union produced by the Tokenizer. Every concrete token
// type carries a Span and the literal source text it was read from.
type Token interface {
	Span() Span
	Text() string
}

type tokenBase struct {
	span Span
	text string
}

func (t tokenBase) Span() Span  { return t.span }
func (t tokenBase) Text() string { return t.text }

// LParToken is an opening parenthesis. GroupNumber is 0 for non-capturing
// groups. SymbolicName is "" unless the group was opened with `(?P<name>`.
type LParToken struct {
	tokenBase
	GroupNumber  int
	NonCapturing bool
	SymbolicName string
}

// RParToken is a closing parenthesis.
type RParToken struct {
	tokenBase
}

// PipeToken is the alternation operator `|`.
type PipeToken struct {
	tokenBase
}

// RepetitionToken is `*`, `+`, `?`, or a brace form `{m,n}`. Max is nil for
// an unbounded upper bound.
type RepetitionToken struct {
	tokenBase
	Min int
	Max *int
}

// CharacterSetToken is a single matchable code-point class: a literal
// character, `.`, a bracket expression, or a predefined class (`\w` etc).
type CharacterSetToken struct {
	tokenBase
	Set rangeset.RangeSet
}

// BoundaryKind enumerates the zero-width assertions the tokenizer can
// produce.
type BoundaryKind int

const (
	InputStart BoundaryKind = iota
	InputEnd
	LineStart
	LineEnd
	WordBoundary
	NonWordBoundary
)

// BoundaryAssertionToken is a zero-width assertion (`^ $ \A \Z \b \B`).
type BoundaryAssertionToken struct {
	tokenBase
	Kind BoundaryKind
}
