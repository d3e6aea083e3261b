// Package literal provides types and operations for extracting literal
// sequences from regex patterns for prefilter optimization.
package literal

import (
	"github.com/tkarabela/regexautomata/rangeset"
	"github.com/tkarabela/regexautomata/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from complex patterns:
//   - MaxLiterals: prevents memory bloat from alternations like (a|b|c|d|...)
//   - MaxLiteralLen: prevents extracting very long literals that hurt cache locality
//   - MaxClassSize: prevents expanding large character classes like [a-z]
type ExtractorConfig struct {
	// MaxLiterals limits the maximum number of literals to extract.
	// Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the maximum length of each extracted literal, in
	// UTF-8 bytes. Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the size of character classes to expand.
	// Character classes like [abc] are expanded to ["a", "b", "c"]. Large
	// classes like [a-z] (26 chars) are not expanded if > MaxClassSize.
	// Default: 10.
	MaxClassSize int

	// CrossProductLimit is the maximum total number of intermediate literals
	// allowed during cross-product expansion of a Concat chain. When
	// exceeded, literals are truncated to 4 bytes, deduplicated, and marked
	// inexact. Default: 250.
	CrossProductLimit int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:       64,
		MaxLiteralLen:     64,
		MaxClassSize:      10,
		CrossProductLimit: 250,
	}
}

// Extractor extracts literal sequences from a compiled pattern's AST
// (syntax.Node). It analyzes the tree, post-ASTProcessor, and extracts:
//   - Prefix literals: literals that must appear at the start of a match
//   - Suffix literals: literals that must appear at the end
//   - Inner literals: any literal that must appear somewhere
//
// These feed the prefilter package's candidate search.
type Extractor struct {
	config     ExtractorConfig
	ignoreCase bool
}

// New creates a new Extractor with the given configuration. ignoreCase
// should be set from the compiled pattern's Flags: under IGNORECASE the
// prefilter does case-sensitive byte matching against text that was not
// folded, so literal extraction is skipped entirely rather than risk
// missing matches.
func New(config ExtractorConfig, ignoreCase bool) *Extractor {
	return &Extractor{config: config, ignoreCase: ignoreCase}
}

// ExtractPrefixes extracts prefix literals: literals that must appear at
// the start of any match. Returns an empty Seq if ignoreCase is set or no
// reliable prefix exists (e.g. the pattern starts with `.*`).
func (e *Extractor) ExtractPrefixes(n syntax.Node) *Seq {
	if e.ignoreCase {
		return NewSeq()
	}
	return e.extractPrefixes(n, 0)
}

func (e *Extractor) extractPrefixes(n syntax.Node, depth int) *Seq {
	if depth > 100 {
		return NewSeq()
	}

	switch v := n.(type) {
	case syntax.CharacterSet:
		return e.charSetContribution(v.Set, false)

	case syntax.Concat:
		return e.extractPrefixesConcat(flattenConcat(v), depth)

	case syntax.Union:
		return e.unionOf(flattenUnion(v), depth, e.extractPrefixes)

	case syntax.Group:
		return e.extractPrefixes(v.U, depth+1)

	case syntax.Empty, syntax.BoundaryAssertion, syntax.Iteration:
		return NewSeq()

	default:
		return NewSeq()
	}
}

// extractPrefixesConcat performs cross-product literal expansion across a
// flattened Concat chain: each expandable part (a literal code point, a
// small character class, or an all-literal Union) extends every
// accumulated literal; the first non-expandable part stops the expansion
// and marks everything accumulated so far as inexact.
func (e *Extractor) extractPrefixesConcat(parts []syntax.Node, depth int) *Seq {
	if len(parts) == 0 {
		return NewSeq()
	}

	crossLimit := e.config.CrossProductLimit
	if crossLimit <= 0 {
		crossLimit = 250
	}

	acc := NewSeq(NewLiteral(nil, true))
	for _, part := range parts {
		if !e.hasAnyExact(acc) {
			break
		}
		contribution := e.concatPartContribution(part, depth)
		if contribution == nil {
			e.markAllInexact(acc)
			break
		}
		acc.CrossForward(contribution)
		if acc.Len() > crossLimit || acc.Len() > e.config.MaxLiterals {
			acc = e.handleCrossProductOverflow(acc)
			break
		}
		e.enforceMaxLiteralLen(acc)
	}

	if acc.Len() == 1 && len(acc.Get(0).Bytes) == 0 {
		return NewSeq()
	}
	return acc
}

// concatPartContribution returns the literal contribution of a single
// Concat element, or nil if the element cannot be expanded (a wildcard,
// iteration, or boundary assertion).
func (e *Extractor) concatPartContribution(n syntax.Node, depth int) *Seq {
	switch v := n.(type) {
	case syntax.CharacterSet:
		s := e.charSetContribution(v.Set, false)
		if s.IsEmpty() {
			return nil
		}
		return s

	case syntax.Union:
		branches := flattenUnion(v)
		var allLits []Literal
		exact := true
		for _, b := range branches {
			seq := e.extractPrefixes(b, depth+1)
			if seq.IsEmpty() {
				return nil
			}
			for i := 0; i < seq.Len(); i++ {
				exact = exact && seq.Get(i).Complete
				allLits = append(allLits, seq.Get(i))
				if len(allLits) > e.config.MaxLiterals {
					return nil
				}
			}
		}
		out := NewSeq(allLits...)
		if !exact {
			// A branch that is only a prefix of its own match must not be
			// extended by the parts that follow the Union.
			e.markAllInexact(out)
		}
		return out

	case syntax.Group:
		return e.concatPartContribution(v.U, depth)

	case syntax.BoundaryAssertion, syntax.Empty:
		return NewSeq(NewLiteral(nil, true))

	default:
		return nil
	}
}

// ExtractSuffixes extracts suffix literals: literals that must appear at
// the end of any match.
func (e *Extractor) ExtractSuffixes(n syntax.Node) *Seq {
	if e.ignoreCase {
		return NewSeq()
	}
	return e.extractSuffixes(n, 0)
}

func (e *Extractor) extractSuffixes(n syntax.Node, depth int) *Seq {
	if depth > 100 {
		return NewSeq()
	}

	switch v := n.(type) {
	case syntax.CharacterSet:
		return e.charSetContribution(v.Set, false)

	case syntax.Concat:
		return e.extractSuffixesConcat(flattenConcat(v), depth)

	case syntax.Union:
		return e.unionOf(flattenUnion(v), depth, e.extractSuffixes)

	case syntax.Group:
		return e.extractSuffixes(v.U, depth+1)

	case syntax.Empty, syntax.BoundaryAssertion, syntax.Iteration:
		return NewSeq()

	default:
		return NewSeq()
	}
}

// extractSuffixesConcat mirrors extractPrefixesConcat but walks the
// flattened Concat chain from the end backwards, prepending each
// expandable preceding part (cross_reverse).
func (e *Extractor) extractSuffixesConcat(parts []syntax.Node, depth int) *Seq {
	if len(parts) == 0 {
		return NewSeq()
	}

	last := len(parts) - 1
	suffixes := e.extractSuffixes(parts[last], depth+1)
	if suffixes.IsEmpty() {
		return NewSeq()
	}

	for i := last - 1; i >= 0; i-- {
		cs, ok := parts[i].(syntax.CharacterSet)
		if !ok || !isSingleCodePoint(cs.Set) {
			lits := make([]Literal, suffixes.Len())
			for j := 0; j < suffixes.Len(); j++ {
				lit := suffixes.Get(j)
				lits[j] = NewLiteral(lit.Bytes, false)
			}
			return NewSeq(lits...)
		}
		prefix := []byte(string(rune(cs.Set.Ranges()[0].Lo)))
		lits := make([]Literal, suffixes.Len())
		for j := 0; j < suffixes.Len(); j++ {
			lit := suffixes.Get(j)
			b := make([]byte, 0, len(prefix)+len(lit.Bytes))
			b = append(b, prefix...)
			b = append(b, lit.Bytes...)
			if len(b) > e.config.MaxLiteralLen {
				b = b[len(b)-e.config.MaxLiteralLen:]
			}
			lits[j] = NewLiteral(b, lit.Complete)
		}
		suffixes = NewSeq(lits...)
		if suffixes.Len() > e.config.MaxLiterals {
			return suffixes
		}
	}
	return suffixes
}

// ExtractInner extracts inner literals: any literal required to appear
// somewhere in the match, regardless of position. Useful for patterns like
// `.*foo.*` where "foo" is required but not anchored to either end.
func (e *Extractor) ExtractInner(n syntax.Node) *Seq {
	if e.ignoreCase {
		return NewSeq()
	}
	return e.extractInner(n, 0)
}

func (e *Extractor) extractInner(n syntax.Node, depth int) *Seq {
	if depth > 100 {
		return NewSeq()
	}

	switch v := n.(type) {
	case syntax.CharacterSet:
		return e.charSetContribution(v.Set, true)

	case syntax.Concat:
		parts := flattenConcat(v)
		for i, part := range parts {
			seq := e.extractInner(part, depth+1)
			if seq.IsEmpty() {
				continue
			}
			// Extend the first literal-bearing part with the literal run that
			// follows it, so `.*foo.*` yields "foo" rather than "f".
			if run := e.extractPrefixesConcat(parts[i:], depth+1); !run.IsEmpty() {
				seq = run
			}
			e.markAllInexact(seq)
			return seq
		}
		return NewSeq()

	case syntax.Union:
		return e.unionOf(flattenUnion(v), depth, e.extractInner)

	case syntax.Group:
		return e.extractInner(v.U, depth+1)

	case syntax.Empty, syntax.BoundaryAssertion, syntax.Iteration:
		return NewSeq()

	default:
		return NewSeq()
	}
}

// unionOf applies extract to every branch and unions the results, per the
// rule shared by all three extraction modes: if any branch has no literal
// requirement, the whole union has none.
func (e *Extractor) unionOf(branches []syntax.Node, depth int, extract func(syntax.Node, int) *Seq) *Seq {
	var allLits []Literal
	for _, b := range branches {
		seq := extract(b, depth+1)
		if seq.IsEmpty() {
			return NewSeq()
		}
		for i := 0; i < seq.Len(); i++ {
			allLits = append(allLits, seq.Get(i))
			if len(allLits) >= e.config.MaxLiterals {
				return NewSeq(allLits...)
			}
		}
	}
	return NewSeq(allLits...)
}

// charSetContribution turns a CharacterSet's RangeSet into a literal Seq. A
// single code point becomes a one-rune literal marked Complete unless
// markInexact is set (ExtractInner never reports a complete match from a
// single character). A class with more than one code point but within
// MaxClassSize expands to one literal per code point, each marked
// Complete, matching every other extraction path's treatment of character
// classes. A class too large to expand, or a complemented class, yields an
// empty Seq.
func (e *Extractor) charSetContribution(set rangeset.RangeSet, markInexact bool) *Seq {
	if set.Complement() {
		return NewSeq()
	}
	count := 0
	for _, r := range set.Ranges() {
		count += r.Hi - r.Lo
		if count > e.config.MaxClassSize {
			return NewSeq()
		}
	}
	if count == 0 {
		return NewSeq()
	}
	if count == 1 {
		b := []byte(string(rune(set.Ranges()[0].Lo)))
		if len(b) > e.config.MaxLiteralLen {
			b = b[:e.config.MaxLiteralLen]
		}
		return NewSeq(NewLiteral(b, !markInexact))
	}

	var lits []Literal
	for _, r := range set.Ranges() {
		for c := r.Lo; c < r.Hi; c++ {
			b := []byte(string(rune(c)))
			if len(b) > e.config.MaxLiteralLen {
				b = b[:e.config.MaxLiteralLen]
			}
			lits = append(lits, NewLiteral(b, true))
			if len(lits) >= e.config.MaxLiterals {
				return NewSeq(lits...)
			}
		}
	}
	return NewSeq(lits...)
}

func isSingleCodePoint(set rangeset.RangeSet) bool {
	if set.Complement() || len(set.Ranges()) != 1 {
		return false
	}
	return set.Ranges()[0].Hi-set.Ranges()[0].Lo == 1
}

func (e *Extractor) hasAnyExact(s *Seq) bool {
	for i := 0; i < s.Len(); i++ {
		if s.Get(i).Complete {
			return true
		}
	}
	return false
}

func (e *Extractor) markAllInexact(s *Seq) {
	for i := range s.literals {
		s.literals[i].Complete = false
	}
}

func (e *Extractor) enforceMaxLiteralLen(s *Seq) {
	for i := range s.literals {
		if len(s.literals[i].Bytes) > e.config.MaxLiteralLen {
			s.literals[i].Bytes = s.literals[i].Bytes[:e.config.MaxLiteralLen]
			s.literals[i].Complete = false
		}
	}
}

func (e *Extractor) handleCrossProductOverflow(s *Seq) *Seq {
	s.KeepFirstBytes(4)
	e.markAllInexact(s)
	s.Dedup()
	if s.Len() > e.config.MaxLiterals {
		s.literals = s.literals[:e.config.MaxLiterals]
	}
	return s
}

// flattenConcat walks a left- or right-nested Concat tree into its
// sequential list of non-Concat operands, in match order.
func flattenConcat(n syntax.Node) []syntax.Node {
	c, ok := n.(syntax.Concat)
	if !ok {
		return []syntax.Node{n}
	}
	return append(flattenConcat(c.U), flattenConcat(c.V)...)
}

// flattenUnion walks a Union tree into its list of alternative branches.
func flattenUnion(n syntax.Node) []syntax.Node {
	u, ok := n.(syntax.Union)
	if !ok {
		return []syntax.Node{n}
	}
	return append(flattenUnion(u.U), flattenUnion(u.V)...)
}
