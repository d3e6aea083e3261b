// Package meta implements the meta-engine orchestrator.
//
// compile.go contains pattern compilation logic.

package meta

import (
	"github.com/coregx/ahocorasick"
	"github.com/tkarabela/regexautomata/literal"
	"github.com/tkarabela/regexautomata/nfa"
	"github.com/tkarabela/regexautomata/prefilter"
	"github.com/tkarabela/regexautomata/rangeset"
	"github.com/tkarabela/regexautomata/syntax"
)

// Compile compiles a regex pattern string into an executable Engine using
// the default configuration.
//
// Example:
//
//	engine, err := meta.Compile(`\w+@\w+\.\w+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileFlagsWithConfig(pattern, syntax.NoFlag, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	return CompileFlagsWithConfig(pattern, syntax.NoFlag, config)
}

// CompileFlags compiles a pattern with initial flags (e.g. IgnoreCase) using
// the default configuration.
func CompileFlags(pattern string, flags syntax.Flags) (*Engine, error) {
	return CompileFlagsWithConfig(pattern, flags, DefaultConfig())
}

// CompileFlagsWithConfig compiles a pattern with both initial flags and
// custom configuration.
//
// Steps:
//  1. Parse pattern through syntax.Compile (tokenizer, parser, AST processor)
//  2. Build the Thompson-construction NFA
//  3. Extract literal prefixes/suffixes and build a prefilter or
//     Aho-Corasick automaton from them (buildPrefilter runs only when
//     config.EnablePrefilter is set; literal.ExtractPrefixes/ExtractSuffixes
//     themselves decline to return anything when the pattern folds case)
//  4. Assemble the Engine and its simulator pool
func CompileFlagsWithConfig(pattern string, flags syntax.Flags, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	res, err := syntax.Compile(pattern, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	n := nfa.Build(res.AST)
	numGroups := res.MaxGroupNumber + 1
	ignoreCase := res.Flags.Has(syntax.IgnoreCase)

	e := &Engine{
		nfa:        n,
		numGroups:  numGroups,
		groupNames: res.Names,
		ignoreCase: ignoreCase,
		config:     config,
	}

	if config.EnablePrefilter {
		buildPrefilter(e, res.AST, config, ignoreCase)
	}

	return e, nil
}

// buildPrefilter extracts prefix and (failing that) suffix literals from
// the AST and wires whichever single-needle Prefilter or Aho-Corasick
// automaton they support into e. Does nothing if no literal sequence meets
// config.MinLiteralLen.
func buildPrefilter(e *Engine, ast syntax.Node, config Config, ignoreCase bool) {
	extractor := literal.New(literal.ExtractorConfig{
		MaxLiterals:   config.MaxLiterals,
		MaxLiteralLen: 64,
		MaxClassSize:  config.MaxClassSize,
	}, ignoreCase)

	prefixes := extractor.ExtractPrefixes(ast)
	if wireLiterals(e, prefixes, true, config) {
		return
	}

	suffixes := extractor.ExtractSuffixes(ast)
	if wireLiterals(e, suffixes, false, config) {
		return
	}

	// No literal survived extraction (e.g. `\d{3}-\d{3}-\d{4}` with
	// MaxClassSize below 10; at the default of 10, \d expands into digit
	// literals and one of the paths above is taken). If the first mandatory position
	// is a digit-only class, a digit prefilter still narrows the search
	// space considerably more than a full NFA scan of every position.
	if set, ok := firstMandatoryCharSet(ast); ok && isAllDigits(set) {
		e.pf = prefilter.NewDigitPrefilter()
		e.prefilterFromPrefix = true
	}
}

// firstMandatoryCharSet returns the character class that must match at the
// start of any match, if the AST's leading shape is simple enough to tell:
// a bare class, or a class at the head of a Concat/Group chain. Anything
// more exotic (Union, Iteration, zero-or-more repetition) returns false
// rather than risk a wrong guess, since this is only used to pick an
// optional prefilter.
func firstMandatoryCharSet(n syntax.Node) (rangeset.RangeSet, bool) {
	switch v := n.(type) {
	case syntax.CharacterSet:
		return v.Set, true
	case syntax.Group:
		return firstMandatoryCharSet(v.U)
	case syntax.Concat:
		return firstMandatoryCharSet(v.U)
	default:
		return rangeset.RangeSet{}, false
	}
}

// isAllDigits reports whether set contains only code points in ['0', '9'].
func isAllDigits(set rangeset.RangeSet) bool {
	if set.Complement() || set.Empty() {
		return false
	}
	for _, r := range set.Ranges() {
		if r.Lo < '0' || r.Hi > '9'+1 {
			return false
		}
	}
	return true
}

// wireLiterals attempts to build a prefilter (single literal) or an
// Aho-Corasick automaton (2+ literals) from seq and installs it on e.
// Returns true if a prefilter or automaton was installed.
func wireLiterals(e *Engine, seq *literal.Seq, fromPrefix bool, config Config) bool {
	if seq.IsEmpty() || minLiteralLen(seq) < config.MinLiteralLen {
		return false
	}

	if seq.Len() > 1 {
		builder := ahocorasick.NewBuilder()
		for i := 0; i < seq.Len(); i++ {
			builder.AddPattern(seq.Get(i).Bytes)
		}
		auto, err := builder.Build()
		if err != nil {
			return false
		}
		e.ahoCorasick = auto
		e.prefilterFromPrefix = fromPrefix
		return true
	}

	var pf prefilter.Prefilter
	if fromPrefix {
		pf = prefilter.NewBuilder(seq, nil).Build()
	} else {
		pf = prefilter.NewBuilder(nil, seq).Build()
	}
	if pf == nil {
		return false
	}
	e.pf = pf
	e.prefilterFromPrefix = fromPrefix
	return true
}

func minLiteralLen(seq *literal.Seq) int {
	min := -1
	for i := 0; i < seq.Len(); i++ {
		l := len(seq.Get(i).Bytes)
		if min == -1 || l < min {
			min = l
		}
	}
	return min
}
