// Package regexautomata is a from-scratch regular expression engine: its
// own tokenizer and recursive-descent parser, a Thompson-construction NFA
// with capture groups and zero-width boundary assertions, and a
// parallel-head simulator that reports leftmost-longest, non-overlapping
// matches.
//
// Basic usage:
//
//	re, err := regexautomata.Compile(`(\w+)@(\w+\.\w+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, ok := re.Search("contact: user@example.com")
//	if ok {
//	    fmt.Println(m.Group(0), m.Group(1), m.Group(2))
//	}
//
// Syntax supports literals, character classes, the predefined classes
// `\w \d \s` (and their negations), anchors `^ $ \b \B`, alternation,
// grouping (capturing, non-capturing, and named), and the quantifiers
// `* + ? {m,n}`. Backreferences, lookaround, possessive/lazy quantifiers,
// and Unicode property classes are not supported; see the compiler's error
// for any construct this engine intentionally rejects.
package regexautomata

import (
	"github.com/tkarabela/regexautomata/meta"
	"github.com/tkarabela/regexautomata/syntax"
)

// Regexp is a compiled pattern. It is immutable after Compile returns and
// is safe for concurrent use by multiple goroutines.
type Regexp struct {
	engine  *meta.Engine
	pattern string
	flags   PatternFlag
}

// Compile compiles a pattern with no flags set.
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, NOFLAG)
}

// CompileFlags compiles a pattern with the given initial flags. Inline
// group flags (e.g. `(?i)`) are combined with flags, not replaced by them.
func CompileFlags(pattern string, flags PatternFlag) (*Regexp, error) {
	engine, err := meta.CompileFlags(pattern, syntax.Flags(flags))
	if err != nil {
		return nil, err
	}
	return &Regexp{engine: engine, pattern: pattern, flags: flags}, nil
}

// MustCompile is like Compile but panics if the pattern is invalid. It
// simplifies safe initialization of global variables holding compiled
// patterns known to be valid at compile time.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(`regexautomata: Compile(` + pattern + `): ` + err.Error())
	}
	return re
}

// MustCompileFlags is like CompileFlags but panics if the pattern is
// invalid.
func MustCompileFlags(pattern string, flags PatternFlag) *Regexp {
	re, err := CompileFlags(pattern, flags)
	if err != nil {
		panic(`regexautomata: CompileFlags(` + pattern + `): ` + err.Error())
	}
	return re
}

// String returns the source text the pattern was compiled from.
func (re *Regexp) String() string {
	return re.pattern
}

// NumSubexp returns the number of capture groups in the pattern, not
// counting group 0 (the whole match).
func (re *Regexp) NumSubexp() int {
	return re.engine.NumGroups() - 1
}

// SubexpNames returns the name of each capture group, indexed by group
// number; index 0 and any unnamed group hold "".
func (re *Regexp) SubexpNames() []string {
	names := make([]string, re.engine.NumGroups())
	for name, i := range re.engine.GroupNames() {
		if i >= 0 && i < len(names) {
			names[i] = name
		}
	}
	return names
}

// SubexpIndex returns the index of the first capture group named name, or
// -1 if no such group exists.
func (re *Regexp) SubexpIndex(name string) int {
	if i, ok := re.engine.GroupNames()[name]; ok {
		return i
	}
	return -1
}

// IsMatch reports whether the pattern matches anywhere in text.
func (re *Regexp) IsMatch(text string) bool {
	return re.engine.IsMatch(text)
}

// Search returns the leftmost-longest match anywhere in text.
func (re *Regexp) Search(text string) (*Match, bool) {
	m, ok := re.engine.Find(text)
	if !ok {
		return nil, false
	}
	return newMatch(re, text, m), true
}

// Match returns the leftmost-longest match starting at the very beginning
// of text. Unlike FullMatch, the match need not extend to the end of text.
func (re *Regexp) Match(text string) (*Match, bool) {
	m, ok := re.engine.MatchAnchored(text)
	if !ok {
		return nil, false
	}
	return newMatch(re, text, m), true
}

// FullMatch returns a match only if the pattern matches the entirety of
// text, from position 0 to len(text).
func (re *Regexp) FullMatch(text string) (*Match, bool) {
	m, ok := re.Match(text)
	if !ok || m.End(0) != len(text) {
		return nil, false
	}
	return m, true
}

// FindAll returns every non-overlapping leftmost-longest match in text, in
// left-to-right order.
func (re *Regexp) FindAll(text string) []*Match {
	raw := re.engine.FindAll(text)
	if len(raw) == 0 {
		return nil
	}
	out := make([]*Match, len(raw))
	for i, m := range raw {
		out[i] = newMatch(re, text, m)
	}
	return out
}

// FindAllString returns the matched text of every non-overlapping
// leftmost-longest match in text, in left-to-right order.
func (re *Regexp) FindAllString(text string) []string {
	matches := re.FindAll(text)
	if matches == nil {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Group(0)
	}
	return out
}

// FindAllStringSubmatch returns, for every non-overlapping leftmost-longest
// match, a slice holding the whole match followed by each capture group's
// text ("" for a group that did not participate).
func (re *Regexp) FindAllStringSubmatch(text string) [][]string {
	matches := re.FindAll(text)
	if matches == nil {
		return nil
	}
	out := make([][]string, len(matches))
	for i, m := range matches {
		out[i] = append([]string{m.Group(0)}, m.Groups()...)
	}
	return out
}
