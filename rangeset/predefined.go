package rangeset

// EOF is the sentinel code point representing "before the start of input"
// or "after the end of input". It is never a member of any predefined set.
const EOF = -1

// MaxCodePoint bounds the universe used to build DOTALL's ALL set and the
// complement of single-character exclusions (e.g. `.` without DOTALL is
// ALL \ {'\n'}). Unicode code points run up to U+10FFFF.
const MaxCodePoint = 0x10FFFF

// WORD is `[A-Za-z0-9_]`, ported from the Python original's
// WORD_RANGESET (automata/rangeset.py).
var WORD = New([]int{'_'}, []Range{
	{'a', 'z' + 1},
	{'A', 'Z' + 1},
	{'0', '9' + 1},
})

// NONWORD is the complement of WORD.
var NONWORD = RangeSet{ranges: WORD.ranges, complement: true}

// DIGIT is `[0-9]`.
var DIGIT = New(nil, []Range{{'0', '9' + 1}})

// NONDIGIT is the complement of DIGIT.
var NONDIGIT = RangeSet{ranges: DIGIT.ranges, complement: true}

// WHITESPACE is the Unicode whitespace set: ASCII space-producing control
// characters plus the Unicode space-separator block U+2000-U+200A and the
// other commonly recognized Unicode spaces. Ground truth: SPEC_FULL.md §5
// resolves an ambiguity in the Python original here (its literal-string
// construction of this set contains a bare '-' character rather than
// expressing the U+2000-U+200A range, which we treat as an artifact of how
// the set was typed rather than intent).
var WHITESPACE = New([]int{
	'\f', '\n', '\r', '\t', '\v', 0x0020,
	0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff,
}, []Range{
	{0x2000, 0x200a + 1},
})

// NONWHITESPACE is the complement of WHITESPACE.
var NONWHITESPACE = RangeSet{ranges: WHITESPACE.ranges, complement: true}

// ALL is every code point except the sentinel EOF; used for `.` under
// DOTALL.
var ALL = RangeSet{complement: true}

// AllExcept returns ALL minus a single code point; used for `.` without
// DOTALL (excludes '\n').
func AllExcept(c int) RangeSet {
	return RangeSet{ranges: []Range{{c, c + 1}}, complement: true}
}
