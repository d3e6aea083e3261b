package regexautomata

import "github.com/tkarabela/regexautomata/syntax"

// PatternFlag is a bitset of compile-time options, mirroring the flag names
// of the original Python implementation this package's matching semantics
// are drawn from.
type PatternFlag = syntax.Flags

// Flag values. IGNORECASE folds ASCII case at compile time for extracted
// literals and at match time for the simulator; DOTALL makes `.` match line
// terminators too; MULTILINE makes `^`/`$` match at internal line
// boundaries in addition to the string's start/end. I, S, M are the short
// aliases used by inline `(?ims)` group syntax.
const (
	NOFLAG     PatternFlag = syntax.NoFlag
	IGNORECASE PatternFlag = syntax.IgnoreCase
	DOTALL     PatternFlag = syntax.DotAll
	MULTILINE  PatternFlag = syntax.Multiline
	I          PatternFlag = syntax.IgnoreCase
	S          PatternFlag = syntax.DotAll
	M          PatternFlag = syntax.Multiline
)
