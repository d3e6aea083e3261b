package syntax

import (
	"fmt"

	"github.com/tkarabela/regexautomata/rangeset"
)

// Tokenizer scans a pattern left to right and produces one Token per call
// to Next, or (nil, nil) at end of input. It tracks group numbering, the
// set of declared symbolic group names, and the effective flag set, which
// inline `(?ims)` forms mutate in place as scanning proceeds.
type Tokenizer struct {
	runes           []rune
	pos             int
	flags           Flags
	nextGroupNumber int
	names           map[string]bool
}

// NewTokenizer returns a Tokenizer over pattern, starting with the given
// initial flags.
func NewTokenizer(pattern string, flags Flags) *Tokenizer {
	return &Tokenizer{
		runes:           []rune(pattern),
		flags:           flags,
		nextGroupNumber: 1,
		names:           make(map[string]bool),
	}
}

// Flags returns the tokenizer's current effective flag set, including any
// mutations from `(?ims)` forms encountered so far.
func (t *Tokenizer) Flags() Flags { return t.flags }

// MaxGroupNumber returns the highest capturing group number assigned so
// far.
func (t *Tokenizer) MaxGroupNumber() int { return t.nextGroupNumber - 1 }

func (t *Tokenizer) done() bool { return t.pos >= len(t.runes) }

func (t *Tokenizer) peek(offset int) (rune, bool) {
	i := t.pos + offset
	if i < 0 || i >= len(t.runes) {
		return 0, false
	}
	return t.runes[i], true
}

func (t *Tokenizer) peekIs(c rune) bool {
	v, ok := t.peek(0)
	return ok && v == c
}

func (t *Tokenizer) advance() rune {
	c := t.runes[t.pos]
	t.pos++
	return c
}

func (t *Tokenizer) textFrom(start int) string {
	return string(t.runes[start:t.pos])
}

// Next scans and returns the next token, or (nil, nil) at end of input.
// Constructs that mutate tokenizer state without producing a token
// (`(?ims)` flags, `(?#...)` comments) are consumed internally and do not
// cause Next to return early.
func (t *Tokenizer) Next() (Token, error) {
	for {
		if t.done() {
			return nil, nil
		}
		start := t.pos
		c := t.advance()
		switch c {
		case '(':
			tok, err := t.readLPar(start)
			if err != nil {
				return nil, err
			}
			if tok == nil {
				continue
			}
			return tok, nil
		case ')':
			return &RParToken{tokenBase{Span{start, t.pos}, ")"}}, nil
		case '|':
			return &PipeToken{tokenBase{Span{start, t.pos}, "|"}}, nil
		case '*':
			return t.readSimpleRepetition(start, 0, nil)
		case '+':
			return t.readSimpleRepetition(start, 1, nil)
		case '?':
			one := 1
			return t.readSimpleRepetition(start, 0, &one)
		case '{':
			if tok, ok := t.tryReadBraceRepetition(start); ok {
				return tok, nil
			}
			return t.literalCharSetToken(start, '{'), nil
		case '.':
			return t.readDot(start), nil
		case '[':
			return t.readBracket(start)
		case '\\':
			return t.readEscape(start)
		case '^':
			kind := InputStart
			if t.flags.Has(Multiline) {
				kind = LineStart
			}
			return &BoundaryAssertionToken{tokenBase{Span{start, t.pos}, "^"}, kind}, nil
		case '$':
			kind := InputEnd
			if t.flags.Has(Multiline) {
				kind = LineEnd
			}
			return &BoundaryAssertionToken{tokenBase{Span{start, t.pos}, "$"}, kind}, nil
		default:
			return t.literalCharSetToken(start, c), nil
		}
	}
}

func (t *Tokenizer) readLPar(start int) (Token, error) {
	next, ok := t.peek(0)
	if !ok || next != '?' {
		n := t.nextGroupNumber
		t.nextGroupNumber++
		return &LParToken{tokenBase{Span{start, t.pos}, "("}, n, false, ""}, nil
	}
	t.advance() // consume '?'
	marker, ok := t.peek(0)
	if !ok {
		return nil, &TokenizerError{Pos: start, Msg: "unterminated group modifier '(?'"}
	}
	switch marker {
	case ':':
		t.advance()
		return &LParToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, 0, true, ""}, nil
	case 'P':
		t.advance()
		return t.readNamedGroup(start)
	case '#':
		t.advance()
		return nil, t.skipComment(start)
	case '=', '!', '<', '>':
		return nil, &UnsupportedSyntaxError{Pos: start, Msg: fmt.Sprintf("lookaround/atomic group (?%c...) is not supported", marker)}
	case '(':
		return nil, &UnsupportedSyntaxError{Pos: start, Msg: "conditional expression (?(...) is not supported"}
	default:
		return t.readInlineFlags(start)
	}
}

func (t *Tokenizer) readInlineFlags(start int) (Token, error) {
	var fl Flags
	count := 0
	for {
		c, ok := t.peek(0)
		if !ok {
			return nil, &TokenizerError{Pos: start, Msg: "unterminated inline flag group '(?...'"}
		}
		if c == ')' {
			t.advance()
			break
		}
		switch c {
		case 'i':
			fl |= IgnoreCase
		case 'm':
			fl |= Multiline
		case 's':
			fl |= DotAll
		default:
			return nil, &TokenizerError{Pos: t.pos, Msg: fmt.Sprintf("unknown inline flag %q", c)}
		}
		t.advance()
		count++
	}
	if count == 0 {
		return nil, &TokenizerError{Pos: start, Msg: "empty inline flag group '(?)'"}
	}
	t.flags |= fl
	return nil, nil
}

func (t *Tokenizer) readNamedGroup(start int) (Token, error) {
	if c, ok := t.peek(0); !ok || c != '<' {
		return nil, &TokenizerError{Pos: start, Msg: "expected '<' after '(?P'"}
	}
	t.advance()
	nameStart := t.pos
	for {
		c, ok := t.peek(0)
		if !ok {
			return nil, &TokenizerError{Pos: start, Msg: "unterminated group name"}
		}
		if c == '>' {
			break
		}
		t.advance()
	}
	name := string(t.runes[nameStart:t.pos])
	t.advance() // consume '>'
	if name == "" {
		return nil, &TokenizerError{Pos: start, Msg: "empty group name"}
	}
	if t.names[name] {
		return nil, &TokenizerError{Pos: start, Msg: fmt.Sprintf("duplicate group name %q", name)}
	}
	t.names[name] = true
	n := t.nextGroupNumber
	t.nextGroupNumber++
	return &LParToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, n, false, name}, nil
}

func (t *Tokenizer) skipComment(start int) error {
	for {
		c, ok := t.peek(0)
		if !ok {
			return &TokenizerError{Pos: start, Msg: "unclosed '(?#...)' comment"}
		}
		t.advance()
		if c == ')' {
			return nil
		}
	}
}

func (t *Tokenizer) readSimpleRepetition(start, min int, max *int) (Token, error) {
	if c, ok := t.peek(0); ok && (c == '?' || c == '+') {
		return nil, &UnsupportedSyntaxError{Pos: t.pos, Msg: "lazy/possessive quantifiers are not supported"}
	}
	return &RepetitionToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, min, max}, nil
}

func (t *Tokenizer) readDigits() (int, bool) {
	start := t.pos
	n := 0
	for {
		c, ok := t.peek(0)
		if !ok || c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		t.advance()
	}
	return n, t.pos > start
}

// tryReadBraceRepetition attempts to parse `{m,n}` / `{m,}` / `{,n}` / `{m}`
// starting just after the consumed `{`. On malformed input it rewinds to
// the point right after `{` and reports ok=false, so the caller re-tokenizes
// `{` as a literal character, per spec.
func (t *Tokenizer) tryReadBraceRepetition(start int) (Token, bool) {
	save := t.pos
	m, mOk := t.readDigits()
	if t.peekIs('}') {
		if !mOk {
			t.pos = save
			return nil, false
		}
		t.advance()
		max := m
		return &RepetitionToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, m, &max}, true
	}
	if t.peekIs(',') {
		t.advance()
		n, nOk := t.readDigits()
		if !t.peekIs('}') {
			t.pos = save
			return nil, false
		}
		t.advance()
		if !mOk && !nOk {
			t.pos = save
			return nil, false
		}
		min := 0
		if mOk {
			min = m
		}
		var max *int
		if nOk {
			nCopy := n
			max = &nCopy
		}
		return &RepetitionToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, min, max}, true
	}
	t.pos = save
	return nil, false
}

func (t *Tokenizer) readDot(start int) *CharacterSetToken {
	var set rangeset.RangeSet
	if t.flags.Has(DotAll) {
		set = rangeset.ALL
	} else {
		set = rangeset.AllExcept('\n')
	}
	return &CharacterSetToken{tokenBase{Span{start, t.pos}, "."}, set}
}

func (t *Tokenizer) readBracket(start int) (Token, error) {
	complement := false
	if t.peekIs('^') {
		complement = true
		t.advance()
	}
	var values []int
	var ranges []rangeset.Range
	first := true
	for {
		c, ok := t.peek(0)
		if !ok {
			return nil, &TokenizerError{Pos: start, Msg: "unterminated bracket expression"}
		}
		if c == ']' && !first {
			t.advance()
			break
		}
		first = false
		if c == '\\' {
			return nil, &UnsupportedSyntaxError{Pos: t.pos, Msg: "escape sequences inside '[...]' are not supported"}
		}
		t.advance()
		if nc, ok := t.peek(0); ok && nc == '-' {
			if nc2, ok2 := t.peek(1); ok2 && nc2 != ']' {
				t.advance() // consume '-'
				c2 := t.advance()
				lo, hi := c, c2
				if t.flags.Has(IgnoreCase) {
					lo, hi = asciiLowerRune(lo), asciiLowerRune(hi)
				}
				if lo > hi {
					return nil, &TokenizerError{Pos: start, Msg: fmt.Sprintf("bad character range %c-%c", c, c2)}
				}
				ranges = append(ranges, rangeset.Range{Lo: int(lo), Hi: int(hi) + 1})
				continue
			}
		}
		v := c
		if t.flags.Has(IgnoreCase) {
			v = asciiLowerRune(v)
		}
		values = append(values, int(v))
	}
	var set rangeset.RangeSet
	if complement {
		set = rangeset.NewComplement(values, ranges)
	} else {
		set = rangeset.New(values, ranges)
	}
	return &CharacterSetToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, set}, nil
}

func (t *Tokenizer) readEscape(start int) (Token, error) {
	c, ok := t.peek(0)
	if !ok {
		return nil, &TokenizerError{Pos: start, Msg: "trailing backslash"}
	}
	t.advance()
	switch c {
	case 'A':
		return &BoundaryAssertionToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, InputStart}, nil
	case 'Z':
		return &BoundaryAssertionToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, InputEnd}, nil
	case 'b':
		return &BoundaryAssertionToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, WordBoundary}, nil
	case 'B':
		return &BoundaryAssertionToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, NonWordBoundary}, nil
	case 'w':
		return t.predefinedClassToken(start, rangeset.WORD), nil
	case 'W':
		return t.predefinedClassToken(start, rangeset.NONWORD), nil
	case 'd':
		return t.predefinedClassToken(start, rangeset.DIGIT), nil
	case 'D':
		return t.predefinedClassToken(start, rangeset.NONDIGIT), nil
	case 's':
		return t.predefinedClassToken(start, rangeset.WHITESPACE), nil
	case 'S':
		return t.predefinedClassToken(start, rangeset.NONWHITESPACE), nil
	case 'a':
		return t.literalCharSetToken(start, '\a'), nil
	case 'f':
		return t.literalCharSetToken(start, '\f'), nil
	case 'n':
		return t.literalCharSetToken(start, '\n'), nil
	case 'r':
		return t.literalCharSetToken(start, '\r'), nil
	case 't':
		return t.literalCharSetToken(start, '\t'), nil
	case 'v':
		return t.literalCharSetToken(start, '\v'), nil
	case 'N', 'u', 'U', 'x':
		return nil, &UnsupportedSyntaxError{Pos: start, Msg: fmt.Sprintf("escape '\\%c' is not supported", c)}
	default:
		if c >= '1' && c <= '9' {
			return nil, &UnsupportedSyntaxError{Pos: start, Msg: "backreferences are not supported"}
		}
		return t.literalCharSetToken(start, c), nil
	}
}

func (t *Tokenizer) literalCharSetToken(start int, c rune) *CharacterSetToken {
	set := rangeset.Single(int(c))
	if t.flags.Has(IgnoreCase) {
		set = set.Lower()
	}
	return &CharacterSetToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, set}
}

func (t *Tokenizer) predefinedClassToken(start int, set rangeset.RangeSet) *CharacterSetToken {
	return &CharacterSetToken{tokenBase{Span{start, t.pos}, t.textFrom(start)}, set}
}

func asciiLowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
