package regexautomata

import (
	"strconv"
	"strings"

	"github.com/tkarabela/regexautomata/nfa"
)

// Match is one successful match against a piece of text: the overall span
// (group 0) plus the span of every numbered capture group.
type Match struct {
	re     *Regexp
	text   string
	groups []nfa.GroupMatch
}

func newMatch(re *Regexp, text string, m nfa.Match) *Match {
	offsets := runeToByteOffsets(text)
	groups := make([]nfa.GroupMatch, len(m.Groups))
	for i, g := range m.Groups {
		groups[i] = nfa.GroupMatch{
			Start: runeIndexToByteOffset(offsets, g.Start),
			End:   runeIndexToByteOffset(offsets, g.End),
		}
	}
	return &Match{re: re, text: text, groups: groups}
}

// runeToByteOffsets returns, for a text with n runes, the byte offset of
// each rune: offsets[k] is where the k-th rune begins, and offsets[n] ==
// len(text). The simulator runs over []rune(text) and reports capture
// spans as rune indices (nfa/simulator.go), so every Match converts them
// to byte offsets here, once, before any Group/Span slices text.
func runeToByteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return offsets
}

// runeIndexToByteOffset converts a rune index produced by the simulator
// into the byte offset runeToByteOffsets computed, passing -1 (a group
// that never participated) through unchanged.
func runeIndexToByteOffset(offsets []int, runeIdx int) int {
	if runeIdx < 0 {
		return -1
	}
	return offsets[runeIdx]
}

// Span returns the [start, end) byte offsets of group i within the
// original text, or (-1, -1) if group i did not participate in the match
// or does not exist.
func (m *Match) Span(i int) (int, int) {
	if i < 0 || i >= len(m.groups) {
		return -1, -1
	}
	g := m.groups[i]
	return g.Start, g.End
}

// SpanName is Span by group name instead of number.
func (m *Match) SpanName(name string) (int, int) {
	i, ok := m.re.engine.GroupNames()[name]
	if !ok {
		return -1, -1
	}
	return m.Span(i)
}

// Start returns the start offset of group i, or -1 if it did not
// participate.
func (m *Match) Start(i int) int {
	s, _ := m.Span(i)
	return s
}

// End returns the end offset of group i, or -1 if it did not participate.
func (m *Match) End(i int) int {
	_, e := m.Span(i)
	return e
}

// Group returns the text captured by group i, or "" if group i did not
// participate in the match. Group 0 is the whole match.
func (m *Match) Group(i int) string {
	s, e := m.Span(i)
	if s < 0 {
		return ""
	}
	return m.text[s:e]
}

// GroupName returns the text captured by the named group, or "" if it did
// not participate (or does not exist).
func (m *Match) GroupName(name string) string {
	s, e := m.SpanName(name)
	if s < 0 {
		return ""
	}
	return m.text[s:e]
}

// Groups returns the text of every capture group, in order starting from
// group 1 (group 0, the whole match, is not included).
func (m *Match) Groups() []string {
	out := make([]string, len(m.groups)-1)
	for i := 1; i < len(m.groups); i++ {
		out[i-1] = m.Group(i)
	}
	return out
}

// GroupDict returns the text of every named group, keyed by name.
func (m *Match) GroupDict() map[string]string {
	names := m.re.engine.GroupNames()
	out := make(map[string]string, len(names))
	for name, i := range names {
		out[name] = m.Group(i)
	}
	return out
}

// String returns the text of the whole match (group 0).
func (m *Match) String() string {
	return m.Group(0)
}

// Expand returns the result of applying the template to m's captures.
// Within the template, `\g<name>` and `\g<number>` expand to a named or
// numbered group's text, `\<digits>` expands to that numbered group's text,
// and `\a \b \f \n \r \t \v \\` and `\xHH \uHHHH \UHHHHHHHH` expand to the
// corresponding character. A group that did not participate expands to "".
// Any other text, including an unrecognized backslash sequence, is copied
// through unchanged.
func (m *Match) Expand(template string) string {
	var b strings.Builder
	i := 0
	for i < len(template) {
		if template[i] != '\\' {
			b.WriteByte(template[i])
			i++
			continue
		}
		if i+1 >= len(template) {
			b.WriteByte('\\')
			i++
			continue
		}
		next := template[i+1]
		switch {
		case next == 'g' && i+2 < len(template) && template[i+2] == '<':
			end := strings.IndexByte(template[i+3:], '>')
			if end < 0 {
				b.WriteByte('\\')
				i++
				continue
			}
			ref := template[i+3 : i+3+end]
			b.WriteString(m.groupByRef(ref))
			i = i + 3 + end + 1
		case isASCIIDigit(next):
			j := i + 1
			for j < len(template) && isASCIIDigit(template[j]) {
				j++
			}
			n, _ := strconv.Atoi(template[i+1 : j])
			b.WriteString(m.Group(n))
			i = j
		case next == 'a':
			b.WriteByte('\a')
			i += 2
		case next == 'b':
			b.WriteByte('\b')
			i += 2
		case next == 'f':
			b.WriteByte('\f')
			i += 2
		case next == 'n':
			b.WriteByte('\n')
			i += 2
		case next == 'r':
			b.WriteByte('\r')
			i += 2
		case next == 't':
			b.WriteByte('\t')
			i += 2
		case next == 'v':
			b.WriteByte('\v')
			i += 2
		case next == '\\':
			b.WriteByte('\\')
			i += 2
		case next == 'x' && hasHexDigits(template, i+2, 2):
			b.WriteRune(parseHexRune(template, i+2, 2))
			i += 4
		case next == 'u' && hasHexDigits(template, i+2, 4):
			b.WriteRune(parseHexRune(template, i+2, 4))
			i += 6
		case next == 'U' && hasHexDigits(template, i+2, 8):
			b.WriteRune(parseHexRune(template, i+2, 8))
			i += 10
		default:
			b.WriteByte('\\')
			i++
		}
	}
	return b.String()
}

// groupByRef resolves a `\g<ref>` reference, which is either a bare group
// number or a group name.
func (m *Match) groupByRef(ref string) string {
	if n, err := strconv.Atoi(ref); err == nil {
		return m.Group(n)
	}
	return m.GroupName(ref)
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hasHexDigits(s string, start, n int) bool {
	if start+n > len(s) {
		return false
	}
	for i := start; i < start+n; i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

func parseHexRune(s string, start, n int) rune {
	v, _ := strconv.ParseInt(s[start:start+n], 16, 32)
	return rune(v)
}
