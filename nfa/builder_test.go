package nfa

import (
	"testing"

	"github.com/tkarabela/regexautomata/syntax"
)

func compileNFA(t *testing.T, pattern string, flags syntax.Flags) (*NFA, int) {
	t.Helper()
	res, err := syntax.Compile(pattern, flags)
	if err != nil {
		t.Fatalf("syntax.Compile(%q): %v", pattern, err)
	}
	return Build(res.AST), res.MaxGroupNumber + 1
}

func runFind(t *testing.T, pattern, text string, flags syntax.Flags) (Match, bool) {
	t.Helper()
	n, numGroups := compileNFA(t, pattern, flags)
	sim := NewSimulator(n, numGroups, flags.Has(syntax.IgnoreCase))
	return sim.FindFrom([]rune(text), 0, true)
}

func TestBuild_FullmatchLoStar(t *testing.T) {
	cases := []struct {
		text  string
		match bool
	}{
		{"looool", true},
		{"ll", true},
		{"lolo", false},
	}
	for _, c := range cases {
		m, ok := runFind(t, "lo*l", c.text, syntax.NoFlag)
		full := ok && m.End == len([]rune(c.text))
		if full != c.match {
			t.Errorf("fullmatch(lo*l, %q) = %v, want %v", c.text, full, c.match)
		}
	}
}

func TestBuild_BoundedRepetition(t *testing.T) {
	cases := map[string]bool{
		"a":    false,
		"aa":   true,
		"aaa":  true,
		"aaaa": false,
	}
	for text, want := range cases {
		m, ok := runFind(t, "a{2,3}", text, syntax.NoFlag)
		full := ok && m.End == len([]rune(text))
		if full != want {
			t.Errorf("fullmatch(a{2,3}, %q) = %v, want %v", text, full, want)
		}
	}
}

func TestBuild_AlternationOfClasses(t *testing.T) {
	for i := 0; i <= 59; i++ {
		text := itoa(i)
		m, ok := runFind(t, "[1-5][0-9]|[0-9]", text, syntax.NoFlag)
		if !ok || m.End != len([]rune(text)) {
			t.Errorf("fullmatch([1-5][0-9]|[0-9], %q) should succeed", text)
		}
	}
	for _, text := range []string{"60", "01"} {
		m, ok := runFind(t, "[1-5][0-9]|[0-9]", text, syntax.NoFlag)
		if ok && m.End == len([]rune(text)) {
			t.Errorf("fullmatch([1-5][0-9]|[0-9], %q) should fail", text)
		}
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf []byte
	for i > 0 {
		buf = append([]byte{byte('0' + i%10)}, buf...)
		i /= 10
	}
	if neg {
		buf = append([]byte{'-'}, buf...)
	}
	return string(buf)
}

func TestBuild_CapturesEmailLikePattern(t *testing.T) {
	n, numGroups := compileNFA(t, `([a-z0-9]+)@([a-z0-9]+\.[a-z0-9]+)`, syntax.NoFlag)
	sim := NewSimulator(n, numGroups, false)
	text := "text abc@def.com xyz@123.com"
	m, ok := sim.FindFrom([]rune(text), 0, false)
	if !ok {
		t.Fatal("expected a match")
	}
	runes := []rune(text)
	got := string(runes[m.Start:m.End])
	if got != "abc@def.com" {
		t.Errorf("whole match = %q, want %q", got, "abc@def.com")
	}
	g1 := m.Groups[1]
	if string(runes[g1.Start:g1.End]) != "abc" {
		t.Errorf("group 1 = %q, want %q", string(runes[g1.Start:g1.End]), "abc")
	}
	g2 := m.Groups[2]
	if string(runes[g2.Start:g2.End]) != "def.com" {
		t.Errorf("group 2 = %q, want %q", string(runes[g2.Start:g2.End]), "def.com")
	}
}

func TestBuild_WordBoundary(t *testing.T) {
	n, numGroups := compileNFA(t, `\bm`, syntax.NoFlag)
	sim := NewSimulator(n, numGroups, false)
	m, ok := sim.FindFrom([]rune("moon"), 0, false)
	if !ok || m.Start != 0 || m.End != 1 {
		t.Fatalf("search(\\bm, moon) = %+v, %v, want span (0,1)", m, ok)
	}

	n2, numGroups2 := compileNFA(t, `oon\b`, syntax.NoFlag)
	sim2 := NewSimulator(n2, numGroups2, false)
	m2, ok2 := sim2.FindFrom([]rune("moon"), 0, false)
	if !ok2 || m2.Start != 1 || m2.End != 4 {
		t.Fatalf("search(oon\\b, moon) = %+v, %v, want span (1,4)", m2, ok2)
	}
}

func TestBuild_MultilineDollar(t *testing.T) {
	n, numGroups := compileNFA(t, `abc$`, syntax.Multiline)
	sim := NewSimulator(n, numGroups, false)
	_, ok := sim.FindFrom([]rune("abc\ndef"), 0, false)
	if !ok {
		t.Fatal("expected abc$ with MULTILINE to match before the embedded newline")
	}
}

func TestBuild_TrivialEpsilonEliminationPreservesLanguage(t *testing.T) {
	// (a|) concatenated with b: the empty alternative should still allow
	// just "b" to match, proving the trivial-epsilon splice didn't change
	// which strings are accepted.
	n, numGroups := compileNFA(t, `(a|)b`, syntax.NoFlag)
	sim := NewSimulator(n, numGroups, false)
	for _, text := range []string{"b", "ab"} {
		m, ok := sim.FindFrom([]rune(text), 0, true)
		if !ok || m.End != len([]rune(text)) {
			t.Errorf("fullmatch((a|)b, %q) should succeed", text)
		}
	}
	if _, ok := sim.FindFrom([]rune("aab"), 0, true); ok {
		t.Errorf("fullmatch((a|)b, %q) should fail", "aab")
	}
}

func TestBuild_IgnoreCase(t *testing.T) {
	n, numGroups := compileNFA(t, `ABC`, syntax.IgnoreCase)
	sim := NewSimulator(n, numGroups, true)
	if _, ok := sim.FindFrom([]rune("abc"), 0, true); !ok {
		t.Error("expected case-insensitive match")
	}
}
