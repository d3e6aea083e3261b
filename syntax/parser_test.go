package syntax

import "testing"

func parseOk(t *testing.T, pattern string) Node {
	t.Helper()
	p := NewParser(pattern, NoFlag)
	n, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return n
}

func TestParser_Concatenation(t *testing.T) {
	n := parseOk(t, "ab")
	c, ok := n.(Concat)
	if !ok {
		t.Fatalf("expected Concat, got %#v", n)
	}
	if _, ok := c.U.(CharacterSet); !ok {
		t.Errorf("expected CharacterSet left child, got %#v", c.U)
	}
	if _, ok := c.V.(CharacterSet); !ok {
		t.Errorf("expected CharacterSet right child, got %#v", c.V)
	}
}

func TestParser_Alternation(t *testing.T) {
	n := parseOk(t, "a|b|c")
	// right-associative per grammar: Union(a, Union(b, c))
	u, ok := n.(Union)
	if !ok {
		t.Fatalf("expected Union, got %#v", n)
	}
	if _, ok := u.U.(CharacterSet); !ok {
		t.Errorf("expected CharacterSet, got %#v", u.U)
	}
	if _, ok := u.V.(Union); !ok {
		t.Errorf("expected nested Union, got %#v", u.V)
	}
}

func TestParser_EmptyAlternative(t *testing.T) {
	n := parseOk(t, "a|")
	u, ok := n.(Union)
	if !ok {
		t.Fatalf("expected Union, got %#v", n)
	}
	if _, ok := u.V.(Empty); !ok {
		t.Errorf("expected Empty right alternative, got %#v", u.V)
	}
}

func TestParser_EmptyGroup(t *testing.T) {
	n := parseOk(t, "()")
	g, ok := n.(Group)
	if !ok {
		t.Fatalf("expected Group, got %#v", n)
	}
	if _, ok := g.U.(Empty); !ok {
		t.Errorf("expected Empty inside empty group, got %#v", g.U)
	}
}

func TestParser_GroupNumbering(t *testing.T) {
	n := parseOk(t, "(a(b))(c)")
	c, ok := n.(Concat)
	if !ok {
		t.Fatalf("expected Concat, got %#v", n)
	}
	outerLeft, ok := c.U.(Group)
	if !ok || outerLeft.Number != 1 {
		t.Fatalf("expected group 1 first, got %#v", c.U)
	}
	inner, ok := outerLeft.U.(Concat)
	if !ok {
		t.Fatalf("expected Concat inside group 1, got %#v", outerLeft.U)
	}
	innerGroup, ok := inner.V.(Group)
	if !ok || innerGroup.Number != 2 {
		t.Fatalf("expected group 2 nested, got %#v", inner.V)
	}
	outerRight, ok := c.V.(Group)
	if !ok || outerRight.Number != 3 {
		t.Fatalf("expected group 3 last, got %#v", c.V)
	}
}

func TestParser_NonCapturingNotWrapped(t *testing.T) {
	n := parseOk(t, "(?:ab)")
	if _, ok := n.(Group); ok {
		t.Fatalf("non-capturing group should not produce a Group node, got %#v", n)
	}
}

func TestParser_NamedGroupRecordsMapping(t *testing.T) {
	p := NewParser("(?P<year>a)", NoFlag)
	_, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Names()["year"] != 1 {
		t.Errorf("Names()[\"year\"] = %d, want 1", p.Names()["year"])
	}
}

func TestParser_Repetition(t *testing.T) {
	n := parseOk(t, "a{2,3}")
	r, ok := n.(Repetition)
	if !ok {
		t.Fatalf("expected Repetition, got %#v", n)
	}
	if r.Min != 2 || r.Max == nil || *r.Max != 3 {
		t.Errorf("got {%d,%v}, want {2,3}", r.Min, r.Max)
	}
}

func TestParser_UnmatchedCloseParenIsError(t *testing.T) {
	_, err := NewParser("a)", NoFlag).Parse()
	if _, ok := err.(*ParserError); !ok {
		t.Fatalf("expected ParserError, got %v (%T)", err, err)
	}
}

func TestParser_UnclosedOpenParenIsError(t *testing.T) {
	_, err := NewParser("(a", NoFlag).Parse()
	if _, ok := err.(*ParserError); !ok {
		t.Fatalf("expected ParserError, got %v (%T)", err, err)
	}
}

func TestParser_PrecedenceRepetitionBindsTighterThanConcatAndAlternation(t *testing.T) {
	n := parseOk(t, "ab*|c")
	u, ok := n.(Union)
	if !ok {
		t.Fatalf("expected Union at top, got %#v", n)
	}
	concat, ok := u.U.(Concat)
	if !ok {
		t.Fatalf("expected Concat on the left of Union, got %#v", u.U)
	}
	if _, ok := concat.V.(Repetition); !ok {
		t.Errorf("expected Repetition as the second concat operand, got %#v", concat.V)
	}
}
