package syntax

import "testing"

func TestCompile_BackreferenceRejected(t *testing.T) {
	res, err := Compile(`(?P<word>[a-z]+)\s+\1?`, IgnoreCase)
	if err == nil {
		t.Fatalf("expected an error since \\1 is an unsupported backreference")
	}
	_ = res
}

func TestCompile_FlagsPropagateFromInlineForms(t *testing.T) {
	res, err := Compile(`(?im)^a$`, NoFlag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Flags.Has(IgnoreCase) || !res.Flags.Has(Multiline) {
		t.Errorf("expected IgnoreCase|Multiline, got %v", res.Flags)
	}
}

func TestCompile_NamesAndMaxGroupNumber(t *testing.T) {
	res, err := Compile(`(?P<y>a)(b)(?:c)(d)`, NoFlag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Names["y"] != 1 {
		t.Errorf("Names[\"y\"] = %d, want 1", res.Names["y"])
	}
	if res.MaxGroupNumber != 3 {
		t.Errorf("MaxGroupNumber = %d, want 3 (non-capturing group doesn't consume a number)", res.MaxGroupNumber)
	}
}
