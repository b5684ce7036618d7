package dc

import "testing"

func TestCompileAndMatches(t *testing.T) {
	c, err := compile("a(b)*")
	if err != nil {
		t.Fatalf("compile() error = %v", err)
	}
	if !c.matches("a") || !c.matches("abb") {
		t.Error("compiled a(b)* should accept a and abb")
	}
	if c.matches("b") || c.matches("ba") {
		t.Error("compiled a(b)* should reject b and ba")
	}
}

func TestCompileInvalidRE(t *testing.T) {
	_, err := compile("a+")
	if err == nil {
		t.Fatal("compile(\"a+\") want error, got nil")
	}
	var parseErr *ParseError
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("compile() error type = %T, want %T", err, parseErr)
	}
}

func TestMatchesAllAndNone(t *testing.T) {
	c, err := compile("a*")
	if err != nil {
		t.Fatalf("compile() error = %v", err)
	}
	if !matchesAll(c, []string{"", "a", "aa"}) {
		t.Error("matchesAll() should be true for a*, {eps,a,aa}")
	}
	if !matchesNone(c, []string{"b", "ab"}) {
		t.Error("matchesNone() should be true for a*, {b,ab}")
	}
}
