package csops

import (
	"testing"

	"github.com/bitshape/regexinfer/bitset"
	"github.com/bitshape/regexinfer/guide"
	"github.com/bitshape/regexinfer/ic"
)

func setup(t *testing.T, words []string) (*ic.IC, guide.Table) {
	t.Helper()
	closure, err := ic.Build(words, nil)
	if err != nil {
		t.Fatalf("ic.Build() error = %v", err)
	}
	return closure, guide.Build(closure)
}

func csFor(t *testing.T, closure *ic.IC, w string) bitset.Set {
	t.Helper()
	i, ok := closure.Index(w)
	if !ok {
		t.Fatalf("%q not in closure", w)
	}
	return bitset.Bit(i)
}

func TestQuestionIncludesEpsilon(t *testing.T) {
	closure, _ := setup(t, []string{"a"})
	a := csFor(t, closure, "a")

	q := Question(a)
	if !q.TestBit(0) {
		t.Error("Question(a) must include ε")
	}
	if !q.TestBit(mustIndex(t, closure, "a")) {
		t.Error("Question(a) must still include a")
	}
}

func TestQuestionIsIdempotent(t *testing.T) {
	closure, _ := setup(t, []string{"a"})
	a := csFor(t, closure, "a")
	if Question(Question(a)) != Question(a) {
		t.Error("Question(Question(a)) != Question(a)")
	}
}

func TestStarOfLiteralAcceptsAllRepetitions(t *testing.T) {
	closure, table := setup(t, []string{"aaa"})
	a := csFor(t, closure, "a")

	star := Star(a, closure, table)
	for _, w := range []string{"", "a", "aa", "aaa"} {
		i, ok := closure.Index(w)
		if !ok {
			continue
		}
		if !star.TestBit(i) {
			t.Errorf("Star(a) should accept %q", w)
		}
	}
}

func TestStarIsIdempotent(t *testing.T) {
	closure, table := setup(t, []string{"aaa"})
	a := csFor(t, closure, "a")
	s1 := Star(a, closure, table)
	s2 := Star(s1, closure, table)
	if s1 != s2 {
		t.Error("Star(Star(a)) != Star(a)")
	}
}

func TestConcatBothOrderings(t *testing.T) {
	closure, table := setup(t, []string{"ab", "ba"})
	a := csFor(t, closure, "a")
	b := csFor(t, closure, "b")

	lr, rl := Concat(a, b, closure, table)

	abIdx := mustIndex(t, closure, "ab")
	baIdx := mustIndex(t, closure, "ba")

	if !lr.TestBit(abIdx) {
		t.Error("a·b should accept \"ab\"")
	}
	if lr.TestBit(baIdx) {
		t.Error("a·b should not accept \"ba\"")
	}
	if !rl.TestBit(baIdx) {
		t.Error("b·a should accept \"ba\"")
	}
	if rl.TestBit(abIdx) {
		t.Error("b·a should not accept \"ab\"")
	}
}

func TestConcatEpsilonOnLeftActsAsIdentity(t *testing.T) {
	closure, table := setup(t, []string{"a"})
	a := csFor(t, closure, "a")
	eps := bitset.Bit(0)

	lr, rl := Concat(eps, a, closure, table)
	if lr != a {
		t.Errorf("ε·a should equal a's CS, got %v want %v", lr, a)
	}
	if rl != a {
		t.Errorf("a·ε should equal a's CS, got %v want %v", rl, a)
	}
}

func TestOrIsUnion(t *testing.T) {
	closure, _ := setup(t, []string{"a", "b"})
	a := csFor(t, closure, "a")
	b := csFor(t, closure, "b")
	or := Or(a, b)
	if !or.TestBit(mustIndex(t, closure, "a")) || !or.TestBit(mustIndex(t, closure, "b")) {
		t.Error("Or(a, b) must accept both a and b")
	}
}

func TestOrIsIdempotent(t *testing.T) {
	closure, _ := setup(t, []string{"a"})
	a := csFor(t, closure, "a")
	if Or(a, a) != a {
		t.Error("Or(a, a) != a")
	}
}

func TestAndIsIntersection(t *testing.T) {
	closure, table := setup(t, []string{"aaa"})
	a := csFor(t, closure, "a")
	star := Star(a, closure, table)

	and := And(star, a)
	if and != a {
		t.Errorf("And(a*, a) should equal a's CS, got %v want %v", and, a)
	}
}

func TestAndIsIdempotent(t *testing.T) {
	closure, _ := setup(t, []string{"a"})
	a := csFor(t, closure, "a")
	if And(a, a) != a {
		t.Error("And(a, a) != a")
	}
}

func mustIndex(t *testing.T, closure *ic.IC, w string) int {
	t.Helper()
	i, ok := closure.Index(w)
	if !ok {
		t.Fatalf("%q not in closure", w)
	}
	return i
}
