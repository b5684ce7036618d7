package ic

import (
	"strings"
	"testing"

	"github.com/bitshape/regexinfer/bitset"
)

func TestBuildContainsEveryInfix(t *testing.T) {
	pos := []string{"ab", "abc"}
	neg := []string{"ba"}

	closure, err := Build(pos, neg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"", "a", "b", "c", "ab", "bc", "ba", "abc"}
	for _, w := range want {
		if _, ok := closure.Index(w); !ok {
			t.Errorf("closure missing infix %q", w)
		}
	}

	if closure.Words[0] != "" {
		t.Errorf("Words[0] = %q, want empty string", closure.Words[0])
	}
}

func TestBuildShortlexOrder(t *testing.T) {
	closure, err := Build([]string{"ba", "ab"}, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i := 1; i < len(closure.Words); i++ {
		a, b := closure.Words[i-1], closure.Words[i]
		if len(a) > len(b) || (len(a) == len(b) && a > b) {
			t.Fatalf("Words not shortlex-ordered at %d: %q then %q", i, a, b)
		}
	}
}

func TestAlphabetSizeCountsDistinctChars(t *testing.T) {
	closure, err := Build([]string{"aab", "bba"}, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := closure.AlphabetSize(); got != 2 {
		t.Errorf("AlphabetSize() = %d, want 2", got)
	}
}

func TestBuildTooLarge(t *testing.T) {
	// A word long enough that its infix closure (roughly n*(n+1)/2 distinct
	// substrings over a rich alphabet) exceeds bitset.Width.
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteByte(byte('a' + i%26))
	}
	_, err := Build([]string{sb.String()}, nil)
	if err == nil {
		t.Fatal("Build() error = nil, want ErrTooLarge")
	}
	var tooLarge *TooLargeError
	if !asTooLarge(err, &tooLarge) {
		t.Fatalf("Build() error = %v, want *TooLargeError", err)
	}
}

func asTooLarge(err error, target **TooLargeError) bool {
	if e, ok := err.(*TooLargeError); ok {
		*target = e
		return true
	}
	return false
}

func TestMask(t *testing.T) {
	closure, err := Build([]string{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	m := closure.Mask([]string{"a", "b"})

	var want bitset.Set
	ai, _ := closure.Index("a")
	bi, _ := closure.Index("b")
	want.SetBit(ai)
	want.SetBit(bi)

	if !m.Equal(want) {
		t.Errorf("Mask() = %v, want %v", m, want)
	}
}
