package guide

import (
	"testing"

	"github.com/bitshape/regexinfer/ic"
)

func TestBuildRowsForShortElementsAreEmpty(t *testing.T) {
	closure, err := ic.Build([]string{"ab"}, nil)
	if err != nil {
		t.Fatalf("ic.Build() error = %v", err)
	}
	table := Build(closure)

	for k, w := range closure.Words {
		if len(w) >= 2 {
			continue
		}
		if len(table[k]) != 0 {
			t.Errorf("row %d (%q) should be empty, got %v", k, w, table[k])
		}
	}
}

func TestBuildSplitsCoverAllCutPoints(t *testing.T) {
	closure, err := ic.Build([]string{"abc"}, nil)
	if err != nil {
		t.Fatalf("ic.Build() error = %v", err)
	}
	table := Build(closure)

	idx, ok := closure.Index("abc")
	if !ok {
		t.Fatal("\"abc\" missing from closure")
	}
	row := table[idx]
	if len(row) != 2 {
		t.Fatalf("len(row) = %d, want 2 splits for a 3-byte word", len(row))
	}

	wantSplits := []struct{ prefix, suffix string }{
		{"a", "bc"},
		{"ab", "c"},
	}
	for _, want := range wantSplits {
		pi, _ := closure.Index(want.prefix)
		si, _ := closure.Index(want.suffix)
		found := false
		for _, s := range row {
			if s.Prefix.TestBit(pi) && s.Suffix.TestBit(si) &&
				s.Prefix.Popcount() == 1 && s.Suffix.Popcount() == 1 {
				found = true
			}
		}
		if !found {
			t.Errorf("split (%q, %q) not found in row for \"abc\"", want.prefix, want.suffix)
		}
	}
}
