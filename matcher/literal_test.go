package matcher

import (
	"reflect"
	"testing"
)

func TestExtractLiteralsPureConcat(t *testing.T) {
	node := mustParse(t, "abc")
	got := ExtractLiterals(node)
	want := []string{"abc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLiterals(abc) = %v, want %v", got, want)
	}
}

func TestExtractLiteralsBreaksOnOptional(t *testing.T) {
	node := mustParse(t, "a?bc?d")
	got := ExtractLiterals(node)
	want := []string{"b", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLiterals(a?bc?d) = %v, want %v", got, want)
	}
}

func TestExtractLiteralsEmptyForPureAlternation(t *testing.T) {
	node := mustParse(t, "a+b")
	if got := ExtractLiterals(node); len(got) != 0 {
		t.Errorf("ExtractLiterals(a+b) = %v, want none", got)
	}
}

func TestExtractLiteralsMixedConcatAndGroup(t *testing.T) {
	node := mustParse(t, "x(a+b)y")
	got := ExtractLiterals(node)
	want := []string{"x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLiterals(x(a+b)y) = %v, want %v", got, want)
	}
}
