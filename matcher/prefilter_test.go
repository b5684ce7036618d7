package matcher

import "testing"

func TestPrefilterRejectsWordsMissingMandatoryLiteral(t *testing.T) {
	node := mustParse(t, "a?bc?d")
	pf, err := NewPrefilter(node)
	if err != nil {
		t.Fatalf("NewPrefilter() error = %v", err)
	}
	if !pf.MayMatch("bd") {
		t.Error("MayMatch(bd) = false, want true (contains both mandatory literals)")
	}
	if pf.MayMatch("bx") {
		t.Error("MayMatch(bx) = true, want false (missing mandatory literal d)")
	}
	if pf.MayMatch("") {
		t.Error("MayMatch(\"\") = true, want false (missing both mandatory literals)")
	}
}

func TestPrefilterAlwaysMayMatchWithoutMandatoryLiterals(t *testing.T) {
	node := mustParse(t, "a+b")
	pf, err := NewPrefilter(node)
	if err != nil {
		t.Fatalf("NewPrefilter() error = %v", err)
	}
	if !pf.MayMatch("") || !pf.MayMatch("anything") {
		t.Error("MayMatch() = false with no mandatory literals, want always true")
	}
}

func TestNilPrefilterAlwaysMayMatch(t *testing.T) {
	var pf *Prefilter
	if !pf.MayMatch("whatever") {
		t.Error("(*Prefilter)(nil).MayMatch() = false, want true")
	}
}
