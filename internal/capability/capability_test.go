package capability

import "testing"

func TestProbeDoesNotPanic(t *testing.T) {
	r := Probe()
	// Flags are host-dependent; just confirm reading them round-trips and
	// AMD64 implies at least one x86 flag when true.
	if r.AMD64 && !r.HasAVX2 && !r.HasSSE2 {
		t.Error("Report.AMD64 true but neither HasAVX2 nor HasSSE2 set")
	}
}

func TestReportLogValue(t *testing.T) {
	r := Report{HasAVX2: true}
	v := r.LogValue()
	if v.Kind().String() != "Group" {
		t.Errorf("LogValue().Kind() = %v, want Group", v.Kind())
	}
}
