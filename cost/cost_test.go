package cost

import "testing"

func TestValidateAcceptsPositiveCosts(t *testing.T) {
	f := Function{Alpha: 1, Question: 1, Star: 1, Concat: 1, Or: 1, And: 1}
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateRejectsZero(t *testing.T) {
	f := Function{Alpha: 0, Question: 1, Star: 1, Concat: 1, Or: 1, And: 1}
	err := f.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want error for zero Alpha")
	}
	ce, ok := err.(*Error)
	if !ok || ce.Field != "Alpha" {
		t.Errorf("Validate() error = %v, want *Error on field Alpha", err)
	}
}

func TestValidateRejectsTooLarge(t *testing.T) {
	f := Function{Alpha: 1, Question: 1, Star: 1, Concat: 1, Or: 1, And: MaxValue + 1}
	if err := f.Validate(); err == nil {
		t.Fatal("Validate() error = nil, want error for And exceeding MaxValue")
	}
}

func TestSliceRoundTrips(t *testing.T) {
	f := Function{Alpha: 1, Question: 2, Star: 3, Concat: 4, Or: 5, And: 6}
	got := FromSlice(f.Slice())
	if got != f {
		t.Errorf("FromSlice(Slice()) = %+v, want %+v", got, f)
	}
}
