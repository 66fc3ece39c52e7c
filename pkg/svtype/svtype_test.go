package svtype

import "testing"

func TestIntegralEquivalenceIsStructural(t *testing.T) {
	a := Integral("logic", 8, false, true)
	b := Integral("my_byte_t", 8, false, true) // different cosmetic name
	if !Equivalent(a, b) {
		t.Error("integrals with same width/signed/fourState should be equivalent regardless of name")
	}
	c := Integral("logic", 16, false, true)
	if Equivalent(a, c) {
		t.Error("different widths should not be equivalent")
	}
}

func TestStructNominalEquivalence(t *testing.T) {
	fields := []Field{{Name: "x", Type: Int()}}
	a := Struct("point_t", fields, false, false)
	b := Struct("point_t", fields, false, false)
	if Equivalent(a, b) {
		t.Error("two distinct struct declarations should not be equivalent even with identical fields")
	}
	if !Equivalent(a, a) {
		t.Error("a struct type should be equivalent to itself")
	}
}

func TestAssignableIntegralAlwaysImplicit(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs *Type
		want     Compatibility
	}{
		{"int to logic", Logic(8), Int(), Implicit},
		{"logic to string", StringType(), Logic(64), Implicit},
		{"real to int", Int(), Real(), Implicit},
		{"struct to int", Int(), Struct("s", nil, false, false), None},
	}
	for _, tc := range tests {
		if got := Assignable(tc.lhs, tc.rhs); got != tc.want {
			t.Errorf("%s: Assignable got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBinaryOperatorTypeWidthAndSign(t *testing.T) {
	lt := Integral("", 8, true, false)
	rt := Integral("", 16, false, false)
	ct := BinaryOperatorType(lt, rt, false)
	if ct.Width() != 16 {
		t.Errorf("width: got %d, want 16", ct.Width())
	}
	if ct.Signed() {
		t.Error("signed should be false: one operand is unsigned")
	}
	if ct.FourState() {
		t.Error("fourState should be false: neither operand was four-state")
	}
	forced := BinaryOperatorType(lt, rt, true)
	if !forced.FourState() {
		t.Error("forceFourState should make the result four-state")
	}
}
