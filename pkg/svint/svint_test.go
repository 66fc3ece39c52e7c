package svint

import "testing"

// TestExtendTruncateRoundTrip checks the universal invariant:
// a.extend(w).truncate(a.width) == a whenever w >= a.width.
func TestExtendTruncateRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		width  uint32
		signed bool
		v      uint64
	}{
		{"8-bit unsigned", 8, false, 0xAB},
		{"8-bit signed negative", 8, true, 0xFF},
		{"16-bit unsigned", 16, false, 0x1234},
		{"1-bit", 1, false, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FromUint64(tc.width, tc.signed, false, tc.v)
			wide := v.Extend(tc.width+7, tc.signed)
			back := wide.Truncate(tc.width)
			if !back.Equal(v) {
				t.Errorf("extend/truncate round trip: got %s, want %s", back, v)
			}
		})
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	tests := []struct {
		digits string
		width  uint32
		base   int
	}{
		{"1010", 4, 2},
		{"ff", 8, 16},
		{"17", 6, 8},
		{"10x0", 4, 2},
		{"1z", 2, 2},
	}
	for _, tc := range tests {
		t.Run(tc.digits, func(t *testing.T) {
			v, err := ParseLiteral(tc.digits, tc.width, tc.base, false)
			if err != nil {
				t.Fatalf("ParseLiteral(%q): %v", tc.digits, err)
			}
			out := v.FormatDigits(tc.base)
			v2, err := ParseLiteral(out, tc.width, tc.base, false)
			if err != nil {
				t.Fatalf("reparse %q: %v", out, err)
			}
			if !v2.Equal(v) {
				t.Errorf("round trip %q -> %q -> %s, want %s", tc.digits, out, v2, v)
			}
		})
	}
}

// TestFourStateAddPropagatesX covers scenario 1: 4'b10x0 + 4'b0001 -> 4'bxxxx.
func TestFourStateAddPropagatesX(t *testing.T) {
	a, err := ParseLiteral("10x0", 4, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseLiteral("0001", 4, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	sum := a.Add(b)
	if !sum.HasUnknown() || sum.Width() != 4 {
		t.Fatalf("got %s, want 4'bxxxx", sum)
	}
	for i := uint32(0); i < 4; i++ {
		if !sum.BitIsX(i) {
			t.Errorf("bit %d: want X, got known bit", i)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	a := FromUint64(8, false, false, 10)
	b := FromUint64(8, false, false, 0)
	q, divByZero := a.Div(b)
	if !divByZero {
		t.Fatal("expected divByZero")
	}
	if !q.HasUnknown() || q.Width() != 8 {
		t.Errorf("got %s, want 8-bit all-X", q)
	}
}

func TestCaseEqVsLogicalEq(t *testing.T) {
	// case(3'b01x) 3'b010: ...; 3'b01x: ... matches the second arm by ===,
	// not the first by ==.
	selector, _ := ParseLiteral("01x", 3, 2, false)
	arm1, _ := ParseLiteral("010", 3, 2, false)
	arm2, _ := ParseLiteral("01x", 3, 2, false)

	if eq := selector.Eq(arm1); !eq.HasUnknown() {
		t.Errorf("== against known arm with unknown selector should be X, got %s", eq)
	}
	if ceq := selector.CaseEq(arm1); ceq.HasUnknown() || ceq.valueBig().Sign() != 0 {
		t.Errorf("=== against 010 should be known false, got %s", ceq)
	}
	ceq2 := selector.CaseEq(arm2)
	if ceq2.HasUnknown() || ceq2.valueBig().Sign() == 0 {
		t.Errorf("=== against 01x should be known true, got %s", ceq2)
	}
}

func TestIdentityLaws(t *testing.T) {
	x := FromUint64(8, false, false, 0x5A)
	zero := FromUint64(8, false, false, 0)
	one := FromUint64(8, false, false, 1)

	if got := x.Add(zero); !got.Equal(x) {
		t.Errorf("x+0: got %s, want %s", got, x)
	}
	if got := x.Mul(one); !got.Equal(x) {
		t.Errorf("x*1: got %s, want %s", got, x)
	}
	if got := x.And(x); !got.Equal(x) {
		t.Errorf("x&x: got %s, want %s", got, x)
	}
	if got := x.Or(x); !got.Equal(x) {
		t.Errorf("x|x: got %s, want %s", got, x)
	}
}

func TestDeMorgan(t *testing.T) {
	a, _ := ParseLiteral("10x0", 4, 2, false)
	b, _ := ParseLiteral("0x11", 4, 2, false)

	lhs := a.And(b).Not()
	rhs := a.Not().Or(b.Not())
	if !lhs.Equal(rhs) {
		t.Errorf("De Morgan: ~(a&b)=%s, (~a)|(~b)=%s", lhs, rhs)
	}
}

func TestFromUint64KeepsDeclaredWidth(t *testing.T) {
	v := FromUint64(8, false, true, 0xF0)
	if w := v.Width(); w != 8 {
		t.Fatalf("sanity: got width %d", w)
	}
}
