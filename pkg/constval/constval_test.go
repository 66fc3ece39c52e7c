package constval

import (
	"testing"

	"github.com/oisee/svsema/pkg/svint"
)

func TestBadShortCircuits(t *testing.T) {
	if !Bad().Bad() {
		t.Fatal("Bad().Bad() should be true")
	}
	if Integer(svint.FromUint64(8, false, false, 1)).Bad() {
		t.Fatal("a real integer should not report Bad")
	}
}

func TestCompareAcrossKinds(t *testing.T) {
	i := Integer(svint.FromUint64(8, false, false, 5))
	s := String("five")
	if Compare(i, s) == 0 {
		t.Fatal("values of different kind should never compare equal")
	}
}

func TestInsideSet(t *testing.T) {
	set := []Value{
		Integer(svint.FromUint64(8, false, false, 1)),
		Integer(svint.FromUint64(8, false, false, 3)),
		Integer(svint.FromUint64(8, false, false, 5)),
	}
	if !InsideSet(Integer(svint.FromUint64(8, false, false, 3)), set) {
		t.Error("3 should be inside {1,3,5}")
	}
	if InsideSet(Integer(svint.FromUint64(8, false, false, 4)), set) {
		t.Error("4 should not be inside {1,3,5}")
	}
}

func TestArrayString(t *testing.T) {
	arr := Array([]Value{
		Integer(svint.FromUint64(4, false, false, 1)),
		Integer(svint.FromUint64(4, false, false, 2)),
	})
	if got := arr.String(); got == "" {
		t.Error("array String() should not be empty")
	}
}
