package eval

import (
	"math/big"

	"github.com/oisee/svsema/pkg/binder"
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svint"
	"github.com/oisee/svsema/pkg/svtype"
)

// evalSystemCall folds one of the supplemented system subroutines.
// $bits/$size/$low/$high act purely on the argument's static type and
// never evaluate it (the binder already cached that type in ArgType);
// $clog2/$signed/$unsigned fold the argument's value.
func evalSystemCall(ctx *Context, n *binder.SystemCall) constval.Value {
	switch n.Name {
	case binder.SysBits:
		return constval.Integer(svint.FromUint64(32, true, false, uint64(typeBits(n.ArgType))))
	case binder.SysSize:
		return constval.Integer(svint.FromUint64(32, true, false, uint64(typeElementCount(n.ArgType))))
	case binder.SysLow:
		low, _ := typeBounds(n.ArgType)
		return constval.Integer(svint.FromInt64(32, true, false, int64(low)))
	case binder.SysHigh:
		_, high := typeBounds(n.ArgType)
		return constval.Integer(svint.FromInt64(32, true, false, int64(high)))
	case binder.SysClog2:
		v, ok := Evaluate(ctx, n.Args[0]).Int()
		if !ok || v.HasUnknown() {
			ctx.Sink.Report(diag.NotConstant, n.Args[0].Syntax().Loc())
			return constval.Bad()
		}
		return constval.Integer(svint.FromUint64(32, true, true, uint64(clog2(v.Uint64()))))
	case binder.SysSigned, binder.SysUnsigned:
		v, ok := Evaluate(ctx, n.Args[0]).Int()
		if !ok {
			return constval.Bad()
		}
		return constval.Integer(v.WithSign(n.Name == binder.SysSigned))
	default:
		ctx.Sink.Report(diag.UnsupportedConstruct, n.Syntax().Loc())
		return constval.Bad()
	}
}

// typeBits is $bits(t): the total number of bits t occupies.
func typeBits(t *svtype.Type) uint32 {
	switch {
	case t.IsIntegral():
		return t.Width()
	case t.Kind() == svtype.KindUnpackedArray:
		elem := t.ElementType()
		if elem != nil && elem.IsIntegral() {
			return elem.Width() * uint32(t.UnpackedSize())
		}
		return 0
	default:
		return 0
	}
}

// typeElementCount is $size(t): the element count of t's outermost
// dimension (for a non-array integral, 1 — there is no dimension to size).
func typeElementCount(t *svtype.Type) int {
	switch t.Kind() {
	case svtype.KindPackedArray:
		left, right := t.PackedBounds()
		return abs(left-right) + 1
	case svtype.KindUnpackedArray:
		return t.UnpackedSize()
	default:
		return 1
	}
}

// typeBounds is ($low, $high) of t's outermost dimension.
func typeBounds(t *svtype.Type) (low, high int) {
	switch t.Kind() {
	case svtype.KindPackedArray:
		left, right := t.PackedBounds()
		if left < right {
			return left, right
		}
		return right, left
	case svtype.KindUnpackedArray:
		return 0, t.UnpackedSize() - 1
	default:
		return 0, int(t.Width()) - 1
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// clog2 computes ceil(log2(n)), with the LRM's $clog2(0) == 0 convention.
func clog2(n uint64) int {
	if n == 0 {
		return 0
	}
	bits := big.NewInt(int64(n))
	bitLen := bits.BitLen()
	if n&(n-1) == 0 {
		return bitLen - 1
	}
	return bitLen
}
