package eval

import (
	"github.com/oisee/svsema/pkg/binder"
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svint"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/syntax"
)

// Evaluate folds a bound expression to a constant value, dispatching on
// BoundKind the same way the binder dispatches on syntax.Kind.
func Evaluate(ctx *Context, e binder.Expr) constval.Value {
	if e == nil || e.BoundKind() == binder.BoundInvalid {
		return constval.Bad()
	}
	if !ctx.tick(e.Syntax().Loc()) {
		return constval.Bad()
	}
	switch n := e.(type) {
	case *binder.Literal:
		return evalLiteral(ctx, n)
	case *binder.Name:
		return evalName(ctx, n)
	case *binder.MemberAccess:
		return evalMemberAccess(ctx, n)
	case *binder.ElementSelect:
		return evalElementSelect(ctx, n)
	case *binder.RangeSelect:
		return evalRangeSelect(ctx, n)
	case *binder.Unary:
		return evalUnary(ctx, n)
	case *binder.Binary:
		return evalBinary(ctx, n)
	case *binder.Conditional:
		return evalConditional(ctx, n)
	case *binder.Concat:
		return evalConcat(ctx, n)
	case *binder.Replication:
		return evalReplication(ctx, n)
	case *binder.Assignment:
		return evalAssignment(ctx, n)
	case *binder.Call:
		return evalCall(ctx, n)
	case *binder.SystemCall:
		return evalSystemCall(ctx, n)
	case *binder.Conversion:
		return convertValue(n.Type(), Evaluate(ctx, n.Operand))
	default:
		ctx.Sink.Report(diag.UnsupportedConstruct, e.Syntax().Loc())
		return constval.Bad()
	}
}

func evalLiteral(ctx *Context, n *binder.Literal) constval.Value {
	switch {
	case n.IsInteger:
		v, err := svint.ParseLiteral(n.Digits, n.Type().Width(), n.Base, n.Type().Signed())
		if err != nil {
			ctx.Sink.Report(diag.NotConstant, n.Syntax().Loc(), err.Error())
			return constval.Bad()
		}
		if n.Type().FourState() {
			v = v.AsFourState()
		}
		return constval.Integer(v)
	case n.IsReal:
		if n.Type().Kind() == svtype.KindShortReal {
			return constval.ShortReal(float32(n.Real))
		}
		return constval.Real(n.Real)
	case n.IsString:
		return constval.String(n.Str)
	default:
		return constval.Null()
	}
}

func evalName(ctx *Context, n *binder.Name) constval.Value {
	v, ok := ctx.get(n.Symbol)
	if !ok {
		ctx.Sink.Report(diag.NotConstant, n.Syntax().Loc(), n.Symbol.Name())
		return constval.Bad()
	}
	return v
}

func evalMemberAccess(ctx *Context, n *binder.MemberAccess) constval.Value {
	agg := Evaluate(ctx, n.Value)
	elems, ok := agg.Elements()
	if !ok {
		return constval.Bad()
	}
	fields := n.Value.Type().Fields()
	for i, f := range fields {
		if f.Name == n.Field && i < len(elems) {
			return elems[i]
		}
	}
	ctx.Sink.Report(diag.UndeclaredIdentifier, n.Syntax().Loc(), n.Field)
	return constval.Bad()
}

func evalElementSelect(ctx *Context, n *binder.ElementSelect) constval.Value {
	idxVal := Evaluate(ctx, n.Index)
	idx, ok := idxVal.Int()
	if !ok || idx.HasUnknown() {
		ctx.Sink.Report(diag.NotConstant, n.Index.Syntax().Loc())
		return constval.Bad()
	}
	index := uint32(idx.Uint64())

	baseVal := Evaluate(ctx, n.Value)
	t := n.Value.Type()
	switch {
	case t.Kind() == svtype.KindPackedArray || t.Kind() == svtype.KindUnpackedArray:
		elems, ok := baseVal.Elements()
		if !ok || int(index) >= len(elems) {
			ctx.Sink.Report(diag.IndexOutOfBounds, n.Syntax().Loc(), index)
			return constval.Bad()
		}
		return elems[index]
	case t.IsIntegral():
		sv, ok := baseVal.Int()
		if !ok {
			return constval.Bad()
		}
		if index >= sv.Width() {
			ctx.Sink.Report(diag.IndexOutOfBounds, n.Syntax().Loc(), index)
		}
		return constval.Integer(sv.BitSelect(index))
	default:
		return constval.Bad()
	}
}

func evalRangeSelect(ctx *Context, n *binder.RangeSelect) constval.Value {
	baseVal := Evaluate(ctx, n.Value)
	sv, ok := baseVal.Int()
	if !ok {
		return constval.Bad()
	}
	lowBit, highBit, ok := rangeSelectBounds(ctx, n, sv.Width())
	if !ok {
		return constval.Bad()
	}
	return constval.Integer(sv.Slice(lowBit, highBit))
}

// rangeSelectBounds folds a RangeSelect's left/right bound expressions to
// a concrete inclusive LSB-indexed [lowBit,highBit] pair against a base
// value of the given width, clamping an out-of-range select the same way
// for both the rvalue read path and the lvalue write path.
func rangeSelectBounds(ctx *Context, n *binder.RangeSelect, baseWidth uint32) (lowBit, highBit uint32, ok bool) {
	leftI, ok1 := Evaluate(ctx, n.Left).Int()
	rightI, ok2 := Evaluate(ctx, n.Right).Int()
	if !ok1 || !ok2 {
		ctx.Sink.Report(diag.NotConstant, n.Syntax().Loc())
		return 0, 0, false
	}

	switch n.Flavor {
	case syntax.RangeSimple:
		l := uint32(leftI.Uint64())
		r := uint32(rightI.Uint64())
		if l >= r {
			lowBit, highBit = r, l
		} else {
			lowBit, highBit = l, r
		}
	case syntax.RangeIndexedUp:
		base := uint32(leftI.Uint64())
		width := uint32(rightI.Uint64())
		lowBit, highBit = base, base+width-1
	case syntax.RangeIndexedDown:
		base := uint32(leftI.Uint64())
		width := uint32(rightI.Uint64())
		if width == 0 {
			width = 1
		}
		highBit = base
		if base+1 >= width {
			lowBit = base + 1 - width
		}
	}
	if highBit >= baseWidth {
		ctx.Sink.Report(diag.IndexOutOfBounds, n.Syntax().Loc(), highBit)
		highBit = baseWidth - 1
	}
	if lowBit > highBit {
		lowBit = highBit
	}
	return lowBit, highBit, true
}

func evalConditional(ctx *Context, n *binder.Conditional) constval.Value {
	predVal := Evaluate(ctx, n.Predicate)
	sv, ok := predVal.Int()
	if !ok {
		return constval.Bad()
	}
	truthy, known := sv.IsTruthy()
	if !known {
		// Ambiguous predicate folds to the branches' bitwise merge when
		// both are integers: an X/X conflict widens to X, matching a
		// simulator's ambiguous-conditional rule; anything else can't be
		// merged and is simply not constant.
		tv, tok := Evaluate(ctx, n.WhenTrue).Int()
		fv, fok := Evaluate(ctx, n.WhenFalse).Int()
		if tok && fok {
			return constval.Integer(tv.Merge(fv))
		}
		return constval.Bad()
	}
	if truthy {
		return Evaluate(ctx, n.WhenTrue)
	}
	return Evaluate(ctx, n.WhenFalse)
}

func evalConcat(ctx *Context, n *binder.Concat) constval.Value {
	parts := make([]svint.SVInt, len(n.Operands))
	for i, o := range n.Operands {
		v, ok := Evaluate(ctx, o).Int()
		if !ok {
			return constval.Bad()
		}
		parts[i] = v
	}
	return constval.Integer(svint.Concat(parts...))
}

func evalReplication(ctx *Context, n *binder.Replication) constval.Value {
	countVal, ok := Evaluate(ctx, n.Count).Int()
	if !ok || countVal.HasUnknown() {
		ctx.Sink.Report(diag.NotConstant, n.Count.Syntax().Loc())
		return constval.Bad()
	}
	count := int(countVal.Uint64())
	operand, ok := Evaluate(ctx, n.Operand).Int()
	if !ok {
		return constval.Bad()
	}
	return constval.Integer(svint.Replicate(count, operand))
}
