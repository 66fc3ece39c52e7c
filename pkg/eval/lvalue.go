package eval

import (
	"github.com/oisee/svsema/pkg/binder"
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/symbols"
)

// evalLValue resolves expr as an assignment target, returning its current
// value and a closure that performs the write. ok is false when expr is
// not actually writable (the binder already restricted the shape to
// Name/MemberAccess/ElementSelect/RangeSelect, but a Parameter or
// EnumMember can still reach here through a Name node and must be
// rejected here, since the binder does not track mutability).
func evalLValue(ctx *Context, expr binder.Expr) (read constval.Value, write func(constval.Value), ok bool) {
	switch n := expr.(type) {
	case *binder.Name:
		return lvalueName(ctx, n)
	case *binder.MemberAccess:
		return lvalueMember(ctx, n)
	case *binder.ElementSelect:
		return lvalueElement(ctx, n)
	case *binder.RangeSelect:
		return lvalueRange(ctx, n)
	default:
		ctx.Sink.Report(diag.InvalidLValue, expr.Syntax().Loc())
		return constval.Bad(), nil, false
	}
}

func lvalueName(ctx *Context, n *binder.Name) (constval.Value, func(constval.Value), bool) {
	sym := n.Symbol
	if sym.Kind() != symbols.KindVariable && sym.Kind() != symbols.KindFormalArgument {
		ctx.Sink.Report(diag.InvalidLValue, n.Syntax().Loc(), sym.Name())
		return constval.Bad(), nil, false
	}
	cur, _ := ctx.get(sym)
	return cur, func(v constval.Value) { ctx.set(sym, v) }, true
}

func lvalueMember(ctx *Context, n *binder.MemberAccess) (constval.Value, func(constval.Value), bool) {
	_, writeAgg, ok := evalLValue(ctx, n.Value)
	if !ok {
		return constval.Bad(), nil, false
	}
	aggVal := Evaluate(ctx, n.Value)
	elems, isArr := aggVal.Elements()
	if !isArr {
		ctx.Sink.Report(diag.InvalidLValue, n.Syntax().Loc())
		return constval.Bad(), nil, false
	}
	fields := n.Value.Type().Fields()
	idx := -1
	for i, f := range fields {
		if f.Name == n.Field {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(elems) {
		ctx.Sink.Report(diag.UndeclaredIdentifier, n.Syntax().Loc(), n.Field)
		return constval.Bad(), nil, false
	}
	cur := elems[idx]
	write := func(v constval.Value) {
		next := make([]constval.Value, len(elems))
		copy(next, elems)
		next[idx] = v
		writeAgg(constval.Array(next))
	}
	return cur, write, true
}

func lvalueElement(ctx *Context, n *binder.ElementSelect) (constval.Value, func(constval.Value), bool) {
	idxVal, ok := Evaluate(ctx, n.Index).Int()
	if !ok || idxVal.HasUnknown() {
		ctx.Sink.Report(diag.NotConstant, n.Index.Syntax().Loc())
		return constval.Bad(), nil, false
	}
	index := uint32(idxVal.Uint64())

	t := n.Value.Type()
	if t.Kind() == svtype.KindPackedArray || t.Kind() == svtype.KindUnpackedArray {
		_, writeAgg, ok := evalLValue(ctx, n.Value)
		if !ok {
			return constval.Bad(), nil, false
		}
		baseVal := Evaluate(ctx, n.Value)
		elems, isArr := baseVal.Elements()
		if !isArr || int(index) >= len(elems) {
			ctx.Sink.Report(diag.IndexOutOfBounds, n.Syntax().Loc(), index)
			return constval.Bad(), nil, false
		}
		cur := elems[index]
		write := func(v constval.Value) {
			next := make([]constval.Value, len(elems))
			copy(next, elems)
			next[index] = v
			writeAgg(constval.Array(next))
		}
		return cur, write, true
	}

	_, writeBase, ok := evalLValue(ctx, n.Value)
	if !ok {
		return constval.Bad(), nil, false
	}
	baseVal := Evaluate(ctx, n.Value)
	sv, isInt := baseVal.Int()
	if !isInt {
		return constval.Bad(), nil, false
	}
	cur := sv.BitSelect(index)
	write := func(v constval.Value) {
		newBit, ok := v.Int()
		if !ok {
			return
		}
		writeBase(constval.Integer(sv.WithBitSet(index, newBit)))
	}
	return constval.Integer(cur), write, true
}

func lvalueRange(ctx *Context, n *binder.RangeSelect) (constval.Value, func(constval.Value), bool) {
	_, writeBase, ok := evalLValue(ctx, n.Value)
	if !ok {
		return constval.Bad(), nil, false
	}
	baseVal := Evaluate(ctx, n.Value)
	sv, isInt := baseVal.Int()
	if !isInt {
		return constval.Bad(), nil, false
	}
	lowBit, highBit, ok := rangeSelectBounds(ctx, n, sv.Width())
	if !ok {
		return constval.Bad(), nil, false
	}
	cur := sv.Slice(lowBit, highBit)
	write := func(v constval.Value) {
		newSlice, ok := v.Int()
		if !ok {
			return
		}
		writeBase(constval.Integer(sv.WithSliceSet(lowBit, highBit, newSlice)))
	}
	return constval.Integer(cur), write, true
}
