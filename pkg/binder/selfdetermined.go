package binder

import (
	"strings"

	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

// bindSelfDetermined binds expr with no inbound context, dispatching on
// syntax.Kind the way the teacher's instruction executor dispatches on
// opcode (switch over a closed enum, one case per kind).
func (b *Binder) bindSelfDetermined(n syntax.Node) Expr {
	switch e := n.(type) {
	case *syntax.IntegerLiteral:
		return b.bindIntegerLiteral(e)
	case *syntax.RealLiteral:
		t := svtype.Real()
		if e.ShortReal {
			t = svtype.ShortReal()
		}
		return &Literal{exprBase{BoundLiteral, t, e}, "", 10, e.Value, "", false, true, false}
	case *syntax.StringLiteral:
		return &Literal{exprBase{BoundLiteral, svtype.StringType(), e}, "", 0, 0, e.Value, false, false, true}
	case *syntax.NullLiteral:
		return &Literal{exprBase{BoundLiteral, svtype.Null(), e}, "", 0, 0, "", false, false, false}
	case *syntax.IdentifierName:
		return b.bindIdentifier(e)
	case *syntax.ScopedName:
		return b.bindScopedName(e)
	case *syntax.MemberAccess:
		return b.bindMemberAccess(e)
	case *syntax.ElementSelect:
		return b.bindElementSelect(e)
	case *syntax.RangeSelect:
		return b.bindRangeSelect(e)
	case *syntax.UnaryExpression:
		return b.bindUnary(e)
	case *syntax.BinaryExpression:
		return b.bindBinary(e)
	case *syntax.ConditionalExpression:
		return b.bindConditional(e)
	case *syntax.ConcatenationExpression:
		return b.bindConcat(e)
	case *syntax.ReplicationExpression:
		return b.bindReplication(e)
	case *syntax.AssignmentExpression:
		return b.bindAssignment(e)
	case *syntax.InvocationExpression:
		return b.bindInvocation(e)
	case *syntax.ConversionExpression:
		return b.bindConversionExpr(e)
	default:
		b.report(diag.UnsupportedConstruct, n.Loc(), n.Kind().String())
		return newInvalid(n)
	}
}

func (b *Binder) bindIntegerLiteral(e *syntax.IntegerLiteral) Expr {
	width := uint32(e.Width)
	if width == 0 {
		width = 32 // LRM default for an unsized literal
	}
	four := literalHasUnknown(e.Digits)
	signed := e.Signed
	if e.Width == 0 {
		signed = true // unsized literals are signed per the LRM
	}
	t := svtype.Integral("", width, signed, four)
	return &Literal{exprBase{BoundLiteral, t, e}, e.Digits, e.Base, 0, "", true, false, false}
}

func literalHasUnknown(digits string) bool {
	return strings.ContainsAny(digits, "xXzZ?")
}

func (b *Binder) bindIdentifier(e *syntax.IdentifierName) Expr {
	lk := symbols.LookupProcedural
	sym, ok := symbols.LookupUnqualified(b.Scope, e.Name, lk, b.declOrder)
	if !ok {
		b.report(diag.UndeclaredIdentifier, e.Loc(), e.Name)
		return newInvalid(e)
	}
	return b.bindNameSymbol(e, sym)
}

func (b *Binder) bindScopedName(e *syntax.ScopedName) Expr {
	origin := b.Scope
	if e.Upward != "" {
		up, ok := symbols.LookupUpward(b.Scope, e.Upward)
		if !ok {
			b.report(diag.UndeclaredIdentifier, e.Loc(), e.Upward)
			return newInvalid(e)
		}
		origin = up
	}
	sym, ok := symbols.LookupQualified(origin, e.Segments)
	if !ok {
		b.report(diag.UndeclaredIdentifier, e.Loc(), strings.Join(e.Segments, "."))
		return newInvalid(e)
	}
	return b.bindNameSymbol(e, sym)
}

func (b *Binder) bindNameSymbol(syn syntax.Node, sym *symbols.Symbol) Expr {
	switch sym.Kind() {
	case symbols.KindVariable, symbols.KindParameter, symbols.KindFormalArgument, symbols.KindEnumMember:
		return &Name{exprBase{BoundName, sym.Type(), syn}, sym}
	default:
		b.report(diag.TypeMismatch, syn.Loc(), "not a value", sym.Name())
		return newInvalid(syn)
	}
}
