package binder

import (
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

// bindInvocation binds a call to either a user subroutine or one of the
// supplemented system subroutines, distinguished by the leading '$'
// (§4.E, §9).
func (b *Binder) bindInvocation(e *syntax.InvocationExpression) Expr {
	if len(e.Name) > 0 && e.Name[0] == '$' {
		return b.bindSystemCall(e)
	}
	return b.bindUserCall(e)
}

func (b *Binder) bindUserCall(e *syntax.InvocationExpression) Expr {
	sym, ok := symbols.LookupUnqualified(b.Scope, e.Name, symbols.LookupUnrestricted, 0)
	if !ok || sym.Kind() != symbols.KindSubroutine {
		b.report(diag.AmbiguousCall, e.Loc(), e.Name)
		return newInvalid(e)
	}
	decl := sym.Decl()
	if len(e.Args) != len(decl.Formals) {
		b.report(diag.WrongArgumentCount, e.Loc(), e.Name, len(decl.Formals), len(e.Args))
		return newInvalid(e)
	}
	args := make([]Expr, len(e.Args))
	ok = true
	for i, a := range e.Args {
		formal := decl.Formals[i]
		ft := b.resolveTypeSyntax(formal.Type)
		switch formal.Direction {
		case syntax.DirOut, syntax.DirInOut, syntax.DirRef:
			bound := b.bindSelfDetermined(a)
			if bound.BoundKind() == BoundInvalid || !isLValueShaped(bound) {
				b.report(diag.InvalidLValue, a.Loc())
				ok = false
			}
			args[i] = bound
		default:
			args[i] = b.BindAssignmentLike(a, ft)
			if args[i].BoundKind() == BoundInvalid {
				ok = false
			}
		}
	}
	if !ok {
		return newInvalid(e)
	}
	retType := b.resolveTypeSyntax(decl.ReturnType)
	return &Call{exprBase{BoundCall, retType, e}, sym, args}
}

func (b *Binder) bindSystemCall(e *syntax.InvocationExpression) Expr {
	name := LookupSystemName(e.Name)
	if name == SysUnknown {
		b.report(diag.UnsupportedConstruct, e.Loc(), e.Name)
		return newInvalid(e)
	}

	switch name {
	case SysBits, SysSize, SysLow, SysHigh:
		if len(e.Args) != 1 {
			b.report(diag.WrongArgumentCount, e.Loc(), e.Name, 1, len(e.Args))
			return newInvalid(e)
		}
		arg := b.bindSelfDetermined(e.Args[0])
		if arg.BoundKind() == BoundInvalid {
			return newInvalid(e)
		}
		return &SystemCall{exprBase{BoundSystemCall, svtype.Int(), e}, name, []Expr{arg}, arg.Type()}
	case SysClog2:
		if len(e.Args) != 1 {
			b.report(diag.WrongArgumentCount, e.Loc(), e.Name, 1, len(e.Args))
			return newInvalid(e)
		}
		arg := b.BindAssignmentLike(e.Args[0], svtype.Integer())
		if arg.BoundKind() == BoundInvalid {
			return newInvalid(e)
		}
		return &SystemCall{exprBase{BoundSystemCall, svtype.Integer(), e}, name, []Expr{arg}, nil}
	case SysSigned, SysUnsigned:
		if len(e.Args) != 1 {
			b.report(diag.WrongArgumentCount, e.Loc(), e.Name, 1, len(e.Args))
			return newInvalid(e)
		}
		arg := b.bindSelfDetermined(e.Args[0])
		if arg.BoundKind() == BoundInvalid || !arg.Type().IsIntegral() {
			b.report(diag.TypeMismatch, e.Args[0].Loc(), "integral operand required")
			return newInvalid(e)
		}
		result := svtype.Integral("", arg.Type().Width(), name == SysSigned, arg.Type().FourState())
		return &SystemCall{exprBase{BoundSystemCall, result, e}, name, []Expr{arg}, arg.Type()}
	default:
		b.report(diag.UnsupportedConstruct, e.Loc(), e.Name)
		return newInvalid(e)
	}
}

// bindConversionExpr binds an explicit user-written cast, type'(expr).
func (b *Binder) bindConversionExpr(e *syntax.ConversionExpression) Expr {
	target := b.resolveTypeSyntax(e.Target)
	operand := b.bindSelfDetermined(e.Operand)
	if operand.BoundKind() == BoundInvalid {
		return newInvalid(e)
	}
	if target.IsError() {
		return newInvalid(e)
	}
	if svtype.Assignable(target, operand.Type()) == svtype.None {
		b.report(diag.TypeMismatch, e.Loc(), target.String(), operand.Type().String())
		return newInvalid(e)
	}
	return &Conversion{exprBase{BoundConversion, target, e}, operand, ConversionExplicit}
}

// resolveTypeSyntax turns a syntax.TypeSyntax into an svtype.Type. Named
// references are looked up as TypeAlias symbols in the current scope;
// packed arrays recurse over their element syntax.
func (b *Binder) resolveTypeSyntax(t syntax.TypeSyntax) *svtype.Type {
	switch t.Kind {
	case syntax.TypeSyntaxPredefined:
		return b.resolvePredefined(t)
	case syntax.TypeSyntaxNamed:
		sym, ok := symbols.LookupUnqualified(b.Scope, t.Name, symbols.LookupUnrestricted, 0)
		if !ok || sym.Kind() != symbols.KindTypeAlias {
			return svtype.Error()
		}
		return sym.Type()
	case syntax.TypeSyntaxPackedArray:
		elem := b.resolveTypeSyntax(*t.Element)
		left, right := b.staticRangeBounds(t)
		return svtype.PackedArray(elem, left, right)
	default:
		return svtype.Error()
	}
}

func (b *Binder) staticRangeBounds(t syntax.TypeSyntax) (int, int) {
	left := b.literalAsInt(t.Left, 0)
	right := b.literalAsInt(t.Right, 0)
	return left, right
}

func (b *Binder) literalAsInt(n syntax.Node, fallback int) int {
	if n == nil {
		return fallback
	}
	lit, ok := n.(*syntax.IntegerLiteral)
	if !ok {
		return fallback
	}
	v, err := parseStaticWidth(&Literal{Digits: lit.Digits})
	if err != nil {
		return fallback
	}
	return int(v)
}

func (b *Binder) resolvePredefined(t syntax.TypeSyntax) *svtype.Type {
	switch t.Predefined {
	case "void":
		return svtype.Void()
	case "string":
		return svtype.StringType()
	case "real":
		return svtype.Real()
	case "shortreal":
		return svtype.ShortReal()
	case "realtime":
		return svtype.RealTime()
	case "time":
		return svtype.Time()
	case "event":
		return svtype.Event()
	case "int":
		return withSign(svtype.Int(), t.Signed)
	case "integer":
		return withSign(svtype.Integer(), t.Signed)
	case "shortint":
		return withSign(svtype.ShortInt(), t.Signed)
	case "longint":
		return withSign(svtype.LongInt(), t.Signed)
	case "byte":
		return withSign(svtype.Byte(), t.Signed)
	case "logic":
		return svtype.Integral("logic", b.packedWidth(t), t.Signed, true)
	case "bit":
		return svtype.Integral("bit", b.packedWidth(t), t.Signed, false)
	default:
		return svtype.Error()
	}
}

func withSign(t *svtype.Type, signed bool) *svtype.Type {
	return svtype.Integral(t.Name(), t.Width(), signed, t.FourState())
}

func (b *Binder) packedWidth(t syntax.TypeSyntax) uint32 {
	if t.Left == nil || t.Right == nil {
		return 1
	}
	left := b.literalAsInt(t.Left, 0)
	right := b.literalAsInt(t.Right, 0)
	if left >= right {
		return uint32(left-right) + 1
	}
	return uint32(right-left) + 1
}
