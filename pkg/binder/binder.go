package binder

import (
	"math"

	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

// Binder resolves a syntax tree against a symbol scope, producing a bound
// tree with a type fixed at every node. One Binder is created per
// elaboration context (module instance, subroutine body); it shares a
// diagnostic Sink across however many Binders an elaboration spins up
// (§5 allows independent design units to bind/evaluate concurrently).
type Binder struct {
	Scope *symbols.Scope
	Sink  *diag.Sink

	// declOrder is the declaration-order watermark for procedural lookup
	// inside the current statement list: a name bound while this equals N
	// may only resolve to a local declared at position <= N in Scope.
	declOrder int
}

// New creates a Binder rooted at scope, reporting to sink. Its declOrder
// watermark is unbounded, so every member already declared in scope is
// visible to it.
func New(scope *symbols.Scope, sink *diag.Sink) *Binder {
	return &Binder{Scope: scope, Sink: sink, declOrder: math.MaxInt}
}

func (b *Binder) report(code diag.Code, loc diag.Location, args ...any) {
	b.Sink.Report(code, loc, args...)
}

// withScope runs fn with a child binder whose Scope is scope and whose
// declOrder watermark restarts at zero (a fresh block's locals are
// ordered relative to that block, not the enclosing one).
func (b *Binder) withScope(scope *symbols.Scope) *Binder {
	return &Binder{Scope: scope, Sink: b.Sink}
}

// BindExpression is the self-determined entry point (§4.E): bind expr
// with no inbound context type, producing its self-determined type.
func (b *Binder) BindExpression(expr syntax.Node) Expr {
	return b.bindSelfDetermined(expr)
}

// BindAssignmentLike binds rhs under the context of an assignment (or
// equivalent binding context — a parameter default, an argument, a
// return value) into target, inserting an implicit Conversion when the
// self-determined type and target type differ but are compatible, and
// diagnosing TypeMismatch when they are not (§4.C, §4.E).
func (b *Binder) BindAssignmentLike(expr syntax.Node, target *svtype.Type) Expr {
	bound := b.bindSelfDetermined(expr)
	return b.convertTo(bound, target)
}

// ResolveType resolves a syntax type reference to its svtype.Type. Exported
// so a caller materializing symbols from declaration syntax outside this
// package (the evaluator, binding a subroutine's formals on first call) can
// reuse the same type-resolution rules the binder itself uses.
func (b *Binder) ResolveType(t syntax.TypeSyntax) *svtype.Type {
	return b.resolveTypeSyntax(t)
}

func (b *Binder) convertTo(bound Expr, target *svtype.Type) Expr {
	if bound.BoundKind() == BoundInvalid || target.IsError() {
		return bound
	}
	if svtype.Equivalent(bound.Type(), target) {
		return bound
	}
	switch svtype.Assignable(target, bound.Type()) {
	case svtype.Implicit:
		if widened, ok := b.widenContextDetermined(bound, target); ok {
			return widened
		}
		return &Conversion{exprBase{BoundConversion, target, bound.Syntax()}, bound, ConversionImplicit}
	case svtype.Explicit:
		b.report(diag.TypeMismatch, bound.Syntax().Loc(), "explicit cast required", target.String(), bound.Type().String())
		return newInvalid(bound.Syntax())
	default:
		b.report(diag.TypeMismatch, bound.Syntax().Loc(), target.String(), bound.Type().String())
		return newInvalid(bound.Syntax())
	}
}

// widenContextDetermined rebuilds a context-determined arithmetic/bitwise
// operator node at target's width/sign instead of folding it at its own
// self-determined width and wrapping the finished (already-truncated)
// result in a boundary Conversion. Per LRM §11.8, every operand of an
// ordinary arithmetic/bitwise chain is evaluated at the full enclosing
// expression's width, not truncated at each intermediate step — so
// `bit[7:0] a=200,b=200; int c; c = a+b+c;` must compute the whole sum at
// 32 bits (400), not fold `a+b` at 8 bits (144) and merely zero-extend
// that. Relational/logical results, shift results, and anything else
// that isn't a rebuildable arithmetic/bitwise node are left to ordinary
// Conversion wrapping, since those operands are self-determined in their
// own right (§4.E: shift RHS, comparisons, concatenations).
func (b *Binder) widenContextDetermined(bound Expr, target *svtype.Type) (Expr, bool) {
	if !target.IsNumeric() {
		return nil, false
	}
	switch n := bound.(type) {
	case *Binary:
		if isRelational(n.Op) || isShift(n.Op) {
			return nil, false
		}
		left := b.widenOperand(n.Left, target)
		right := b.widenOperand(n.Right, target)
		return &Binary{exprBase{BoundBinary, target, n.Syntax()}, n.Op, left, right}, true
	case *Unary:
		if isReductionOrLogical(n.Op) || isIncDec(n.Op) {
			return nil, false
		}
		operand := b.widenOperand(n.Operand, target)
		return &Unary{exprBase{BoundUnary, target, n.Syntax()}, n.Op, operand}, true
	default:
		return nil, false
	}
}

// widenOperand converts a context-determined operator's own operand to
// target, recursing further when the operand is itself a rebuildable
// arithmetic/bitwise subtree — so a 3+ term mixed-width chain widens all
// the way down to its leaves — and falling back to an ordinary boundary
// Conversion once it bottoms out at a leaf (name, literal, call, select).
func (b *Binder) widenOperand(operand Expr, target *svtype.Type) Expr {
	if operand.BoundKind() == BoundInvalid {
		return operand
	}
	if svtype.Equivalent(operand.Type(), target) {
		return operand
	}
	if widened, ok := b.widenContextDetermined(operand, target); ok {
		return widened
	}
	return &Conversion{exprBase{BoundConversion, target, operand.Syntax()}, operand, ConversionImplicit}
}
