package eval

import (
	"github.com/oisee/svsema/pkg/binder"
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svint"
	"github.com/oisee/svsema/pkg/syntax"
)

func evalUnary(ctx *Context, n *binder.Unary) constval.Value {
	v, ok := Evaluate(ctx, n.Operand).Int()
	if !ok {
		return constval.Bad()
	}
	switch n.Op {
	case syntax.UnaryPlus:
		return constval.Integer(v)
	case syntax.UnaryMinus:
		return constval.Integer(v.Neg())
	case syntax.UnaryBitwiseNot:
		return constval.Integer(v.Not())
	case syntax.UnaryLogicalNot:
		return constval.Integer(v.LogicalNot())
	case syntax.UnaryReduceAnd:
		return constval.Integer(v.ReduceAnd())
	case syntax.UnaryReduceNand:
		return constval.Integer(v.ReduceNand())
	case syntax.UnaryReduceOr:
		return constval.Integer(v.ReduceOr())
	case syntax.UnaryReduceNor:
		return constval.Integer(v.ReduceNor())
	case syntax.UnaryReduceXor:
		return constval.Integer(v.ReduceXor())
	case syntax.UnaryReduceXnor:
		return constval.Integer(v.ReduceXnor())
	case syntax.UnaryPreincrement, syntax.UnaryPostincrement:
		return evalIncDec(ctx, n, v, true)
	case syntax.UnaryPredecrement, syntax.UnaryPostdecrement:
		return evalIncDec(ctx, n, v, false)
	default:
		return constval.Bad()
	}
}

// evalIncDec folds ++/--; this core only evaluates it where the operand
// is itself an lvalue it can also write back to, since incrementing a
// pure rvalue has no meaning (§4.F).
func evalIncDec(ctx *Context, n *binder.Unary, v svint.SVInt, inc bool) constval.Value {
	one := svint.FromUint64(v.Width(), v.IsSigned(), v.IsFourState(), 1)
	var next svint.SVInt
	if inc {
		next = v.Add(one)
	} else {
		next = v.Sub(one)
	}
	_, write, ok := evalLValue(ctx, n.Operand)
	if ok {
		write(constval.Integer(next))
	}
	if n.Op == syntax.UnaryPostincrement || n.Op == syntax.UnaryPostdecrement {
		return constval.Integer(v)
	}
	return constval.Integer(next)
}

func evalBinary(ctx *Context, n *binder.Binary) constval.Value {
	if n.Op == syntax.BinaryLogicalAnd || n.Op == syntax.BinaryLogicalOr {
		return evalShortCircuit(ctx, n)
	}
	l, lok := Evaluate(ctx, n.Left).Int()
	r, rok := Evaluate(ctx, n.Right).Int()
	if !lok || !rok {
		return constval.Bad()
	}
	return constval.Integer(applyBinaryOp(ctx, n.Op, l, r, n.Syntax().Loc()))
}

// applyBinaryOp folds a single binary operator over two already-evaluated
// operands; shared between evalBinary and a compound assignment's
// implicit "lhs = lhs op rhs" expansion.
func applyBinaryOp(ctx *Context, op syntax.BinaryOp, l, r svint.SVInt, loc diag.Location) svint.SVInt {
	switch op {
	case syntax.BinaryAdd:
		return l.Add(r)
	case syntax.BinarySubtract:
		return l.Sub(r)
	case syntax.BinaryMultiply:
		return l.Mul(r)
	case syntax.BinaryDivide:
		res, divByZero := l.Div(r)
		if divByZero {
			ctx.Sink.Report(diag.DivisionByZero, loc)
		}
		return res
	case syntax.BinaryMod:
		res, divByZero := l.Mod(r)
		if divByZero {
			ctx.Sink.Report(diag.DivisionByZero, loc)
		}
		return res
	case syntax.BinaryPower:
		return l.Pow(r)
	case syntax.BinaryAnd:
		return l.And(r)
	case syntax.BinaryOr:
		return l.Or(r)
	case syntax.BinaryXor:
		return l.Xor(r)
	case syntax.BinaryXnor:
		return l.Xnor(r)
	case syntax.BinaryLogicalShiftLeft:
		return l.Shl(r)
	case syntax.BinaryLogicalShiftRight:
		return l.Lshr(r)
	case syntax.BinaryArithmeticShiftRight:
		return l.Ashr(r)
	case syntax.BinaryEquality:
		return l.Eq(r)
	case syntax.BinaryInequality:
		return l.Neq(r)
	case syntax.BinaryCaseEquality:
		return l.CaseEq(r)
	case syntax.BinaryCaseInequality:
		return l.CaseNeq(r)
	case syntax.BinaryWildcardEquality:
		return l.WildcardEq(r)
	case syntax.BinaryWildcardInequality:
		return l.WildcardNeq(r)
	case syntax.BinaryLessThan:
		return l.Lt(r)
	case syntax.BinaryLessThanEqual:
		return l.Le(r)
	case syntax.BinaryGreaterThan:
		return l.Gt(r)
	case syntax.BinaryGreaterThanEqual:
		return l.Ge(r)
	default:
		return l
	}
}

// evalShortCircuit implements && and || without forcing evaluation of the
// right operand when the left already decides the outcome (§4.F — this
// also matters for budget accounting: a short-circuited right operand
// never ticks the step budget).
func evalShortCircuit(ctx *Context, n *binder.Binary) constval.Value {
	l, lok := Evaluate(ctx, n.Left).Int()
	if !lok {
		return constval.Bad()
	}
	lt, lknown := l.IsTruthy()
	if lknown {
		if n.Op == syntax.BinaryLogicalAnd && !lt {
			return constval.Integer(svint.FromUint64(1, false, true, 0))
		}
		if n.Op == syntax.BinaryLogicalOr && lt {
			return constval.Integer(svint.FromUint64(1, false, true, 1))
		}
	}
	r, rok := Evaluate(ctx, n.Right).Int()
	if !rok {
		return constval.Bad()
	}
	if n.Op == syntax.BinaryLogicalAnd {
		return constval.Integer(l.LogicalNot().LogicalNot().And(r.LogicalNot().LogicalNot()).ReduceOr())
	}
	return constval.Integer(l.LogicalNot().LogicalNot().Or(r.LogicalNot().LogicalNot()).ReduceOr())
}
