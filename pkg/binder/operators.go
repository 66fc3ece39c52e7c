package binder

import (
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/syntax"
)

func isReductionOrLogical(op syntax.UnaryOp) bool {
	switch op {
	case syntax.UnaryReduceAnd, syntax.UnaryReduceNand, syntax.UnaryReduceOr,
		syntax.UnaryReduceNor, syntax.UnaryReduceXor, syntax.UnaryReduceXnor,
		syntax.UnaryLogicalNot:
		return true
	default:
		return false
	}
}

// bindUnary binds a unary operator; arithmetic/bitwise operators are
// self-determined (result shares the operand's shape), reduction and
// logical-not operators always yield a single bit, four-state only when
// the operand is four-state (§4.E).
func (b *Binder) bindUnary(e *syntax.UnaryExpression) Expr {
	operand := b.bindSelfDetermined(e.Operand)
	if operand.BoundKind() == BoundInvalid {
		return newInvalid(e)
	}
	if !operand.Type().IsNumeric() {
		b.report(diag.TypeMismatch, e.Loc(), "numeric operand required", operand.Type().String())
		return newInvalid(e)
	}
	var result *svtype.Type
	if isReductionOrLogical(e.Op) {
		result = svtype.Logic(1)
		if !operand.Type().FourState() {
			result = svtype.Bit(1)
		}
	} else {
		result = operand.Type()
	}
	return &Unary{exprBase{BoundUnary, result, e}, e.Op, operand}
}

func isRelational(op syntax.BinaryOp) bool {
	switch op {
	case syntax.BinaryEquality, syntax.BinaryInequality, syntax.BinaryCaseEquality,
		syntax.BinaryCaseInequality, syntax.BinaryWildcardEquality, syntax.BinaryWildcardInequality,
		syntax.BinaryLessThan, syntax.BinaryLessThanEqual, syntax.BinaryGreaterThan,
		syntax.BinaryGreaterThanEqual, syntax.BinaryLogicalAnd, syntax.BinaryLogicalOr:
		return true
	default:
		return false
	}
}

func isShift(op syntax.BinaryOp) bool {
	switch op {
	case syntax.BinaryLogicalShiftLeft, syntax.BinaryLogicalShiftRight, syntax.BinaryArithmeticShiftRight:
		return true
	default:
		return false
	}
}

func forcesFourState(op syntax.BinaryOp) bool {
	return op == syntax.BinaryDivide || op == syntax.BinaryMod
}

// isIncDec reports whether op is a pre/post increment or decrement: its
// operand is a storage location the evaluator writes back to (§4.F), not
// an ordinary self-determined operand, so it must never be rebuilt or
// wrapped in a Conversion by context-determined widening.
func isIncDec(op syntax.UnaryOp) bool {
	switch op {
	case syntax.UnaryPreincrement, syntax.UnaryPredecrement,
		syntax.UnaryPostincrement, syntax.UnaryPostdecrement:
		return true
	default:
		return false
	}
}

// bindBinary binds a binary operator application. Relational and logical
// operators are self-determined to a single bit regardless of operand
// width; shifts take their type from the left operand alone (the LRM:
// the shift amount never affects the result's context); everything else
// computes the operators' common type (§4.E).
func (b *Binder) bindBinary(e *syntax.BinaryExpression) Expr {
	left := b.bindSelfDetermined(e.Left)
	right := b.bindSelfDetermined(e.Right)
	if left.BoundKind() == BoundInvalid || right.BoundKind() == BoundInvalid {
		return newInvalid(e)
	}
	if !left.Type().IsNumeric() || !right.Type().IsNumeric() {
		b.report(diag.TypeMismatch, e.Loc(), "numeric operands required")
		return newInvalid(e)
	}

	var result *svtype.Type
	switch {
	case isRelational(e.Op):
		result = svtype.Logic(1)
		if !left.Type().FourState() && !right.Type().FourState() {
			result = svtype.Bit(1)
		}
	case isShift(e.Op):
		result = left.Type()
	default:
		result = svtype.BinaryOperatorType(left.Type(), right.Type(), forcesFourState(e.Op))
	}

	if !isRelational(e.Op) && !isShift(e.Op) {
		left = b.convertTo(left, result)
		right = b.convertTo(right, result)
	}
	return &Binary{exprBase{BoundBinary, result, e}, e.Op, left, right}
}

// bindConditional binds `cond ? a : b`: the predicate is self-determined
// to any numeric type (non-zero is true, any unknown bit is ambiguous),
// the branches share the common type of the two operand types, computed
// the same way a binary operator's common type is (§4.E).
func (b *Binder) bindConditional(e *syntax.ConditionalExpression) Expr {
	pred := b.bindSelfDetermined(e.Predicate)
	whenTrue := b.bindSelfDetermined(e.WhenTrue)
	whenFalse := b.bindSelfDetermined(e.WhenFalse)
	if pred.BoundKind() == BoundInvalid || whenTrue.BoundKind() == BoundInvalid || whenFalse.BoundKind() == BoundInvalid {
		return newInvalid(e)
	}
	var result *svtype.Type
	if whenTrue.Type().IsNumeric() && whenFalse.Type().IsNumeric() {
		result = svtype.BinaryOperatorType(whenTrue.Type(), whenFalse.Type(), false)
		whenTrue = b.convertTo(whenTrue, result)
		whenFalse = b.convertTo(whenFalse, result)
	} else if svtype.Equivalent(whenTrue.Type(), whenFalse.Type()) {
		result = whenTrue.Type()
	} else {
		b.report(diag.TypeMismatch, e.Loc(), whenTrue.Type().String(), whenFalse.Type().String())
		return newInvalid(e)
	}
	return &Conditional{exprBase{BoundConditional, result, e}, pred, whenTrue, whenFalse}
}

// bindConcat binds `{a, b, ...}`: every operand must be self-determined
// and packable (integral or packed array); the result's width is the sum
// of operand widths and is four-state iff any operand is (§4.E).
func (b *Binder) bindConcat(e *syntax.ConcatenationExpression) Expr {
	operands := make([]Expr, len(e.Operands))
	var width uint32
	four := false
	ok := true
	for i, o := range e.Operands {
		bound := b.bindSelfDetermined(o)
		operands[i] = bound
		if bound.BoundKind() == BoundInvalid {
			ok = false
			continue
		}
		if !bound.Type().IsIntegral() {
			b.report(diag.TypeMismatch, o.Loc(), "concatenation operand must be integral", bound.Type().String())
			ok = false
			continue
		}
		width += bound.Type().Width()
		four = four || bound.Type().FourState()
	}
	if !ok {
		return newInvalid(e)
	}
	result := svtype.Logic(width)
	if !four {
		result = svtype.Bit(width)
	}
	return &Concat{exprBase{BoundConcat, result, e}, operands}
}

// bindReplication binds `{count{operand}}`. Count is bound against integer
// (its actual value is a constant-evaluation-time concern).
func (b *Binder) bindReplication(e *syntax.ReplicationExpression) Expr {
	count := b.BindAssignmentLike(e.Count, svtype.Integer())
	operand := b.bindSelfDetermined(e.Operand)
	if operand.BoundKind() == BoundInvalid || !operand.Type().IsIntegral() {
		b.report(diag.TypeMismatch, e.Operand.Loc(), "replication operand must be integral")
		return newInvalid(e)
	}
	// Width is only staticly known if count happens to be a literal; the
	// evaluator recomputes the true width once count is folded and
	// diagnoses NotConstant if it isn't.
	width := operand.Type().Width()
	if lit, ok := count.(*Literal); ok && lit.IsInteger {
		if n, err := parseStaticWidth(lit); err == nil {
			width = operand.Type().Width() * n
		}
	}
	result := svtype.Logic(maxu(width, 1))
	if !operand.Type().FourState() {
		result = svtype.Bit(maxu(width, 1))
	}
	return &Replication{exprBase{BoundReplication, result, e}, count, operand}
}

// bindAssignment binds `lhs = rhs` or a compound assignment. lhs is bound
// self-determined first to fix the target type, then rhs is bound under
// that type as context (§4.E, §4.F — lvalue-ness itself is an evaluator
// concern: the binder only fixes shape, evalLValue resolves the write
// path at fold time).
func (b *Binder) bindAssignment(e *syntax.AssignmentExpression) Expr {
	lhs := b.bindSelfDetermined(e.Left)
	if lhs.BoundKind() == BoundInvalid {
		return newInvalid(e)
	}
	if !isLValueShaped(lhs) {
		b.report(diag.InvalidLValue, e.Left.Loc())
		return newInvalid(e)
	}
	rhs := b.BindAssignmentLike(e.Right, lhs.Type())
	return &Assignment{exprBase{BoundAssignment, lhs.Type(), e}, lhs, rhs, e.Compound, e.Op}
}

// isLValueShaped rejects bound-expression kinds that can never be write
// targets (literals, calls, conditionals); the evaluator still performs
// the authoritative lvalue-path check since a Name could resolve to a
// Parameter, which is not writable even though it is name-shaped.
func isLValueShaped(e Expr) bool {
	switch e.BoundKind() {
	case BoundName, BoundMemberAccess, BoundElementSelect, BoundRangeSelect:
		return true
	default:
		return false
	}
}
