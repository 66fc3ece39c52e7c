package eval

import (
	"github.com/oisee/svsema/pkg/binder"
	"github.com/oisee/svsema/pkg/constval"
)

// evalAssignment folds `lhs = rhs` or a compound assignment. For a plain
// assignment, Right is already the binder's context-converted value; for
// a compound assignment the binder left the raw "lhs op rhs" expansion to
// the evaluator, since folding lhs's current value is itself an
// evaluation-time concern (§4.F).
func evalAssignment(ctx *Context, n *binder.Assignment) constval.Value {
	curLeft, write, ok := evalLValue(ctx, n.Left)
	if !ok {
		return constval.Bad()
	}
	rightVal := Evaluate(ctx, n.Right)
	if rightVal.Bad() {
		return constval.Bad()
	}

	result := rightVal
	if n.Compound {
		l, lok := curLeft.Int()
		r, rok := rightVal.Int()
		if !lok || !rok {
			return constval.Bad()
		}
		result = constval.Integer(applyBinaryOp(ctx, n.Op, l, r, n.Syntax().Loc()))
		result = convertValue(n.Type(), result)
	}
	write(result)
	return result
}
