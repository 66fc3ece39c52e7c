package eval

import (
	"github.com/oisee/svsema/pkg/binder"
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svint"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/syntax"
)

// ctrlKind discriminates how a statement's execution completed: falling
// through normally, or unwinding with a return value. The evaluator has
// no break/continue constructs to model (§9 Non-goals), so this is the
// whole set.
type ctrlKind uint8

const (
	ctrlNormal ctrlKind = iota
	ctrlReturn
)

type ctrl struct {
	kind  ctrlKind
	value constval.Value
}

var normalCtrl = ctrl{kind: ctrlNormal}

// execStmts runs a statement sequence, stopping early on the first
// non-normal control signal (a return unwinding out of the block).
func execStmts(ctx *Context, stmts []binder.Stmt) ctrl {
	for _, s := range stmts {
		c := execStmt(ctx, s)
		if c.kind != ctrlNormal {
			return c
		}
	}
	return normalCtrl
}

// execStmt executes one bound statement, dispatching on its concrete type
// the same way Evaluate dispatches on BoundKind.
func execStmt(ctx *Context, s binder.Stmt) ctrl {
	if !ctx.tick(s.StmtSyntax().Loc()) {
		return normalCtrl
	}
	switch n := s.(type) {
	case *binder.ExpressionStmt:
		Evaluate(ctx, n.Expr)
		return normalCtrl
	case *binder.IfStmt:
		return execIf(ctx, n)
	case *binder.CaseStmt:
		return execCase(ctx, n)
	case *binder.ReturnStmt:
		return execReturn(ctx, n)
	case *binder.BlockStmt:
		return execBlock(ctx, n)
	case *binder.ForLoopStmt:
		return execForLoop(ctx, n)
	default:
		ctx.Sink.Report(diag.UnsupportedConstruct, s.StmtSyntax().Loc())
		return normalCtrl
	}
}

func execIf(ctx *Context, n *binder.IfStmt) ctrl {
	condVal, ok := Evaluate(ctx, n.Cond).Int()
	if !ok {
		return normalCtrl
	}
	truthy, known := condVal.IsTruthy()
	if !known {
		// An ambiguous (X/Z) condition is treated as false per common
		// elaboration-time constant-folding practice: neither branch's side
		// effects are knowably required, so neither runs.
		return normalCtrl
	}
	if truthy {
		return execStmt(ctx, n.Then)
	}
	if n.Else != nil {
		return execStmt(ctx, n.Else)
	}
	return normalCtrl
}

func execCase(ctx *Context, n *binder.CaseStmt) ctrl {
	selVal, ok := Evaluate(ctx, n.Selector).Int()
	if !ok {
		return normalCtrl
	}
	var defaultArm *binder.CaseArm
	for i := range n.Arms {
		arm := &n.Arms[i]
		if len(arm.Labels) == 0 {
			defaultArm = arm
			continue
		}
		for _, label := range arm.Labels {
			labelVal, ok := Evaluate(ctx, label).Int()
			if !ok {
				continue
			}
			if caseLabelMatches(n.Flavor, selVal, labelVal) {
				return execStmt(ctx, arm.Stmt)
			}
		}
	}
	if defaultArm != nil {
		return execStmt(ctx, defaultArm.Stmt)
	}
	return normalCtrl
}

// caseLabelMatches applies the matching rule for the statement's flavor:
// plain case uses bit-exact '===' equality (§8 scenario 5 — a selector
// containing X only matches a label with X in the same position, never
// the merely-numerically-equal arm); casez additionally treats Z in the
// selector or the label as a wildcard (X still matches only X), and casex
// treats both X and Z as wildcards via '==?'.
func caseLabelMatches(flavor syntax.CaseKind, sel, label svint.SVInt) bool {
	var result svint.SVInt
	switch flavor {
	case syntax.CaseZ:
		for i := uint32(0); i < sel.Width(); i++ {
			if sel.BitIsZ(i) || label.BitIsZ(i) {
				continue
			}
			selX := sel.BitIsX(i)
			if selX != label.BitIsX(i) {
				return false
			}
			if !selX && sel.BitSelect(i).Uint64() != label.BitSelect(i).Uint64() {
				return false
			}
		}
		return true
	case syntax.CaseX:
		result = sel.WildcardEq(label)
	default:
		result = sel.CaseEq(label)
	}
	truthy, known := result.IsTruthy()
	return known && truthy
}

func execReturn(ctx *Context, n *binder.ReturnStmt) ctrl {
	if n.Value == nil {
		return ctrl{kind: ctrlReturn, value: constval.Null()}
	}
	return ctrl{kind: ctrlReturn, value: Evaluate(ctx, n.Value)}
}

func execBlock(ctx *Context, n *binder.BlockStmt) ctrl {
	for _, local := range n.Locals {
		var v constval.Value
		if local.Init != nil {
			v = Evaluate(ctx, local.Init)
		} else {
			v = zeroValueFor(local.Symbol.Type())
		}
		ctx.set(local.Symbol, v)
	}
	return execStmts(ctx, n.Stmts)
}

// zeroValueFor is the starting value of a block local declared without an
// initializer: zero for integral types, 0.0 for reals, null otherwise.
func zeroValueFor(t *svtype.Type) constval.Value {
	switch {
	case t.IsIntegral():
		return constval.Integer(svint.FromUint64(t.Width(), t.Signed(), t.FourState(), 0))
	case t.Kind() == svtype.KindShortReal:
		return constval.ShortReal(0)
	case t.Kind() == svtype.KindReal:
		return constval.Real(0)
	default:
		return constval.Null()
	}
}

func execForLoop(ctx *Context, n *binder.ForLoopStmt) ctrl {
	if n.Init != nil {
		if c := execStmt(ctx, n.Init); c.kind != ctrlNormal {
			return c
		}
	}
	for {
		if !ctx.tick(n.StmtSyntax().Loc()) {
			return normalCtrl
		}
		if n.Cond != nil {
			condVal, ok := Evaluate(ctx, n.Cond).Int()
			if !ok {
				return normalCtrl
			}
			truthy, known := condVal.IsTruthy()
			if !known || !truthy {
				return normalCtrl
			}
		}
		if c := execStmt(ctx, n.Body); c.kind != ctrlNormal {
			return c
		}
		if n.Step != nil {
			Evaluate(ctx, n.Step)
		}
	}
}
