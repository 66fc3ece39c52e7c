package binder

import (
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

// Stmt is every bound statement node's common interface.
type Stmt interface {
	StmtSyntax() syntax.Node
}

type stmtBase struct{ syn syntax.Node }

func (s stmtBase) StmtSyntax() syntax.Node { return s.syn }

// ExpressionStmt evaluates Expr for its side effects (an assignment or a
// call).
type ExpressionStmt struct {
	stmtBase
	Expr Expr
}

// IfStmt is a bound conditional statement.
type IfStmt struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else branch
}

// CaseArm is one bound case-statement arm; an empty Labels means default.
type CaseArm struct {
	Labels []Expr
	Stmt   Stmt
}

// CaseStmt is a bound case/casez/casex statement.
type CaseStmt struct {
	stmtBase
	Selector Expr
	Arms     []CaseArm
	Flavor   syntax.CaseKind
}

// ReturnStmt is a bound return statement; Value is nil for a void return.
type ReturnStmt struct {
	stmtBase
	Value Expr
}

// LocalDecl is one bound local variable declaration inside a block: the
// materialized symbol plus its optional bound initializer.
type LocalDecl struct {
	Symbol *symbols.Symbol
	Init   Expr // nil if the declaration has no initializer
}

// BlockStmt is a bound block with its own nested scope; Locals are the
// block's local declarations, in declaration order.
type BlockStmt struct {
	stmtBase
	Scope  *symbols.Scope
	Locals []LocalDecl
	Stmts  []Stmt
}

// ForLoopStmt is a bound for-loop, evaluated under the evaluator's step
// budget (§9 open-question resolution).
type ForLoopStmt struct {
	stmtBase
	Init Stmt // nil, an ExpressionStmt, or a local-declaration initializer
	Cond Expr // nil means unconditional (budget-bounded)
	Step Expr // nil means no per-iteration step expression
	Body Stmt
}
