package binder

import (
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

// BindStatement dispatches on syntax.Kind to bind a single statement,
// mirroring bindSelfDetermined's switch-over-closed-enum shape.
func (b *Binder) BindStatement(n syntax.Node) Stmt {
	switch s := n.(type) {
	case *syntax.ExpressionStatement:
		return &ExpressionStmt{stmtBase{s}, b.bindSelfDetermined(s.Expr)}
	case *syntax.ConditionalStatement:
		return b.bindIf(s)
	case *syntax.CaseStatement:
		return b.bindCase(s)
	case *syntax.ReturnStatement:
		return b.bindReturn(s)
	case *syntax.BlockStatement:
		return b.bindBlock(s)
	case *syntax.ForLoopStatement:
		return b.bindForLoop(s)
	default:
		b.report(diag.UnsupportedConstruct, n.Loc(), n.Kind().String())
		return &ExpressionStmt{stmtBase{n}, newInvalid(n)}
	}
}

// BindStatementList binds a sequence of statements under the same scope,
// in order.
func (b *Binder) BindStatementList(nodes []syntax.Node) []Stmt {
	out := make([]Stmt, len(nodes))
	for i, n := range nodes {
		out[i] = b.BindStatement(n)
	}
	return out
}

func (b *Binder) bindIf(s *syntax.ConditionalStatement) Stmt {
	cond := b.BindAssignmentLike(s.Cond, svtype.Logic(1))
	then := b.BindStatement(s.Then)
	var els Stmt
	if s.Else != nil {
		els = b.BindStatement(s.Else)
	}
	return &IfStmt{stmtBase{s}, cond, then, els}
}

func (b *Binder) bindCase(s *syntax.CaseStatement) Stmt {
	selector := b.bindSelfDetermined(s.Selector)
	arms := make([]CaseArm, len(s.Items))
	for i, item := range s.Items {
		labels := make([]Expr, len(item.Labels))
		for j, l := range item.Labels {
			labels[j] = b.BindAssignmentLike(l, selector.Type())
		}
		arms[i] = CaseArm{Labels: labels, Stmt: b.BindStatement(item.Stmt)}
	}
	return &CaseStmt{stmtBase{s}, selector, arms, s.Flavor}
}

func (b *Binder) bindReturn(s *syntax.ReturnStatement) Stmt {
	if s.Value == nil {
		return &ReturnStmt{stmtBase{s}, nil}
	}
	return &ReturnStmt{stmtBase{s}, b.bindSelfDetermined(s.Value)}
}

// bindBlock binds a block statement, materializing its locals into a
// fresh child scope in order so later locals (and the statement list)
// may reference earlier ones, while earlier locals may never forward
// reference a later one (§4.D procedural visibility).
func (b *Binder) bindBlock(s *syntax.BlockStatement) Stmt {
	child := b.Scope.NewChildScope(nil)
	nb := b.withScope(child)

	locals := make([]LocalDecl, len(s.Locals))
	for i, decl := range s.Locals {
		t := nb.resolveTypeSyntax(decl.Type)
		sym := symbols.NewVariable(decl.Name, decl.Loc(), t)
		if !child.Declare(sym) {
			nb.report(diag.UnsupportedConstruct, decl.Loc(), "duplicate local "+decl.Name)
		}
		nb.declOrder = sym.DeclOrder()
		var init Expr
		if decl.Initializer != nil {
			init = nb.BindAssignmentLike(decl.Initializer, t)
		}
		locals[i] = LocalDecl{Symbol: sym, Init: init}
		nb.declOrder = sym.DeclOrder() + 1
	}

	stmts := nb.BindStatementList(s.Stmts)
	return &BlockStmt{stmtBase{s}, child, locals, stmts}
}

func (b *Binder) bindForLoop(s *syntax.ForLoopStatement) Stmt {
	child := b.Scope.NewChildScope(nil)
	nb := b.withScope(child)

	var init Stmt
	if s.Init != nil {
		if decl, ok := s.Init.(*syntax.DataDeclaration); ok {
			t := nb.resolveTypeSyntax(decl.Type)
			sym := symbols.NewVariable(decl.Name, decl.Loc(), t)
			child.Declare(sym)
			nb.declOrder = sym.DeclOrder() + 1
			var initExpr Expr
			if decl.Initializer != nil {
				initExpr = nb.BindAssignmentLike(decl.Initializer, t)
			}
			init = &BlockStmt{stmtBase{decl}, child, []LocalDecl{{Symbol: sym, Init: initExpr}}, nil}
		} else {
			init = nb.BindStatement(s.Init)
		}
	}

	var cond Expr
	if s.Cond != nil {
		cond = nb.BindAssignmentLike(s.Cond, svtype.Logic(1))
	}
	var step Expr
	if s.Step != nil {
		step = nb.bindSelfDetermined(s.Step)
	}
	body := nb.BindStatement(s.Body)
	return &ForLoopStmt{stmtBase{s}, init, cond, step, body}
}
