package syntax

import (
	"testing"

	"github.com/oisee/svsema/pkg/diag"
)

func loc(line int) diag.Location { return diag.Location{File: "t.sv", Line: line, Column: 1} }

func TestLiteralNodesReportKindAndLoc(t *testing.T) {
	il := NewIntegerLiteral(loc(1), 8, 16, "FF", false)
	if il.Kind() != KindIntegerLiteral {
		t.Fatalf("Kind() = %v, want KindIntegerLiteral", il.Kind())
	}
	if il.Loc().Line != 1 {
		t.Fatalf("Loc().Line = %d, want 1", il.Loc().Line)
	}
	if il.Width != 8 || il.Base != 16 || il.Digits != "FF" {
		t.Fatalf("unexpected literal fields: %+v", il)
	}

	rl := NewRealLiteral(loc(2), 3.25, false)
	if rl.Kind() != KindRealLiteral || rl.Value != 3.25 {
		t.Fatalf("unexpected real literal: %+v", rl)
	}

	sl := NewStringLiteral(loc(3), "hi")
	if sl.Kind() != KindStringLiteral || sl.Value != "hi" {
		t.Fatalf("unexpected string literal: %+v", sl)
	}

	if (NewNullLiteral(loc(4))).Kind() != KindNullLiteral {
		t.Fatal("null literal kind mismatch")
	}
}

func TestNamesAndSelects(t *testing.T) {
	id := NewIdentifierName(loc(1), "foo")
	if id.Kind() != KindIdentifierName || id.Name != "foo" {
		t.Fatalf("unexpected identifier: %+v", id)
	}

	sn := NewScopedName(loc(1), "$unit", "pkg", "x")
	if sn.Kind() != KindScopedName || sn.Upward != "$unit" || len(sn.Segments) != 2 {
		t.Fatalf("unexpected scoped name: %+v", sn)
	}

	ma := NewMemberAccess(loc(1), id, "field")
	if ma.Kind() != KindMemberAccess || ma.Value != Node(id) || ma.Field != "field" {
		t.Fatalf("unexpected member access: %+v", ma)
	}

	es := NewElementSelect(loc(1), id, NewIntegerLiteral(loc(1), 0, 10, "3", false))
	if es.Kind() != KindElementSelect {
		t.Fatalf("unexpected element select kind: %v", es.Kind())
	}

	rs := NewRangeSelect(loc(1), id, NewIntegerLiteral(loc(1), 0, 10, "7", false), NewIntegerLiteral(loc(1), 0, 10, "0", false), RangeSimple)
	if rs.Kind() != KindRangeSelect || rs.Flavor != RangeSimple {
		t.Fatalf("unexpected range select: %+v", rs)
	}
}

func TestOperatorNodes(t *testing.T) {
	a := NewIntegerLiteral(loc(1), 4, 10, "3", false)
	b := NewIntegerLiteral(loc(1), 4, 10, "5", false)

	un := NewUnary(loc(1), UnaryMinus, a)
	if un.Kind() != KindUnaryExpression || un.Op != UnaryMinus {
		t.Fatalf("unexpected unary: %+v", un)
	}

	bin := NewBinary(loc(1), BinaryAdd, a, b)
	if bin.Kind() != KindBinaryExpression || bin.Left != Node(a) || bin.Right != Node(b) {
		t.Fatalf("unexpected binary: %+v", bin)
	}

	cond := NewConditional(loc(1), a, b, a)
	if cond.Kind() != KindConditionalExpression {
		t.Fatalf("unexpected conditional kind: %v", cond.Kind())
	}

	cat := NewConcatenation(loc(1), a, b, a)
	if cat.Kind() != KindConcatenationExpression || len(cat.Operands) != 3 {
		t.Fatalf("unexpected concatenation: %+v", cat)
	}

	rep := NewReplication(loc(1), NewIntegerLiteral(loc(1), 0, 10, "2", false), a)
	if rep.Kind() != KindReplicationExpression {
		t.Fatalf("unexpected replication kind: %v", rep.Kind())
	}

	asn := NewAssignment(loc(1), a, b)
	if asn.Kind() != KindAssignmentExpression || asn.Compound {
		t.Fatalf("unexpected assignment: %+v", asn)
	}

	casn := NewCompoundAssignment(loc(1), BinaryAdd, a, b)
	if !casn.Compound || casn.Op != BinaryAdd {
		t.Fatalf("unexpected compound assignment: %+v", casn)
	}

	inv := NewInvocation(loc(1), "$clog2", a)
	if inv.Kind() != KindInvocationExpression || inv.Name != "$clog2" || len(inv.Args) != 1 {
		t.Fatalf("unexpected invocation: %+v", inv)
	}

	conv := NewConversion(loc(1), Predefined("int", true, nil, nil), a)
	if conv.Kind() != KindConversionExpression || conv.Target.Predefined != "int" {
		t.Fatalf("unexpected conversion: %+v", conv)
	}
}

func TestStatementAndDeclNodes(t *testing.T) {
	cond := NewIdentifierName(loc(1), "ok")
	ret := NewReturnStatement(loc(2), NewIntegerLiteral(loc(2), 0, 10, "1", false))
	ifStmt := NewConditionalStatement(loc(1), cond, ret, nil)
	if ifStmt.Kind() != KindConditionalStatement || ifStmt.Else != nil {
		t.Fatalf("unexpected conditional statement: %+v", ifStmt)
	}

	item := CaseItem{Labels: []Node{NewIntegerLiteral(loc(3), 0, 10, "0", false)}, Stmt: ret}
	cs := NewCaseStatement(loc(3), cond, CaseNormal, item)
	if cs.Kind() != KindCaseStatement || len(cs.Items) != 1 {
		t.Fatalf("unexpected case statement: %+v", cs)
	}

	decl := NewDataDeclaration(loc(1), Predefined("logic", false, nil, nil), "x", nil)
	block := NewBlockStatement(loc(1), []*DataDeclaration{decl}, ifStmt, ret)
	if block.Kind() != KindBlockStatement || len(block.Locals) != 1 || len(block.Stmts) != 2 {
		t.Fatalf("unexpected block: %+v", block)
	}

	forLoop := NewForLoopStatement(loc(1), nil, cond, nil, block)
	if forLoop.Kind() != KindForLoopStatement || forLoop.Cond != Node(cond) {
		t.Fatalf("unexpected for loop: %+v", forLoop)
	}

	pd := NewParameterDeclaration(loc(1), Predefined("int", true, nil, nil), "WIDTH", NewIntegerLiteral(loc(1), 0, 10, "8", false), true)
	if pd.Kind() != KindParameterDeclaration || !pd.Local {
		t.Fatalf("unexpected parameter declaration: %+v", pd)
	}

	formal := NewFormalArgument(loc(1), Predefined("int", true, nil, nil), "n", DirIn, nil)
	if formal.Kind() != KindFormalArgument || formal.Direction != DirIn {
		t.Fatalf("unexpected formal argument: %+v", formal)
	}

	fn := NewFunctionDeclaration(loc(1), "clog2_demo", Predefined("int", true, nil, nil), []*FormalArgument{formal}, block)
	if fn.Kind() != KindFunctionDeclaration || fn.Name != "clog2_demo" || len(fn.Formals) != 1 || len(fn.Body) != 1 {
		t.Fatalf("unexpected function declaration: %+v", fn)
	}
}

func TestTypeSyntaxBuilders(t *testing.T) {
	left := NewIntegerLiteral(loc(1), 0, 10, "7", false)
	right := NewIntegerLiteral(loc(1), 0, 10, "0", false)

	pre := Predefined("logic", false, left, right)
	if pre.Kind != TypeSyntaxPredefined || pre.Predefined != "logic" || pre.Left != Node(left) || pre.Right != Node(right) {
		t.Fatalf("unexpected predefined type syntax: %+v", pre)
	}

	named := Named("color_e")
	if named.Kind != TypeSyntaxNamed || named.Name != "color_e" {
		t.Fatalf("unexpected named type syntax: %+v", named)
	}
}

func TestKindStringIsStable(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{KindInvalid, "Invalid"},
		{KindIntegerLiteral, "IntegerLiteral"},
		{KindFunctionDeclaration, "FunctionDeclaration"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}
