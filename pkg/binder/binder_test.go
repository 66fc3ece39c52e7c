package binder

import (
	"testing"

	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

func loc(line int) diag.Location { return diag.Location{File: "t.sv", Line: line} }

func newTestBinder() (*Binder, *symbols.Scope, *diag.Sink) {
	scope := symbols.NewRootScope(nil)
	sink := diag.NewSink()
	return New(scope, sink), scope, sink
}

func TestBindIntegerLiteralWidthAndSign(t *testing.T) {
	b, _, sink := newTestBinder()

	sized := syntax.NewIntegerLiteral(loc(1), 8, 16, "FF", false)
	expr := b.BindExpression(sized)
	if expr.Type().Width() != 8 || expr.Type().Signed() {
		t.Fatalf("sized literal type = %v, want 8-bit unsigned", expr.Type())
	}

	unsized := syntax.NewIntegerLiteral(loc(2), 0, 10, "5", false)
	expr2 := b.BindExpression(unsized)
	if expr2.Type().Width() != 32 || !expr2.Type().Signed() {
		t.Fatalf("unsized literal type = %v, want 32-bit signed", expr2.Type())
	}

	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestBindIdentifierResolvesDeclaredVariable(t *testing.T) {
	b, scope, sink := newTestBinder()
	scope.Declare(symbols.NewVariable("clk", loc(1), svtype.Logic(1)))

	expr := b.BindExpression(syntax.NewIdentifierName(loc(2), "clk"))
	if expr.BoundKind() != BoundName {
		t.Fatalf("BoundKind() = %v, want BoundName", expr.BoundKind())
	}
	if !svtype.Equivalent(expr.Type(), svtype.Logic(1)) {
		t.Fatalf("type = %v, want logic[1]", expr.Type())
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestBindIdentifierUndeclaredReportsDiagnostic(t *testing.T) {
	b, _, sink := newTestBinder()
	expr := b.BindExpression(syntax.NewIdentifierName(loc(1), "nope"))
	if expr.BoundKind() != BoundInvalid {
		t.Fatalf("BoundKind() = %v, want BoundInvalid", expr.BoundKind())
	}
	if sink.Len() != 1 || sink.Diagnostics()[0].Code != diag.UndeclaredIdentifier {
		t.Fatalf("expected one UndeclaredIdentifier diagnostic, got %v", sink.Diagnostics())
	}
}

func TestBindBinaryAddComputesCommonType(t *testing.T) {
	b, scope, sink := newTestBinder()
	scope.Declare(symbols.NewVariable("a", loc(1), svtype.Integral("", 8, false, false)))
	scope.Declare(symbols.NewVariable("b", loc(1), svtype.Integral("", 16, false, true)))

	add := syntax.NewBinary(loc(2), syntax.BinaryAdd,
		syntax.NewIdentifierName(loc(2), "a"),
		syntax.NewIdentifierName(loc(2), "b"))
	expr := b.BindExpression(add)
	if expr.Type().Width() != 16 || !expr.Type().FourState() {
		t.Fatalf("sum type = %v, want 16-bit four-state", expr.Type())
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestBindBinaryDivideForcesFourState(t *testing.T) {
	b, scope, _ := newTestBinder()
	scope.Declare(symbols.NewVariable("a", loc(1), svtype.Bit(8)))
	scope.Declare(symbols.NewVariable("b", loc(1), svtype.Bit(8)))

	div := syntax.NewBinary(loc(2), syntax.BinaryDivide,
		syntax.NewIdentifierName(loc(2), "a"),
		syntax.NewIdentifierName(loc(2), "b"))
	expr := b.BindExpression(div)
	if !expr.Type().FourState() {
		t.Fatalf("division result = %v, want forced four-state", expr.Type())
	}
}

func TestBindRelationalIsAlwaysOneBit(t *testing.T) {
	b, scope, _ := newTestBinder()
	scope.Declare(symbols.NewVariable("a", loc(1), svtype.Int()))
	scope.Declare(symbols.NewVariable("b", loc(1), svtype.Int()))

	lt := syntax.NewBinary(loc(2), syntax.BinaryLessThan,
		syntax.NewIdentifierName(loc(2), "a"),
		syntax.NewIdentifierName(loc(2), "b"))
	expr := b.BindExpression(lt)
	if expr.Type().Width() != 1 {
		t.Fatalf("relational result width = %d, want 1", expr.Type().Width())
	}
}

func TestBindAssignmentRejectsNonLValue(t *testing.T) {
	b, scope, sink := newTestBinder()
	scope.Declare(symbols.NewVariable("x", loc(1), svtype.Int()))

	asn := syntax.NewAssignment(loc(2),
		syntax.NewIntegerLiteral(loc(2), 0, 10, "1", false),
		syntax.NewIdentifierName(loc(2), "x"))
	expr := b.BindExpression(asn)
	if expr.BoundKind() != BoundInvalid {
		t.Fatal("expected assignment to a literal to be rejected")
	}
	foundInvalidLValue := false
	for _, d := range sink.Diagnostics() {
		if d.Code == diag.InvalidLValue {
			foundInvalidLValue = true
		}
	}
	if !foundInvalidLValue {
		t.Fatalf("expected InvalidLValue diagnostic, got %v", sink.Diagnostics())
	}
}

func TestBindAssignmentInsertsImplicitConversion(t *testing.T) {
	b, scope, sink := newTestBinder()
	scope.Declare(symbols.NewVariable("wide", loc(1), svtype.Integral("", 16, false, false)))

	asn := syntax.NewAssignment(loc(2),
		syntax.NewIdentifierName(loc(2), "wide"),
		syntax.NewIntegerLiteral(loc(2), 4, 10, "9", false))
	expr := b.BindExpression(asn)
	a, ok := expr.(*Assignment)
	if !ok {
		t.Fatalf("expected *Assignment, got %T", expr)
	}
	if _, ok := a.Right.(*Conversion); !ok {
		t.Fatalf("expected implicit Conversion wrapping narrower rhs, got %T", a.Right)
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestBindSystemCallClog2(t *testing.T) {
	b, _, sink := newTestBinder()
	call := syntax.NewInvocation(loc(1), "$clog2", syntax.NewIntegerLiteral(loc(1), 0, 10, "256", false))
	expr := b.BindExpression(call)
	sc, ok := expr.(*SystemCall)
	if !ok {
		t.Fatalf("expected *SystemCall, got %T", expr)
	}
	if sc.Name != SysClog2 {
		t.Fatalf("Name = %v, want SysClog2", sc.Name)
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestBindSystemCallBitsCapturesArgType(t *testing.T) {
	b, scope, _ := newTestBinder()
	scope.Declare(symbols.NewVariable("bus", loc(1), svtype.Logic(32)))
	call := syntax.NewInvocation(loc(2), "$bits", syntax.NewIdentifierName(loc(2), "bus"))
	expr := b.BindExpression(call)
	sc, ok := expr.(*SystemCall)
	if !ok {
		t.Fatalf("expected *SystemCall, got %T", expr)
	}
	if sc.ArgType == nil || sc.ArgType.Width() != 32 {
		t.Fatalf("ArgType = %v, want 32-bit", sc.ArgType)
	}
}

func TestBindBlockStatementDeclaresLocalsInOrder(t *testing.T) {
	b, _, sink := newTestBinder()
	decl := syntax.NewDataDeclaration(loc(1), syntax.Predefined("int", true, nil, nil), "i",
		syntax.NewIntegerLiteral(loc(1), 0, 10, "0", false))
	body := syntax.NewBlockStatement(loc(1), []*syntax.DataDeclaration{decl},
		syntax.NewExpressionStatement(loc(2), syntax.NewAssignment(loc(2),
			syntax.NewIdentifierName(loc(2), "i"),
			syntax.NewIntegerLiteral(loc(2), 0, 10, "1", false))))

	stmt := b.BindStatement(body)
	block, ok := stmt.(*BlockStmt)
	if !ok {
		t.Fatalf("expected *BlockStmt, got %T", stmt)
	}
	if len(block.Locals) != 1 || block.Locals[0].Symbol.Name() != "i" {
		t.Fatalf("unexpected locals: %+v", block.Locals)
	}
	if block.Locals[0].Init == nil {
		t.Fatal("expected initializer to be bound")
	}
	if len(block.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Stmts))
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestBindForwardReferenceWithinBlockFails(t *testing.T) {
	b, _, sink := newTestBinder()
	declA := syntax.NewDataDeclaration(loc(1), syntax.Predefined("int", true, nil, nil), "a",
		syntax.NewIdentifierName(loc(1), "b")) // forward reference: b not yet declared
	declB := syntax.NewDataDeclaration(loc(2), syntax.Predefined("int", true, nil, nil), "b",
		syntax.NewIntegerLiteral(loc(2), 0, 10, "1", false))
	body := syntax.NewBlockStatement(loc(1), []*syntax.DataDeclaration{declA, declB})

	b.BindStatement(body)
	found := false
	for _, d := range sink.Diagnostics() {
		if d.Code == diag.UndeclaredIdentifier {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected forward reference to report UndeclaredIdentifier, got %v", sink.Diagnostics())
	}
}

func TestBindIfConvertsPredicateToOneBit(t *testing.T) {
	b, scope, sink := newTestBinder()
	scope.Declare(symbols.NewVariable("en", loc(1), svtype.Logic(8)))

	ifStmt := syntax.NewConditionalStatement(loc(2),
		syntax.NewIdentifierName(loc(2), "en"),
		syntax.NewExpressionStatement(loc(3), syntax.NewIdentifierName(loc(3), "en")),
		nil)

	stmt := b.BindStatement(ifStmt)
	bound, ok := stmt.(*IfStmt)
	if !ok {
		t.Fatalf("expected *IfStmt, got %T", stmt)
	}
	if bound.Cond.Type().Width() != 1 {
		t.Fatalf("if predicate type = %v, want 1-bit", bound.Cond.Type())
	}
	if _, ok := bound.Cond.(*Conversion); !ok {
		t.Fatalf("expected implicit Conversion wrapping multi-bit predicate, got %T", bound.Cond)
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestBindCaseStatementBindsLabelsAgainstSelectorType(t *testing.T) {
	b, scope, sink := newTestBinder()
	scope.Declare(symbols.NewVariable("sel", loc(1), svtype.Logic(2)))

	item := syntax.CaseItem{
		Labels: []syntax.Node{syntax.NewIntegerLiteral(loc(2), 2, 2, "01", false)},
		Stmt:   syntax.NewExpressionStatement(loc(2), syntax.NewIdentifierName(loc(2), "sel")),
	}
	cs := syntax.NewCaseStatement(loc(1), syntax.NewIdentifierName(loc(1), "sel"), syntax.CaseNormal, item)

	stmt := b.BindStatement(cs)
	bound, ok := stmt.(*CaseStmt)
	if !ok {
		t.Fatalf("expected *CaseStmt, got %T", stmt)
	}
	if len(bound.Arms) != 1 || len(bound.Arms[0].Labels) != 1 {
		t.Fatalf("unexpected arms: %+v", bound.Arms)
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}
