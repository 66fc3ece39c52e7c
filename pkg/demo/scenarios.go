// Package demo builds a handful of canned syntax trees — the same ones
// named as concrete scenarios in the core's design notes — and runs them
// through the binder and evaluator. It exists for the CLI: something a
// user can point at without first writing a parser front end.
package demo

import (
	"fmt"

	"github.com/oisee/svsema/pkg/binder"
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/eval"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

// Scenario is one canned demonstration: a name, a one-line description of
// the SystemVerilog it stands in for, and a thunk that binds and evaluates
// it against a fresh scope, sink, and evaluation context.
type Scenario struct {
	Name   string
	Source string // the SystemVerilog fragment being modeled
	Want   string // the expected result, for selftest comparison
	Build  func() (result string, diags []diag.Diagnostic)
}

func loc(line int) diag.Location { return diag.Location{File: "demo.sv", Line: line} }

// formatValue renders a constant value the way a user would write it back
// as a literal: width'd<decimal> when every bit is known, width'b<bits>
// when any bit carries X/Z.
func formatValue(v constval.Value) string {
	sv, ok := v.Int()
	if !ok {
		return v.String()
	}
	if sv.HasUnknown() {
		return fmt.Sprintf("%d'b%s", sv.Width(), sv.FormatDigits(2))
	}
	return fmt.Sprintf("%d'd%d", sv.Width(), sv.Uint64())
}

// Scenarios returns the full canned set, in a stable order.
func Scenarios() []Scenario {
	return []Scenario{
		addWithUnknownBits(),
		bitsOfParameterExpression(),
		userFunctionCall(),
		rangeSelectAssignment(),
		caseEqualityMatch(),
		divisionByZero(),
	}
}

// addWithUnknownBits models: 4'b10x0 + 4'b0001 -- an unknown input bit
// forces the whole sum to all-X at the common width.
func addWithUnknownBits() Scenario {
	return Scenario{
		Name:   "add-unknown",
		Source: "4'b10x0 + 4'b0001",
		Want:   "4'bxxxx",
		Build: func() (string, []diag.Diagnostic) {
			scope := symbols.NewRootScope(nil)
			sink := diag.NewSink()
			b := binder.New(scope, sink)
			ctx := eval.NewContext(sink)

			lhs := syntax.NewIntegerLiteral(loc(1), 4, 2, "10x0", false)
			rhs := syntax.NewIntegerLiteral(loc(1), 4, 2, "0001", false)
			expr := b.BindExpression(syntax.NewBinary(loc(1), syntax.BinaryAdd, lhs, rhs))
			v := eval.Evaluate(ctx, expr)
			return formatValue(v), sink.Diagnostics()
		},
	}
}

// bitsOfParameterExpression models: parameter int P = 3 + 2*4; $bits(P).
func bitsOfParameterExpression() Scenario {
	return Scenario{
		Name:   "bits-of-parameter",
		Source: "parameter int P = 3 + 2*4; $bits(P)",
		Want:   "32'd32",
		Build: func() (string, []diag.Diagnostic) {
			scope := symbols.NewRootScope(nil)
			sink := diag.NewSink()
			b := binder.New(scope, sink)
			ctx := eval.NewContext(sink)

			pexpr := syntax.NewBinary(loc(1), syntax.BinaryAdd,
				syntax.NewIntegerLiteral(loc(1), 0, 10, "3", false),
				syntax.NewBinary(loc(1), syntax.BinaryMultiply,
					syntax.NewIntegerLiteral(loc(1), 0, 10, "2", false),
					syntax.NewIntegerLiteral(loc(1), 0, 10, "4", false)))
			pval := eval.Evaluate(ctx, b.BindExpression(pexpr))

			psym := symbols.NewParameter("P", loc(1), svtype.Int(), false)
			psym.SetConstValue(pval)
			scope.Declare(psym)

			call := b.BindExpression(syntax.NewInvocation(loc(2), "$bits", syntax.NewIdentifierName(loc(2), "P")))
			result := eval.Evaluate(ctx, call)
			return formatValue(result), sink.Diagnostics()
		},
	}
}

// userFunctionCall models: function automatic int f(int a); return a+1;
// endfunction; f(41).
func userFunctionCall() Scenario {
	return Scenario{
		Name:   "user-function-call",
		Source: "function automatic int f(int a); return a + 1; endfunction; f(41)",
		Want:   "32'd42",
		Build: func() (string, []diag.Diagnostic) {
			scope := symbols.NewRootScope(nil)
			sink := diag.NewSink()
			b := binder.New(scope, sink)
			ctx := eval.NewContext(sink)

			formal := syntax.NewFormalArgument(loc(1), syntax.Predefined("int", true, nil, nil), "a", syntax.DirIn, nil)
			body := syntax.NewReturnStatement(loc(1),
				syntax.NewBinary(loc(1), syntax.BinaryAdd, syntax.NewIdentifierName(loc(1), "a"), syntax.NewIntegerLiteral(loc(1), 0, 10, "1", false)))
			decl := syntax.NewFunctionDeclaration(loc(1), "f", syntax.Predefined("int", true, nil, nil), []*syntax.FormalArgument{formal}, body)
			scope.Declare(symbols.NewSubroutine("f", loc(1), decl))

			call := b.BindExpression(syntax.NewInvocation(loc(2), "f", syntax.NewIntegerLiteral(loc(2), 0, 10, "41", false)))
			result := eval.Evaluate(ctx, call)
			return formatValue(result), sink.Diagnostics()
		},
	}
}

// rangeSelectAssignment models: logic [7:0] v = 0; v[3:0] = 4'b1x01;
// reading v back afterward shows the untouched upper nibble plus the new
// bits.
func rangeSelectAssignment() Scenario {
	return Scenario{
		Name:   "range-select-assignment",
		Source: "logic [7:0] v = 0; v[3:0] = 4'b1x01;",
		Want:   "8'b00001x01",
		Build: func() (string, []diag.Diagnostic) {
			scope := symbols.NewRootScope(nil)
			sink := diag.NewSink()
			b := binder.New(scope, sink)
			ctx := eval.NewContext(sink)

			vsym := symbols.NewVariable("v", loc(1), svtype.Logic(8))
			scope.Declare(vsym)
			eval.Evaluate(ctx, b.BindExpression(syntax.NewAssignment(loc(1), syntax.NewIdentifierName(loc(1), "v"),
				syntax.NewIntegerLiteral(loc(1), 8, 10, "0", false))))

			lhs := syntax.NewRangeSelect(loc(2), syntax.NewIdentifierName(loc(2), "v"),
				syntax.NewIntegerLiteral(loc(2), 0, 10, "3", false), syntax.NewIntegerLiteral(loc(2), 0, 10, "0", false),
				syntax.RangeSimple)
			assign := syntax.NewAssignment(loc(2), lhs, syntax.NewIntegerLiteral(loc(2), 4, 2, "1x01", false))
			bound := b.BindExpression(assign)
			eval.Evaluate(ctx, bound)

			result := eval.Evaluate(ctx, b.BindExpression(syntax.NewIdentifierName(loc(3), "v")))
			return formatValue(result), sink.Diagnostics()
		},
	}
}

// caseEqualityMatch models: case(3'b01x) 3'b010: hit=1; 3'b01x: hit=2;
// endcase -- matched by '===', never by numeric equality.
func caseEqualityMatch() Scenario {
	return Scenario{
		Name:   "case-equality",
		Source: "case(3'b01x) 3'b010: hit=1; 3'b01x: hit=2; endcase",
		Want:   "32'd2",
		Build: func() (string, []diag.Diagnostic) {
			scope := symbols.NewRootScope(nil)
			sink := diag.NewSink()
			b := binder.New(scope, sink)
			ctx := eval.NewContext(sink)

			hit := syntax.NewDataDeclaration(loc(1), syntax.Predefined("int", true, nil, nil), "hit", syntax.NewIntegerLiteral(loc(1), 0, 10, "0", false))
			sel := syntax.NewIntegerLiteral(loc(2), 3, 2, "01x", false)
			arm1 := syntax.CaseItem{
				Labels: []syntax.Node{syntax.NewIntegerLiteral(loc(2), 3, 2, "010", false)},
				Stmt:   syntax.NewExpressionStatement(loc(2), syntax.NewAssignment(loc(2), syntax.NewIdentifierName(loc(2), "hit"), syntax.NewIntegerLiteral(loc(2), 0, 10, "1", false))),
			}
			arm2 := syntax.CaseItem{
				Labels: []syntax.Node{syntax.NewIntegerLiteral(loc(2), 3, 2, "01x", false)},
				Stmt:   syntax.NewExpressionStatement(loc(2), syntax.NewAssignment(loc(2), syntax.NewIdentifierName(loc(2), "hit"), syntax.NewIntegerLiteral(loc(2), 0, 10, "2", false))),
			}
			caseStmt := syntax.NewCaseStatement(loc(2), sel, syntax.CaseNormal, arm1, arm2)
			block := syntax.NewBlockStatement(loc(1), []*syntax.DataDeclaration{hit}, caseStmt,
				syntax.NewReturnStatement(loc(3), syntax.NewIdentifierName(loc(3), "hit")))

			decl := syntax.NewFunctionDeclaration(loc(1), "classify", syntax.Predefined("int", true, nil, nil), nil, block)
			scope.Declare(symbols.NewSubroutine("classify", loc(1), decl))

			call := b.BindExpression(syntax.NewInvocation(loc(4), "classify"))
			result := eval.Evaluate(ctx, call)
			return formatValue(result), sink.Diagnostics()
		},
	}
}

// divisionByZero models: 8'd10 / 8'd0 -- all-X at the dividend's width,
// with a DivisionByZero diagnostic recorded rather than a panic.
func divisionByZero() Scenario {
	return Scenario{
		Name:   "division-by-zero",
		Source: "8'd10 / 8'd0",
		Want:   "8'bxxxxxxxx",
		Build: func() (string, []diag.Diagnostic) {
			scope := symbols.NewRootScope(nil)
			sink := diag.NewSink()
			b := binder.New(scope, sink)
			ctx := eval.NewContext(sink)

			expr := b.BindExpression(syntax.NewBinary(loc(1), syntax.BinaryDivide,
				syntax.NewIntegerLiteral(loc(1), 8, 10, "10", false),
				syntax.NewIntegerLiteral(loc(1), 8, 10, "0", false)))
			result := eval.Evaluate(ctx, expr)
			return formatValue(result), sink.Diagnostics()
		},
	}
}

// Find returns the scenario with the given name, or false if there is none.
func Find(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
