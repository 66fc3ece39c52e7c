package syntax

import "github.com/oisee/svsema/pkg/diag"

// This file is the construction API external callers (tests, the demo CLI,
// and any future real parser) use to build trees, since `base`'s location
// field is unexported and the node structs otherwise have no exported
// constructor.

func NewIntegerLiteral(loc diag.Location, width, base_ int, digits string, signed bool) *IntegerLiteral {
	return &IntegerLiteral{base: base{loc}, Width: width, Base: base_, Digits: digits, Signed: signed}
}

func NewRealLiteral(loc diag.Location, value float64, shortReal bool) *RealLiteral {
	return &RealLiteral{base: base{loc}, Value: value, ShortReal: shortReal}
}

func NewStringLiteral(loc diag.Location, value string) *StringLiteral {
	return &StringLiteral{base: base{loc}, Value: value}
}

func NewNullLiteral(loc diag.Location) *NullLiteral {
	return &NullLiteral{base: base{loc}}
}

func NewIdentifierName(loc diag.Location, name string) *IdentifierName {
	return &IdentifierName{base: base{loc}, Name: name}
}

func NewScopedName(loc diag.Location, upward string, segments ...string) *ScopedName {
	return &ScopedName{base: base{loc}, Upward: upward, Segments: segments}
}

func NewMemberAccess(loc diag.Location, value Node, field string) *MemberAccess {
	return &MemberAccess{base: base{loc}, Value: value, Field: field}
}

func NewElementSelect(loc diag.Location, value, index Node) *ElementSelect {
	return &ElementSelect{base: base{loc}, Value: value, Index: index}
}

func NewRangeSelect(loc diag.Location, value, left, right Node, flavor RangeSelectKind) *RangeSelect {
	return &RangeSelect{base: base{loc}, Value: value, Left: left, Right: right, Flavor: flavor}
}

func NewUnary(loc diag.Location, op UnaryOp, operand Node) *UnaryExpression {
	return &UnaryExpression{base: base{loc}, Op: op, Operand: operand}
}

func NewBinary(loc diag.Location, op BinaryOp, left, right Node) *BinaryExpression {
	return &BinaryExpression{base: base{loc}, Op: op, Left: left, Right: right}
}

func NewConditional(loc diag.Location, pred, whenTrue, whenFalse Node) *ConditionalExpression {
	return &ConditionalExpression{base: base{loc}, Predicate: pred, WhenTrue: whenTrue, WhenFalse: whenFalse}
}

func NewConcatenation(loc diag.Location, operands ...Node) *ConcatenationExpression {
	return &ConcatenationExpression{base: base{loc}, Operands: operands}
}

func NewReplication(loc diag.Location, count, operand Node) *ReplicationExpression {
	return &ReplicationExpression{base: base{loc}, Count: count, Operand: operand}
}

func NewAssignment(loc diag.Location, left, right Node) *AssignmentExpression {
	return &AssignmentExpression{base: base{loc}, Left: left, Right: right}
}

func NewCompoundAssignment(loc diag.Location, op BinaryOp, left, right Node) *AssignmentExpression {
	return &AssignmentExpression{base: base{loc}, Left: left, Right: right, Compound: true, Op: op}
}

func NewInvocation(loc diag.Location, name string, args ...Node) *InvocationExpression {
	return &InvocationExpression{base: base{loc}, Name: name, Args: args}
}

func NewConversion(loc diag.Location, target TypeSyntax, operand Node) *ConversionExpression {
	return &ConversionExpression{base: base{loc}, Target: target, Operand: operand}
}

func NewExpressionStatement(loc diag.Location, expr Node) *ExpressionStatement {
	return &ExpressionStatement{base: base{loc}, Expr: expr}
}

func NewConditionalStatement(loc diag.Location, cond, then, els Node) *ConditionalStatement {
	return &ConditionalStatement{base: base{loc}, Cond: cond, Then: then, Else: els}
}

func NewCaseStatement(loc diag.Location, selector Node, flavor CaseKind, items ...CaseItem) *CaseStatement {
	return &CaseStatement{base: base{loc}, Selector: selector, Flavor: flavor, Items: items}
}

func NewReturnStatement(loc diag.Location, value Node) *ReturnStatement {
	return &ReturnStatement{base: base{loc}, Value: value}
}

func NewBlockStatement(loc diag.Location, locals []*DataDeclaration, stmts ...Node) *BlockStatement {
	return &BlockStatement{base: base{loc}, Locals: locals, Stmts: stmts}
}

func NewForLoopStatement(loc diag.Location, init, cond, step, body Node) *ForLoopStatement {
	return &ForLoopStatement{base: base{loc}, Init: init, Cond: cond, Step: step, Body: body}
}

func NewDataDeclaration(loc diag.Location, t TypeSyntax, name string, init Node) *DataDeclaration {
	return &DataDeclaration{base: base{loc}, Type: t, Name: name, Initializer: init}
}

func NewParameterDeclaration(loc diag.Location, t TypeSyntax, name string, value Node, local bool) *ParameterDeclaration {
	return &ParameterDeclaration{base: base{loc}, Type: t, Name: name, Value: value, Local: local}
}

func NewFormalArgument(loc diag.Location, t TypeSyntax, name string, dir ArgDirection, def Node) *FormalArgument {
	return &FormalArgument{base: base{loc}, Type: t, Name: name, Direction: dir, Default: def}
}

func NewFunctionDeclaration(loc diag.Location, name string, ret TypeSyntax, formals []*FormalArgument, body ...Node) *FunctionDeclaration {
	return &FunctionDeclaration{base: base{loc}, Name: name, ReturnType: ret, Formals: formals, Body: body}
}

// Predefined builds a TypeSyntax for a predefined keyword type, optionally
// with a packed range (left/right nil means no explicit range -> 1-bit
// scalar for logic/bit, or the type's fixed width for int/byte/etc).
func Predefined(name string, signed bool, left, right Node) TypeSyntax {
	return TypeSyntax{Kind: TypeSyntaxPredefined, Predefined: name, Signed: signed, Left: left, Right: right}
}

// Named builds a TypeSyntax referencing a previously declared typedef,
// enum, or struct by name.
func Named(name string) TypeSyntax {
	return TypeSyntax{Kind: TypeSyntaxNamed, Name: name}
}
