// Package syntax defines the opaque, immutable syntax-tree contract the
// core consumes (§6): a closed set of node kinds with typed field access.
// The real lexer/preprocessor/parser that produces such a tree is out of
// scope (§1) — this package also offers a small builder API so tests and
// the demo CLI can construct trees directly, standing in for a parser.
package syntax

// Kind discriminates every syntax node the binder understands.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Literals
	KindIntegerLiteral
	KindRealLiteral
	KindStringLiteral
	KindNullLiteral

	// Names and selects
	KindIdentifierName
	KindScopedName // a.b.c, $unit::x
	KindElementSelect
	KindRangeSelect
	KindMemberAccess

	// Operators
	KindUnaryExpression
	KindBinaryExpression
	KindConditionalExpression
	KindConcatenationExpression
	KindReplicationExpression
	KindAssignmentExpression
	KindInvocationExpression
	KindConversionExpression // explicit cast written by the user: type'(expr)

	// Statements
	KindExpressionStatement
	KindConditionalStatement
	KindCaseStatement
	KindReturnStatement
	KindBlockStatement
	KindForLoopStatement

	// Declarations
	KindDataDeclaration
	KindParameterDeclaration
	KindFormalArgument
	KindFunctionDeclaration
)

func (k Kind) String() string {
	names := [...]string{
		"Invalid", "IntegerLiteral", "RealLiteral", "StringLiteral", "NullLiteral",
		"IdentifierName", "ScopedName", "ElementSelect", "RangeSelect", "MemberAccess",
		"UnaryExpression", "BinaryExpression", "ConditionalExpression",
		"ConcatenationExpression", "ReplicationExpression", "AssignmentExpression",
		"InvocationExpression", "ConversionExpression",
		"ExpressionStatement", "ConditionalStatement", "CaseStatement",
		"ReturnStatement", "BlockStatement", "ForLoopStatement",
		"DataDeclaration", "ParameterDeclaration", "FormalArgument", "FunctionDeclaration",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryBitwiseNot
	UnaryLogicalNot
	UnaryReduceAnd
	UnaryReduceNand
	UnaryReduceOr
	UnaryReduceNor
	UnaryReduceXor
	UnaryReduceXnor
	UnaryPreincrement
	UnaryPredecrement
	UnaryPostincrement
	UnaryPostdecrement
)

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryMod
	BinaryPower
	BinaryAnd
	BinaryOr
	BinaryXor
	BinaryXnor
	BinaryLogicalShiftLeft
	BinaryLogicalShiftRight
	BinaryArithmeticShiftRight
	BinaryEquality
	BinaryInequality
	BinaryCaseEquality
	BinaryCaseInequality
	BinaryWildcardEquality
	BinaryWildcardInequality
	BinaryLessThan
	BinaryLessThanEqual
	BinaryGreaterThan
	BinaryGreaterThanEqual
	BinaryLogicalAnd
	BinaryLogicalOr
)

// RangeSelectKind distinguishes the three select flavors (§4.E).
type RangeSelectKind uint8

const (
	RangeSimple RangeSelectKind = iota
	RangeIndexedUp
	RangeIndexedDown
)

// ArgDirection is a formal-argument passing direction.
type ArgDirection uint8

const (
	DirIn ArgDirection = iota
	DirOut
	DirInOut
	DirRef
)

// CaseKind distinguishes case/casez/casex matching semantics.
type CaseKind uint8

const (
	CaseNormal CaseKind = iota
	CaseZ
	CaseX
)
