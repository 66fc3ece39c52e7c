// Package binder implements the Binder (§4.E): it walks a syntax.Node
// tree, resolves names against a symbols.Scope, computes an svtype.Type
// for every expression via the self-determined/context-determined
// two-pass rule, inserts explicit Conversion nodes wherever an implicit
// conversion applies, and reports a diagnostic (via the shared sink)
// instead of panicking on any malformed input, substituting the closed
// Invalid sentinel so callers can keep walking without a nil check at
// every level.
package binder

import (
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

// BoundKind discriminates the bound-tree's closed set of node kinds,
// mirroring syntax.Kind one level down the pipeline (§9's tagged-union
// guidance applies here too).
type BoundKind uint8

const (
	BoundInvalid BoundKind = iota
	BoundLiteral
	BoundName
	BoundMemberAccess
	BoundElementSelect
	BoundRangeSelect
	BoundUnary
	BoundBinary
	BoundConditional
	BoundConcat
	BoundReplication
	BoundAssignment
	BoundCall
	BoundSystemCall
	BoundConversion
)

// Expr is every bound expression node's common interface: a resolved
// type and the syntax node it came from (for diagnostics).
type Expr interface {
	BoundKind() BoundKind
	Type() *svtype.Type
	Syntax() syntax.Node
}

type exprBase struct {
	kind BoundKind
	typ  *svtype.Type
	syn  syntax.Node
}

func (e exprBase) BoundKind() BoundKind { return e.kind }
func (e exprBase) Type() *svtype.Type   { return e.typ }
func (e exprBase) Syntax() syntax.Node  { return e.syn }

// InvalidExpr is the short-circuit sentinel every failed bind produces: it
// carries svtype.Error() so downstream type checks fail closed (treated
// as already-diagnosed, never triggering a cascade of secondary errors).
type InvalidExpr struct{ exprBase }

func newInvalid(syn syntax.Node) *InvalidExpr {
	return &InvalidExpr{exprBase{BoundInvalid, svtype.Error(), syn}}
}

// Literal is a bound constant: integer, real, or string literal syntax
// resolved to its type. The literal's folded value lives in the
// evaluator's domain, not here — the binder only fixes width/sign/type.
type Literal struct {
	exprBase
	Digits    string // for integer literals: the raw (cleaned) digit text
	Base      int
	Real      float64
	Str       string
	IsInteger bool
	IsReal    bool
	IsString  bool
}

// Name is a bound reference to a resolved symbol (variable, parameter,
// formal argument, enum member).
type Name struct {
	exprBase
	Symbol *symbols.Symbol
}

// MemberAccess is a bound struct/union field access.
type MemberAccess struct {
	exprBase
	Value Expr
	Field string
	Offset uint32
}

// ElementSelect is a bound single-bit/single-element select.
type ElementSelect struct {
	exprBase
	Value Expr
	Index Expr
}

// RangeSelect is a bound part-select (simple, indexed-up, or
// indexed-down).
type RangeSelect struct {
	exprBase
	Value  Expr
	Left   Expr
	Right  Expr
	Flavor syntax.RangeSelectKind
	Width  uint32 // statically known select width
}

// Unary is a bound unary operator application.
type Unary struct {
	exprBase
	Op      syntax.UnaryOp
	Operand Expr
}

// Binary is a bound binary operator application.
type Binary struct {
	exprBase
	Op    syntax.BinaryOp
	Left  Expr
	Right Expr
}

// Conditional is a bound `cond ? a : b`.
type Conditional struct {
	exprBase
	Predicate Expr
	WhenTrue  Expr
	WhenFalse Expr
}

// Concat is a bound concatenation; all operands are already
// self-determined and four-state-unified per operand, MSB-first.
type Concat struct {
	exprBase
	Operands []Expr
}

// Replication is a bound `{count{operand}}`. Count must have bound to a
// constant-foldable expression; the evaluator enforces that at fold time.
type Replication struct {
	exprBase
	Count   Expr
	Operand Expr
}

// Assignment is a bound `lhs = rhs` or compound assignment. Lhs is bound
// through bindLValue (§4.F), not the ordinary expression path.
type Assignment struct {
	exprBase
	Left     Expr
	Right    Expr
	Compound bool
	Op       syntax.BinaryOp
}

// Call is a bound user-subroutine invocation.
type Call struct {
	exprBase
	Subroutine *symbols.Symbol
	Args       []Expr
}

// SystemName enumerates the supported system subroutines (§9
// supplemented feature: $clog2/$bits/$size/$low/$high, plus $signed and
// $unsigned since the evaluator already has to reinterpret sign).
type SystemName uint8

const (
	SysUnknown SystemName = iota
	SysClog2
	SysBits
	SysSize
	SysLow
	SysHigh
	SysSigned
	SysUnsigned
)

func LookupSystemName(name string) SystemName {
	switch name {
	case "$clog2":
		return SysClog2
	case "$bits":
		return SysBits
	case "$size":
		return SysSize
	case "$low":
		return SysLow
	case "$high":
		return SysHigh
	case "$signed":
		return SysSigned
	case "$unsigned":
		return SysUnsigned
	default:
		return SysUnknown
	}
}

// SystemCall is a bound call to one of the supplemented system
// subroutines.
type SystemCall struct {
	exprBase
	Name SystemName
	Args []Expr
	// ArgType caches the operand's static type for the type-query
	// subroutines ($bits/$size/$low/$high), which never evaluate their
	// argument (§9: these act on the type, not the value).
	ArgType *svtype.Type
}

// ConversionKind distinguishes a binder-inserted implicit conversion from
// one the user wrote explicitly.
type ConversionKind uint8

const (
	ConversionImplicit ConversionKind = iota
	ConversionExplicit
)

// Conversion is a bound type conversion, inserted by the binder whenever
// a context-determined operand's self-determined type differs from the
// type its context requires (§4.E), or bound directly from a
// syntax.ConversionExpression.
type Conversion struct {
	exprBase
	Operand Expr
	Kind    ConversionKind
}
