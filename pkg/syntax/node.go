package syntax

import "github.com/oisee/svsema/pkg/diag"

// Node is the common interface every syntax node satisfies. The core
// treats nodes as immutable and never mutates one after construction.
type Node interface {
	Kind() Kind
	Loc() diag.Location
}

type base struct {
	loc diag.Location
}

func (b base) Loc() diag.Location { return b.loc }

// --- Literals ---

// IntegerLiteral is a sized or unsized integer literal's syntax, carrying
// the raw digit text rather than a pre-parsed value: width/base/signed
// parsing is the binder's job (via pkg/svint.ParseLiteral) so the syntax
// layer stays a dumb carrier, per §6.
type IntegerLiteral struct {
	base
	Width  int // 0 means unsized (LRM 32-bit default applies)
	Base   int // 2, 8, 10, or 16
	Digits string
	Signed bool
}

func (n *IntegerLiteral) Kind() Kind { return KindIntegerLiteral }

type RealLiteral struct {
	base
	Value     float64
	ShortReal bool
}

func (n *RealLiteral) Kind() Kind { return KindRealLiteral }

type StringLiteral struct {
	base
	Value string
}

func (n *StringLiteral) Kind() Kind { return KindStringLiteral }

type NullLiteral struct{ base }

func (n *NullLiteral) Kind() Kind { return KindNullLiteral }

// --- Names and selects ---

type IdentifierName struct {
	base
	Name string
}

func (n *IdentifierName) Kind() Kind { return KindIdentifierName }

// ScopedName is a hierarchical or package-qualified reference, a.b.c or
// $unit::x. Segments are plain identifiers; Upward reports $unit/$root.
type ScopedName struct {
	base
	Segments []string
	Upward   string // "$unit", "$root", or ""
}

func (n *ScopedName) Kind() Kind { return KindScopedName }

type MemberAccess struct {
	base
	Value Node
	Field string
}

func (n *MemberAccess) Kind() Kind { return KindMemberAccess }

type ElementSelect struct {
	base
	Value Node
	Index Node
}

func (n *ElementSelect) Kind() Kind { return KindElementSelect }

type RangeSelect struct {
	base
	Value Node
	Left  Node
	Right Node
	Flavor RangeSelectKind
}

func (n *RangeSelect) Kind() Kind { return KindRangeSelect }

// --- Operators ---

type UnaryExpression struct {
	base
	Op      UnaryOp
	Operand Node
}

func (n *UnaryExpression) Kind() Kind { return KindUnaryExpression }

type BinaryExpression struct {
	base
	Op    BinaryOp
	Left  Node
	Right Node
}

func (n *BinaryExpression) Kind() Kind { return KindBinaryExpression }

type ConditionalExpression struct {
	base
	Predicate Node
	WhenTrue  Node
	WhenFalse Node
}

func (n *ConditionalExpression) Kind() Kind { return KindConditionalExpression }

type ConcatenationExpression struct {
	base
	Operands []Node
}

func (n *ConcatenationExpression) Kind() Kind { return KindConcatenationExpression }

type ReplicationExpression struct {
	base
	Count   Node
	Operand Node
}

func (n *ReplicationExpression) Kind() Kind { return KindReplicationExpression }

// AssignmentExpression covers plain '=' and compound assignments ('+=' and
// friends); Op is only meaningful when Compound is true.
type AssignmentExpression struct {
	base
	Left     Node
	Right    Node
	Compound bool
	Op       BinaryOp
}

func (n *AssignmentExpression) Kind() Kind { return KindAssignmentExpression }

// InvocationExpression is a call to a user subroutine or a system
// subroutine (Name begins with '$').
type InvocationExpression struct {
	base
	Name string
	Args []Node
}

func (n *InvocationExpression) Kind() Kind { return KindInvocationExpression }

// ConversionExpression is an explicit user-written cast, type'(expr).
type ConversionExpression struct {
	base
	Target   TypeSyntax
	Operand  Node
}

func (n *ConversionExpression) Kind() Kind { return KindConversionExpression }
