// Package symbols implements the symbol/scope graph (§4.D): named
// entities, lexical nesting, lazy member materialization, and hierarchical
// lookup. Symbols and scopes are arena-like in spirit — they are created
// once during elaboration and live for the whole compilation; this
// package does not free them individually (§3 Lifecycle).
package symbols

import (
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/syntax"
)

// Kind discriminates the closed set of symbol variants the core uses.
type Kind uint8

const (
	KindCompilationUnit Kind = iota
	KindPackage
	KindModuleInstance
	KindGenerateBlock // "Scope (generate/block)" in §3
	KindParameter
	KindVariable
	KindFormalArgument
	KindSubroutine
	KindTypeAlias
	KindField
	KindEnumMember
)

func (k Kind) String() string {
	names := [...]string{
		"CompilationUnit", "Package", "ModuleInstance", "GenerateBlock",
		"Parameter", "Variable", "FormalArgument", "Subroutine", "TypeAlias",
		"Field", "EnumMember",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Symbol is a closed tagged union over every named entity kind the core
// materializes, per §9's "closed tagged union, kind discriminator,
// checked downcast" guidance. The common header (Kind, Name, Loc, Parent)
// is always valid; the rest is meaningful only for the matching Kind.
type Symbol struct {
	kind   Kind
	name   string
	loc    diag.Location
	parent *Scope // non-owning: the scope that declares this symbol
	scope  *Scope // non-nil when this symbol itself introduces a scope
	order  int    // this symbol's position in its parent's declaration order

	declaredType *svtype.Type // Variable, Parameter, FormalArgument, Field, TypeAlias's aliasee

	direction syntax.ArgDirection // FormalArgument only
	isLocal   bool                // Parameter only: localparam vs overridable parameter

	constValue constval.Value // cached compile-time value: Parameter, EnumMember
	hasConst   bool

	decl *syntax.FunctionDeclaration // Subroutine only
	body any                         // Subroutine only: binder's cached bound-body, opaque here to avoid an import cycle

	fieldOffset uint32 // Field only
}

func (s *Symbol) Kind() Kind              { return s.kind }
func (s *Symbol) Name() string            { return s.name }
func (s *Symbol) Loc() diag.Location      { return s.loc }
func (s *Symbol) ParentScope() *Scope     { return s.parent }
func (s *Symbol) IntroducedScope() *Scope { return s.scope }
func (s *Symbol) DeclOrder() int          { return s.order }

// Type returns the symbol's declared type. Panics for kinds with no type
// (CompilationUnit, Package, ModuleInstance, GenerateBlock, Subroutine —
// use ReturnType for the latter).
func (s *Symbol) Type() *svtype.Type {
	if s.declaredType == nil {
		panic("symbols: Type() on a symbol kind with no declared type: " + s.kind.String())
	}
	return s.declaredType
}

// Direction returns a FormalArgument's passing direction.
func (s *Symbol) Direction() syntax.ArgDirection {
	if s.kind != KindFormalArgument {
		panic("symbols: Direction() on non-FormalArgument symbol")
	}
	return s.direction
}

// IsLocalParam reports whether a Parameter is a localparam.
func (s *Symbol) IsLocalParam() bool {
	if s.kind != KindParameter {
		panic("symbols: IsLocalParam() on non-Parameter symbol")
	}
	return s.isLocal
}

// ConstValue returns a Parameter's or EnumMember's cached compile-time
// value and whether one has been computed yet.
func (s *Symbol) ConstValue() (constval.Value, bool) {
	return s.constValue, s.hasConst
}

// SetConstValue caches a Parameter's or EnumMember's folded value.
func (s *Symbol) SetConstValue(v constval.Value) {
	s.constValue = v
	s.hasConst = true
}

// Decl returns a Subroutine's declaration syntax.
func (s *Symbol) Decl() *syntax.FunctionDeclaration {
	if s.kind != KindSubroutine {
		panic("symbols: Decl() on non-Subroutine symbol")
	}
	return s.decl
}

// CachedBody returns the binder's cached bound body for a Subroutine, or
// nil if not yet bound. The concrete type is owned by pkg/binder; this
// package only stores and returns it opaquely to avoid an import cycle.
func (s *Symbol) CachedBody() any { return s.body }

// SetCachedBody stores the binder's bound body for a Subroutine.
func (s *Symbol) SetCachedBody(v any) { s.body = v }

// FieldOffset returns a Field's bit offset within its aggregate.
func (s *Symbol) FieldOffset() uint32 {
	if s.kind != KindField {
		panic("symbols: FieldOffset() on non-Field symbol")
	}
	return s.fieldOffset
}
