package symbols

import (
	"sync"

	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/syntax"
)

// Materializer turns one deferred declaration's syntax into a Symbol,
// installing it into the given Scope. Supplied by the binder so this
// package never needs to import it (§9 Lifecycle, lazy promotion).
type Materializer func(scope *Scope, node syntax.Node) *Symbol

type deferredMember struct {
	name      string
	node      syntax.Node
	promoting bool
	done      bool
}

// Scope is a name-binding region: the compilation unit root, a package, a
// module instance, a generate block, or a subroutine's formal/local
// region. Members are promoted lazily and idempotently from a deferred
// syntax list on first lookup (§4.D, §9).
type Scope struct {
	mu sync.Mutex

	self   *Symbol // the symbol describing this scope itself; nil for the root
	parent *Scope
	root   *Scope

	materialize Materializer

	members  []*Symbol
	byName   map[string]*Symbol
	deferred []deferredMember

	nextOrder int
}

// NewRootScope creates the top-level CompilationUnit scope ($unit).
func NewRootScope(m Materializer) *Scope {
	s := &Scope{byName: make(map[string]*Symbol), materialize: m}
	s.root = s
	s.self = &Symbol{kind: KindCompilationUnit, scope: s}
	return s
}

// NewChildScope creates a nested scope (package, module instance, generate
// block, subroutine body) owned by the given self symbol.
func (s *Scope) NewChildScope(self *Symbol) *Scope {
	child := &Scope{
		byName:      make(map[string]*Symbol),
		materialize: s.materialize,
		parent:      s,
		root:        s.root,
		self:        self,
	}
	if self != nil {
		self.scope = child
	}
	return child
}

func (s *Scope) Self() *Symbol   { return s.self }
func (s *Scope) Parent() *Scope  { return s.parent }
func (s *Scope) Root() *Scope    { return s.root }
func (s *Scope) IsRoot() bool    { return s.parent == nil }

// Declare eagerly installs a fully-built symbol, used by callers (tests,
// the demo CLI) that already have a materialized Symbol rather than raw
// syntax to defer. Returns false if the name is already declared.
func (s *Scope) Declare(sym *Symbol) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[sym.name]; exists {
		return false
	}
	sym.parent = s
	sym.order = s.nextOrder
	s.nextOrder++
	s.byName[sym.name] = sym
	s.members = append(s.members, sym)
	return true
}

// DeferDeclaration registers a name to be materialized from syntax the
// first time it is looked up (or never, if it's never referenced).
func (s *Scope) DeferDeclaration(name string, node syntax.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deferred = append(s.deferred, deferredMember{name: name, node: node})
}

// LookupLocal resolves name against this scope only, promoting a deferred
// declaration if one matches and nothing is materialized yet. A name
// whose promotion is already in progress (a self-referential forward use)
// reports a miss rather than deadlocking or recursing (§9).
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	s.mu.Lock()
	if sym, ok := s.byName[name]; ok {
		s.mu.Unlock()
		return sym, true
	}
	for i := range s.deferred {
		d := &s.deferred[i]
		if d.name != name || d.done {
			continue
		}
		if d.promoting {
			s.mu.Unlock()
			return nil, false
		}
		d.promoting = true
		node := d.node
		s.mu.Unlock()

		sym := s.materialize(s, node)

		s.mu.Lock()
		sym.parent = s
		sym.order = s.nextOrder
		s.nextOrder++
		s.byName[name] = sym
		s.members = append(s.members, sym)
		d.done = true
		s.mu.Unlock()
		return sym, true
	}
	s.mu.Unlock()
	return nil, false
}

// PromoteAll forces materialization of every deferred member, in
// declaration order. Used before a full-scope member listing (e.g. an
// enum's member list or a struct's field list must all exist to answer
// "how many fields").
func (s *Scope) PromoteAll() {
	s.mu.Lock()
	names := make([]string, 0, len(s.deferred))
	for _, d := range s.deferred {
		if !d.done {
			names = append(names, d.name)
		}
	}
	s.mu.Unlock()
	for _, n := range names {
		s.LookupLocal(n)
	}
}

// Members returns every materialized member in declaration order. Callers
// that need the complete set should PromoteAll first.
func (s *Scope) Members() []*Symbol {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Symbol, len(s.members))
	copy(out, s.members)
	return out
}

// LookupKind selects the visibility rule applied during unqualified
// lookup (§4.D).
type LookupKind uint8

const (
	// LookupUnrestricted ignores declaration order: valid for references
	// that the LRM allows to forward-reference within the same scope
	// (types, parameters, package-scope items).
	LookupUnrestricted LookupKind = iota
	// LookupProcedural requires the resolved symbol to have been declared
	// at or before the referencing position in the same scope.
	LookupProcedural
)

// LookupUnqualified searches origin, then each enclosing scope in turn,
// stopping at the first hit (§4.D "nearest enclosing scope wins"). For
// LookupProcedural, a hit in the origin scope itself must have a DeclOrder
// at or before beforeOrder; hits in enclosing scopes are never order
// checked, since by the time a nested scope exists its enclosing
// declarations are already complete.
func LookupUnqualified(origin *Scope, name string, lk LookupKind, beforeOrder int) (*Symbol, bool) {
	for scope := origin; scope != nil; scope = scope.parent {
		sym, ok := scope.LookupLocal(name)
		if !ok {
			continue
		}
		if scope == origin && lk == LookupProcedural && sym.order > beforeOrder {
			return nil, false
		}
		return sym, true
	}
	return nil, false
}

// LookupQualified resolves a dotted path rooted at origin: the first
// segment is looked up unqualified, then each subsequent segment is
// looked up local-only in the scope the previous segment introduced.
func LookupQualified(origin *Scope, segments []string) (*Symbol, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	sym, ok := LookupUnqualified(origin, segments[0], LookupUnrestricted, 0)
	if !ok {
		return nil, false
	}
	for _, seg := range segments[1:] {
		if sym.scope == nil {
			return nil, false
		}
		sym, ok = sym.scope.LookupLocal(seg)
		if !ok {
			return nil, false
		}
	}
	return sym, true
}

// LookupUpward resolves "$unit" to the compilation-unit root scope and
// "$root" to the outermost instance scope reachable by walking parents
// from origin (this core has no separate elaborated hierarchy root
// distinct from $unit, so both resolve to Root()).
func LookupUpward(origin *Scope, keyword string) (*Scope, bool) {
	switch keyword {
	case "$unit", "$root":
		return origin.root, true
	default:
		return nil, false
	}
}

// NewVariable builds a Variable symbol (not yet declared into any scope;
// call scope.Declare or rely on deferred promotion).
func NewVariable(name string, loc diag.Location, t *svtype.Type) *Symbol {
	return &Symbol{kind: KindVariable, name: name, loc: loc, declaredType: t}
}

// NewParameter builds a Parameter symbol.
func NewParameter(name string, loc diag.Location, t *svtype.Type, local bool) *Symbol {
	return &Symbol{kind: KindParameter, name: name, loc: loc, declaredType: t, isLocal: local}
}

// NewFormalArgument builds a FormalArgument symbol.
func NewFormalArgument(name string, loc diag.Location, t *svtype.Type, dir syntax.ArgDirection) *Symbol {
	return &Symbol{kind: KindFormalArgument, name: name, loc: loc, declaredType: t, direction: dir}
}

// NewSubroutine builds a Subroutine symbol from its declaration syntax.
// The caller is responsible for creating its local Scope via
// parent.NewChildScope and populating formals into it.
func NewSubroutine(name string, loc diag.Location, decl *syntax.FunctionDeclaration) *Symbol {
	return &Symbol{kind: KindSubroutine, name: name, loc: loc, decl: decl}
}

// NewTypeAlias builds a TypeAlias symbol.
func NewTypeAlias(name string, loc diag.Location, aliasee *svtype.Type) *Symbol {
	return &Symbol{kind: KindTypeAlias, name: name, loc: loc, declaredType: aliasee}
}

// NewField builds a Field symbol for a struct/union member.
func NewField(name string, loc diag.Location, t *svtype.Type, offset uint32) *Symbol {
	return &Symbol{kind: KindField, name: name, loc: loc, declaredType: t, fieldOffset: offset}
}

// NewEnumMember builds an EnumMember symbol.
func NewEnumMember(name string, loc diag.Location, t *svtype.Type) *Symbol {
	return &Symbol{kind: KindEnumMember, name: name, loc: loc, declaredType: t}
}

// NewPackage builds a Package symbol and its scope.
func NewPackage(name string, loc diag.Location, parent *Scope) (*Symbol, *Scope) {
	sym := &Symbol{kind: KindPackage, name: name, loc: loc}
	return sym, parent.NewChildScope(sym)
}

// NewModuleInstance builds a ModuleInstance symbol and its scope.
func NewModuleInstance(name string, loc diag.Location, parent *Scope) (*Symbol, *Scope) {
	sym := &Symbol{kind: KindModuleInstance, name: name, loc: loc}
	return sym, parent.NewChildScope(sym)
}

// NewGenerateBlock builds a GenerateBlock symbol and its scope.
func NewGenerateBlock(name string, loc diag.Location, parent *Scope) (*Symbol, *Scope) {
	sym := &Symbol{kind: KindGenerateBlock, name: name, loc: loc}
	return sym, parent.NewChildScope(sym)
}
