package symbols

import (
	"testing"

	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/svtype"
	"github.com/oisee/svsema/pkg/syntax"
)

func TestDeclareAndLookupLocal(t *testing.T) {
	root := NewRootScope(nil)
	v := NewVariable("clk", diag.Location{Line: 1}, svtype.Logic(1))
	if !root.Declare(v) {
		t.Fatal("Declare() = false, want true for first declaration")
	}
	if root.Declare(NewVariable("clk", diag.Location{Line: 2}, svtype.Logic(1))) {
		t.Fatal("Declare() = true, want false for duplicate name")
	}

	sym, ok := root.LookupLocal("clk")
	if !ok || sym != v {
		t.Fatalf("LookupLocal(clk) = (%v, %v), want (%v, true)", sym, ok, v)
	}

	if _, ok := root.LookupLocal("missing"); ok {
		t.Fatal("LookupLocal(missing) = true, want false")
	}
}

func TestNestedScopeLookupWalksParents(t *testing.T) {
	root := NewRootScope(nil)
	root.Declare(NewVariable("global_count", diag.Location{}, svtype.Int()))

	modSym, modScope := NewModuleInstance("top", diag.Location{}, root)
	root.Declare(modSym)
	modScope.Declare(NewVariable("local_sig", diag.Location{}, svtype.Bit(1)))

	if _, ok := LookupUnqualified(modScope, "global_count", LookupUnrestricted, 0); !ok {
		t.Fatal("expected global_count visible from nested scope")
	}
	if _, ok := LookupUnqualified(root, "local_sig", LookupUnrestricted, 0); ok {
		t.Fatal("local_sig should not be visible from the enclosing scope")
	}
}

func TestProceduralLookupRespectsDeclarationOrder(t *testing.T) {
	root := NewRootScope(nil)
	a := NewVariable("a", diag.Location{}, svtype.Int())
	root.Declare(a)
	b := NewVariable("b", diag.Location{}, svtype.Int())
	root.Declare(b)

	if _, ok := LookupUnqualified(root, "b", LookupProcedural, a.DeclOrder()); ok {
		t.Fatal("expected forward reference to fail under procedural lookup")
	}
	if _, ok := LookupUnqualified(root, "a", LookupProcedural, b.DeclOrder()); !ok {
		t.Fatal("expected backward reference to succeed under procedural lookup")
	}
}

func TestLazyMaterializationIsIdempotentAndReentrantSafe(t *testing.T) {
	calls := 0
	mat := Materializer(func(scope *Scope, node syntax.Node) *Symbol {
		calls++
		id := node.(*syntax.IdentifierName)
		// A materializer that looks itself up mid-promotion (a
		// self-referential default value) must see a miss, not deadlock.
		if _, ok := scope.LookupLocal(id.Name); ok {
			t.Fatalf("self-lookup during promotion unexpectedly succeeded for %s", id.Name)
		}
		return NewVariable(id.Name, id.Loc(), svtype.Int())
	})
	root := NewRootScope(mat)
	root.DeferDeclaration("w", syntax.NewIdentifierName(diag.Location{Line: 5}, "w"))

	sym1, ok := root.LookupLocal("w")
	if !ok {
		t.Fatal("expected deferred symbol to materialize")
	}
	sym2, ok := root.LookupLocal("w")
	if !ok || sym2 != sym1 {
		t.Fatal("expected second lookup to return the same cached symbol without re-materializing")
	}
	if calls != 1 {
		t.Fatalf("materializer called %d times, want 1", calls)
	}
}

func TestPromoteAllMaterializesEveryDeferredMember(t *testing.T) {
	mat := Materializer(func(scope *Scope, node syntax.Node) *Symbol {
		id := node.(*syntax.IdentifierName)
		return NewEnumMember(id.Name, id.Loc(), svtype.Int())
	})
	root := NewRootScope(mat)
	for _, name := range []string{"RED", "GREEN", "BLUE"} {
		root.DeferDeclaration(name, syntax.NewIdentifierName(diag.Location{}, name))
	}
	root.PromoteAll()

	members := root.Members()
	if len(members) != 3 {
		t.Fatalf("len(Members()) = %d, want 3", len(members))
	}
	if members[0].Name() != "RED" || members[1].Name() != "GREEN" || members[2].Name() != "BLUE" {
		t.Fatalf("unexpected member order: %v, %v, %v", members[0].Name(), members[1].Name(), members[2].Name())
	}
}

func TestLookupQualifiedWalksNestedScopes(t *testing.T) {
	root := NewRootScope(nil)
	pkgSym, pkgScope := NewPackage("util_pkg", diag.Location{}, root)
	root.Declare(pkgSym)
	pkgScope.Declare(NewParameter("WIDTH", diag.Location{}, svtype.Int(), true))

	sym, ok := LookupQualified(root, []string{"util_pkg", "WIDTH"})
	if !ok || sym.Name() != "WIDTH" {
		t.Fatalf("LookupQualified(util_pkg.WIDTH) = (%v, %v)", sym, ok)
	}

	if _, ok := LookupQualified(root, []string{"util_pkg", "NOPE"}); ok {
		t.Fatal("expected qualified lookup of an undeclared member to fail")
	}
}

func TestLookupUpwardResolvesUnitAndRoot(t *testing.T) {
	root := NewRootScope(nil)
	modSym, modScope := NewModuleInstance("top", diag.Location{}, root)
	root.Declare(modSym)

	unit, ok := LookupUpward(modScope, "$unit")
	if !ok || unit != root {
		t.Fatalf("LookupUpward($unit) = (%v, %v), want (root, true)", unit, ok)
	}
	rootScope, ok := LookupUpward(modScope, "$root")
	if !ok || rootScope != root {
		t.Fatalf("LookupUpward($root) = (%v, %v), want (root, true)", rootScope, ok)
	}
	if _, ok := LookupUpward(modScope, "$bogus"); ok {
		t.Fatal("expected unknown upward keyword to fail")
	}
}

func TestSubroutineCachedBodyRoundTrip(t *testing.T) {
	decl := syntax.NewFunctionDeclaration(diag.Location{}, "clog2_demo", syntax.Predefined("int", true, nil, nil), nil)
	sub := NewSubroutine("clog2_demo", diag.Location{}, decl)
	if sub.CachedBody() != nil {
		t.Fatal("expected nil cached body before binding")
	}
	sub.SetCachedBody([]string{"fake-bound-statement"})
	cached, ok := sub.CachedBody().([]string)
	if !ok || len(cached) != 1 {
		t.Fatalf("CachedBody() round trip failed: %v", sub.CachedBody())
	}
}

func TestSymbolAccessorPanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Type() to panic for a kind with no declared type")
		}
	}()
	modSym, _ := NewModuleInstance("top", diag.Location{}, NewRootScope(nil))
	modSym.Type()
}
