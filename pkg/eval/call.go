package eval

import (
	"github.com/oisee/svsema/pkg/binder"
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/symbols"
	"github.com/oisee/svsema/pkg/syntax"
)

// boundSubroutine is the evaluator's lazily-built, cached representation
// of a user subroutine: its formal-argument symbols (declared into a
// scope of their own, a child of the scope the subroutine was declared
// in) and its bound body. Cached on the Subroutine symbol itself via
// SetCachedBody/CachedBody so a recursive or repeated call only binds the
// body once (§4.D Lifecycle: lazy, idempotent materialization applies to
// subroutine bodies the same way it applies to deferred declarations).
type boundSubroutine struct {
	Formals []*symbols.Symbol
	Stmts   []binder.Stmt
}

func ensureBoundBody(ctx *Context, sym *symbols.Symbol) *boundSubroutine {
	if cached := sym.CachedBody(); cached != nil {
		if b, ok := cached.(*boundSubroutine); ok {
			return b
		}
	}
	decl := sym.Decl()
	subScope := sym.ParentScope().NewChildScope(sym)
	nb := binder.New(subScope, ctx.Sink)

	formals := make([]*symbols.Symbol, len(decl.Formals))
	for i, f := range decl.Formals {
		ft := nb.ResolveType(f.Type)
		fsym := symbols.NewFormalArgument(f.Name, f.Loc(), ft, f.Direction)
		subScope.Declare(fsym)
		formals[i] = fsym
	}

	body := &boundSubroutine{Formals: formals, Stmts: nb.BindStatementList(decl.Body)}
	sym.SetCachedBody(body)
	return body
}

// evalCall executes a bound user-subroutine invocation: binds arguments
// (by value for 'input', by reference for 'output'/'inout'/'ref'), pushes
// a fresh frame bounded by the recursion limit, executes the body, pops
// the frame, and copies any output/inout/ref arguments back into the
// caller's lvalues.
func evalCall(ctx *Context, n *binder.Call) constval.Value {
	body := ensureBoundBody(ctx, n.Subroutine)
	if len(body.Formals) != len(n.Args) {
		ctx.Sink.Report(diag.WrongArgumentCount, n.Syntax().Loc(), n.Subroutine.Name(), len(body.Formals), len(n.Args))
		return constval.Bad()
	}

	argVals := make([]constval.Value, len(n.Args))
	writers := make([]func(constval.Value), len(n.Args))
	for i, a := range n.Args {
		formal := body.Formals[i]
		switch formal.Direction() {
		case syntax.DirOut, syntax.DirInOut, syntax.DirRef:
			read, write, ok := evalLValue(ctx, a)
			if !ok {
				return constval.Bad()
			}
			writers[i] = write
			argVals[i] = read
		default:
			argVals[i] = Evaluate(ctx, a)
		}
	}

	if !ctx.pushFrame() {
		ctx.Sink.Report(diag.RecursionLimit, n.Syntax().Loc(), n.Subroutine.Name())
		return constval.Bad()
	}
	for i, formal := range body.Formals {
		ctx.set(formal, argVals[i])
	}

	ctrl := execStmts(ctx, body.Stmts)

	var result constval.Value
	switch {
	case ctrl.kind == ctrlReturn:
		result = ctrl.value
	case !n.Type().IsVoid():
		ctx.Sink.Report(diag.MissingReturn, n.Syntax().Loc(), n.Subroutine.Name())
		result = constval.Bad()
	default:
		result = constval.Null()
	}

	outVals := make([]constval.Value, len(body.Formals))
	for i, formal := range body.Formals {
		if writers[i] != nil {
			outVals[i], _ = ctx.get(formal)
		}
	}
	ctx.popFrame()
	for i, write := range writers {
		if write != nil {
			write(outVals[i])
		}
	}
	return result
}
