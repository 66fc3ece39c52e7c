// Package eval implements the Evaluator (§4.F): constant folding over a
// bound expression/statement tree, lvalue resolution for assignment
// targets, and subroutine-call execution under a step and recursion
// budget so a malformed or runaway constant expression cannot hang
// elaboration.
package eval

import (
	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/oisee/svsema/pkg/symbols"
)

// DefaultStepBudget bounds the total number of evaluation steps (every
// statement execution and every expression fold ticks the budget) a
// single top-level Evaluate call may spend, covering both runaway
// recursion and runaway iteration (a for-loop with a constant-false exit
// condition) in one mechanism.
const DefaultStepBudget = 1_000_000

// DefaultRecursionLimit bounds subroutine call nesting depth.
const DefaultRecursionLimit = 256

// Frame holds one subroutine invocation's local variable bindings
// (formal arguments and locals of every nested block), keyed by symbol
// identity so shadowing across nested scopes is never ambiguous.
type Frame struct {
	locals map[*symbols.Symbol]constval.Value
}

func newFrame() *Frame {
	return &Frame{locals: make(map[*symbols.Symbol]constval.Value)}
}

// Context is the evaluator's per-evaluation state: the diagnostic sink,
// the call stack, and the step/recursion budgets. Script mirrors the
// host's script-mode flag (§4.F): when true, a handful of additional
// system constructs that only make sense outside elaboration-time
// constant folding would be permitted — this core's Non-goals exclude
// all of them, so the flag currently only threads through to
// diagnostics for context.
type Context struct {
	Sink   *diag.Sink
	Script bool

	frames     []*Frame
	steps      int
	stepBudget int
	maxDepth   int
}

// NewContext creates an evaluation context reporting to sink, with one
// top-level frame (script/elaboration-time expressions with no enclosing
// subroutine call still need somewhere to bind for-loop locals).
func NewContext(sink *diag.Sink) *Context {
	return &Context{
		Sink:       sink,
		frames:     []*Frame{newFrame()},
		stepBudget: DefaultStepBudget,
		maxDepth:   DefaultRecursionLimit,
	}
}

func (c *Context) top() *Frame { return c.frames[len(c.frames)-1] }

func (c *Context) pushFrame() bool {
	if len(c.frames) >= c.maxDepth {
		return false
	}
	c.frames = append(c.frames, newFrame())
	return true
}

func (c *Context) popFrame() {
	c.frames = c.frames[:len(c.frames)-1]
}

// tick spends one step of the budget, reporting diag.EvalTimeout and
// returning false the first time the budget is exhausted.
func (c *Context) tick(loc diag.Location) bool {
	c.steps++
	if c.steps > c.stepBudget {
		if c.steps == c.stepBudget+1 {
			c.Sink.Report(diag.EvalTimeout, loc)
		}
		return false
	}
	return true
}

func (c *Context) get(sym *symbols.Symbol) (constval.Value, bool) {
	if v, ok := c.top().locals[sym]; ok {
		return v, true
	}
	if sym.Kind() == symbols.KindParameter || sym.Kind() == symbols.KindEnumMember {
		return sym.ConstValue()
	}
	return constval.Bad(), false
}

func (c *Context) set(sym *symbols.Symbol, v constval.Value) {
	c.top().locals[sym] = v
}
