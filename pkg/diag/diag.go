// Package diag implements the diagnostics facade: a write-only sink that
// accepts structured {code, location, args} records from every other
// component (the binder, the evaluator, the type model) and accumulates
// them for the host to report.
//
// The accumulation structure mirrors the teacher's pkg/result.Table: a
// mutex-guarded slice with a stable Add/snapshot API safe for concurrent
// writers, since §5 allows independent design units to elaborate with
// their own binder/evaluator pair while sharing one diagnostic sink.
package diag

import (
	"fmt"
	"sort"
	"sync"
)

// Code is a stable diagnostic identifier. Values never change meaning or
// get renumbered across releases of the core.
type Code uint32

const (
	_ Code = iota
	ConstantRequiredViolation
	WidthMismatch
	UndeclaredIdentifier
	TypeMismatch
	DivisionByZero
	IndexOutOfBounds
	RecursionLimit
	ReturnOutsideSubroutine
	AmbiguousCall
	WrongArgumentCount
	InvalidLValue
	InvalidSelect
	MissingReturn
	NotConstant
	EvalTimeout
	UnsupportedConstruct
)

var names = map[Code]string{
	ConstantRequiredViolation: "constant-required-violation",
	WidthMismatch:             "width-mismatch",
	UndeclaredIdentifier:      "undeclared-identifier",
	TypeMismatch:              "type-mismatch",
	DivisionByZero:            "division-by-zero",
	IndexOutOfBounds:          "index-out-of-bounds",
	RecursionLimit:            "recursion-limit",
	ReturnOutsideSubroutine:   "return-outside-subroutine",
	AmbiguousCall:             "ambiguous-call",
	WrongArgumentCount:        "wrong-argument-count",
	InvalidLValue:             "invalid-lvalue",
	InvalidSelect:             "invalid-select",
	MissingReturn:             "missing-return",
	NotConstant:               "not-constant",
	EvalTimeout:               "eval-timeout",
	UnsupportedConstruct:      "unsupported-construct",
}

func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("diag-code-%d", uint32(c))
}

// Location is the opaque source-location handle the syntax-tree producer
// hands the core (§6); the core never interprets it, only forwards it.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is one structured record.
type Diagnostic struct {
	Code     Code
	Location Location
	Args     []any
}

func (d Diagnostic) String() string {
	if len(d.Args) == 0 {
		return fmt.Sprintf("%s: %s", d.Location, d.Code)
	}
	return fmt.Sprintf("%s: %s %v", d.Location, d.Code, d.Args)
}

// Sink accumulates diagnostics. The zero value is ready to use.
type Sink struct {
	mu   sync.Mutex
	recs []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink { return &Sink{} }

// Report appends a diagnostic. Safe for concurrent use.
func (s *Sink) Report(code Code, loc Location, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, Diagnostic{Code: code, Location: loc, Args: args})
}

// Diagnostics returns a stable-sorted copy (by location, then code) of
// everything reported so far.
func (s *Sink) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.recs))
	copy(out, s.recs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Location.Line != out[j].Location.Line {
			return out[i].Location.Line < out[j].Location.Line
		}
		if out[i].Location.Column != out[j].Location.Column {
			return out[i].Location.Column < out[j].Location.Column
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Len reports how many diagnostics have been reported.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}

// HasErrors reports whether any diagnostic has been recorded. The core
// does not assign severities (§6: "Severity is assigned by the sink");
// downstream hosts may re-classify, but for the core's own short-circuit
// decisions (e.g. "did binding fail"), any recorded diagnostic counts.
func (s *Sink) HasErrors() bool {
	return s.Len() > 0
}
