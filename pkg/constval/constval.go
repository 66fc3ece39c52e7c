// Package constval implements ConstantValue, the tagged union every
// elaboration-time value flows through: integers, reals, strings, nulls,
// unbounded-range markers, and arrays of the same.
package constval

import (
	"fmt"
	"strings"

	"github.com/oisee/svsema/pkg/svint"
)

// Kind discriminates the ConstantValue variants.
type Kind uint8

const (
	KindBad Kind = iota
	KindInteger
	KindReal
	KindShortReal
	KindString
	KindNull
	KindUnbounded
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindBad:
		return "bad"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindShortReal:
		return "shortreal"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindUnbounded:
		return "unbounded"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the ConstantValue sum type. Zero value is the bad state, so a
// never-initialized Value fails closed rather than reading as integer 0.
type Value struct {
	kind Kind

	integer svint.SVInt
	real    float64
	str     string
	array   []Value
}

// Bad is the distinguished failure marker: a previously diagnosed error
// whose propagation should not trigger further diagnostics.
func Bad() Value { return Value{kind: KindBad} }

// Null is the `null` constant.
func Null() Value { return Value{kind: KindNull} }

// Unbounded is the `$` unbounded-range marker.
func Unbounded() Value { return Value{kind: KindUnbounded} }

// Integer wraps an SVInt.
func Integer(v svint.SVInt) Value { return Value{kind: KindInteger, integer: v} }

// Real wraps a double-precision real.
func Real(v float64) Value { return Value{kind: KindReal, real: v} }

// ShortReal wraps a single-precision shortreal, stored widened but tagged
// so callers know to round-trip through float32 on access.
func ShortReal(v float32) Value { return Value{kind: KindShortReal, real: float64(v)} }

// String wraps a UTF-8 string constant.
func String(v string) Value { return Value{kind: KindString, str: v} }

// Array wraps an ordered sequence of element values (packed or unpacked;
// the caller's Type tracks which).
func Array(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, array: cp}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) Bad() bool    { return v.kind == KindBad }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the wrapped SVInt; ok is false if v is not an integer.
func (v Value) Int() (svint.SVInt, bool) {
	if v.kind != KindInteger {
		return svint.SVInt{}, false
	}
	return v.integer, true
}

// Float returns the wrapped real/shortreal as float64; ok is false
// otherwise.
func (v Value) Float() (float64, bool) {
	if v.kind != KindReal && v.kind != KindShortReal {
		return 0, false
	}
	return v.real, true
}

// Str returns the wrapped string; ok is false otherwise.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Elements returns the wrapped array's elements; ok is false otherwise.
func (v Value) Elements() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.array, true
}

func (v Value) String() string {
	switch v.kind {
	case KindBad:
		return "<bad>"
	case KindInteger:
		return v.integer.String()
	case KindReal:
		return fmt.Sprintf("%g", v.real)
	case KindShortReal:
		return fmt.Sprintf("%g", float32(v.real))
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindNull:
		return "null"
	case KindUnbounded:
		return "$"
	case KindArray:
		parts := make([]string, len(v.array))
		for i, e := range v.array {
			parts[i] = e.String()
		}
		return "'{" + strings.Join(parts, ", ") + "}"
	default:
		return "<invalid>"
	}
}
