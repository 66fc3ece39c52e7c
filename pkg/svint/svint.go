// Package svint implements arbitrary-width, optionally four-state integer
// values and their arithmetic — the representation SystemVerilog uses for
// every integral expression and constant.
//
// Representation follows the LRM's bit-level rules directly: a value word
// plus, for four-state values, an unknown-bit mask. A set unknown bit means
// the corresponding value bit does not hold 0/1; the value bit then
// discriminates X (0) from Z (1), mirroring how real four-state simulators
// pack logic values two bits at a time.
//
// Widths up to 64 with no four-state tracking stay in a native uint64 for
// speed; anything wider, or carrying unknowns, spills to big.Int pairs.
package svint

import (
	"fmt"
	"math/big"
)

// MaxWidth is the exclusive upper bound on a value's bit width: widths
// run from 1 to 2^24-1, per the data model's width invariant.
const MaxWidth = 1 << 24

// SVInt is an immutable arbitrary-width integer. Zero value is not valid;
// construct with New, FromUint64, FromBigInt, or ParseLiteral.
type SVInt struct {
	width     uint32
	signed    bool
	fourState bool

	inline bool   // true when using small instead of val/unknown
	small  uint64 // used when inline

	val     *big.Int // value bits, masked to width; nil when inline
	unknown *big.Int // unknown-bit mask, masked to width; nil when !fourState
}

func checkWidth(width uint32) {
	if width == 0 {
		panic("svint: width must be >= 1")
	}
	if width >= MaxWidth {
		panic("svint: width exceeds maximum")
	}
}

func maskFor(width uint32) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return m.Sub(m, big.NewInt(1))
}

func maskUint64(width uint32) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// New returns the all-zero (or all-X, for fourState) value of the given
// shape. fourState values start all-X, matching an uninitialized 'logic'.
func New(width uint32, signed, fourState bool) SVInt {
	checkWidth(width)
	if fourState {
		v := SVInt{width: width, signed: signed, fourState: true}
		v.val = big.NewInt(0)
		v.unknown = maskFor(width)
		return v
	}
	if width <= 64 {
		return SVInt{width: width, signed: signed, inline: true}
	}
	return SVInt{width: width, signed: signed, val: big.NewInt(0)}
}

// FromUint64 builds a known-value, two-state (or four-state with no
// unknown bits, if fourState is requested) integer, masked to width.
func FromUint64(width uint32, signed, fourState bool, v uint64) SVInt {
	checkWidth(width)
	v &= maskUint64(width)
	if fourState {
		r := SVInt{width: width, signed: signed, fourState: true}
		r.val = new(big.Int).SetUint64(v)
		r.unknown = big.NewInt(0)
		return r
	}
	if width <= 64 {
		return SVInt{width: width, signed: signed, inline: true, small: v}
	}
	return SVInt{width: width, signed: signed, val: new(big.Int).SetUint64(v)}
}

// FromInt64 is FromUint64 for signed literals; negative values are
// represented in two's complement at the declared width.
func FromInt64(width uint32, signed, fourState bool, v int64) SVInt {
	bi := new(big.Int).And(big.NewInt(v), maskFor(width))
	return FromBigInt(width, signed, fourState, bi)
}

// FromBigInt builds a known-value integer from an arbitrary-precision
// magnitude, masking to width.
func FromBigInt(width uint32, signed, fourState bool, v *big.Int) SVInt {
	checkWidth(width)
	m := new(big.Int).And(v, maskFor(width))
	if fourState {
		r := SVInt{width: width, signed: signed, fourState: true}
		r.val = m
		r.unknown = big.NewInt(0)
		return r
	}
	if width <= 64 {
		return SVInt{width: width, signed: signed, inline: true, small: m.Uint64()}
	}
	return SVInt{width: width, signed: signed, val: m}
}

// AllX returns a fully-unknown (all bits X) value of the given width.
func AllX(width uint32, signed bool) SVInt {
	return New(width, signed, true)
}

func (v SVInt) Width() uint32     { return v.width }
func (v SVInt) IsSigned() bool    { return v.signed }
func (v SVInt) IsFourState() bool { return v.fourState }

// HasUnknown reports whether any bit of v is X or Z.
func (v SVInt) HasUnknown() bool {
	return v.fourState && v.unknown.Sign() != 0
}

// valueBig returns the value word as a big.Int, regardless of storage mode.
func (v SVInt) valueBig() *big.Int {
	if v.inline {
		return new(big.Int).SetUint64(v.small)
	}
	if v.val == nil {
		return big.NewInt(0)
	}
	return v.val
}

func (v SVInt) unknownBig() *big.Int {
	if !v.fourState || v.unknown == nil {
		return big.NewInt(0)
	}
	return v.unknown
}

// bitAt reports the (value-bit, is-unknown) pair at bit index i.
// When is-unknown is true, value-bit distinguishes X (0) from Z (1).
func (v SVInt) bitAt(i uint32) (value, unknown bool) {
	if i >= v.width {
		return false, false
	}
	if v.inline {
		return (v.small>>i)&1 != 0, false
	}
	unk := v.unknownBig().Bit(int(i)) != 0
	val := v.valueBig().Bit(int(i)) != 0
	return val, unk
}

// BitIsX reports whether bit i is the unknown value X.
func (v SVInt) BitIsX(i uint32) bool {
	val, unk := v.bitAt(i)
	return unk && !val
}

// BitIsZ reports whether bit i is the high-impedance value Z.
func (v SVInt) BitIsZ(i uint32) bool {
	val, unk := v.bitAt(i)
	return unk && val
}

// Equal is raw structural equality of representation (used by tests); it
// is NOT the four-state logical '==' operator.
func (v SVInt) Equal(o SVInt) bool {
	if v.width != o.width || v.signed != o.signed || v.fourState != o.fourState {
		return false
	}
	if v.fourState {
		return v.valueBig().Cmp(o.valueBig()) == 0 && v.unknownBig().Cmp(o.unknownBig()) == 0
	}
	if v.inline && o.inline {
		return v.small == o.small
	}
	return v.valueBig().Cmp(o.valueBig()) == 0
}

func (v SVInt) String() string {
	return v.toBaseString(2)
}

func (v SVInt) GoString() string {
	return fmt.Sprintf("svint.SVInt{width:%d,signed:%v,fourState:%v,val:%s}",
		v.width, v.signed, v.fourState, v.String())
}
