package svint

import "math/big"

// widen returns v re-expressed with explicit val/unknown big.Int fields,
// regardless of its original storage mode. Used internally before any
// operation that needs bit-level manipulation beyond plain uint64 math.
func (v SVInt) widen() (val, unknown *big.Int, fourState bool) {
	if v.fourState {
		return new(big.Int).Set(v.valueBig()), new(big.Int).Set(v.unknownBig()), true
	}
	return new(big.Int).Set(v.valueBig()), big.NewInt(0), false
}

func pack(width uint32, signed, fourState bool, val, unknown *big.Int) SVInt {
	checkWidth(width)
	val = new(big.Int).And(val, maskFor(width))
	if fourState {
		unknown = new(big.Int).And(unknown, maskFor(width))
		// The value bit under a set unknown bit is kept as passed: it
		// discriminates X (0) from Z (1).
		return SVInt{width: width, signed: signed, fourState: true, val: val, unknown: unknown}
	}
	if width <= 64 {
		return SVInt{width: width, signed: signed, inline: true, small: val.Uint64()}
	}
	return SVInt{width: width, signed: signed, val: val}
}

// Extend returns v sign- or zero-extended (per signed) to toWidth,
// preserving unknown bits bit-wise. toWidth must be >= v.Width().
func (v SVInt) Extend(toWidth uint32, signed bool) SVInt {
	if toWidth < v.width {
		panic("svint: Extend to smaller width, use Truncate")
	}
	if toWidth == v.width {
		r := v
		r.signed = signed
		return r
	}
	val, unk, four := v.widen()
	extendBit := func(src *big.Int) *big.Int {
		out := new(big.Int).Set(src)
		if signed && v.width > 0 && src.Bit(int(v.width)-1) != 0 {
			for i := v.width; i < toWidth; i++ {
				out.SetBit(out, int(i), 1)
			}
		}
		return out
	}
	newVal := extendBit(val)
	newUnk := unk
	if four {
		newUnk = new(big.Int).Set(unk)
		if signed && v.width > 0 && unk.Bit(int(v.width)-1) != 0 {
			topVal := val.Bit(int(v.width) - 1)
			for i := v.width; i < toWidth; i++ {
				newUnk.SetBit(newUnk, int(i), 1)
				newVal.SetBit(newVal, int(i), topVal)
			}
		}
	}
	return pack(toWidth, signed, four, newVal, newUnk)
}

// Truncate drops the most-significant bits down to toWidth.
func (v SVInt) Truncate(toWidth uint32) SVInt {
	if toWidth > v.width {
		panic("svint: Truncate to larger width, use Extend")
	}
	if toWidth == v.width {
		return v
	}
	val, unk, four := v.widen()
	return pack(toWidth, v.signed, four, val, unk)
}

// Uint64 returns v's low 64 bits as an unsigned integer, ignoring any
// unknown bits (callers needing to distinguish a fully-known value must
// check HasUnknown first; this is used for indices, widths, and counts,
// which the evaluator has already confirmed are constant and known).
func (v SVInt) Uint64() uint64 {
	return v.valueBig().Uint64()
}

// Int64 returns v's value reinterpreted as a signed 64-bit integer when
// v is signed, or as Uint64 otherwise.
func (v SVInt) Int64() int64 {
	if !v.signed {
		return int64(v.Uint64())
	}
	return toSigned(v.valueBig(), v.width).Int64()
}

// WithSign returns v reinterpreted with a different signedness, same bits.
func (v SVInt) WithSign(signed bool) SVInt {
	r := v
	r.signed = signed
	return r
}

// AsFourState upgrades a two-state value to four-state representation with
// no unknown bits (a no-op if v is already four-state).
func (v SVInt) AsFourState() SVInt {
	if v.fourState {
		return v
	}
	return pack(v.width, v.signed, true, v.valueBig(), big.NewInt(0))
}

// AsTwoState downgrades a four-state value, replacing any X/Z bit with 0.
func (v SVInt) AsTwoState() SVInt {
	if !v.fourState {
		return v
	}
	val := new(big.Int).Set(v.valueBig())
	unk := v.unknownBig()
	for i := 0; i < int(v.width); i++ {
		if unk.Bit(i) != 0 {
			val.SetBit(val, i, 0)
		}
	}
	return pack(v.width, v.signed, false, val, nil)
}
