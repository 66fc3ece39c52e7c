package svint

import "math/big"

// shiftAmount extracts a non-negative shift distance from a self-determined
// (unsigned-treated) operand; an unknown amount makes the whole shift X.
func shiftAmount(o SVInt) (amount uint32, unknown bool) {
	if o.HasUnknown() {
		return 0, true
	}
	n := o.valueBig()
	if n.Sign() < 0 || !n.IsUint64() || n.Uint64() > uint64(MaxWidth) {
		return MaxWidth, false // shifts everything out
	}
	return uint32(n.Uint64()), false
}

// Shl is logical left shift '<<'. Result type is the left operand's type
// (shift amount is self-determined and does not widen the result).
func (v SVInt) Shl(o SVInt) SVInt {
	amt, unk := shiftAmount(o)
	if unk {
		return AllX(v.width, v.signed)
	}
	val, unkBits, four := v.widen()
	shiftedVal := new(big.Int).Lsh(val, uint(amt))
	shiftedUnk := new(big.Int).Lsh(unkBits, uint(amt))
	return pack(v.width, v.signed, four, shiftedVal, shiftedUnk)
}

// Lshr is logical right shift '>>': zero-fills from the top.
func (v SVInt) Lshr(o SVInt) SVInt {
	amt, unk := shiftAmount(o)
	if unk {
		return AllX(v.width, v.signed)
	}
	val, unkBits, four := v.widen()
	shiftedVal := new(big.Int).Rsh(val, uint(amt))
	shiftedUnk := new(big.Int).Rsh(unkBits, uint(amt))
	return pack(v.width, v.signed, four, shiftedVal, shiftedUnk)
}

// Ashr is arithmetic right shift '>>>': sign-extends from the top when v is
// signed (LRM: unsigned operands behave like Lshr under >>>).
func (v SVInt) Ashr(o SVInt) SVInt {
	if !v.signed {
		return v.Lshr(o)
	}
	amt, unk := shiftAmount(o)
	if unk {
		return AllX(v.width, v.signed)
	}
	if amt >= v.width {
		amt = v.width
	}
	val, unkBits, four := v.widen()
	topVal := val.Bit(int(v.width) - 1)
	topUnk := unkBits.Bit(int(v.width) - 1)

	shiftedVal := new(big.Int).Rsh(val, uint(amt))
	shiftedUnk := new(big.Int).Rsh(unkBits, uint(amt))
	for i := v.width - amt; i < v.width; i++ {
		shiftedVal.SetBit(shiftedVal, int(i), topVal)
		shiftedUnk.SetBit(shiftedUnk, int(i), topUnk)
	}
	return pack(v.width, v.signed, four, shiftedVal, shiftedUnk)
}
