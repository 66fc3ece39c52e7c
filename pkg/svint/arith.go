package svint

import "math/big"

func commonWidth(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func commonShape(a, b SVInt, forceFourState bool) (width uint32, signed, fourState bool) {
	width = commonWidth(a.width, b.width)
	signed = a.signed && b.signed
	fourState = forceFourState || a.fourState || b.fourState
	return
}

// toSigned interprets the low `width` bits of m as a two's-complement value.
func toSigned(m *big.Int, width uint32) *big.Int {
	r := new(big.Int).Set(m)
	if width > 0 && r.Bit(int(width)-1) != 0 {
		full := new(big.Int).Lsh(big.NewInt(1), uint(width))
		r.Sub(r, full)
	}
	return r
}

// Add returns v + o per LRM arithmetic rules: any unknown operand bit
// collapses the whole result to all-X at the common width.
func (v SVInt) Add(o SVInt) SVInt {
	width, signed, four := commonShape(v, o, false)
	if v.HasUnknown() || o.HasUnknown() {
		return AllX(width, signed)
	}
	sum := new(big.Int).Add(effective(v, signed), effective(o, signed))
	return FromBigInt(width, signed, four, sum)
}

func (v SVInt) Sub(o SVInt) SVInt {
	width, signed, four := commonShape(v, o, false)
	if v.HasUnknown() || o.HasUnknown() {
		return AllX(width, signed)
	}
	diff := new(big.Int).Sub(effective(v, signed), effective(o, signed))
	return FromBigInt(width, signed, four, diff)
}

func (v SVInt) Mul(o SVInt) SVInt {
	width, signed, four := commonShape(v, o, false)
	if v.HasUnknown() || o.HasUnknown() {
		return AllX(width, signed)
	}
	prod := new(big.Int).Mul(effective(v, signed), effective(o, signed))
	return FromBigInt(width, signed, four, prod)
}

// Div returns v / o, truncating toward zero for signed operands. divByZero
// reports whether o was (known) zero; in that case the result is all-X at
// v's width, per the failure-mode contract, and the caller (the evaluator)
// is responsible for recording a DivisionByZero diagnostic.
func (v SVInt) Div(o SVInt) (result SVInt, divByZero bool) {
	width := v.width
	signed := v.signed && o.signed
	four := v.fourState || o.fourState
	if v.HasUnknown() || o.HasUnknown() {
		return AllX(width, signed), false
	}
	if o.valueBig().Sign() == 0 {
		return AllX(width, signed), true
	}
	q := new(big.Int).Quo(effective(v, signed), effective(o, signed))
	return FromBigInt(width, signed, four, q), false
}

// Mod returns v % o with the sign of v (LRM modulo semantics), or all-X at
// v's width when o is (known) zero.
func (v SVInt) Mod(o SVInt) (result SVInt, divByZero bool) {
	width := v.width
	signed := v.signed && o.signed
	four := v.fourState || o.fourState
	if v.HasUnknown() || o.HasUnknown() {
		return AllX(width, signed), false
	}
	if o.valueBig().Sign() == 0 {
		return AllX(width, signed), true
	}
	r := new(big.Int).Rem(effective(v, signed), effective(o, signed))
	return FromBigInt(width, signed, four, r), false
}

// Pow returns v ** o. The exponent is read as signed only when both
// operands are signed; a negative exponent on an integer base follows
// LRM 11.4.4's degenerate cases:
// 0 for |base|>1 with negative exponent, 1 for base==1, -1 base alternates.
func (v SVInt) Pow(o SVInt) SVInt {
	width, signed, four := commonShape(v, o, false)
	if v.HasUnknown() || o.HasUnknown() {
		return AllX(width, signed)
	}
	base := effective(v, signed)
	exp := effective(o, signed)
	if exp.Sign() < 0 {
		switch {
		case base.CmpAbs(big.NewInt(1)) > 0:
			return FromInt64(width, signed, four, 0)
		case base.Cmp(big.NewInt(1)) == 0:
			return FromInt64(width, signed, four, 1)
		case base.Cmp(big.NewInt(-1)) == 0:
			if exp.Bit(0) == 0 {
				return FromInt64(width, signed, four, 1)
			}
			return FromInt64(width, signed, four, -1)
		default:
			return FromBigInt(width, signed, four, big.NewInt(0))
		}
	}
	res := new(big.Int).Exp(base, exp, nil)
	return FromBigInt(width, signed, four, res)
}

// Neg returns the two's-complement negation (unary '-').
func (v SVInt) Neg() SVInt {
	if v.HasUnknown() {
		return AllX(v.width, v.signed)
	}
	neg := new(big.Int).Neg(effective(v, true))
	return FromBigInt(v.width, v.signed, v.fourState, neg)
}

// effective returns v's value as a plain integer, signed-interpreted when
// requested, for use as an arithmetic operand.
func effective(v SVInt, signed bool) *big.Int {
	m := v.valueBig()
	if signed {
		return toSigned(m, v.width)
	}
	return m
}
