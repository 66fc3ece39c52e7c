package svint

import "math/big"

// Concat concatenates operands MSB-first: parts[0] supplies the leftmost
// (most significant) bits. The result is always unsigned and four-state
// if any operand is.
func Concat(parts ...SVInt) SVInt {
	if len(parts) == 0 {
		panic("svint: Concat requires at least one operand")
	}
	totalWidth := uint32(0)
	four := false
	for _, p := range parts {
		totalWidth += p.width
		four = four || p.fourState
	}
	resVal := new(big.Int)
	resUnk := new(big.Int)
	pos := uint32(0)
	// parts[0] is MSB-most: lay out from the end backward so part[0] lands
	// in the highest bit positions.
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		val, unk, _ := p.widen()
		for b := uint32(0); b < p.width; b++ {
			if val.Bit(int(b)) != 0 {
				resVal.SetBit(resVal, int(pos+b), 1)
			}
			if unk.Bit(int(b)) != 0 {
				resUnk.SetBit(resUnk, int(pos+b), 1)
			}
		}
		pos += p.width
	}
	return pack(totalWidth, false, four, resVal, resUnk)
}

// Replicate is the replication operator {count{v}}.
func Replicate(count int, v SVInt) SVInt {
	if count <= 0 {
		panic("svint: Replicate count must be positive")
	}
	parts := make([]SVInt, count)
	for i := range parts {
		parts[i] = v
	}
	return Concat(parts...)
}
