package svint

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrBadLiteral is returned by ParseLiteral for malformed digit text.
var ErrBadLiteral = errors.New("svint: malformed literal")

func bitsPerDigit(base int) int {
	switch base {
	case 2:
		return 1
	case 8:
		return 3
	case 16:
		return 4
	default:
		return 0
	}
}

// ParseLiteral parses the digit text of a sized literal (e.g. the "10x0"
// in "4'b10x0"), in the given base, to a value of the declared width.
// Underscores are accepted as digit separators and ignored. Leading (i.e.
// most-significant, leftmost) X/Z digits extend through to fill any
// requested width beyond what the digit text spans; otherwise the fill is
// zero, per the LRM's sized-literal extension rule.
func ParseLiteral(digits string, width uint32, base int, signed bool) (SVInt, error) {
	checkWidth(width)
	clean := strings.ReplaceAll(digits, "_", "")
	if clean == "" {
		return SVInt{}, ErrBadLiteral
	}

	if base == 10 {
		return parseDecimalLiteral(clean, width, signed)
	}

	bpd := bitsPerDigit(base)
	if bpd == 0 {
		return SVInt{}, fmt.Errorf("%w: unsupported base %d", ErrBadLiteral, base)
	}

	// clean is MSB-first text; reverse to build LSB-first bit positions.
	val := new(big.Int)
	unk := new(big.Int)
	fourState := false
	pos := 0
	msbIsX, msbIsZ := false, false
	for i := len(clean) - 1; i >= 0; i-- {
		c := clean[i]
		var nibble int
		isX, isZ := false, false
		switch {
		case c == 'x' || c == 'X':
			isX = true
		case c == 'z' || c == 'Z' || c == '?':
			isZ = true
		default:
			n, err := digitValue(c, base)
			if err != nil {
				return SVInt{}, err
			}
			nibble = n
		}
		if isX || isZ {
			fourState = true
			for b := 0; b < bpd; b++ {
				bitPos := pos + b
				unk.SetBit(unk, bitPos, 1)
				if isZ {
					val.SetBit(val, bitPos, 1)
				}
			}
			if i == 0 {
				msbIsX, msbIsZ = isX, isZ
			}
		} else {
			for b := 0; b < bpd; b++ {
				bitPos := pos + b
				if (nibble>>uint(b))&1 != 0 {
					val.SetBit(val, bitPos, 1)
				}
			}
		}
		pos += bpd
	}

	parsedWidth := uint32(pos)
	result := SVInt{width: parsedWidth, signed: signed, fourState: fourState}
	if fourState {
		result.val, result.unknown = val, unk
	} else if parsedWidth <= 64 {
		result.inline, result.small = true, val.Uint64()
	} else {
		result.val = val
	}

	switch {
	case width == parsedWidth:
		return result, nil
	case width < parsedWidth:
		return result.Truncate(width), nil
	default:
		if msbIsX || msbIsZ {
			// Fill every extra high bit with the leading digit's own symbol.
			val := new(big.Int).Set(result.valueBig())
			unk := new(big.Int).Set(result.unknownBig())
			for i := parsedWidth; i < width; i++ {
				unk.SetBit(unk, int(i), 1)
				if msbIsZ {
					val.SetBit(val, int(i), 1)
				}
			}
			return pack(width, signed, true, val, unk), nil
		}
		return result.Extend(width, false), nil
	}
}

func digitValue(c byte, base int) (int, error) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = int(c-'A') + 10
	default:
		return 0, fmt.Errorf("%w: invalid digit %q", ErrBadLiteral, c)
	}
	if v >= base {
		return 0, fmt.Errorf("%w: digit %q out of range for base %d", ErrBadLiteral, c, base)
	}
	return v, nil
}

func parseDecimalLiteral(clean string, width uint32, signed bool) (SVInt, error) {
	lower := strings.ToLower(clean)
	if lower == "x" {
		return New(width, signed, true), nil
	}
	if lower == "z" {
		r := New(width, signed, true)
		r.val = maskFor(width)
		return r, nil
	}
	n, ok := new(big.Int).SetString(clean, 10)
	if !ok {
		return SVInt{}, fmt.Errorf("%w: %q is not a decimal literal", ErrBadLiteral, clean)
	}
	return FromBigInt(width, signed, false, n), nil
}

// FormatDigits renders v's digit text in the given base, suitable to be
// fed back into ParseLiteral with the same width/base/signed to recover
// an equal value (the canonical round-trip property).
func (v SVInt) FormatDigits(base int) string {
	if base == 10 {
		if v.HasUnknown() {
			if v.unknownBig().Cmp(maskFor(v.width)) == 0 {
				return "x"
			}
			return "x" // decimal cannot express partial-unknown; collapse to X
		}
		return effective(v, v.signed).String()
	}
	bpd := bitsPerDigit(base)
	if bpd == 0 {
		return effective(v, v.signed).String()
	}
	digits := (int(v.width) + bpd - 1) / bpd
	var sb strings.Builder
	for d := digits - 1; d >= 0; d-- {
		start := uint32(d * bpd)
		allX, allZ := true, true
		nibble := 0
		for b := 0; b < bpd; b++ {
			bit := start + uint32(b)
			if bit >= v.width {
				continue
			}
			val, unk := v.bitAt(bit)
			if unk {
				if val {
					allX = false
				} else {
					allZ = false
				}
			} else {
				allX, allZ = false, false
				if val {
					nibble |= 1 << uint(b)
				}
			}
		}
		switch {
		case allX && v.HasUnknown():
			sb.WriteByte('x')
		case allZ && v.HasUnknown():
			sb.WriteByte('z')
		default:
			sb.WriteByte(hexDigit(nibble))
		}
	}
	return sb.String()
}

func hexDigit(n int) byte {
	if n < 10 {
		return byte('0' + n)
	}
	return byte('a' + n - 10)
}

func (v SVInt) toBaseString(base int) string {
	return v.FormatDigits(base)
}
