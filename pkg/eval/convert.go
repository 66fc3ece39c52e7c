package eval

import (
	"math"

	"github.com/oisee/svsema/pkg/constval"
	"github.com/oisee/svsema/pkg/svint"
	"github.com/oisee/svsema/pkg/svtype"
)

// convertValue folds an implicit or explicit Conversion node: it re-shapes
// an already-evaluated value to the target type, matching the binder's
// Assignable rules (§4.C) at the value level rather than the type level.
func convertValue(target *svtype.Type, v constval.Value) constval.Value {
	if v.Bad() {
		return v
	}
	switch {
	case target.IsIntegral():
		return convertToIntegral(target, v)
	case target.Kind() == svtype.KindReal || target.Kind() == svtype.KindShortReal:
		return convertToReal(target, v)
	case target.Kind() == svtype.KindString:
		return v
	default:
		return v
	}
}

func convertToIntegral(target *svtype.Type, v constval.Value) constval.Value {
	width := target.Width()
	signed := target.Signed()

	if sv, ok := v.Int(); ok {
		resized := resizeInt(sv, width)
		resized = resized.WithSign(signed)
		if target.FourState() {
			return constval.Integer(resized.AsFourState())
		}
		return constval.Integer(resized.AsTwoState())
	}
	if f, ok := v.Float(); ok {
		// real-to-integral rounds to nearest, ties away from zero, per LRM
		// 6.12; four-state types never carry unknowns for a value produced
		// this way.
		i := int64(math.Round(f))
		return constval.Integer(svint.FromInt64(width, signed, target.FourState(), i))
	}
	return constval.Bad()
}

func resizeInt(sv svint.SVInt, width uint32) svint.SVInt {
	if sv.Width() == width {
		return sv
	}
	if sv.Width() > width {
		return sv.Truncate(width)
	}
	return sv.Extend(width, sv.IsSigned())
}

func convertToReal(target *svtype.Type, v constval.Value) constval.Value {
	if sv, ok := v.Int(); ok {
		if sv.HasUnknown() {
			// LRM 6.12.2: a real converted from an X/Z integral is 0.0.
			if target.Kind() == svtype.KindShortReal {
				return constval.ShortReal(0)
			}
			return constval.Real(0)
		}
		var f float64
		if sv.IsSigned() {
			f = float64(sv.Int64())
		} else {
			f = float64(sv.Uint64())
		}
		if target.Kind() == svtype.KindShortReal {
			return constval.ShortReal(float32(f))
		}
		return constval.Real(f)
	}
	if f, ok := v.Float(); ok {
		if target.Kind() == svtype.KindShortReal {
			return constval.ShortReal(float32(f))
		}
		return constval.Real(f)
	}
	return constval.Bad()
}
