package svtype

// Compatibility is the result of an assignment-compatibility check.
type Compatibility uint8

const (
	// None: no conversion exists; the binder must diagnose.
	None Compatibility = iota
	// Implicit: the binder inserts an implicit Conversion node, possibly
	// warning on narrowing.
	Implicit
	// Explicit: a conversion exists only via an explicit user-written
	// cast; absent one, the binder diagnoses.
	Explicit
)

// Assignable implements §4.C's assignment-compatibility table. rhs is
// being assigned/converted into lhs's shape.
func Assignable(lhs, rhs *Type) Compatibility {
	if lhs.IsError() || rhs.IsError() {
		return Implicit // already-diagnosed; do not cascade
	}
	if lhs.kind == KindVoid || rhs.kind == KindVoid {
		return None
	}

	switch {
	case lhs.IsIntegral() && rhs.IsIntegral():
		return Implicit
	case lhs.IsIntegral() && rhs.kind == KindString:
		return Implicit // LRM string-packing rules
	case lhs.kind == KindString && rhs.IsIntegral():
		return Implicit
	case lhs.IsIntegral() && isRealKind(rhs.kind):
		return Implicit // rounds toward nearest, ties away from zero
	case isRealKind(lhs.kind) && rhs.IsIntegral():
		return Implicit
	case isRealKind(lhs.kind) && isRealKind(rhs.kind):
		return Implicit
	case lhs.kind == KindString && rhs.kind == KindString:
		return Implicit
	case lhs.kind == KindNull || rhs.kind == KindNull:
		return Implicit // class handles / null; core does not model classes
	}

	if lhs.kind != rhs.kind {
		return None
	}

	switch lhs.kind {
	case KindUnpackedArray:
		if lhs.unpackedSize != rhs.unpackedSize {
			return None
		}
		return elementAssignable(lhs.elem, rhs.elem)
	case KindPackedArray:
		if lhs.packedElementCount() != rhs.packedElementCount() {
			return None
		}
		return elementAssignable(lhs.elem, rhs.elem)
	case KindStruct, KindUnion:
		if Equivalent(lhs, rhs) {
			return Implicit
		}
		if lhs.packed && rhs.packed && FieldsEquivalent(lhs.fields, rhs.fields) {
			return Implicit // packed structs: structural fallback
		}
		return None
	case KindEnum:
		if Equivalent(lhs, rhs) {
			return Implicit
		}
		return Explicit // enum-to-enum needs an explicit cast
	default:
		if Equivalent(lhs, rhs) {
			return Implicit
		}
		return None
	}
}

func elementAssignable(lhs, rhs *Type) Compatibility {
	c := Assignable(lhs, rhs)
	if c == Implicit {
		return Implicit
	}
	return None
}

func isRealKind(k Kind) bool {
	return k == KindReal || k == KindShortReal || k == KindRealTime
}

// BinaryOperatorType computes the common type two integral operands share
// for an arithmetic/bitwise binary operator (§4.E): max width, signed iff
// both signed, four-state iff either operand is four-state or
// forceFourState is set (set for operators the LRM always treats as
// 4-state capable, like division).
func BinaryOperatorType(lt, rt *Type, forceFourState bool) *Type {
	width := lt.Width()
	if rt.Width() > width {
		width = rt.Width()
	}
	signed := lt.Signed() && rt.Signed()
	fourState := forceFourState || lt.FourState() || rt.FourState()
	return Integral("", width, signed, fourState)
}
