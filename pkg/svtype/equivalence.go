package svtype

// Equivalent implements type equivalence (§4.C): structural on integrals
// (same width, signed, four-state), identity on nominal types (struct,
// union, enum — after alias resolution, which already happened before a
// Type value existed), and element-and-shape equality on arrays.
func Equivalent(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindIntegral:
		return a.width == b.width && a.signed == b.signed && a.fourState == b.fourState
	case KindPackedArray, KindUnpackedArray:
		return Equivalent(a.elem, b.elem) && a.packedLeft == b.packedLeft &&
			a.packedRight == b.packedRight && a.unpackedSize == b.unpackedSize
	case KindStruct, KindUnion, KindEnum:
		// Nominal: equivalence requires being the very same declared type.
		// Since canonical Type values for a given declaration are shared
		// (a type-alias symbol, symbols.KindTypeAlias, holds one *Type
		// per declaration), pointer identity already covers this; two
		// distinct struct declarations with identical field lists are
		// NOT equivalent even though a==b fails above.
		return false
	default:
		return true // error/void/null/event/string/real/shortreal/realtime/time are singletons
	}
}

// FieldsEquivalent reports whether two field-type lists match element-wise
// (used by packed-struct assignment compatibility, which allows structural
// matching for packed structs per the LRM exception to nominal typing).
func FieldsEquivalent(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !Equivalent(a[i].Type, b[i].Type) {
			return false
		}
	}
	return true
}
