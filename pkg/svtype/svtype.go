// Package svtype implements the Type model: predefined scalars, packed and
// unpacked arrays, structs/unions, enums, and the equivalence and
// assignment-compatibility rules the binder consults at every expression
// boundary.
package svtype

import "fmt"

// Kind discriminates the closed set of Type variants.
type Kind uint8

const (
	KindError Kind = iota
	KindVoid
	KindNull
	KindEvent
	KindString
	KindReal
	KindShortReal
	KindRealTime
	KindTime
	KindIntegral // logic, bit, int, integer, shortint, longint, byte, and typedefs thereof
	KindPackedArray
	KindUnpackedArray
	KindStruct
	KindUnion
	KindEnum
)

func (k Kind) String() string {
	names := [...]string{
		"error", "void", "null", "event", "string", "real", "shortreal",
		"realtime", "time", "integral", "packed array", "unpacked array",
		"struct", "union", "enum",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Field describes one member of a struct or union, in declaration order.
type Field struct {
	Name   string
	Type   *Type
	Offset uint32 // bit offset from the start of the aggregate
}

// EnumMember is one named constant of an enum's underlying integral base.
type EnumMember struct {
	Name  string
	Value int64 // interpreted against the enum's base type's width/sign
}

// Type is a closed tagged union: the common header (Kind, Name) is always
// valid; the remaining fields are meaningful only for the matching Kind.
// Typedefs are not a Kind of their own — TypeAlias *symbols* resolve
// eagerly to the canonical Type they name (see pkg/symbols), so by the
// time a Type value exists here it is already canonical.
type Type struct {
	kind Kind
	name string // nominal name, used for struct/union/enum identity

	// Integral
	width     uint32
	signed    bool
	fourState bool

	// Packed/unpacked array
	elem            *Type
	packedLeft      int // declared range bounds, e.g. [7:0] -> left=7,right=0
	packedRight     int
	unpackedSize    int // number of elements, for fixed-size unpacked arrays

	// Struct/union
	fields []Field
	packed bool

	// Enum
	base    *Type
	members []EnumMember
}

var (
	errorType = &Type{kind: KindError, name: "error"}
	voidType  = &Type{kind: KindVoid, name: "void"}
	nullType  = &Type{kind: KindNull, name: "null"}
	eventType = &Type{kind: KindEvent, name: "event"}
	stringT   = &Type{kind: KindString, name: "string"}
	realT     = &Type{kind: KindReal, name: "real"}
	shortRealT = &Type{kind: KindShortReal, name: "shortreal"}
	realTimeT  = &Type{kind: KindRealTime, name: "realtime"}
	timeT      = &Type{kind: KindTime, name: "time"}
)

func Error() *Type     { return errorType }
func Void() *Type      { return voidType }
func Null() *Type      { return nullType }
func Event() *Type     { return eventType }
func StringType() *Type { return stringT }
func Real() *Type      { return realT }
func ShortReal() *Type { return shortRealT }
func RealTime() *Type  { return realTimeT }
func Time() *Type      { return timeT }

// Integral builds an integral type of the given shape. name is cosmetic
// (used in diagnostics/display) and does not affect equivalence, which is
// structural for integrals.
func Integral(name string, width uint32, signed, fourState bool) *Type {
	return &Type{kind: KindIntegral, name: name, width: width, signed: signed, fourState: fourState}
}

// Predefined scalar integral types, per the LRM's builtin type table.
func Logic(width uint32) *Type { return Integral("logic", width, false, true) }
func Bit(width uint32) *Type   { return Integral("bit", width, false, false) }
func Int() *Type               { return Integral("int", 32, true, false) }
func Integer() *Type           { return Integral("integer", 32, true, true) }
func ShortInt() *Type          { return Integral("shortint", 16, true, false) }
func LongInt() *Type           { return Integral("longint", 64, true, false) }
func Byte() *Type              { return Integral("byte", 8, true, false) }

// PackedArray builds a packed array type over an integral or packed
// element type with declared bounds [left:right].
func PackedArray(elem *Type, left, right int) *Type {
	return &Type{kind: KindPackedArray, elem: elem, packedLeft: left, packedRight: right, packed: true}
}

// UnpackedArray builds a fixed-size unpacked array of size elements.
func UnpackedArray(elem *Type, size int) *Type {
	return &Type{kind: KindUnpackedArray, elem: elem, unpackedSize: size}
}

// Struct builds a nominal struct or union type.
func Struct(name string, fields []Field, packed, isUnion bool) *Type {
	k := KindStruct
	if isUnion {
		k = KindUnion
	}
	return &Type{kind: k, name: name, fields: fields, packed: packed}
}

// Enum builds a nominal enum type over an integral base.
func Enum(name string, base *Type, members []EnumMember) *Type {
	return &Type{kind: KindEnum, name: name, base: base, members: members}
}

func (t *Type) Kind() Kind { return t.kind }
func (t *Type) Name() string {
	if t.name != "" {
		return t.name
	}
	return t.kind.String()
}

func (t *Type) IsError() bool { return t.kind == KindError }
func (t *Type) IsVoid() bool  { return t.kind == KindVoid }

func (t *Type) IsIntegral() bool {
	return t.kind == KindIntegral || t.kind == KindEnum || t.kind == KindPackedArray
}

func (t *Type) IsAggregate() bool {
	return t.kind == KindStruct || t.kind == KindUnion || t.kind == KindUnpackedArray || t.kind == KindPackedArray
}

func (t *Type) IsNumeric() bool {
	return t.IsIntegral() || t.kind == KindReal || t.kind == KindShortReal || t.kind == KindRealTime || t.kind == KindTime
}

// Width returns the integral bit width; for enums, the base type's width;
// for packed arrays, the flattened packed width. Panics if t is not
// integral-shaped; callers should guard with IsIntegral.
func (t *Type) Width() uint32 {
	switch t.kind {
	case KindIntegral:
		return t.width
	case KindEnum:
		return t.base.Width()
	case KindPackedArray:
		return t.elem.Width() * uint32(t.packedElementCount())
	default:
		panic(fmt.Sprintf("svtype: Width() on non-integral kind %s", t.kind))
	}
}

func (t *Type) packedElementCount() int {
	if t.packedLeft >= t.packedRight {
		return t.packedLeft - t.packedRight + 1
	}
	return t.packedRight - t.packedLeft + 1
}

func (t *Type) Signed() bool {
	switch t.kind {
	case KindIntegral:
		return t.signed
	case KindEnum:
		return t.base.Signed()
	default:
		return false
	}
}

func (t *Type) FourState() bool {
	switch t.kind {
	case KindIntegral:
		return t.fourState
	case KindEnum:
		return t.base.FourState()
	case KindPackedArray:
		return t.elem.FourState()
	default:
		return false
	}
}

// PackedBounds returns a packed array's declared [left:right] bounds.
// Panics if t is not a packed array.
func (t *Type) PackedBounds() (left, right int) {
	if t.kind != KindPackedArray {
		panic(fmt.Sprintf("svtype: PackedBounds() on non-packed-array kind %s", t.kind))
	}
	return t.packedLeft, t.packedRight
}

// UnpackedSize returns a fixed-size unpacked array's element count.
// Panics if t is not an unpacked array.
func (t *Type) UnpackedSize() int {
	if t.kind != KindUnpackedArray {
		panic(fmt.Sprintf("svtype: UnpackedSize() on non-unpacked-array kind %s", t.kind))
	}
	return t.unpackedSize
}

// ElementType returns the element type of an array; nil otherwise.
func (t *Type) ElementType() *Type {
	if t.kind == KindPackedArray || t.kind == KindUnpackedArray {
		return t.elem
	}
	return nil
}

// Fields returns the ordered field list of a struct/union; nil otherwise.
func (t *Type) Fields() []Field {
	return t.fields
}

// EnumMembers returns the enum's member list; nil otherwise.
func (t *Type) EnumMembers() []EnumMember {
	return t.members
}

func (t *Type) String() string {
	switch t.kind {
	case KindIntegral:
		sign := "unsigned"
		if t.signed {
			sign = "signed"
		}
		four := "2-state"
		if t.fourState {
			four = "4-state"
		}
		return fmt.Sprintf("%s[%d-bit %s %s]", t.Name(), t.width, sign, four)
	case KindPackedArray:
		return fmt.Sprintf("%s[%d:%d]", t.elem, t.packedLeft, t.packedRight)
	case KindUnpackedArray:
		return fmt.Sprintf("%s[%d]", t.elem, t.unpackedSize)
	case KindEnum, KindStruct, KindUnion:
		return t.name
	default:
		return t.kind.String()
	}
}
