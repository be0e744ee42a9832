package sqvalue

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
)

// Value is a decoded runtime value. The zero Value is Null.
//
// Only the payload field matching the type is meaningful; the others stay
// zero so that Equal and Hash can compare the whole struct.
type Value struct {
	typ Type
	b   bool
	i   int32
	f   float32
	s   string
}

// Null is the null value. All null values are equal.
var Null = Value{typ: TypeNull}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{typ: TypeBool, b: b} }

// Int returns an Integer value.
func Int(n int32) Value { return Value{typ: TypeInteger, i: n} }

// Float returns a Float value.
func Float(f float32) Value { return Value{typ: TypeFloat, f: f} }

// String returns a String value.
func String(s string) Value { return Value{typ: TypeString, s: s} }

// Closure returns an opaque closure placeholder.
func Closure() Value { return Value{typ: TypeClosure} }

// Instance returns an opaque instance placeholder.
func Instance() Value { return Value{typ: TypeInstance} }

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Type returns the value's type word.
func (v Value) Type() Type {
	if v.typ == 0 {
		return TypeNull
	}
	return v.typ
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.Type() == TypeNull }

func (v Value) wrongType(want Type) error {
	return fmt.Errorf("%w: have %s, want %s", ErrWrongType, v.Type(), want)
}

// AsBool returns the payload of a Bool value.
func (v Value) AsBool() (bool, error) {
	if v.Type() != TypeBool {
		return false, v.wrongType(TypeBool)
	}
	return v.b, nil
}

// AsInt32 returns the payload of an Integer value.
func (v Value) AsInt32() (int32, error) {
	if v.Type() != TypeInteger {
		return 0, v.wrongType(TypeInteger)
	}
	return v.i, nil
}

// AsFloat32 returns the payload of a Float value.
func (v Value) AsFloat32() (float32, error) {
	if v.Type() != TypeFloat {
		return 0, v.wrongType(TypeFloat)
	}
	return v.f, nil
}

// AsText returns the payload of a String value.
func (v Value) AsText() (string, error) {
	if v.Type() != TypeString {
		return "", v.wrongType(TypeString)
	}
	return v.s, nil
}

// ---------------------------------------------------------------------------
// Equality and hashing
// ---------------------------------------------------------------------------

// Equal reports whether v and o have the same type and payload.
// Floats compare by bit pattern, so NaN payloads with equal bits are equal.
func (v Value) Equal(o Value) bool {
	if v.Type() != o.Type() {
		return false
	}
	switch v.Type() {
	case TypeBool:
		return v.b == o.b
	case TypeInteger:
		return v.i == o.i
	case TypeFloat:
		return math.Float32bits(v.f) == math.Float32bits(o.f)
	case TypeString:
		return v.s == o.s
	default:
		return true
	}
}

// Hash returns a hash of the type word and payload. Equal values hash equal.
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	var buf [TagSize]byte
	WriteUint32(buf[:], uint32(v.Type()))
	h.Write(buf[:])

	switch v.Type() {
	case TypeBool:
		if v.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case TypeInteger:
		WriteUint32(buf[:], uint32(v.i))
		h.Write(buf[:])
	case TypeFloat:
		WriteUint32(buf[:], math.Float32bits(v.f))
		h.Write(buf[:])
	case TypeString:
		h.Write([]byte(v.s))
	}
	return h.Sum64()
}

// String renders v for logs and diagnostics.
func (v Value) String() string {
	switch v.Type() {
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeInteger:
		return strconv.FormatInt(int64(v.i), 10)
	case TypeFloat:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case TypeString:
		return strconv.Quote(v.s)
	case TypeClosure:
		return "<closure>"
	case TypeInstance:
		return "<instance>"
	default:
		return "null"
	}
}
