package sqvalue

import "fmt"

// Type is the object-type word that prefixes every serialized value.
// The high byte carries runtime attribute flags and the low bits the raw type.
type Type uint32

// Reserved type words.
const (
	TypeNull     Type = 0x01000001
	TypeInteger  Type = 0x05000002
	TypeFloat    Type = 0x05000004
	TypeBool     Type = 0x01000008
	TypeString   Type = 0x08000010
	TypeClosure  Type = 0x08000100
	TypeInstance Type = 0x0A008000
)

// TagSize is the width of the type word in bytes.
const TagSize = 4

// typeNames is ordered by raw type bit.
var typeNames = []struct {
	typ  Type
	name string
}{
	{TypeNull, "null"},
	{TypeInteger, "integer"},
	{TypeFloat, "float"},
	{TypeBool, "bool"},
	{TypeString, "string"},
	{TypeClosure, "closure"},
	{TypeInstance, "instance"},
}

// String returns the lower-case name of the type.
func (t Type) String() string {
	for _, e := range typeNames {
		if e.typ == t {
			return e.name
		}
	}
	return fmt.Sprintf("type(0x%08x)", uint32(t))
}

// Known reports whether t is one of the reserved type words.
func (t Type) Known() bool {
	for _, e := range typeNames {
		if e.typ == t {
			return true
		}
	}
	return false
}
