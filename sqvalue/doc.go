// Package sqvalue decodes serialized scripting-runtime values as they appear
// in replay metadata blocks.
//
// Each value on the wire is a 4-byte little-endian object-type word followed
// by a type-specific payload:
//   - Null: no payload
//   - Bool: 1 byte, non-zero is true
//   - Integer: 32-bit signed little-endian
//   - Float: 32-bit IEEE 754 little-endian
//   - String: uint32 length + bytes in the Shift-JIS (cp932) codepage
//   - Closure, Instance: no payload in metadata blocks
//
// Closure and Instance values are placeholders only. A block whose closure or
// instance carries nested payload bytes desynchronizes every later read.
package sqvalue
