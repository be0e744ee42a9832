package sqvalue

import (
	"encoding/binary"
	"math"
)

// ---------------------------------------------------------------------------
// Cursor: read position over a metadata block
// ---------------------------------------------------------------------------

// Cursor is a forward-only read position over a byte slice.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	data   []byte
	offset int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.offset }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.offset }

// AtEnd reports whether all bytes have been consumed.
func (c *Cursor) AtEnd() bool { return c.offset >= len(c.data) }

// readBytes reads n bytes from the current position.
// On failure the position is left unchanged.
func (c *Cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.offset+n > len(c.data) {
		return nil, ErrUnexpectedEOF
	}
	b := c.data[c.offset : c.offset+n]
	c.offset += n
	return b, nil
}

func (c *Cursor) readByte() (byte, error) {
	b, err := c.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) readUint32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return ReadUint32(b), nil
}

// ---------------------------------------------------------------------------
// Binary encoding helpers
// ---------------------------------------------------------------------------

// WriteUint32 writes a uint32 in little-endian format.
func WriteUint32(buf []byte, v uint32) {
	binary.LittleEndian.PutUint32(buf, v)
}

// ReadUint32 reads a uint32 in little-endian format.
func ReadUint32(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

// WriteInt32 writes an int32 in little-endian format.
func WriteInt32(buf []byte, v int32) {
	binary.LittleEndian.PutUint32(buf, uint32(v))
}

// ReadInt32 reads an int32 in little-endian format.
func ReadInt32(buf []byte) int32 {
	return int32(binary.LittleEndian.Uint32(buf))
}

// WriteFloat32 writes a float32 in little-endian format.
func WriteFloat32(buf []byte, f float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(f))
}

// ReadFloat32 reads a float32 in little-endian format.
func ReadFloat32(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}
