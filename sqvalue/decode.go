package sqvalue

import "fmt"

// Decode reads one value of the expected type from c.
//
// When tagPreConsumed is false the type word is read first and must equal
// expected. When it is true the caller has already consumed and dispatched
// on the type word, and only the payload is read.
func Decode(c *Cursor, expected Type, tagPreConsumed bool) (Value, error) {
	if c == nil {
		return Null, ErrNilCursor
	}
	if !expected.Known() {
		return Null, fmt.Errorf("%w: unsupported type %s", ErrMalformedContainer, expected)
	}

	start := c.offset
	if !tagPreConsumed {
		tag, err := c.readUint32()
		if err != nil {
			return Null, fmt.Errorf("type tag at offset %d: %w", start, err)
		}
		if Type(tag) != expected {
			c.offset = start
			return Null, fmt.Errorf("%w: unexpected type tag %s at offset %d, want %s",
				ErrMalformedContainer, Type(tag), start, expected)
		}
	}

	v, err := decodePayload(c, expected)
	if err != nil {
		c.offset = start
		return Null, fmt.Errorf("%s payload at offset %d: %w", expected, start, err)
	}
	return v, nil
}

// DecodeAny reads a type word and the payload it announces.
func DecodeAny(c *Cursor) (Value, error) {
	if c == nil {
		return Null, ErrNilCursor
	}
	start := c.offset
	tag, err := c.readUint32()
	if err != nil {
		return Null, fmt.Errorf("type tag at offset %d: %w", start, err)
	}
	t := Type(tag)
	if !t.Known() {
		c.offset = start
		return Null, fmt.Errorf("%w: unknown type tag %s at offset %d", ErrMalformedContainer, t, start)
	}
	v, err := Decode(c, t, true)
	if err != nil {
		c.offset = start
		return Null, err
	}
	return v, nil
}

func decodePayload(c *Cursor, t Type) (Value, error) {
	switch t {
	case TypeNull:
		return Null, nil

	case TypeBool:
		b, err := c.readByte()
		if err != nil {
			return Null, err
		}
		return Bool(b != 0), nil

	case TypeInteger:
		b, err := c.readBytes(4)
		if err != nil {
			return Null, err
		}
		return Int(ReadInt32(b)), nil

	case TypeFloat:
		b, err := c.readBytes(4)
		if err != nil {
			return Null, err
		}
		return Float(ReadFloat32(b)), nil

	case TypeString:
		n, err := c.readUint32()
		if err != nil {
			return Null, err
		}
		if uint64(n) > uint64(c.Remaining()) {
			return Null, fmt.Errorf("%w: string length %d exceeds %d remaining bytes",
				ErrUnexpectedEOF, n, c.Remaining())
		}
		raw, err := c.readBytes(int(n))
		if err != nil {
			return Null, err
		}
		s, err := DecodeText(raw)
		if err != nil {
			return Null, err
		}
		return String(s), nil

	case TypeClosure:
		return Closure(), nil

	case TypeInstance:
		return Instance(), nil
	}
	return Null, fmt.Errorf("%w: unsupported type %s", ErrMalformedContainer, t)
}
