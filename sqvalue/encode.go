package sqvalue

// EncodedSize returns the serialized size of a string value holding raw
// codepage bytes of length n.
func EncodedSize(n int) int {
	return TagSize + 4 + n
}

// EncodeString serializes s as a tagged String value. It is used to hand a
// rewritten comment to the replay writer.
func EncodeString(s string) ([]byte, error) {
	raw, err := EncodeText(s)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, EncodedSize(len(raw)))
	WriteUint32(buf, uint32(TypeString))
	WriteUint32(buf[TagSize:], uint32(len(raw)))
	copy(buf[TagSize+4:], raw)
	return buf, nil
}
