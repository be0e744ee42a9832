package sqvalue

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"
)

// DecodeText converts Shift-JIS bytes to a UTF-8 string. Decoding is lossy:
// invalid or truncated byte sequences become U+FFFD instead of an error, and
// such text cannot be encoded back with EncodeText.
func DecodeText(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: string payload: %v", ErrMalformedContainer, err)
	}
	return string(out), nil
}

// EncodeText converts a UTF-8 string to Shift-JIS bytes.
func EncodeText(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	out, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return out, nil
}
