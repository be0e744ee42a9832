package sqvalue

import "errors"

var (
	ErrMalformedContainer = errors.New("malformed container")
	ErrUnexpectedEOF      = errors.New("unexpected end of stream")
	ErrNilCursor          = errors.New("nil cursor")
	ErrWrongType          = errors.New("wrong value type")
	ErrUnencodable        = errors.New("text not representable in codepage")
)
