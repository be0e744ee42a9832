package plugin

import (
	"errors"
	"io/fs"

	"github.com/chazu/replayinfo/sqvalue"
)

// Status is the per-file result code reported to the host.
type Status int

const (
	StatusOK Status = iota
	StatusUnsupported
	StatusMalformed
	StatusTruncated
	StatusInvalidArgument
	StatusNotFound
	StatusFailed
)

var statusNames = []string{
	StatusOK:              "ok",
	StatusUnsupported:     "unsupported",
	StatusMalformed:       "malformed",
	StatusTruncated:       "truncated",
	StatusInvalidArgument: "invalid-argument",
	StatusNotFound:        "not-found",
	StatusFailed:          "failed",
}

func (s Status) String() string {
	if int(s) >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// StatusOf maps an error from Load or EditComment to a status code.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrUnsupportedOperation), errors.Is(err, ErrNotSupportedFile):
		return StatusUnsupported
	case errors.Is(err, sqvalue.ErrMalformedContainer):
		return StatusMalformed
	case errors.Is(err, sqvalue.ErrUnexpectedEOF):
		return StatusTruncated
	case errors.Is(err, sqvalue.ErrNilCursor), errors.Is(err, ErrUnknownColumn), errors.Is(err, sqvalue.ErrUnencodable):
		return StatusInvalidArgument
	case errors.Is(err, fs.ErrNotExist):
		return StatusNotFound
	default:
		return StatusFailed
	}
}
