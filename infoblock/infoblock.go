// Package infoblock reads the metadata block handed over by a replay
// container reader and yields its ordered text tokens.
package infoblock

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/replayinfo/sqvalue"
)

var log = commonlog.GetLogger("replayinfo.infoblock")

// Source yields the tokens and the free-text comment of one replay.
type Source interface {
	Info() ([]string, error)
	Comment() (string, error)
}

// ---------------------------------------------------------------------------
// TextBlock: Shift-JIS text, one token per line
// ---------------------------------------------------------------------------

// TextBlock is a metadata block stored as codepage text with CRLF or LF
// line breaks. Blank lines are skipped.
type TextBlock struct {
	Raw        []byte
	RawComment []byte
}

// Info implements Source.
func (b TextBlock) Info() ([]string, error) {
	text, err := sqvalue.DecodeText(b.Raw)
	if err != nil {
		return nil, fmt.Errorf("info block: %w", err)
	}
	return SplitLines(text), nil
}

// Comment implements Source.
func (b TextBlock) Comment() (string, error) {
	text, err := sqvalue.DecodeText(b.RawComment)
	if err != nil {
		return "", fmt.Errorf("comment: %w", err)
	}
	return strings.TrimRight(text, "\x00"), nil
}

// SplitLines splits text into non-empty lines, dropping CR and NUL padding.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r\x00")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// ValueStream: consecutive tagged values
// ---------------------------------------------------------------------------

// ValueStream is a metadata block stored as consecutive tagged values.
// String values are tokens. A Null value ends the token list; the String
// that follows it, if any, is the comment. Values of other types are
// skipped.
type ValueStream struct {
	Data []byte
}

// Info implements Source.
func (s ValueStream) Info() ([]string, error) {
	info, _, err := s.parse()
	return info, err
}

// Comment implements Source.
func (s ValueStream) Comment() (string, error) {
	_, comment, err := s.parse()
	return comment, err
}

func (s ValueStream) parse() ([]string, string, error) {
	c := sqvalue.NewCursor(s.Data)
	var info []string
	for !c.AtEnd() {
		v, err := sqvalue.DecodeAny(c)
		if err != nil {
			return nil, "", fmt.Errorf("token %d: %w", len(info), err)
		}
		if v.IsNull() {
			comment, err := readComment(c)
			return info, comment, err
		}
		text, err := v.AsText()
		if err != nil {
			log.Debugf("skipping %s value at offset %d", v.Type(), c.Offset())
			continue
		}
		info = append(info, text)
	}
	return info, "", nil
}

func readComment(c *sqvalue.Cursor) (string, error) {
	if c.AtEnd() {
		return "", nil
	}
	v, err := sqvalue.Decode(c, sqvalue.TypeString, false)
	if err != nil {
		return "", fmt.Errorf("comment: %w", err)
	}
	text, _ := v.AsText()
	return text, nil
}

// TokensEnd returns the offset of the Null value that ends the token list,
// or len(s.Data) when the block has no comment section. Values before it
// are walked, not re-encoded.
func (s ValueStream) TokensEnd() (int, error) {
	c := sqvalue.NewCursor(s.Data)
	for !c.AtEnd() {
		start := c.Offset()
		v, err := sqvalue.DecodeAny(c)
		if err != nil {
			return 0, fmt.Errorf("value at offset %d: %w", start, err)
		}
		if v.IsNull() {
			return start, nil
		}
	}
	return len(s.Data), nil
}

// SpliceComment returns a copy of s.Data with its comment replaced by
// encoded, a serialized String value. The bytes of the token list are kept
// exactly as they are.
func (s ValueStream) SpliceComment(encoded []byte) ([]byte, error) {
	end, err := s.TokensEnd()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, end+sqvalue.TagSize+len(encoded))
	out = append(out, s.Data[:end]...)
	var null [sqvalue.TagSize]byte
	sqvalue.WriteUint32(null[:], uint32(sqvalue.TypeNull))
	out = append(out, null[:]...)
	return append(out, encoded...), nil
}

// EncodeValueStream serializes tokens and an optional comment in the
// layout ValueStream reads.
func EncodeValueStream(info []string, comment string) ([]byte, error) {
	var out []byte
	for _, token := range info {
		b, err := sqvalue.EncodeString(token)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", token, err)
		}
		out = append(out, b...)
	}
	if comment == "" {
		return out, nil
	}
	var null [sqvalue.TagSize]byte
	sqvalue.WriteUint32(null[:], uint32(sqvalue.TypeNull))
	out = append(out, null[:]...)
	b, err := sqvalue.EncodeString(comment)
	if err != nil {
		return nil, fmt.Errorf("comment: %w", err)
	}
	return append(out, b...), nil
}
