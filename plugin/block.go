package plugin

import (
	"bytes"
	"fmt"
	"os"

	"github.com/chazu/replayinfo/infoblock"
)

// BlockFormat is the layout of an exported metadata block.
type BlockFormat int

const (
	FormatValues BlockFormat = iota
	FormatText
)

// ParseBlockFormat accepts "values" and "text".
func ParseBlockFormat(s string) (BlockFormat, error) {
	switch s {
	case "values", "":
		return FormatValues, nil
	case "text":
		return FormatText, nil
	}
	return 0, fmt.Errorf("unknown block format %q", s)
}

// BlockReader reads metadata blocks exported by a container tool: the
// format signature followed by the block itself.
type BlockReader struct {
	Signature []byte
	Format    BlockFormat
}

// Open implements ContainerReader.
func (r BlockReader) Open(path string) (infoblock.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, r.Signature) {
		return nil, ErrNotSupportedFile
	}
	body := data[len(r.Signature):]
	if r.Format == FormatText {
		text, comment, _ := bytes.Cut(body, []byte{0})
		return infoblock.TextBlock{Raw: text, RawComment: comment}, nil
	}
	return infoblock.ValueStream{Data: body}, nil
}

// BlockCommentWriter replaces the comment of an exported value block. The
// signature and token bytes are written back unchanged.
type BlockCommentWriter struct {
	Signature []byte
}

// WriteComment implements CommentWriter.
func (w BlockCommentWriter) WriteComment(path string, encoded []byte) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !bytes.HasPrefix(data, w.Signature) {
		return ErrNotSupportedFile
	}
	body, err := infoblock.ValueStream{Data: data[len(w.Signature):]}.SpliceComment(encoded)
	if err != nil {
		return err
	}

	out := make([]byte, 0, len(w.Signature)+len(body))
	out = append(out, w.Signature...)
	out = append(out, body...)

	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, fi.Mode().Perm())
}
