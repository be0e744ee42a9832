// Package plugin exposes replay metadata through the queries a file-manager
// host makes per file. One Plugin serves one replay format.
package plugin

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/chazu/replayinfo/games"
	"github.com/chazu/replayinfo/infoblock"
	"github.com/chazu/replayinfo/sqvalue"
)

var log = commonlog.GetLogger("replayinfo.plugin")

var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrNotSupportedFile     = errors.New("file is not a supported replay")
	ErrUnknownColumn        = errors.New("column not available")
)

// ContainerReader opens a replay file and returns its metadata block.
// Decompression and header parsing happen behind this interface.
type ContainerReader interface {
	Open(path string) (infoblock.Source, error)
}

// CommentWriter persists an encoded comment value into a replay file.
type CommentWriter interface {
	WriteComment(path string, encoded []byte) error
}

// Plugin answers host queries for one replay format.
type Plugin struct {
	game    *games.Game
	reader  ContainerReader
	writer  CommentWriter
	columns []games.Column
}

// New creates a plugin for game. writer may be nil, in which case comment
// edits are unsupported.
func New(game *games.Game, reader ContainerReader, writer CommentWriter) *Plugin {
	return &Plugin{
		game:    game,
		reader:  reader,
		writer:  writer,
		columns: game.Columns,
	}
}

// Game returns the format served by p.
func (p *Plugin) Game() *games.Game { return p.game }

// IsSupported reports whether header starts with the format's signature.
func (p *Plugin) IsSupported(header []byte) bool {
	return p.game.Matches(header)
}

// Columns returns the visible columns in display order.
func (p *Plugin) Columns() []games.Column {
	out := make([]games.Column, len(p.columns))
	copy(out, p.columns)
	return out
}

// SetColumns restricts and reorders the visible columns.
func (p *Plugin) SetColumns(cols []games.Column) error {
	for _, c := range cols {
		if !p.game.HasColumn(c) {
			return fmt.Errorf("%w: %s for %s", ErrUnknownColumn, c, p.game.ID)
		}
	}
	p.columns = append([]games.Column(nil), cols...)
	return nil
}

// ConfigDialog is not implemented by any format.
func (p *Plugin) ConfigDialog() error {
	return fmt.Errorf("%w: configuration dialog", ErrUnsupportedOperation)
}

// ---------------------------------------------------------------------------
// Per-file queries
// ---------------------------------------------------------------------------

// File is the extracted metadata of one replay file.
type File struct {
	Path    string
	Replay  games.Replay
	comment string
	columns []games.Column
}

// FieldText returns the text of a column. Only the columns visible when the
// file was loaded are served.
func (f *File) FieldText(c games.Column) (string, error) {
	for _, col := range f.columns {
		if col == c {
			return f.Replay.Field(c), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownColumn, c)
}

// Comment returns the free-text comment of the replay.
func (f *File) Comment() string { return f.comment }

// Load reads and extracts one replay. Extraction is all or nothing: on any
// error no File is returned.
func (p *Plugin) Load(path string) (*File, error) {
	src, err := p.reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	info, err := src.Info()
	if err != nil {
		return nil, fmt.Errorf("read info of %s: %w", path, err)
	}
	comment, err := src.Comment()
	if err != nil {
		return nil, fmt.Errorf("read comment of %s: %w", path, err)
	}
	log.Debugf("%s: %d tokens", path, len(info))
	return &File{
		Path:    path,
		Replay:  p.game.Parse(info),
		comment: comment,
		columns: p.Columns(),
	}, nil
}

// FieldText loads path and returns the text of one column.
func (p *Plugin) FieldText(path string, c games.Column) (string, error) {
	f, err := p.Load(path)
	if err != nil {
		return "", err
	}
	return f.FieldText(c)
}

// Comment loads path and returns its comment.
func (p *Plugin) Comment(path string) (string, error) {
	f, err := p.Load(path)
	if err != nil {
		return "", err
	}
	return f.Comment(), nil
}

// EditComment encodes text as a string value and hands it to the comment
// writer.
func (p *Plugin) EditComment(path, text string) error {
	if p.writer == nil {
		return fmt.Errorf("%w: comment editing for %s", ErrUnsupportedOperation, p.game.ID)
	}
	encoded, err := sqvalue.EncodeString(text)
	if err != nil {
		return fmt.Errorf("encode comment: %w", err)
	}
	if err := p.writer.WriteComment(path, encoded); err != nil {
		return fmt.Errorf("write comment to %s: %w", path, err)
	}
	log.Infof("updated comment of %s", path)
	return nil
}
