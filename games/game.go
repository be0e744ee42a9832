package games

import (
	"bytes"

	"github.com/chazu/replayinfo/extract"
)

// ID names a replay format.
type ID string

const (
	TH11  ID = "th11"
	TH125 ID = "th125"
	TH128 ID = "th128"
	TH143 ID = "th143"
	TH16  ID = "th16"
	TH165 ID = "th165"
	TH17  ID = "th17"
)

// SignatureSize is the length of the magic prefix of a replay file.
const SignatureSize = 4

// Game describes one replay format.
type Game struct {
	ID        ID
	Title     string
	Signature []byte

	// Schema is the field declaration used for extraction.
	Schema extract.Schema

	// Columns are shown to the host, in display order. They may include
	// derived columns and omit raw ones.
	Columns []Column

	wrap func(base) Replay
}

// Parse extracts info with the game's schema.
func (g *Game) Parse(info []string) Replay {
	return g.wrap(base{game: g, rec: extract.Process(info, g.Schema)})
}

// Matches reports whether header starts with the game's signature.
func (g *Game) Matches(header []byte) bool {
	return len(g.Signature) > 0 && bytes.HasPrefix(header, g.Signature)
}

// HasColumn reports whether c is one of the game's display columns.
func (g *Game) HasColumn(c Column) bool {
	for _, col := range g.Columns {
		if col == c {
			return true
		}
	}
	return false
}

// Replay is the extracted metadata of one replay file.
type Replay interface {
	Game() *Game
	Record() *extract.Record

	// Field returns the text of a column, derived columns included.
	// Columns the game does not carry yield "".
	Field(c Column) string
}

// base implements the accessors every format shares.
type base struct {
	game *Game
	rec  *extract.Record
}

func (b base) Game() *Game { return b.game }
func (b base) Record() *extract.Record { return b.rec }

// Field returns the raw value stored under the column's key.
func (b base) Field(c Column) string {
	if k := c.Key(); k != "" {
		return b.rec.Get(k)
	}
	return ""
}

func (b base) Version() string { return b.rec.Get(ColVersion.Key()) }
func (b base) Name() string { return b.rec.Get(ColName.Key()) }
func (b base) Date() string { return b.rec.Get(ColDate.Key()) }
func (b base) Score() string { return b.rec.Get(ColScore.Key()) }
func (b base) SlowRate() string { return b.rec.Get(ColSlowRate.Key()) }
