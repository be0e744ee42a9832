package games

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/chazu/replayinfo/extract"
)

var ErrUnknownGame = errors.New("unknown game")

// sceneToken matches th143 scene tokens: two characters, a hyphen and one
// digit, e.g. "10-3".
var sceneToken = regexp.MustCompile(`^.{2}-[0-9]$`)

var (
	simpleFields     = keys(ColVersion, ColName, ColDate, ColChara, ColScore, ColSlowRate)
	routeFields      = keys(ColVersion, ColName, ColDate, ColRoute, ColRank, ColStage, ColScore, ColSlowRate)
	daySceneFields   = keys(ColVersion, ColName, ColDate, ColChara, ColDay, ColScene, ColScore, ColSlowRate)
	extraStageFields = keys(ColVersion, ColName, ColDate, ColChara, ColRank, ColStage, ColExtraStage, ColScore, ColSlowRate)
	weekdayFields    = keys(ColVersion, ColName, ColDate, ColDay, ColScene, ColScore, ColSlowRate)
)

var extraStageColumns = []Column{ColVersion, ColName, ColDate, ColChara, ColRank, ColStage, ColScore, ColSlowRate}

// registry lists the supported formats in release order.
var registry = []*Game{
	{
		ID:        TH11,
		Title:     "Subterranean Animism",
		Signature: []byte("t11r"),
		Schema:    extract.Schema{Fields: simpleFields},
		Columns:   []Column{ColVersion, ColName, ColDate, ColChara, ColScore, ColSlowRate},
		wrap:      func(b base) Replay { return TH11Replay{b} },
	},
	{
		ID:        TH125,
		Title:     "Double Spoiler",
		Signature: []byte("t125"),
		Schema:    extract.Schema{Fields: daySceneFields},
		Columns:   []Column{ColVersion, ColName, ColDate, ColChara, ColDay, ColScene, ColScore, ColSlowRate},
		wrap:      func(b base) Replay { return TH125Replay{b} },
	},
	{
		ID:        TH128,
		Title:     "Great Fairy Wars",
		Signature: []byte("128r"),
		Schema:    extract.Schema{Fields: routeFields},
		Columns:   []Column{ColVersion, ColName, ColDate, ColRoute, ColRank, ColStage, ColScore, ColSlowRate},
		wrap:      func(b base) Replay { return TH128Replay{b} },
	},
	{
		ID:        TH143,
		Title:     "Impossible Spell Card",
		Signature: []byte("t143"),
		Schema: extract.Schema{
			Fields:  daySceneFields,
			Matcher: extract.RegexpMatcher{Pattern: sceneToken, Field: ColScene.Key()},
		},
		Columns: []Column{ColVersion, ColName, ColDate, ColChara, ColDay, ColScene, ColScore, ColSlowRate},
		wrap:    func(b base) Replay { return TH143Replay{b} },
	},
	{
		ID:        TH16,
		Title:     "Hidden Star in Four Seasons",
		Signature: []byte("t16r"),
		Schema:    extract.Schema{Fields: extraStageFields},
		Columns:   extraStageColumns,
		wrap:      func(b base) Replay { return ExtraStageReplay{b} },
	},
	{
		ID:        TH165,
		Title:     "Violet Detector",
		Signature: []byte("t156"),
		Schema:    extract.Schema{Fields: weekdayFields},
		Columns:   []Column{ColVersion, ColName, ColDate, ColWeekday, ColScene, ColScore, ColSlowRate},
		wrap:      func(b base) Replay { return TH165Replay{b} },
	},
	{
		ID:        TH17,
		Title:     "Wily Beast and Weakest Creature",
		Signature: []byte("t17r"),
		Schema:    extract.Schema{Fields: extraStageFields},
		Columns:   extraStageColumns,
		wrap:      func(b base) Replay { return ExtraStageReplay{b} },
	},
}

// All returns the supported formats in release order.
func All() []*Game {
	out := make([]*Game, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the format with the given ID.
func Lookup(id ID) (*Game, error) {
	for _, g := range registry {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
}

// Detect returns the format whose signature starts header.
func Detect(header []byte) (*Game, bool) {
	for _, g := range registry {
		if g.Matches(header) {
			return g, true
		}
	}
	return nil, false
}

// Parse extracts info with the schema of the given format.
func Parse(id ID, info []string) (Replay, error) {
	g, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return g.Parse(info), nil
}
