package games

import "strings"

// ---------------------------------------------------------------------------
// th11: character only
// ---------------------------------------------------------------------------

type TH11Replay struct{ base }

func (r TH11Replay) Chara() string { return r.rec.Get(ColChara.Key()) }

// ---------------------------------------------------------------------------
// th128: route based
// ---------------------------------------------------------------------------

type TH128Replay struct{ base }

func (r TH128Replay) Route() string { return r.rec.Get(ColRoute.Key()) }
func (r TH128Replay) Rank() string { return r.rec.Get(ColRank.Key()) }
func (r TH128Replay) Stage() string { return r.rec.Get(ColStage.Key()) }

// ---------------------------------------------------------------------------
// th125: day and scene
// ---------------------------------------------------------------------------

type TH125Replay struct{ base }

func (r TH125Replay) Chara() string { return r.rec.Get(ColChara.Key()) }
func (r TH125Replay) Day() string { return r.rec.Get(ColDay.Key()) }
func (r TH125Replay) Scene() string { return r.rec.Get(ColScene.Key()) }

// ---------------------------------------------------------------------------
// th16, th17: extra stage
// ---------------------------------------------------------------------------

// ExtraStageReplay serves both th16 and th17.
type ExtraStageReplay struct{ base }

func (r ExtraStageReplay) Chara() string { return r.rec.Get(ColChara.Key()) }
func (r ExtraStageReplay) Rank() string { return r.rec.Get(ColRank.Key()) }
func (r ExtraStageReplay) ExtraStage() string { return r.rec.Get(ColExtraStage.Key()) }

// Stage returns the Extra Stage value for Extra-rank replays and the Stage
// value otherwise.
func (r ExtraStageReplay) Stage() string {
	if strings.HasPrefix(r.Rank(), "Extra") {
		return r.ExtraStage()
	}
	return r.rec.Get(ColStage.Key())
}

func (r ExtraStageReplay) Field(c Column) string {
	if c == ColStage {
		return r.Stage()
	}
	return r.base.Field(c)
}

// ---------------------------------------------------------------------------
// th143: scene tokens
// ---------------------------------------------------------------------------

type TH143Replay struct{ base }

func (r TH143Replay) Chara() string { return r.rec.Get(ColChara.Key()) }
func (r TH143Replay) Day() string { return r.rec.Get(ColDay.Key()) }

// Scene returns the last scene token of the block.
func (r TH143Replay) Scene() string { return r.rec.Get(ColScene.Key()) }

// ---------------------------------------------------------------------------
// th165: weekday
// ---------------------------------------------------------------------------

type TH165Replay struct{ base }

func (r TH165Replay) Day() string { return r.rec.Get(ColDay.Key()) }
func (r TH165Replay) Scene() string { return r.rec.Get(ColScene.Key()) }
func (r TH165Replay) Weekday() string { return Weekday(r.Day()) }

func (r TH165Replay) Field(c Column) string {
	if c == ColWeekday {
		return r.Weekday()
	}
	return r.base.Field(c)
}
