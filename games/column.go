package games

import "fmt"

// Column identifies one piece of replay metadata shown to the host.
type Column int

const (
	ColVersion Column = iota + 1
	ColName
	ColDate
	ColChara
	ColRoute
	ColRank
	ColStage
	ColExtraStage
	ColDay
	ColWeekday
	ColScene
	ColScore
	ColSlowRate
)

// columnInfo maps a column to the key that introduces it in the metadata
// block and to its display names. Derived columns have no key.
type columnInfo struct {
	col   Column
	key   string
	short string
	long  string
}

var columnTable = []columnInfo{
	{ColVersion, "Version", "Ver", "Version"},
	{ColName, "Name", "Name", "Player Name"},
	{ColDate, "Date", "Date", "Date"},
	{ColChara, "Chara", "Chara", "Character"},
	{ColRoute, "Route", "Route", "Route"},
	{ColRank, "Rank", "Rank", "Difficulty"},
	{ColStage, "Stage", "Stage", "Stage"},
	{ColExtraStage, "Extra Stage", "ExStage", "Extra Stage"},
	{ColDay, "Day", "Day", "Day"},
	{ColWeekday, "", "Weekday", "Weekday"},
	{ColScene, "Scene", "Scene", "Scene"},
	{ColScore, "Score", "Score", "Score"},
	{ColSlowRate, "SlowRate", "Slow", "Slow Rate"},
}

func (c Column) info() (columnInfo, bool) {
	for _, ci := range columnTable {
		if ci.col == c {
			return ci, true
		}
	}
	return columnInfo{}, false
}

// Key returns the metadata key of the column, or "" for derived columns.
func (c Column) Key() string {
	ci, _ := c.info()
	return ci.key
}

// ShortName returns the compact display name.
func (c Column) ShortName() string {
	if ci, ok := c.info(); ok {
		return ci.short
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// LongName returns the descriptive display name.
func (c Column) LongName() string {
	if ci, ok := c.info(); ok {
		return ci.long
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// String implements fmt.Stringer.
func (c Column) String() string { return c.ShortName() }

// ParseColumn finds a column by short or long display name.
func ParseColumn(name string) (Column, bool) {
	for _, ci := range columnTable {
		if ci.short == name || ci.long == name {
			return ci.col, true
		}
	}
	return 0, false
}

// keys maps columns to their metadata keys, in order.
func keys(cols ...Column) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Key())
	}
	return out
}
