// Package games declares the metadata schema of each supported replay
// format and exposes typed accessors over an extracted record.
//
// Supported formats:
//   - th11: Chara
//   - th128: Route, Rank, Stage
//   - th125: Chara, Day, Scene
//   - th16, th17: Chara, Rank, Stage, Extra Stage (derived Stage)
//   - th143: Chara, Day, Scene (scene tokens like "10-3" recognised directly)
//   - th165: Day, Scene (derived Weekday)
//
// All formats also carry Version, Name, Date, Score and SlowRate.
//
// Basic usage:
//
//	g, err := games.Lookup(games.TH16)
//	if err != nil { ... }
//	rp := g.Parse(info)
//	fmt.Println(rp.Field(games.ColStage))
package games
