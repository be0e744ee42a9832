package extract

import (
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("replayinfo.extract")

// Process fills a new Record from info using schema.
//
// For each token in order: the schema's Matcher, if any, gets the first
// look and a match overwrites its target. Otherwise the first empty field,
// in declared order, whose prefix begins the token takes the rest of the
// token. Tokens matching nothing are dropped.
func Process(info []string, schema Schema) *Record {
	r := NewRecord(schema.Fields)
	for _, token := range info {
		if schema.Matcher != nil {
			if v, ok := schema.Matcher.Match(token); ok {
				r.set(schema.Matcher.Target(), v)
				continue
			}
		}
		if !assignPrefixed(r, token) {
			log.Debugf("dropping unmatched token %q", token)
		}
	}
	return r
}

func assignPrefixed(r *Record, token string) bool {
	for i := range r.slots {
		slot := &r.slots[i]
		if slot.Value != "" {
			continue
		}
		prefix := Prefix(slot.Name)
		if strings.HasPrefix(token, prefix) {
			slot.Value = token[len(prefix):]
			return true
		}
	}
	return false
}
