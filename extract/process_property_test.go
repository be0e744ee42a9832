package extract

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProcessProperties checks the write-once invariant: once a field holds
// a value, no later token changes it.
func TestProcessProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	schema := Schema{Fields: []string{"Name", "Score"}}

	properties.Property("first non-empty value wins", prop.ForAll(
		func(values []string) bool {
			info := make([]string, len(values))
			want := ""
			for i, v := range values {
				info[i] = "Name " + v
				if want == "" {
					want = v
				}
			}
			return Process(info, schema).Get("Name") == want
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("processing is deterministic", prop.ForAll(
		func(tokens []string) bool {
			a := Process(tokens, schema).Fields()
			b := Process(tokens, schema).Fields()
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.TestingRun(t)
}
