package extract

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testFields = []string{"Version", "Name", "Date", "Chara", "Day", "Scene", "Score", "SlowRate"}

func TestProcessBasic(t *testing.T) {
	info := []string{
		"Version 1.00a",
		"Name Reimu",
		"Date 24/05/01 21:03",
		"Chara Reimu",
		"Score 123456780",
		"SlowRate 0.03",
	}
	r := Process(info, Schema{Fields: testFields})

	want := []Field{
		{"Version", "1.00a"},
		{"Name", "Reimu"},
		{"Date", "24/05/01 21:03"},
		{"Chara", "Reimu"},
		{"Day", ""},
		{"Scene", ""},
		{"Score", "123456780"},
		{"SlowRate", "0.03"},
	}
	if diff := cmp.Diff(want, r.Fields()); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessFirstMatchWins(t *testing.T) {
	r := Process([]string{"Scene X1-1", "Scene Y2-2"}, Schema{Fields: testFields})
	if got := r.Get("Scene"); got != "X1-1" {
		t.Errorf("Scene = %q, want X1-1", got)
	}
}

func TestProcessDeclaredOrderDecides(t *testing.T) {
	// "Stage Extra 3" starts with both "Stage " and "Stage Extra ".
	first := Process([]string{"Stage Extra 3"}, Schema{Fields: []string{"Stage", "Stage Extra"}})
	if first.Get("Stage") != "Extra 3" || first.Get("Stage Extra") != "" {
		t.Errorf("Stage-first: got %v", first.Fields())
	}

	second := Process([]string{"Stage Extra 3"}, Schema{Fields: []string{"Stage Extra", "Stage"}})
	if second.Get("Stage Extra") != "3" || second.Get("Stage") != "" {
		t.Errorf("Stage Extra-first: got %v", second.Fields())
	}
}

func TestProcessFilledFieldFallsThrough(t *testing.T) {
	// Once Stage is filled, a second matching token goes to the next field.
	r := Process([]string{"Stage 1", "Stage Extra 9"}, Schema{Fields: []string{"Stage", "Stage Extra"}})
	if r.Get("Stage") != "1" {
		t.Errorf("Stage = %q, want 1", r.Get("Stage"))
	}
	if r.Get("Stage Extra") != "9" {
		t.Errorf("Stage Extra = %q, want 9", r.Get("Stage Extra"))
	}
}

func TestProcessPrefixNeedsSeparator(t *testing.T) {
	r := Process([]string{"Named foo", "Name", "NameX bar"}, Schema{Fields: testFields})
	if got := r.Get("Name"); got != "" {
		t.Errorf("Name = %q, want empty", got)
	}
}

func TestProcessUnmatchedTokenDropped(t *testing.T) {
	r := Process([]string{"Foo Bar", "", "東方 リプレイファイル情報"}, Schema{Fields: testFields})
	for _, f := range r.Fields() {
		if f.Value != "" {
			t.Errorf("field %s = %q, want empty", f.Name, f.Value)
		}
	}
	if r.Len() != len(testFields) {
		t.Errorf("Len = %d, want %d", r.Len(), len(testFields))
	}
}

func TestProcessMatcherLastWins(t *testing.T) {
	schema := Schema{
		Fields:  testFields,
		Matcher: RegexpMatcher{Pattern: regexp.MustCompile(`^.{2}-\d$`), Field: "Scene"},
	}
	r := Process([]string{"Scene 01-1", "AB-3", "Name Sanae", "CD-4", "ABC-3"}, schema)

	if got := r.Get("Scene"); got != "CD-4" {
		t.Errorf("Scene = %q, want CD-4", got)
	}
	if got := r.Get("Name"); got != "Sanae" {
		t.Errorf("Name = %q, want Sanae", got)
	}
}

func TestProcessMatcherClaimsToken(t *testing.T) {
	// A token claimed by the matcher never reaches prefix matching, even when
	// it would match a declared key.
	schema := Schema{
		Fields:  []string{"AB", "Scene"},
		Matcher: RegexpMatcher{Pattern: regexp.MustCompile(`^AB-\d$`), Field: "Scene"},
	}
	r := Process([]string{"AB-3"}, schema)
	if r.Get("AB") != "" {
		t.Errorf("AB = %q, want empty", r.Get("AB"))
	}
	if r.Get("Scene") != "AB-3" {
		t.Errorf("Scene = %q, want AB-3", r.Get("Scene"))
	}
}

func TestRecordLookup(t *testing.T) {
	r := NewRecord([]string{"Name"})
	if _, ok := r.Lookup("Missing"); ok {
		t.Error("Lookup(Missing) reported declared")
	}
	if v, ok := r.Lookup("Name"); !ok || v != "" {
		t.Errorf("Lookup(Name) = %q, %v; want \"\", true", v, ok)
	}

	fields := r.Fields()
	fields[0].Value = "mutated"
	if r.Get("Name") != "" {
		t.Error("Fields must return a copy")
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		want   error
	}{
		{"ok", Schema{Fields: testFields}, nil},
		{"empty", Schema{Fields: []string{"Name", ""}}, ErrEmptyField},
		{"duplicate", Schema{Fields: []string{"Name", "Name"}}, ErrDuplicateField},
		{"bad target", Schema{
			Fields:  []string{"Name"},
			Matcher: RegexpMatcher{Pattern: regexp.MustCompile(`x`), Field: "Scene"},
		}, ErrUnknownTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate = %v, want %v", err, tt.want)
			}
		})
	}
}
