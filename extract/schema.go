package extract

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrEmptyField     = errors.New("empty field name")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrUnknownTarget  = errors.New("matcher targets undeclared field")
)

// Separator follows the field name in every token.
const Separator = " "

// Matcher claims whole tokens before key-prefix matching runs.
type Matcher interface {
	// Match reports whether token belongs to the matcher, and the value to
	// store in Target if it does.
	Match(token string) (value string, ok bool)

	// Target is the field the matcher assigns.
	Target() string
}

// Schema is the ordered field declaration of one game.
//
// Field order decides which field wins when a token could match more than
// one prefix, so it is kept as a slice.
type Schema struct {
	Fields  []string
	Matcher Matcher
}

// Validate checks that field names are non-empty and unique and that the
// matcher, if any, targets a declared field.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f == "" {
			return fmt.Errorf("%w at position %d", ErrEmptyField, i)
		}
		if seen[f] {
			return fmt.Errorf("%w: %q", ErrDuplicateField, f)
		}
		seen[f] = true
	}
	if s.Matcher != nil && !seen[s.Matcher.Target()] {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, s.Matcher.Target())
	}
	return nil
}

// Prefix returns the literal prefix that introduces field in a token.
func Prefix(field string) string {
	return field + Separator
}

// RegexpMatcher claims tokens that match Pattern in full and stores the
// token itself in Field.
type RegexpMatcher struct {
	Pattern *regexp.Regexp
	Field   string
}

// Match implements Matcher.
func (m RegexpMatcher) Match(token string) (string, bool) {
	if m.Pattern.MatchString(token) {
		return token, true
	}
	return "", false
}

// Target implements Matcher.
func (m RegexpMatcher) Target() string { return m.Field }
