// Package extract turns the ordered text tokens of a replay's metadata block
// into a record of named fields.
//
// A token "Name foo" fills the field Name with "foo". Fields are matched in
// the order the schema declares them, and the first token to fill a field
// wins. A schema may carry a Matcher that claims tokens before prefix
// matching; fields it assigns are overwritten by every later match.
package extract
