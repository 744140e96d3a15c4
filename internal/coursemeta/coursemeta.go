// Package coursemeta reads and edits the metadata sections of course
// language files: the YAML frontmatter fields and the description block
// that precedes the `+++` delimiter at the top of the body.
package coursemeta

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/Asi0Flammeus/course-ally/internal/frontmatter"
)

// Editable field names.
const (
	FieldName        = "name"
	FieldGoal        = "goal"
	FieldObjectives  = "objectives"
	FieldDescription = "description"
)

// descriptionDelimiter matches the `+++` line separating the course
// description from the rest of the body.
var descriptionDelimiter = regexp.MustCompile(`(?m)^[ \t]*\+\+\+[ \t]*$`)

// Normalize strips a UTF-8 BOM and converts CRLF and lone CR line endings
// to LF. Editing entry points normalize first, so the offset math
// downstream only ever sees \n.
func Normalize(content []byte) []byte {
	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
	return content
}

// SplitDescription splits a body at its first `+++` delimiter line. Without
// one, the whole body (trimmed) is the description and rest is nil.
func SplitDescription(body []byte) (description string, rest []byte, found bool) {
	loc := descriptionDelimiter.FindIndex(body)
	if loc == nil {
		return strings.TrimSpace(string(body)), nil, false
	}
	return strings.TrimSpace(string(body[:loc[0]])), body[loc[1]:], true
}

// FieldSet is the editable metadata of one language file.
type FieldSet struct {
	Name        string   `json:"name"`
	Goal        string   `json:"goal"`
	Objectives  []string `json:"objectives"`
	Description string   `json:"description"`
}

// ParseFields extracts the editable fields from one language file's raw
// content. Malformed frontmatter reads as absent instead of failing:
// displaying a course has to work on files the editor has not cleaned yet.
func ParseFields(content []byte) FieldSet {
	content = Normalize(content)
	raw, body, _, err := frontmatter.Split(content)
	if err != nil {
		raw, body = nil, content
	}
	fields, err := frontmatter.Parse(raw)
	if err != nil {
		fields = map[string]any{}
	}
	description, _, _ := SplitDescription(body)

	fs := FieldSet{Description: description, Objectives: []string{}}
	if s, ok := fields[FieldName].(string); ok {
		fs.Name = s
	}
	if s, ok := fields[FieldGoal].(string); ok {
		fs.Goal = s
	}
	if list, ok := stringList(fields[FieldObjectives]); ok {
		fs.Objectives = list
	}
	return fs
}

// stringList converts list-shaped values, including the []any that JSON
// decoding produces.
func stringList(v any) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, true
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
