package coursemeta

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Asi0Flammeus/course-ally/internal/course"
	"github.com/Asi0Flammeus/course-ally/internal/frontmatter"
	"github.com/Asi0Flammeus/course-ally/internal/logfields"
)

// UpdateField rewrites one metadata field of the course file at path. name
// and goal take a string, objectives a list of strings, and description a
// string that replaces the body segment before the `+++` delimiter. An
// unknown field name changes nothing.
func UpdateField(path, field string, value any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read course file: %w", err)
	}
	out, err := updateContent(content, field, value)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write course file: %w", err)
	}
	return nil
}

func updateContent(content []byte, field string, value any) ([]byte, error) {
	content = Normalize(content)
	raw, body, had, err := frontmatter.Split(content)
	if err != nil {
		// A malformed header is treated as plain body, the same tolerance
		// ParseFields applies.
		raw, body, had = nil, content, false
	}
	meta, err := frontmatter.ParseNode(raw)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	switch field {
	case FieldName, FieldGoal:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %s needs a string value, got %T", field, value)
		}
		frontmatter.SetMapEntry(meta, field, frontmatter.StringNode(s))
	case FieldObjectives:
		list, ok := stringList(value)
		if !ok {
			return nil, fmt.Errorf("field %s needs a list of strings, got %T", field, value)
		}
		frontmatter.SetMapEntry(meta, field, frontmatter.StringListNode(list))
	case FieldDescription:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %s needs a string value, got %T", field, value)
		}
		body = replaceDescription(body, s)
	default:
		return content, nil
	}

	if !had && len(meta.Content) == 0 {
		return body, nil
	}
	raw, err = frontmatter.EncodeNode(meta)
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	return frontmatter.Join(raw, body), nil
}

// replaceDescription swaps the text before the `+++` delimiter for desc,
// inserting the delimiter when the body has none. In that case whatever
// followed is gone: a course body without a delimiter is all description.
func replaceDescription(body []byte, desc string) []byte {
	_, rest, found := SplitDescription(body)
	out := []byte(strings.TrimSpace(desc) + "\n+++\n")
	if found {
		out = append(out, bytes.TrimLeft(rest, " \t\n")...)
	}
	return out
}

// Report aggregates a course-wide field update.
type Report struct {
	Updated []string `json:"updated"`
	Skipped []string `json:"skipped"`
	Errors  []string `json:"errors"`
}

// UpdateCourseField applies per-language values of one field across the
// course directory. Languages without a supplied value are skipped, and a
// failing file is recorded without stopping the others, the same
// keep-going contract course-level applies follow.
func UpdateCourseField(dir, field string, values map[string]any) (Report, error) {
	files, err := course.MarkdownFiles(dir)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Updated: []string{}, Skipped: []string{}, Errors: []string{}}
	for _, f := range files {
		value, ok := values[f.Lang]
		if !ok {
			rep.Skipped = append(rep.Skipped, f.Lang)
			continue
		}
		slog.Debug("updating field", logfields.File(filepath.Base(f.Path)), logfields.Field(field))
		if err := UpdateField(f.Path, field, value); err != nil {
			slog.Warn("field update failed", logfields.File(filepath.Base(f.Path)), logfields.Error(err))
			rep.Errors = append(rep.Errors, fmt.Sprintf("%s: %v", filepath.Base(f.Path), err))
			continue
		}
		rep.Updated = append(rep.Updated, f.Lang)
	}
	return rep, nil
}
