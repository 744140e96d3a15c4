// Package frontmatter splits and reassembles the `---` delimited YAML
// header of course markdown files, and edits its fields through yaml.Node
// so key order and unknown fields survive a rewrite.
package frontmatter

import (
	"errors"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Delimiter lines may carry trailing blanks, and the closing one may be the
// last line of the file without a newline. Content is expected to be
// LF-normalized before splitting.
var (
	openDelimiter  = regexp.MustCompile(`^---[ \t]*\n`)
	closeDelimiter = regexp.MustCompile(`(?m)^---[ \t]*(?:\n|\z)`)
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates raw YAML frontmatter from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (raw []byte, body []byte, had bool, err error) {
	open := openDelimiter.FindIndex(content)
	if open == nil {
		return nil, content, false, nil
	}

	rest := content[open[1]:]
	closing := closeDelimiter.FindIndex(rest)
	if closing == nil {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	return rest[:closing[0]], rest[closing[1]:], true, nil
}

// Join reassembles a document from raw frontmatter and body. The raw
// frontmatter gets a trailing newline if it lacks one, so the closing
// delimiter always sits on its own line.
func Join(raw []byte, body []byte) []byte {
	if len(raw) > 0 && raw[len(raw)-1] != '\n' {
		raw = append(raw[:len(raw):len(raw)], '\n')
	}

	out := make([]byte, 0, len(raw)+len(body)+8)
	out = append(out, "---\n"...)
	out = append(out, raw...)
	out = append(out, "---\n"...)
	out = append(out, body...)
	return out
}

// Parse parses raw YAML frontmatter (without --- delimiters) into a map.
func Parse(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
