// Package tag builds and recognizes the inline ID markers that address
// parts and chapters in course markdown.
//
// A marker sits on its own line shortly after the heading it identifies:
//
//	## Some Chapter
//	<chapterId>3f2a…</chapterId>
//
// IDs are opaque strings. Generated ones are UUIDv4, but matching never
// assumes a format.
package tag

import (
	"strings"

	"github.com/google/uuid"
)

// Element names are fixed by the course file format.
const (
	PartElement    = "partId"
	ChapterElement = "chapterId"
)

// Part returns the inline marker for a part ID.
func Part(id string) string {
	return "<" + PartElement + ">" + id + "</" + PartElement + ">"
}

// Chapter returns the inline marker for a chapter ID.
func Chapter(id string) string {
	return "<" + ChapterElement + ">" + id + "</" + ChapterElement + ">"
}

// NewID returns a fresh region ID.
func NewID() string {
	return uuid.NewString()
}

// ExtractPartID pulls the ID out of a line containing a part marker.
func ExtractPartID(line string) (string, bool) {
	return extractID(line, PartElement)
}

// ExtractChapterID pulls the ID out of a line containing a chapter marker.
func ExtractChapterID(line string) (string, bool) {
	return extractID(line, ChapterElement)
}

func extractID(line, element string) (string, bool) {
	open := "<" + element + ">"
	i := strings.Index(line, open)
	if i < 0 {
		return "", false
	}
	rest := line[i+len(open):]
	j := strings.Index(rest, "</"+element+">")
	if j < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:j]), true
}
