// Package structure derives the display outline of a course document:
// parts, the chapters inside each part's span, and chapters that sit
// outside any part. The outline is recomputed from the buffer on every
// call and holds no positions, so it can never go stale after an edit.
package structure

import (
	"regexp"
	"strings"
)

var (
	partHeading    = regexp.MustCompile(`(?m)^#\s+([^\n]+)\s*\n\s*<partId>([^<]+)</partId>`)
	chapterHeading = regexp.MustCompile(`(?m)^##\s+([^\n]+)\s*\n\s*<chapterId>([^<]+)</chapterId>`)
)

// Chapter is one second-level section in document order.
type Chapter struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Part is one top-level section and the chapters positioned inside it.
type Part struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Chapters []Chapter `json:"chapters"`
}

// Structure is the derived course outline.
type Structure struct {
	Parts          []Part    `json:"parts"`
	OrphanChapters []Chapter `json:"orphan_chapters"`
}

// Parse scans buf and assembles the outline. A chapter belongs to the part
// whose span contains its heading offset; chapters before the first part,
// or every chapter when the document has no parts at all, are orphans. All
// lists follow ascending document order.
func Parse(buf []byte) Structure {
	parts := partHeading.FindAllSubmatchIndex(buf, -1)
	chapters := chapterHeading.FindAllSubmatchIndex(buf, -1)

	st := Structure{Parts: []Part{}, OrphanChapters: []Chapter{}}

	for i, m := range parts {
		end := len(buf)
		if i+1 < len(parts) {
			end = parts[i+1][0]
		}
		p := Part{
			ID:       group(buf, m, 2),
			Title:    group(buf, m, 1),
			Chapters: []Chapter{},
		}
		for _, c := range chapters {
			if c[0] > m[0] && c[0] < end {
				p.Chapters = append(p.Chapters, chapterAt(buf, c))
			}
		}
		st.Parts = append(st.Parts, p)
	}

	if len(parts) == 0 {
		for _, c := range chapters {
			st.OrphanChapters = append(st.OrphanChapters, chapterAt(buf, c))
		}
		return st
	}

	firstPart := parts[0][0]
	for _, c := range chapters {
		if c[0] < firstPart {
			st.OrphanChapters = append(st.OrphanChapters, chapterAt(buf, c))
		}
	}
	return st
}

func chapterAt(buf []byte, m []int) Chapter {
	return Chapter{ID: group(buf, m, 2), Title: group(buf, m, 1)}
}

// group returns the trimmed text of capture group n.
func group(buf []byte, m []int, n int) string {
	return strings.TrimSpace(string(buf[m[2*n]:m[2*n+1]]))
}
