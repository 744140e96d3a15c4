package check

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Asi0Flammeus/course-ally/internal/course"
	"github.com/Asi0Flammeus/course-ally/internal/tag"
)

// File is one course document as presented to the rules.
type File struct {
	Path    string // display name, normally the base name
	Lang    string
	Content []byte
}

// Rule inspects one file for structural problems.
type Rule interface {
	Name() string
	Check(f File) []Issue
}

// Rules returns the per-file rule set in reporting order.
func Rules() []Rule {
	return []Rule{ChapterTagRule{}, PartTagRule{}, DuplicateIDRule{}, IDFormatRule{}}
}

// ChapterTagRule flags `## ` headings with no chapterId marker within
// reach. Such chapters are invisible to every ID-based operation.
type ChapterTagRule struct{}

func (ChapterTagRule) Name() string { return "chapter-tag-missing" }

func (ChapterTagRule) Check(f File) []Issue {
	var issues []Issue
	lines := strings.Split(string(f.Content), "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "## ") {
			continue
		}
		if markerNear(lines, i, tag.ExtractChapterID) {
			continue
		}
		issues = append(issues, Issue{
			File:     f.Path,
			Line:     i + 1,
			Rule:     "chapter-tag-missing",
			Severity: SeverityError,
			Message:  fmt.Sprintf("chapter %q has no chapterId marker", headingTitle(line, "## ")),
			Fix:      "add a <chapterId> line below the heading (new-tag generates one)",
		})
	}
	return issues
}

// PartTagRule flags `# ` headings with no partId marker within reach.
type PartTagRule struct{}

func (PartTagRule) Name() string { return "part-tag-missing" }

func (PartTagRule) Check(f File) []Issue {
	var issues []Issue
	lines := strings.Split(string(f.Content), "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "# ") {
			continue
		}
		if markerNear(lines, i, tag.ExtractPartID) {
			continue
		}
		issues = append(issues, Issue{
			File:     f.Path,
			Line:     i + 1,
			Rule:     "part-tag-missing",
			Severity: SeverityError,
			Message:  fmt.Sprintf("part %q has no partId marker", headingTitle(line, "# ")),
			Fix:      "add a <partId> line below the heading (new-tag --part generates one)",
		})
	}
	return issues
}

// DuplicateIDRule flags IDs used by more than one marker of the same kind.
// Lookups resolve to the first occurrence, so everything after a duplicate
// is unreachable by ID.
type DuplicateIDRule struct{}

func (DuplicateIDRule) Name() string { return "duplicate-id" }

func (DuplicateIDRule) Check(f File) []Issue {
	var issues []Issue
	chapterSeen := map[string]int{}
	partSeen := map[string]int{}
	for i, line := range strings.Split(string(f.Content), "\n") {
		if id, ok := tag.ExtractChapterID(line); ok {
			issues = appendDuplicate(issues, f, chapterSeen, "chapter", id, i+1)
		}
		if id, ok := tag.ExtractPartID(line); ok {
			issues = appendDuplicate(issues, f, partSeen, "part", id, i+1)
		}
	}
	return issues
}

func appendDuplicate(issues []Issue, f File, seen map[string]int, kind, id string, line int) []Issue {
	first, dup := seen[id]
	if !dup {
		seen[id] = line
		return issues
	}
	return append(issues, Issue{
		File:     f.Path,
		Line:     line,
		Rule:     "duplicate-id",
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s id %q already used at line %d; lookups resolve to the first occurrence", kind, id, first),
	})
}

// IDFormatRule warns about IDs that are not UUIDs. Matching works on any
// opaque string, but generated markers are always UUIDv4 and a stray format
// usually means a hand-edit went wrong.
type IDFormatRule struct{}

func (IDFormatRule) Name() string { return "id-format" }

func (IDFormatRule) Check(f File) []Issue {
	var issues []Issue
	for i, line := range strings.Split(string(f.Content), "\n") {
		if id, ok := tag.ExtractChapterID(line); ok {
			issues = appendFormat(issues, f, "chapter", id, i+1)
		}
		if id, ok := tag.ExtractPartID(line); ok {
			issues = appendFormat(issues, f, "part", id, i+1)
		}
	}
	return issues
}

func appendFormat(issues []Issue, f File, kind, id string, line int) []Issue {
	if _, err := uuid.Parse(id); err == nil {
		return issues
	}
	return append(issues, Issue{
		File:     f.Path,
		Line:     line,
		Rule:     "id-format",
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("%s id %q is not a UUID", kind, id),
	})
}

// markerNear reports whether extract matches one of the lines within the
// tag lookahead window after the heading at index i.
func markerNear(lines []string, i int, extract func(string) (string, bool)) bool {
	for j := i + 1; j < len(lines) && j <= i+course.TagLookahead; j++ {
		if _, ok := extract(lines[j]); ok {
			return true
		}
	}
	return false
}

func headingTitle(line, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, prefix))
}
