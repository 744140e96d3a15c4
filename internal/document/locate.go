package document

import (
	"fmt"
	"regexp"

	"github.com/Asi0Flammeus/course-ally/internal/tag"
)

// End-of-region markers. A chapter runs until the next chapter heading or
// until a blank line followed by a part heading; a part runs until the next
// part heading, blank line or not. The matched newline itself is excluded
// from the region.
var (
	nextChapterHeading = regexp.MustCompile(`\n##\s`)
	nextPartAfterBlank = regexp.MustCompile(`\n\n#\s[^#]`)
	nextPartHeading    = regexp.MustCompile(`\n#\s[^#]`)
)

// startPattern matches a heading line followed by the marker for id. IDs are
// quoted verbatim, so regex metacharacters in an ID cannot widen the match.
func startPattern(kind Kind, id string) *regexp.Regexp {
	switch kind {
	case KindPart:
		return regexp.MustCompile(`(?m)^#\s+[^\n]+\s*\n\s*` + regexp.QuoteMeta(tag.Part(id)))
	default:
		return regexp.MustCompile(`(?m)^##\s+[^\n]+\s*\n\s*` + regexp.QuoteMeta(tag.Chapter(id)))
	}
}

// Locate finds the byte range of the part or chapter marked with id. Only
// the first textual occurrence counts: duplicate IDs silently resolve to the
// earliest region.
func Locate(buf []byte, kind Kind, id string) (Region, error) {
	if kind != KindPart && kind != KindChapter {
		return Region{}, fmt.Errorf("unknown region kind %d", kind)
	}
	loc := startPattern(kind, id).FindIndex(buf)
	if loc == nil {
		return Region{}, &NotFoundError{Kind: kind, ID: id}
	}
	start := loc[0]
	return Region{Kind: kind, ID: id, Start: start, End: regionEnd(buf, start, kind)}, nil
}

// regionEnd scans forward from start for the nearest boundary of the given
// kind, falling back to the end of the buffer.
func regionEnd(buf []byte, start int, kind Kind) int {
	tail := buf[start:]
	if kind == KindPart {
		if loc := nextPartHeading.FindIndex(tail); loc != nil {
			return start + loc[0]
		}
		return len(buf)
	}
	end := len(buf)
	if loc := nextChapterHeading.FindIndex(tail); loc != nil {
		end = start + loc[0]
	}
	if loc := nextPartAfterBlank.FindIndex(tail); loc != nil && start+loc[0] < end {
		end = start + loc[0]
	}
	return end
}

// Cut returns a copy of buf with the region's range removed. The region must
// have been computed from this exact buffer.
func Cut(buf []byte, r Region) []byte {
	out := make([]byte, 0, len(buf)-r.Len())
	out = append(out, buf[:r.Start]...)
	out = append(out, buf[r.End:]...)
	return out
}
