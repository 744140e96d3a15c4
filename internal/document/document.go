// Package document locates and mutates the tagged part and chapter regions
// of a course markdown buffer.
//
// A course document is semi-structured: parts are `# ` headings and chapters
// are `## ` headings, each identified by an inline marker line such as
// <chapterId>…</chapterId> placed shortly after the heading. Everything here
// treats the buffer as flat text. Regions are byte ranges recomputed on
// every call; a mutation invalidates any range computed before it, and no
// offsets are ever cached.
package document

// Kind discriminates the two region levels of a course document.
type Kind int

const (
	// KindPart is a top-level `# ` section addressed by a partId marker.
	// Its span runs to the next part heading, so it contains every chapter
	// in between.
	KindPart Kind = iota
	// KindChapter is a `## ` section addressed by a chapterId marker.
	KindChapter
)

func (k Kind) String() string {
	switch k {
	case KindPart:
		return "part"
	case KindChapter:
		return "chapter"
	default:
		return "unknown"
	}
}

// Region is a half-open [Start, End) byte range covering one part or
// chapter, heading and marker included. It is only valid against the exact
// buffer it was computed from.
type Region struct {
	Kind  Kind
	ID    string
	Start int
	End   int
}

// Len returns the region's size in bytes.
func (r Region) Len() int { return r.End - r.Start }
