package document

import (
	"fmt"
	"slices"
)

// moveJoin separates a relocated chapter from the content it now follows.
const moveJoin = "\n\n"

// Extract returns a copy of the region's full text, heading and marker
// included. The input buffer is never modified.
func Extract(buf []byte, kind Kind, id string) ([]byte, error) {
	r, err := Locate(buf, kind, id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(buf[r.Start:r.End]), nil
}

// DeleteChapter returns buf with the chapter marked id removed. The excision
// is verbatim: no whitespace outside the region is touched, so surrounding
// blank lines stay exactly as they were.
func DeleteChapter(buf []byte, id string) ([]byte, error) {
	r, err := Locate(buf, KindChapter, id)
	if err != nil {
		return nil, err
	}
	return Cut(buf, r), nil
}

// DeletePart returns buf with the part marked id removed. A part's span
// reaches the next part heading, so every chapter inside goes with it.
func DeletePart(buf []byte, id string) ([]byte, error) {
	r, err := Locate(buf, KindPart, id)
	if err != nil {
		return nil, err
	}
	return Cut(buf, r), nil
}

// MoveChapterAfter relocates the chapter marked sourceID to sit immediately
// after the chapter marked targetID.
//
// The target is checked before the source is deleted, then located again
// afterwards: removing a source that precedes the target shifts the
// target's offsets, and re-resolving is cheaper than bookkeeping. When
// source and target are the same chapter the second lookup fails, which is
// the only way such a move can end. The extracted text is spliced in joined
// by exactly two newlines; any trailing separator the source carried moves
// with it unchanged.
func MoveChapterAfter(buf []byte, sourceID, targetID string) ([]byte, error) {
	chapter, err := Extract(buf, KindChapter, sourceID)
	if err != nil {
		return nil, fmt.Errorf("move source: %w", err)
	}
	if _, err := Locate(buf, KindChapter, targetID); err != nil {
		return nil, fmt.Errorf("move target: %w", err)
	}

	buf, err = DeleteChapter(buf, sourceID)
	if err != nil {
		return nil, fmt.Errorf("move source: %w", err)
	}

	target, err := Locate(buf, KindChapter, targetID)
	if err != nil {
		return nil, fmt.Errorf("move target after delete: %w", err)
	}

	out := make([]byte, 0, len(buf)+len(moveJoin)+len(chapter))
	out = append(out, buf[:target.End]...)
	out = append(out, moveJoin...)
	out = append(out, chapter...)
	out = append(out, buf[target.End:]...)
	return out, nil
}
