package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const twoChapters = "# Part One\n<partId>p1</partId>\n" +
	"## Ch A\n<chapterId>a</chapterId>\nTextA\n" +
	"## Ch B\n<chapterId>b</chapterId>\nTextB\n"

const threeChapters = "# Part One\n<partId>p1</partId>\n" +
	"## Ch A\n<chapterId>a</chapterId>\nTextA\n" +
	"## Ch B\n<chapterId>b</chapterId>\nTextB\n" +
	"## Ch C\n<chapterId>c</chapterId>\nTextC\n"

const twoParts = "# P1\n<partId>p1</partId>\n" +
	"## Ch A\n<chapterId>a</chapterId>\nTextA\n" +
	"\n# P2\n<partId>p2</partId>\n" +
	"## Ch B\n<chapterId>b</chapterId>\nTextB\n"

func TestLocate_Chapter_EndsBeforeNextChapterHeading(t *testing.T) {
	buf := []byte(twoChapters)

	r, err := Locate(buf, KindChapter, "a")
	require.NoError(t, err)
	require.Equal(t, "## Ch A\n<chapterId>a</chapterId>\nTextA", string(buf[r.Start:r.End]))
}

func TestLocate_Chapter_LastChapterRunsToEndOfBuffer(t *testing.T) {
	buf := []byte(twoChapters)

	r, err := Locate(buf, KindChapter, "b")
	require.NoError(t, err)
	require.Equal(t, len(buf), r.End)
	require.Equal(t, "## Ch B\n<chapterId>b</chapterId>\nTextB\n", string(buf[r.Start:r.End]))
}

func TestLocate_Chapter_EndsAtBlankLineBeforePartHeading(t *testing.T) {
	buf := []byte(twoParts)

	r, err := Locate(buf, KindChapter, "a")
	require.NoError(t, err)
	// The boundary is the first of the two newlines before "# P2", even
	// though a later "## Ch B" heading would also match.
	require.Equal(t, "## Ch A\n<chapterId>a</chapterId>\nTextA", string(buf[r.Start:r.End]))
}

func TestLocate_Chapter_PartHeadingWithoutBlankLineIsNoBoundary(t *testing.T) {
	buf := []byte("## Ch A\n<chapterId>a</chapterId>\nTextA\n# P2\n<partId>p2</partId>\n")

	r, err := Locate(buf, KindChapter, "a")
	require.NoError(t, err)
	// Without a blank line the part heading is swallowed into the chapter.
	require.Equal(t, len(buf), r.End)
}

func TestLocate_Part_SpansItsChaptersUntilNextPart(t *testing.T) {
	buf := []byte(twoParts)

	r, err := Locate(buf, KindPart, "p1")
	require.NoError(t, err)
	require.Equal(t, 0, r.Start)
	require.Equal(t, "# P1\n<partId>p1</partId>\n## Ch A\n<chapterId>a</chapterId>\nTextA\n", string(buf[r.Start:r.End]))
}

func TestLocate_Part_NoBlankLineStillEndsPart(t *testing.T) {
	buf := []byte("# P1\n<partId>p1</partId>\nIntro\n# P2\n<partId>p2</partId>\n")

	r, err := Locate(buf, KindPart, "p1")
	require.NoError(t, err)
	// Parts end at the next part heading with or without a blank line;
	// only chapters require one.
	require.Equal(t, "# P1\n<partId>p1</partId>\nIntro", string(buf[r.Start:r.End]))
}

func TestLocate_Part_SinglePartRunsToEndOfBuffer(t *testing.T) {
	buf := []byte(twoChapters)

	r, err := Locate(buf, KindPart, "p1")
	require.NoError(t, err)
	require.Equal(t, 0, r.Start)
	require.Equal(t, len(buf), r.End)
}

func TestLocate_DuplicateID_FirstOccurrenceWins(t *testing.T) {
	buf := []byte("## First\n<chapterId>dup</chapterId>\nOne\n## Second\n<chapterId>dup</chapterId>\nTwo\n")

	r, err := Locate(buf, KindChapter, "dup")
	require.NoError(t, err)
	require.Equal(t, 0, r.Start)
	require.Equal(t, "## First\n<chapterId>dup</chapterId>\nOne", string(buf[r.Start:r.End]))
}

func TestLocate_IDWithRegexMetacharacters_MatchesLiterally(t *testing.T) {
	buf := []byte("## Decoy\n<chapterId>aXb</chapterId>\nDecoy\n## Real\n<chapterId>a.b</chapterId>\nReal\n")

	r, err := Locate(buf, KindChapter, "a.b")
	require.NoError(t, err)
	require.Equal(t, "## Real\n<chapterId>a.b</chapterId>\nReal\n", string(buf[r.Start:r.End]))
}

func TestLocate_MarkerTwoLinesBelowHeading_StillMatches(t *testing.T) {
	buf := []byte("## Ch A\n\n  <chapterId>a</chapterId>\nText\n")

	r, err := Locate(buf, KindChapter, "a")
	require.NoError(t, err)
	require.Equal(t, 0, r.Start)
}

func TestLocate_NonBlankLineBetweenHeadingAndMarker_NotFound(t *testing.T) {
	buf := []byte("## Ch A\nintervening\n<chapterId>a</chapterId>\n")

	_, err := Locate(buf, KindChapter, "a")
	require.ErrorIs(t, err, ErrChapterNotFound)
}

func TestLocate_MissingChapter_ReturnsTypedNotFound(t *testing.T) {
	_, err := Locate([]byte(twoChapters), KindChapter, "nope")

	require.ErrorIs(t, err, ErrChapterNotFound)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "nope", nf.ID)
	require.Equal(t, KindChapter, nf.Kind)
	require.Equal(t, "chapter nope not found", nf.Error())
}

func TestLocate_MissingPart_ReturnsTypedNotFound(t *testing.T) {
	_, err := Locate([]byte(twoChapters), KindPart, "nope")

	require.ErrorIs(t, err, ErrPartNotFound)
	require.NotErrorIs(t, err, ErrChapterNotFound)
}

func TestLocate_ChapterHeadingNeverMatchesAsPart(t *testing.T) {
	buf := []byte("## Ch A\n<partId>p1</partId>\n")

	_, err := Locate(buf, KindPart, "p1")
	require.ErrorIs(t, err, ErrPartNotFound)
}

func TestLocate_UnknownKind_Errors(t *testing.T) {
	_, err := Locate([]byte(twoChapters), Kind(99), "a")

	require.Error(t, err)
	require.NotErrorIs(t, err, ErrChapterNotFound)
}

func TestExtract_ReturnsCopyAndLeavesBufferAlone(t *testing.T) {
	buf := []byte(twoChapters)

	got, err := Extract(buf, KindChapter, "a")
	require.NoError(t, err)
	require.Equal(t, "## Ch A\n<chapterId>a</chapterId>\nTextA", string(got))
	require.Equal(t, twoChapters, string(buf))

	got[0] = 'X'
	require.Equal(t, twoChapters, string(buf))
}

func TestDeleteChapter_MidBuffer_LeavesSurroundingNewlines(t *testing.T) {
	got, err := DeleteChapter([]byte(twoChapters), "a")

	require.NoError(t, err)
	// The newline before the heading and the one that closed the chapter
	// both survive the excision.
	require.Equal(t, "# Part One\n<partId>p1</partId>\n\n## Ch B\n<chapterId>b</chapterId>\nTextB\n", string(got))
}

func TestDeleteChapter_LastChapter_TrimsToPreviousContent(t *testing.T) {
	got, err := DeleteChapter([]byte(twoChapters), "b")

	require.NoError(t, err)
	require.Equal(t, "# Part One\n<partId>p1</partId>\n## Ch A\n<chapterId>a</chapterId>\nTextA\n", string(got))
}

func TestDeleteChapter_Missing_Errors(t *testing.T) {
	_, err := DeleteChapter([]byte(twoChapters), "nope")

	require.ErrorIs(t, err, ErrChapterNotFound)
}

func TestDeletePart_RemovesContainedChapters(t *testing.T) {
	got, err := DeletePart([]byte(twoParts), "p1")

	require.NoError(t, err)
	require.Equal(t, "\n# P2\n<partId>p2</partId>\n## Ch B\n<chapterId>b</chapterId>\nTextB\n", string(got))
	require.NotContains(t, string(got), "chapterId>a")
}

func TestDeletePart_LastPart_RunsToEndOfBuffer(t *testing.T) {
	got, err := DeletePart([]byte(twoParts), "p2")

	require.NoError(t, err)
	require.Equal(t, "# P1\n<partId>p1</partId>\n## Ch A\n<chapterId>a</chapterId>\nTextA\n\n", string(got))
}

func TestMoveChapterAfter_Forward_SourceFollowsTarget(t *testing.T) {
	got, err := MoveChapterAfter([]byte(twoChapters), "a", "b")

	require.NoError(t, err)
	want := "# Part One\n<partId>p1</partId>\n" +
		"\n## Ch B\n<chapterId>b</chapterId>\nTextB\n" +
		"\n\n## Ch A\n<chapterId>a</chapterId>\nTextA"
	require.Equal(t, want, string(got))
}

func TestMoveChapterAfter_Backward_TargetOffsetsUnshifted(t *testing.T) {
	got, err := MoveChapterAfter([]byte(twoChapters), "b", "a")

	require.NoError(t, err)
	want := "# Part One\n<partId>p1</partId>\n" +
		"## Ch A\n<chapterId>a</chapterId>\nTextA\n" +
		"\n\n## Ch B\n<chapterId>b</chapterId>\nTextB\n"
	require.Equal(t, want, string(got))
}

func TestMoveChapterAfter_MidBufferTarget_SplicesBeforeFollowingChapter(t *testing.T) {
	got, err := MoveChapterAfter([]byte(threeChapters), "c", "a")

	require.NoError(t, err)
	want := "# Part One\n<partId>p1</partId>\n" +
		"## Ch A\n<chapterId>a</chapterId>\nTextA" +
		"\n\n## Ch C\n<chapterId>c</chapterId>\nTextC\n" +
		"\n## Ch B\n<chapterId>b</chapterId>\nTextB\n"
	require.Equal(t, want, string(got))

	// Relative order is now A, C, B.
	a := strings.Index(string(got), "<chapterId>a</chapterId>")
	b := strings.Index(string(got), "<chapterId>b</chapterId>")
	c := strings.Index(string(got), "<chapterId>c</chapterId>")
	require.Less(t, a, c)
	require.Less(t, c, b)
}

func TestMoveChapterAfter_MissingSource_Errors(t *testing.T) {
	_, err := MoveChapterAfter([]byte(twoChapters), "nope", "b")

	require.ErrorIs(t, err, ErrChapterNotFound)
	require.Contains(t, err.Error(), "move source")
}

func TestMoveChapterAfter_MissingTarget_FailsBeforeDeleting(t *testing.T) {
	buf := []byte(twoChapters)

	_, err := MoveChapterAfter(buf, "a", "nope")
	require.ErrorIs(t, err, ErrChapterNotFound)
	require.Contains(t, err.Error(), "move target")
	require.Equal(t, twoChapters, string(buf))
}

func TestMoveChapterAfter_SourceIsTarget_FailsAfterDelete(t *testing.T) {
	_, err := MoveChapterAfter([]byte(twoChapters), "a", "a")

	// Deleting the source removed the only match for the target.
	require.ErrorIs(t, err, ErrChapterNotFound)
	require.Contains(t, err.Error(), "move target after delete")
}

func TestCut_RemovesExactRange(t *testing.T) {
	buf := []byte(twoChapters)
	r, err := Locate(buf, KindChapter, "a")
	require.NoError(t, err)

	got := Cut(buf, r)
	require.Equal(t, len(buf)-r.Len(), len(got))
	require.NotContains(t, string(got), "chapterId>a")
	require.Equal(t, twoChapters, string(buf))
}
