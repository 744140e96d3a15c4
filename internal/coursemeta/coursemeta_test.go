package coursemeta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_StripsBOM(t *testing.T) {
	got := Normalize([]byte("\ufeff# Title\n"))
	require.Equal(t, "# Title\n", string(got))
}

func TestNormalize_CRLFAndLoneCR(t *testing.T) {
	got := Normalize([]byte("line one\r\nline two\rline three\n"))
	require.Equal(t, "line one\nline two\nline three\n", string(got))
}

func TestNormalize_CleanInputUnchanged(t *testing.T) {
	got := Normalize([]byte("already\nclean\n"))
	require.Equal(t, "already\nclean\n", string(got))
}

func TestSplitDescription_DelimiterSplitsBody(t *testing.T) {
	desc, rest, found := SplitDescription([]byte("The description.\n+++\nThe body.\n"))

	require.True(t, found)
	require.Equal(t, "The description.", desc)
	require.Equal(t, "\nThe body.\n", string(rest))
}

func TestSplitDescription_DelimiterWithBlanksStillCounts(t *testing.T) {
	desc, _, found := SplitDescription([]byte("Desc.\n  +++ \t\nBody.\n"))

	require.True(t, found)
	require.Equal(t, "Desc.", desc)
}

func TestSplitDescription_PlusSignsInsideLineAreNotADelimiter(t *testing.T) {
	_, _, found := SplitDescription([]byte("a +++ b\nc\n"))
	require.False(t, found)
}

func TestSplitDescription_NoDelimiter_WholeBodyIsDescription(t *testing.T) {
	desc, rest, found := SplitDescription([]byte("  Just text.\n\n"))

	require.False(t, found)
	require.Nil(t, rest)
	require.Equal(t, "Just text.", desc)
}

func TestSplitDescription_DelimiterOnFirstLine_EmptyDescription(t *testing.T) {
	desc, rest, found := SplitDescription([]byte("+++\nBody.\n"))

	require.True(t, found)
	require.Empty(t, desc)
	require.Equal(t, "\nBody.\n", string(rest))
}

func TestParseFields_FullFile(t *testing.T) {
	content := []byte("---\n" +
		"name: BTC 101\n" +
		"goal: Understand bitcoin\n" +
		"objectives:\n  - First\n  - Second\n" +
		"---\n" +
		"A short description.\n+++\nChapters follow.\n")

	fs := ParseFields(content)
	require.Equal(t, "BTC 101", fs.Name)
	require.Equal(t, "Understand bitcoin", fs.Goal)
	require.Equal(t, []string{"First", "Second"}, fs.Objectives)
	require.Equal(t, "A short description.", fs.Description)
}

func TestParseFields_NoFrontmatter(t *testing.T) {
	fs := ParseFields([]byte("Only a description.\n+++\nBody.\n"))

	require.Empty(t, fs.Name)
	require.Empty(t, fs.Goal)
	require.Empty(t, fs.Objectives)
	require.Equal(t, "Only a description.", fs.Description)
}

func TestParseFields_MalformedFrontmatterReadAsBody(t *testing.T) {
	content := []byte("---\nname: lost\nno closing delimiter\n")

	fs := ParseFields(content)
	require.Empty(t, fs.Name)
	require.Contains(t, fs.Description, "name: lost")
}

func TestParseFields_MissingFieldsStayZero(t *testing.T) {
	fs := ParseFields([]byte("---\nlevel: beginner\n---\nDesc.\n"))

	require.Empty(t, fs.Name)
	require.Empty(t, fs.Goal)
	require.NotNil(t, fs.Objectives)
	require.Empty(t, fs.Objectives)
	require.Equal(t, "Desc.", fs.Description)
}
