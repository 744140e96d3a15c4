package course

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCourseFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestMarkdownFiles_ExcludesPresentationAndNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeCourseFile(t, dir, "en.md", "content")
	writeCourseFile(t, dir, "fr.md", "contenu")
	writeCourseFile(t, dir, "presentation.md", "slides")
	writeCourseFile(t, dir, "course.yml", "topic: x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "assets"), 0o750))

	files, err := MarkdownFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "en", files[0].Lang)
	require.Equal(t, "fr", files[1].Lang)
	require.Equal(t, filepath.Join(dir, "en.md"), files[0].Path)
}

func TestMarkdownFiles_KeepsNonLanguageStems(t *testing.T) {
	dir := t.TempDir()
	writeCourseFile(t, dir, "en.md", "content")
	writeCourseFile(t, dir, "notes_v2.md", "scratch")

	files, err := MarkdownFiles(dir)
	require.NoError(t, err)
	// Edits target every markdown file; only listings filter by language.
	require.Len(t, files, 2)
}

func TestMarkdownFiles_MissingDirectory_Errors(t *testing.T) {
	_, err := MarkdownFiles(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestIsLanguageCode_AcceptsCommonTags(t *testing.T) {
	for _, code := range []string{"en", "fr", "de", "pt-BR", "zh-Hans"} {
		require.True(t, IsLanguageCode(code), code)
	}
}

func TestIsLanguageCode_RejectsNonCodes(t *testing.T) {
	for _, stem := range []string{"e", "", "presentation", "2fr", "notes_v2", "notlang123"} {
		require.False(t, IsLanguageCode(stem), stem)
	}
}

func TestLanguages_SortedWithReferenceFirst(t *testing.T) {
	dir := t.TempDir()
	writeCourseFile(t, dir, "fr.md", "")
	writeCourseFile(t, dir, "de.md", "")
	writeCourseFile(t, dir, "en.md", "")
	writeCourseFile(t, dir, "presentation.md", "")

	langs, err := Languages(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"en", "de", "fr"}, langs)
}

func TestLanguages_NoReferenceLanguage_PlainSort(t *testing.T) {
	dir := t.TempDir()
	writeCourseFile(t, dir, "fr.md", "")
	writeCourseFile(t, dir, "de.md", "")

	langs, err := Languages(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"de", "fr"}, langs)
}

func TestLanguages_SkipsNonLanguageStems(t *testing.T) {
	dir := t.TempDir()
	writeCourseFile(t, dir, "en.md", "")
	writeCourseFile(t, dir, "notes_v2.md", "")

	langs, err := Languages(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"en"}, langs)
}
