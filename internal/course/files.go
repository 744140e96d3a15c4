// Package course models one course directory: its per-language markdown
// files, its chapter listings, and its course.yml descriptor.
package course

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

const (
	// PresentationFile is the per-course presentation document. It is never
	// a structural-edit target.
	PresentationFile = "presentation.md"
	// MetadataFile is the per-course descriptor.
	MetadataFile = "course.yml"
	// ReferenceLanguage is the language the other variants are authored from.
	ReferenceLanguage = "en"
)

// LanguageFile is one markdown file of a course directory. Lang is the file
// stem; for regular course content that is a language code.
type LanguageFile struct {
	Lang string
	Path string
}

// MarkdownFiles returns every editable markdown file of the course
// directory: all *.md except presentation.md, sorted by name. Stems are not
// validated as language codes here, so edits reach whatever markdown the
// course carries.
func MarkdownFiles(dir string) ([]LanguageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("course directory: %w", err)
	}

	files := make([]LanguageFile, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".md" || name == PresentationFile {
			continue
		}
		files = append(files, LanguageFile{
			Lang: strings.TrimSuffix(name, ".md"),
			Path: filepath.Join(dir, name),
		})
	}
	return files, nil
}

// IsLanguageCode reports whether a file stem looks like a language code:
// 2 to 10 characters, leading letter, parseable as a BCP 47 tag. That
// accepts en, fr, zh-Hans or pt-BR while rejecting stems like quiz_v2.
func IsLanguageCode(stem string) bool {
	if len(stem) < 2 || len(stem) > 10 {
		return false
	}
	if !unicode.IsLetter(rune(stem[0])) {
		return false
	}
	_, err := language.Parse(stem)
	return err == nil
}

// Languages lists the course's language codes sorted alphabetically, with
// the reference language hoisted to the front when present.
func Languages(dir string) ([]string, error) {
	files, err := MarkdownFiles(dir)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(files))
	for _, f := range files {
		if IsLanguageCode(f.Lang) {
			codes = append(codes, f.Lang)
		}
	}
	sort.Strings(codes)

	for i, c := range codes {
		if c == ReferenceLanguage && i > 0 {
			copy(codes[1:i+1], codes[:i])
			codes[0] = ReferenceLanguage
			break
		}
	}
	return codes, nil
}

// languagePath returns the file path for one language of the course.
func languagePath(dir, lang string) string {
	return filepath.Join(dir, lang+".md")
}
