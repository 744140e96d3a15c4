package check

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Asi0Flammeus/course-ally/internal/course"
	"github.com/Asi0Flammeus/course-ally/internal/logfields"
	"github.com/Asi0Flammeus/course-ally/internal/structure"
)

// Options configure a course check run.
type Options struct {
	// Reference is the drift reference language; empty means the default
	// authoring language.
	Reference string
	// Languages optionally limits the run to the given file stems.
	Languages []string
}

// RunCourse checks every language file of the course at dir. Unreadable
// files become error issues rather than failing the run: one broken variant
// should not hide the findings of the others.
func RunCourse(dir string, opts Options) (*Result, error) {
	files, err := course.MarkdownFiles(dir)
	if err != nil {
		return nil, err
	}
	reference := opts.Reference
	if reference == "" {
		reference = course.ReferenceLanguage
	}

	res := &Result{Issues: []Issue{}}
	var checked []File
	for _, lf := range files {
		if len(opts.Languages) > 0 && !slices.Contains(opts.Languages, lf.Lang) {
			continue
		}
		content, err := os.ReadFile(lf.Path)
		if err != nil {
			res.Issues = append(res.Issues, Issue{
				File:     filepath.Base(lf.Path),
				Rule:     "read-file",
				Severity: SeverityError,
				Message:  err.Error(),
			})
			continue
		}
		f := File{Path: filepath.Base(lf.Path), Lang: lf.Lang, Content: content}
		checked = append(checked, f)
		res.FilesChecked++
		for _, rule := range Rules() {
			res.Issues = append(res.Issues, rule.Check(f)...)
		}
	}

	res.Issues = append(res.Issues, LanguageDrift(checked, reference)...)
	slog.Debug("course checked",
		logfields.Path(dir),
		logfields.Count(len(res.Issues)),
	)
	return res, nil
}

// RunFile checks a single course document.
func RunFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course file: %w", err)
	}
	base := filepath.Base(path)
	f := File{Path: base, Lang: strings.TrimSuffix(base, ".md"), Content: content}

	res := &Result{Issues: []Issue{}, FilesChecked: 1}
	for _, rule := range Rules() {
		res.Issues = append(res.Issues, rule.Check(f)...)
	}
	return res, nil
}

// LanguageDrift compares each variant's chapter IDs against the reference
// language and reports the chapters a variant is missing. Drift is a
// warning, not an error: variants are allowed to lag, and course-level
// applies already continue past them.
func LanguageDrift(files []File, reference string) []Issue {
	var ref *File
	for i := range files {
		if files[i].Lang == reference {
			ref = &files[i]
			break
		}
	}
	if ref == nil {
		return nil
	}
	refIDs := chapterIDs(ref.Content)

	var issues []Issue
	for _, f := range files {
		if f.Lang == reference {
			continue
		}
		have := map[string]bool{}
		for _, id := range chapterIDs(f.Content) {
			have[id] = true
		}
		for _, id := range refIDs {
			if have[id] {
				continue
			}
			issues = append(issues, Issue{
				File:     f.Path,
				Rule:     "language-drift",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("chapter %s is missing; present in %s", id, reference),
			})
		}
	}
	return issues
}

// chapterIDs lists a document's chapter IDs in document order.
func chapterIDs(content []byte) []string {
	st := structure.Parse(content)
	var ids []string
	for _, c := range st.OrphanChapters {
		ids = append(ids, c.ID)
	}
	for _, p := range st.Parts {
		for _, c := range p.Chapters {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
