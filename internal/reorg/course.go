package reorg

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/Asi0Flammeus/course-ally/internal/course"
	"github.com/Asi0Flammeus/course-ally/internal/logfields"
)

// Result aggregates a course-level apply across its language files.
type Result struct {
	Success        bool     `json:"success"`
	FilesProcessed int      `json:"files_processed"`
	FilesFailed    int      `json:"files_failed"`
	Errors         []string `json:"errors"`
}

// ApplyFile loads the file at path, applies batch, and rewrites the file in
// place. A failed batch leaves the file exactly as it was; partial results
// are never written.
func ApplyFile(path string, batch Batch) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read course file: %w", err)
	}
	out, err := Apply(buf, batch)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write course file: %w", err)
	}
	return nil
}

// ApplyCourse applies one batch to every language file of the course at
// dir, optionally limited to the given languages. presentation.md is never
// touched. Files fail independently: language variants are allowed to
// drift, and one stale ID must not block the rest of the course.
func ApplyCourse(dir string, batch Batch, languages []string) (Result, error) {
	files, err := course.MarkdownFiles(dir)
	if err != nil {
		return Result{}, err
	}

	res := Result{Success: true, Errors: []string{}}
	for _, f := range files {
		if len(languages) > 0 && !slices.Contains(languages, f.Lang) {
			continue
		}
		slog.Debug("applying operations", logfields.File(filepath.Base(f.Path)), logfields.Count(len(batch)))
		if err := ApplyFile(f.Path, batch); err != nil {
			slog.Warn("course file failed", logfields.File(filepath.Base(f.Path)), logfields.Error(err))
			res.Success = false
			res.FilesFailed++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", filepath.Base(f.Path), err))
			continue
		}
		res.FilesProcessed++
	}
	return res, nil
}
