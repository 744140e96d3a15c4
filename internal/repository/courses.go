package repository

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Asi0Flammeus/course-ally/internal/course"
	"github.com/Asi0Flammeus/course-ally/internal/coursemeta"
	"github.com/Asi0Flammeus/course-ally/internal/logfields"
)

// CourseRef identifies one course inside a content repository.
type CourseRef struct {
	Name     string `json:"name"`      // display name, the uppercased directory name
	Dir      string `json:"directory"` // directory name under courses/
	RepoKey  string `json:"repo"`
	RepoName string `json:"repo_name"`
}

// ListCourses lists the courses of every resolvable repository, sorted by
// repository key and name. A repository that does not resolve is skipped
// rather than an error: local checkouts routinely carry only one of the two.
func (r *Registry) ListCourses() ([]CourseRef, error) {
	var refs []CourseRef
	for _, repo := range r.repos {
		root, err := r.Path(repo.Key)
		if err != nil {
			slog.Debug("repository skipped",
				logfields.Repository(repo.Key),
				logfields.Error(err),
			)
			continue
		}

		entries, err := os.ReadDir(filepath.Join(root, coursesDir))
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", repo.Key, err)
		}
		for _, e := range entries {
			if !e.IsDir() || !isCourseDir(filepath.Join(root, coursesDir, e.Name())) {
				continue
			}
			refs = append(refs, CourseRef{
				Name:     strings.ToUpper(e.Name()),
				Dir:      e.Name(),
				RepoKey:  repo.Key,
				RepoName: repo.Name,
			})
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].RepoKey != refs[j].RepoKey {
			return refs[i].RepoKey < refs[j].RepoKey
		}
		return refs[i].Name < refs[j].Name
	})
	return refs, nil
}

// isCourseDir reports whether dir holds a course: a descriptor or a
// reference-language file marks it as one.
func isCourseDir(dir string) bool {
	for _, marker := range []string{course.MetadataFile, course.ReferenceLanguage + ".md"} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// CourseDir resolves the directory of one course by repository key and
// directory name.
func (r *Registry) CourseDir(key, name string) (string, error) {
	root, err := r.Path(key)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, coursesDir, name)
	if !dirExists(dir) {
		return "", fmt.Errorf("%s in %s: %w", name, key, ErrCourseNotFound)
	}
	slog.Debug("course resolved", logfields.Course(name), logfields.Path(dir))
	return dir, nil
}

// Course is the full editable state of one course: its descriptor metadata
// and the editable fields of every language file.
type Course struct {
	Metadata  course.Metadata                `json:"metadata"`
	Languages []string                       `json:"languages"`
	Content   map[string]coursemeta.FieldSet `json:"content"`
}

// LoadCourse loads one course by repository key and directory name.
func (r *Registry) LoadCourse(key, name string) (*Course, error) {
	dir, err := r.CourseDir(key, name)
	if err != nil {
		return nil, err
	}
	return LoadCourseDir(dir)
}

// LoadCourseDir loads the descriptor and every language file of the course
// directory at dir. The reference language is hoisted to the front of
// Languages when present.
func LoadCourseDir(dir string) (*Course, error) {
	meta, err := course.LoadMetadata(dir)
	if err != nil {
		return nil, err
	}
	files, err := course.MarkdownFiles(dir)
	if err != nil {
		return nil, err
	}

	c := &Course{
		Metadata:  meta,
		Languages: []string{},
		Content:   map[string]coursemeta.FieldSet{},
	}
	for _, f := range files {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(f.Path), err)
		}
		c.Languages = append(c.Languages, f.Lang)
		c.Content[f.Lang] = coursemeta.ParseFields(content)
	}
	hoistReference(c.Languages)
	return c, nil
}

// RenameCourse renames a course by repository key and directory name.
func (r *Registry) RenameCourse(key, name, newName string) error {
	if newName == "" || newName == name {
		return nil
	}
	dir, err := r.CourseDir(key, name)
	if err != nil {
		return err
	}
	return RenameDir(dir, newName)
}

// RenameDir moves the course directory at dir to newName inside the same
// parent. Renaming onto an existing course is refused.
func RenameDir(dir, newName string) error {
	dest := filepath.Join(filepath.Dir(dir), newName)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("%s: %w", newName, ErrCourseExists)
	}
	if err := os.Rename(dir, dest); err != nil {
		return fmt.Errorf("rename course: %w", err)
	}

	slog.Info("course renamed",
		logfields.Path(dir),
		slog.String("renamed_to", newName),
	)
	return nil
}

// hoistReference moves the reference language to the front, keeping the rest
// of the sorted order intact.
func hoistReference(langs []string) {
	for i, l := range langs {
		if l == course.ReferenceLanguage && i > 0 {
			copy(langs[1:i+1], langs[:i])
			langs[0] = course.ReferenceLanguage
			break
		}
	}
}
