// Package repository locates the content repositories that hold courses and
// discovers the courses inside them. Repositories are looked up by key and
// resolved through environment variables with built-in fallback paths, so the
// tool works from any checkout layout without configuration files.
package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const coursesDir = "courses"

var (
	// ErrRepositoryNotFound marks an unknown repository key or a repository
	// whose resolved location is missing or has no courses directory.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrCourseNotFound marks a course name with no directory under courses/.
	ErrCourseNotFound = errors.New("course not found")
	// ErrCourseExists marks a rename that would overwrite another course.
	ErrCourseExists = errors.New("course already exists")
)

// Repo describes one named content repository.
type Repo struct {
	Key         string // stable identifier used on the command line
	Name        string // human-readable name
	EnvVar      string // environment variable overriding the location
	DefaultPath string // fallback location, relative to the working directory
}

// Registry is an ordered set of known content repositories.
type Registry struct {
	repos []Repo
}

// DefaultRegistry returns the registry of built-in content repositories.
func DefaultRegistry() *Registry {
	return &Registry{repos: []Repo{
		{
			Key:         "BEC_REPO",
			Name:        "Bitcoin Educational Content",
			EnvVar:      "BEC_REPO",
			DefaultPath: "../bitcoin-educational-content",
		},
		{
			Key:         "PREMIUM_REPO",
			Name:        "Premium Content",
			EnvVar:      "PREMIUM_REPO",
			DefaultPath: "../planB-premium-content",
		},
	}}
}

// Repos returns the registry entries in registration order.
func (r *Registry) Repos() []Repo {
	return slices.Clone(r.repos)
}

// Lookup returns the entry for key.
func (r *Registry) Lookup(key string) (Repo, bool) {
	for _, repo := range r.repos {
		if repo.Key == key {
			return repo, true
		}
	}
	return Repo{}, false
}

// Path resolves the location of the repository key. The environment variable
// wins over the default path; relative locations resolve against the working
// directory. A location only counts when it exists and contains a courses
// directory.
func (r *Registry) Path(key string) (string, error) {
	repo, ok := r.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrRepositoryNotFound)
	}

	loc := os.Getenv(repo.EnvVar)
	if loc == "" {
		loc = repo.DefaultPath
	}
	abs, err := filepath.Abs(loc)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}

	if !dirExists(abs) || !dirExists(filepath.Join(abs, coursesDir)) {
		return "", fmt.Errorf("%s at %s: %w", key, abs, ErrRepositoryNotFound)
	}
	return abs, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
