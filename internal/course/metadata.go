package course

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Asi0Flammeus/course-ally/internal/frontmatter"
)

// Metadata is the course.yml descriptor shared by every language variant.
type Metadata struct {
	Topic    string `json:"topic" yaml:"topic"`
	Subtopic string `json:"subtopic" yaml:"subtopic"`
	Type     string `json:"type" yaml:"type"`
	Level    string `json:"level" yaml:"level"`
	Hours    int    `json:"hours" yaml:"hours"`
}

// LoadMetadata reads course.yml from the course directory. Not every course
// carries a descriptor; a missing file yields the zero value.
func LoadMetadata(dir string) (Metadata, error) {
	raw, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Metadata{}, nil
	}
	if err != nil {
		return Metadata{}, fmt.Errorf("read %s: %w", MetadataFile, err)
	}

	var m Metadata
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Metadata{}, fmt.Errorf("parse %s: %w", MetadataFile, err)
	}
	return m, nil
}

// UpdateMetadata rewrites the known course.yml fields in place. Any other
// keys the file carries keep their value and position. A course without a
// course.yml is left alone.
func UpdateMetadata(dir string, m Metadata) error {
	path := filepath.Join(dir, MetadataFile)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", MetadataFile, err)
	}

	node, err := frontmatter.ParseNode(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", MetadataFile, err)
	}
	frontmatter.SetMapEntry(node, "topic", frontmatter.StringNode(m.Topic))
	frontmatter.SetMapEntry(node, "subtopic", frontmatter.StringNode(m.Subtopic))
	frontmatter.SetMapEntry(node, "type", frontmatter.StringNode(m.Type))
	frontmatter.SetMapEntry(node, "level", frontmatter.StringNode(m.Level))
	frontmatter.SetMapEntry(node, "hours", frontmatter.IntNode(m.Hours))

	out, err := frontmatter.EncodeNode(node)
	if err != nil {
		return fmt.Errorf("encode %s: %w", MetadataFile, err)
	}
	return os.WriteFile(path, out, 0o644)
}
