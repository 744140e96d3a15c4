package course

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/Asi0Flammeus/course-ally/internal/logfields"
	"github.com/Asi0Flammeus/course-ally/internal/markdown"
	"github.com/Asi0Flammeus/course-ally/internal/tag"
)

// TagLookahead is how many lines after a heading may hold its ID marker.
const TagLookahead = 5

// Chapter is one chapter entry of a listing, in document order.
type Chapter struct {
	ID      string `json:"chapter_id"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
	Content string `json:"content"`
	Words   int    `json:"word_count"`
}

// Chapters lists the chapters of one language file, falling back to the
// reference language when the requested one is absent. A course or language
// that does not exist yields an empty listing, not an error: listings feed
// displays, and an empty course displays as empty.
func Chapters(dir, lang string) ([]Chapter, error) {
	content, err := os.ReadFile(languagePath(dir, lang))
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("language file missing, using reference", logfields.Language(lang))
		content, err = os.ReadFile(languagePath(dir, ReferenceLanguage))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("read language file: %w", err)
	}
	return ScanChapters(content), nil
}

// ScanChapters walks the buffer line by line collecting every `## ` heading
// with an ID marker within reach. Content runs from the marker line to the
// next chapter heading, so the listing shows body text without the title
// repeated.
func ScanChapters(content []byte) []Chapter {
	lines := strings.Split(string(content), "\n")
	chapters := []Chapter{}

	for i, line := range lines {
		if !strings.HasPrefix(line, "## ") {
			continue
		}

		id, tagLine := "", -1
		for j := i + 1; j < len(lines) && j <= i+TagLookahead; j++ {
			if v, ok := tag.ExtractChapterID(lines[j]); ok {
				id, tagLine = v, j
				break
			}
		}
		if id == "" {
			continue
		}

		end := len(lines)
		for k := tagLine + 1; k < len(lines); k++ {
			if strings.HasPrefix(lines[k], "## ") {
				end = k
				break
			}
		}

		body := strings.TrimSpace(strings.Join(lines[tagLine:end], "\n"))
		chapters = append(chapters, Chapter{
			ID:      id,
			Title:   strings.TrimSpace(strings.TrimPrefix(line, "## ")),
			Order:   len(chapters),
			Content: body,
			Words:   markdown.WordCount([]byte(body)),
		})
	}
	return chapters
}
