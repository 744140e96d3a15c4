package document

import (
	"errors"
	"fmt"
)

// Sentinel errors for region lookup failures. Callers that only care about
// the category can errors.Is against these; the concrete *NotFoundError
// carries the ID.
var (
	ErrPartNotFound    = errors.New("part not found")
	ErrChapterNotFound = errors.New("chapter not found")
)

// NotFoundError reports a part or chapter marker absent from the buffer at
// the moment it was needed.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	if e.Kind == KindPart {
		return ErrPartNotFound
	}
	return ErrChapterNotFound
}
