// Package reorg applies batches of reorganization operations to course
// documents, one buffer, one file, or one course directory at a time.
package reorg

import (
	"errors"
	"fmt"
)

// Action identifies one kind of reorganization operation.
type Action string

const (
	// ActionMoveChapter relocates a chapter to sit after a target chapter.
	ActionMoveChapter Action = "move_chapter"
	// ActionDeletePart removes a part together with every chapter in its span.
	ActionDeletePart Action = "delete_part"
)

// Operation is one reorganization step as submitted by callers. SourceID
// names the chapter or part acted on; TargetID is only used by move_chapter
// and names the chapter to insert after.
type Operation struct {
	Action   Action `json:"action"`
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id,omitempty"`
}

// Batch is an ordered sequence of operations submitted together.
type Batch []Operation

// ErrInvalidOperation marks a batch entry that cannot execute regardless of
// document content.
var ErrInvalidOperation = errors.New("invalid operation")

// InvalidOperationError reports a malformed batch entry: an unknown action
// or a missing required ID. Index is the 1-based position in the batch.
type InvalidOperationError struct {
	Index  int
	Action Action
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("operation %d: %s", e.Index, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// OperationError wraps a document-level failure with the batch position of
// the operation that caused it.
type OperationError struct {
	Index int
	Op    Operation
	Err   error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %d (%s): %v", e.Index, e.Op.Action, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }
