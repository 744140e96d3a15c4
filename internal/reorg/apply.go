package reorg

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/Asi0Flammeus/course-ally/internal/document"
	"github.com/Asi0Flammeus/course-ally/internal/logfields"
)

// Apply runs every operation in batch against buf and returns the final
// buffer. The input buffer is never modified.
//
// Deletions run first: each is resolved against the untouched buffer and
// the regions are excised right to left, so one excision cannot shift the
// recorded offsets of another. Moves then run in submission order against
// the evolving buffer; every move re-resolves its own IDs, which is what
// lets a later move target a chapter an earlier move relocated.
//
// The first failure aborts the batch with no rollback. Run Validate first
// when complete feedback matters more than speed.
func Apply(buf []byte, batch Batch) ([]byte, error) {
	type deletion struct {
		index  int
		region document.Region
	}
	var deletions []deletion
	type move struct {
		index int
		op    Operation
	}
	var moves []move

	for i, op := range batch {
		n := i + 1
		switch op.Action {
		case ActionDeletePart:
			if op.SourceID == "" {
				return nil, &InvalidOperationError{Index: n, Action: op.Action, Reason: "missing source_id for delete_part"}
			}
			r, err := document.Locate(buf, document.KindPart, op.SourceID)
			if err != nil {
				return nil, &OperationError{Index: n, Op: op, Err: err}
			}
			deletions = append(deletions, deletion{index: n, region: r})
		case ActionMoveChapter:
			if op.SourceID == "" {
				return nil, &InvalidOperationError{Index: n, Action: op.Action, Reason: "missing source_id for move_chapter"}
			}
			if op.TargetID == "" {
				return nil, &InvalidOperationError{Index: n, Action: op.Action, Reason: "missing target_id for move_chapter"}
			}
			moves = append(moves, move{index: n, op: op})
		default:
			return nil, &InvalidOperationError{Index: n, Action: op.Action, Reason: fmt.Sprintf("unknown action %q", op.Action)}
		}
	}

	sort.Slice(deletions, func(a, b int) bool {
		return deletions[a].region.Start > deletions[b].region.Start
	})
	for _, d := range deletions {
		slog.Debug("cutting part", logfields.Action(string(ActionDeletePart)), logfields.Operation(d.index))
		r := d.region
		// Duplicate IDs resolve to the same range, and after the first cut
		// the repeat can reach past the shrunken buffer.
		if r.End > len(buf) {
			r.End = len(buf)
		}
		if r.Start > r.End {
			r.Start = r.End
		}
		buf = document.Cut(buf, r)
	}

	for _, m := range moves {
		slog.Debug("moving chapter", logfields.Action(string(m.op.Action)), logfields.Operation(m.index))
		next, err := document.MoveChapterAfter(buf, m.op.SourceID, m.op.TargetID)
		if err != nil {
			return nil, &OperationError{Index: m.index, Op: m.op, Err: err}
		}
		buf = next
	}
	return buf, nil
}

// Validate dry-runs batch against buf and collects every problem instead of
// stopping at the first. An empty result means the batch would resolve.
// Only shape and per-operation existence are checked; interactions between
// operations, such as two deletions of the same part, are not simulated.
func Validate(buf []byte, batch Batch) []string {
	var problems []string
	for i, op := range batch {
		n := i + 1
		switch op.Action {
		case ActionMoveChapter:
			if op.SourceID == "" {
				problems = append(problems, fmt.Sprintf("Operation %d: missing source_id for move_chapter", n))
			} else if _, err := document.Locate(buf, document.KindChapter, op.SourceID); err != nil {
				problems = append(problems, fmt.Sprintf("Operation %d: source chapter %s not found", n, op.SourceID))
			}
			if op.TargetID == "" {
				problems = append(problems, fmt.Sprintf("Operation %d: missing target_id for move_chapter", n))
			} else if _, err := document.Locate(buf, document.KindChapter, op.TargetID); err != nil {
				problems = append(problems, fmt.Sprintf("Operation %d: target chapter %s not found", n, op.TargetID))
			}
		case ActionDeletePart:
			if op.SourceID == "" {
				problems = append(problems, fmt.Sprintf("Operation %d: missing source_id for delete_part", n))
			} else if _, err := document.Locate(buf, document.KindPart, op.SourceID); err != nil {
				problems = append(problems, fmt.Sprintf("Operation %d: part %s not found", n, op.SourceID))
			}
		default:
			problems = append(problems, fmt.Sprintf("Operation %d: unknown action %q", n, op.Action))
		}
	}
	return problems
}
