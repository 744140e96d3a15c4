// Package check scans course documents for structural problems before they
// bite a reorganization: headings without ID markers, duplicated IDs,
// malformed IDs, and language variants whose chapter sets have drifted
// apart. Checking never mutates a file.
package check

import "encoding/json"

// Severity indicates the importance level of a check issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues that deserve attention but don't
	// break structural edits.
	SeverityWarning
	// SeverityError indicates issues that make regions unreachable or
	// ambiguous for structural edits.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON emits the severity name instead of its numeric value.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Issue represents a single problem found in a course file.
type Issue struct {
	File     string   `json:"file"`           // File the issue was found in
	Line     int      `json:"line,omitempty"` // 1-based line number (0 if file-level)
	Rule     string   `json:"rule"`           // Rule identifier (e.g., "chapter-tag-missing")
	Severity Severity `json:"severity"`       // Issue severity level
	Message  string   `json:"message"`        // Brief description of the issue
	Fix      string   `json:"fix,omitempty"`  // Suggested fix, when one is obvious
}

// Result contains all issues found during a check run.
type Result struct {
	Issues       []Issue `json:"issues"`
	FilesChecked int     `json:"files_checked"`
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			count++
		}
	}
	return count
}
