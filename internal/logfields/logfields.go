package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRepo      = "repository"
	KeyCourse    = "course"
	KeyLanguage  = "language"
	KeyPath      = "path"
	KeyFile      = "file"
	KeyField     = "field"
	KeyAction    = "action"
	KeyOperation = "operation"
	KeyCount     = "count"
	KeyRule      = "rule"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Repository(r string) slog.Attr  { return slog.String(KeyRepo, r) }
func Course(name string) slog.Attr   { return slog.String(KeyCourse, name) }
func Language(code string) slog.Attr { return slog.String(KeyLanguage, code) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func File(name string) slog.Attr     { return slog.String(KeyFile, name) }
func Field(name string) slog.Attr    { return slog.String(KeyField, name) }
func Action(a string) slog.Attr      { return slog.String(KeyAction, a) }
func Operation(n int) slog.Attr      { return slog.Int(KeyOperation, n) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func Rule(name string) slog.Attr     { return slog.String(KeyRule, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
