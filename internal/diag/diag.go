// Package diag defines the diagnostic and fix objects the engine returns to
// its host. The JSON shape of these types is the wire contract of the serve
// protocol and of `arblint analyze --format json`.
package diag

import "sort"

// Severity of a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Category groups diagnostics on the host side.
type Category string

// CategoryLint is the only category this engine emits.
const CategoryLint Category = "lint"

// Location points at a byte range in one file, with 1-based line/column
// bounds for hosts that do not track offsets.
type Location struct {
	Path        string `json:"path"`
	Offset      int    `json:"offset"`
	Length      int    `json:"length"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
}

// TextEdit replaces Length bytes at Offset with Replacement. Offsets are
// relative to the file content the enclosing FileEdit's version guard names.
type TextEdit struct {
	Offset      int    `json:"offset"`
	Length      int    `json:"length"`
	Replacement string `json:"replacement"`
}

// Version guard sentinels for FileEdit. The engine performs no real
// optimistic-concurrency checking; these two values are the only ones it
// ever emits.
const (
	// VersionCurrent applies the edits to the file's current content
	// without any precondition.
	VersionCurrent = 0
	// VersionMissing marks a file not known to exist yet; the host applies
	// without a precondition check.
	VersionMissing = -1
)

// FileEdit is an ordered group of edits against one file snapshot. Edits
// within one FileEdit must be applied together; FileEdits within one Fix
// target different files and carry no cross-file atomicity guarantee.
type FileEdit struct {
	Path    string     `json:"path"`
	Version int        `json:"version"`
	Edits   []TextEdit `json:"edits"`
}

// LinkedPosition is one occurrence of a linked identifier, located in the
// post-edit text of its file.
type LinkedPosition struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// LinkedGroup ties identifier occurrences across files to one interactive
// rename, with candidate replacement suggestions.
type LinkedGroup struct {
	Positions   []LinkedPosition `json:"positions"`
	Suggestions []string         `json:"suggestions"`
}

// Fix is one candidate transformation for a diagnostic. Higher priority is
// preferred; a Fix without edits is purely explanatory.
type Fix struct {
	Priority int          `json:"priority"`
	Label    string       `json:"label"`
	Edits    []FileEdit   `json:"edits"`
	Linked   *LinkedGroup `json:"linkedGroup,omitempty"`
}

// HasEdits reports whether the fix changes any file.
func (f Fix) HasEdits() bool {
	for _, fe := range f.Edits {
		if len(fe.Edits) > 0 {
			return true
		}
	}
	return false
}

// SortFixes orders candidate fixes for presentation: edit-bearing fixes by
// descending priority, explanatory fixes after all of them. The sort is
// stable so equal-priority fixes keep synthesis order.
func SortFixes(fixes []Fix) {
	sort.SliceStable(fixes, func(i, j int) bool {
		ei, ej := fixes[i].HasEdits(), fixes[j].HasEdits()
		if ei != ej {
			return ei
		}
		return fixes[i].Priority > fixes[j].Priority
	})
}

// Diagnostic is one reported literal with its candidate fixes. The set of
// diagnostics for a file replaces any previous set for that file.
type Diagnostic struct {
	Severity   Severity `json:"severity"`
	Category   Category `json:"category"`
	Code       string   `json:"code"`
	Location   Location `json:"location"`
	Message    string   `json:"message"`
	Correction string   `json:"correction,omitempty"`
	Fixes      []Fix    `json:"fixes"`
}
