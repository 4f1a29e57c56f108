// Package fix synthesizes the candidate code actions for flagged string
// literals: externalization into the template ARB file, trailing marker
// suppression, and a debug-only explanation when externalization is
// impossible.
package fix

import (
	"arblint/internal/analysis"
	"arblint/internal/dart"
	"arblint/internal/diag"
)

// Fix priorities. Hosts preselect the highest-priority edit-bearing fix.
const (
	PriorityExtraction = 10
	PriorityExplain    = 2
	PriorityMarker     = 1
)

// Synthesizer builds fixes under one project configuration.
type Synthesizer struct {
	accessor string
	marker   string
	debug    bool
}

// NewSynthesizer returns a synthesizer rewriting literals onto accessor
// and suppressing with markerText comments. debug enables the
// explanatory no-op fix.
func NewSynthesizer(accessor, markerText string, debug bool) *Synthesizer {
	return &Synthesizer{accessor: accessor, marker: markerText, debug: debug}
}

// Fixes returns the candidate fixes for one flagged literal in
// presentation order. arbPath is empty when the unit's root has no
// extraction target; extraction additionally requires a statically-known
// value.
func (s *Synthesizer) Fixes(unit *dart.Unit, lit analysis.FoundLiteral, arbPath string) []diag.Fix {
	var fixes []diag.Fix
	if value, ok := lit.Static(); ok && arbPath != "" {
		fixes = append(fixes, buildExtraction(lit, value, Identifier(value), s.accessor, arbPath))
	}
	if arbPath == "" && s.debug {
		fixes = append(fixes, buildExplain())
	}
	fixes = append(fixes, buildMarker(unit, lit, s.marker))
	diag.SortFixes(fixes)
	return fixes
}
