package engine

import (
	"strconv"

	"arblint/internal/analysis"
	"arblint/internal/dart"
	"arblint/internal/diag"
)

// assemble converts one flagged literal into a diagnostic. Failures are
// contained per literal: a panic during synthesis drops this literal and
// the scan continues with the next one.
func (e *Engine) assemble(st *rootState, unit *dart.Unit, lit analysis.FoundLiteral) (d diag.Diagnostic, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().
				Str("file", lit.Path).
				Int("line", lit.Start.Line).
				Int("column", lit.Start.Column).
				Interface("panic", r).
				Msg("fix synthesis failed; literal dropped")
			ok = false
		}
	}()

	var shown string
	if v, hasValue := lit.Static(); hasValue {
		shown = strconv.Quote(v)
	} else {
		shown = unit.Slice(lit.Offset, lit.Offset+lit.Length)
	}

	return diag.Diagnostic{
		Severity: diag.SeverityWarning,
		Category: diag.CategoryLint,
		Code:     Code,
		Location: diag.Location{
			Path:        lit.Path,
			Offset:      lit.Offset,
			Length:      lit.Length,
			StartLine:   lit.Start.Line,
			StartColumn: lit.Start.Column,
			EndLine:     lit.End.Line,
			EndColumn:   lit.End.Column,
		},
		Message:    "String literal " + shown + " should be localized",
		Correction: e.correction,
		Fixes:      st.synth.Fixes(unit, lit, st.arbPath),
	}, true
}
