// Package output renders diagnostic sets for terminals and pipelines.
//
// Text output prints one line per diagnostic plus its fix labels. Color
// goes through fatih/color, which disables itself on non-TTY writers.
// JSON output mirrors the serve protocol's analysis result shape so the
// two surfaces stay interchangeable.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"arblint/internal/diag"
)

var (
	pathColor    = color.New(color.Bold)
	infoColor    = color.New(color.FgBlue, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	codeColor    = color.New(color.FgCyan)
	fixColor     = color.New(color.Faint)
	okColor      = color.New(color.FgGreen, color.Bold)
)

// Sort orders diagnostics by path, then offset, then length, so that
// identical analysis results render byte-identically.
func Sort(diags []diag.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Location, diags[j].Location
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		return a.Length < b.Length
	})
}

// Text writes one block per diagnostic:
//
//	lib/main.dart:3:7: warning localize_strings: String literal "Hi" should be localized
//	    fix: Externalize string
//	    fix: Add // NON-NLS marker
func Text(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		sev := severityColor(d.Severity)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pathColor.Sprintf("%s:%d:%d", d.Location.Path, d.Location.StartLine, d.Location.StartColumn),
			sev.Sprint(string(d.Severity)),
			codeColor.Sprint(d.Code),
			d.Message)
		for _, f := range d.Fixes {
			fmt.Fprintf(w, "    %s\n", fixColor.Sprint("fix: "+f.Label))
		}
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SeverityError:
		return errorColor
	case diag.SeverityInfo:
		return infoColor
	default:
		return warningColor
	}
}

// Summary writes the closing line for text mode.
func Summary(w io.Writer, files, count int) {
	if count == 0 {
		fmt.Fprintf(w, "%s no unlocalized strings in %d file(s)\n", okColor.Sprint("ok:"), files)
		return
	}
	fmt.Fprintf(w, "%s %d unlocalized string(s) in %d file(s)\n", warningColor.Sprint("found:"), count, files)
}

// Report is the pipeline-facing result object.
type Report struct {
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
	Count       int               `json:"count"`
}

// JSON writes the diagnostics as one indented object. A nil slice still
// encodes as an empty array.
func JSON(w io.Writer, diags []diag.Diagnostic) error {
	if diags == nil {
		diags = []diag.Diagnostic{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(Report{Diagnostics: diags, Count: len(diags)})
}
