package fix

import (
	"bytes"
	"encoding/json"
	"strings"

	"arblint/internal/analysis"
	"arblint/internal/dart"
	"arblint/internal/diag"
)

// arbAnchor is the byte offset new entries are inserted at, immediately
// after the opening brace line of the template ARB file. Inserting near
// the top keeps the anchor valid as the file grows.
const arbAnchor = 2

// buildExtraction assembles the externalization fix: a key/value entry
// and its "@" metadata entry in the ARB file plus an accessor reference
// over the literal. The three identifier occurrences are joined into one
// rename group whose offsets point into the post-edit text.
func buildExtraction(lit analysis.FoundLiteral, value, id, accessor, arbPath string) diag.Fix {
	entry := "  \"" + id + "\": " + jsonString(value) + ",\n"
	meta := "  \"@" + id + "\": {},\n"
	ref := accessor + "." + id

	return diag.Fix{
		Priority: PriorityExtraction,
		Label:    "Externalize string",
		Edits: []diag.FileEdit{
			{
				Path:    arbPath,
				Version: diag.VersionCurrent,
				Edits:   []diag.TextEdit{{Offset: arbAnchor, Replacement: entry + meta}},
			},
			{
				Path:    lit.Path,
				Version: diag.VersionCurrent,
				Edits:   []diag.TextEdit{{Offset: lit.Offset, Length: lit.Length, Replacement: ref}},
			},
		},
		Linked: &diag.LinkedGroup{
			Positions: []diag.LinkedPosition{
				{Path: arbPath, Offset: arbAnchor + 3, Length: len(id)},
				{Path: arbPath, Offset: arbAnchor + len(entry) + 4, Length: len(id)},
				{Path: lit.Path, Offset: lit.Offset + len(accessor) + 1, Length: len(id)},
			},
			Suggestions: Suggestions(id),
		},
	}
}

// buildMarker assembles the suppression fix, inserting a trailing
// comment after the last statement delimiter on the literal's end line.
// When no delimiter follows the literal on that line the comment goes at
// the end of the line, so the insertion point never precedes the
// literal's end and never crosses the next line break.
func buildMarker(unit *dart.Unit, lit analysis.FoundLiteral, markerText string) diag.Fix {
	end := lit.Offset + lit.Length
	_, lineEnd := unit.LineSpan(unit.LineOf(end - 1))

	return diag.Fix{
		Priority: PriorityMarker,
		Label:    "Add // " + markerText + " marker",
		Edits: []diag.FileEdit{{
			Path:    lit.Path,
			Version: diag.VersionCurrent,
			Edits: []diag.TextEdit{{
				Offset:      markerInsertion(unit.Text, end, lineEnd),
				Replacement: " // " + markerText,
			}},
		}},
	}
}

// buildExplain is the no-op fix offered in debug mode when a root has no
// extraction target.
func buildExplain() diag.Fix {
	return diag.Fix{
		Priority: PriorityExplain,
		Label:    "Cannot externalize: no l10n.yaml or template ARB file for this root",
	}
}

// markerInsertion finds the offset just past the last statement
// delimiter between from and bound, skipping string contents and block
// comments and stopping at a line comment. Returns bound when no
// delimiter is found.
func markerInsertion(text string, from, bound int) int {
	insert := bound
	i := from
	for i < bound {
		switch text[i] {
		case ';':
			insert = i + 1
			i++
		case '\'', '"':
			i = skipString(text, i, bound)
		case '/':
			if i+1 < bound && text[i+1] == '/' {
				return insert
			}
			if i+1 < bound && text[i+1] == '*' {
				term := strings.Index(text[i+2:bound], "*/")
				if term < 0 {
					return insert
				}
				i += term + 4
				break
			}
			i++
		default:
			i++
		}
	}
	return insert
}

func skipString(text string, i, bound int) int {
	quote := text[i]
	for i++; i < bound; i++ {
		switch text[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return bound
}

// jsonString renders a value as a JSON string literal without HTML
// escaping, matching how the Flutter tooling writes ARB files.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
