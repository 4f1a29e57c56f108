package dart

import "sort"

// TypeTable maps a nominal type name to its declared supertype name. The
// empty string terminates a chain. The host populates the table with every
// type that appears as a static type in the unit.
type TypeTable map[string]string

// Unit is one resolved compilation unit: the tree, the original text, and
// the nominal types referenced by the tree. The engine only reads a Unit
// during an analysis pass; it never mutates one.
type Unit struct {
	Path  string
	Text  string
	Types TypeTable
	Root  *File

	lines []int
}

// NewUnit links parent pointers and builds the line index. Hosts and tests
// that construct trees through the builder functions must create units
// through here.
func NewUnit(path, text string, types TypeTable, root *File) *Unit {
	u := &Unit{Path: path, Text: text, Types: types, Root: root}
	if u.Types == nil {
		u.Types = TypeTable{}
	}
	if root != nil {
		link(root)
	}
	u.lines = lineStarts(text)
	return u
}

func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Position is a 1-based line/column pair. Columns count bytes.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Position converts a byte offset to a 1-based position. Offsets outside
// the text are clamped.
func (u *Unit) Position(offset int) Position {
	offset = u.clamp(offset)
	line := sort.Search(len(u.lines), func(i int) bool { return u.lines[i] > offset }) - 1
	return Position{Line: line + 1, Column: offset - u.lines[line] + 1}
}

// LineOf returns the 1-based line containing the byte offset.
func (u *Unit) LineOf(offset int) int {
	return u.Position(offset).Line
}

// LineSpan returns the byte range [start, end) of a 1-based line, excluding
// the trailing newline.
func (u *Unit) LineSpan(line int) (int, int) {
	if line < 1 || line > len(u.lines) {
		return 0, 0
	}
	start := u.lines[line-1]
	end := len(u.Text)
	if line < len(u.lines) {
		end = u.lines[line] - 1
	}
	return start, end
}

// Slice returns the text in [start, end), clamped to the unit bounds.
func (u *Unit) Slice(start, end int) string {
	start = u.clamp(start)
	end = u.clamp(end)
	if start > end {
		return ""
	}
	return u.Text[start:end]
}

func (u *Unit) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(u.Text) {
		return len(u.Text)
	}
	return offset
}

// Supertype resolves one step of the declared supertype chain.
func (u *Unit) Supertype(name string) string {
	return u.Types[name]
}
