package document

import "fmt"

// Position is a (row, column) location in a Document.
// Row indexes a line; Col is a code-point offset that may equal the line
// length (past the last character).
type Position struct {
	Row int
	Col int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Document is an ordered sequence of text lines.
type Document struct {
	lines [][]rune
}

// New creates a document holding a single empty line.
func New() *Document {
	return &Document{lines: [][]rune{{}}}
}

// FromLines creates a document from existing lines.
// An empty slice yields a document with a single empty line.
func FromLines(lines []string) *Document {
	if len(lines) == 0 {
		return New()
	}
	d := &Document{lines: make([][]rune, len(lines))}
	for i, line := range lines {
		d.lines[i] = []rune(line)
	}
	return d
}

// LineCount returns the number of lines. It is always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineLength returns the length of a line in code points.
// Out-of-range rows report 0.
func (d *Document) LineLength(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	return len(d.lines[row])
}

// LineContent returns the text of a line.
// Out-of-range rows report the empty string.
func (d *Document) LineContent(row int) string {
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return string(d.lines[row])
}

// LineRunes returns a copy of a line's code points.
func (d *Document) LineRunes(row int) []rune {
	if row < 0 || row >= len(d.lines) {
		return nil
	}
	out := make([]rune, len(d.lines[row]))
	copy(out, d.lines[row])
	return out
}

// Lines returns the document content, one string per line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = string(line)
	}
	return out
}

// clamp restricts a position to valid bounds.
func (d *Document) clamp(row, col int) (int, int) {
	if row < 0 {
		row = 0
	}
	if row >= len(d.lines) {
		row = len(d.lines) - 1
	}
	if col < 0 {
		col = 0
	}
	if n := len(d.lines[row]); col > n {
		col = n
	}
	return row, col
}
