package cursor

import (
	"fmt"

	"github.com/dshills/lineedit/internal/engine/document"
)

// Lines is the read-only document view navigation needs.
type Lines interface {
	LineCount() int
	LineLength(row int) int
}

// Cursor is a logical (row, column) position.
// Cursor is an immutable value type.
type Cursor struct {
	row int
	col int
}

// New creates a cursor at the given position.
// Negative coordinates are clamped to 0.
func New(row, col int) Cursor {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	return Cursor{row: row, col: col}
}

// FromPosition creates a cursor at a document position.
func FromPosition(p document.Position) Cursor {
	return New(p.Row, p.Col)
}

// Row returns the cursor's line index.
func (c Cursor) Row() int {
	return c.row
}

// Col returns the cursor's code-point column.
func (c Cursor) Col() int {
	return c.col
}

// Position returns the cursor as a document position.
func (c Cursor) Position() document.Position {
	return document.Position{Row: c.row, Col: c.col}
}

// Clamp returns a cursor moved onto a valid position of doc.
func (c Cursor) Clamp(doc Lines) Cursor {
	row, col := c.row, c.col
	if last := doc.LineCount() - 1; row > last {
		row = last
	}
	if n := doc.LineLength(row); col > n {
		col = n
	}
	return New(row, col)
}

// Valid reports whether the cursor references a valid position of doc.
func (c Cursor) Valid(doc Lines) bool {
	return c.row >= 0 && c.row < doc.LineCount() &&
		c.col >= 0 && c.col <= doc.LineLength(c.row)
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", c.row, c.col)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c == other
}
