// Package viewport maps a window of document rows and columns onto the display.
//
// The viewport never animates or scrolls on its own: it is recomputed from
// the cursor after every move or edit by Reconcile, which snaps the window
// so the cursor is on screen.
package viewport

import (
	"fmt"

	"github.com/dshills/lineedit/internal/renderer/core"
)

// Viewport is the scroll origin of the visible window.
// StartLine is the document row drawn at screen row 0 and StartCol the
// column drawn at screen column 0 of every visible row.
type Viewport struct {
	StartLine int
	StartCol  int
}

// Size is the number of text rows and columns available on screen.
type Size struct {
	Rows int
	Cols int
}

// Normalize clamps both dimensions to a minimum of 1 to prevent underflow.
func (s Size) Normalize() Size {
	if s.Rows < 1 {
		s.Rows = 1
	}
	if s.Cols < 1 {
		s.Cols = 1
	}
	return s
}

// String returns a human-readable representation of the viewport.
func (v Viewport) String() string {
	return fmt.Sprintf("Viewport(%d:%d)", v.StartLine, v.StartCol)
}

// Reconcile returns the scroll origin that keeps (row, col) visible in a
// window of visibleRows by visibleCols.
//
// A cursor above the window becomes the new top row, and so does a cursor
// below it: vertical scrolling jumps to the cursor rather than moving the
// minimum distance. Horizontally, a cursor left of the window becomes the
// first column and a cursor right of it becomes the last column.
func Reconcile(startLine, startCol, row, col, visibleRows, visibleCols int) (int, int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if visibleCols < 1 {
		visibleCols = 1
	}

	switch {
	case row < startLine:
		startLine = row
	case row >= startLine+visibleRows:
		startLine = row
	}

	switch {
	case col < startCol:
		startCol = col
	case col >= startCol+visibleCols:
		startCol = col - visibleCols + 1
	}

	return startLine, startCol
}

// Reconcile returns the viewport adjusted so (row, col) is visible.
func (v Viewport) Reconcile(row, col int, size Size) Viewport {
	size = size.Normalize()
	v.StartLine, v.StartCol = Reconcile(v.StartLine, v.StartCol, row, col, size.Rows, size.Cols)
	return v
}

// FitCells advances StartCol until the painted cells of line from StartCol
// through the cursor cell at col fit in cols screen columns. Wide code
// points take two cells, so a window that holds cols code points may not
// hold the cursor. A cursor past the end of the line takes one cell.
func (v Viewport) FitCells(line []rune, col, cols int) Viewport {
	if cols < 1 {
		cols = 1
	}
	if col > len(line) {
		col = len(line)
	}
	if v.StartCol > col {
		v.StartCol = col
	}

	cell := func(c int) int {
		if c < len(line) {
			return max(core.RuneWidth(line[c]), 1)
		}
		return 1
	}

	w := 0
	for c := v.StartCol; c <= col; c++ {
		w += cell(c)
	}
	for w > cols && v.StartCol < col {
		w -= cell(v.StartCol)
		v.StartCol++
	}
	return v
}

// VisibleLineRange returns the half-open range of document rows shown in a
// window of the given size, clipped to lineCount.
func (v Viewport) VisibleLineRange(lineCount int, size Size) (start, end int) {
	size = size.Normalize()
	start = v.StartLine
	end = v.StartLine + size.Rows
	if end > lineCount {
		end = lineCount
	}
	if start > end {
		start = end
	}
	return start, end
}

// IsPositionVisible returns true if (row, col) falls within the window.
func (v Viewport) IsPositionVisible(row, col int, size Size) bool {
	size = size.Normalize()
	return row >= v.StartLine && row < v.StartLine+size.Rows &&
		col >= v.StartCol && col < v.StartCol+size.Cols
}

// ToScreen converts document coordinates to window-relative coordinates.
func (v Viewport) ToScreen(row, col int) (screenRow, screenCol int) {
	return row - v.StartLine, col - v.StartCol
}
