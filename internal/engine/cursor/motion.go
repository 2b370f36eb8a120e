package cursor

// Direction identifies a navigation key.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
	PageUp
	PageDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case PageUp:
		return "PageUp"
	case PageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

// Move returns the cursor after one step in direction d.
func Move(doc Lines, c Cursor, d Direction) Cursor {
	switch d {
	case Left:
		return MoveLeft(doc, c)
	case Right:
		return MoveRight(doc, c)
	case Up:
		return MoveUp(doc, c)
	case Down:
		return MoveDown(doc, c)
	case PageUp:
		return DocumentStart()
	case PageDown:
		return DocumentEnd(doc)
	default:
		return c
	}
}

// MoveLeft moves one code point left, wrapping to the end of the
// previous line at column 0.
func MoveLeft(doc Lines, c Cursor) Cursor {
	if c.col > 0 {
		return New(c.row, c.col-1)
	}
	if c.row > 0 {
		return New(c.row-1, doc.LineLength(c.row-1))
	}
	return c
}

// MoveRight moves one code point right, wrapping to the start of the
// next line at the end of a line.
func MoveRight(doc Lines, c Cursor) Cursor {
	if c.col < doc.LineLength(c.row) {
		return New(c.row, c.col+1)
	}
	if c.row < doc.LineCount()-1 {
		return New(c.row+1, 0)
	}
	return c
}

// MoveUp moves to the previous line keeping the column when it fits.
func MoveUp(doc Lines, c Cursor) Cursor {
	if c.row == 0 {
		return c
	}
	row := c.row - 1
	return New(row, min(c.col, doc.LineLength(row)))
}

// MoveDown moves to the next line keeping the column when it fits.
func MoveDown(doc Lines, c Cursor) Cursor {
	if c.row >= doc.LineCount()-1 {
		return c
	}
	row := c.row + 1
	return New(row, min(c.col, doc.LineLength(row)))
}

// DocumentStart returns the cursor at (0, 0).
func DocumentStart() Cursor {
	return Cursor{}
}

// DocumentEnd returns the cursor past the last character of the last line.
func DocumentEnd(doc Lines) Cursor {
	last := doc.LineCount() - 1
	return New(last, doc.LineLength(last))
}
