package document

// InsertChar inserts r at (row, col), shifting the rest of the line right.
// It returns the position just after the inserted code point.
func (d *Document) InsertChar(row, col int, r rune) Position {
	row, col = d.clamp(row, col)
	line := d.lines[row]

	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	d.lines[row] = line

	return Position{Row: row, Col: col + 1}
}

// DeleteCharBefore removes the code point before (row, col).
//
// At the start of a line other than the first, the line is appended to the
// previous one and removed; the returned position is the join point. At
// (0, 0) nothing changes.
func (d *Document) DeleteCharBefore(row, col int) Position {
	row, col = d.clamp(row, col)

	if col > 0 {
		line := d.lines[row]
		d.lines[row] = append(line[:col-1], line[col:]...)
		return Position{Row: row, Col: col - 1}
	}

	if row == 0 {
		return Position{}
	}

	prev := d.lines[row-1]
	joinCol := len(prev)
	d.lines[row-1] = append(prev, d.lines[row]...)
	d.removeLine(row)

	return Position{Row: row - 1, Col: joinCol}
}

// DeleteCharAt removes the code point at (row, col).
// At the end of a line it does nothing: the following line is not joined.
func (d *Document) DeleteCharAt(row, col int) Position {
	row, col = d.clamp(row, col)

	line := d.lines[row]
	if col < len(line) {
		d.lines[row] = append(line[:col], line[col+1:]...)
	}

	return Position{Row: row, Col: col}
}

// SplitLine breaks the line at (row, col). The text from col onward moves
// to a new line inserted at row+1. It returns (row+1, 0).
func (d *Document) SplitLine(row, col int) Position {
	row, col = d.clamp(row, col)

	line := d.lines[row]
	tail := make([]rune, len(line)-col)
	copy(tail, line[col:])
	d.lines[row] = line[:col:col]
	d.insertLine(row+1, tail)

	return Position{Row: row + 1, Col: 0}
}

// insertLine inserts a line at index at.
func (d *Document) insertLine(at int, line []rune) {
	d.lines = append(d.lines, nil)
	copy(d.lines[at+1:], d.lines[at:])
	d.lines[at] = line
}

// removeLine removes the line at index at.
// The last remaining line is never removed.
func (d *Document) removeLine(at int) {
	if len(d.lines) <= 1 {
		return
	}
	copy(d.lines[at:], d.lines[at+1:])
	d.lines[len(d.lines)-1] = nil
	d.lines = d.lines[:len(d.lines)-1]
}
