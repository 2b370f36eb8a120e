// Package cursor provides the logical insertion point and its navigation.
//
// A Cursor is an immutable (row, column) value. Navigation functions are
// pure: they take the current cursor and a read-only view of the document
// and return the new cursor. Boundary moves (Left at the document start,
// Right at the document end) return the cursor unchanged.
//
// Horizontal movement crosses at most one line boundary per step:
//
//	c := cursor.New(1, 0)
//	c = cursor.Move(doc, c, cursor.Left) // end of line 0
package cursor
