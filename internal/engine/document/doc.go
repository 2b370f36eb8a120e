// Package document provides the ordered line collection being edited.
//
// A Document is never empty: it always holds at least one line, which may
// be the empty string. Columns are code-point offsets into a line, so a
// line holding "中文" has length 2.
//
// Edit operations take positions produced by a valid cursor and never fail.
// Operations that move the insertion point report the resulting position
// so callers do not repeat the boundary arithmetic:
//
//	doc := document.New()
//	doc.InsertChar(0, 0, 'h')
//	pos := doc.SplitLine(0, 1) // (1, 0)
//	pos = doc.DeleteCharBefore(pos.Row, pos.Col) // (0, 1)
//
// Documents are owned by a single session and are not safe for concurrent use.
package document
