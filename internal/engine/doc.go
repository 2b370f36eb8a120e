// Package engine provides the editing session state for lineedit.
//
// A Session exclusively owns one Document, the Cursor inside it and the
// Viewport over it. Every edit goes through a Document operation that
// returns the new cursor position, so the cursor invariant
//
//	0 <= row < LineCount() && 0 <= col <= LineLength(row)
//
// holds after every call. The viewport is recomputed by Reconcile, which
// callers invoke after each edit or move with the current text area size.
//
// Basic usage:
//
//	s := engine.New(engine.WithLines(lines))
//	s.Insert('x')
//	s.NewLine()
//	s.Move(cursor.Up)
//	s.Reconcile(viewport.Size{Rows: 24, Cols: 80})
//
// Sessions are driven by a single event loop and are not safe for
// concurrent use.
package engine
