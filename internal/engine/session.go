package engine

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/lineedit/internal/engine/cursor"
	"github.com/dshills/lineedit/internal/engine/document"
	"github.com/dshills/lineedit/internal/renderer/viewport"
)

// Session is the Document/Cursor/Viewport triple of one editing session.
type Session struct {
	doc    *document.Document
	cursor cursor.Cursor
	view   viewport.Viewport

	// version increments on every document mutation
	version int64

	initLines []string
}

// New creates a session. Without options it holds one empty line with the
// cursor at (0, 0).
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}

	s.doc = document.FromLines(s.initLines)
	s.initLines = nil
	s.cursor = s.cursor.Clamp(s.doc)

	return s
}

// Document returns the session's document.
// Callers must not mutate it outside the session.
func (s *Session) Document() *document.Document {
	return s.doc
}

// Cursor returns the current cursor.
func (s *Session) Cursor() cursor.Cursor {
	return s.cursor
}

// Viewport returns the current scroll origin.
func (s *Session) Viewport() viewport.Viewport {
	return s.view
}

// Lines returns the document content.
func (s *Session) Lines() []string {
	return s.doc.Lines()
}

// Version returns the number of mutations applied so far.
func (s *Session) Version() int64 {
	return s.version
}

// Modified reports whether the document changed since the session started.
func (s *Session) Modified() bool {
	return s.version > 0
}

// Insert inserts r at the cursor and advances the cursor past it.
// Runes rejected by IsInsertable leave the session unchanged and report false.
func (s *Session) Insert(r rune) bool {
	if !IsInsertable(r) {
		return false
	}
	s.apply(s.doc.InsertChar(s.cursor.Row(), s.cursor.Col(), r))
	return true
}

// Backspace deletes the code point before the cursor, joining the current
// line onto the previous one at column 0. It reports whether anything
// changed.
func (s *Session) Backspace() bool {
	pos := s.doc.DeleteCharBefore(s.cursor.Row(), s.cursor.Col())
	if pos == s.cursor.Position() {
		return false
	}
	s.apply(pos)
	return true
}

// Delete deletes the code point under the cursor. At the end of a line it
// does nothing. It reports whether anything changed.
func (s *Session) Delete() bool {
	before := s.doc.LineLength(s.cursor.Row())
	pos := s.doc.DeleteCharAt(s.cursor.Row(), s.cursor.Col())
	if s.doc.LineLength(pos.Row) == before {
		return false
	}
	s.apply(pos)
	return true
}

// NewLine splits the line at the cursor and moves to the start of the new line.
func (s *Session) NewLine() {
	s.apply(s.doc.SplitLine(s.cursor.Row(), s.cursor.Col()))
}

// Move moves the cursor one step in direction d.
// It reports whether the cursor moved.
func (s *Session) Move(d cursor.Direction) bool {
	next := cursor.Move(s.doc, s.cursor, d)
	moved := !next.Equals(s.cursor)
	s.cursor = next
	return moved
}

// Reconcile scrolls the viewport so the cursor is visible in a text area
// of the given size. Columns are counted in code points, then narrowed so
// the cursor cell is also on screen when wide code points precede it.
func (s *Session) Reconcile(size viewport.Size) viewport.Viewport {
	size = size.Normalize()
	row, col := s.cursor.Row(), s.cursor.Col()
	s.view = s.view.Reconcile(row, col, size).FitCells(s.doc.LineRunes(row), col, size.Cols)
	return s.view
}

// apply records a mutation and moves the cursor to pos.
func (s *Session) apply(pos document.Position) {
	s.cursor = cursor.FromPosition(pos)
	s.version++
}

// IsInsertable reports whether r may be typed into a line.
// Line terminators and other control characters are not.
func IsInsertable(r rune) bool {
	if r == ' ' || unicode.IsPrint(r) {
		return true
	}
	return r > unicode.MaxASCII && utf8.ValidRune(r) && !unicode.IsControl(r)
}
