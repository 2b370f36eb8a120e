package engine

import (
	"github.com/dshills/lineedit/internal/engine/cursor"
	"github.com/dshills/lineedit/internal/renderer/viewport"
)

// Option configures a Session during creation.
type Option func(*Session)

// WithLines sets the initial document content.
// An empty slice yields a single empty line.
func WithLines(lines []string) Option {
	return func(s *Session) {
		s.initLines = lines
	}
}

// WithCursor sets the initial cursor. It is clamped onto the document.
func WithCursor(c cursor.Cursor) Option {
	return func(s *Session) {
		s.cursor = c
	}
}

// WithViewport sets the initial scroll origin.
func WithViewport(v viewport.Viewport) Option {
	return func(s *Session) {
		s.view = v
	}
}
