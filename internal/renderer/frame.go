package renderer

import (
	"github.com/dshills/lineedit/internal/engine/cursor"
	"github.com/dshills/lineedit/internal/renderer/core"
	"github.com/dshills/lineedit/internal/renderer/gutter"
	"github.com/dshills/lineedit/internal/renderer/viewport"
)

// Document provides read access to the lines being rendered.
type Document interface {
	LineCount() int
	LineContent(row int) string
}

// Frame is one composed screen: everything needed to draw the display.
type Frame struct {
	// Size is the display size the frame was composed for.
	Size viewport.Size

	// Lines holds the visible text of each screen row, clipped to the
	// text area. Rows past the end of the document are absent.
	Lines []string

	// Gutter holds the line-number label of each row in Lines.
	// Empty when the gutter is disabled.
	Gutter []string

	// GutterWidth is the number of columns reserved for the gutter.
	GutterWidth int

	// CursorRow and CursorCol are the cursor position on screen, in rows
	// and code points. CursorCol includes the gutter offset.
	CursorRow int
	CursorCol int
}

// Compose builds the frame for doc seen through view with the cursor at
// cur, on a display of the given size. It is read-only.
func Compose(doc Document, view viewport.Viewport, cur cursor.Cursor, size viewport.Size, g gutter.Config) Frame {
	size = size.Normalize()
	gw := g.Width(doc.LineCount())
	text := viewport.Size{Rows: size.Rows, Cols: size.Cols - gw}.Normalize()

	f := Frame{
		Size:        size,
		GutterWidth: gw,
		CursorRow:   cur.Row() - view.StartLine,
		CursorCol:   cur.Col() - view.StartCol + gw,
	}

	start, end := view.VisibleLineRange(doc.LineCount(), text)
	f.Lines = make([]string, 0, end-start)
	for row := start; row < end; row++ {
		f.Lines = append(f.Lines, clip(doc.LineContent(row), view.StartCol, text.Cols))
		if gw > 0 {
			f.Gutter = append(f.Gutter, g.Label(row, cur.Row(), gw))
		}
	}

	return f
}

// clip returns at most n code points of s starting at code point offset from.
func clip(s string, from, n int) string {
	runes := []rune(s)
	if from >= len(runes) {
		return ""
	}
	runes = runes[from:]
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// CursorX returns the physical screen column of the cursor: the gutter
// width plus the painted width of the text left of the cursor.
func (f Frame) CursorX() int {
	if f.CursorRow < 0 || f.CursorRow >= len(f.Lines) {
		return f.CursorCol
	}

	n := f.CursorCol - f.GutterWidth
	x := f.GutterWidth
	for _, r := range f.Lines[f.CursorRow] {
		if n <= 0 {
			break
		}
		x += max(core.RuneWidth(r), 1)
		n--
	}
	return x + n
}

// Row returns the gutter label and text of screen row y.
// Rows past the end of the document are empty.
func (f Frame) Row(y int) (label, text string) {
	if y < 0 || y >= len(f.Lines) {
		return "", ""
	}
	if y < len(f.Gutter) {
		label = f.Gutter[y]
	}
	return label, f.Lines[y]
}
