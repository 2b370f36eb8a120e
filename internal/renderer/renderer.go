package renderer

import (
	"github.com/dshills/lineedit/internal/engine/cursor"
	"github.com/dshills/lineedit/internal/renderer/backend"
	"github.com/dshills/lineedit/internal/renderer/core"
	"github.com/dshills/lineedit/internal/renderer/gutter"
	"github.com/dshills/lineedit/internal/renderer/viewport"
)

// Renderer paints frames onto a backend.
//
// Rows whose gutter label and text are unchanged since the previous frame
// are not repainted. A size change or MarkFullRedraw forces a full repaint.
type Renderer struct {
	backend backend.Backend
	gutter  gutter.Config

	last       Frame
	fullRedraw bool
	frameCount uint64
}

// New creates a renderer drawing on b.
func New(b backend.Backend, g gutter.Config) *Renderer {
	return &Renderer{
		backend:    b,
		gutter:     g,
		fullRedraw: true,
	}
}

// Gutter returns the gutter configuration.
func (r *Renderer) Gutter() gutter.Config {
	return r.gutter
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// MarkFullRedraw forces the next frame to repaint every cell.
func (r *Renderer) MarkFullRedraw() {
	r.fullRedraw = true
}

// Size returns the current display size, queried from the backend.
func (r *Renderer) Size() viewport.Size {
	w, h := r.backend.Size()
	return viewport.Size{Rows: h, Cols: w}
}

// Render composes a frame at the current display size and draws it.
func (r *Renderer) Render(doc Document, view viewport.Viewport, cur cursor.Cursor) Frame {
	f := Compose(doc, view, cur, r.Size(), r.gutter)
	r.Draw(f)
	return f
}

// Draw paints f and positions the cursor.
func (r *Renderer) Draw(f Frame) {
	if f.Size != r.last.Size {
		r.fullRedraw = true
	}
	if r.fullRedraw {
		r.backend.Clear()
	}

	for y := 0; y < f.Size.Rows; y++ {
		label, text := f.Row(y)
		if !r.fullRedraw {
			oldLabel, oldText := r.last.Row(y)
			if label == oldLabel && text == oldText {
				continue
			}
		}
		r.drawRow(y, label, text, f)
	}

	x, y := f.CursorX(), f.CursorRow
	if x >= 0 && x < f.Size.Cols && y >= 0 && y < f.Size.Rows {
		r.backend.ShowCursor(x, y)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.last = f
	r.fullRedraw = false
	r.frameCount++
}

// drawRow paints one screen row: gutter, text and trailing blanks.
func (r *Renderer) drawRow(y int, label, text string, f Frame) {
	width := f.Size.Cols
	x := 0

	gutterStyle := core.DefaultStyle().Dim()
	for _, ch := range label {
		if x >= f.GutterWidth || x >= width {
			break
		}
		r.backend.SetCell(x, y, core.NewCell(ch, gutterStyle))
		x++
	}
	for ; x < f.GutterWidth && x < width; x++ {
		r.backend.SetCell(x, y, core.EmptyCell())
	}

	for _, ch := range text {
		cell := core.NewCell(ch, core.DefaultStyle())
		if x+cell.Width > width {
			break
		}
		r.backend.SetCell(x, y, cell)
		x += cell.Width
	}

	for ; x < width; x++ {
		r.backend.SetCell(x, y, core.EmptyCell())
	}
}
