// Package renderer provides the display layer for the line editor.
//
// Rendering is split in two steps:
//
//   - Compose is a pure function from document, viewport and cursor to a
//     Frame: the clipped visible lines, the gutter labels and the cursor
//     position on screen. It never mutates its inputs.
//   - Renderer paints a Frame onto a backend.Backend cell by cell.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│   Compose (document, viewport, cursor)  │
//	├─────────────────────────────────────────┤
//	│       Frame (lines, gutter, cursor)     │
//	├─────────────────────────────────────────┤
//	│     Renderer (row diff, wide runes)     │
//	├─────────────────────────────────────────┤
//	│   Backend: Terminal (tcell) │ Null      │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, gutter.DefaultConfig())
//	r.Render(session.Document(), session.Viewport(), session.Cursor())
//
// Logical columns are code points. Wide runes such as CJK ideographs take
// two cells when painted, so the physical cursor column is derived from
// the width of the painted prefix of the cursor line.
package renderer
