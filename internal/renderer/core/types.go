// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"github.com/mattn/go-runewidth"
)

// Attribute represents text attributes (bold, dim, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Style represents the visual style of a cell. Colors are left to the
// terminal's defaults.
type Style struct {
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{Attributes: AttrNone}
}

// Dim returns a new style with dim attribute added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Reverse returns a new style with reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the number of screen columns the rune occupies.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{
		Rune:  ' ',
		Width: 1,
		Style: DefaultStyle(),
	}
}

// NewCell creates a cell for r with the given style.
// Runes that have no visible glyph are replaced by a blank so each
// code point still occupies at least one column.
func NewCell(r rune, style Style) Cell {
	w := RuneWidth(r)
	if w == 0 {
		r, w = ' ', 1
	}
	return Cell{Rune: r, Width: w, Style: style}
}

// RuneWidth returns the display width of a rune: 0 for control and
// combining code points, 2 for East Asian wide ones, 1 otherwise.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of s as painted by NewCell.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += max(RuneWidth(r), 1)
	}
	return w
}

// ScreenRect is a rectangle in screen cells. Right and Bottom are exclusive.
type ScreenRect struct {
	Top, Left, Bottom, Right int
}
