// Package gutter provides the optional line-number column drawn to the left
// of the text area.
//
// The gutter is a fixed-width prefix on every screen row: right-aligned
// line numbers followed by a one-column separator. Its width offsets all
// horizontal cursor and rendering math.
package gutter

import "strconv"

// Mode defines how line numbers are displayed.
type Mode uint8

const (
	// Absolute shows 1-based line numbers (1, 2, 3, ...).
	Absolute Mode = iota

	// Relative shows the distance from the cursor line, and the absolute
	// number on the cursor line itself.
	Relative
)

// ParseMode parses a mode name. Unknown names yield Absolute.
func ParseMode(s string) Mode {
	switch s {
	case "relative", "Relative", "hybrid":
		return Relative
	default:
		return Absolute
	}
}

// String returns the mode name.
func (m Mode) String() string {
	if m == Relative {
		return "relative"
	}
	return "absolute"
}

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables the gutter.
	ShowLineNumbers bool

	// Mode selects absolute or relative numbering.
	Mode Mode

	// MinDigits is the minimum number of digit columns.
	MinDigits int
}

// DefaultConfig returns the default gutter configuration: disabled.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers: false,
		Mode:            Absolute,
		MinDigits:       3,
	}
}

// Width returns the total gutter width, separator included, for a
// document with lineCount lines. A disabled gutter has width 0.
func (c Config) Width(lineCount int) int {
	if !c.ShowLineNumbers {
		return 0
	}
	return c.Digits(lineCount) + 1
}

// Digits returns the number of digit columns for lineCount lines.
func (c Config) Digits(lineCount int) int {
	digits := len(strconv.Itoa(max(lineCount, 1)))
	if digits < c.MinDigits {
		return c.MinDigits
	}
	return digits
}

// Label returns the gutter text for document row line, padded to width
// (separator included). currentLine is the cursor row, used by Relative.
func (c Config) Label(line, currentLine, width int) string {
	if width <= 0 {
		return ""
	}

	num := line + 1
	if c.Mode == Relative && line != currentLine {
		num = line - currentLine
		if num < 0 {
			num = -num
		}
	}

	return PadLeft(strconv.Itoa(num), width-1) + " "
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}
