package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/lineedit/internal/renderer/core"
)

// Terminal implements Backend on a tcell screen.
// tcell puts the terminal in raw mode on Init and restores it on Shutdown.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// newTerminalWithScreen wraps an existing screen, such as a simulation screen.
func newTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetCell paints cell at (x, y). A wide cell covers x and x+1; tcell
// draws the rune across both.
func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, tcellStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// PollEvent blocks until tcell reports a key press or a resize.
// Other tcell events are skipped.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// The screen was finalized.
			return Event{Type: EventNone}
		}
		if out := convertEvent(ev); out.Type != EventNone {
			return out
		}
	}
}

var styleAttrs = []struct {
	attr  core.Attribute
	apply func(tcell.Style) tcell.Style
}{
	{core.AttrBold, func(s tcell.Style) tcell.Style { return s.Bold(true) }},
	{core.AttrDim, func(s tcell.Style) tcell.Style { return s.Dim(true) }},
	{core.AttrUnderline, func(s tcell.Style) tcell.Style { return s.Underline(true) }},
	{core.AttrReverse, func(s tcell.Style) tcell.Style { return s.Reverse(true) }},
}

// tcellStyle maps cell attributes onto the terminal's default colors.
func tcellStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	for _, a := range styleAttrs {
		if s.Attributes.Has(a.attr) {
			style = a.apply(style)
		}
	}
	return style
}

// convertEvent converts a tcell event into an editor event. Events the
// editor does not handle become EventNone.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

// tcellKeys lists the keys the editor reads. tcell reports Ctrl+H, Ctrl+I
// and Ctrl+M as Backspace, Tab and Enter, so only the Ctrl keys usable as
// a save key are listed separately.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
	tcell.KeyCtrlQ:      KeyCtrlQ,
	tcell.KeyCtrlS:      KeyCtrlS,
	tcell.KeyCtrlX:      KeyCtrlX,
}

// convertKey returns KeyNone for keys the editor ignores.
func convertKey(k tcell.Key) Key {
	return tcellKeys[k]
}

var tcellMods = []struct {
	from tcell.ModMask
	to   ModMask
}{
	{tcell.ModShift, ModShift},
	{tcell.ModCtrl, ModCtrl},
	{tcell.ModAlt, ModAlt},
	{tcell.ModMeta, ModMeta},
}

func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	for _, mod := range tcellMods {
		if m&mod.from != 0 {
			result |= mod.to
		}
	}
	return result
}
