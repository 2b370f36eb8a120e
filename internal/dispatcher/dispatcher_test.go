package dispatcher_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/lineedit/internal/dispatcher"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/engine/cursor"
	"github.com/dshills/lineedit/internal/input/key"
	"github.com/dshills/lineedit/internal/renderer/gutter"
)

// fixedSize is a display of constant size.
type fixedSize struct {
	width, height int
}

func (f *fixedSize) Size() (int, int) {
	return f.width, f.height
}

func special(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModNone)
}

func char(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModNone)
}

func newDispatcher(lines []string, c cursor.Cursor, w, h int) (*dispatcher.Dispatcher, *fixedSize) {
	size := &fixedSize{width: w, height: h}
	s := engine.New(engine.WithLines(lines), engine.WithCursor(c))
	return dispatcher.New(s, size, dispatcher.DefaultConfig()), size
}

func TestResolve(t *testing.T) {
	d, _ := newDispatcher(nil, cursor.New(0, 0), 80, 24)

	tests := []struct {
		name   string
		ev     key.Event
		action dispatcher.Action
		dir    cursor.Direction
	}{
		{"save key", special(key.KeyF1), dispatcher.ActionSaveAndExit, 0},
		{"backspace", special(key.KeyBackspace), dispatcher.ActionBackspace, 0},
		{"delete", special(key.KeyDelete), dispatcher.ActionDelete, 0},
		{"enter", special(key.KeyEnter), dispatcher.ActionNewLine, 0},
		{"left", special(key.KeyLeft), dispatcher.ActionMove, cursor.Left},
		{"right", special(key.KeyRight), dispatcher.ActionMove, cursor.Right},
		{"up", special(key.KeyUp), dispatcher.ActionMove, cursor.Up},
		{"down", special(key.KeyDown), dispatcher.ActionMove, cursor.Down},
		{"page up", special(key.KeyPageUp), dispatcher.ActionMove, cursor.PageUp},
		{"page down", special(key.KeyPageDown), dispatcher.ActionMove, cursor.PageDown},
		{"letter", char('a'), dispatcher.ActionInsert, 0},
		{"space", char(' '), dispatcher.ActionInsert, 0},
		{"wide rune", char('中'), dispatcher.ActionInsert, 0},
		{"tab", special(key.KeyTab), dispatcher.ActionNone, 0},
		{"escape", special(key.KeyEscape), dispatcher.ActionNone, 0},
		{"home", special(key.KeyHome), dispatcher.ActionNone, 0},
		{"other function key", special(key.KeyF2), dispatcher.ActionNone, 0},
		{"ctrl letter", key.NewRuneEvent('s', key.ModCtrl), dispatcher.ActionNone, 0},
		{"control rune", char('\x07'), dispatcher.ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := d.Resolve(tt.ev)
			if action != tt.action {
				t.Errorf("expected %s, got %s", tt.action, action)
			}
			if action == dispatcher.ActionMove && dir != tt.dir {
				t.Errorf("expected direction %s, got %s", tt.dir, dir)
			}
		})
	}
}

func TestDispatchSaveKeyQuits(t *testing.T) {
	d, _ := newDispatcher([]string{"abc"}, cursor.New(0, 1), 80, 24)

	res := d.Dispatch(special(key.KeyF1))

	if !res.Quit {
		t.Error("expected Quit on save key")
	}
	if res.Action != dispatcher.ActionSaveAndExit {
		t.Errorf("expected save-and-exit, got %s", res.Action)
	}
	if d.Session().Modified() {
		t.Error("save key should not modify the document")
	}
}

func TestDispatchCustomSaveKey(t *testing.T) {
	s := engine.New()
	config := dispatcher.DefaultConfig().WithSaveKey(key.MustParse("Ctrl+S"))
	d := dispatcher.New(s, &fixedSize{80, 24}, config)

	if res := d.Dispatch(special(key.KeyF1)); res.Quit {
		t.Error("F1 should be inert when another save key is configured")
	}
	if res := d.Dispatch(key.NewRuneEvent('s', key.ModCtrl)); !res.Quit {
		t.Error("expected Quit on Ctrl+S")
	}
}

func TestValidSaveKey(t *testing.T) {
	tests := []struct {
		spec  string
		valid bool
	}{
		{"F1", true},
		{"F12", true},
		{"Escape", true},
		{"Ctrl+S", true},
		{"<C-q>", true},
		{"Ctrl+X", true},
		{"s", false},
		{"Enter", false},
		{"Backspace", false},
		{"Up", false},
		{"Ctrl+A", false},
		{"Shift+F1", false},
		{"Alt+S", false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if got := dispatcher.ValidSaveKey(key.MustParse(tt.spec)); got != tt.valid {
				t.Errorf("expected %v, got %v", tt.valid, got)
			}
		})
	}
}

func TestParseSaveKey(t *testing.T) {
	if ev, err := dispatcher.ParseSaveKey("Ctrl+S"); err != nil || ev != key.NewRuneEvent('s', key.ModCtrl) {
		t.Errorf("expected Ctrl+S, got %s (%v)", ev, err)
	}
	if _, err := dispatcher.ParseSaveKey("Enter"); !errors.Is(err, dispatcher.ErrInvalidSaveKey) {
		t.Errorf("expected ErrInvalidSaveKey, got %v", err)
	}
	if _, err := dispatcher.ParseSaveKey(""); !errors.Is(err, key.ErrEmptySpec) {
		t.Errorf("expected ErrEmptySpec, got %v", err)
	}
}

func TestSaveKeyCannotShadowEditing(t *testing.T) {
	s := engine.New()
	config := dispatcher.DefaultConfig().WithSaveKey(key.MustParse("s"))
	if config.SaveKey != special(key.KeyF1) {
		t.Errorf("expected F1 to be kept, got %s", config.SaveKey)
	}

	config.SaveKey = key.MustParse("Enter")
	d := dispatcher.New(s, &fixedSize{80, 24}, config)

	if res := d.Dispatch(char('s')); res.Quit || res.Action != dispatcher.ActionInsert {
		t.Errorf("expected 's' to insert, got %s", res)
	}
	if res := d.Dispatch(special(key.KeyEnter)); res.Quit || res.Action != dispatcher.ActionNewLine {
		t.Errorf("expected Enter to break the line, got %s", res)
	}
	if res := d.Dispatch(special(key.KeyF1)); !res.Quit {
		t.Error("expected F1 to quit")
	}
	if got := s.Lines(); !reflect.DeepEqual(got, []string{"s", ""}) {
		t.Errorf("expected [s ''], got %q", got)
	}
}

func TestDispatchInertKeys(t *testing.T) {
	d, _ := newDispatcher([]string{"abc"}, cursor.New(0, 1), 80, 24)

	for _, ev := range []key.Event{special(key.KeyTab), special(key.KeyEscape), special(key.KeyInsert), {}} {
		res := d.Dispatch(ev)
		if res.Action != dispatcher.ActionNone || res.Status != dispatcher.StatusNoOp || res.Quit {
			t.Errorf("expected inert result for %s, got %s", ev, res)
		}
	}

	if got := d.Session().Lines(); !reflect.DeepEqual(got, []string{"abc"}) {
		t.Errorf("expected document unchanged, got %q", got)
	}
	if c := d.Session().Cursor(); c.Row() != 0 || c.Col() != 1 {
		t.Errorf("expected cursor unchanged, got %s", c)
	}
}

func TestDispatchTyping(t *testing.T) {
	d, _ := newDispatcher(nil, cursor.New(0, 0), 80, 24)

	for _, r := range "hi中" {
		if res := d.Dispatch(char(r)); !res.IsOK() {
			t.Fatalf("expected insert of %q to succeed, got %s", r, res)
		}
	}
	d.Dispatch(special(key.KeyEnter))
	d.Dispatch(char('x'))
	d.Dispatch(special(key.KeyLeft))
	d.Dispatch(special(key.KeyBackspace))

	want := []string{"hi中x"}
	if got := d.Session().Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	if c := d.Session().Cursor(); c.Row() != 0 || c.Col() != 3 {
		t.Errorf("expected cursor (0:3), got %s", c)
	}
}

func TestDispatchBoundaryNoOps(t *testing.T) {
	d, _ := newDispatcher([]string{"ab"}, cursor.New(0, 0), 80, 24)

	if res := d.Dispatch(special(key.KeyBackspace)); res.Status != dispatcher.StatusNoOp {
		t.Errorf("expected backspace at start to be a no-op, got %s", res)
	}
	if res := d.Dispatch(special(key.KeyLeft)); res.Status != dispatcher.StatusNoOp {
		t.Errorf("expected left at start to be a no-op, got %s", res)
	}

	d.Dispatch(special(key.KeyPageDown))
	if res := d.Dispatch(special(key.KeyDelete)); res.Status != dispatcher.StatusNoOp {
		t.Errorf("expected delete at end to be a no-op, got %s", res)
	}
	if res := d.Dispatch(special(key.KeyRight)); res.Status != dispatcher.StatusNoOp {
		t.Errorf("expected right at end to be a no-op, got %s", res)
	}
}

func TestDispatchJumpScroll(t *testing.T) {
	d, _ := newDispatcher([]string{"line1", "line2", "line3"}, cursor.New(0, 0), 80, 2)

	d.Dispatch(special(key.KeyDown))
	if v := d.Session().Viewport(); v.StartLine != 0 {
		t.Errorf("expected no scroll on first Down, got %s", v)
	}

	d.Dispatch(special(key.KeyDown))
	if c := d.Session().Cursor(); c.Row() != 2 {
		t.Errorf("expected cursor row 2, got %s", c)
	}
	if v := d.Session().Viewport(); v.StartLine != 2 {
		t.Errorf("expected startLine 2, got %d", v.StartLine)
	}

	d.Dispatch(special(key.KeyPageUp))
	if v := d.Session().Viewport(); v.StartLine != 0 || v.StartCol != 0 {
		t.Errorf("expected viewport back at origin, got %s", v)
	}
}

func TestDispatchHorizontalScroll(t *testing.T) {
	d, _ := newDispatcher([]string{"abcdefghij"}, cursor.New(0, 0), 4, 5)

	for i := 0; i < 6; i++ {
		d.Dispatch(special(key.KeyRight))
	}
	if v := d.Session().Viewport(); v.StartCol != 3 {
		t.Errorf("expected startCol 3, got %d", v.StartCol)
	}

	d.Dispatch(special(key.KeyEnter))
	if v := d.Session().Viewport(); v.StartCol != 0 || v.StartLine != 0 {
		t.Errorf("expected viewport origin after split, got %s", v)
	}
}

func TestDispatchRequeriesSize(t *testing.T) {
	d, size := newDispatcher([]string{"a", "b", "c", "d"}, cursor.New(0, 0), 80, 10)

	d.Dispatch(special(key.KeyPageDown))
	if v := d.Session().Viewport(); v.StartLine != 0 {
		t.Errorf("expected no scroll in a tall display, got %s", v)
	}

	size.height = 2
	d.Dispatch(special(key.KeyUp))
	if v := d.Session().Viewport(); v.StartLine != 2 {
		t.Errorf("expected startLine 2 after shrinking, got %s", v)
	}
}

func TestTextAreaExcludesGutter(t *testing.T) {
	s := engine.New(engine.WithLines([]string{"abcdefghijkl"}))
	g := gutter.DefaultConfig()
	g.ShowLineNumbers = true
	d := dispatcher.New(s, &fixedSize{10, 3}, dispatcher.DefaultConfig().WithGutter(g))

	area := d.TextArea()
	if area.Cols != 6 || area.Rows != 3 {
		t.Errorf("expected 3x6 text area, got %dx%d", area.Rows, area.Cols)
	}

	d.Dispatch(special(key.KeyPageDown))
	if v := d.Session().Viewport(); v.StartCol != 7 {
		t.Errorf("expected startCol 7, got %d", v.StartCol)
	}
}

func TestTextAreaNeverEmpty(t *testing.T) {
	d, _ := newDispatcher(nil, cursor.New(0, 0), 0, 0)

	area := d.TextArea()
	if area.Rows != 1 || area.Cols != 1 {
		t.Errorf("expected 1x1 text area, got %dx%d", area.Rows, area.Cols)
	}
}

func TestResultString(t *testing.T) {
	res := dispatcher.Result{Action: dispatcher.ActionMove, Direction: cursor.Down, Status: dispatcher.StatusOK}
	if res.String() != "move(Down) ok" {
		t.Errorf("expected %q, got %q", "move(Down) ok", res.String())
	}
	if dispatcher.ActionSaveAndExit.String() != "save-and-exit" {
		t.Errorf("expected save-and-exit, got %s", dispatcher.ActionSaveAndExit)
	}
}
