package dispatcher

import (
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/engine/cursor"
	"github.com/dshills/lineedit/internal/input/key"
	"github.com/dshills/lineedit/internal/renderer/viewport"
)

// Sizer reports the current display size in cells.
// The size is queried on every dispatch since the display may be resized
// between events.
type Sizer interface {
	Size() (width, height int)
}

// Dispatcher applies key events to an editing session.
type Dispatcher struct {
	session *engine.Session
	sizer   Sizer
	config  Config
}

// New creates a dispatcher for session. The viewport is reconciled against
// the size reported by sizer. An invalid save key is replaced by F1.
func New(session *engine.Session, sizer Sizer, config Config) *Dispatcher {
	if !ValidSaveKey(config.SaveKey) {
		config.SaveKey = DefaultConfig().SaveKey
	}
	return &Dispatcher{
		session: session,
		sizer:   sizer,
		config:  config,
	}
}

// Session returns the session being edited.
func (d *Dispatcher) Session() *engine.Session {
	return d.session
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Resolve maps a key event to the action it triggers without applying it.
func (d *Dispatcher) Resolve(ev key.Event) (Action, cursor.Direction) {
	if ev.Matches(d.config.SaveKey) {
		return ActionSaveAndExit, 0
	}

	switch ev.Key {
	case key.KeyBackspace:
		return ActionBackspace, 0
	case key.KeyDelete:
		return ActionDelete, 0
	case key.KeyEnter:
		return ActionNewLine, 0
	case key.KeyLeft:
		return ActionMove, cursor.Left
	case key.KeyRight:
		return ActionMove, cursor.Right
	case key.KeyUp:
		return ActionMove, cursor.Up
	case key.KeyDown:
		return ActionMove, cursor.Down
	case key.KeyPageUp:
		return ActionMove, cursor.PageUp
	case key.KeyPageDown:
		return ActionMove, cursor.PageDown
	case key.KeyRune:
		if ev.IsRune() && !ev.IsModified() && engine.IsInsertable(ev.Rune) {
			return ActionInsert, 0
		}
	}
	return ActionNone, 0
}

// Dispatch applies one key event to the session and reconciles the
// viewport. Inert keys yield ActionNone with StatusNoOp. The save key
// does not touch the session; it sets Quit and leaves writing the
// document to the caller.
func (d *Dispatcher) Dispatch(ev key.Event) Result {
	action, dir := d.Resolve(ev)
	res := Result{Action: action, Direction: dir, Status: StatusNoOp}

	changed := false
	switch action {
	case ActionSaveAndExit:
		res.Quit = true
	case ActionInsert:
		changed = d.session.Insert(ev.Rune)
	case ActionBackspace:
		changed = d.session.Backspace()
	case ActionDelete:
		changed = d.session.Delete()
	case ActionNewLine:
		d.session.NewLine()
		changed = true
	case ActionMove:
		changed = d.session.Move(dir)
	}
	if changed {
		res.Status = StatusOK
	}

	d.Reconcile()
	return res
}

// Reconcile scrolls the viewport so the cursor is visible in the current
// text area.
func (d *Dispatcher) Reconcile() viewport.Viewport {
	return d.session.Reconcile(d.TextArea())
}

// TextArea returns the size of the text area: the display minus the
// gutter columns.
func (d *Dispatcher) TextArea() viewport.Size {
	width, height := d.sizer.Size()
	gw := d.config.Gutter.Width(d.session.Document().LineCount())
	return viewport.Size{Rows: height, Cols: width - gw}.Normalize()
}
