package app

import (
	"time"

	"github.com/dshills/lineedit/internal/input/key"
	"github.com/dshills/lineedit/internal/renderer/backend"
)

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the session should be saved and ended.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	default:
		return nil
	}
}

// handleResize repaints the whole screen at the new size.
func (app *Application) handleResize(ev backend.Event) error {
	app.metrics.RecordResize()
	app.logger.Debug("resize %dx%d", ev.Width, ev.Height)

	app.renderer.MarkFullRedraw()
	app.dispatcher.Reconcile()
	app.render()
	return nil
}

// handleKeyEvent dispatches one key and renders the result.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	kev := convertToKeyEvent(ev)

	start := time.Now()
	res := app.dispatcher.Dispatch(kev)
	app.metrics.RecordKey(res, time.Since(start))
	app.logger.Debug("key %s: %s", kev, res)

	if res.Quit {
		return ErrQuit
	}

	app.render()
	return nil
}

// render draws the current session state.
func (app *Application) render() {
	start := time.Now()
	app.renderer.Render(app.session.Document(), app.session.Viewport(), app.session.Cursor())
	app.metrics.RecordRender(time.Since(start))
}

// convertToKeyEvent converts a backend key event to a key.Event.
func convertToKeyEvent(ev backend.Event) key.Event {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	switch ev.Key {
	case backend.KeyRune:
		return key.NewRuneEvent(ev.Rune, mods)
	case backend.KeyCtrlQ:
		return key.NewRuneEvent('q', mods.With(key.ModCtrl))
	case backend.KeyCtrlS:
		return key.NewRuneEvent('s', mods.With(key.ModCtrl))
	case backend.KeyCtrlX:
		return key.NewRuneEvent('x', mods.With(key.ModCtrl))
	default:
		return key.NewSpecialEvent(mapBackendKey(ev.Key), mods)
	}
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key) key.Key {
	switch bk {
	case backend.KeyEscape:
		return key.KeyEscape
	case backend.KeyEnter:
		return key.KeyEnter
	case backend.KeyTab:
		return key.KeyTab
	case backend.KeyBackspace:
		return key.KeyBackspace
	case backend.KeyDelete:
		return key.KeyDelete
	case backend.KeyInsert:
		return key.KeyInsert
	case backend.KeyHome:
		return key.KeyHome
	case backend.KeyEnd:
		return key.KeyEnd
	case backend.KeyPageUp:
		return key.KeyPageUp
	case backend.KeyPageDown:
		return key.KeyPageDown
	case backend.KeyUp:
		return key.KeyUp
	case backend.KeyDown:
		return key.KeyDown
	case backend.KeyLeft:
		return key.KeyLeft
	case backend.KeyRight:
		return key.KeyRight
	case backend.KeyF1:
		return key.KeyF1
	case backend.KeyF2:
		return key.KeyF2
	case backend.KeyF3:
		return key.KeyF3
	case backend.KeyF4:
		return key.KeyF4
	case backend.KeyF5:
		return key.KeyF5
	case backend.KeyF6:
		return key.KeyF6
	case backend.KeyF7:
		return key.KeyF7
	case backend.KeyF8:
		return key.KeyF8
	case backend.KeyF9:
		return key.KeyF9
	case backend.KeyF10:
		return key.KeyF10
	case backend.KeyF11:
		return key.KeyF11
	case backend.KeyF12:
		return key.KeyF12
	default:
		return key.KeyNone
	}
}
