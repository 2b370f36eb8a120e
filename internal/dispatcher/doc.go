// Package dispatcher turns key events into edits and cursor motion.
//
// The editor is modeless: there is a single editing state and the only
// terminal transition is the save-and-exit key. Each call to Dispatch
// handles exactly one event:
//
//  1. The event is resolved to an Action
//  2. The action is applied to the session (document and cursor)
//  3. The viewport is reconciled against the current display size
//
// Keys that resolve to no action are inert: they change nothing and
// produce no error.
//
// # Usage
//
//	d := dispatcher.New(session, term, dispatcher.DefaultConfig())
//	res := d.Dispatch(key.NewSpecialEvent(key.KeyDown, key.ModNone))
//	if res.Quit {
//	    // write the document and end the session
//	}
//
// The caller renders after every Dispatch, whether or not the event
// changed anything.
package dispatcher
