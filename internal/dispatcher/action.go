package dispatcher

import (
	"fmt"

	"github.com/dshills/lineedit/internal/engine/cursor"
)

// Action is what a key event resolves to.
type Action uint8

const (
	// ActionNone is an inert key.
	ActionNone Action = iota
	// ActionInsert inserts the event's rune at the cursor.
	ActionInsert
	// ActionBackspace deletes before the cursor, joining lines at column 0.
	ActionBackspace
	// ActionDelete deletes under the cursor.
	ActionDelete
	// ActionNewLine splits the line at the cursor.
	ActionNewLine
	// ActionMove moves the cursor.
	ActionMove
	// ActionSaveAndExit ends the session.
	ActionSaveAndExit
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionInsert:
		return "insert"
	case ActionBackspace:
		return "backspace"
	case ActionDelete:
		return "delete"
	case ActionNewLine:
		return "newline"
	case ActionMove:
		return "move"
	case ActionSaveAndExit:
		return "save-and-exit"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// ResultStatus indicates the outcome of a dispatched event.
type ResultStatus uint8

const (
	// StatusOK indicates the session changed.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the event had no effect.
	StatusNoOp
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	default:
		return "unknown"
	}
}

// Result is the outcome of dispatching one event.
type Result struct {
	// Action is what the event resolved to.
	Action Action

	// Direction is the motion for ActionMove.
	Direction cursor.Direction

	// Status tells whether the session changed.
	Status ResultStatus

	// Quit is set when the session must be saved and ended.
	Quit bool
}

// IsOK returns true if the event changed the session.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// String returns a short description for logging.
func (r Result) String() string {
	if r.Action == ActionMove {
		return fmt.Sprintf("%s(%s) %s", r.Action, r.Direction, r.Status)
	}
	return fmt.Sprintf("%s %s", r.Action, r.Status)
}
