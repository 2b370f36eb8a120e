package key

import (
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if any modifier other than Shift is pressed on a
// character, or any modifier at all on a special key.
// For characters Shift is part of the character itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Matches reports whether e is the same key press as other.
// Character comparison ignores case when Ctrl is held, since terminals
// do not report Shift reliably for control combinations.
func (e Event) Matches(other Event) bool {
	if e.Key != other.Key {
		return false
	}
	if e.Key != KeyRune {
		return e.Modifiers.Without(ModShift) == other.Modifiers.Without(ModShift)
	}
	if e.Modifiers.Has(ModCtrl) || other.Modifiers.Has(ModCtrl) {
		return unicode.ToLower(e.Rune) == unicode.ToLower(other.Rune) &&
			e.Modifiers.Without(ModShift) == other.Modifiers.Without(ModShift)
	}
	return e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// String returns a canonical string representation.
// Examples: "a", "Ctrl+S", "F1", "Enter".
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else if e.Modifiers.Has(ModCtrl) {
			name = string(unicode.ToUpper(e.Rune))
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
