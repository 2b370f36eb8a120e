package dispatcher

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/dshills/lineedit/internal/input/key"
	"github.com/dshills/lineedit/internal/renderer/gutter"
)

// Config holds dispatcher configuration options.
type Config struct {
	// SaveKey is the key that ends the session after saving.
	SaveKey key.Event

	// Gutter is used to size the text area; its width is taken from the
	// display before the viewport is reconciled.
	Gutter gutter.Config
}

// DefaultConfig returns a configuration with F1 as the save key and no gutter.
func DefaultConfig() Config {
	return Config{
		SaveKey: key.NewSpecialEvent(key.KeyF1, key.ModNone),
		Gutter:  gutter.DefaultConfig(),
	}
}

// ErrInvalidSaveKey is returned by ParseSaveKey for keys that cannot end
// the session.
var ErrInvalidSaveKey = errors.New("save key must be F1-F12, Escape, Ctrl+S, Ctrl+Q or Ctrl+X")

// ValidSaveKey reports whether ev may be used as the save key: an
// unmodified function key or Escape, or Ctrl with s, q or x. Anything
// else would shadow typing or editing.
func ValidSaveKey(ev key.Event) bool {
	if ev.IsRune() {
		if ev.Modifiers != key.ModCtrl {
			return false
		}
		switch unicode.ToLower(ev.Rune) {
		case 's', 'q', 'x':
			return true
		}
		return false
	}
	return ev.Modifiers == key.ModNone && (ev.Key.IsFunctionKey() || ev.Key == key.KeyEscape)
}

// ParseSaveKey parses a key name and checks it with ValidSaveKey.
func ParseSaveKey(name string) (key.Event, error) {
	ev, err := key.Parse(name)
	if err != nil {
		return key.Event{}, err
	}
	if !ValidSaveKey(ev) {
		return key.Event{}, fmt.Errorf("%w: got %s", ErrInvalidSaveKey, ev)
	}
	return ev, nil
}

// WithSaveKey returns a copy of the config using ev as the save key.
// A key rejected by ValidSaveKey leaves the config unchanged.
func (c Config) WithSaveKey(ev key.Event) Config {
	if ValidSaveKey(ev) {
		c.SaveKey = ev
	}
	return c
}

// WithGutter returns a copy of the config with the given gutter settings.
func (c Config) WithGutter(g gutter.Config) Config {
	c.Gutter = g
	return c
}
