// Package keycodes translates browser KeyboardEvent key codes into
// platform-neutral key identifiers and back, and computes the codes produced
// by typing in a string.
package keycodes

import (
	"sync"

	"webkeys/keys"
)

// KeyboardEvent.location values.
//     https://developer.mozilla.org/en-US/docs/Web/API/KeyboardEvent/location
const (
	LocationStandard = 0
	LocationLeft     = 1
	LocationRight    = 2
	LocationNumpad   = 3
)

// ForWeb translates a browser key code into a key.
//
// Shift, Control and Alt are split by location: LocationLeft picks the left
// key, anything else the right one. Every other code ignores location.
// Codes missing from the table yield keys.None.
func ForWeb(code, location int) keys.Key {
	if pair, ok := sidedCodes[code]; ok {
		if location == LocationLeft {
			return pair[0]
		}
		return pair[1]
	}
	if key, ok := webCodes[code]; ok {
		return key
	}
	return keys.None
}

// ToWeb finds the browser key code and location producing key. ok is false
// for keys no browser code translates into.
func ToWeb(key keys.Key) (code, location int, ok bool) {
	code, ok = keyCodes[key]
	if !ok {
		return 0, LocationStandard, false
	}
	switch {
	case key.Side() < 0:
		location = LocationLeft
	case key.Side() > 0:
		location = LocationRight
	case key.IsNumPad():
		location = LocationNumpad
	}
	return code, location, true
}

// Table is the built-in translation extended with codes the built-in table
// leaves unmapped, e.g. the Windows keys. It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	extra map[int]keys.Key
}

// NewTable creates a Table with the given extra codes. The map is copied.
func NewTable(extra map[int]keys.Key) *Table {
	t := &Table{}
	t.SetExtra(extra)
	return t
}

// SetExtra replaces the extra codes. The map is copied.
func (t *Table) SetExtra(extra map[int]keys.Key) {
	cp := make(map[int]keys.Key, len(extra))
	for code, key := range extra {
		cp[code] = key
	}

	t.mu.Lock()
	t.extra = cp
	t.mu.Unlock()
}

// Translate works like ForWeb, falling back to the extra codes when the
// built-in table has nothing. Extra codes never shadow built-in ones.
func (t *Table) Translate(code, location int) keys.Key {
	if key := ForWeb(code, location); key != keys.None {
		return key
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if key, ok := t.extra[code]; ok {
		return key
	}
	return keys.None
}
