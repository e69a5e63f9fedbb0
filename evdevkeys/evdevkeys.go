// Package evdevkeys translates Linux input event codes into the key
// identifiers used by the browser translator, and reads them live from
// keyboard devices.
//
// Referrers:
//     https://www.kernel.org/doc/html/latest/input/event-codes.html
package evdevkeys

import (
	"webkeys/keys"

	"github.com/gvalkov/golang-evdev"
)

var evdevCodes = map[int]keys.Key{
	evdev.KEY_BACKSPACE: keys.Back,
	evdev.KEY_TAB:       keys.Tab,
	evdev.KEY_ENTER:     keys.Enter,
	evdev.KEY_KPENTER:   keys.Enter,
	evdev.KEY_PAUSE:     keys.Pause,
	evdev.KEY_CAPSLOCK:  keys.CapsLock,
	evdev.KEY_ESC:       keys.Escape,
	evdev.KEY_SPACE:     keys.Space,

	evdev.KEY_PAGEUP: keys.PageUp, evdev.KEY_PAGEDOWN: keys.PageDown,
	evdev.KEY_END: keys.End, evdev.KEY_HOME: keys.Home,
	evdev.KEY_LEFT: keys.Left, evdev.KEY_UP: keys.Up,
	evdev.KEY_RIGHT: keys.Right, evdev.KEY_DOWN: keys.Down,
	evdev.KEY_SYSRQ: keys.PrintScreen, evdev.KEY_INSERT: keys.Insert,
	evdev.KEY_DELETE: keys.Delete,

	evdev.KEY_0: keys.D0, evdev.KEY_1: keys.D1, evdev.KEY_2: keys.D2,
	evdev.KEY_3: keys.D3, evdev.KEY_4: keys.D4, evdev.KEY_5: keys.D5,
	evdev.KEY_6: keys.D6, evdev.KEY_7: keys.D7, evdev.KEY_8: keys.D8,
	evdev.KEY_9: keys.D9,

	evdev.KEY_A: keys.A, evdev.KEY_B: keys.B, evdev.KEY_C: keys.C,
	evdev.KEY_D: keys.D, evdev.KEY_E: keys.E, evdev.KEY_F: keys.F,
	evdev.KEY_G: keys.G, evdev.KEY_H: keys.H, evdev.KEY_I: keys.I,
	evdev.KEY_J: keys.J, evdev.KEY_K: keys.K, evdev.KEY_L: keys.L,
	evdev.KEY_M: keys.M, evdev.KEY_N: keys.N, evdev.KEY_O: keys.O,
	evdev.KEY_P: keys.P, evdev.KEY_Q: keys.Q, evdev.KEY_R: keys.R,
	evdev.KEY_S: keys.S, evdev.KEY_T: keys.T, evdev.KEY_U: keys.U,
	evdev.KEY_V: keys.V, evdev.KEY_W: keys.W, evdev.KEY_X: keys.X,
	evdev.KEY_Y: keys.Y, evdev.KEY_Z: keys.Z,

	evdev.KEY_LEFTMETA:  keys.LeftWindows,
	evdev.KEY_RIGHTMETA: keys.RightWindows,
	evdev.KEY_COMPOSE:   keys.Apps,
	evdev.KEY_SLEEP:     keys.Sleep,

	evdev.KEY_KP0: keys.NumPad0, evdev.KEY_KP1: keys.NumPad1,
	evdev.KEY_KP2: keys.NumPad2, evdev.KEY_KP3: keys.NumPad3,
	evdev.KEY_KP4: keys.NumPad4, evdev.KEY_KP5: keys.NumPad5,
	evdev.KEY_KP6: keys.NumPad6, evdev.KEY_KP7: keys.NumPad7,
	evdev.KEY_KP8: keys.NumPad8, evdev.KEY_KP9: keys.NumPad9,
	evdev.KEY_KPASTERISK: keys.Multiply,
	evdev.KEY_KPPLUS:     keys.Add,
	evdev.KEY_KPCOMMA:    keys.Separator,
	evdev.KEY_KPMINUS:    keys.Subtract,
	evdev.KEY_KPDOT:      keys.Decimal,
	evdev.KEY_KPSLASH:    keys.Divide,

	evdev.KEY_F1: keys.F1, evdev.KEY_F2: keys.F2, evdev.KEY_F3: keys.F3,
	evdev.KEY_F4: keys.F4, evdev.KEY_F5: keys.F5, evdev.KEY_F6: keys.F6,
	evdev.KEY_F7: keys.F7, evdev.KEY_F8: keys.F8, evdev.KEY_F9: keys.F9,
	evdev.KEY_F10: keys.F10, evdev.KEY_F11: keys.F11, evdev.KEY_F12: keys.F12,
	evdev.KEY_F13: keys.F13, evdev.KEY_F14: keys.F14, evdev.KEY_F15: keys.F15,
	evdev.KEY_F16: keys.F16, evdev.KEY_F17: keys.F17, evdev.KEY_F18: keys.F18,
	evdev.KEY_F19: keys.F19, evdev.KEY_F20: keys.F20, evdev.KEY_F21: keys.F21,
	evdev.KEY_F22: keys.F22, evdev.KEY_F23: keys.F23, evdev.KEY_F24: keys.F24,

	evdev.KEY_NUMLOCK:    keys.NumLock,
	evdev.KEY_SCROLLLOCK: keys.Scroll,

	evdev.KEY_LEFTSHIFT:  keys.LeftShift,
	evdev.KEY_RIGHTSHIFT: keys.RightShift,
	evdev.KEY_LEFTCTRL:   keys.LeftControl,
	evdev.KEY_RIGHTCTRL:  keys.RightControl,
	evdev.KEY_LEFTALT:    keys.LeftAlt,
	evdev.KEY_RIGHTALT:   keys.RightAlt,

	evdev.KEY_SEMICOLON:  keys.OemSemicolon,
	evdev.KEY_EQUAL:      keys.OemPlus,
	evdev.KEY_COMMA:      keys.OemComma,
	evdev.KEY_MINUS:      keys.OemMinus,
	evdev.KEY_DOT:        keys.OemPeriod,
	evdev.KEY_SLASH:      keys.OemQuestion,
	evdev.KEY_GRAVE:      keys.OemTilde,
	evdev.KEY_LEFTBRACE:  keys.OemOpenBrackets,
	evdev.KEY_BACKSLASH:  keys.OemPipe,
	evdev.KEY_RIGHTBRACE: keys.OemCloseBrackets,
	evdev.KEY_APOSTROPHE: keys.OemQuotes,
	evdev.KEY_102ND:      keys.OemBackslash,
}

// FromEvdev translates an EV_KEY event code. Kernel codes already tell left
// from right, so there is no location. Unknown codes yield keys.None.
func FromEvdev(code uint16) keys.Key {
	if key, ok := evdevCodes[int(code)]; ok {
		return key
	}
	return keys.None
}
