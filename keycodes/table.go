package keycodes

import (
	"webkeys/keys"
)

// Tables follow the legacy KeyboardEvent.keyCode values:
//     https://developer.mozilla.org/en-US/docs/Web/API/KeyboardEvent/keyCode

// Codes whose key does not depend on the event location.
var webCodes = map[int]keys.Key{
	8:  keys.Back,
	9:  keys.Tab,
	13: keys.Enter,
	19: keys.Pause,
	20: keys.CapsLock,
	27: keys.Escape,
	32: keys.Space,

	33: keys.PageUp, 34: keys.PageDown, 35: keys.End, 36: keys.Home,
	37: keys.Left, 38: keys.Up, 39: keys.Right, 40: keys.Down,
	45: keys.Insert, 46: keys.Delete,

	48: keys.D0, 49: keys.D1, 50: keys.D2, 51: keys.D3, 52: keys.D4,
	53: keys.D5, 54: keys.D6, 55: keys.D7, 56: keys.D8, 57: keys.D9,

	65: keys.A, 66: keys.B, 67: keys.C, 68: keys.D, 69: keys.E, 70: keys.F,
	71: keys.G, 72: keys.H, 73: keys.I, 74: keys.J, 75: keys.K, 76: keys.L,
	77: keys.M, 78: keys.N, 79: keys.O, 80: keys.P, 81: keys.Q, 82: keys.R,
	83: keys.S, 84: keys.T, 85: keys.U, 86: keys.V, 87: keys.W, 88: keys.X,
	89: keys.Y, 90: keys.Z,

	96: keys.NumPad0, 97: keys.NumPad1, 98: keys.NumPad2, 99: keys.NumPad3,
	100: keys.NumPad4, 101: keys.NumPad5, 102: keys.NumPad6,
	103: keys.NumPad7, 104: keys.NumPad8, 105: keys.NumPad9,
	106: keys.Multiply,
	107: keys.Add,
	109: keys.Subtract,
	110: keys.Decimal,
	111: keys.Divide,

	112: keys.F1, 113: keys.F2, 114: keys.F3, 115: keys.F4,
	116: keys.F5, 117: keys.F6, 118: keys.F7, 119: keys.F8,
	120: keys.F9, 121: keys.F10, 122: keys.F11, 123: keys.F12,

	// Browsers send 144 for NumLock, the config maps it as an extra.
	14:  keys.NumLock,
	145: keys.Scroll,

	186: keys.OemSemicolon,
	187: keys.OemPlus,
	188: keys.OemComma,
	189: keys.OemMinus,
	190: keys.OemPeriod,
	191: keys.OemQuestion,
	192: keys.OemTilde,
	219: keys.OemOpenBrackets,
	220: keys.OemPipe,
	221: keys.OemCloseBrackets,
	222: keys.OemQuotes,
}

// Codes shared by the left and right copy of a key: {left, right}.
var sidedCodes = map[int][2]keys.Key{
	16: {keys.LeftShift, keys.RightShift},
	17: {keys.LeftControl, keys.RightControl},
	18: {keys.LeftAlt, keys.RightAlt},
}

// Key => code, the inverse of both tables above. Filled in by init().
var keyCodes = make(map[keys.Key]int, len(webCodes)+2*len(sidedCodes))

func init() {
	for code, key := range webCodes {
		keyCodes[key] = code
	}
	for code, pair := range sidedCodes {
		keyCodes[pair[0]] = code
		keyCodes[pair[1]] = code
	}
}

// Characters typed by a key on a US layout, without and with Shift.
// Letters are special-cased in code.
var baseChars = map[rune]keys.Key{
	'0': keys.D0, '1': keys.D1, '2': keys.D2, '3': keys.D3, '4': keys.D4,
	'5': keys.D5, '6': keys.D6, '7': keys.D7, '8': keys.D8, '9': keys.D9,
	';': keys.OemSemicolon, '=': keys.OemPlus, ',': keys.OemComma,
	'-': keys.OemMinus, '.': keys.OemPeriod, '/': keys.OemQuestion,
	'`': keys.OemTilde, '[': keys.OemOpenBrackets, '\\': keys.OemPipe,
	']': keys.OemCloseBrackets, '\'': keys.OemQuotes,
	' ': keys.Space, '\n': keys.Enter, '\t': keys.Tab,
}

var shiftChars = map[rune]keys.Key{
	')': keys.D0, '!': keys.D1, '@': keys.D2, '#': keys.D3, '$': keys.D4,
	'%': keys.D5, '^': keys.D6, '&': keys.D7, '*': keys.D8, '(': keys.D9,
	':': keys.OemSemicolon, '+': keys.OemPlus, '<': keys.OemComma,
	'_': keys.OemMinus, '>': keys.OemPeriod, '?': keys.OemQuestion,
	'~': keys.OemTilde, '{': keys.OemOpenBrackets, '|': keys.OemPipe,
	'}': keys.OemCloseBrackets, '"': keys.OemQuotes,
}
