// Package keys defines the platform-neutral key identifiers shared by every
// translator in this module.
//
// Values match the numeric values of the XNA Keys enumeration, so a Key can
// be handed to code speaking that vocabulary without another lookup.
package keys

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies one physical key.
type Key int

const (
	None Key = 0

	Back     Key = 8
	Tab      Key = 9
	Enter    Key = 13
	Pause    Key = 19
	CapsLock Key = 20
	Escape   Key = 27
	Space    Key = 32

	PageUp   Key = 33
	PageDown Key = 34
	End      Key = 35
	Home     Key = 36
	Left     Key = 37
	Up       Key = 38
	Right    Key = 39
	Down     Key = 40

	PrintScreen Key = 44
	Insert      Key = 45
	Delete      Key = 46

	D0 Key = 48
	D1 Key = 49
	D2 Key = 50
	D3 Key = 51
	D4 Key = 52
	D5 Key = 53
	D6 Key = 54
	D7 Key = 55
	D8 Key = 56
	D9 Key = 57

	A Key = 65
	B Key = 66
	C Key = 67
	D Key = 68
	E Key = 69
	F Key = 70
	G Key = 71
	H Key = 72
	I Key = 73
	J Key = 74
	K Key = 75
	L Key = 76
	M Key = 77
	N Key = 78
	O Key = 79
	P Key = 80
	Q Key = 81
	R Key = 82
	S Key = 83
	T Key = 84
	U Key = 85
	V Key = 86
	W Key = 87
	X Key = 88
	Y Key = 89
	Z Key = 90

	LeftWindows  Key = 91
	RightWindows Key = 92
	Apps         Key = 93
	Sleep        Key = 95

	NumPad0   Key = 96
	NumPad1   Key = 97
	NumPad2   Key = 98
	NumPad3   Key = 99
	NumPad4   Key = 100
	NumPad5   Key = 101
	NumPad6   Key = 102
	NumPad7   Key = 103
	NumPad8   Key = 104
	NumPad9   Key = 105
	Multiply  Key = 106
	Add       Key = 107
	Separator Key = 108
	Subtract  Key = 109
	Decimal   Key = 110
	Divide    Key = 111

	F1  Key = 112
	F2  Key = 113
	F3  Key = 114
	F4  Key = 115
	F5  Key = 116
	F6  Key = 117
	F7  Key = 118
	F8  Key = 119
	F9  Key = 120
	F10 Key = 121
	F11 Key = 122
	F12 Key = 123
	F13 Key = 124
	F14 Key = 125
	F15 Key = 126
	F16 Key = 127
	F17 Key = 128
	F18 Key = 129
	F19 Key = 130
	F20 Key = 131
	F21 Key = 132
	F22 Key = 133
	F23 Key = 134
	F24 Key = 135

	NumLock Key = 144
	Scroll  Key = 145

	LeftShift    Key = 160
	RightShift   Key = 161
	LeftControl  Key = 162
	RightControl Key = 163
	LeftAlt      Key = 164
	RightAlt     Key = 165

	OemSemicolon     Key = 186
	OemPlus          Key = 187
	OemComma         Key = 188
	OemMinus         Key = 189
	OemPeriod        Key = 190
	OemQuestion      Key = 191
	OemTilde         Key = 192
	OemOpenBrackets  Key = 219
	OemPipe          Key = 220
	OemCloseBrackets Key = 221
	OemQuotes        Key = 222
	Oem8             Key = 223
	OemBackslash     Key = 226
)

var names = map[Key]string{
	None: "None",

	Back: "Back", Tab: "Tab", Enter: "Enter", Pause: "Pause",
	CapsLock: "CapsLock", Escape: "Escape", Space: "Space",

	PageUp: "PageUp", PageDown: "PageDown", End: "End", Home: "Home",
	Left: "Left", Up: "Up", Right: "Right", Down: "Down",

	PrintScreen: "PrintScreen", Insert: "Insert", Delete: "Delete",

	LeftWindows: "LeftWindows", RightWindows: "RightWindows",
	Apps: "Apps", Sleep: "Sleep",

	Multiply: "Multiply", Add: "Add", Separator: "Separator",
	Subtract: "Subtract", Decimal: "Decimal", Divide: "Divide",

	NumLock: "NumLock", Scroll: "Scroll",

	LeftShift: "LeftShift", RightShift: "RightShift",
	LeftControl: "LeftControl", RightControl: "RightControl",
	LeftAlt: "LeftAlt", RightAlt: "RightAlt",

	OemSemicolon: "OemSemicolon", OemPlus: "OemPlus", OemComma: "OemComma",
	OemMinus: "OemMinus", OemPeriod: "OemPeriod", OemQuestion: "OemQuestion",
	OemTilde: "OemTilde", OemOpenBrackets: "OemOpenBrackets",
	OemPipe: "OemPipe", OemCloseBrackets: "OemCloseBrackets",
	OemQuotes: "OemQuotes", Oem8: "Oem8", OemBackslash: "OemBackslash",
}

// Lower-cased name => Key, filled in by init().
var byName = make(map[string]Key)

func init() {
	// Runs of keys whose names are generated rather than spelled out
	for k := D0; k <= D9; k++ {
		names[k] = fmt.Sprintf("D%d", int(k-D0))
	}
	for k := A; k <= Z; k++ {
		names[k] = string(rune('A' + (k - A)))
	}
	for k := NumPad0; k <= NumPad9; k++ {
		names[k] = fmt.Sprintf("NumPad%d", int(k-NumPad0))
	}
	for k := F1; k <= F24; k++ {
		names[k] = fmt.Sprintf("F%d", int(k-F1+1))
	}

	for k, name := range names {
		byName[strings.ToLower(name)] = k
	}
}

// String returns the identifier's name, e.g. "LeftShift". Values outside the
// enumeration render as "Key(n)".
func (k Key) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Valid tells whether k is a member of the enumeration. None is valid.
func (k Key) Valid() bool {
	_, ok := names[k]
	return ok
}

// Parse looks a key up by name, ignoring case.
func Parse(name string) (Key, error) {
	if k, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return None, fmt.Errorf("unknown key %q", name)
}

// All returns every key except None, in ascending order.
func All() []Key {
	all := make([]Key, 0, len(names)-1)
	for k := range names {
		if k != None {
			all = append(all, k)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// Side tells which half of the keyboard a duplicated key sits on: -1 for
// left, 1 for right and 0 for keys that come in one copy.
func (k Key) Side() int {
	switch k {
	case LeftShift, LeftControl, LeftAlt, LeftWindows:
		return -1
	case RightShift, RightControl, RightAlt, RightWindows:
		return 1
	}
	return 0
}

// IsModifier tells whether k is one of Shift, Control or Alt on either side.
func (k Key) IsModifier() bool {
	return k >= LeftShift && k <= RightAlt
}

// IsNumPad tells whether k is a digit or operator on the numeric keypad.
// NumLock is not, browsers report it with the standard location.
func (k Key) IsNumPad() bool {
	return k >= NumPad0 && k <= Divide
}
