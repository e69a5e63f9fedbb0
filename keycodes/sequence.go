package keycodes

import (
	"fmt"
	"strings"
	"unicode"

	"webkeys/keys"
)

// Stroke is one key press or release in browser terms.
type Stroke struct {
	Code     int
	Location int
	Down     bool
}

func (s Stroke) String() string {
	state := "up"
	if s.Down {
		state = "down"
	}
	return fmt.Sprintf("%d:%d %s", s.Code, s.Location, state)
}

// ForString obtains the strokes needed to type a string on a US layout.
func ForString(input string) ([]Stroke, error) {
	strokes := make([]Stroke, 0, 4*len(input))
	for _, char := range input {
		chord, ok := chordForChar(char)
		if !ok {
			return nil, fmt.Errorf("no key types %q", char)
		}
		s, err := ForSequence(chord)
		if err != nil {
			return nil, err
		}
		strokes = append(strokes, s...)
	}
	return strokes, nil
}

// ForSequence obtains the strokes for a sequence of chords such as
// "LeftControl+LeftAlt+Delete Enter". Each chord presses its keys from left
// to right, then releases them in the same order. Chords are separated by
// single spaces only, any other whitespace is an unknown key.
func ForSequence(sequence string) ([]Stroke, error) {
	strokes := make([]Stroke, 0, 2*len(sequence))
	release := make([]Stroke, 0, 2)
	for _, chord := range strings.Split(sequence, " ") {
		if chord == "" {
			continue
		}
		for _, name := range strings.Split(chord, "+") {
			if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
				return nil, fmt.Errorf("sequence %q: unknown key %q", chord, name)
			}
			key, err := keys.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("sequence %q: %w", chord, err)
			}
			code, location, ok := ToWeb(key)
			if !ok {
				return nil, fmt.Errorf("sequence %q: key %s has no browser code", chord, key)
			}
			strokes = append(strokes, Stroke{Code: code, Location: location, Down: true})
			release = append(release, Stroke{Code: code, Location: location})
		}
		strokes = append(strokes, release...)
		release = release[:0]
	}
	return strokes, nil
}

// SequenceForString converts an input string into a sequence of chords.
func SequenceForString(input string) string {
	chords := make([]string, 0, len(input))
	for _, char := range input {
		chords = append(chords, SequenceForChar(char))
	}
	return strings.Join(chords, " ")
}

// SequenceForChar converts an input character into the chord typing it on a
// US layout. Characters without a key come back unchanged.
func SequenceForChar(char rune) string {
	chord, _ := chordForChar(char)
	return chord
}

func chordForChar(char rune) (string, bool) {
	switch {
	case char >= 'a' && char <= 'z':
		return string(char - 'a' + 'A'), true
	case char >= 'A' && char <= 'Z':
		return keys.LeftShift.String() + "+" + string(char), true
	}
	if key, ok := baseChars[char]; ok {
		return key.String(), true
	}
	if key, ok := shiftChars[char]; ok {
		return keys.LeftShift.String() + "+" + key.String(), true
	}
	return string(char), false
}
