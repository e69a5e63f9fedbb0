package keycodes

import (
	"fmt"
	"testing"

	"gotest.tools/v3/assert"
)

func ExampleSequenceForChar_letters() {
	fmt.Printf("%s %s\n", SequenceForChar('a'), SequenceForChar('A'))
	fmt.Printf("%s %s\n", SequenceForChar('v'), SequenceForChar('V'))
	// Output:
	// A LeftShift+A
	// V LeftShift+V
}

func ExampleSequenceForChar_symbols() {
	fmt.Printf("%s %s\n", SequenceForChar(';'), SequenceForChar(':'))
	fmt.Printf("%s %s\n", SequenceForChar('1'), SequenceForChar('!'))
	// Output:
	// OemSemicolon LeftShift+OemSemicolon
	// D1 LeftShift+D1
}

func ExampleSequenceForChar_whitespace() {
	fmt.Printf("%s %s %s\n", SequenceForChar(' '), SequenceForChar('\n'), SequenceForChar('\t'))
	// Output:
	// Space Enter Tab
}

func ExampleSequenceForString() {
	fmt.Println(SequenceForString("Hello world!\n"))
	// Output: LeftShift+H E L L O Space W O R L D LeftShift+D1 Enter
}

func ExampleForSequence_key() {
	strokes, err := ForSequence("Escape")
	fmt.Println(strokes, err)
	// Output:
	// [27:0 down 27:0 up] <nil>
}

func ExampleForSequence_konami() {
	strokes, err := ForSequence("Up Up Down Down Left Right Left Right B A")
	codes := make([]int, 0, len(strokes))
	for _, s := range strokes {
		if s.Down {
			codes = append(codes, s.Code)
		}
	}
	fmt.Println(codes, err)
	// Output:
	// [38 38 40 40 37 39 37 39 66 65] <nil>
}

func ExampleForSequence_reboot() {
	strokes, err := ForSequence("LeftControl+LeftAlt+Delete")
	fmt.Println(strokes, err)
	// Output: [17:1 down 18:1 down 46:0 down 17:1 up 18:1 up 46:0 up] <nil>
}

func ExampleForSequence_error() {
	strokes, err := ForSequence("Food")
	fmt.Println(strokes, err)
	// Output: [] sequence "Food": unknown key "Food"
}

func ExampleForString() {
	strokes, err := ForString("Hi")
	fmt.Println(strokes, err)
	// Output: [16:1 down 72:0 down 16:1 up 72:0 up 73:0 down 73:0 up] <nil>
}

func TestForSequenceCaseInsensitive(t *testing.T) {
	strokes, err := ForSequence("leftshift+numpad7")
	assert.NilError(t, err)
	assert.DeepEqual(t, strokes, []Stroke{
		{Code: 16, Location: LocationLeft, Down: true},
		{Code: 103, Location: LocationNumpad, Down: true},
		{Code: 16, Location: LocationLeft},
		{Code: 103, Location: LocationNumpad},
	})
}

func TestForSequenceNoBrowserCode(t *testing.T) {
	_, err := ForSequence("A LeftWindows")
	assert.ErrorContains(t, err, "LeftWindows has no browser code")
}

func TestForSequenceEmpty(t *testing.T) {
	strokes, err := ForSequence("  ")
	assert.NilError(t, err)
	assert.Equal(t, len(strokes), 0)
}

func TestForSequenceRejectsUntypeableWhitespace(t *testing.T) {
	for _, input := range []string{"a\rb", "a\vb", "a\fb", "a\u00a0b"} {
		_, err := ForSequence(SequenceForString(input))
		assert.ErrorContains(t, err, "unknown key", "%q", input)
	}

	_, err := ForSequence("A\tB")
	assert.ErrorContains(t, err, `unknown key "A\tB"`)

	strokes, err := ForSequence(" A  B ")
	assert.NilError(t, err)
	assert.Equal(t, len(strokes), 4)
}

func TestForStringUntypeable(t *testing.T) {
	_, err := ForString("a\rb")
	assert.ErrorContains(t, err, `no key types '\r'`)

	_, err = ForString("é")
	assert.ErrorContains(t, err, "no key types")
}

func TestForStringTranslatesBack(t *testing.T) {
	strokes, err := ForString("Go 1.22!")
	assert.NilError(t, err)

	typed := ""
	for _, s := range strokes {
		if s.Down {
			typed += ForWeb(s.Code, s.Location).String() + " "
		}
	}
	assert.Equal(t, typed, "LeftShift G O Space D1 OemPeriod D2 D2 LeftShift D1 ")
}
