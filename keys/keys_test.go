package keys

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, None.String(), "None")
	assert.Equal(t, A.String(), "A")
	assert.Equal(t, D7.String(), "D7")
	assert.Equal(t, NumPad0.String(), "NumPad0")
	assert.Equal(t, F12.String(), "F12")
	assert.Equal(t, F24.String(), "F24")
	assert.Equal(t, LeftShift.String(), "LeftShift")
	assert.Equal(t, OemCloseBrackets.String(), "OemCloseBrackets")
	assert.Equal(t, Key(1234).String(), "Key(1234)")
}

func TestParse(t *testing.T) {
	for _, key := range All() {
		parsed, err := Parse(key.String())
		assert.NilError(t, err)
		assert.Equal(t, parsed, key)
	}

	key, err := Parse(" rightalt ")
	assert.NilError(t, err)
	assert.Equal(t, key, RightAlt)

	_, err = Parse("Hyper")
	assert.ErrorContains(t, err, `unknown key "Hyper"`)
}

func TestXnaValues(t *testing.T) {
	// Spot checks against Microsoft.Xna.Framework.Input.Keys
	assert.Equal(t, int(Enter), 13)
	assert.Equal(t, int(Z), 90)
	assert.Equal(t, int(F1), 112)
	assert.Equal(t, int(F24), 135)
	assert.Equal(t, int(LeftShift), 160)
	assert.Equal(t, int(RightAlt), 165)
	assert.Equal(t, int(OemQuotes), 222)
}

func TestAll(t *testing.T) {
	all := All()
	assert.Equal(t, all[0], Back)
	assert.Equal(t, all[len(all)-1], OemBackslash)
	for i := 1; i < len(all); i++ {
		assert.Assert(t, all[i-1] < all[i])
	}
	for _, key := range all {
		assert.Assert(t, key.Valid())
	}
	assert.Assert(t, None.Valid())
	assert.Assert(t, !Key(94).Valid())
}

func TestSide(t *testing.T) {
	assert.Equal(t, LeftControl.Side(), -1)
	assert.Equal(t, RightShift.Side(), 1)
	assert.Equal(t, RightWindows.Side(), 1)
	assert.Equal(t, Space.Side(), 0)

	assert.Assert(t, LeftAlt.IsModifier())
	assert.Assert(t, !LeftWindows.IsModifier())

	assert.Assert(t, NumPad3.IsNumPad())
	assert.Assert(t, Divide.IsNumPad())
	assert.Assert(t, !NumLock.IsNumPad())
	assert.Assert(t, !D3.IsNumPad())
}
