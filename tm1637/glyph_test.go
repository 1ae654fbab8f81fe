package tm1637

import (
	"testing"

	"gotest.tools/assert"
)

func TestEncodeTable(t *testing.T) {
	expect := map[string]Glyph{
		"0oO": 0x3f,
		"1iI": 0x06,
		"2":   0x5b,
		"3":   0x4f,
		"4":   0x66,
		"5sS": 0x6d,
		"6":   0x7d,
		"7":   0x07,
		"8B":  0x7f,
		"9":   0x6f,
		"aAR": 0x77,
		"b":   0x7c,
		"cC":  0x39,
		"dD":  0x5e,
		"eE":  0x79,
		"fF":  0x71,
		"lL":  0x38,
		"pP":  0x73,
	}
	for chars, mask := range expect {
		for _, ch := range chars {
			assert.Equal(t, Encode(ch, false), mask, "char %q", ch)
			// same answer every time
			assert.Equal(t, Encode(ch, false), mask, "char %q", ch)
			assert.Equal(t, Encode(ch, true), mask|SeparatorFlag, "char %q", ch)
		}
	}
}

func TestEncodeUnsupportedIsBlank(t *testing.T) {
	for _, ch := range " -_.:rgGhHxX?é\x00" {
		assert.Equal(t, Encode(ch, false), Blank, "char %q", ch)
	}
	// the separator still shows on an otherwise blank position
	assert.Equal(t, Encode('?', true), SeparatorFlag)
}

func TestEncodeString(t *testing.T) {
	msg := EncodeString("25", false)
	assert.Equal(t, msg, Message{0x5b, 0x6d, Blank, Blank})

	msg = EncodeString("  25", false)
	assert.Equal(t, msg, Message{Blank, Blank, 0x5b, 0x6d})

	// truncated
	assert.Equal(t, EncodeString("12345", false), EncodeString("1234", false))

	// separator on the characters given, not on the padding
	msg = EncodeString("3", true)
	assert.Equal(t, msg, Message{0x4f | SeparatorFlag, Blank, Blank, Blank})

	assert.Equal(t, EncodeString("", true), Message{})
}

func TestMessageString(t *testing.T) {
	assert.Equal(t, EncodeString(" 300", true).String(), "_:3:0:0:")
	assert.Equal(t, EncodeString("Err", false).String(), "E___")
	assert.Equal(t, Message{0x40, 0x3f, 0, 0}.String(), "?0__")
}
