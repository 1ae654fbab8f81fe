package tm1637

import "strings"

// Width is the number of character positions on the display
const Width = 4

// SeparatorFlag marks a glyph whose separator (colon / point) is lit
const SeparatorFlag Glyph = 0x80

// Blank is the all-segments-off glyph
const Blank Glyph = 0x00

// Glyph is one position's segment mask: bits 0-6 are segments a-g, bit 7 is
// the separator
type Glyph byte

// Message is the full contents of the display, leftmost position first
type Message [Width]Glyph

// translate characters to bitmasks, anything missing is blank
var glyphValues = map[rune]Glyph{
	'0': 0x3f,
	'o': 0x3f,
	'O': 0x3f,
	'1': 0x06,
	'i': 0x06,
	'I': 0x06,
	'2': 0x5b,
	'3': 0x4f,
	'4': 0x66,
	'5': 0x6d,
	's': 0x6d,
	'S': 0x6d,
	'6': 0x7d,
	'7': 0x07,
	'8': 0x7f,
	'B': 0x7f,
	'9': 0x6f,
	'a': 0x77,
	'A': 0x77,
	'R': 0x77,
	'b': 0x7c,
	'c': 0x39,
	'C': 0x39,
	'd': 0x5e,
	'D': 0x5e,
	'e': 0x79,
	'E': 0x79,
	'f': 0x71,
	'F': 0x71,
	'l': 0x38,
	'L': 0x38,
	'p': 0x73,
	'P': 0x73,
}

// Encode maps a character to its segment mask. Characters that cannot be
// drawn on seven segments come back blank; that is not an error.
func Encode(ch rune, separator bool) Glyph {
	g := glyphValues[ch]
	if separator {
		g |= SeparatorFlag
	}
	return g
}

// EncodeString fills a message from text. Runes past Width are dropped and
// unfilled positions stay blank (without the separator).
func EncodeString(text string, separator bool) Message {
	var msg Message
	i := 0
	for _, ch := range text {
		if i == Width {
			break
		}
		msg[i] = Encode(ch, separator)
		i++
	}
	return msg
}

// Segments reports the mask without the separator bit
func (g Glyph) Segments() byte {
	return byte(g &^ SeparatorFlag)
}

// Separator reports whether the separator bit is set
func (g Glyph) Separator() bool {
	return g&SeparatorFlag != 0
}

// String renders the message the way the log dumps show it: one character
// per position ('_' for blank, '?' for a mask with no single character) and a
// ':' after positions with the separator lit.
func (m Message) String() string {
	var sb strings.Builder
	for _, g := range m {
		sb.WriteRune(glyphRune(g.Segments()))
		if g.Separator() {
			sb.WriteByte(':')
		}
	}
	return sb.String()
}

// preferred character for each mask when several share it
var maskRunes = map[byte]rune{
	0x3f: '0', 0x06: '1', 0x5b: '2', 0x4f: '3', 0x66: '4', 0x6d: '5',
	0x7d: '6', 0x07: '7', 0x7f: '8', 0x6f: '9', 0x77: 'A', 0x7c: 'b',
	0x39: 'C', 0x5e: 'd', 0x79: 'E', 0x71: 'F', 0x38: 'L', 0x73: 'P',
}

func glyphRune(mask byte) rune {
	if mask == 0 {
		return '_'
	}
	if r, ok := maskRunes[mask]; ok {
		return r
	}
	return '?'
}
