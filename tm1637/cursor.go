package tm1637

import "fmt"

type stepState uint8

const (
	stateIdle     stepState = iota // nothing in flight
	statePreamble                  // next step sends the data command
	stateGlyph                     // next step sends a glyph, starting at index
)

// cursor is where the transmission stands. index only means something in
// stateGlyph, where it is the first position not yet looked at this cycle.
type cursor struct {
	state stepState
	index int
}

var idle = cursor{state: stateIdle}

func (c cursor) String() string {
	switch c.state {
	case stateIdle:
		return "idle"
	case statePreamble:
		return "preamble"
	case stateGlyph:
		return fmt.Sprintf("glyph(%d)", c.index)
	}
	return fmt.Sprintf("bad(%d,%d)", c.state, c.index)
}

func (c cursor) valid() bool {
	switch c.state {
	case stateIdle, statePreamble:
		return true
	case stateGlyph:
		return c.index >= 0 && c.index < Width
	}
	return false
}
