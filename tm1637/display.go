// Package tm1637 drives a four digit seven segment display built on the
// TM1637 chip, bit-banging its two wire protocol from a cooperative loop.
//
// The display never blocks and never reads a clock. The loop calls Tick with
// the current time once per pass; each Tick performs at most one framed
// transfer on the wire (the data command, or one glyph), so a full update is
// spread over several passes. Glyphs the chip already shows are not sent
// again.
//
// A message set as an override is shown instead of the normal message until
// its lifetime runs out, then the normal message comes back on its own.
package tm1637

import (
	"errors"
	"fmt"
	"time"

	"dscheirer.com/fencebox/tick"
)

// brightness range of the chip
const (
	MinBrightness uint8 = 0
	MaxBrightness uint8 = 7
)

// Display is one physical display. It is not safe for concurrent use; the
// control loop owns it.
type Display struct {
	bus bus

	normal   Message
	override Message

	overrideBorn     bool
	overrideBirth    tick.Micros
	overrideLifetime tick.Micros

	// committed is what the chip shows, pending is what we are sending
	committed Message
	pending   Message
	step      cursor
	dirty     bool

	brightness uint8
	lastSeen   tick.Micros
	stats      Stats
}

// New takes over a display, clears it and turns it on at the given
// brightness. Clearing happens here, synchronously, so the driver starts out
// knowing what the chip shows.
func New(clk, dio Pin, brightness uint8) (*Display, error) {
	if clk == nil || dio == nil {
		return nil, errors.New("tm1637: clock and data pins are required")
	}
	if clk == dio {
		return nil, errors.New("tm1637: clock and data must be different pins")
	}

	d := &Display{step: idle}
	d.bus = bus{clk: clk, dio: dio, stats: &d.stats}

	// idle bus is both lines high
	d.bus.out(clk, true)
	d.bus.out(dio, true)

	// blank all four positions in one auto-increment write
	d.bus.frame(cmdAutoAddress)
	blank := make([]byte, 1+Width)
	blank[0] = cmdAddress
	d.bus.frame(blank...)

	d.brightness = clampBrightness(brightness)
	d.bus.frame(cmdDisplayOn | d.brightness)
	return d, nil
}

func clampBrightness(level uint8) uint8 {
	// MinBrightness is zero, only the top can be exceeded
	if level > MaxBrightness {
		return MaxBrightness
	}
	return level
}

// Tick reports the current time. tick.UpdateOnly means no time has passed:
// the message selection is re-evaluated against the last time seen but the
// wire is not touched.
func (d *Display) Tick(now tick.Micros) {
	if now == tick.UpdateOnly {
		now = d.lastSeen
	} else {
		d.lastSeen = now
		d.advance()
	}
	d.stage(d.resolve(now))
}

// SetContents changes what is shown. text is cut to Width characters and
// padded with blanks on the right; callers that want right-justified text pad
// it themselves. separator lights the separator on every character of text.
//
// An override replaces any previous override, starts its lifetime at the last
// time seen by Tick, and hides the normal message until it expires.
func (d *Display) SetContents(text string, separator bool, isOverride bool, overrideFor time.Duration) {
	msg := EncodeString(text, separator)
	if isOverride {
		d.override = msg
		d.overrideBorn = true
		d.overrideBirth = d.lastSeen
		d.overrideLifetime = tick.FromDuration(overrideFor)
	} else {
		d.normal = msg
	}
	d.Tick(tick.UpdateOnly)
}

// SetBrightness clamps level to the chip's range and sends it right away.
// This is not sequenced with an update in flight: the command goes out
// between two of that update's transfers.
func (d *Display) SetBrightness(level uint8) {
	d.brightness = clampBrightness(level)
	d.bus.frame(cmdDisplayOn | d.brightness)
	d.Tick(tick.UpdateOnly)
}

// resolve picks the authoritative message, expiring the override if its
// lifetime has passed. The lifetime boundary is inclusive: at exactly
// birth+lifetime the override still shows.
func (d *Display) resolve(now tick.Micros) Message {
	if !d.overrideBorn {
		return d.normal
	}
	if now.Since(d.overrideBirth) > d.overrideLifetime {
		d.overrideBorn = false
		d.overrideLifetime = 0
		return d.normal
	}
	return d.override
}

// stage makes candidate the transmission target. Changed positions are
// picked up by a cycle already under way when their turn comes.
func (d *Display) stage(candidate Message) {
	for i := range candidate {
		if candidate[i] != d.pending[i] {
			d.pending[i] = candidate[i]
			d.dirty = true
		}
	}
}

// advance performs one step of the transmission
func (d *Display) advance() {
	if !d.step.valid() {
		d.badStep()
		return
	}

	switch d.step.state {
	case stateIdle:
		if !d.dirty {
			return
		}
		d.dirty = false
		if d.pending == d.committed {
			// changed and changed back before we got to it
			return
		}
		d.stats.Cycles++
		d.step = cursor{state: statePreamble}

	case statePreamble:
		d.bus.frame(cmdFixedAddress)
		d.step = cursor{state: stateGlyph, index: 0}
		if d.nextChanged(0) == Width {
			d.finish()
		}

	case stateGlyph:
		i := d.nextChanged(d.step.index)
		if i == Width {
			d.finish()
			return
		}
		d.bus.frame(cmdAddress|byte(i), byte(d.pending[i]))
		d.committed[i] = d.pending[i]
		d.stats.Glyphs++
		if d.nextChanged(i+1) == Width {
			d.finish()
			return
		}
		d.step = cursor{state: stateGlyph, index: i + 1}
	}
}

// nextChanged finds the first position at or after from that needs sending,
// Width if there is none
func (d *Display) nextChanged(from int) int {
	for i := from; i < Width; i++ {
		if d.pending[i] != d.committed[i] {
			return i
		}
	}
	return Width
}

// finish ends a cycle. Positions changed behind the cursor need another one.
func (d *Display) finish() {
	d.step = idle
	d.dirty = d.pending != d.committed
}

func (d *Display) badStep() {
	if strictSteps {
		panic(fmt.Sprintf("tm1637: impossible transmission step %v", d.step))
	}
	d.stats.StepFaults++
	d.finish()
}

// Committed is what the chip has received
func (d *Display) Committed() Message {
	return d.committed
}

// Pending is what the driver is sending (equal to Committed when idle and up
// to date)
func (d *Display) Pending() Message {
	return d.pending
}

// Authoritative is the message selected by the last Tick
func (d *Display) Authoritative() Message {
	if d.overrideBorn {
		return d.override
	}
	return d.normal
}

// OverrideActive reports whether an unexpired override was in force at the
// last Tick
func (d *Display) OverrideActive() bool {
	return d.overrideBorn
}

// Busy reports whether a cycle is under way or waiting to start
func (d *Display) Busy() bool {
	return d.step.state != stateIdle || d.dirty
}

// Brightness is the level last sent
func (d *Display) Brightness() uint8 {
	return d.brightness
}

// Stats returns a copy of the wire counters
func (d *Display) Stats() Stats {
	return d.stats
}
