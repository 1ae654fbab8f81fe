package main

import (
	"strings"
	"time"

	"dscheirer.com/fencebox/tick"
	"dscheirer.com/fencebox/tm1637"
)

const (
	defaultMatchTime = 3 * time.Minute
	maxMatchTime     = 70 * time.Minute
)

// matchClock counts a bout down on the clock display. Like every driver in
// the loop it never reads a clock: each tick hands it the current time and
// it subtracts what passed since the previous one.
type matchClock struct {
	display   *tm1637.Display
	running   bool
	remaining time.Duration
	lastTick  tick.Micros
	ticked    bool
	expired   bool // ran out and nobody has asked yet
}

func newMatchClock(display *tm1637.Display, start time.Duration) *matchClock {
	mc := &matchClock{display: display}
	mc.remaining = clampMatchTime(start)
	mc.tick(tick.UpdateOnly)
	return mc
}

func clampMatchTime(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > maxMatchTime {
		return maxMatchTime
	}
	return d
}

func (mc *matchClock) tick(now tick.Micros) {
	mc.catchUp(now)
	mc.display.SetContents(formatMatchTime(mc.remaining), true, false, 0)
	mc.display.Tick(now)
}

// catchUp counts the time since the previous tick without touching the
// display, so starting or stopping mid-pass loses nothing
func (mc *matchClock) catchUp(now tick.Micros) {
	if now == tick.UpdateOnly {
		return
	}
	var elapsed time.Duration
	if mc.ticked {
		elapsed = now.Since(mc.lastTick).Duration()
	}
	mc.lastTick = now
	mc.ticked = true

	if mc.running {
		// out of time, stop and pin it at zero
		if elapsed >= mc.remaining {
			mc.running = false
			mc.remaining = 0
			mc.expired = true
		} else {
			mc.remaining -= elapsed
		}
	}
}

// start does nothing on a clock that already ran out
func (mc *matchClock) start() {
	if mc.remaining > 0 {
		mc.running = true
	}
}

func (mc *matchClock) stop() {
	mc.running = false
}

func (mc *matchClock) toggle() {
	if mc.running {
		mc.stop()
	} else {
		mc.start()
	}
}

func (mc *matchClock) isRunning() bool {
	return mc.running
}

func (mc *matchClock) getRemaining() time.Duration {
	return mc.remaining
}

// setTime stops a running clock first, no adjusting on the fly
func (mc *matchClock) setTime(d time.Duration) {
	mc.stop()
	mc.remaining = clampMatchTime(d)
	mc.expired = false
	mc.tick(tick.UpdateOnly)
}

// takeExpired reports the clock running out, once
func (mc *matchClock) takeExpired() bool {
	e := mc.expired
	mc.expired = false
	return e
}

// formatMatchTime renders MmSs. Leading zeros of the tens of minutes, the
// minutes and the tens of seconds are blanked in that order, so 3:00 is
// " 300" and 0:07 is "   7".
func formatMatchTime(d time.Duration) string {
	secs := int(clampMatchTime(d) / time.Second)
	digits := []int{secs / 600, secs % 600 / 60, secs % 60 / 10}

	var b strings.Builder
	blank := true
	for _, digit := range digits {
		if blank && digit == 0 {
			b.WriteByte(' ')
			continue
		}
		blank = false
		b.WriteByte(byte('0' + digit))
	}
	b.WriteByte(byte('0' + secs%10))
	return b.String()
}
