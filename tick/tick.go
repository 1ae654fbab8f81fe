// Package tick is the time base shared by the indicator drivers.
//
// Drivers never read a clock. The control loop reads one (through a Source)
// and hands every driver a Micros timestamp on each pass. Timestamps are
// 32 bit microsecond counters that wrap roughly every 71.6 minutes, so all
// duration math goes through Since, which is an unsigned difference and
// stays correct across the wrap.
package tick

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Micros is a wrapping microsecond timestamp (or a span of microseconds)
type Micros uint32

// UpdateOnly is passed to a Tick to mean "no time has passed, just re-render"
const UpdateOnly Micros = 0

// MaxSpan is the longest span representable without ambiguity
const MaxSpan = Micros(^uint32(0))

// Since returns the time from earlier to m, tolerating one wrap of the counter
func (m Micros) Since(earlier Micros) Micros {
	return m - earlier
}

// Duration converts a span to a time.Duration
func (m Micros) Duration() time.Duration {
	return time.Duration(m) * time.Microsecond
}

// FromDuration converts a duration to a span, clamping to [0, MaxSpan]
func FromDuration(d time.Duration) Micros {
	if d <= 0 {
		return 0
	}
	us := d / time.Microsecond
	if us > time.Duration(MaxSpan) {
		return MaxSpan
	}
	return Micros(us)
}

// Source turns a clockwork clock into loop timestamps
type Source struct {
	clock clockwork.Clock
	start time.Time
}

// NewSource starts counting from the clock's current time
func NewSource(clock clockwork.Clock) *Source {
	return &Source{clock: clock, start: clock.Now()}
}

// Now returns the current timestamp. It never returns UpdateOnly; a counter
// that lands exactly on zero is reported as 1.
func (s *Source) Now() Micros {
	elapsed := s.clock.Now().Sub(s.start) / time.Microsecond
	// conversion truncates to the low 32 bits, which is the wrap we want
	now := Micros(uint32(uint64(elapsed)))
	if now == UpdateOnly {
		now = 1
	}
	return now
}
