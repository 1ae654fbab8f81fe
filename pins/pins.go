// Package pins hands out GPIO lines by BCM number. Three backends are
// available: go-rpio (memory mapped registers, Raspberry Pi only),
// periph.io (anything its host drivers know), and a simulation that only
// remembers levels and optionally logs them.
//
// Lines are cached: asking twice for the same number returns the same Pin,
// which is what lets several displays share one data line.
package pins

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// backend names, as used in the settings
const (
	Sim    = "sim"
	Rpio   = "rpio"
	Periph = "periph"
)

// Pin is a bidirectional line. periph's gpio.PinIO satisfies it as is.
type Pin interface {
	Out(l gpio.Level) error
	In(pull gpio.Pull, edge gpio.Edge) error
	Read() gpio.Level
}

// PWMPin is a line that can also generate a square wave
type PWMPin interface {
	Pin
	PWM(duty gpio.Duty, f physic.Frequency) error
}

// Logger is what the simulated backend reports to
type Logger interface {
	Printf(format string, v ...interface{})
}

// Bank is an opened backend
type Bank struct {
	backend string
	open    func(n int) (Pin, error)
	close   func() error
	pins    map[int]Pin
}

// Open initializes a backend. debug makes the simulated backend log every
// level change; the hardware backends ignore it.
func Open(backend string, logger Logger, debug bool) (*Bank, error) {
	b := &Bank{backend: backend, pins: make(map[int]Pin)}
	var err error
	switch backend {
	case Sim:
		b.open = func(n int) (Pin, error) {
			return &simPin{num: n, level: gpio.High, logger: logger, debug: debug}, nil
		}
		b.close = func() error { return nil }
	case Rpio:
		b.open, b.close, err = openRpio()
	case Periph:
		b.open, b.close, err = openPeriph()
	default:
		return nil, fmt.Errorf("pins: unknown backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Backend names the backend this bank was opened with
func (b *Bank) Backend() string {
	return b.backend
}

// Pin returns the line with BCM number n
func (b *Bank) Pin(n int) (Pin, error) {
	if p, ok := b.pins[n]; ok {
		return p, nil
	}
	if n < 0 || n > maxBCM {
		return nil, fmt.Errorf("pins: GPIO%d is out of range", n)
	}
	p, err := b.open(n)
	if err != nil {
		return nil, err
	}
	b.pins[n] = p
	return p, nil
}

// PWM returns line n if the backend can drive a square wave on it
func (b *Bank) PWM(n int) (PWMPin, error) {
	p, err := b.Pin(n)
	if err != nil {
		return nil, err
	}
	pp, ok := p.(PWMPin)
	if !ok {
		return nil, fmt.Errorf("pins: GPIO%d cannot do PWM with the %s backend", n, b.backend)
	}
	return pp, nil
}

// Close releases the backend. Lines handed out stop working.
func (b *Bank) Close() error {
	b.pins = make(map[int]Pin)
	return b.close()
}

// the BCM2835 family has 54 lines
const maxBCM = 53
