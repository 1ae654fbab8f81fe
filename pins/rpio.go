package pins

import (
	"errors"
	"fmt"

	"github.com/stianeikeland/go-rpio"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// square wave resolution used for PWM, in clock ticks per period
const pwmCycle = 32

type rpioPin struct {
	pin  rpio.Pin
	mode rpio.Mode
	pull gpio.Pull
	set  bool // mode has been applied at least once
}

func openRpio() (func(int) (Pin, error), func() error, error) {
	if err := rpio.Open(); err != nil {
		return nil, nil, fmt.Errorf("pins: rpio open: %w", err)
	}
	open := func(n int) (Pin, error) {
		return &rpioPin{pin: rpio.Pin(n), pull: gpio.PullNoChange}, nil
	}
	return open, rpio.Close, nil
}

// setMode only touches the function select register when the mode changes
func (p *rpioPin) setMode(m rpio.Mode) {
	if p.set && p.mode == m {
		return
	}
	p.pin.Mode(m)
	p.mode = m
	p.set = true
}

func (p *rpioPin) Out(l gpio.Level) error {
	p.setMode(rpio.Output)
	if l {
		p.pin.High()
	} else {
		p.pin.Low()
	}
	return nil
}

func (p *rpioPin) In(pull gpio.Pull, edge gpio.Edge) error {
	if edge != gpio.NoEdge {
		return errors.New("pins: rpio backend has no edge detection")
	}
	p.setMode(rpio.Input)
	if pull == p.pull || pull == gpio.PullNoChange {
		return nil
	}
	switch pull {
	case gpio.PullUp:
		p.pin.PullUp()
	case gpio.PullDown:
		p.pin.PullDown()
	case gpio.Float:
		p.pin.PullOff()
	default:
		return fmt.Errorf("pins: unsupported pull %v", pull)
	}
	p.pull = pull
	return nil
}

func (p *rpioPin) Read() gpio.Level {
	return p.pin.Read() == rpio.High
}

// PWM uses the hardware PWM channel behind the pin. Only GPIO 12, 13, 18
// and 19 have one; on other pins the chip silently ignores the mode.
func (p *rpioPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	if f <= 0 {
		return fmt.Errorf("pins: bad PWM frequency %v", f)
	}
	p.setMode(rpio.Pwm)
	p.pin.Freq(int(f/physic.Hertz) * pwmCycle)
	p.pin.DutyCycle(dutyLen(duty), pwmCycle)
	return nil
}

func dutyLen(duty gpio.Duty) uint32 {
	if duty <= 0 {
		return 0
	}
	if duty >= gpio.DutyMax {
		return pwmCycle
	}
	return uint32(int64(duty) * pwmCycle / int64(gpio.DutyMax))
}
