package pins

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// simPin stands in for a line when there is no hardware. A line switched to
// input reads low, which is what an attached TM1637 acknowledging looks like.
type simPin struct {
	num    int
	level  gpio.Level
	input  bool
	logger Logger
	debug  bool
}

func (p *simPin) Out(l gpio.Level) error {
	if p.debug && (p.input || p.level != l) {
		p.logger.Printf("GPIO%d out %v", p.num, l)
	}
	p.input = false
	p.level = l
	return nil
}

func (p *simPin) In(pull gpio.Pull, edge gpio.Edge) error {
	if p.debug && !p.input {
		p.logger.Printf("GPIO%d in %v", p.num, pull)
	}
	p.input = true
	return nil
}

func (p *simPin) Read() gpio.Level {
	if p.input {
		return gpio.Low
	}
	return p.level
}

func (p *simPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	if p.debug {
		p.logger.Printf("GPIO%d pwm %v at %v", p.num, duty, f)
	}
	p.input = false
	return nil
}
