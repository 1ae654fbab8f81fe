package main

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// pinButtons are referee buttons wired to GPIO lines, on whichever pins
// backend the box runs
type pinButtons struct {
	buttons map[string]button
}

func (pb *pinButtons) getButtons() *map[string]button {
	return &pb.buttons
}

func (pb *pinButtons) setupButtons(btns map[string]buttonMap, rt runtimeConfig) error {
	pb.buttons = make(map[string]button)
	now := rt.clock.Now()

	for k, v := range btns {
		// not every action needs a button
		if v.pinNum == 0 {
			continue
		}
		p, err := rt.pins.Pin(v.pinNum)
		if err != nil {
			return fmt.Errorf("button %s: %w", k, err)
		}

		pull := gpio.PullDown // +V -> button press
		if v.pullup {
			pull = gpio.PullUp // GND -> button press
		}
		if err := p.In(pull, gpio.NoEdge); err != nil {
			return fmt.Errorf("button %s: %w", k, err)
		}

		pb.buttons[k] = button{
			button: v,
			pin:    p,
			state:  pressState{pressed: false, start: now, count: 0, changed: false},
		}
	}
	rt.logger.Printf("%d buttons wired", len(pb.buttons))
	return nil
}

func (pb *pinButtons) closeButtons() {
	// N/A, the pins bank is closed with the rest of the hardware
}

func (pb *pinButtons) readButtons(rt runtimeConfig) (map[string]gpio.Level, error) {
	ret := make(map[string]gpio.Level)
	for k, v := range pb.buttons {
		ret[k] = v.pin.Read()
	}
	return ret, nil
}
