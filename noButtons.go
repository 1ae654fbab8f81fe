package main

import (
	"periph.io/x/conn/v3/gpio"
)

// noButtons has no hardware behind it, states are set directly
type noButtons struct {
	buttons map[string]button
	states  map[string]gpio.Level
	fail    error
}

func (nb *noButtons) getButtons() *map[string]button {
	return &nb.buttons
}

func (nb *noButtons) readButtons(rt runtimeConfig) (map[string]gpio.Level, error) {
	if nb.fail != nil {
		return nil, nb.fail
	}
	ret := make(map[string]gpio.Level)
	for k, v := range nb.states {
		ret[k] = v
	}
	return ret, nil
}

func (nb *noButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	nb.buttons = make(map[string]button)
	nb.states = make(map[string]gpio.Level)

	now := rt.clock.Now()
	for k, v := range pins {
		nb.buttons[k] = button{button: v, state: pressState{start: now}}
		nb.states[k] = gpio.Level(v.pullup)
	}
	return nil
}

func (nb *noButtons) closeButtons() {
}

func (nb *noButtons) set(btns map[string]gpio.Level) {
	for k, v := range btns {
		nb.states[k] = v
	}
}

// press sets a button to whatever its wiring reads when held
func (nb *noButtons) press(name string) {
	nb.states[name] = gpio.Level(!nb.buttons[name].button.pullup)
}

func (nb *noButtons) clear() {
	for k, v := range nb.buttons {
		nb.states[k] = gpio.Level(v.button.pullup)
	}
}
