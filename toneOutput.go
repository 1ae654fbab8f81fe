package main

import (
	"fmt"

	"dscheirer.com/fencebox/pins"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// pwmTone drives the piezo with a square wave from any pins backend
type pwmTone struct {
	pin pins.PWMPin
}

func (pt *pwmTone) tone(f physic.Frequency) error {
	return pt.pin.PWM(gpio.DutyHalf, f)
}

func (pt *pwmTone) silence() error {
	return pt.pin.Out(gpio.Low)
}

// logTone only writes down what it would have played
type logTone struct {
	playing    physic.Frequency
	audit      []string
	disableLog bool
	logger     flogger
}

func (lt *logTone) tone(f physic.Frequency) error {
	lt.playing = f
	lt.record(fmt.Sprintf("tone %v", f))
	return nil
}

func (lt *logTone) silence() error {
	lt.playing = 0
	lt.record("silence")
	return nil
}

func (lt *logTone) record(msg string) {
	if !lt.disableLog && lt.logger != nil {
		lt.logger.Println(msg)
	}
	lt.audit = append(lt.audit, msg)
}
