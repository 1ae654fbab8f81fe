package main

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

type toneOutput interface {
	tone(f physic.Frequency) error
	silence() error
}

// pixelStrip takes both rings' pixels at once, left ring first, three
// bytes (red, green, blue) per pixel
type pixelStrip interface {
	show(pixels []byte) error
	close() error
}

type buttons interface {
	setupButtons(pins map[string]buttonMap, rt runtimeConfig) error
	readButtons(rt runtimeConfig) (map[string]gpio.Level, error)
	closeButtons()
	getButtons() *map[string]button
}
