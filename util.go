// utility functions
package main

import (
	"dscheirer.com/fencebox/pins"
	"dscheirer.com/fencebox/tick"
	"github.com/jonboulle/clockwork"
)

type commChannels struct {
	quit chan struct{}
}

type runtimeConfig struct {
	settings *configSettings
	clock    clockwork.Clock
	source   *tick.Source
	logger   flogger
	comms    commChannels

	// hardware, see openHardware
	pins    *pins.Bank
	buttons buttons
	tone    toneOutput
	strip   pixelStrip
}

func initCommChannels() commChannels {
	return commChannels{quit: make(chan struct{})}
}

func initRuntime(settings *configSettings, clock clockwork.Clock) runtimeConfig {
	return runtimeConfig{
		settings: settings,
		clock:    clock,
		source:   tick.NewSource(clock),
		logger:   &ThreadLogger{name: "Main"},
		comms:    initCommChannels(),
	}
}
