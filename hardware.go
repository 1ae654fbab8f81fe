package main

import (
	"fmt"

	"dscheirer.com/fencebox/pins"
)

// openHardware picks the backends for everything the loop drives
func openHardware(rt *runtimeConfig) error {
	settings := rt.settings
	backend := settings.GetString(sHardware)

	bank, err := pins.Open(backend, &ThreadLogger{name: "GPIO"}, settings.GetBool(sDebug))
	if err != nil {
		return err
	}
	rt.pins = bank

	if backend == pins.Sim {
		rt.buttons = &keyButtons{}
	} else {
		rt.buttons = &pinButtons{}
	}

	if n := settings.GetInt(sBuzzerPin); n != 0 {
		pwm, err := bank.PWM(n)
		if err != nil {
			return fmt.Errorf("buzzer: %w", err)
		}
		rt.tone = &pwmTone{pin: pwm}
	} else {
		rt.tone = &logTone{logger: &ThreadLogger{name: "Buzzer"}}
	}

	// lights need periph SPI, the simulation just logs them
	if spiName := settings.GetString(sLightsSPI); spiName != "" && backend != pins.Sim {
		strip, err := openNRZLedStrip(spiName, 2*settings.GetInt(sLightPixels))
		if err != nil {
			return err
		}
		rt.strip = strip
	} else {
		rt.strip = &logStrip{logger: &ThreadLogger{name: "Lights"}}
	}
	return nil
}

func closeHardware(rt runtimeConfig) {
	if rt.strip != nil {
		if err := rt.strip.close(); err != nil {
			rt.logger.Printf("closing lights: %s", err.Error())
		}
	}
	if rt.pins != nil {
		if err := rt.pins.Close(); err != nil {
			rt.logger.Printf("closing pins: %s", err.Error())
		}
	}
}

// startup opens the hardware and builds the box on it. On failure whatever
// was opened is closed again.
func startup(rt *runtimeConfig) (*scoringBox, error) {
	if err := openHardware(rt); err != nil {
		closeHardware(*rt)
		return nil, fmt.Errorf("hardware: %w", err)
	}
	box, err := openScoringBox(*rt)
	if err != nil {
		closeHardware(*rt)
		return nil, fmt.Errorf("startup: %w", err)
	}
	return box, nil
}
