package main

import (
	"time"

	"dscheirer.com/fencebox/tick"
	"periph.io/x/conn/v3/physic"
)

const (
	chirpNote    = 2794 * physic.Hertz // F7
	chirpLength  = 200 * time.Millisecond
	shriekNote   = 2349 * physic.Hertz // D7
	shriekLength = time.Second
)

// buzzer is the piezo on the box. Tones switch themselves off when their
// time is up, measured by tick like everything else in the loop.
type buzzer struct {
	out    toneOutput
	logger flogger

	quiet    bool
	sounding bool
	note     physic.Frequency
	born     tick.Micros
	life     tick.Micros
	lastSeen tick.Micros
	faults   int
}

func newBuzzer(out toneOutput, quiet bool, logger flogger) *buzzer {
	return &buzzer{out: out, quiet: quiet, logger: logger}
}

// chirp acknowledges a referee's button press
func (bz *buzzer) chirp() {
	bz.play(chirpNote, chirpLength)
}

// startShrieking announces a touch
func (bz *buzzer) startShrieking() {
	bz.play(shriekNote, shriekLength)
}

func (bz *buzzer) stopShrieking() {
	bz.silence()
}

func (bz *buzzer) setQuiet(quiet bool) {
	bz.quiet = quiet
	if quiet {
		bz.silence()
	}
}

func (bz *buzzer) isQuiet() bool {
	return bz.quiet
}

func (bz *buzzer) isSounding() bool {
	return bz.sounding
}

// a new tone replaces whatever is playing
func (bz *buzzer) play(note physic.Frequency, d time.Duration) {
	if bz.quiet {
		return
	}
	if err := bz.out.tone(note); err != nil {
		bz.fault(err)
		return
	}
	bz.sounding = true
	bz.note = note
	bz.born = bz.lastSeen
	bz.life = tick.FromDuration(d)
}

func (bz *buzzer) silence() {
	if !bz.sounding {
		return
	}
	bz.sounding = false
	if err := bz.out.silence(); err != nil {
		bz.fault(err)
	}
}

func (bz *buzzer) fault(err error) {
	// only the first few, this is called from the loop
	if bz.faults < 3 {
		bz.logger.Printf("buzzer: %s", err.Error())
	}
	bz.faults++
}

func (bz *buzzer) tick(now tick.Micros) {
	if now == tick.UpdateOnly {
		return
	}
	bz.lastSeen = now
	if bz.sounding && now.Since(bz.born) > bz.life {
		bz.silence()
	}
}
