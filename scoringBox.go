package main

import (
	"fmt"
	"time"

	"dscheirer.com/fencebox/tick"
	"dscheirer.com/fencebox/tm1637"
)

// referee actions, also the button names in the settings
const (
	aToggleClock = "toggleClock"
	aLeftUp      = "leftUp"
	aLeftDown    = "leftDown"
	aRightUp     = "rightUp"
	aRightDown   = "rightDown"
	aHitLeft     = "hitLeft"
	aHitRight    = "hitRight"
	aOffLeft     = "offLeft"
	aOffRight    = "offRight"
	aShortLeft   = "shortLeft"
	aShortRight  = "shortRight"
	aResetLights = "resetLights"
	aBrightness  = "brightness"
	aQuiet       = "quiet"
)

const (
	greeting       = "8888"
	greetingLength = time.Second
	scoreFlash     = time.Second
)

// scoringBox is everything the loop drives
type scoringBox struct {
	logger   flogger
	wiring   []tm1637.Wiring
	displays []*tm1637.Display

	clock  *matchClock
	scores *scoreBoards
	buzzer *buzzer
	lights *lightRings

	brightness      uint8
	lightBrightness uint8 // ring brightness at full display brightness

	// the first touch opens a window for the other fencer's, after it
	// closes touches are ignored until the lights are reset
	lockout   tick.Micros
	hitLocked bool
	firstHit  tick.Micros
}

func openScoringBox(rt runtimeConfig) (*scoringBox, error) {
	settings := rt.settings

	wiring := []tm1637.Wiring{
		{Name: "clock", Clk: settings.GetInt(sClockClk), Dio: settings.GetInt(sClockDio)},
		{Name: "left", Clk: settings.GetInt(sLeftClk), Dio: settings.GetInt(sLeftDio)},
		{Name: "right", Clk: settings.GetInt(sRightClk), Dio: settings.GetInt(sRightDio)},
	}
	if err := tm1637.CheckWiring(wiring); err != nil {
		return nil, fmt.Errorf("display wiring: %w", err)
	}

	box := &scoringBox{
		logger:     &ThreadLogger{name: "Box"},
		wiring:     wiring,
		brightness:      settings.GetByte(sBrightness),
		lightBrightness: settings.GetByte(sLightBrightness),
		lockout:         tick.FromDuration(settings.GetDuration(sHitLockout)),
	}

	for _, w := range wiring {
		clk, err := rt.pins.Pin(w.Clk)
		if err != nil {
			return nil, fmt.Errorf("%s display: %w", w.Name, err)
		}
		dio, err := rt.pins.Pin(w.Dio)
		if err != nil {
			return nil, fmt.Errorf("%s display: %w", w.Name, err)
		}
		d, err := tm1637.New(clk, dio, box.brightness)
		if err != nil {
			return nil, fmt.Errorf("%s display: %w", w.Name, err)
		}
		box.displays = append(box.displays, d)
	}
	box.brightness = box.displays[0].Brightness()

	box.clock = newMatchClock(box.displays[0], settings.GetDuration(sMatchTime))
	box.scores = newScoreBoards(box.displays[1], box.displays[2])
	box.buzzer = newBuzzer(rt.tone, settings.GetBool(sQuiet), &ThreadLogger{name: "Buzzer"})
	box.lights = newLightRings(rt.strip, settings.GetInt(sLightPixels),
		ringBrightness(box.lightBrightness, box.brightness), &ThreadLogger{name: "Lights"})

	return box, nil
}

// greet lights every segment for a moment
func (box *scoringBox) greet() {
	for _, d := range box.displays {
		d.SetContents(greeting, false, true, greetingLength)
	}
}

func (box *scoringBox) tick(now tick.Micros) {
	// tones started below are born now
	box.buzzer.tick(now)
	box.clock.tick(now)
	if box.clock.takeExpired() {
		box.logger.Println("time is up")
		box.buzzer.startShrieking()
	}
	box.scores.tick(now)
}

func (box *scoringBox) apply(action string, now tick.Micros) {
	box.buzzer.tick(now)

	switch action {
	case aToggleClock:
		box.clock.catchUp(now)
		box.clock.toggle()
		box.clock.tick(tick.UpdateOnly)
		box.logger.Printf("clock running: %v, %v left", box.clock.isRunning(), box.clock.getRemaining())
		box.buzzer.chirp()
	case aLeftUp:
		box.scoreChanged(box.scores.incLeft)
	case aLeftDown:
		box.scoreChanged(box.scores.decLeft)
	case aRightUp:
		box.scoreChanged(box.scores.incRight)
	case aRightDown:
		box.scoreChanged(box.scores.decRight)
	case aHitLeft:
		box.touch(leftRing, now, box.lights.onTarget)
	case aHitRight:
		box.touch(rightRing, now, box.lights.onTarget)
	case aOffLeft:
		box.touch(leftRing, now, box.lights.offTarget)
	case aOffRight:
		box.touch(rightRing, now, box.lights.offTarget)
	case aShortLeft:
		box.lights.shortCircuit(leftRing)
	case aShortRight:
		box.lights.shortCircuit(rightRing)
	case aResetLights:
		box.lights.resetLights()
		box.buzzer.stopShrieking()
		box.hitLocked = false
	case aBrightness:
		box.setBrightness((box.brightness + 1) % (tm1637.MaxBrightness + 1))
		box.buzzer.chirp()
	case aQuiet:
		quiet := !box.buzzer.isQuiet()
		box.logger.Printf("quiet: %v", quiet)
		box.buzzer.setQuiet(quiet)
		box.buzzer.chirp()
	default:
		box.logger.Printf("Unhandled action %s", action)
	}
}

// scoreChanged flashes both scores on the clock, left:right
func (box *scoringBox) scoreChanged(change func()) {
	change()
	l, r := box.scores.getLeft(), box.scores.getRight()
	box.logger.Printf("score %d - %d", l, r)
	box.clock.display.SetContents(fmt.Sprintf("%2d%2d", l%100, r%100), true, true, scoreFlash)
	box.buzzer.chirp()
}

func (box *scoringBox) touch(side int, now tick.Micros, light func(int)) {
	if !box.acceptTouch(now) {
		box.logger.Printf("touch on ring %d after the lockout, ignored", side)
		return
	}
	light(side)
	box.buzzer.startShrieking()
	box.clock.catchUp(now)
	box.clock.stop()
	box.clock.tick(tick.UpdateOnly)
}

func (box *scoringBox) acceptTouch(now tick.Micros) bool {
	if !box.hitLocked {
		box.hitLocked = true
		box.firstHit = now
		return true
	}
	return now.Since(box.firstHit) <= box.lockout
}

func (box *scoringBox) setBrightness(b uint8) {
	for _, d := range box.displays {
		d.SetBrightness(b)
	}
	box.brightness = box.displays[0].Brightness()
	box.lights.setBrightness(ringBrightness(box.lightBrightness, box.brightness))
}

// ringBrightness dims the rings along with the displays, full is top
func ringBrightness(full, display uint8) uint8 {
	return uint8(uint16(full) * uint16(display+1) / uint16(tm1637.MaxBrightness+1))
}

func (box *scoringBox) logStats() {
	for i, d := range box.displays {
		st := d.Stats()
		box.logger.Printf("%s display: %d frames, %d cycles, %d glyphs, %d naks, %d pin errors, %d step faults",
			box.wiring[i].Name, st.Frames, st.Cycles, st.Glyphs, st.Naks, st.PinErrors, st.StepFaults)
	}
}
