package main

import (
	"errors"
	"sort"
	"time"

	"dscheirer.com/fencebox/pins"
	"periph.io/x/conn/v3/gpio"
)

// check the press state, and return the press state
type pressState struct {
	pressed bool      // is it pressed?
	start   time.Time // when did this state start?
	count   int       // # of whole seconds since it started
	changed bool      // did the above data change at all?
}

type button struct {
	button buttonMap
	pin    pins.Pin
	state  pressState
}

// errQuit is how an input source asks for the box to shut down
var errQuit = errors.New("quit requested")

// isDown interprets a line level according to how the button is wired
func isDown(bm buttonMap, level gpio.Level) bool {
	if bm.pullup {
		// pressed grounds the line
		return level == gpio.Low
	}
	return level == gpio.High
}

func checkButtons(rt runtimeConfig) (map[string]button, error) {
	now := rt.clock.Now()

	btns := rt.buttons.getButtons()
	results, err := rt.buttons.readButtons(rt)
	if err != nil {
		return *btns, err
	}

	for k, v := range *btns {
		level, ok := results[k]
		if !ok {
			continue
		}

		btn := v
		btn.state.changed = false

		if isDown(v.button, level) {
			// is this a change from before?
			if btn.state.pressed {
				// no button state change, update the duration count
				btn.state.count = int(now.Sub(btn.state.start) / time.Second)
				if v.state.count != btn.state.count {
					btn.state.changed = true
				}
			} else {
				// just noticed it was pressed
				btn.state = pressState{pressed: true, start: now, count: 0, changed: true}
			}
		} else if btn.state.pressed {
			// just noticed the release
			btn.state = pressState{pressed: false, start: now, count: 0, changed: true}
		}
		(*btns)[k] = btn
	}

	return *btns, nil
}

// pressedButtons names the buttons that went down since the last call, in a
// stable order. Holding a button does not repeat it.
func pressedButtons(rt runtimeConfig) ([]string, error) {
	btns, err := checkButtons(rt)
	if err != nil {
		return nil, err
	}

	var names []string
	for k, v := range btns {
		if v.state.changed && v.state.pressed && v.state.count == 0 {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names, nil
}
