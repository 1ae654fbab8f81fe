package main

import (
	"unicode/utf8"

	// keyboard for sim mode
	"github.com/nsf/termbox-go"
	"periph.io/x/conn/v3/gpio"
)

// keyQuit is sent down the key channel for ctrl-c and esc
const keyQuit = rune(-1)

// keyButtons stand in for the referee box in sim mode. A keystroke is a
// press that lasts for one pass of the loop.
type keyButtons struct {
	buttons map[string]button
	keys    chan rune
}

func (kb *keyButtons) getButtons() *map[string]button {
	return &kb.buttons
}

func (kb *keyButtons) setupButtons(btns map[string]buttonMap, rt runtimeConfig) error {
	kb.buttons = make(map[string]button)
	kb.keys = make(chan rune, 64)

	now := rt.clock.Now()
	for k, v := range btns {
		if v.key == "" {
			continue
		}
		kb.buttons[k] = button{
			button: v,
			state:  pressState{pressed: false, start: now, count: 0, changed: false},
		}
	}

	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.Flush()

	// PollEvent blocks, the loop must not
	go kb.pollKeys()
	return nil
}

func (kb *keyButtons) pollKeys() {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			ch := ev.Ch
			switch ev.Key {
			case termbox.KeyCtrlC, termbox.KeyEsc:
				ch = keyQuit
			case termbox.KeySpace:
				ch = ' '
			}
			if ch == 0 {
				continue
			}
			select {
			case kb.keys <- ch:
			default:
				// loop is not keeping up, drop it
			}
			if ch == keyQuit {
				return
			}
		case termbox.EventInterrupt, termbox.EventError:
			return
		}
	}
}

func (kb *keyButtons) readButtons(rt runtimeConfig) (map[string]gpio.Level, error) {
	typed := make(map[rune]bool)
	for reading := true; reading; {
		select {
		case ch := <-kb.keys:
			if ch == keyQuit {
				return nil, errQuit
			}
			typed[ch] = true
		default:
			reading = false
		}
	}
	return kb.levels(typed), nil
}

// levels reports the typed keys as pressed lines
func (kb *keyButtons) levels(typed map[rune]bool) map[string]gpio.Level {
	ret := make(map[string]gpio.Level)
	for k, v := range kb.buttons {
		ch, _ := utf8.DecodeRuneInString(v.button.key)
		down := typed[ch]
		// pressed reads the way the wired button would
		ret[k] = gpio.Level(down != v.button.pullup)
	}
	return ret
}

func (kb *keyButtons) closeButtons() {
	termbox.Interrupt()
	termbox.Close()
}
