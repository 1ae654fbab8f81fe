package main

import (
	"fmt"
)

const (
	leftRing = iota
	rightRing
)

type ringColor struct {
	r, g, b byte
}

var (
	colorDark  = ringColor{}
	colorRed   = ringColor{r: 255}
	colorGreen = ringColor{g: 255}
	// all three at half still looks brighter than one at full
	colorWhite = ringColor{r: 127, g: 127, b: 127}
)

// what one ring shows
type ringState struct {
	fill  ringColor
	short bool // short circuit marks on top of the fill
}

// lightRings are the two touch lights. Nothing about them depends on time;
// a ring keeps showing a touch until the referee resets it.
type lightRings struct {
	strip      pixelStrip
	logger     flogger
	pixels     int // per ring
	brightness uint8
	rings      [2]ringState
	buf        []byte
	faults     int
}

func newLightRings(strip pixelStrip, pixels int, brightness uint8, logger flogger) *lightRings {
	lr := &lightRings{
		strip:      strip,
		logger:     logger,
		pixels:     pixels,
		brightness: brightness,
		buf:        make([]byte, 2*pixels*3),
	}
	// start out dark
	lr.render()
	return lr
}

func (lr *lightRings) onTarget(side int) {
	c := colorRed
	if side == rightRing {
		c = colorGreen
	}
	lr.update(side, ringState{fill: c})
}

func (lr *lightRings) offTarget(side int) {
	lr.update(side, ringState{fill: colorWhite})
}

func (lr *lightRings) shortCircuit(side int) {
	st := lr.rings[side]
	st.short = true
	lr.update(side, st)
}

func (lr *lightRings) resetLights() {
	if lr.rings == [2]ringState{} {
		return
	}
	lr.rings = [2]ringState{}
	lr.render()
}

func (lr *lightRings) setBrightness(b uint8) {
	if b == lr.brightness {
		return
	}
	lr.brightness = b
	lr.render()
}

func (lr *lightRings) ring(side int) ringState {
	return lr.rings[side]
}

// update skips the strip write when the ring already shows st
func (lr *lightRings) update(side int, st ringState) {
	if lr.rings[side] == st {
		return
	}
	lr.rings[side] = st
	lr.render()
}

// shortPixel marks every fourth pixel, 1, 5, 9 and 13 on a 16 pixel ring
func shortPixel(i int) bool {
	return i%4 == 1
}

func (lr *lightRings) scale(v byte) byte {
	return byte(uint16(v) * uint16(lr.brightness) / 255)
}

func (lr *lightRings) render() {
	for side, st := range lr.rings {
		for i := 0; i < lr.pixels; i++ {
			c := st.fill
			if st.short && shortPixel(i) {
				c = colorWhite
			}
			at := (side*lr.pixels + i) * 3
			lr.buf[at] = lr.scale(c.r)
			lr.buf[at+1] = lr.scale(c.g)
			lr.buf[at+2] = lr.scale(c.b)
		}
	}
	if err := lr.strip.show(lr.buf); err != nil {
		if lr.faults < 3 {
			lr.logger.Printf("lights: %s", err.Error())
		}
		lr.faults++
	}
}

// logStrip keeps the last frame and a line per frame shown
type logStrip struct {
	frame      []byte
	closed     bool
	audit      []string
	disableLog bool
	logger     flogger
}

func (ls *logStrip) show(pixels []byte) error {
	ls.frame = append(ls.frame[:0], pixels...)
	msg := describeFrame(pixels)
	if !ls.disableLog && ls.logger != nil {
		ls.logger.Println(msg)
	}
	ls.audit = append(ls.audit, msg)
	return nil
}

func (ls *logStrip) close() error {
	ls.closed = true
	return nil
}

// describeFrame summarizes each half of the strip as its first pixel
func describeFrame(pixels []byte) string {
	half := len(pixels) / 2
	if half < 3 {
		return "empty"
	}
	return fmt.Sprintf("left %02x%02x%02x right %02x%02x%02x",
		pixels[0], pixels[1], pixels[2], pixels[half], pixels[half+1], pixels[half+2])
}
