package tm1637

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// fakeWire is a TM1637 on the other end of two fake pins. It decodes the
// edges it sees into frames the same way the chip would: a start is data
// falling under a high clock, a stop is data rising under a high clock, bits
// are sampled on the clock's rising edge and every ninth clock is the ack.
type fakeWire struct {
	clk, dio *fakePin

	nak     bool // chip does not answer, the pull-up wins
	inFrame bool
	ackHigh bool // clock is high on an ack bit, data may move freely
	bits    []gpio.Level
	cur     []byte

	frames  [][]byte
	edges   int // clock edges, a cheap measure of bus activity
	ackRead int // reads of the data line while it was an input
}

type fakePin struct {
	w     *fakeWire
	name  string
	level gpio.Level
	input bool
	fail  bool
}

func newFakeWire() *fakeWire {
	w := &fakeWire{}
	w.clk = &fakePin{w: w, name: "clk", level: gpio.High}
	w.dio = &fakePin{w: w, name: "dio", level: gpio.High}
	return w
}

// resetTrace forgets what has been decoded so far
func (w *fakeWire) resetTrace() {
	w.frames = nil
	w.edges = 0
	w.ackRead = 0
}

// data is what the data line carries right now
func (w *fakeWire) data() gpio.Level {
	if w.dio.input {
		// chip pulls low to ack, otherwise the pull-up
		return gpio.Level(w.nak)
	}
	return w.dio.level
}

func (p *fakePin) Out(l gpio.Level) error {
	if p.fail {
		return errors.New("fake pin failure")
	}
	before := p.w.data()
	if p == p.w.clk {
		old := p.level
		p.level = l
		p.w.clockMoved(old, l)
		return nil
	}
	p.input = false
	p.level = l
	p.w.dataMoved(before, p.w.data())
	return nil
}

func (p *fakePin) In(pull gpio.Pull, edge gpio.Edge) error {
	if p.fail {
		return errors.New("fake pin failure")
	}
	before := p.w.data()
	p.input = true
	if p == p.w.dio {
		p.w.dataMoved(before, p.w.data())
	}
	return nil
}

func (p *fakePin) Read() gpio.Level {
	if p == p.w.dio && p.input {
		p.w.ackRead++
		return p.w.data()
	}
	return p.level
}

func (w *fakeWire) clockMoved(old, now gpio.Level) {
	if old == now {
		return
	}
	w.edges++
	if now == gpio.Low {
		w.ackHigh = false
		return
	}
	if !w.inFrame {
		return
	}
	w.bits = append(w.bits, w.data())
	if len(w.bits) == 9 {
		var b byte
		for i := 7; i >= 0; i-- {
			b <<= 1
			if w.bits[i] {
				b |= 1
			}
		}
		w.cur = append(w.cur, b)
		w.bits = w.bits[:0]
		w.ackHigh = true
	}
}

func (w *fakeWire) dataMoved(old, now gpio.Level) {
	if old == now || w.clk.level == gpio.Low || w.ackHigh {
		return
	}
	if now == gpio.Low {
		w.inFrame = true
		w.bits = w.bits[:0]
		w.cur = nil
		return
	}
	if w.inFrame {
		// the clock edge that set up the stop is not a bit
		w.frames = append(w.frames, w.cur)
		w.inFrame = false
		w.cur = nil
		w.bits = w.bits[:0]
	}
}

// glyphFrames picks out the single glyph writes (address, data) in order
func (w *fakeWire) glyphFrames() [][]byte {
	var out [][]byte
	for _, f := range w.frames {
		if len(f) == 2 && f[0]&0xF0 == cmdAddress {
			out = append(out, f)
		}
	}
	return out
}
