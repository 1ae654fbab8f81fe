package tm1637

import "periph.io/x/conn/v3/gpio"

// commands we send
const (
	cmdAutoAddress  = 0x40 // data command, address increments after each byte
	cmdFixedAddress = 0x44 // data command, one address per write
	cmdAddress      = 0xC0 // address command, low bits are the position
	cmdDisplayOn    = 0x88 // display control, low 3 bits are brightness
)

// AckPolls is how many times the data line is sampled for the chip's
// acknowledge before the driver gives up on it. Giving up is not an error:
// the line is driven low as if the ack had arrived and the transfer goes on.
// The bound is a loop count rather than a wall clock time because the driver
// never reads a clock.
const AckPolls = 200

// Pin is the part of a GPIO line the driver uses. Any periph gpio.PinIO
// satisfies it, the pins package adapts the other backends.
type Pin interface {
	Out(l gpio.Level) error
	In(pull gpio.Pull, edge gpio.Edge) error
	Read() gpio.Level
}

// Stats counts what the driver has done on the wire
type Stats struct {
	Frames     uint64 // start ... stop transfers
	Cycles     uint64 // update cycles started
	Glyphs     uint64 // glyphs committed to the device
	Naks       uint64 // bytes the chip never acknowledged
	PinErrors  uint64 // errors reported by the pin backend
	StepFaults uint64 // impossible cursor states recovered from
}

// bus bit-bangs the two wire protocol. It is I2C-like but LSB first and
// without a device address, so every chip on a clock line listens.
type bus struct {
	clk, dio Pin
	stats    *Stats
}

func (b *bus) out(p Pin, l gpio.Level) {
	if err := p.Out(l); err != nil {
		b.stats.PinErrors++
	}
}

// start condition: data falls while the clock is high
func (b *bus) start() {
	b.out(b.clk, gpio.High)
	b.out(b.dio, gpio.High)
	b.out(b.dio, gpio.Low)
	b.out(b.clk, gpio.Low)
}

// stop condition: data rises while the clock is high
func (b *bus) stop() {
	b.out(b.clk, gpio.Low)
	b.out(b.dio, gpio.Low)
	b.out(b.clk, gpio.High)
	b.out(b.dio, gpio.High)
}

// writeByte clocks out v LSB first and waits (boundedly) for the ack. It
// returns whether the chip acknowledged.
func (b *bus) writeByte(v byte) bool {
	for i := 0; i < 8; i++ {
		b.out(b.clk, gpio.Low)
		b.out(b.dio, v&1 == 1)
		v >>= 1
		b.out(b.clk, gpio.High)
	}

	// ninth clock, the chip pulls data low to ack
	b.out(b.clk, gpio.Low)
	b.out(b.dio, gpio.High)
	b.out(b.clk, gpio.High)
	if err := b.dio.In(gpio.PullUp, gpio.NoEdge); err != nil {
		b.stats.PinErrors++
	}

	acked := false
	for i := 0; i < AckPolls; i++ {
		if b.dio.Read() == gpio.Low {
			acked = true
			break
		}
	}
	if !acked {
		b.stats.Naks++
	}

	// take the line back either way, low is what the chip would be holding
	b.out(b.dio, gpio.Low)
	b.out(b.clk, gpio.Low)
	return acked
}

// frame sends one start ... stop transfer
func (b *bus) frame(data ...byte) {
	b.start()
	for _, v := range data {
		b.writeByte(v)
	}
	b.stop()
	b.stats.Frames++
}
