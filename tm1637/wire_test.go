package tm1637

import (
	"testing"

	"gotest.tools/assert"
	"periph.io/x/conn/v3/gpio"
)

func testBus() (*bus, *fakeWire) {
	w := newFakeWire()
	return &bus{clk: w.clk, dio: w.dio, stats: &Stats{}}, w
}

func TestFrameSendsLSBFirst(t *testing.T) {
	b, w := testBus()

	b.frame(0xC2, 0x5b)
	b.frame(cmdFixedAddress)

	assert.DeepEqual(t, w.frames, [][]byte{{0xC2, 0x5b}, {0x44}})
	assert.Equal(t, b.stats.Frames, uint64(2))
	assert.Equal(t, b.stats.Naks, uint64(0))
}

func TestAckEndsPolling(t *testing.T) {
	b, w := testBus()

	b.start()
	acked := b.writeByte(0xA5)

	assert.Assert(t, acked)
	assert.Equal(t, w.ackRead, 1)
	// we have the line back as an output, driven low
	assert.Assert(t, !w.dio.input)
	assert.Equal(t, w.dio.level, gpio.Low)
	assert.Equal(t, w.clk.level, gpio.Low)
}

func TestNakGivesUpAndCarriesOn(t *testing.T) {
	b, w := testBus()
	w.nak = true

	b.start()
	acked := b.writeByte(0x44)
	assert.Assert(t, !acked)
	assert.Equal(t, w.ackRead, AckPolls)
	assert.Equal(t, b.stats.Naks, uint64(1))
	assert.Assert(t, !w.dio.input)
	assert.Equal(t, w.dio.level, gpio.Low)

	// the rest of the transfer still goes out
	b.writeByte(0x01)
	b.stop()
	assert.DeepEqual(t, w.frames, [][]byte{{0x44, 0x01}})
	assert.Equal(t, b.stats.Naks, uint64(2))
}

func TestStopLeavesBusIdle(t *testing.T) {
	b, w := testBus()

	b.frame(0x88)
	assert.Equal(t, w.clk.level, gpio.High)
	assert.Equal(t, w.dio.level, gpio.High)
	assert.Assert(t, !w.inFrame)
}

func TestPinErrorsAreCounted(t *testing.T) {
	b, w := testBus()
	w.dio.fail = true

	b.frame(0x40)
	// 8 data bits + ack release + ack input + take back, plus start and stop
	assert.Assert(t, b.stats.PinErrors > 10)
	assert.Equal(t, b.stats.Frames, uint64(1))
}
