package pins

import (
	"fmt"
	"testing"

	"gotest.tools/assert"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) Printf(format string, v ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func TestUnknownBackend(t *testing.T) {
	_, err := Open("gpiozero", &recordLogger{}, false)
	assert.ErrorContains(t, err, "unknown backend")
}

func TestSimPinsAreShared(t *testing.T) {
	b, err := Open(Sim, &recordLogger{}, false)
	assert.NilError(t, err)
	assert.Equal(t, b.Backend(), Sim)

	p1, err := b.Pin(3)
	assert.NilError(t, err)
	p2, err := b.Pin(3)
	assert.NilError(t, err)
	assert.Assert(t, p1 == p2)

	p3, err := b.Pin(4)
	assert.NilError(t, err)
	assert.Assert(t, p1 != p3)
}

func TestPinRange(t *testing.T) {
	b, _ := Open(Sim, &recordLogger{}, false)

	_, err := b.Pin(-1)
	assert.ErrorContains(t, err, "out of range")
	_, err = b.Pin(54)
	assert.ErrorContains(t, err, "out of range")
}

func TestSimPinLevels(t *testing.T) {
	b, _ := Open(Sim, &recordLogger{}, false)
	p, _ := b.Pin(17)

	assert.Equal(t, p.Read(), gpio.High)
	assert.NilError(t, p.Out(gpio.Low))
	assert.Equal(t, p.Read(), gpio.Low)
	assert.NilError(t, p.Out(gpio.High))

	// a released line reads as an acknowledging chip
	assert.NilError(t, p.In(gpio.PullUp, gpio.NoEdge))
	assert.Equal(t, p.Read(), gpio.Low)
}

func TestSimDebugLogsChangesOnly(t *testing.T) {
	l := &recordLogger{}
	b, _ := Open(Sim, l, true)
	p, _ := b.Pin(5)

	p.Out(gpio.High)
	p.Out(gpio.Low)
	p.Out(gpio.Low)
	p.In(gpio.PullUp, gpio.NoEdge)
	p.In(gpio.PullUp, gpio.NoEdge)

	assert.DeepEqual(t, l.lines, []string{"GPIO5 out Low", "GPIO5 in PullUp"})
}

func TestSimPWM(t *testing.T) {
	l := &recordLogger{}
	b, _ := Open(Sim, l, true)

	p, err := b.PWM(18)
	assert.NilError(t, err)
	assert.NilError(t, p.PWM(gpio.DutyHalf, 2794*physic.Hertz))
	assert.Equal(t, len(l.lines), 1)
}

func TestCloseForgetsPins(t *testing.T) {
	b, _ := Open(Sim, &recordLogger{}, false)
	p1, _ := b.Pin(2)
	assert.NilError(t, b.Close())
	p2, _ := b.Pin(2)
	assert.Assert(t, p1 != p2)
}

func TestDutyLen(t *testing.T) {
	assert.Equal(t, dutyLen(0), uint32(0))
	assert.Equal(t, dutyLen(gpio.DutyHalf), uint32(pwmCycle/2))
	assert.Equal(t, dutyLen(gpio.DutyMax), uint32(pwmCycle))
	assert.Equal(t, dutyLen(-5), uint32(0))
}
