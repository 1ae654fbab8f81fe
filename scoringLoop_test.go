package main

import (
	"errors"
	"testing"
	"time"

	"dscheirer.com/fencebox/tm1637"
	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"
)

func startLoop(t *testing.T) (runtimeConfig, clockwork.FakeClock, *scoringBox, chan error) {
	rt, clock := testRuntime()
	box := testBox(t, rt)

	done := make(chan error, 1)
	go func() {
		done <- runScoringLoop(rt, box)
	}()
	// first pass is done when the loop sleeps
	clock.BlockUntil(1)
	return rt, clock, box, done
}

// pass runs the loop once more, d later
func pass(clock clockwork.FakeClock, d time.Duration) {
	clock.Advance(d)
	clock.BlockUntil(1)
}

func TestScoringLoopGreetsAndQuits(t *testing.T) {
	rt, clock, box, done := startLoop(t)

	for _, d := range box.displays {
		assert.Equal(t, d.Authoritative(), tm1637.EncodeString("8888", false))
	}

	pass(clock, 2*time.Second)
	assert.Equal(t, box.displays[0].Authoritative(), tm1637.EncodeString(" 300", true))
	assert.Equal(t, box.displays[2].Authoritative(), tm1637.EncodeString("   0", false))

	close(rt.comms.quit)
	clock.Advance(time.Millisecond)
	assert.NilError(t, <-done)
}

func TestGreetingAfterSlowStartup(t *testing.T) {
	rt, clock := testRuntime()
	box := testBox(t, rt)

	// startup took longer than the greeting lasts
	clock.Advance(1500 * time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- runScoringLoop(rt, box)
	}()
	clock.BlockUntil(1)
	for _, d := range box.displays {
		assert.Equal(t, d.Authoritative(), tm1637.EncodeString("8888", false))
		assert.Equal(t, d.OverrideActive(), true)
	}

	pass(clock, greetingLength+time.Millisecond)
	assert.Equal(t, box.displays[0].OverrideActive(), false)

	close(rt.comms.quit)
	clock.Advance(time.Millisecond)
	assert.NilError(t, <-done)
}

func TestScoringLoopButtons(t *testing.T) {
	rt, clock, box, done := startLoop(t)
	nb := rt.buttons.(*noButtons)
	sleep := rt.settings.GetDuration(sLoopSleep)

	nb.press(aToggleClock)
	pass(clock, sleep)
	assert.Equal(t, box.clock.isRunning(), true)

	// held down is still one press
	pass(clock, sleep)
	assert.Equal(t, box.clock.isRunning(), true)
	nb.clear()

	pass(clock, 10*time.Second)
	nb.press(aHitRight)
	pass(clock, sleep)
	assert.Equal(t, box.clock.isRunning(), false)
	assert.Equal(t, box.lights.ring(rightRing).fill, colorGreen)
	assert.Equal(t, testTone(rt).playing, shriekNote)
	assert.Equal(t, box.clock.getRemaining() < 2*time.Minute+50*time.Second, true)

	// the shriek runs out on its own
	nb.clear()
	pass(clock, 2*time.Second)
	assert.Equal(t, box.buzzer.isSounding(), false)

	nb.fail = errQuit
	clock.Advance(sleep)
	assert.NilError(t, <-done)
}

func TestScoringLoopInputFailure(t *testing.T) {
	rt, clock, _, done := startLoop(t)
	nb := rt.buttons.(*noButtons)

	nb.fail = errors.New("referee box unplugged")
	clock.Advance(time.Millisecond)
	assert.ErrorContains(t, <-done, "unplugged")
}

func TestScoringLoopDisplaysSettle(t *testing.T) {
	rt, clock, box, done := startLoop(t)
	sleep := rt.settings.GetDuration(sLoopSleep)

	pass(clock, 2*time.Second)
	for i := 0; i < 20; i++ {
		pass(clock, sleep)
	}
	assert.Equal(t, box.displays[0].Committed(), tm1637.EncodeString(" 300", true))
	assert.Equal(t, box.displays[1].Committed(), tm1637.EncodeString("   0", false))
	for _, d := range box.displays {
		assert.Equal(t, d.Busy(), false)
		assert.Equal(t, d.Stats().Naks, uint64(0))
	}

	close(rt.comms.quit)
	clock.Advance(sleep)
	assert.NilError(t, <-done)
}
