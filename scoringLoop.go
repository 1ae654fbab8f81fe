package main

import "time"

const statsInterval = time.Minute

// runScoringLoop is the one loop that owns the displays, buzzer and lights.
// Every pass reads the time once, handles the referee's inputs, ticks every
// driver and sleeps a little. Nothing in it blocks.
func runScoringLoop(rt runtimeConfig, box *scoringBox) error {
	defer func() {
		rt.logger.Println("exiting runScoringLoop")
	}()

	if err := rt.buttons.setupButtons(rt.settings.GetButtons(), rt); err != nil {
		return err
	}
	// we now should defer the closeButtons call to when this function exits
	defer rt.buttons.closeButtons()

	sleep := rt.settings.GetDuration(sLoopSleep)
	lastStats := rt.clock.Now()

	// the greeting's lifetime starts at the first pass, however long startup took
	box.tick(rt.source.Now())
	box.greet()

	for {
		select {
		case <-rt.comms.quit:
			rt.logger.Println("quit from runScoringLoop")
			return nil
		default:
		}

		now := rt.source.Now()

		pressed, err := pressedButtons(rt)
		if err == errQuit {
			rt.logger.Println("quit from the keyboard")
			return nil
		}
		if err != nil {
			return err
		}
		for _, name := range pressed {
			box.apply(name, now)
		}

		box.tick(now)

		if rt.clock.Since(lastStats) >= statsInterval {
			box.logStats()
			lastStats = rt.clock.Now()
		}

		rt.clock.Sleep(sleep)
	}
}
