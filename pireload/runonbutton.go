// runonbutton watches one referee button and runs a program while the box
// software is not running, typically to restart it:
//
//	BUTTON=21 PULLUP=1 RUNPROG=/usr/local/bin/fencebox-restart runonbutton
//
// PINS picks the backend (rpio or periph, rpio by default).
package main

import (
	"log"
	"os"
	"os/exec"
	"strconv"
	"time"

	"dscheirer.com/fencebox/pins"
	"periph.io/x/conn/v3/gpio"
)

const (
	pollSleep = 30 * time.Millisecond
	napSleep  = 5 * time.Second
)

func main() {
	// BUTTON is the pin number
	// RUNPROG is the thing to run
	pinS, pinSE := os.LookupEnv("BUTTON")
	progS, progSE := os.LookupEnv("RUNPROG")
	_, pullup := os.LookupEnv("PULLUP")
	backend, ok := os.LookupEnv("PINS")
	if !ok {
		backend = pins.Rpio
	}

	if !pinSE || !progSE {
		log.Fatalf("Must provide a BUTTON and RUNPROG in the environment: %s : %s\n", pinS, progS)
	}
	pinNum, err := strconv.ParseInt(pinS, 0, 64)
	if err != nil {
		log.Fatalf("%s is not a number", pinS)
	}

	bank, err := pins.Open(backend, log.Default(), false)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer bank.Close()

	pin, err := bank.Pin(int(pinNum))
	if err != nil {
		log.Fatal(err.Error())
	}

	pull, pressed := gpio.PullDown, gpio.High // +V -> button press
	if pullup {
		pull, pressed = gpio.PullUp, gpio.Low // GND => button press
	}
	if err := pin.In(pull, gpio.NoEdge); err != nil {
		log.Fatal(err.Error())
	}

	log.Printf("Watching GPIO%d (pullup %v) on %s", pinNum, pullup, backend)
	for {
		if pin.Read() == pressed {
			log.Printf("Running %s\n", progS)
			// wait for it to exit
			out, err := exec.Command(progS).Output()
			if err != nil {
				log.Println(err.Error())
			}
			log.Printf("%s", out)
			// take a nap after running the command
			log.Printf("Sleeping...")
			time.Sleep(napSleep)
		}
		time.Sleep(pollSleep)
	}
}
