package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dscheirer.com/fencebox/pins"
	"github.com/jonboulle/clockwork"
)

// fencebox -config={config file} [-sim]

func main() {
	configFile := flag.String("config", "", "config file path, defaults are used without one")
	sim := flag.Bool("sim", false, "simulated hardware, the keyboard is the referee box")
	flag.Parse()

	settings, err := initSettings(*configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if *sim {
		settings.settings[sHardware] = pins.Sim
	}

	// the keyboard simulator owns the terminal
	logFile := setupLogging(settings, settings.GetString(sHardware) != pins.Sim)
	if logFile != nil {
		defer logFile.Close()
	}

	rt := initRuntime(settings, clockwork.NewRealClock())
	rt.logger.Println(">>> Settings <<<")
	settings.Dump(rt.logger)

	box, err := startup(&rt)
	if err != nil {
		// nothing is left open
		log.Fatal(err.Error())
	}
	defer closeHardware(rt)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		rt.logger.Printf("got %v", sig)
		close(rt.comms.quit)
	}()

	if err := runScoringLoop(rt, box); err != nil {
		rt.logger.Printf("scoring loop: %s", err.Error())
	}
}
