package main

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// nrzledStrip is the two WS2812 rings chained on one SPI MOSI line
type nrzledStrip struct {
	port spi.PortCloser
	dev  *nrzled.Dev
}

func openNRZLedStrip(spiName string, pixels int) (*nrzledStrip, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open(spiName)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", spiName, err)
	}
	dev, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: pixels,
		Channels:  3,
		Freq:      800 * physic.KiloHertz,
	})
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("light rings on %s: %w", spiName, err)
	}
	return &nrzledStrip{port: port, dev: dev}, nil
}

func (ns *nrzledStrip) show(pixels []byte) error {
	_, err := ns.dev.Write(pixels)
	return err
}

func (ns *nrzledStrip) close() error {
	ns.dev.Halt()
	return ns.port.Close()
}
