//go:build baremetal

// Firmware for the ESP32-S3 on the Papilio RetroCade: console banner, SPI bus to
// the FPGA Wishbone bridge, and the RGB LED color cycle.
package main

import (
	"context"
	"time"

	"github.com/Papilio-Labs/papilio-project-template/config"
	"github.com/Papilio-Labs/papilio-project-template/console"
	"github.com/Papilio-Labs/papilio-project-template/transports"
	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

func main() {
	cfg := config.Default()

	// Allow USB CDC to enumerate before we print.
	time.Sleep(time.Second)

	con, err := console.Open(cfg.ConsoleConfig())
	if err != nil {
		halt()
	}
	con.Banner("Papilio RetroCade - Wishbone System",
		"Ready to add Papilio Wishbone peripherals!",
		"Pins, palette and timing come from the board defaults",
		"and new peripherals are registered as loop tasks.")

	bus, err := wishbone.NewBus(cfg.BusConfig(transports.NewMCU()))
	if err != nil {
		con.Printf("Bus initialization failed: %v\n", err)
		halt()
	}

	palette, _ := cfg.Palette()
	led := wishbone.NewRGBLed(bus, bus.Select())
	cycler, err := wishbone.NewCycler(led, palette, cfg.IntervalMillis())
	if err != nil {
		con.Printf("LED setup failed: %v\n", err)
		halt()
	}

	loop := wishbone.NewLoop(wishbone.NewSystemClock(), cfg.Loop.Period, nil)
	loop.Add("status", con.NewStatus())
	loop.Add("led", cycler)

	con.Println("Setup complete!")
	con.Println()

	loop.Run(context.Background())
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
