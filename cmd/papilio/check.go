//go:build !baremetal

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/Papilio-Labs/papilio-project-template/config"
	"github.com/Papilio-Labs/papilio-project-template/console"
	"github.com/Papilio-Labs/papilio-project-template/transports"
	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and print the frames of one palette cycle",
	Long:  "Validate the bus configuration against a simulated driver and print every frame the LED cycle would send during one full pass of the palette. No hardware is touched.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		frames, err := dryRun(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		cmd.Printf("bus: sck=%d mosi=%d miso=%d cs=%d %d Hz mode %d\n",
			cfg.Bus.ClockPin, cfg.Bus.MOSIPin, cfg.Bus.MISOPin, cfg.Bus.SelectPin, cfg.Bus.ClockHz, cfg.Bus.Mode)
		for _, f := range frames {
			cmd.Printf("% X\n", f)
		}
		return nil
	},
}

// dryRun opens the configured bus on a mock driver and ticks the LED cycle once
// per interval until the palette wraps back to its first color.
func dryRun(ctx context.Context, cfg config.Config) ([][]byte, error) {
	driver := transports.NewMockDriver()
	bus, err := wishbone.NewBus(cfg.BusConfig(driver))
	if err != nil {
		return nil, err
	}
	defer bus.Close()

	con := console.New(io.Discard, cfg.ConsoleConfig())
	clock := &stepClock{}
	loop, err := buildLoop(cfg, con, wishbone.NewRGBLed(bus, bus.Select()), clock)
	if err != nil {
		return nil, err
	}

	palette, _ := cfg.Palette()
	for i := 0; i <= palette.Len(); i++ {
		loop.RunOnce(ctx)
		clock.now += cfg.IntervalMillis()
	}
	return driver.Link.Frames, nil
}

type stepClock struct {
	now uint32
}

func (c *stepClock) Millis() uint32 { return c.now }
