//go:build !baremetal

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Papilio-Labs/papilio-project-template/config"
	"github.com/Papilio-Labs/papilio-project-template/console"
	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Cycle the RGB LED through the palette",
	Long:  "Open the console and the bus, then run the cooperative loop: status line first, LED cycle second, until interrupted.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		con, err := console.Open(cfg.ConsoleConfig())
		if err != nil {
			return err
		}
		defer con.Close()

		con.Banner("Papilio RetroCade - Wishbone System",
			"Ready to add Papilio Wishbone peripherals!",
			"Pins, palette and timing are read from the board file",
			"and new peripherals are registered as loop tasks.")

		bus, err := openBus(cfg)
		if err != nil {
			// Report and stop before the loop.
			con.Printf("Bus initialization failed: %v\n", err)
			logger.Error("bus init failed", "err", err)
			return err
		}
		defer bus.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		led := wishbone.NewRGBLed(bus, bus.Select())
		loop, err := buildLoop(cfg, con, led, wishbone.NewSystemClock())
		if err != nil {
			return err
		}

		con.Println("Setup complete!")
		con.Println()
		logger.Info("loop started", "period", cfg.Loop.Period, "interval", cfg.LED.Interval, "led_cs", led.Line())

		err = loop.Run(ctx)
		if offErr := led.Off(context.Background()); offErr != nil {
			logger.Warn("led off failed", "err", offErr)
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

// buildLoop registers the status line and the LED cycle in loop order.
func buildLoop(cfg config.Config, con *console.Console, led wishbone.ColorSetter, clock wishbone.Clock) (*wishbone.Loop, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	cycler, err := wishbone.NewCycler(led, palette, cfg.IntervalMillis())
	if err != nil {
		return nil, err
	}

	loop := wishbone.NewLoop(clock, cfg.Loop.Period, logger)
	loop.Add("status", con.NewStatus())
	loop.Add("led", cycler)
	return loop, nil
}
