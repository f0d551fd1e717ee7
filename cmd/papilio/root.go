//go:build !baremetal

package main

import (
	"fmt"
	"os"

	logxi "github.com/mgutz/logxi/v1"
	"github.com/spf13/cobra"

	"github.com/Papilio-Labs/papilio-project-template/config"
	"github.com/Papilio-Labs/papilio-project-template/console"
	"github.com/Papilio-Labs/papilio-project-template/transports"
	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

var (
	rootOpts = struct {
		config  string
		device  string
		verbose bool
	}{}

	logger logxi.Logger = logxi.NullLog

	rootCmd = &cobra.Command{
		Use:           "papilio",
		Short:         "Drive Wishbone peripherals on a Papilio FPGA over SPI",
		Long:          "papilio opens the SPI link to the FPGA Wishbone bridge and drives the RGB LED peripheral. Log levels can also be set with the LOGXI environment variable.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := ""
			if rootOpts.verbose {
				level = "debug"
			}
			logger = console.NewLogger(os.Stderr, "papilio", level)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.config, "config", "c", "", "YAML board configuration file")
	rootCmd.PersistentFlags().StringVarP(&rootOpts.device, "device", "d", "", "spidev node, overrides bus.device")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd, setCmd, peekCmd, pokeCmd, checkCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(rootOpts.config)
	if err != nil {
		return cfg, err
	}
	if rootOpts.device != "" {
		cfg.Bus.Device = rootOpts.device
	}
	if cfg.Log.Level != "" && !rootOpts.verbose {
		logger = console.NewLogger(os.Stderr, "papilio", cfg.Log.Level)
	}
	return cfg, nil
}

func openBus(cfg config.Config) (*wishbone.Bus, error) {
	driver, err := transports.NewSPIDev(cfg.Bus.Device)
	if err != nil {
		return nil, &wishbone.ConfigurationError{Field: "device", Err: err}
	}

	bus, err := wishbone.NewBus(cfg.BusConfig(driver))
	if err != nil {
		return nil, err
	}

	bc := bus.Config()
	logger.Debug("bus open",
		"device", driver.Device(),
		"sck", bc.ClockPin,
		"mosi", bc.MOSIPin,
		"miso", bc.MISOPin,
		"cs", bc.SelectPin,
		"hz", bc.ClockHz,
		"mode", bc.Mode)
	return bus, nil
}

func withBus(fn func(cfg config.Config, bus *wishbone.Bus) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bus, err := openBus(cfg)
	if err != nil {
		return fmt.Errorf("bus init failed: %w", err)
	}
	defer bus.Close()
	return fn(cfg, bus)
}
