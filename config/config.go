// Package config loads the board configuration file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Papilio-Labs/papilio-project-template/console"
	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

// Config is the top-level board configuration.
type Config struct {
	Bus     Bus     `yaml:"bus"`
	LED     LED     `yaml:"led"`
	Console Console `yaml:"console"`
	Loop    Loop    `yaml:"loop"`
	Log     Log     `yaml:"log"`
}

// Bus holds the SPI line assignments.
type Bus struct {
	// Device is the spidev node used on a Linux host, e.g. /dev/spidev1.0.
	Device string `yaml:"device"`

	ClockPin         int    `yaml:"clock_pin"`
	MOSIPin          int    `yaml:"mosi_pin"`
	MISOPin          int    `yaml:"miso_pin"`
	SelectPin        int    `yaml:"select_pin"`
	ClockHz          uint32 `yaml:"clock_hz"`
	Mode             uint8  `yaml:"mode"`
	SelectActiveHigh bool   `yaml:"select_active_high"`
	ReservedPins     []int  `yaml:"reserved_pins"`
	MaxPin           int    `yaml:"max_pin"`
	MaxClockHz       uint32 `yaml:"max_clock_hz"`
}

// LED holds the color cycle settings.
type LED struct {
	Palette  []string      `yaml:"palette"`
	Interval time.Duration `yaml:"interval"`
}

// Console holds the text console settings.
type Console struct {
	Port           string        `yaml:"port"`
	BaudRate       int           `yaml:"baud_rate"`
	StatusInterval time.Duration `yaml:"status_interval"`
}

// Loop holds the scheduler settings.
type Loop struct {
	Period time.Duration `yaml:"period"`
}

// Log holds the logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the configuration of a Papilio RetroCade (ESP32-S3 + GW2A-18).
func Default() Config {
	return Config{
		Bus: Bus{
			Device:    "/dev/spidev1.0",
			ClockPin:  wishbone.DefaultClockPin,
			MOSIPin:   wishbone.DefaultMOSIPin,
			MISOPin:   wishbone.DefaultMISOPin,
			SelectPin: wishbone.DefaultSelectPin,
			ClockHz:   wishbone.DefaultClockHz,
			// USB D-/D+ and the octal flash/PSRAM lines.
			ReservedPins: []int{19, 20, 26, 27, 28, 29, 30, 31, 32},
			MaxPin:       wishbone.DefaultMaxPin,
			MaxClockHz:   wishbone.DefaultMaxClockHz,
		},
		LED: LED{
			Palette:  []string{"red", "green", "blue"},
			Interval: 2 * time.Second,
		},
		Console: Console{
			BaudRate:       115200,
			StatusInterval: time.Second,
		},
		Loop: Loop{
			Period: 10 * time.Millisecond,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings that do not need hardware.
func (c Config) Validate() error {
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("led.palette: %w", err)
	}
	if err := validMillis(c.LED.Interval); err != nil {
		return fmt.Errorf("led.interval: %w", err)
	}
	if c.Loop.Period <= 0 {
		return errors.New("loop.period must be positive")
	}
	if err := validMillis(c.Console.StatusInterval); err != nil {
		return fmt.Errorf("console.status_interval: %w", err)
	}
	return nil
}

// maxMillis is the longest interval a 32-bit millisecond counter can measure.
const maxMillis = time.Duration(math.MaxUint32) * time.Millisecond

func validMillis(d time.Duration) error {
	if d < time.Millisecond || d > maxMillis {
		return fmt.Errorf("%w (%v, valid range: 1ms-%v)", wishbone.ErrInvalidInterval, d, maxMillis)
	}
	return nil
}

// Palette parses the LED palette.
func (c Config) Palette() (wishbone.Palette, error) {
	return wishbone.ParsePalette(c.LED.Palette)
}

// IntervalMillis returns the LED interval in clock ticks.
func (c Config) IntervalMillis() uint32 {
	return uint32(c.LED.Interval.Milliseconds())
}

// BusConfig converts the bus section for wishbone.NewBus.
func (c Config) BusConfig(driver wishbone.Driver) wishbone.BusConfig {
	return wishbone.BusConfig{
		Driver:           driver,
		ClockPin:         c.Bus.ClockPin,
		MOSIPin:          c.Bus.MOSIPin,
		MISOPin:          c.Bus.MISOPin,
		SelectPin:        c.Bus.SelectPin,
		ClockHz:          c.Bus.ClockHz,
		Mode:             c.Bus.Mode,
		SelectActiveHigh: c.Bus.SelectActiveHigh,
		ReservedPins:     c.Bus.ReservedPins,
		MaxPin:           c.Bus.MaxPin,
		MaxClockHz:       c.Bus.MaxClockHz,
	}
}

// ConsoleConfig converts the console section for console.Open.
func (c Config) ConsoleConfig() console.Config {
	return console.Config{
		Port:           c.Console.Port,
		BaudRate:       c.Console.BaudRate,
		StatusInterval: c.Console.StatusInterval,
	}
}
