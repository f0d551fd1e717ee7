package wishbone

import "fmt"

// ChipSelect identifies a peripheral by the pin wired to its select input.
type ChipSelect int

// Defaults for the ESP32-S3 FSPI pins on the Papilio RetroCade.
const (
	DefaultClockPin   = 12
	DefaultMOSIPin    = 11
	DefaultMISOPin    = 13
	DefaultSelectPin  = 10
	DefaultClockHz    = 8_000_000
	DefaultMaxPin     = 48
	DefaultMaxClockHz = 80_000_000
)

// BusConfig holds configuration for opening a Bus.
type BusConfig struct {
	// Driver configures the hardware. Required.
	Driver Driver

	ClockPin  int
	MOSIPin   int
	MISOPin   int
	SelectPin int

	// ClockHz is the SPI clock frequency. Default is 8 MHz.
	ClockHz uint32

	// Mode is the SPI clock polarity/phase (0-3).
	Mode uint8

	// SelectActiveHigh inverts the select polarity. Select is active low by default.
	SelectActiveHigh bool

	// ReservedPins may not be used by the bus (flash, USB, strapping pins).
	ReservedPins []int

	// MaxPin is the highest valid pin number. Default is 48.
	MaxPin int

	// MaxClockHz bounds ClockHz. Default is 80 MHz.
	MaxClockHz uint32
}

// Validate checks the pin and clock settings and returns a *ConfigurationError
// describing the first problem found.
func (cfg BusConfig) Validate() error {
	cfg = cfg.withDefaults()
	if cfg.Driver == nil {
		return &ConfigurationError{Field: "driver", Err: ErrNoDriver}
	}

	pins := []struct {
		field string
		pin   int
	}{
		{"clock_pin", cfg.ClockPin},
		{"mosi_pin", cfg.MOSIPin},
		{"miso_pin", cfg.MISOPin},
		{"select_pin", cfg.SelectPin},
	}

	reserved := make(map[int]bool, len(cfg.ReservedPins))
	for _, p := range cfg.ReservedPins {
		reserved[p] = true
	}

	used := make(map[int]string, len(pins))
	for _, p := range pins {
		if p.pin < 0 || p.pin > cfg.MaxPin {
			return &ConfigurationError{
				Field: p.field,
				Value: p.pin,
				Err:   fmt.Errorf("%w (valid range: 0-%d)", ErrInvalidPin, cfg.MaxPin),
			}
		}
		if reserved[p.pin] {
			return &ConfigurationError{Field: p.field, Value: p.pin, Err: ErrReservedPin}
		}
		if other, ok := used[p.pin]; ok {
			return &ConfigurationError{
				Field: p.field,
				Value: p.pin,
				Err:   fmt.Errorf("%w (also %s)", ErrPinConflict, other),
			}
		}
		used[p.pin] = p.field
	}

	if cfg.ClockHz == 0 || cfg.ClockHz > cfg.MaxClockHz {
		return &ConfigurationError{
			Field: "clock_hz",
			Value: int(cfg.ClockHz),
			Err:   fmt.Errorf("%w (valid range: 1-%d)", ErrInvalidClock, cfg.MaxClockHz),
		}
	}

	if cfg.Mode > 3 {
		return &ConfigurationError{Field: "mode", Value: int(cfg.Mode), Err: ErrInvalidMode}
	}

	return nil
}

func (cfg BusConfig) withDefaults() BusConfig {
	if cfg.MaxPin == 0 {
		cfg.MaxPin = DefaultMaxPin
	}
	if cfg.MaxClockHz == 0 {
		cfg.MaxClockHz = DefaultMaxClockHz
	}
	return cfg
}

func (cfg BusConfig) spiConfig() SPIConfig {
	return SPIConfig{
		ClockPin: cfg.ClockPin,
		MOSIPin:  cfg.MOSIPin,
		MISOPin:  cfg.MISOPin,
		ClockHz:  cfg.ClockHz,
		Mode:     cfg.Mode,
	}
}
