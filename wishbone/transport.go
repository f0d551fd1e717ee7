package wishbone

import "tinygo.org/x/drivers"

// Pin is a digital output. machine.Pin satisfies it on TinyGo targets.
type Pin interface {
	High()
	Low()
}

// Driver configures the physical lines of a bus. Implementations live in the
// transports package; this abstraction allows for testing with mock implementations.
type Driver interface {
	// ConfigureSPI sets up the clock and data lines and returns the link used for
	// full-duplex byte exchange.
	ConfigureSPI(cfg SPIConfig) (drivers.SPI, error)

	// ConfigureOutput sets up a pin as a digital output.
	ConfigureOutput(pin int) (Pin, error)

	// Close releases every resource acquired by the driver.
	Close() error
}

// SPIConfig is the link part of a BusConfig handed to a Driver.
type SPIConfig struct {
	ClockPin int
	MOSIPin  int
	MISOPin  int
	ClockHz  uint32
	Mode     uint8
}
