//go:build !linux && !baremetal

package transports

import (
	"errors"

	"tinygo.org/x/drivers"

	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

var errNoSPIDev = errors.New("spidev is only available on linux")

// SPIDev is unavailable on this platform; every call fails.
type SPIDev struct{}

func NewSPIDev(device string) (*SPIDev, error) {
	return nil, errNoSPIDev
}

func (d *SPIDev) Device() string { return "" }

func (d *SPIDev) ConfigureSPI(cfg wishbone.SPIConfig) (drivers.SPI, error) {
	return nil, errNoSPIDev
}

func (d *SPIDev) ConfigureOutput(pin int) (wishbone.Pin, error) {
	return nil, errNoSPIDev
}

func (d *SPIDev) Close() error { return nil }
