//go:build baremetal

package transports

import (
	"machine"

	"tinygo.org/x/drivers"

	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

// MCU implements wishbone.Driver on the microcontroller's hardware SPI peripheral.
type MCU struct{}

// NewMCU returns the hardware driver.
func NewMCU() *MCU {
	return &MCU{}
}

func (d *MCU) ConfigureSPI(cfg wishbone.SPIConfig) (drivers.SPI, error) {
	spi := machine.SPI0
	err := spi.Configure(machine.SPIConfig{
		Frequency: cfg.ClockHz,
		SCK:       machine.Pin(cfg.ClockPin),
		SDO:       machine.Pin(cfg.MOSIPin),
		SDI:       machine.Pin(cfg.MISOPin),
		Mode:      cfg.Mode,
	})
	if err != nil {
		return nil, err
	}
	return spi, nil
}

func (d *MCU) ConfigureOutput(pin int) (wishbone.Pin, error) {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return p, nil
}

func (d *MCU) Close() error {
	return nil
}
