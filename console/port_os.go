//go:build !baremetal

package console

import (
	"fmt"

	"go.bug.st/serial"
)

func openPort(name string, baud int) (port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open port %s: %w", name, err)
	}

	return p, nil
}
