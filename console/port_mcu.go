//go:build baremetal

package console

import "machine"

type mcuPort struct {
	machine.Serialer
}

// The name is ignored: the board console is always machine.Serial.
func openPort(name string, baud int) (port, error) {
	return mcuPort{machine.Serial}, nil
}

func (mcuPort) Close() error {
	return nil
}
