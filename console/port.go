package console

// port is either an OS serial port or the UART/USB console on a microcontroller.
type port interface {
	Write(p []byte) (n int, err error)
	Close() error
}
