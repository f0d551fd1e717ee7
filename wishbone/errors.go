package wishbone

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrBusClosed     = errors.New("bus is closed")
	ErrAlreadyOpen   = errors.New("bus is already open")
	ErrUnknownSelect = errors.New("unknown chip select line")
	ErrShortTransfer = errors.New("short transfer")

	ErrNoDriver     = errors.New("no bus driver")
	ErrInvalidPin   = errors.New("pin out of range")
	ErrPinConflict  = errors.New("pin assigned twice")
	ErrReservedPin  = errors.New("pin is reserved")
	ErrInvalidClock = errors.New("invalid clock frequency")
	ErrInvalidMode  = errors.New("invalid SPI mode")

	ErrEmptyPalette    = errors.New("palette is empty")
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrUnknownColor    = errors.New("unknown color")
)

// ConfigurationError reports a bus setting that cannot be used. It is fatal at
// start-up: there is no degraded mode for a bus the whole system depends on.
type ConfigurationError struct {
	Field string // Setting that failed (e.g., "clock_pin", "clock_hz")
	Value int    // Offending value
	Err   error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("bus configuration %s=%d: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TransferError represents a failed exchange on the bus.
type TransferError struct {
	Op   string     // Operation that failed (e.g., "transact", "write_reg")
	Line ChipSelect // Select line that was addressed
	Err  error      // Underlying error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("bus %s on select %d: %v", e.Op, e.Line, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// PeripheralWriteError represents a color write that did not reach the peripheral.
type PeripheralWriteError struct {
	Color Color
	Err   error
}

func (e *PeripheralWriteError) Error() string {
	return fmt.Sprintf("set color %s failed: %v", e.Color, e.Err)
}

func (e *PeripheralWriteError) Unwrap() error {
	return e.Err
}

// IsConfigurationError returns true if err carries a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// GetPeripheralWriteError extracts a PeripheralWriteError from an error chain, if present.
func GetPeripheralWriteError(err error) (*PeripheralWriteError, bool) {
	var writeErr *PeripheralWriteError
	if errors.As(err, &writeErr) {
		return writeErr, true
	}
	return nil, false
}
