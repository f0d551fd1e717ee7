package wishbone

import (
	"context"
	"sync"

	"tinygo.org/x/drivers"
)

// Bus owns the SPI link to the FPGA bridge. All transactions are serialized
// through it, so exactly one peripheral is selected at any time.
type Bus struct {
	cfg BusConfig

	mu      sync.Mutex
	link    drivers.SPI
	selects map[ChipSelect]Pin
	open    bool
}

// NewBus validates cfg and opens the bus.
func NewBus(cfg BusConfig) (*Bus, error) {
	b := &Bus{cfg: cfg.withDefaults()}
	if err := b.Open(); err != nil {
		return nil, err
	}
	return b, nil
}

// Open configures the physical lines. It fails with ErrAlreadyOpen unless the
// bus was closed first.
func (b *Bus) Open() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.open {
		return ErrAlreadyOpen
	}

	if err := b.cfg.Validate(); err != nil {
		return err
	}

	link, err := b.cfg.Driver.ConfigureSPI(b.cfg.spiConfig())
	if err != nil {
		return &ConfigurationError{Field: "clock_hz", Value: int(b.cfg.ClockHz), Err: err}
	}

	pin, err := b.cfg.Driver.ConfigureOutput(b.cfg.SelectPin)
	if err != nil {
		b.cfg.Driver.Close()
		return &ConfigurationError{Field: "select_pin", Value: b.cfg.SelectPin, Err: err}
	}
	b.deassert(pin)

	b.link = link
	b.selects = map[ChipSelect]Pin{ChipSelect(b.cfg.SelectPin): pin}
	b.open = true
	return nil
}

// Close releases the driver. Closing a closed bus is a no-op.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil
	}
	b.open = false

	for _, pin := range b.selects {
		b.deassert(pin)
	}
	b.link = nil
	b.selects = nil

	return b.cfg.Driver.Close()
}

// IsOpen reports whether the bus accepts transactions.
func (b *Bus) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Select returns the configured chip select line.
func (b *Bus) Select() ChipSelect {
	return ChipSelect(b.cfg.SelectPin)
}

// Config returns the configuration the bus was opened with, defaults applied.
func (b *Bus) Config() BusConfig {
	return b.cfg
}

// Transact asserts line, exchanges len(out) bytes and deasserts line on every
// exit path. The returned slice has the same length as out.
func (b *Bus) Transact(ctx context.Context, line ChipSelect, out []byte) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil, ErrBusClosed
	}

	return b.transactLocked(ctx, "transact", line, out)
}

// WriteRegister writes one byte to a Wishbone register behind line.
func (b *Bus) WriteRegister(ctx context.Context, line ChipSelect, addr uint16, value byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return ErrBusClosed
	}

	_, err := b.transactLocked(ctx, "write_reg", line, WriteRegFrame(addr, value).Bytes())
	return err
}

// ReadRegister reads one byte from a Wishbone register behind line.
func (b *Bus) ReadRegister(ctx context.Context, line ChipSelect, addr uint16) (byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return 0, ErrBusClosed
	}

	in, err := b.transactLocked(ctx, "read_reg", line, ReadRegFrame(addr).Bytes())
	if err != nil {
		return 0, err
	}
	return in[FrameSize-1], nil
}

// Internal methods

func (b *Bus) transactLocked(ctx context.Context, op string, line ChipSelect, out []byte) ([]byte, error) {
	pin, ok := b.selects[line]
	if !ok {
		return nil, &TransferError{Op: op, Line: line, Err: ErrUnknownSelect}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	in := make([]byte, len(out))

	b.assert(pin)
	defer b.deassert(pin)

	if err := b.link.Tx(out, in); err != nil {
		return nil, &TransferError{Op: op, Line: line, Err: err}
	}

	return in, nil
}

func (b *Bus) assert(pin Pin) {
	if b.cfg.SelectActiveHigh {
		pin.High()
	} else {
		pin.Low()
	}
}

func (b *Bus) deassert(pin Pin) {
	if b.cfg.SelectActiveHigh {
		pin.Low()
	} else {
		pin.High()
	}
}
