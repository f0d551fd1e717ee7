package transports

import (
	"fmt"

	"tinygo.org/x/drivers"

	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

// MockLink implements drivers.SPI for testing.
type MockLink struct {
	// Frames records every buffer passed to Tx, one entry per call.
	Frames [][]byte
	TxErr  error

	// PanicMsg makes Tx panic, simulating a fault in the middle of a transfer.
	PanicMsg string

	// TxFunc allows custom exchange behavior for complex tests
	TxFunc func(w, r []byte) error

	// OnTx is called at the start of every Tx, while select is asserted.
	OnTx func()
}

var _ drivers.SPI = (*MockLink)(nil)

func (m *MockLink) Tx(w, r []byte) error {
	if m.OnTx != nil {
		m.OnTx()
	}
	frame := make([]byte, len(w))
	copy(frame, w)
	m.Frames = append(m.Frames, frame)

	if m.PanicMsg != "" {
		panic(m.PanicMsg)
	}
	if m.TxFunc != nil {
		return m.TxFunc(w, r)
	}
	if m.TxErr != nil {
		return m.TxErr
	}
	return nil
}

func (m *MockLink) Transfer(b byte) (byte, error) {
	r := []byte{0}
	err := m.Tx([]byte{b}, r)
	return r[0], err
}

// MockPin records the level of a digital output.
type MockPin struct {
	Number  int
	Level   bool
	History []bool
}

func (p *MockPin) High() {
	p.Level = true
	p.History = append(p.History, true)
}

func (p *MockPin) Low() {
	p.Level = false
	p.History = append(p.History, false)
}

// MockDriver implements wishbone.Driver for testing.
type MockDriver struct {
	Link *MockLink
	Pins map[int]*MockPin

	SPIConfig   wishbone.SPIConfig
	ConfigErr   error
	UnavailPins map[int]bool
	Closed      bool
	Opens       int
}

// NewMockDriver returns a driver with an empty link.
func NewMockDriver() *MockDriver {
	return &MockDriver{
		Link: &MockLink{},
		Pins: make(map[int]*MockPin),
	}
}

func (d *MockDriver) ConfigureSPI(cfg wishbone.SPIConfig) (drivers.SPI, error) {
	if d.ConfigErr != nil {
		return nil, d.ConfigErr
	}
	d.SPIConfig = cfg
	d.Closed = false
	d.Opens++
	return d.Link, nil
}

func (d *MockDriver) ConfigureOutput(pin int) (wishbone.Pin, error) {
	if d.UnavailPins[pin] {
		return nil, fmt.Errorf("pin %d unavailable", pin)
	}
	p, ok := d.Pins[pin]
	if !ok {
		p = &MockPin{Number: pin}
		d.Pins[pin] = p
	}
	return p, nil
}

func (d *MockDriver) Close() error {
	d.Closed = true
	return nil
}
