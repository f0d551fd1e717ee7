package wishbone

import "context"

// ColorSetter is anything that can show an RGB color.
type ColorSetter interface {
	SetColor(ctx context.Context, c Color) error
}

// RGBLed is an RGB indicator on the Wishbone bus.
// The bus is shared, not owned: close the bus only after the LED is no longer used.
type RGBLed struct {
	bus  *Bus
	line ChipSelect
	last Color
}

// NewRGBLed creates an LED handle addressed through line.
func NewRGBLed(bus *Bus, line ChipSelect) *RGBLed {
	return &RGBLed{
		bus:  bus,
		line: line,
	}
}

// Line returns the select line of the LED.
func (l *RGBLed) Line() ChipSelect {
	return l.line
}

// SetColor sends one set-color frame. The reply is discarded.
func (l *RGBLed) SetColor(ctx context.Context, c Color) error {
	if _, err := l.bus.Transact(ctx, l.line, ColorFrame(c).Bytes()); err != nil {
		return &PeripheralWriteError{Color: c, Err: err}
	}
	l.last = c
	return nil
}

// Off turns the LED off.
func (l *RGBLed) Off(ctx context.Context) error {
	return l.SetColor(ctx, Black)
}

// Color returns the last color written successfully.
func (l *RGBLed) Color() Color {
	return l.last
}
