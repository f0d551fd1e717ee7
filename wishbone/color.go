package wishbone

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 24-bit RGB value laid out as 0x00RRGGBB.
// Every 24-bit pattern is a valid color.
type Color uint32

// Common colors.
const (
	Black   Color = 0x000000
	White   Color = 0xFFFFFF
	Red     Color = 0xFF0000
	Green   Color = 0x00FF00
	Blue    Color = 0x0000FF
	Yellow  Color = 0xFFFF00
	Cyan    Color = 0x00FFFF
	Magenta Color = 0xFF00FF
	Orange  Color = 0xFF8000
	Purple  Color = 0x8000FF
)

var namedColors = map[string]Color{
	"black":   Black,
	"off":     Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
	"orange":  Orange,
	"purple":  Purple,
}

// RGB packs three channels into a Color.
func RGB(r, g, b byte) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() byte { return byte(c >> 16) }

// G returns the green channel.
func (c Color) G() byte { return byte(c >> 8) }

// B returns the blue channel.
func (c Color) B() byte { return byte(c) }

// String formats the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// ParseColor accepts a named color ("red", "off", ...) or a hex value written as
// "#rrggbb", "0xrrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(name, "#"), "0x")
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return Color(v), nil
}
