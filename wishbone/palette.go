package wishbone

import "fmt"

// Palette is a fixed, ordered, cyclic sequence of colors.
type Palette struct {
	colors []Color
}

// NewPalette copies colors into a palette. At least one color is required.
func NewPalette(colors ...Color) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	p := Palette{colors: make([]Color, len(colors))}
	copy(p.colors, colors)
	return p, nil
}

// ParsePalette builds a palette from color names or hex strings.
func ParsePalette(names []string) (Palette, error) {
	colors := make([]Color, 0, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return Palette{}, fmt.Errorf("palette entry %d: %w", i, err)
		}
		colors = append(colors, c)
	}
	return NewPalette(colors...)
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the color at index i, wrapping modulo the palette length.
func (p Palette) At(i int) Color {
	n := len(p.colors)
	return p.colors[((i%n)+n)%n]
}

// Next returns the index following i.
func (p Palette) Next(i int) int {
	return (i + 1) % len(p.colors)
}

// Colors returns a copy of the palette entries.
func (p Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}
