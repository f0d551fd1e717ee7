package wishbone

import (
	"context"

	"golang.org/x/exp/constraints"
)

// CycleState is the state of a Cycler.
type CycleState int

const (
	Idle    CycleState = iota // No reference timestamp yet
	Running                   // Steady cyclic operation
)

func (s CycleState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Cycler steps a ColorSetter through a palette, one color per interval.
// T is the width of the caller's tick counter; elapsed time is computed modulo
// its range so counter rollover never skips or doubles a transition.
//
// Tick must be called repeatedly from a polling loop. It never sleeps.
type Cycler[T constraints.Unsigned] struct {
	led      ColorSetter
	palette  Palette
	interval T

	state CycleState
	index int
	last  T
}

// NewCycler creates a cycler starting at the first palette entry.
func NewCycler[T constraints.Unsigned](led ColorSetter, palette Palette, interval T) (*Cycler[T], error) {
	if palette.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	if interval == 0 {
		return nil, ErrInvalidInterval
	}
	return &Cycler[T]{
		led:      led,
		palette:  palette,
		interval: interval,
	}, nil
}

// Tick advances the cycle if an interval has elapsed since the last transition.
// The first tick writes the initial color and establishes the time reference.
// A failed write leaves the cycler unchanged.
func (c *Cycler[T]) Tick(ctx context.Context, now T) error {
	if c.state == Idle {
		if err := c.led.SetColor(ctx, c.palette.At(c.index)); err != nil {
			return err
		}
		c.last = now
		c.state = Running
		return nil
	}

	if !Due(c.last, now, c.interval) {
		return nil
	}

	next := c.palette.Next(c.index)
	if err := c.led.SetColor(ctx, c.palette.At(next)); err != nil {
		return err
	}
	c.index = next
	c.last = now
	return nil
}

// State returns the current state.
func (c *Cycler[T]) State() CycleState {
	return c.state
}

// Index returns the palette index of the color currently shown.
func (c *Cycler[T]) Index() int {
	return c.index
}

// Current returns the color currently shown.
func (c *Cycler[T]) Current() Color {
	return c.palette.At(c.index)
}

// LastTransition returns the tick of the last color change.
func (c *Cycler[T]) LastTransition() T {
	return c.last
}
