package wishbone

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Clock is a monotonic millisecond counter that wraps at 2^32.
type Clock interface {
	Millis() uint32
}

// SystemClock counts milliseconds since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns the elapsed milliseconds, truncated to 32 bits.
func (c *SystemClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// Elapsed returns now-since using modular arithmetic, so a counter that rolled
// over between the two readings still yields the true distance.
func Elapsed[T constraints.Unsigned](since, now T) T {
	return now - since
}

// Due reports whether at least interval has passed between since and now.
func Due[T constraints.Unsigned](since, now, interval T) bool {
	return Elapsed(since, now) >= interval
}
