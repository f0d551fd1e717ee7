//go:build !baremetal

package transports

import (
	"fmt"

	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

// exchange holds the equal-length buffers a full-duplex transfer needs.
// The kernel clocks max(len(w), len(r)) bytes: a short write is padded with
// zeros and a short read lands in scratch space.
type exchange struct {
	tx, rx []byte
	dst    []byte
}

func newExchange(w, r []byte) exchange {
	n := max(len(w), len(r))
	x := exchange{tx: w, rx: r, dst: r}
	if len(w) < n {
		x.tx = make([]byte, n)
		copy(x.tx, w)
	}
	if len(r) < n {
		x.rx = make([]byte, n)
	}
	return x
}

func (x exchange) len() int {
	return len(x.tx)
}

// finish checks the byte count reported by the driver and copies the reply
// into the caller's read buffer.
func (x exchange) finish(got int) error {
	if got != x.len() {
		return fmt.Errorf("%w: %d of %d bytes", wishbone.ErrShortTransfer, got, x.len())
	}
	if len(x.dst) < x.len() {
		copy(x.dst, x.rx)
	}
	return nil
}
