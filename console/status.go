package console

import (
	"context"

	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

// Status prints "Running... [Ns]" once per interval while the console is not in
// CLI mode. It is a wishbone.Task.
type Status struct {
	con      *Console
	interval uint32
	last     uint32
	started  bool
}

// NewStatus creates the status task for con.
func (c *Console) NewStatus() *Status {
	return &Status{
		con:      c,
		interval: uint32(c.cfg.StatusInterval.Milliseconds()),
	}
}

// Tick prints the status line once an interval has passed. The first tick only
// sets the time reference.
func (s *Status) Tick(ctx context.Context, now uint32) error {
	if !s.started {
		s.started = true
		s.last = now
		return nil
	}
	if s.con.InCLIMode() || !wishbone.Due(s.last, now, s.interval) {
		return nil
	}
	s.last = now
	s.con.Printf("Running... [%ds]\n", now/1000)
	return nil
}
