// Package console is the text console of the board: start-up banner, periodic
// status line and log output.
package console

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// Config holds configuration for opening a Console.
type Config struct {
	// Port is the serial port path (e.g., "/dev/ttyACM0"). Empty means stdout.
	Port string

	// BaudRate is the serial speed. Default is 115200.
	BaudRate int

	// StatusInterval is the period of the status line. Default is 1 second.
	StatusInterval time.Duration
}

// Console writes text to stdout or a serial port.
type Console struct {
	w       io.Writer
	closer  io.Closer
	cfg     Config
	cliMode atomic.Bool
}

// Open opens the console described by cfg.
func Open(cfg Config) (*Console, error) {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 115200
	}
	if cfg.StatusInterval == 0 {
		cfg.StatusInterval = time.Second
	}

	if cfg.Port == "" {
		return &Console{w: os.Stdout, cfg: cfg}, nil
	}

	p, err := openPort(cfg.Port, cfg.BaudRate)
	if err != nil {
		return nil, err
	}
	return &Console{w: p, closer: p, cfg: cfg}, nil
}

// New wraps an existing writer.
func New(w io.Writer, cfg Config) *Console {
	if cfg.StatusInterval == 0 {
		cfg.StatusInterval = time.Second
	}
	return &Console{w: w, cfg: cfg}
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer {
	return c.w
}

// Printf writes formatted text.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// Println writes a line.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.w, args...)
}

// SetCLIMode marks whether an interactive command session owns the console.
// The status line is suppressed while it does. The PapilioOS command shell calls
// it when a session starts and ends; nothing in this module starts one.
func (c *Console) SetCLIMode(on bool) {
	c.cliMode.Store(on)
}

// InCLIMode reports whether an interactive command session owns the console.
func (c *Console) InCLIMode() bool {
	return c.cliMode.Load()
}

// Close closes the serial port, if any.
func (c *Console) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Banner prints the start-up header followed by one line per note.
func (c *Console) Banner(title string, notes ...string) {
	c.Println()
	c.Println()
	c.Println("===========================================")
	c.Printf("  %s\n", title)
	c.Println("===========================================")
	c.Println()
	if len(notes) == 0 {
		return
	}
	for _, n := range notes {
		c.Println(n)
	}
	c.Println()
}
