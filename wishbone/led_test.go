package wishbone_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

func TestRGBLed_SetColor(t *testing.T) {
	bus, driver := newTestBus(t)
	led := wishbone.NewRGBLed(bus, bus.Select())
	if led.Line() != testSelect {
		t.Errorf("Line: got %d, want %d", led.Line(), testSelect)
	}

	if err := led.SetColor(context.Background(), wishbone.Orange); err != nil {
		t.Fatalf("SetColor failed: %v", err)
	}

	expected := []byte{wishbone.OpSetColor, 0xFF, 0x80, 0x00}
	if len(driver.Link.Frames) != 1 || !bytes.Equal(driver.Link.Frames[0], expected) {
		t.Errorf("frames: got %X, want [%X]", driver.Link.Frames, expected)
	}
	if led.Color() != wishbone.Orange {
		t.Errorf("Color: got %s, want %s", led.Color(), wishbone.Orange)
	}
}

func TestRGBLed_Off(t *testing.T) {
	bus, driver := newTestBus(t)
	led := wishbone.NewRGBLed(bus, bus.Select())

	if err := led.Off(context.Background()); err != nil {
		t.Fatalf("Off failed: %v", err)
	}

	expected := []byte{wishbone.OpSetColor, 0x00, 0x00, 0x00}
	if !bytes.Equal(driver.Link.Frames[0], expected) {
		t.Errorf("frame: got %X, want %X", driver.Link.Frames[0], expected)
	}
}

func TestRGBLed_WriteError(t *testing.T) {
	bus, driver := newTestBus(t)
	led := wishbone.NewRGBLed(bus, bus.Select())
	ctx := context.Background()

	led.SetColor(ctx, wishbone.Red)

	linkErr := errors.New("link down")
	driver.Link.TxErr = linkErr

	err := led.SetColor(ctx, wishbone.Blue)
	if !errors.Is(err, linkErr) {
		t.Fatalf("got %v, want link error", err)
	}

	writeErr, ok := wishbone.GetPeripheralWriteError(err)
	if !ok {
		t.Fatalf("expected PeripheralWriteError, got %T", err)
	}
	if writeErr.Color != wishbone.Blue {
		t.Errorf("error color: got %s, want %s", writeErr.Color, wishbone.Blue)
	}

	var transferErr *wishbone.TransferError
	if !errors.As(err, &transferErr) {
		t.Errorf("expected TransferError in chain")
	}

	if led.Color() != wishbone.Red {
		t.Errorf("Color after failure: got %s, want %s", led.Color(), wishbone.Red)
	}
}

func TestRGBLed_ClosedBus(t *testing.T) {
	bus, _ := newTestBus(t)
	led := wishbone.NewRGBLed(bus, bus.Select())
	bus.Close()

	err := led.SetColor(context.Background(), wishbone.Green)
	if !errors.Is(err, wishbone.ErrBusClosed) {
		t.Errorf("got %v, want ErrBusClosed", err)
	}
}

func TestCycler_NoTransactionBeforeInterval(t *testing.T) {
	bus, driver := newTestBus(t)
	led := wishbone.NewRGBLed(bus, bus.Select())

	palette, _ := wishbone.NewPalette(wishbone.Red, wishbone.Green, wishbone.Blue)
	c, err := wishbone.NewCycler[uint32](led, palette, 2000)
	if err != nil {
		t.Fatalf("NewCycler failed: %v", err)
	}

	ctx := context.Background()
	c.Tick(ctx, 0)
	c.Tick(ctx, 1999)

	if len(driver.Link.Frames) != 1 {
		t.Fatalf("frames: got %d, want 1", len(driver.Link.Frames))
	}

	c.Tick(ctx, 2000)
	if len(driver.Link.Frames) != 2 {
		t.Fatalf("frames: got %d, want 2", len(driver.Link.Frames))
	}
	color, err := wishbone.DecodeColor(mustParse(t, driver.Link.Frames[1]))
	if err != nil {
		t.Fatalf("DecodeColor failed: %v", err)
	}
	if color != wishbone.Green {
		t.Errorf("second frame color: got %s, want %s", color, wishbone.Green)
	}
}

func mustParse(t *testing.T, data []byte) wishbone.Frame {
	t.Helper()
	f, err := wishbone.ParseFrame(data)
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	return f
}
