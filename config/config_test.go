package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Papilio-Labs/papilio-project-template/transports"
	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Bus.SelectPin != wishbone.DefaultSelectPin || cfg.Bus.ClockHz != wishbone.DefaultClockHz {
		t.Errorf("bus defaults: got %+v", cfg.Bus)
	}
	if cfg.IntervalMillis() != 2000 {
		t.Errorf("interval: got %d, want 2000", cfg.IntervalMillis())
	}
	if cfg.Console.BaudRate != 115200 || cfg.Loop.Period != 10*time.Millisecond {
		t.Errorf("console/loop defaults: got %+v %+v", cfg.Console, cfg.Loop)
	}

	p, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if p.Len() != 3 || p.At(0) != wishbone.Red || p.At(2) != wishbone.Blue {
		t.Errorf("palette: got %v", p.Colors())
	}
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
bus:
  select_pin: 5
  clock_hz: 1000000
  select_active_high: true
led:
  palette: ["#ff8000", cyan]
  interval: 500ms
loop:
  period: 5ms
log:
  level: debug
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Bus.SelectPin != 5 || cfg.Bus.ClockHz != 1_000_000 || !cfg.Bus.SelectActiveHigh {
		t.Errorf("bus: got %+v", cfg.Bus)
	}
	if cfg.Bus.ClockPin != wishbone.DefaultClockPin {
		t.Errorf("clock pin default lost: got %d", cfg.Bus.ClockPin)
	}
	if cfg.IntervalMillis() != 500 {
		t.Errorf("interval: got %d, want 500", cfg.IntervalMillis())
	}
	if cfg.Loop.Period != 5*time.Millisecond {
		t.Errorf("period: got %v, want 5ms", cfg.Loop.Period)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q", cfg.Log.Level)
	}

	p, _ := cfg.Palette()
	if p.Len() != 2 || p.At(0) != wishbone.Orange || p.At(1) != wishbone.Cyan {
		t.Errorf("palette: got %v", p.Colors())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown color", "led:\n  palette: [red, mauve]\n", wishbone.ErrUnknownColor},
		{"empty palette", "led:\n  palette: []\n", wishbone.ErrEmptyPalette},
		{"zero interval", "led:\n  interval: 0s\n", wishbone.ErrInvalidInterval},
		{"sub-millisecond interval", "led:\n  interval: 500us\n", wishbone.ErrInvalidInterval},
		{"interval past counter range", "led:\n  interval: 1200h\n", wishbone.ErrInvalidInterval},
		{"zero status interval", "console:\n  status_interval: 0s\n", wishbone.ErrInvalidInterval},
		{"sub-millisecond status interval", "console:\n  status_interval: 500us\n", wishbone.ErrInvalidInterval},
		{"status interval past counter range", "console:\n  status_interval: 1200h\n", wishbone.ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	cfg, err := Parse([]byte("led:\n  interval: 1193h\n"))
	if err != nil {
		t.Fatalf("interval within counter range rejected: %v", err)
	}
	if want := uint32(1193 * 3600 * 1000); cfg.IntervalMillis() != want {
		t.Errorf("interval: got %d, want %d", cfg.IntervalMillis(), want)
	}

	if _, err := Parse([]byte("bus: [")); err == nil {
		t.Error("expected YAML error")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Bus.Device != Default().Bus.Device {
		t.Errorf("device: got %q", cfg.Bus.Device)
	}

	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("bus:\n  device: /dev/spidev0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Bus.Device != "/dev/spidev0.1" {
		t.Errorf("device: got %q", cfg.Bus.Device)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBusConfig_Opens(t *testing.T) {
	cfg := Default()
	driver := transports.NewMockDriver()

	bus, err := wishbone.NewBus(cfg.BusConfig(driver))
	if err != nil {
		t.Fatalf("NewBus failed: %v", err)
	}
	defer bus.Close()

	if driver.SPIConfig.MOSIPin != wishbone.DefaultMOSIPin || driver.SPIConfig.MISOPin != wishbone.DefaultMISOPin {
		t.Errorf("spi config: got %+v", driver.SPIConfig)
	}
	if bus.Select() != wishbone.ChipSelect(wishbone.DefaultSelectPin) {
		t.Errorf("select: got %d", bus.Select())
	}
}

func TestBusConfig_ReservedPin(t *testing.T) {
	cfg := Default()
	cfg.Bus.SelectPin = 26

	_, err := wishbone.NewBus(cfg.BusConfig(transports.NewMockDriver()))
	if !errors.Is(err, wishbone.ErrReservedPin) {
		t.Errorf("got %v, want ErrReservedPin", err)
	}
}

func TestConsoleConfig(t *testing.T) {
	cfg := Default()
	cfg.Console.Port = "/dev/ttyACM0"

	cc := cfg.ConsoleConfig()
	if cc.Port != "/dev/ttyACM0" || cc.BaudRate != 115200 || cc.StatusInterval != time.Second {
		t.Errorf("console config: got %+v", cc)
	}
}
