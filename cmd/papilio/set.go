//go:build !baremetal

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Papilio-Labs/papilio-project-template/config"
	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

var (
	setCmd = &cobra.Command{
		Use:   "set <color>",
		Short: "Set the RGB LED to one color",
		Long:  "Set the RGB LED to a named color (red, green, blue, off, ...) or a hex value such as #ff8000.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wishbone.ParseColor(args[0])
			if err != nil {
				return err
			}
			return withBus(func(cfg config.Config, bus *wishbone.Bus) error {
				led := wishbone.NewRGBLed(bus, bus.Select())
				if err := led.SetColor(cmd.Context(), c); err != nil {
					return err
				}
				cmd.Printf("LED set to %s\n", c)
				return nil
			})
		},
	}

	peekCmd = &cobra.Command{
		Use:   "peek <addr>",
		Short: "Read a Wishbone register",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseUint(args[0], 16)
			if err != nil {
				return err
			}
			return withBus(func(cfg config.Config, bus *wishbone.Bus) error {
				v, err := bus.ReadRegister(cmd.Context(), bus.Select(), uint16(addr))
				if err != nil {
					return err
				}
				cmd.Printf("0x%04X: 0x%02X\n", addr, v)
				return nil
			})
		},
	}

	pokeCmd = &cobra.Command{
		Use:   "poke <addr> <value>",
		Short: "Write a Wishbone register",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseUint(args[0], 16)
			if err != nil {
				return err
			}
			value, err := parseUint(args[1], 8)
			if err != nil {
				return err
			}
			return withBus(func(cfg config.Config, bus *wishbone.Bus) error {
				if err := bus.WriteRegister(cmd.Context(), bus.Select(), uint16(addr), byte(value)); err != nil {
					return err
				}
				logger.Debug("register written", "addr", addr, "value", value)
				return nil
			})
		},
	}
)

// parseUint accepts decimal, 0x hex and 0b binary.
func parseUint(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 0, bits)
}
