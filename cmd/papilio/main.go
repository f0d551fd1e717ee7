//go:build !baremetal

// Command papilio drives the Papilio RetroCade Wishbone bus from a Linux host.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "papilio:", err)
		os.Exit(1)
	}
}
