// Command hpcalc computes headphone drive requirements from the terminal.
//
// Usage:
//
//	hpcalc [flags] <command>
//
// Commands:
//
//	calc      - Calculate voltage, current and power for a target SPL
//	defaults  - Show the configured default inputs
//	version   - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/RMahshie/headphone-power/cmd/hpcalc/commands"
	"github.com/RMahshie/headphone-power/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.NewRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
