// Package commands implements the hpcalc command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/RMahshie/headphone-power/internal/config"
	"github.com/RMahshie/headphone-power/internal/logging"
	"github.com/RMahshie/headphone-power/internal/render"
)

// Version is set at build time with -ldflags
var Version = "dev"

type rootOptions struct {
	verbose bool
	output  string
}

// NewRootCmd builds the command tree. Flag defaults come from cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hpcalc",
		Short: "Headphone power calculator",
		Long: `hpcalc - compute the voltage, current and power a headphone needs
to reach a target sound pressure level.

Sensitivity may be given in dB/mW or dB/V; the other unit is derived from
the impedance.

Examples:
  # 100 dB/mW, 32 ohm headphone at 110 dB SPL
  hpcalc calc --sensitivity 100 --impedance 32 --spl 110

  # dB/V rating, JSON output
  hpcalc calc -s 112 -z 250 -u dB/V --spl 95 -o json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logging.SetupWriter(cmd.ErrOrStderr(), level, cfg.Server.Env)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", string(render.FormatTable), "output format (table, json, yaml)")

	cmd.AddCommand(newCalcCmd(cfg, opts))
	cmd.AddCommand(newDefaultsCmd(cfg, opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("hpcalc %s\n", Version)
		},
	}
}
