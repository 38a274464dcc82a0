package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RMahshie/headphone-power/internal/calculator"
	"github.com/RMahshie/headphone-power/internal/config"
	"github.com/RMahshie/headphone-power/internal/render"
)

func newCalcCmd(cfg *config.Config, root *rootOptions) *cobra.Command {
	var (
		sensitivity float64
		impedance   float64
		unit        string
		targetSPL   float64
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate drive requirements for a target SPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(root.output)
			if err != nil {
				return err
			}

			u, err := calculator.ParseUnit(unit)
			if err != nil {
				return fmt.Errorf("%s: %w", calculator.InvalidInputMessage, err)
			}

			in := calculator.Input{
				Sensitivity: sensitivity,
				Impedance:   impedance,
				Unit:        u,
				TargetSPL:   targetSPL,
			}
			res, err := calculator.NewService().Calculate(cmd.Context(), in)
			if err != nil {
				if errors.Is(err, calculator.ErrInvalidInput) {
					return fmt.Errorf("%s: %w", calculator.InvalidInputMessage, err)
				}
				return err
			}

			return render.Write(cmd.OutOrStdout(), render.NewReport(in, res), format)
		},
	}

	d := cfg.Defaults
	cmd.Flags().Float64VarP(&sensitivity, "sensitivity", "s", d.Sensitivity, "headphone sensitivity in the selected unit")
	cmd.Flags().Float64VarP(&impedance, "impedance", "z", d.Impedance, "headphone impedance in ohms")
	cmd.Flags().StringVarP(&unit, "unit", "u", d.Unit.String(), "sensitivity unit (dB/mW or dB/V)")
	cmd.Flags().Float64Var(&targetSPL, "spl", d.TargetSPL,
		fmt.Sprintf("target sound pressure level in dB (loudness bar spans %g-%g)", calculator.MinSPL, calculator.MaxSPL))

	return cmd
}

type defaultsView struct {
	Sensitivity float64  `json:"sensitivity" yaml:"sensitivity"`
	Impedance   float64  `json:"impedance" yaml:"impedance"`
	Unit        string   `json:"unit" yaml:"unit"`
	Units       []string `json:"units" yaml:"units"`
	TargetSPL   float64  `json:"target_spl" yaml:"target_spl"`
	MinSPL      float64  `json:"min_spl" yaml:"min_spl"`
	MaxSPL      float64  `json:"max_spl" yaml:"max_spl"`
}

func newDefaultsCmd(cfg *config.Config, root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Show the configured default inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(root.output)
			if err != nil {
				return err
			}

			units := make([]string, 0, len(calculator.Units))
			for _, u := range calculator.Units {
				units = append(units, u.String())
			}

			return render.Write(cmd.OutOrStdout(), defaultsView{
				Sensitivity: cfg.Defaults.Sensitivity,
				Impedance:   cfg.Defaults.Impedance,
				Unit:        cfg.Defaults.Unit.String(),
				Units:       units,
				TargetSPL:   cfg.Defaults.TargetSPL,
				MinSPL:      calculator.MinSPL,
				MaxSPL:      calculator.MaxSPL,
			}, format)
		},
	}
}
