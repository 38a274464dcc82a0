// Package render writes calculation results for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/RMahshie/headphone-power/internal/calculator"
)

// Format is the output format of the CLI
type Format string

const (
	// FormatTable renders a styled summary (default)
	FormatTable Format = "table"
	// FormatJSON outputs as JSON
	FormatJSON Format = "json"
	// FormatYAML outputs as YAML
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use table, json or yaml)", s)
	}
}

// Report is the output record of one calculation
type Report struct {
	Sensitivity      float64            `json:"sensitivity" yaml:"sensitivity"`
	Impedance        float64            `json:"impedance" yaml:"impedance"`
	Unit             string             `json:"unit" yaml:"unit"`
	TargetSPL        float64            `json:"target_spl" yaml:"target_spl"`
	VoltageVolts     float64            `json:"voltage_volts" yaml:"voltage_volts"`
	CurrentMilliamps float64            `json:"current_milliamps" yaml:"current_milliamps"`
	PowerMilliwatts  float64            `json:"power_milliwatts" yaml:"power_milliwatts"`
	SensitivityDbV   float64            `json:"sensitivity_db_v" yaml:"sensitivity_db_v"`
	SensitivityDbMw  float64            `json:"sensitivity_db_mw" yaml:"sensitivity_db_mw"`
	LoudnessLabel    string             `json:"loudness_label" yaml:"loudness_label"`
	ProgressFraction float64            `json:"progress_fraction" yaml:"progress_fraction"`
	Display          calculator.Display `json:"display" yaml:"display"`
}

// NewReport pairs a result with the input it was computed from
func NewReport(in calculator.Input, res calculator.Result) Report {
	return Report{
		Sensitivity:      in.Sensitivity,
		Impedance:        in.Impedance,
		Unit:             in.Unit.String(),
		TargetSPL:        in.TargetSPL,
		VoltageVolts:     res.VoltageVolts,
		CurrentMilliamps: res.CurrentMilliamps,
		PowerMilliwatts:  res.PowerMilliwatts,
		SensitivityDbV:   res.SensitivityDbV,
		SensitivityDbMw:  res.SensitivityDbMw,
		LoudnessLabel:    string(res.Loudness),
		ProgressFraction: res.ProgressFraction,
		Display:          res.Display(),
	}
}

// Write renders v to w in the given format. Table format needs a Report;
// other values fall back to YAML.
func Write(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		return writeYAML(w, v)
	case FormatTable, "":
		report, ok := v.(Report)
		if !ok {
			return writeYAML(w, v)
		}
		_, err := io.WriteString(w, Table(lipgloss.NewRenderer(w), report)+"\n")
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
