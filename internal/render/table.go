package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RMahshie/headphone-power/internal/calculator"
)

const progressWidth = 30

// Theme defines the color scheme of the table output
type Theme struct {
	Primary lipgloss.Color
	Dim     lipgloss.Color
	Warn    lipgloss.Color
}

// DefaultTheme is the default theme
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
	Warn:    lipgloss.Color("#ff5f5f"),
}

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	help   lipgloss.Style
	warn   lipgloss.Style
	border lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, t Theme) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(t.Primary),
		label:  r.NewStyle().Foreground(t.Dim).Width(22),
		value:  r.NewStyle().Bold(true),
		help:   r.NewStyle().Foreground(t.Dim),
		warn:   r.NewStyle().Bold(true).Foreground(t.Warn),
		border: r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Primary).Padding(0, 1),
	}
}

// Table renders a report as a bordered summary with a loudness bar
func Table(r *lipgloss.Renderer, rep Report) string {
	s := newStyles(r, DefaultTheme)

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.value.Render(value))
	}

	loudness := s.help.Render(rep.LoudnessLabel)
	if rep.LoudnessLabel == string(calculator.LoudnessVeryLoud) {
		loudness = s.warn.Render(rep.LoudnessLabel)
	}

	lines := []string{
		s.title.Render("Results"),
		row("Voltage Required", rep.Display.Voltage),
		row("Current Required", rep.Display.Current),
		row("Power Required", rep.Display.Power),
		row("Target Loudness", rep.Display.TargetSPL),
		ProgressBar(rep.ProgressFraction, progressWidth),
		loudness,
		"",
		s.title.Render("Sensitivity Conversions"),
		row("Sensitivity in dB/V", rep.Display.SensitivityDbV),
		row("Sensitivity in dB/mW", rep.Display.SensitivityDbMw),
		s.help.Render(fmt.Sprintf("%g %s at %g Ω", rep.Sensitivity, rep.Unit, rep.Impedance)),
	}

	return s.border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ProgressBar draws fraction of width as filled cells. fraction is clamped
// to [0,1].
func ProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) +
		fmt.Sprintf(" %3.0f%%", fraction*100)
}
