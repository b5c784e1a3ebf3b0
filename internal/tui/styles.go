package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/huangsam/compareview/schema"
)

var (
	colorText   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#3B82F6"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarn)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorAccent).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// seriesStyle colors the i-th compared item like its chart series.
func seriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(schema.ComparisonPalette.At(i).Hex()))
}

const barCells = 24

// bar draws percent (0..100) as a proportional block run.
func bar(percent float64) string {
	percent = max(0, min(percent, 100))
	n := int(percent / 100 * barCells)
	if n == 0 && percent > 0 {
		return "▏"
	}
	return strings.Repeat("█", n)
}

// pad right-pads s to width display cells.
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
