package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
)

const helpLine = "↑/↓ move • space toggle • t/c/r or tab view • ←/→ section • q quit"

// View draws the header, the scrollable comparison body and the help line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) chromeHeight() int {
	return lipgloss.Height(m.header()) + lipgloss.Height(m.footer())
}

func (m Model) header() string {
	view := m.viewer.Render()
	var b strings.Builder
	b.WriteString(renderTabs(m.nav.States()))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(view.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(view.Subtitle))
	b.WriteString("\n\n")
	for i, c := range view.Candidates {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("› ")
		}
		box, label := "[ ]", c.Label
		if c.Selected {
			box, label = selectedStyle.Render("[x]"), selectedStyle.Render(c.Label)
		}
		fmt.Fprintf(&b, "%s%s %s\n", pointer, box, label)
	}
	if view.ShowModeTabs {
		b.WriteString("\n")
		b.WriteString(renderModes(view.Mode))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) footer() string {
	line := mutedStyle.Render(helpLine)
	if m.status == "" {
		return line
	}
	style := mutedStyle
	if m.err != nil || strings.HasPrefix(m.status, "Cannot") {
		style = warnStyle
	}
	return style.Render(m.status) + "\n" + line
}

func renderTabs(states []schema.TabState) string {
	parts := make([]string, len(states))
	for i, s := range states {
		caption := strings.TrimSpace(s.Icon + " " + s.Label)
		if s.Active {
			parts[i] = activeTabStyle.Render(caption)
		} else {
			parts[i] = tabStyle.Render(caption)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderModes(active schema.ViewMode) string {
	labels := map[schema.ViewMode]string{
		schema.TableView: "Table View",
		schema.ChartView: "Chart View",
		schema.RadarView: "Radar View",
	}
	parts := make([]string, len(modeOrder))
	for i, mode := range modeOrder {
		if mode == active {
			parts[i] = activeTabStyle.Render(labels[mode])
		} else {
			parts[i] = tabStyle.Render(labels[mode])
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderBody draws whichever variant the view populated.
func renderBody(view schema.View, width int) string {
	switch {
	case view.Empty:
		return mutedStyle.Render(view.EmptyMessage)
	case view.Table != nil:
		return renderTable(view.Table, width)
	case view.Radar != nil:
		return renderRadar(view.Radar)
	case len(view.Charts) > 0:
		return renderPanels(view.Charts)
	case view.Mode == schema.ChartView:
		return mutedStyle.Render("No numeric metrics to chart")
	}
	return ""
}

func renderTable(t *schema.Table, width int) string {
	labelWidth := len("Metric")
	for _, r := range t.Rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	colWidth := 14
	for _, c := range t.Columns {
		colWidth = max(colWidth, lipgloss.Width(c.Label)+2)
	}
	if width > 0 && len(t.Columns) > 0 {
		labelWidth = min(labelWidth, max(width-colWidth*len(t.Columns)-2, 8))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(pad("Metric", labelWidth)))
	for i, c := range t.Columns {
		b.WriteString("  ")
		b.WriteString(seriesStyle(i).Bold(true).Render(pad(c.Label, colWidth)))
	}
	b.WriteString("\n")
	for _, r := range t.Rows {
		b.WriteString(pad(contract.TruncateLabel(r.Label, labelWidth), labelWidth))
		for _, cell := range r.Cells {
			b.WriteString("  ")
			b.WriteString(pad(cell, colWidth))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderRadar(r *schema.Radar) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Spec.Title))
	b.WriteString("\n\n")
	labelWidth := 0
	for _, s := range r.Scores {
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}
	scores := make([]float64, len(r.Scores))
	for i, s := range r.Scores {
		scores[i] = s.Score
	}
	widths := core.WidthsOfMax(scores)
	for i, s := range r.Scores {
		fmt.Fprintf(&b, "%s  %8.1f  %s\n", pad(s.Label, labelWidth), s.Score, seriesStyle(i).Render(bar(widths[i])))
	}
	return b.String()
}

func renderPanels(panels []schema.ChartPanel) string {
	var b strings.Builder
	for n, p := range panels {
		if n > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(p.Label))
		b.WriteString("\n")
		labelWidth := 0
		for _, pt := range p.Points {
			labelWidth = max(labelWidth, lipgloss.Width(pt.Label))
		}
		widths := core.WidthsOfMax(values(p.Points))
		for i, pt := range p.Points {
			fmt.Fprintf(&b, "%s  %s %s\n", pad(pt.Label, labelWidth), seriesStyle(i).Render(pad(bar(widths[i]), barCells)), mutedStyle.Render(p.Spec.TooltipAt(i)))
		}
	}
	return b.String()
}

func values(points []schema.DataPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
