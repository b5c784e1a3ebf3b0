package core

import (
	"fmt"
	"strconv"

	"github.com/huangsam/compareview/schema"
)

// ChartOptions are the optional inputs shared by every chart builder.
type ChartOptions struct {
	Title       string
	SeriesLabel string
	Color       *schema.Color // overrides the kind's default accent
	Orientation schema.Orientation
	Formatter   *Formatter
}

func (o ChartOptions) formatter() *Formatter {
	if o.Formatter == nil {
		return defaultFormatter
	}
	return o.Formatter
}

func (o ChartOptions) color(fallback schema.Color) schema.Color {
	if o.Color == nil {
		return fallback
	}
	return *o.Color
}

func (o ChartOptions) seriesLabel(fallback string) string {
	if o.SeriesLabel == "" {
		return fallback
	}
	return o.SeriesLabel
}

// ParseChartKind validates a chart kind name.
func ParseChartKind(s string) (schema.ChartKind, error) {
	kind := schema.ChartKind(s)
	if _, ok := schema.ValidChartKinds[kind]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownChartKind, s)
	}
	return kind, nil
}

// BuildSpec dispatches to the builder for kind.
func BuildSpec(kind schema.ChartKind, points []schema.DataPoint, opts ChartOptions) (schema.ChartSpec, error) {
	switch kind {
	case schema.BarChart:
		return BarSpec(points, opts), nil
	case schema.LineChart:
		return LineSpec(points, opts), nil
	case schema.RadarChart:
		return RadarSpec(points, opts), nil
	case schema.DoughnutChart:
		return DoughnutSpec(points, opts), nil
	case schema.FunnelChart:
		return FunnelSpec(points, opts), nil
	default:
		return schema.ChartSpec{}, fmt.Errorf("%w %q", ErrUnknownChartKind, kind)
	}
}

// BarSpec is a single-series bar chart with rounded bars and a solid border.
func BarSpec(points []schema.DataPoint, opts ChartOptions) schema.ChartSpec {
	c := opts.color(schema.BarDefault)
	label := opts.seriesLabel("Value")
	f := opts.formatter()
	orientation := opts.Orientation
	if orientation == "" {
		orientation = schema.Vertical
	}
	return schema.ChartSpec{
		Kind:        schema.BarChart,
		Title:       opts.Title,
		SeriesLabel: label,
		Points:      clonePoints(points),
		Orientation: orientation,
		Fill:        []schema.Color{c},
		Stroke:      []schema.Color{c.WithAlpha(1)},
		BorderWidth: 2,
		CornerRound: 8,
		BeginAtZero: true,
		Tooltips:    tooltips(points, func(p schema.DataPoint, _ float64) string { return label + ": " + f.Number(p.Value) }),
	}
}

// LineSpec is a smoothed line with a translucent area fill.
func LineSpec(points []schema.DataPoint, opts ChartOptions) schema.ChartSpec {
	c := opts.color(schema.BrandBlue)
	label := opts.seriesLabel("Value")
	f := opts.formatter()
	return schema.ChartSpec{
		Kind:        schema.LineChart,
		Title:       opts.Title,
		SeriesLabel: label,
		Points:      clonePoints(points),
		Orientation: schema.Vertical,
		Fill:        []schema.Color{c.WithAlpha(0.1)},
		Stroke:      []schema.Color{c},
		BorderWidth: 3,
		BeginAtZero: true,
		Tension:     0.4,
		AreaFill:    true,
		Tooltips:    tooltips(points, func(p schema.DataPoint, _ float64) string { return label + ": " + f.Number(p.Value) }),
	}
}

// RadarSpec plots scores on a fixed 0 to 100 scale in steps of 20.
func RadarSpec(points []schema.DataPoint, opts ChartOptions) schema.ChartSpec {
	c := opts.color(schema.RadarAccent)
	return schema.ChartSpec{
		Kind:        schema.RadarChart,
		Title:       opts.Title,
		SeriesLabel: opts.seriesLabel("Performance"),
		Points:      clonePoints(points),
		Fill:        []schema.Color{c.WithAlpha(0.2)},
		Stroke:      []schema.Color{c},
		BorderWidth: 2,
		BeginAtZero: true,
		AxisMax:     100,
		AxisStep:    20,
		Tooltips: tooltips(points, func(p schema.DataPoint, _ float64) string {
			return "Engagement Score: " + strconv.FormatFloat(p.Value, 'f', 1, 64) + "%"
		}),
	}
}

// DoughnutSpec colors each slice from DoughnutPalette and legends it on the right.
func DoughnutSpec(points []schema.DataPoint, opts ChartOptions) schema.ChartSpec {
	f := opts.formatter()
	fill := make([]schema.Color, len(points))
	legend := make([]string, len(points))
	for i, p := range points {
		fill[i] = schema.DoughnutPalette.At(i)
		legend[i] = p.Label + ": " + f.Number(p.Value)
	}
	return schema.ChartSpec{
		Kind:           schema.DoughnutChart,
		Title:          opts.Title,
		SeriesLabel:    opts.seriesLabel("Share"),
		Points:         clonePoints(points),
		Fill:           fill,
		Stroke:         []schema.Color{schema.White},
		BorderWidth:    3,
		ShowLegend:     true,
		LegendPosition: "right",
		Legend:         legend,
		Tooltips: tooltips(points, func(p schema.DataPoint, share float64) string {
			return fmt.Sprintf("%s: %s (%s)", p.Label, f.Number(p.Value), FormatShare(share))
		}),
	}
}

// FunnelSpec is a horizontal bar chart whose stages take FunnelPalette colors.
func FunnelSpec(points []schema.DataPoint, opts ChartOptions) schema.ChartSpec {
	f := opts.formatter()
	fill := make([]schema.Color, len(points))
	stroke := make([]schema.Color, len(points))
	for i := range points {
		fill[i] = schema.FunnelPalette.At(i)
		stroke[i] = fill[i].WithAlpha(1)
	}
	return schema.ChartSpec{
		Kind:        schema.FunnelChart,
		Title:       opts.Title,
		SeriesLabel: opts.seriesLabel("Users"),
		Points:      clonePoints(points),
		Orientation: schema.Horizontal,
		Fill:        fill,
		Stroke:      stroke,
		BorderWidth: 2,
		CornerRound: 8,
		BeginAtZero: true,
		Tooltips: tooltips(points, func(p schema.DataPoint, share float64) string {
			return fmt.Sprintf("Users: %s (%s)", f.Number(p.Value), FormatShare(share))
		}),
	}
}

// PointShares returns each point's percentage of the total, one decimal.
func PointShares(points []schema.DataPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return Shares(values)
}

func tooltips(points []schema.DataPoint, fn func(schema.DataPoint, float64) string) []string {
	shares := PointShares(points)
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = fn(p, shares[i])
	}
	return out
}

func clonePoints(points []schema.DataPoint) []schema.DataPoint {
	out := make([]schema.DataPoint, len(points))
	copy(out, points)
	return out
}
