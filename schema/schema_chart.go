package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// DataPoint is one labelled value fed to a chart.
type DataPoint struct {
	Label string  `json:"label" yaml:"label" parquet:"label"`
	Value float64 `json:"value" yaml:"value" parquet:"value"`
}

// Color is an sRGB color with a straight alpha in [0, 1].
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA returns a color with the given alpha.
func RGBA(r, g, b uint8, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// WithAlpha returns the same color at a different alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// CSS renders the color as rgb() when opaque and rgba() otherwise.
func (c Color) CSS() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex renders the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor accepts #rrggbb, rgb(r, g, b) and rgba(r, g, b, a).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	var body string
	var wantAlpha bool
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, wantAlpha = s[5:len(s)-1], true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[4 : len(s)-1]
	default:
		return Color{}, fmt.Errorf("unsupported color %q (want #rrggbb, rgb() or rgba())", s)
	}

	parts := strings.Split(body, ",")
	if (wantAlpha && len(parts) != 4) || (!wantAlpha && len(parts) != 3) {
		return Color{}, fmt.Errorf("unsupported color %q: wrong number of components", s)
	}
	var channels [3]uint8
	for i := range 3 {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color channel in %q: %w", s, err)
		}
		channels[i] = uint8(v)
	}
	c := RGB(channels[0], channels[1], channels[2])
	if wantAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("invalid alpha in %q", s)
		}
		c.A = a
	}
	return c, nil
}

// ChartSpec is the declarative configuration handed to a drawing surface.
// It carries everything a surface needs; surfaces never look at raw input.
type ChartSpec struct {
	Kind        ChartKind   `json:"kind"`
	Title       string      `json:"title,omitempty"`
	SeriesLabel string      `json:"series_label"`
	Points      []DataPoint `json:"points"`
	Orientation Orientation `json:"orientation"`

	// Fill and Stroke are indexed cyclically by point position.
	Fill        []Color `json:"fill"`
	Stroke      []Color `json:"stroke"`
	BorderWidth float64 `json:"border_width"`
	CornerRound float64 `json:"corner_round"`

	BeginAtZero bool    `json:"begin_at_zero"`
	AxisMax     float64 `json:"axis_max,omitempty"`  // 0 means derived from data
	AxisStep    float64 `json:"axis_step,omitempty"` // 0 means surface default
	Tension     float64 `json:"tension,omitempty"`
	AreaFill    bool    `json:"area_fill,omitempty"`

	ShowLegend     bool     `json:"show_legend"`
	LegendPosition string   `json:"legend_position,omitempty"`
	Legend         []string `json:"legend,omitempty"`
	Tooltips       []string `json:"tooltips,omitempty"`
}

// Labels returns the point labels in order.
func (s ChartSpec) Labels() []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Label
	}
	return out
}

// Values returns the point values in order.
func (s ChartSpec) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// FillAt returns the fill color for point i, cycling through Fill.
func (s ChartSpec) FillAt(i int) Color { return cycle(s.Fill, i) }

// StrokeAt returns the stroke color for point i, cycling through Stroke.
func (s ChartSpec) StrokeAt(i int) Color { return cycle(s.Stroke, i) }

// TooltipAt returns the tooltip for point i, empty when none was built.
func (s ChartSpec) TooltipAt(i int) string {
	if i < 0 || i >= len(s.Tooltips) {
		return ""
	}
	return s.Tooltips[i]
}

// Horizontal reports whether bars grow along the x axis.
func (s ChartSpec) Horizontal() bool { return s.Orientation == Horizontal }

func cycle(colors []Color, i int) Color {
	if len(colors) == 0 {
		return Color{}
	}
	if i < 0 {
		i = -i
	}
	return colors[i%len(colors)]
}
