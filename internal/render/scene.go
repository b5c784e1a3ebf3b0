// Package render draws chart specs onto HTML, SVG and PNG canvases.
package render

import (
	"math"
	"strconv"

	"github.com/huangsam/compareview/schema"
)

// Size is the pixel size of a canvas.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a surface is created with a zero size.
var DefaultSize = Size{Width: 800, Height: 400}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

// Anchor is the horizontal alignment of a text shape.
type Anchor int

// Text anchors.
const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// point is a position in canvas pixels, origin top left.
type point struct{ X, Y float64 }

// Shapes are the vector primitives both raster and vector backends draw.
type (
	rectShape struct {
		X, Y, W, H  float64
		Radius      float64
		Fill        schema.Color
		Stroke      schema.Color
		StrokeWidth float64
	}
	lineShape struct {
		From, To point
		Stroke   schema.Color
		Width    float64
	}
	polygonShape struct {
		Points      []point
		Fill        schema.Color
		Stroke      schema.Color
		StrokeWidth float64
	}
	polylineShape struct {
		Points []point
		Stroke schema.Color
		Width  float64
	}
	textShape struct {
		At     point
		Text   string
		Size   float64
		Anchor Anchor
		Color  schema.Color
		Bold   bool
	}
)

// scene is a laid out chart: a background plus shapes in paint order.
type scene struct {
	Size   Size
	Shapes []any
}

func (s *scene) add(shape any) { s.Shapes = append(s.Shapes, shape) }

var (
	colorBackdrop = schema.White
	colorText     = schema.RGB(17, 24, 39)
	colorSubtle   = schema.RGB(107, 114, 128)
)

const (
	marginTop    = 48.0
	marginBottom = 40.0
	marginLeft   = 64.0
	marginRight  = 24.0
	legendWidth  = 220.0
)

// layout dispatches on the chart kind.
func layout(spec schema.ChartSpec, size Size) *scene {
	size = size.orDefault()
	sc := &scene{Size: size}
	if spec.Title != "" {
		sc.add(textShape{At: point{float64(size.Width) / 2, 24}, Text: spec.Title, Size: 16, Anchor: AnchorMiddle, Color: colorText, Bold: true})
	}
	switch spec.Kind {
	case schema.LineChart:
		layoutLine(sc, spec)
	case schema.RadarChart:
		layoutRadar(sc, spec)
	case schema.DoughnutChart:
		layoutDoughnut(sc, spec)
	default:
		layoutBars(sc, spec)
	}
	return sc
}

// plotArea is the rectangle inside the axis margins.
func plotArea(size Size) (x, y, w, h float64) {
	return marginLeft, marginTop, float64(size.Width) - marginLeft - marginRight, float64(size.Height) - marginTop - marginBottom
}

// axisMax picks the value axis bound: the chart's explicit maximum, or a
// rounded ceiling over the data.
func axisMax(spec schema.ChartSpec) float64 {
	if spec.AxisMax > 0 {
		return spec.AxisMax
	}
	var peak float64
	for _, p := range spec.Points {
		peak = max(peak, p.Value)
	}
	return niceCeil(peak)
}

func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if v <= step*mag {
			return step * mag
		}
	}
	return 10 * mag
}

// ticks returns evenly spaced tick values from 0 to top.
func ticks(spec schema.ChartSpec, top float64) []float64 {
	step := spec.AxisStep
	if step <= 0 {
		step = top / 5
	}
	var out []float64
	for v := 0.0; v <= top+step/1e6; v += step {
		out = append(out, v)
	}
	return out
}

func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func layoutBars(sc *scene, spec schema.ChartSpec) {
	x, y, w, h := plotArea(sc.Size)
	top := axisMax(spec)
	n := len(spec.Points)
	if spec.Horizontal() {
		x += 60
		w -= 60
	}

	for _, t := range ticks(spec, top) {
		frac := t / top
		if spec.Horizontal() {
			gx := x + frac*w
			sc.add(lineShape{From: point{gx, y}, To: point{gx, y + h}, Stroke: schema.GridLine, Width: 1})
			sc.add(textShape{At: point{gx, y + h + 16}, Text: tickLabel(t), Size: 11, Anchor: AnchorMiddle, Color: colorSubtle})
		} else {
			gy := y + h - frac*h
			sc.add(lineShape{From: point{x, gy}, To: point{x + w, gy}, Stroke: schema.GridLine, Width: 1})
			sc.add(textShape{At: point{x - 8, gy + 4}, Text: tickLabel(t), Size: 11, Anchor: AnchorEnd, Color: colorSubtle})
		}
	}
	if n == 0 {
		return
	}

	slot := w / float64(n)
	if spec.Horizontal() {
		slot = h / float64(n)
	}
	thickness := slot * 0.6
	for i, p := range spec.Points {
		frac := math.Max(p.Value, 0) / top
		var r rectShape
		var label textShape
		if spec.Horizontal() {
			by := y + float64(i)*slot + (slot-thickness)/2
			r = rectShape{X: x, Y: by, W: frac * w, H: thickness}
			label = textShape{At: point{x - 8, by + thickness/2 + 4}, Text: p.Label, Size: 11, Anchor: AnchorEnd, Color: colorText}
		} else {
			bx := x + float64(i)*slot + (slot-thickness)/2
			r = rectShape{X: bx, Y: y + h - frac*h, W: thickness, H: frac * h}
			label = textShape{At: point{bx + thickness/2, y + h + 16}, Text: p.Label, Size: 11, Anchor: AnchorMiddle, Color: colorText}
		}
		r.Radius = math.Min(spec.CornerRound, math.Min(r.W, r.H)/2)
		r.Fill = spec.FillAt(i)
		r.Stroke = spec.StrokeAt(i)
		r.StrokeWidth = spec.BorderWidth
		sc.add(r)
		sc.add(label)
	}
}

func layoutLine(sc *scene, spec schema.ChartSpec) {
	x, y, w, h := plotArea(sc.Size)
	top := axisMax(spec)
	for _, t := range ticks(spec, top) {
		gy := y + h - t/top*h
		sc.add(lineShape{From: point{x, gy}, To: point{x + w, gy}, Stroke: schema.GridLine, Width: 1})
		sc.add(textShape{At: point{x - 8, gy + 4}, Text: tickLabel(t), Size: 11, Anchor: AnchorEnd, Color: colorSubtle})
	}
	n := len(spec.Points)
	if n == 0 {
		return
	}

	pts := make([]point, n)
	for i, p := range spec.Points {
		px := x + w/2
		if n > 1 {
			px = x + float64(i)*w/float64(n-1)
		}
		pts[i] = point{px, y + h - math.Max(p.Value, 0)/top*h}
		sc.add(textShape{At: point{px, y + h + 16}, Text: p.Label, Size: 11, Anchor: AnchorMiddle, Color: colorText})
	}
	curve := smooth(pts, spec.Tension, 12)
	if spec.AreaFill {
		area := append([]point{{curve[0].X, y + h}}, curve...)
		area = append(area, point{curve[len(curve)-1].X, y + h})
		sc.add(polygonShape{Points: area, Fill: spec.FillAt(0)})
	}
	sc.add(polylineShape{Points: curve, Stroke: spec.StrokeAt(0), Width: spec.BorderWidth})
	for _, p := range pts {
		sc.add(rectShape{X: p.X - 3, Y: p.Y - 3, W: 6, H: 6, Radius: 3, Fill: spec.StrokeAt(0)})
	}
}

// smooth samples a cardinal spline through pts. A tension of 0 keeps
// straight segments.
func smooth(pts []point, tension float64, samples int) []point {
	if len(pts) < 3 || tension <= 0 {
		return append([]point(nil), pts...)
	}
	out := []point{pts[0]}
	at := func(i int) point { return pts[max(0, min(len(pts)-1, i))] }
	for i := 0; i < len(pts)-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c1 := point{p1.X + (p2.X-p0.X)*tension/2, p1.Y + (p2.Y-p0.Y)*tension/2}
		c2 := point{p2.X - (p3.X-p1.X)*tension/2, p2.Y - (p3.Y-p1.Y)*tension/2}
		for s := 1; s <= samples; s++ {
			t := float64(s) / float64(samples)
			out = append(out, bezier(p1, c1, c2, p2, t))
		}
	}
	return out
}

func bezier(p0, p1, p2, p3 point, t float64) point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return point{a*p0.X + b*p1.X + c*p2.X + d*p3.X, a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y}
}

func layoutRadar(sc *scene, spec schema.ChartSpec) {
	cx := float64(sc.Size.Width) / 2
	cy := marginTop + (float64(sc.Size.Height)-marginTop-marginBottom/2)/2
	radius := math.Min(float64(sc.Size.Width), float64(sc.Size.Height)-marginTop-marginBottom/2)/2 - 32
	n := len(spec.Points)
	if n == 0 || radius <= 0 {
		return
	}
	top := axisMax(spec)
	angle := func(i int) float64 { return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n) }
	at := func(i int, frac float64) point {
		return point{cx + math.Cos(angle(i))*radius*frac, cy + math.Sin(angle(i))*radius*frac}
	}

	for _, t := range ticks(spec, top) {
		if t == 0 {
			continue
		}
		ring := make([]point, n)
		for i := range n {
			ring[i] = at(i, t/top)
		}
		sc.add(polygonShape{Points: ring, Stroke: schema.RadarGridLine, StrokeWidth: 1})
		sc.add(textShape{At: point{cx + 4, cy - radius*t/top}, Text: tickLabel(t), Size: 10, Anchor: AnchorStart, Color: colorSubtle})
	}
	shape := make([]point, n)
	for i, p := range spec.Points {
		sc.add(lineShape{From: point{cx, cy}, To: at(i, 1), Stroke: schema.RadarGridLine, Width: 1})
		shape[i] = at(i, math.Min(math.Max(p.Value, 0)/top, 1))
		lp := at(i, 1.12)
		anchor := AnchorMiddle
		switch {
		case lp.X < cx-1:
			anchor = AnchorEnd
		case lp.X > cx+1:
			anchor = AnchorStart
		}
		sc.add(textShape{At: point{lp.X, lp.Y + 4}, Text: p.Label, Size: 11, Anchor: anchor, Color: colorText})
	}
	sc.add(polygonShape{Points: shape, Fill: spec.FillAt(0), Stroke: spec.StrokeAt(0), StrokeWidth: spec.BorderWidth})
	for _, p := range shape {
		sc.add(rectShape{X: p.X - 3, Y: p.Y - 3, W: 6, H: 6, Radius: 3, Fill: spec.StrokeAt(0)})
	}
}

func layoutDoughnut(sc *scene, spec schema.ChartSpec) {
	plotW := float64(sc.Size.Width)
	if spec.ShowLegend {
		plotW -= legendWidth
	}
	cx := plotW / 2
	cy := marginTop + (float64(sc.Size.Height)-marginTop-16)/2
	outer := math.Min(plotW, float64(sc.Size.Height)-marginTop-16)/2 - 16
	inner := outer * 0.5
	if outer <= 0 {
		return
	}

	values := spec.Values()
	var total float64
	for _, v := range values {
		total += math.Max(v, 0)
	}
	start := -math.Pi / 2
	for i, v := range values {
		if total <= 0 || v <= 0 {
			continue
		}
		sweep := 2 * math.Pi * v / total
		sc.add(polygonShape{
			Points:      wedge(point{cx, cy}, inner, outer, start, start+sweep),
			Fill:        spec.FillAt(i),
			Stroke:      spec.StrokeAt(i),
			StrokeWidth: spec.BorderWidth,
		})
		start += sweep
	}

	if !spec.ShowLegend {
		return
	}
	lx := plotW + 8
	ly := cy - float64(len(spec.Points))*10
	for i, p := range spec.Points {
		label := p.Label
		if i < len(spec.Legend) {
			label = spec.Legend[i]
		}
		row := ly + float64(i)*20
		sc.add(rectShape{X: lx, Y: row - 10, W: 12, H: 12, Radius: 2, Fill: spec.FillAt(i)})
		sc.add(textShape{At: point{lx + 18, row}, Text: label, Size: 11, Anchor: AnchorStart, Color: colorText})
	}
}

// wedge approximates a ring segment between angles a0 and a1 as a polygon.
func wedge(c point, inner, outer, a0, a1 float64) []point {
	steps := max(2, int(math.Ceil((a1-a0)/(math.Pi/90))))
	pts := make([]point, 0, 2*(steps+1))
	for s := 0; s <= steps; s++ {
		a := a0 + (a1-a0)*float64(s)/float64(steps)
		pts = append(pts, point{c.X + math.Cos(a)*outer, c.Y + math.Sin(a)*outer})
	}
	for s := steps; s >= 0; s-- {
		a := a0 + (a1-a0)*float64(s)/float64(steps)
		pts = append(pts, point{c.X + math.Cos(a)*inner, c.Y + math.Sin(a)*inner})
	}
	return pts
}
