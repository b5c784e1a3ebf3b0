package render

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
)

// SVGSurface draws charts as standalone SVG documents.
type SVGSurface struct {
	Size Size
}

// Acquire lays out spec and encodes it as SVG.
func (s *SVGSurface) Acquire(spec schema.ChartSpec) (contract.Canvas, error) {
	var buf bytes.Buffer
	drawSVG(&buf, layout(spec, s.Size))
	return &bufferCanvas{buf: &buf}, nil
}

func drawSVG(buf *bytes.Buffer, sc *scene) {
	canvas := svg.New(buf)
	canvas.Start(sc.Size.Width, sc.Size.Height)
	canvas.Rect(0, 0, sc.Size.Width, sc.Size.Height, "fill:"+colorBackdrop.CSS())
	for _, shape := range sc.Shapes {
		switch sh := shape.(type) {
		case rectShape:
			style := fillStyle(sh.Fill) + strokeStyle(sh.Stroke, sh.StrokeWidth)
			r := px(sh.Radius)
			if r > 0 {
				canvas.Roundrect(px(sh.X), px(sh.Y), px(sh.W), px(sh.H), r, r, style)
			} else {
				canvas.Rect(px(sh.X), px(sh.Y), px(sh.W), px(sh.H), style)
			}
		case lineShape:
			canvas.Line(px(sh.From.X), px(sh.From.Y), px(sh.To.X), px(sh.To.Y), strokeStyle(sh.Stroke, sh.Width))
		case polygonShape:
			xs, ys := coords(sh.Points)
			canvas.Polygon(xs, ys, fillStyle(sh.Fill)+strokeStyle(sh.Stroke, sh.StrokeWidth))
		case polylineShape:
			xs, ys := coords(sh.Points)
			canvas.Polyline(xs, ys, "fill:none;"+strokeStyle(sh.Stroke, sh.Width))
		case textShape:
			canvas.Text(px(sh.At.X), px(sh.At.Y), sh.Text, textStyle(sh))
		}
	}
	canvas.End()
}

func px(v float64) int { return int(math.Round(v)) }

func coords(pts []point) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	return xs, ys
}

func fillStyle(c schema.Color) string {
	if c == (schema.Color{}) {
		return "fill:none;"
	}
	return "fill:" + c.CSS() + ";"
}

func strokeStyle(c schema.Color, width float64) string {
	if c == (schema.Color{}) || width <= 0 {
		return ""
	}
	return fmt.Sprintf("stroke:%s;stroke-width:%g", c.CSS(), width)
}

func textStyle(t textShape) string {
	anchor := "start"
	switch t.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	style := fmt.Sprintf("fill:%s;font-size:%gpx;font-family:sans-serif;text-anchor:%s", t.Color.CSS(), t.Size, anchor)
	if t.Bold {
		style += ";font-weight:bold"
	}
	return style
}
