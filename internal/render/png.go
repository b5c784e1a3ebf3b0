package render

import (
	"image/color"
	"image/png"
	"io"

	"git.sr.ht/~sbinet/gg"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
	"golang.org/x/image/font/basicfont"
)

// PNGSurface rasterizes charts into PNG images.
type PNGSurface struct {
	Size Size
}

// Acquire lays out spec and paints it on a fresh raster context.
func (s *PNGSurface) Acquire(spec schema.ChartSpec) (contract.Canvas, error) {
	sc := layout(spec, s.Size)
	dc := gg.NewContext(sc.Size.Width, sc.Size.Height)
	drawPNG(dc, sc)
	return &pngCanvas{dc: dc}, nil
}

type pngCanvas struct {
	dc *gg.Context
}

func (c *pngCanvas) WriteTo(w io.Writer) (int64, error) {
	if c.dc == nil {
		return 0, ErrClosed
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, c.dc.Image())
	return cw.n, err
}

func (c *pngCanvas) Close() error {
	c.dc = nil
	return nil
}

func drawPNG(dc *gg.Context, sc *scene) {
	dc.SetColor(rgba(colorBackdrop))
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for _, shape := range sc.Shapes {
		switch sh := shape.(type) {
		case rectShape:
			pathRect(dc, sh)
			if sh.Fill != (schema.Color{}) {
				dc.SetColor(rgba(sh.Fill))
				dc.Fill()
			}
			if sh.Stroke != (schema.Color{}) && sh.StrokeWidth > 0 {
				pathRect(dc, sh)
				dc.SetColor(rgba(sh.Stroke))
				dc.SetLineWidth(sh.StrokeWidth)
				dc.Stroke()
			}
		case lineShape:
			dc.SetColor(rgba(sh.Stroke))
			dc.SetLineWidth(sh.Width)
			dc.DrawLine(sh.From.X, sh.From.Y, sh.To.X, sh.To.Y)
			dc.Stroke()
		case polygonShape:
			if sh.Fill != (schema.Color{}) {
				pathPoints(dc, sh.Points, true)
				dc.SetColor(rgba(sh.Fill))
				dc.Fill()
			}
			if sh.Stroke != (schema.Color{}) && sh.StrokeWidth > 0 {
				pathPoints(dc, sh.Points, true)
				dc.SetColor(rgba(sh.Stroke))
				dc.SetLineWidth(sh.StrokeWidth)
				dc.Stroke()
			}
		case polylineShape:
			pathPoints(dc, sh.Points, false)
			dc.SetColor(rgba(sh.Stroke))
			dc.SetLineWidth(sh.Width)
			dc.Stroke()
		case textShape:
			dc.SetColor(rgba(sh.Color))
			dc.DrawStringAnchored(sh.Text, sh.At.X, sh.At.Y-4, anchorX(sh.Anchor), 0.5)
		}
	}
}

func pathRect(dc *gg.Context, r rectShape) {
	if r.Radius > 0 {
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, r.Radius)
		return
	}
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
}

func pathPoints(dc *gg.Context, pts []point, closed bool) {
	if len(pts) == 0 {
		return
	}
	dc.NewSubPath()
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	if closed {
		dc.ClosePath()
	}
}

func anchorX(a Anchor) float64 {
	switch a {
	case AnchorMiddle:
		return 0.5
	case AnchorEnd:
		return 1
	default:
		return 0
	}
}

func rgba(c schema.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(max(0, min(1, c.A)) * 255)}
}
