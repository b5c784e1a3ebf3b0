package core

import (
	"fmt"
	"io"
	"reflect"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
)

// Chart adapts chart specs onto a drawing surface. It holds at most one
// canvas: every change of spec closes the current canvas before a new one is
// acquired, and Close releases it on teardown.
type Chart struct {
	surface contract.Surface
	canvas  contract.Canvas
	spec    schema.ChartSpec
	drawn   bool
}

// NewChart returns an adapter drawing on surface. A nil surface makes every
// draw a silent no-op.
func NewChart(surface contract.Surface) *Chart {
	return &Chart{surface: surface}
}

// Update redraws the chart when spec differs from the last one drawn.
func (c *Chart) Update(spec schema.ChartSpec) error {
	if c.drawn && reflect.DeepEqual(c.spec, spec) {
		return nil
	}
	releaseErr := c.release()
	c.spec = spec
	c.drawn = true
	if c.surface == nil {
		return releaseErr
	}
	canvas, err := c.surface.Acquire(spec)
	if err != nil {
		c.drawn = false
		return fmt.Errorf("failed to draw %s chart: %w", spec.Kind, err)
	}
	c.canvas = canvas
	contract.Debugf("acquired canvas for %s chart with %d points", spec.Kind, len(spec.Points))
	return releaseErr
}

// Spec returns the last spec handed to Update.
func (c *Chart) Spec() schema.ChartSpec { return c.spec }

// Live reports whether the adapter currently holds a canvas.
func (c *Chart) Live() bool { return c.canvas != nil }

// WriteTo writes the current canvas to w. Without a canvas nothing is written.
func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	if c.canvas == nil {
		return 0, nil
	}
	return c.canvas.WriteTo(w)
}

// Close releases the current canvas. It is safe to call more than once.
func (c *Chart) Close() error {
	c.drawn = false
	return c.release()
}

func (c *Chart) release() error {
	if c.canvas == nil {
		return nil
	}
	canvas := c.canvas
	c.canvas = nil
	if err := canvas.Close(); err != nil {
		return fmt.Errorf("failed to release %s canvas: %w", c.spec.Kind, err)
	}
	return nil
}
