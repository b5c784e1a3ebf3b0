package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
)

// ErrClosed is returned when a released canvas is written.
var ErrClosed = errors.New("canvas already released")

// NewSurface returns the drawing surface for a visual format.
func NewSurface(format schema.VisualFormat, size Size) (contract.Surface, error) {
	switch format {
	case schema.HTMLVisual, "":
		return &EChartsSurface{Size: size}, nil
	case schema.SVGVisual:
		return &SVGSurface{Size: size}, nil
	case schema.PNGVisual:
		return &PNGSurface{Size: size}, nil
	default:
		return nil, fmt.Errorf("unsupported visual format %q (want html, svg or png)", format)
	}
}

// bufferCanvas holds an already encoded drawing.
type bufferCanvas struct {
	buf *bytes.Buffer
}

func (c *bufferCanvas) WriteTo(w io.Writer) (int64, error) {
	if c.buf == nil {
		return 0, ErrClosed
	}
	return bytes.NewReader(c.buf.Bytes()).WriteTo(w)
}

func (c *bufferCanvas) Close() error {
	c.buf = nil
	return nil
}

// countingWriter tracks how many bytes a renderer wrote.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
