// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"io"

	"github.com/huangsam/compareview/schema"
)

// Canvas is one drawing resource created for a single chart spec.
// It is owned by exactly one chart adapter and must be closed before
// the adapter acquires the next one.
type Canvas interface {
	io.WriterTo

	// Close releases the drawing resource. Calling it twice is harmless.
	Close() error
}

// Surface creates canvases. It is the opaque drawing capability behind the
// chart adapters, so the comparison engine can be tested without one.
type Surface interface {
	// Acquire draws spec onto a fresh canvas.
	Acquire(spec schema.ChartSpec) (Canvas, error)
}

// DocumentSource yields dashboard documents, for example from a file on disk.
type DocumentSource interface {
	Load() (schema.Document, error)
}

// NumberFormatter renders numbers with locale digit grouping.
type NumberFormatter interface {
	Number(v float64) string
}
