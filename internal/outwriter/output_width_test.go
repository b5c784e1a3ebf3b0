package outwriter

import (
	"testing"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxTableLabelWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		columns int
		want    int
	}{
		{"narrow clamps low", 30, 4, 12},
		{"wide clamps high", 400, 1, 48},
		{"in range", 80, 3, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetMaxTableLabelWidth(&contract.Config{Width: tt.width}, tt.columns))
		})
	}
}
