package core

import (
	"testing"

	"github.com/huangsam/compareview/schema"
	"github.com/stretchr/testify/assert"
)

var scoreDefs = []schema.MetricDefinition{{Key: "a"}, {Key: "b"}, {Key: "c"}}

func TestRadarScore(t *testing.T) {
	tests := []struct {
		name    string
		metrics map[string]schema.MetricValue
		want    float64
	}{
		{"skips text", map[string]schema.MetricValue{"a": schema.Number(10), "b": schema.Number(20), "c": schema.Text("x")}, 15},
		{"all numeric", map[string]schema.MetricValue{"a": schema.Number(30), "b": schema.Number(60), "c": schema.Number(90)}, 60},
		{"skips missing", map[string]schema.MetricValue{"a": schema.Number(40)}, 40},
		{"no numbers", map[string]schema.MetricValue{"a": schema.Text("x")}, 0},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RadarScore(schema.Item{ID: "i", Metrics: tt.metrics}, scoreDefs), 1e-9)
		})
	}
}

func TestRadarScores(t *testing.T) {
	items := []schema.Item{
		{ID: "x", Label: "X", Metrics: map[string]schema.MetricValue{"a": schema.Number(10)}},
		{ID: "y", Label: "Y"},
	}
	scores := RadarScores(items, scoreDefs)
	assert.Equal(t, []schema.RadarScore{{ID: "x", Label: "X", Score: 10}, {ID: "y", Label: "Y", Score: 0}}, scores)
}

func TestShares(t *testing.T) {
	assert.Equal(t, []float64{30, 70}, Shares([]float64{30, 70}))
	assert.Equal(t, []float64{33.3, 66.7}, Shares([]float64{1, 2}))
	assert.Equal(t, []float64{0, 0}, Shares([]float64{0, 0}))
	assert.Empty(t, Shares(nil))
}

func TestShareOf(t *testing.T) {
	assert.InDelta(t, 25.0, ShareOf(250, 1000), 0)
	assert.InDelta(t, 0.0, ShareOf(5, 0), 0)
	assert.InDelta(t, 0.0, ShareOf(5, -1), 0)
}

func TestWidthsOfMax(t *testing.T) {
	assert.Equal(t, []float64{100, 50}, WidthsOfMax([]float64{200, 100}))
	assert.Equal(t, []float64{0, 0}, WidthsOfMax([]float64{0, -3}))
	assert.Empty(t, WidthsOfMax(nil))
}

func TestSum(t *testing.T) {
	assert.InDelta(t, 0.0, Sum(nil), 0)
	assert.InDelta(t, 6.0, Sum([]float64{1, 2, 3}), 0)
}
