package core

import (
	"math"

	"github.com/huangsam/compareview/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RadarScore is the mean of the item's numeric metrics across defs.
// Text and missing values are skipped; an item with none scores 0.
func RadarScore(item schema.Item, defs []schema.MetricDefinition) float64 {
	values := make([]float64, 0, len(defs))
	for _, d := range defs {
		if v, ok := item.Metric(d.Key).Float(); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// RadarScores scores every item in order.
func RadarScores(items []schema.Item, defs []schema.MetricDefinition) []schema.RadarScore {
	out := make([]schema.RadarScore, len(items))
	for i, item := range items {
		out[i] = schema.RadarScore{ID: item.ID, Label: item.Label, Score: RadarScore(item, defs)}
	}
	return out
}

// ShareOf returns value as a percentage of total rounded to one decimal.
// A non-positive total yields 0.
func ShareOf(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return round1(value / total * 100)
}

// Shares returns each value as a percentage of their sum.
func Shares(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	total := floats.Sum(values)
	for i, v := range values {
		out[i] = ShareOf(v, total)
	}
	return out
}

// WidthsOfMax scales values to percentages of the largest one, for bar widths.
func WidthsOfMax(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	peak := floats.Max(values)
	if peak <= 0 {
		return out
	}
	for i, v := range values {
		out[i] = v / peak * 100
	}
	return out
}

// Sum totals values; it is zero for an empty slice.
func Sum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}

func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
