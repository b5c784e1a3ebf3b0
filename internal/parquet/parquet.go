// Package parquet provides data structures and functions for exporting compareview
// tables, chart points and flows to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/compareview/schema"
	"github.com/parquet-go/parquet-go"
)

// ComparisonCell is one metric of one selected item.
type ComparisonCell struct {
	// MetricKey is the metric definition key
	MetricKey string `parquet:"metric_key,snappy"`

	// MetricLabel is the metric display name
	MetricLabel string `parquet:"metric_label,snappy"`

	// Format is the display rule of the metric
	Format string `parquet:"format,snappy"`

	// Column is the position of the item in the comparison
	Column int32 `parquet:"column,snappy"`

	// ItemID is the selected item's id
	ItemID string `parquet:"item_id,snappy"`

	// ItemLabel is the selected item's display name
	ItemLabel string `parquet:"item_label,snappy"`

	// NumericValue is set when the raw value is a number (nullable)
	NumericValue *float64 `parquet:"numeric_value,optional,snappy"`

	// TextValue is set when the raw value is text (nullable)
	TextValue *string `parquet:"text_value,optional,snappy"`

	// Display is the formatted cell
	Display string `parquet:"display,snappy"`
}

// ChartPoint is one data point of a chart with its derived share.
type ChartPoint struct {
	Kind     string  `parquet:"kind,snappy"`
	Series   string  `parquet:"series,snappy"`
	Position int32   `parquet:"position,snappy"`
	Label    string  `parquet:"label,snappy"`
	Value    float64 `parquet:"value,snappy"`
	Share    float64 `parquet:"share,snappy"`
	Color    string  `parquet:"color,snappy"`
	Tooltip  string  `parquet:"tooltip,snappy"`
}

// FlowRecord is one from -> to transition.
type FlowRecord struct {
	From         string  `parquet:"from,snappy"`
	To           string  `parquet:"to,snappy"`
	Users        float64 `parquet:"users,snappy"`
	WidthPercent float64 `parquet:"width_percent,snappy"`
	Share        float64 `parquet:"share,snappy"`
}

// CellsFromTable flattens a comparison table into one record per cell.
func CellsFromTable(t *schema.Table) []ComparisonCell {
	if t == nil {
		return nil
	}
	var out []ComparisonCell
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			cell := ComparisonCell{
				MetricKey:   row.Key,
				MetricLabel: row.Label,
				Format:      string(row.Format),
				Column:      int32(i),
				ItemID:      col.ID,
				ItemLabel:   col.Label,
			}
			if i < len(row.Cells) {
				cell.Display = row.Cells[i]
			}
			if i < len(row.Values) {
				v := row.Values[i]
				if f, ok := v.Float(); ok {
					cell.NumericValue = &f
				} else if v.IsText() {
					s := v.String()
					cell.TextValue = &s
				}
			}
			out = append(out, cell)
		}
	}
	return out
}

// PointsFromSpec flattens a chart spec. shares holds one percentage per point.
func PointsFromSpec(spec schema.ChartSpec, shares []float64) []ChartPoint {
	out := make([]ChartPoint, len(spec.Points))
	for i, p := range spec.Points {
		out[i] = ChartPoint{
			Kind:     string(spec.Kind),
			Series:   spec.SeriesLabel,
			Position: int32(i),
			Label:    p.Label,
			Value:    p.Value,
			Color:    spec.FillAt(i).CSS(),
			Tooltip:  spec.TooltipAt(i),
		}
		if i < len(shares) {
			out[i].Share = shares[i]
		}
	}
	return out
}

// RecordsFromSankey flattens the flow bars.
func RecordsFromSankey(view schema.SankeyView) []FlowRecord {
	out := make([]FlowRecord, len(view.Bars))
	for i, b := range view.Bars {
		out[i] = FlowRecord{From: b.From, To: b.To, Users: b.Users, WidthPercent: b.WidthPercent, Share: b.Share}
	}
	return out
}

// WriteComparisonCellsParquet writes comparison cells to a Parquet file.
func WriteComparisonCellsParquet(data []ComparisonCell, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteChartPointsParquet writes chart points to a Parquet file.
func WriteChartPointsParquet(data []ChartPoint, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteFlowRecordsParquet writes flow records to a Parquet file.
func WriteFlowRecordsParquet(data []FlowRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet creates outputPath and writes data with a schema inferred from T's struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
