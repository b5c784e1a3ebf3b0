package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/compareview/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *schema.Table {
	return &schema.Table{
		Columns: []schema.Column{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}},
		Rows: []schema.TableRow{
			{
				Key: "users", Label: "Users", Format: schema.NumberFormat,
				Cells:  []string{"1,200", "N/A"},
				Values: []schema.MetricValue{schema.Number(1200), schema.Text("N/A")},
			},
			{
				Key: "rate", Label: "Rate", Format: schema.PercentageFormat,
				Cells:  []string{"12.5%", ""},
				Values: []schema.MetricValue{schema.Number(12.5), {}},
			},
		},
	}
}

func readAll[T any](t *testing.T, path string) []T {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[T](file)
	defer reader.Close()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	return rows[:n]
}

func TestComparisonCellStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(ComparisonCell))
	require.NotNil(t, s)

	for _, colName := range []string{
		"metric_key", "metric_label", "format", "column",
		"item_id", "item_label", "numeric_value", "text_value", "display",
	} {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestCellsFromTable(t *testing.T) {
	cells := CellsFromTable(sampleTable())
	require.Len(t, cells, 4)

	assert.Equal(t, "users", cells[0].MetricKey)
	assert.Equal(t, "a", cells[0].ItemID)
	require.NotNil(t, cells[0].NumericValue)
	assert.InDelta(t, 1200, *cells[0].NumericValue, 0.001)
	assert.Nil(t, cells[0].TextValue)

	assert.Equal(t, "b", cells[1].ItemID)
	require.NotNil(t, cells[1].TextValue)
	assert.Equal(t, "N/A", *cells[1].TextValue)

	assert.Nil(t, cells[3].NumericValue, "missing values stay null")
	assert.Nil(t, cells[3].TextValue, "missing values stay null")
	assert.Empty(t, cells[3].Display)

	assert.Nil(t, CellsFromTable(nil))
}

func TestWriteComparisonCellsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "cells.parquet")
	data := CellsFromTable(sampleTable())

	require.NoError(t, WriteComparisonCellsParquet(data, outputPath))
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	readData := readAll[ComparisonCell](t, outputPath)
	require.Len(t, readData, len(data))
	for i := range data {
		assert.Equal(t, data[i].MetricKey, readData[i].MetricKey)
		assert.Equal(t, data[i].ItemID, readData[i].ItemID)
		assert.Equal(t, data[i].Display, readData[i].Display)
		if data[i].NumericValue == nil {
			assert.Nil(t, readData[i].NumericValue)
		} else {
			require.NotNil(t, readData[i].NumericValue)
			assert.InDelta(t, *data[i].NumericValue, *readData[i].NumericValue, 0.001)
		}
	}
}

func TestWriteChartPointsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "points.parquet")
	spec := schema.ChartSpec{
		Kind:        schema.DoughnutChart,
		SeriesLabel: "Share",
		Points:      []schema.DataPoint{{Label: "x", Value: 30}, {Label: "y", Value: 70}},
		Fill:        []schema.Color{schema.RGB(1, 2, 3)},
		Tooltips:    []string{"x: 30 (30.0%)", "y: 70 (70.0%)"},
	}
	data := PointsFromSpec(spec, []float64{30, 70})
	require.NoError(t, WriteChartPointsParquet(data, outputPath))

	readData := readAll[ChartPoint](t, outputPath)
	require.Len(t, readData, 2)
	assert.Equal(t, "doughnut", readData[0].Kind)
	assert.Equal(t, "rgb(1, 2, 3)", readData[1].Color, "colors cycle")
	assert.InDelta(t, 70.0, readData[1].Share, 0.001)
	assert.Equal(t, "y: 70 (70.0%)", readData[1].Tooltip)
}

func TestWriteFlowRecordsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "flows.parquet")
	view := schema.SankeyView{Bars: []schema.FlowBar{
		{From: "Home", To: "Pricing", Users: 300, WidthPercent: 100, Share: 75},
		{From: "Home", To: "Blog", Users: 100, WidthPercent: 33.3, Share: 25},
	}}
	require.NoError(t, WriteFlowRecordsParquet(RecordsFromSankey(view), outputPath))

	readData := readAll[FlowRecord](t, outputPath)
	require.Len(t, readData, 2)
	assert.Equal(t, "Pricing", readData[0].To)
	assert.InDelta(t, 25.0, readData[1].Share, 0.001)
}

func TestWriteParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteChartPointsParquet([]ChartPoint{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Parquet footer is always written")
	assert.Empty(t, readAll[ChartPoint](t, outputPath))
}

func TestWriteParquet_InvalidPath(t *testing.T) {
	err := WriteFlowRecordsParquet(nil, filepath.Join(t.TempDir(), "missing", "dir", "x.parquet"))
	assert.Error(t, err)
}
