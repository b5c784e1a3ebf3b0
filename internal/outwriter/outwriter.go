// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct {
	numbers contract.NumberFormatter
}

// NewOutWriter creates a new instance of the output writer. Numbers in text
// output are rendered by numbers; nil falls back to plain decimals.
func NewOutWriter(numbers contract.NumberFormatter) *OutWriter {
	if numbers == nil {
		numbers = plainNumbers{}
	}
	return &OutWriter{numbers: numbers}
}

// WriteView prints a rendered comparison using the configured output format.
func (ow *OutWriter) WriteView(view schema.View, cfg *contract.Config) error {
	return ow.writeDispatch(cfg, "comparison", writers{
		text:    func(w io.Writer) error { return ow.writeViewText(w, view, cfg) },
		csv:     func(w io.Writer) error { return writeViewCSV(w, view) },
		json:    func(w io.Writer) error { return writeJSON(w, view) },
		parquet: func(path string) error { return writeViewParquet(view, path) },
	})
}

// WriteChart prints a chart spec's data using the configured output format.
func (ow *OutWriter) WriteChart(spec schema.ChartSpec, shares []float64, cfg *contract.Config) error {
	return ow.writeDispatch(cfg, "chart", writers{
		text:    func(w io.Writer) error { return ow.writeChartText(w, spec, shares, cfg) },
		csv:     func(w io.Writer) error { return writeChartCSV(w, spec, shares) },
		json:    func(w io.Writer) error { return writeChartJSON(w, spec, shares) },
		parquet: func(path string) error { return writeChartParquet(spec, shares, path) },
	})
}

// WritePaths prints the path exploration timeline.
func (ow *OutWriter) WritePaths(view schema.PathExplorationView, cfg *contract.Config) error {
	return ow.writeDispatch(cfg, "paths", writers{
		text:    func(w io.Writer) error { return ow.writePathsText(w, view, cfg) },
		csv:     func(w io.Writer) error { return writePathsCSV(w, view) },
		json:    func(w io.Writer) error { return writeJSON(w, view) },
		parquet: func(path string) error { return writePathsParquet(view, path) },
	})
}

// WriteSankey prints the flow bars.
func (ow *OutWriter) WriteSankey(view schema.SankeyView, cfg *contract.Config) error {
	return ow.writeDispatch(cfg, "flows", writers{
		text:    func(w io.Writer) error { return ow.writeSankeyText(w, view, cfg) },
		csv:     func(w io.Writer) error { return writeSankeyCSV(w, view) },
		json:    func(w io.Writer) error { return writeJSON(w, view) },
		parquet: func(path string) error { return writeSankeyParquet(view, path) },
	})
}

// WriteJourney prints the journey distribution legend.
func (ow *OutWriter) WriteJourney(view schema.JourneyView, cfg *contract.Config) error {
	return ow.writeDispatch(cfg, "journeys", writers{
		text:    func(w io.Writer) error { return ow.writeJourneyText(w, view, cfg) },
		csv:     func(w io.Writer) error { return writeJourneyCSV(w, view) },
		json:    func(w io.Writer) error { return writeJSON(w, view) },
		parquet: func(path string) error { return writeJourneyParquet(view, path) },
	})
}

// WriteTabs prints the tab row with the active tab highlighted.
func (ow *OutWriter) WriteTabs(states []schema.TabState, cfg *contract.Config) error {
	return ow.writeDispatch(cfg, "tabs", writers{
		text: func(w io.Writer) error { return writeTabsText(w, states, cfg) },
		csv:  func(w io.Writer) error { return writeTabsCSV(w, states) },
		json: func(w io.Writer) error { return writeJSON(w, states) },
	})
}

// WriteFormats prints the format kinds with sample conversions.
func (ow *OutWriter) WriteFormats(examples []schema.FormatExample, cfg *contract.Config) error {
	return ow.writeDispatch(cfg, "formats", writers{
		text: func(w io.Writer) error { return writeFormatsText(w, examples) },
		csv:  func(w io.Writer) error { return writeFormatsCSV(w, examples) },
		json: func(w io.Writer) error { return writeJSON(w, examples) },
	})
}

// WriteCanvas writes a drawn chart to the configured output file or stdout.
func (ow *OutWriter) WriteCanvas(canvas io.WriterTo, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		_, err := canvas.WriteTo(w)
		return err
	}, "Wrote "+string(cfg.Output)+" chart")
}

// writers holds one writer per tabular output mode; a nil entry means unsupported.
type writers struct {
	text    func(io.Writer) error
	csv     func(io.Writer) error
	json    func(io.Writer) error
	parquet func(path string) error
}

// writeDispatch picks the writer for cfg.Output.
func (ow *OutWriter) writeDispatch(cfg *contract.Config, what string, ws writers) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, ws.json, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, ws.csv, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if ws.parquet == nil {
			return fmt.Errorf("parquet output is not supported for %s", what)
		}
		if err := ws.parquet(cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		logSaved("Wrote Parquet", cfg.OutputFile)
	case schema.HTMLOut, schema.SVGOut, schema.PNGOut:
		return fmt.Errorf("%s output is not supported for %s", cfg.Output, what)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, ws.text, "Wrote table")
	}
	return nil
}

// plainNumbers is the fallback formatter without locale grouping.
type plainNumbers struct{}

func (plainNumbers) Number(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
