package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
)

// barCells is the width of a full-scale text bar.
const barCells = 30

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		logSaved(successMsg, outputFile)
	}
	return nil
}

func logSaved(successMsg, outputFile string) {
	_, _ = fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// fmtFloat renders v for machine-readable output without grouping.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fmtPercent renders a share with one decimal place.
func fmtPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// bar draws a horizontal bar for a percentage in [0, 100].
func bar(percent float64) string {
	n := int(percent/100*barCells + 0.5)
	n = max(0, min(barCells, n))
	if n == 0 && percent > 0 {
		return "▏"
	}
	return strings.Repeat("█", n)
}

// paletteAttrs approximates the comparison palette with terminal colors.
var paletteAttrs = []color.Attribute{
	color.FgBlue,
	color.FgMagenta,
	color.FgGreen,
	color.FgYellow,
	color.FgHiMagenta,
	color.FgRed,
}

// paint returns a sprint function for column i, or plain fmt.Sprint when colors are off.
func paint(i int, useColors bool) func(a ...any) string {
	if !useColors {
		return fmt.Sprint
	}
	return color.New(paletteAttrs[i%len(paletteAttrs)]).SprintFunc()
}

// styled applies c when colors are on.
func styled(c *color.Color, useColors bool, s string) string {
	if !useColors {
		return s
	}
	return c.Sprint(s)
}

// swatch is a colored legend marker for an item or slice.
func swatch(i int, useColors bool) string {
	return paint(i, useColors)("●")
}

// hexOf renders a color for CSV exports.
func hexOf(c schema.Color) string { return c.Hex() }
