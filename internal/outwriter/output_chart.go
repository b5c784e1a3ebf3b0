package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/internal/parquet"
	"github.com/huangsam/compareview/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// chartRow is the JSON shape of one chart point.
type chartRow struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Share   float64 `json:"share"`
	Color   string  `json:"color"`
	Tooltip string  `json:"tooltip"`
}

// chartOutput is the JSON shape of a chart.
type chartOutput struct {
	Kind        schema.ChartKind   `json:"kind"`
	Title       string             `json:"title,omitempty"`
	SeriesLabel string             `json:"series_label"`
	Orientation schema.Orientation `json:"orientation"`
	Points      []chartRow         `json:"points"`
	Spec        schema.ChartSpec   `json:"spec"`
}

func shareAt(shares []float64, i int) float64 {
	if i < len(shares) {
		return shares[i]
	}
	return 0
}

// writeChartText prints the chart points with bars scaled to the peak value.
func (ow *OutWriter) writeChartText(w io.Writer, spec schema.ChartSpec, shares []float64, cfg *contract.Config) error {
	if spec.Title != "" {
		_, _ = fmt.Fprintln(w, styled(contract.TitleColor, cfg.UseColors, spec.Title))
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Label", "Value", "Share", "Bar", "Tooltip"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var peak float64
	for _, p := range spec.Points {
		peak = max(peak, p.Value)
	}
	maxLabel := GetMaxTableLabelWidth(cfg, 4)
	var data [][]string
	for i, p := range spec.Points {
		var pct float64
		if peak > 0 {
			pct = p.Value / peak * 100
		}
		data = append(data, []string{
			contract.TruncateLabel(p.Label, maxLabel),
			ow.numbers.Number(p.Value),
			fmtPercent(shareAt(shares, i)),
			paint(i, cfg.UseColors)(bar(pct)),
			spec.TooltipAt(i),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s chart with %d points\n", spec.Kind, len(spec.Points))
	return nil
}

func writeChartCSV(w io.Writer, spec schema.ChartSpec, shares []float64) error {
	header := []string{"position", "label", "value", "share", "color", "tooltip"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, p := range spec.Points {
			rec := []string{
				fmt.Sprint(i),
				p.Label,
				fmtFloat(p.Value),
				fmtFloat(shareAt(shares, i)),
				hexOf(spec.FillAt(i)),
				spec.TooltipAt(i),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeChartJSON(w io.Writer, spec schema.ChartSpec, shares []float64) error {
	out := chartOutput{
		Kind:        spec.Kind,
		Title:       spec.Title,
		SeriesLabel: spec.SeriesLabel,
		Orientation: spec.Orientation,
		Points:      make([]chartRow, len(spec.Points)),
		Spec:        spec,
	}
	for i, p := range spec.Points {
		out.Points[i] = chartRow{
			Label:   p.Label,
			Value:   p.Value,
			Share:   shareAt(shares, i),
			Color:   spec.FillAt(i).CSS(),
			Tooltip: spec.TooltipAt(i),
		}
	}
	return writeJSON(w, out)
}

func writeChartParquet(spec schema.ChartSpec, shares []float64, path string) error {
	return parquet.WriteChartPointsParquet(parquet.PointsFromSpec(spec, shares), path)
}
