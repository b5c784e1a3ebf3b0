package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/internal/parquet"
	"github.com/huangsam/compareview/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeViewText prints the heading, the candidate row, the mode tabs and then
// the active variant.
func (ow *OutWriter) writeViewText(w io.Writer, view schema.View, cfg *contract.Config) error {
	_, _ = fmt.Fprintln(w, styled(contract.TitleColor, cfg.UseColors, view.Title))
	_, _ = fmt.Fprintln(w, styled(contract.MutedColor, cfg.UseColors, view.Subtitle))
	_, _ = fmt.Fprintln(w, candidateRow(view.Candidates, cfg.UseColors))

	if view.ShowModeTabs {
		_, _ = fmt.Fprintln(w, modeRow(view.Mode, cfg.UseColors))
	}
	_, _ = fmt.Fprintln(w)

	if view.Empty {
		_, _ = fmt.Fprintln(w, styled(contract.MutedColor, cfg.UseColors, view.EmptyMessage))
		return nil
	}

	switch {
	case view.Table != nil:
		return writeComparisonTable(w, view.Table, cfg)
	case view.Radar != nil:
		return ow.writeRadarTable(w, view.Radar, cfg)
	default:
		for _, panel := range view.Charts {
			if err := ow.writePanelTable(w, panel, cfg); err != nil {
				return err
			}
		}
	}
	return nil
}

func candidateRow(cands []schema.Candidate, useColors bool) string {
	parts := make([]string, len(cands))
	for i, c := range cands {
		if c.Selected {
			parts[i] = styled(contract.SelectedColor, useColors, "[x] "+c.Label)
		} else {
			parts[i] = "[ ] " + c.Label
		}
	}
	return strings.Join(parts, "  ")
}

func modeRow(active schema.ViewMode, useColors bool) string {
	parts := make([]string, len(schema.AllViewModes))
	for i, m := range schema.AllViewModes {
		label := schema.ViewModeLabel(m)
		if m == active {
			parts[i] = styled(contract.SelectedColor, useColors, "‹"+label+"›")
		} else {
			parts[i] = " " + label + " "
		}
	}
	return strings.Join(parts, " ")
}

// writeComparisonTable prints one row per metric and one column per selected item.
func writeComparisonTable(w io.Writer, t *schema.Table, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	maxLabel := GetMaxTableLabelWidth(cfg, len(t.Columns))

	headers := []string{"Metric"}
	for i, col := range t.Columns {
		headers = append(headers, paint(i, cfg.UseColors)(contract.TruncateLabel(col.Label, maxLabel)))
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range t.Rows {
		line := []string{contract.TruncateLabel(row.Label, maxLabel)}
		line = append(line, row.Cells...)
		data = append(data, line)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Compared %d items across %d metrics\n", len(t.Columns), len(t.Rows))
	return nil
}

// writePanelTable prints one chart panel as value bars scaled to the panel's peak.
func (ow *OutWriter) writePanelTable(w io.Writer, panel schema.ChartPanel, cfg *contract.Config) error {
	_, _ = fmt.Fprintln(w, styled(contract.TitleColor, cfg.UseColors, panel.Label))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Item", "Value", "Bar"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var peak float64
	for _, p := range panel.Points {
		peak = max(peak, p.Value)
	}
	maxLabel := GetMaxTableLabelWidth(cfg, 2)
	var data [][]string
	for i, p := range panel.Points {
		var pct float64
		if peak > 0 {
			pct = p.Value / peak * 100
		}
		data = append(data, []string{
			paint(i, cfg.UseColors)(contract.TruncateLabel(p.Label, maxLabel)),
			ow.numbers.Number(p.Value),
			paint(i, cfg.UseColors)(bar(pct)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

// writeRadarTable prints the engagement score of every selected item.
func (ow *OutWriter) writeRadarTable(w io.Writer, radar *schema.Radar, cfg *contract.Config) error {
	_, _ = fmt.Fprintln(w, styled(contract.TitleColor, cfg.UseColors, radar.Spec.Title))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Item", "Score", "Bar"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	top := radar.Spec.AxisMax
	maxLabel := GetMaxTableLabelWidth(cfg, 2)
	var data [][]string
	for i, s := range radar.Scores {
		pct := s.Score
		if top > 0 {
			pct = s.Score / top * 100
		}
		data = append(data, []string{
			paint(i, cfg.UseColors)(contract.TruncateLabel(s.Label, maxLabel)),
			fmt.Sprintf("%.1f", s.Score),
			paint(i, cfg.UseColors)(bar(pct)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeViewCSV writes the active variant as flat rows.
func writeViewCSV(w io.Writer, view schema.View) error {
	switch {
	case view.Table != nil:
		header := []string{"metric", "label", "format"}
		for _, col := range view.Table.Columns {
			header = append(header, col.Label)
		}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, row := range view.Table.Rows {
				rec := []string{row.Key, row.Label, string(row.Format)}
				rec = append(rec, row.Cells...)
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			return nil
		})
	case view.Radar != nil:
		return writeCSVWithHeader(w, []string{"item", "label", "score"}, func(cw *csv.Writer) error {
			for _, s := range view.Radar.Scores {
				if err := cw.Write([]string{s.ID, s.Label, fmtFloat(s.Score)}); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			return nil
		})
	default:
		return writeCSVWithHeader(w, []string{"metric", "item", "value"}, func(cw *csv.Writer) error {
			for _, panel := range view.Charts {
				for _, p := range panel.Points {
					if err := cw.Write([]string{panel.Key, p.Label, fmtFloat(p.Value)}); err != nil {
						return fmt.Errorf("failed to write CSV row: %w", err)
					}
				}
			}
			return nil
		})
	}
}

// writeViewParquet exports table cells, or chart points for the chart and radar modes.
func writeViewParquet(view schema.View, path string) error {
	switch {
	case view.Table != nil:
		return parquet.WriteComparisonCellsParquet(parquet.CellsFromTable(view.Table), path)
	case view.Radar != nil:
		return parquet.WriteChartPointsParquet(parquet.PointsFromSpec(view.Radar.Spec, nil), path)
	default:
		var points []parquet.ChartPoint
		for _, panel := range view.Charts {
			points = append(points, parquet.PointsFromSpec(panel.Spec, nil)...)
		}
		return parquet.WriteChartPointsParquet(points, path)
	}
}
