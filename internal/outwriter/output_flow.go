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

// writePathsText prints each step as a column of page bars.
func (ow *OutWriter) writePathsText(w io.Writer, view schema.PathExplorationView, cfg *contract.Config) error {
	_, _ = fmt.Fprintln(w, styled(contract.TitleColor, cfg.UseColors, view.Title))
	_, _ = fmt.Fprintln(w, styled(contract.MutedColor, cfg.UseColors, view.Subtitle))
	_, _ = fmt.Fprintln(w)

	maxLabel := GetMaxTableLabelWidth(cfg, 2)
	for _, step := range view.Steps {
		_, _ = fmt.Fprintf(w, "Step %d\n", step.Step)
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Page", "Users", "Bar"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, p := range step.Pages {
			label := contract.TruncateLabel(p.Path, maxLabel)
			if p.Highlight {
				label = styled(contract.HighlightColor, cfg.UseColors, label)
			}
			data = append(data, []string{label, ow.numbers.Number(p.Users), bar(p.WidthPercent)})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if view.EndingPoint != "" {
		_, _ = fmt.Fprintf(w, "→ %s (%s conversions)\n", view.EndingPoint, ow.numbers.Number(view.TotalConversions))
	}
	return nil
}

func writePathsCSV(w io.Writer, view schema.PathExplorationView) error {
	header := []string{"step", "path", "users", "width_percent", "highlight"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, step := range view.Steps {
			for _, p := range step.Pages {
				rec := []string{fmt.Sprint(step.Step), p.Path, fmtFloat(p.Users), fmtFloat(p.WidthPercent), fmt.Sprint(p.Highlight)}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		return nil
	})
}

// writePathsParquet stores each page as a flow from its step to its path.
func writePathsParquet(view schema.PathExplorationView, path string) error {
	var records []parquet.FlowRecord
	for _, step := range view.Steps {
		for _, p := range step.Pages {
			records = append(records, parquet.FlowRecord{
				From:         fmt.Sprintf("step %d", step.Step),
				To:           p.Path,
				Users:        p.Users,
				WidthPercent: p.WidthPercent,
			})
		}
	}
	return parquet.WriteFlowRecordsParquet(records, path)
}

// writeSankeyText prints one bar per link with its share of all flow users.
func (ow *OutWriter) writeSankeyText(w io.Writer, view schema.SankeyView, cfg *contract.Config) error {
	if view.Title != "" {
		_, _ = fmt.Fprintln(w, styled(contract.TitleColor, cfg.UseColors, view.Title))
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"From", "To", "Users", "Share", "Bar"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := GetMaxTableLabelWidth(cfg, 4) / 2
	var data [][]string
	for i, b := range view.Bars {
		data = append(data, []string{
			contract.TruncateLabel(b.From, maxLabel),
			contract.TruncateLabel(b.To, maxLabel),
			ow.numbers.Number(b.Users),
			fmtPercent(b.Share),
			paint(i, cfg.UseColors)(bar(b.WidthPercent)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeSankeyCSV(w io.Writer, view schema.SankeyView) error {
	header := []string{"from", "to", "users", "width_percent", "share"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, b := range view.Bars {
			rec := []string{b.From, b.To, fmtFloat(b.Users), fmtFloat(b.WidthPercent), fmtFloat(b.Share)}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeSankeyParquet(view schema.SankeyView, path string) error {
	return parquet.WriteFlowRecordsParquet(parquet.RecordsFromSankey(view), path)
}

// writeJourneyText prints the journey legend: swatch, label, users and share.
func (ow *OutWriter) writeJourneyText(w io.Writer, view schema.JourneyView, cfg *contract.Config) error {
	_, _ = fmt.Fprintln(w, styled(contract.TitleColor, cfg.UseColors, view.Title))
	_, _ = fmt.Fprintln(w, styled(contract.MutedColor, cfg.UseColors, view.Subtitle))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"", "Journey", "Users", "Share"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := GetMaxTableLabelWidth(cfg, 3)
	var data [][]string
	for i, r := range view.Rows {
		data = append(data, []string{
			swatch(i, cfg.UseColors),
			contract.TruncateLabel(r.Label, maxLabel),
			ow.numbers.Number(r.Users),
			fmtPercent(r.Share),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeJourneyCSV(w io.Writer, view schema.JourneyView) error {
	header := []string{"journey", "users", "share", "color"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range view.Rows {
			if err := cw.Write([]string{r.Label, fmtFloat(r.Users), fmtFloat(r.Share), hexOf(r.Color)}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeJourneyParquet(view schema.JourneyView, path string) error {
	shares := make([]float64, len(view.Rows))
	for i, r := range view.Rows {
		shares[i] = r.Share
	}
	return parquet.WriteChartPointsParquet(parquet.PointsFromSpec(view.Chart, shares), path)
}
