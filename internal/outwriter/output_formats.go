package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/compareview/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeFormatsText prints the format kinds and their sample conversions.
func writeFormatsText(w io.Writer, examples []schema.FormatExample) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Format", "Rule", "Input", "Output"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, e := range examples {
		data = append(data, []string{string(e.Kind), e.Rule, e.Input, e.Output})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeFormatsCSV(w io.Writer, examples []schema.FormatExample) error {
	return writeCSVWithHeader(w, []string{"format", "rule", "input", "output"}, func(cw *csv.Writer) error {
		for _, e := range examples {
			if err := cw.Write([]string{string(e.Kind), e.Rule, e.Input, e.Output}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
