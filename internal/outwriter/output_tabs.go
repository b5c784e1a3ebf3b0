package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
)

// writeTabsText prints the tab row with the active tab bracketed.
func writeTabsText(w io.Writer, states []schema.TabState, cfg *contract.Config) error {
	parts := make([]string, len(states))
	active := ""
	for i, s := range states {
		caption := strings.TrimSpace(s.Icon + " " + s.Label)
		if s.Active {
			active = s.ID
			parts[i] = styled(contract.SelectedColor, cfg.UseColors, "["+caption+"]")
		} else {
			parts[i] = " " + caption + " "
		}
	}
	_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
	if active != "" {
		_, _ = fmt.Fprintln(w, styled(contract.MutedColor, cfg.UseColors, "#"+active))
	}
	return nil
}

func writeTabsCSV(w io.Writer, states []schema.TabState) error {
	return writeCSVWithHeader(w, []string{"id", "label", "icon", "active"}, func(cw *csv.Writer) error {
		for _, s := range states {
			if err := cw.Write([]string{s.ID, s.Label, s.Icon, fmt.Sprint(s.Active)}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
