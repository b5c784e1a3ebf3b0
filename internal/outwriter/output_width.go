package outwriter

import (
	"os"

	"github.com/huangsam/compareview/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableLabelWidth calculates the maximum width for labels in table output
// based on terminal width and how many value columns share the row.
func GetMaxTableLabelWidth(cfg *contract.Config, valueColumns int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for value columns, borders and padding
	available := termWidth - valueColumns*14 - 10
	if available < 12 {
		return 12
	}
	if available > 48 {
		return 48
	}
	return available
}
