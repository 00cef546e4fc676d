package outwriter

import (
	"os"

	"github.com/huangsam/leaguestat/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for player, leader and team
// names in table output based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Level, role and eleven metric columns with borders and padding
	baseWidth := 130

	// Three name columns share what is left
	available := (termWidth - baseWidth) / 3
	if available < 6 {
		return 6
	}
	if available > 20 {
		return 20
	}
	return available
}
