// Package renderer turns reports into markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/dkeller/kalshipnl"
)

// PnLMarkdown renders a realized-P&L report to a markdown string.
func PnLMarkdown(report *kalshipnl.PnLReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized P&L Report\n\n")

	fmt.Fprint(&b, "## Per Market\n\n")
	fmt.Fprintln(&b, "| Ticker | Realized | Fees | Wins | Losses | Open |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, entry := range report.Tickers {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %d | %d |\n",
			entry.Ticker,
			entry.RealizedCents.SignedString(),
			entry.FeeCents.String(),
			entry.WinCount,
			entry.LossCount,
			entry.OpenQuantity,
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%d** | **%d** | |\n",
		report.TotalRealizedCents.SignedString(),
		report.TotalFeeCents.String(),
		report.WinCount,
		report.LossCount,
	)

	fmt.Fprint(&b, "\n## Statistics\n\n")
	fmt.Fprintf(&b, "- Average win: %s\n", report.AvgWinCents.String())
	fmt.Fprintf(&b, "- Average loss: %s\n", report.AvgLossCents.String())

	if len(report.Warnings) > 0 {
		fmt.Fprint(&b, "\n## Warnings\n\n")
		fmt.Fprint(&b, "The report is incomplete for the markets below.\n\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	return b.String()
}

// EventsMarkdown renders the individual lot closings behind a report, the
// audit trail for reconciling a surprising total.
func EventsMarkdown(report *kalshipnl.PnLReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Closed Lots\n\n")
	fmt.Fprintln(&b, "| Closed At | Ticker | Side | Qty | Entry | Exit | Realized | Source |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|:---|")
	for _, event := range report.Events {
		source := "trade"
		if event.Synthetic {
			source = "settlement"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %d¢ | %d¢ | %s | %s |\n",
			event.ClosedAt.Format("2006-01-02 15:04"),
			event.Ticker,
			event.Side,
			event.Quantity,
			event.EntryPriceCents,
			event.ExitPriceCents,
			event.RealizedCents.SignedString(),
			source,
		)
	}
	return b.String()
}
