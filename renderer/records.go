package renderer

import (
	"fmt"
	"strings"

	"github.com/dkeller/kalshipnl"
)

// FillsMarkdown renders the synced fill history as a markdown table.
func FillsMarkdown(fills []kalshipnl.EffectiveTrade) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Fills\n\n")
	fmt.Fprintln(&b, "| Executed At | Ticker | Side | Action | Qty | Price |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|")
	for _, fill := range fills {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %d¢ |\n",
			fill.ExecutedAt.Format("2006-01-02 15:04:05"),
			fill.Ticker,
			fill.Side,
			fill.Action,
			fill.Quantity,
			fill.PriceCents,
		)
	}
	fmt.Fprintf(&b, "\n%d fills.\n", len(fills))
	return b.String()
}

// SettlementsMarkdown renders the synced settlement records as a markdown
// table.
func SettlementsMarkdown(settlements []kalshipnl.Settlement) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Settlements\n\n")
	fmt.Fprintln(&b, "| Settled At | Ticker | Result | Value | Fees |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, settlement := range settlements {
		value := "-"
		if settlement.Result == kalshipnl.ResultScalar {
			value = fmt.Sprintf("%d¢", settlement.ValueCents)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | $%s |\n",
			settlement.SettledAt.Format("2006-01-02 15:04:05"),
			settlement.Ticker,
			settlement.Result,
			value,
			settlement.FeeCostDollars.StringFixed(2),
		)
	}
	fmt.Fprintf(&b, "\n%d settlements.\n", len(settlements))
	return b.String()
}
