package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/dkeller/kalshipnl"
	"github.com/dkeller/kalshipnl/renderer"
)

// pnlCmd holds the flags for the 'pnl' subcommand.
type pnlCmd struct {
	ticker  string
	events  bool
	jsonOut bool
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "realized P&L reconciled from fills and settlements" }
func (*pnlCmd) Usage() string {
	return `kpr pnl [-ticker <ticker>] [-events] [-json]

  Replays the synced fill history through FIFO lot accounting, closes
  settled positions at their settlement prices, subtracts exchange-reported
  fees, and displays the realized P&L report.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Restrict the report to one market ticker")
	f.BoolVar(&c.events, "events", false, "Also list every individual lot closing")
	f.BoolVar(&c.jsonOut, "json", false, "Emit the raw report as JSON instead of markdown")
}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := openStore()
	if err != nil {
		return fail("Error opening database %q: %v", *dbPath, err)
	}
	defer db.Close()

	fills, err := db.Fills()
	if err != nil {
		return fail("Error loading fills: %v", err)
	}
	settlements, err := db.Settlements()
	if err != nil {
		return fail("Error loading settlements: %v", err)
	}

	if c.ticker != "" {
		fills = filterTrades(fills, c.ticker)
		settlements = filterSettlements(settlements, c.ticker)
	}

	report, err := kalshipnl.NewPnLReport(fills, settlements)
	if err != nil {
		return fail("Error computing P&L: %v", err)
	}

	if c.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fail("Error encoding report: %v", err)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PnLMarkdown(report))
	if c.events {
		printMarkdown(renderer.EventsMarkdown(report))
	}
	return subcommands.ExitSuccess
}

func filterTrades(trades []kalshipnl.EffectiveTrade, ticker string) []kalshipnl.EffectiveTrade {
	var kept []kalshipnl.EffectiveTrade
	for _, trade := range trades {
		if trade.Ticker == ticker {
			kept = append(kept, trade)
		}
	}
	return kept
}

func filterSettlements(settlements []kalshipnl.Settlement, ticker string) []kalshipnl.Settlement {
	var kept []kalshipnl.Settlement
	for _, settlement := range settlements {
		if settlement.Ticker == ticker {
			kept = append(kept, settlement)
		}
	}
	return kept
}
