package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/dkeller/kalshipnl/renderer"
)

// fillsCmd holds the flags for the 'fills' subcommand.
type fillsCmd struct {
	ticker string
}

func (*fillsCmd) Name() string     { return "fills" }
func (*fillsCmd) Synopsis() string { return "list synced fills" }
func (*fillsCmd) Usage() string {
	return `kpr fills [-ticker <ticker>]

  Lists the locally synced fill history in execution order.
`
}

func (c *fillsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Restrict the listing to one market ticker")
}

func (c *fillsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := openStore()
	if err != nil {
		return fail("Error opening database %q: %v", *dbPath, err)
	}
	defer db.Close()

	fills, err := db.Fills()
	if err != nil {
		return fail("Error loading fills: %v", err)
	}
	if c.ticker != "" {
		fills = filterTrades(fills, c.ticker)
	}

	printMarkdown(renderer.FillsMarkdown(fills))
	return subcommands.ExitSuccess
}
