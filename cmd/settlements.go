package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/dkeller/kalshipnl/renderer"
)

// settlementsCmd holds the flags for the 'settlements' subcommand.
type settlementsCmd struct {
	ticker string
}

func (*settlementsCmd) Name() string     { return "settlements" }
func (*settlementsCmd) Synopsis() string { return "list synced settlements" }
func (*settlementsCmd) Usage() string {
	return `kpr settlements [-ticker <ticker>]

  Lists the locally synced settlement records.
`
}

func (c *settlementsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Restrict the listing to one market ticker")
}

func (c *settlementsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := openStore()
	if err != nil {
		return fail("Error opening database %q: %v", *dbPath, err)
	}
	defer db.Close()

	settlements, err := db.Settlements()
	if err != nil {
		return fail("Error loading settlements: %v", err)
	}
	if c.ticker != "" {
		settlements = filterSettlements(settlements, c.ticker)
	}

	printMarkdown(renderer.SettlementsMarkdown(settlements))
	return subcommands.ExitSuccess
}
