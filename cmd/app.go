// Package cmd implements the CLI application to reconcile Kalshi P&L.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/dkeller/kalshipnl/store"
)

// Commands lists the subcommands the binary registers.
var Commands = []subcommands.Command{
	&syncCmd{},
	&pnlCmd{},
	&fillsCmd{},
	&settlementsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbPath = flag.String("db", "kpr.db", "Path to the local SQLite database of synced fills and settlements")

// openStore opens the app database.
func openStore() (*store.Store, error) {
	return store.Open(*dbPath)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. no TTY capabilities).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
