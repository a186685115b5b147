package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dkeller/kalshipnl/kalshi"
)

// syncCmd holds the flags for the 'sync' subcommand.
type syncCmd struct {
	keyID   string
	keyFile string
	demo    bool
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "fetch fills and settlements from the exchange" }
func (*syncCmd) Usage() string {
	return `kpr sync [-key-id <id>] [-key-file <path>] [-demo]

  Downloads the full fill and settlement history from the Kalshi API into
  the local database. Resyncing is idempotent. The API key id defaults to
  the KALSHI_API_KEY_ID environment variable.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.keyID, "key-id", os.Getenv("KALSHI_API_KEY_ID"), "Kalshi API key identifier")
	f.StringVar(&c.keyFile, "key-file", "kalshi.pem", "Path to the PEM-encoded RSA private key")
	f.BoolVar(&c.demo, "demo", false, "Use the paper-trading environment")
}

func (c *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.keyID == "" {
		return fail("No API key id: set -key-id or KALSHI_API_KEY_ID")
	}
	pemBytes, err := os.ReadFile(c.keyFile)
	if err != nil {
		return fail("Error reading private key %q: %v", c.keyFile, err)
	}
	key, err := kalshi.ParsePrivateKey(pemBytes)
	if err != nil {
		return fail("Error parsing private key: %v", err)
	}

	var opts []kalshi.Option
	if c.demo {
		opts = append(opts, kalshi.WithDemo())
	}
	client := kalshi.New(c.keyID, key, opts...)

	fills, err := client.GetFills(ctx)
	if err != nil {
		return fail("Error fetching fills: %v", err)
	}
	settlements, err := client.GetSettlements(ctx)
	if err != nil {
		return fail("Error fetching settlements: %v", err)
	}

	db, err := openStore()
	if err != nil {
		return fail("Error opening database %q: %v", *dbPath, err)
	}
	defer db.Close()

	if err := db.UpsertFills(fills); err != nil {
		return fail("Error storing fills: %v", err)
	}
	if err := db.UpsertSettlements(settlements); err != nil {
		return fail("Error storing settlements: %v", err)
	}

	fmt.Printf("Synced %d fills and %d settlements into %s\n", len(fills), len(settlements), *dbPath)
	return subcommands.ExitSuccess
}
