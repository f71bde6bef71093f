package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/etnz/cashbook/terminal"
	"github.com/google/subcommands"
)

type txCmd struct {
	rangeFlags
	kind   string
	vendor string
	raw    bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `cbk tx [-type deposit|payment] [-month current|previous | -year current|previous | -p <period> | -s <start_date>] [-d <end_date>] [-vendor <keyword>] [-raw]

  Lists transactions from the ledger, most recent first, with options for
  filtering. Transactions whose date cannot be read are left out of date
  filters and reported.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.kind, "type", "", "Only 'deposit' or 'payment' transactions.")
	f.StringVar(&c.vendor, "vendor", "", "Only transactions whose vendor contains this keyword (case insensitive).")
	f.BoolVar(&c.raw, "raw", false, "Print one ledger line per transaction instead of a table.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, ranged, err := c.Range(today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	txs, err := terminal.LoadAndSortLedger(store(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	title := "Transactions"
	switch strings.ToLower(c.kind) {
	case "":
	case "deposit", "deposits":
		txs = cashbook.FilterBySign(txs, true)
		title = "Deposits"
	case "payment", "payments":
		txs = cashbook.FilterBySign(txs, false)
		title = "Payments"
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown transaction type %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	var skipped []cashbook.Skip
	if ranged {
		sel := cashbook.FilterByRange(txs, rng)
		txs, skipped = sel.Transactions, sel.Skipped
		title += " " + rng.Identifier()
		for _, s := range skipped {
			logger.Warn("skipped transaction", "date", s.Transaction.Date, "err", s.Err)
		}
	}
	if c.vendor != "" {
		txs = cashbook.SearchVendor(txs, c.vendor)
	}

	if c.raw {
		fmt.Print(renderer.Lines(txs))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Transactions(title, txs, skipped))
	return subcommands.ExitSuccess
}
