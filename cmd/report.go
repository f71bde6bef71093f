package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/etnz/cashbook/terminal"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	rangeFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display deposits, payments and net for a period" }
func (*reportCmd) Usage() string {
	return `cbk report [-month current|previous | -year current|previous | -p <period> | -s <start_date>] [-d <end_date>]

  Displays the number and total of deposits and payments, and the net
  balance, for a range of dates. Defaults to the current month.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.rangeFlags.SetFlags(f) }

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := today()
	rng, ok, err := c.Range(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !ok {
		rng = cashbook.MonthRange(on, true)
	}

	txs, err := terminal.LoadAndSortLedger(store(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	summary := cashbook.NewSummary(txs, rng, *currency)
	for _, s := range summary.Skipped {
		logger.Warn("skipped transaction", "date", s.Transaction.Date, "err", s.Err)
	}
	printMarkdown(renderer.Summary(summary))
	return subcommands.ExitSuccess
}
