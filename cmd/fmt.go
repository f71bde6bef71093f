package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
	drop       bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `cbk fmt [-o <file>] [-drop]

  Validates and formats the ledger file. This command reads all transactions,
  sorts them by date and time, oldest first, and writes them back with
  escaped fields and canonical amounts.

  Lines that cannot be read stop the command, unless -drop is given, in which
  case they are removed from the ledger.

Usage Examples:

  cbk fmt
  cbk fmt -o -
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write to this file instead of the ledger file, '-' for stdout.")
	f.BoolVar(&c.drop, "drop", false, "Remove the lines that cannot be read.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := store().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if rejected := ledger.Rejected(); len(rejected) > 0 {
		for _, r := range rejected {
			if c.drop {
				logger.Warn("dropping ledger line", "line", r.Line, "text", r.Text, "err", r.Err)
			} else {
				fmt.Fprintf(os.Stderr, "%s:%s\n", *ledgerFile, r)
			}
		}
		if !c.drop {
			fmt.Fprintf(os.Stderr, "Error: %d line(s) cannot be read, fix them or use -drop.\n", len(rejected))
			return subcommands.ExitFailure
		}
		ledger.DropRejected()
	}

	switch c.outputFile {
	case "-":
		err = cashbook.EncodeLedger(os.Stdout, ledger)
	case "":
		err = store().Rewrite(ledger)
	default:
		err = cashbook.Store{Path: c.outputFile}.Rewrite(ledger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile != "-" {
		fmt.Printf("Ledger file '%s' has been formatted.\n", *ledgerFile)
	}
	return subcommands.ExitSuccess
}
