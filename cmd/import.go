package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type importCmd struct {
	mapping cashbook.Mapping
	dryRun  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "append transactions read from a JSON document" }
func (*importCmd) Usage() string {
	return `cbk import [-items <path>] [-date <path>] [-time <path>] [-description <path>] [-vendor <path>] [-amount <path>] [-n] [<file.json>]

  Reads a JSON document (a file, or stdin when no file is given) and appends
  the transactions it describes to the ledger. Every flag is a JSONPath
  expression: -items selects the list of items in the document, the others
  are evaluated on each item. Positive amounts are deposits, negative amounts
  are payments.

Usage Examples:

  cbk import statement.json
  cbk import -items '$.operations[*]' -date '$.booked' -amount '$.value' bank.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	d := cashbook.DefaultMapping()
	f.StringVar(&c.mapping.Items, "items", d.Items, "JSONPath of the list of items.")
	f.StringVar(&c.mapping.Date, "date", d.Date, "JSONPath of the date of an item (mandatory).")
	f.StringVar(&c.mapping.Time, "time", d.Time, "JSONPath of the time of an item.")
	f.StringVar(&c.mapping.Description, "description", d.Description, "JSONPath of the description of an item.")
	f.StringVar(&c.mapping.Vendor, "vendor", d.Vendor, "JSONPath of the vendor of an item.")
	f.StringVar(&c.mapping.Amount, "amount", d.Amount, "JSONPath of the signed amount of an item (mandatory).")
	f.BoolVar(&c.dryRun, "n", false, "Print the transactions instead of appending them.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	name := "stdin"
	switch f.NArg() {
	case 0:
	case 1:
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in, name = file, f.Arg(0)
	default:
		fmt.Fprintln(os.Stderr, "Error: import reads at most one file.")
		return subcommands.ExitUsageError
	}

	txs, rejected, err := cashbook.ImportJSON(in, c.mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	for _, r := range rejected {
		logger.Warn("skipped item", "source", name, "item", r.Line, "err", r.Err)
	}

	if c.dryRun {
		for _, tx := range txs {
			fmt.Println(tx)
		}
		return subcommands.ExitSuccess
	}

	s := store()
	for i, tx := range txs {
		if err := s.Append(tx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v. %d of %d transactions imported.\n", err, i, len(txs))
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Imported %d transaction(s) into %s, %d item(s) skipped.\n", len(txs), *ledgerFile, len(rejected))
	return subcommands.ExitSuccess
}
