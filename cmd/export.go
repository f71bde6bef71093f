package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/terminal"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the ledger as JSON lines or YAML" }
func (*exportCmd) Usage() string {
	return `cbk export [-format jsonl|yaml]

  Writes all the transactions of the ledger on the standard output, most
  recent first.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "jsonl", "Output format: 'jsonl' or 'yaml'.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var export func(w io.Writer, list []cashbook.Transaction) error
	switch c.format {
	case "jsonl":
		export = cashbook.ExportJSONL
	case "yaml":
		export = cashbook.ExportYAML
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	txs, err := terminal.LoadAndSortLedger(store(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if err := export(os.Stdout, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
