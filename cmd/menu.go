package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook/terminal"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu (default)" }
func (*menuCmd) Usage() string {
	return `cbk menu

  Runs the interactive session: record deposits and payments, browse the
  ledger and run the reports. This is what cbk does without a subcommand.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := terminal.NewSession(terminal.Config{
		Store:    store(),
		In:       os.Stdin,
		Out:      os.Stdout,
		Now:      now,
		Logger:   logger,
		Currency: *currency,
	})
	err := s.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "\nInterrupted.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
