package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/etnz/cashbook/terminal"
	"github.com/google/subcommands"
)

// recordCmd appends a deposit or a payment to the ledger.
type recordCmd struct {
	deposit     bool
	date        string
	time        string
	description string
	vendor      string
	amount      string
}

func (c *recordCmd) Name() string {
	if c.deposit {
		return "deposit"
	}
	return "payment"
}

func (c *recordCmd) Synopsis() string {
	if c.deposit {
		return "record money coming in"
	}
	return "record money going out"
}

func (c *recordCmd) Usage() string {
	return fmt.Sprintf(`cbk %s -a <amount> [-d <date>] [-t <time>] [-m <description>] [-v <vendor>]

  Appends a %s to the ledger file. The amount is always entered positive.
  Date and time default to now.
`, c.Name(), c.Name())
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the transaction (YYYY-MM-DD or relative like -1d). Defaults to today.")
	f.StringVar(&c.time, "t", "", "Time of the transaction (HH:MM:SS). Defaults to now.")
	f.StringVar(&c.description, "m", "", "Description of the transaction.")
	f.StringVar(&c.vendor, "v", "", "Vendor (or payer) of the transaction.")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal number.")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.transaction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := store().Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Transaction not recorded.\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("transaction recorded", "ledger", *ledgerFile, "tx", tx.String())
	fmt.Println("Transaction recorded.")
	return subcommands.ExitSuccess
}

// transaction builds the transaction from the flags.
func (c *recordCmd) transaction() (cashbook.Transaction, error) {
	t := now()
	day := date.Of(t)
	if c.date != "" {
		var err error
		if day, err = date.ParseInput(c.date, day); err != nil {
			return cashbook.Transaction{}, fmt.Errorf("%w: date %q", terminal.ErrInvalidInput, c.date)
		}
	}
	at := date.ClockOf(t)
	if c.time != "" {
		var err error
		if at, err = date.ParseClock(c.time); err != nil {
			return cashbook.Transaction{}, fmt.Errorf("%w: time %q", terminal.ErrInvalidInput, c.time)
		}
	}
	amount, err := terminal.ParseAmount(c.amount)
	if err != nil {
		return cashbook.Transaction{}, err
	}
	if c.deposit {
		return cashbook.NewDeposit(day, at, c.description, c.vendor, amount), nil
	}
	return cashbook.NewPayment(day, at, c.description, c.vendor, amount), nil
}
