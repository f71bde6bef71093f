// Package cmd implements the CLI application to keep a cashbook.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/google/subcommands"
)

const (
	EnvLedgerFile = "CBK_LEDGER_FILE"
	EnvCurrency   = "CBK_CURRENCY"
	EnvVerbose    = "CBK_VERBOSE"
	// EnvTestingNow freezes the clock, e.g. "2024-03-20 10:00:00". Used by the documentation tests.
	EnvTestingNow = "CBK_TESTING_NOW"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "")

	c.Register(&recordCmd{deposit: true}, "transactions")
	c.Register(&recordCmd{deposit: false}, "transactions")
	c.Register(&importCmd{}, "transactions")

	c.Register(&txCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transaction.csv", "Path to the ledger file (one pipe delimited transaction per line). Env: "+EnvLedgerFile)
var currency = flag.String("currency", "USD", "ISO 4217 code of the currency amounts are displayed in. Env: "+EnvCurrency)
var Verbose = flag.Bool("v", false, "Log debug messages. Env: "+EnvVerbose)

// logger reports skipped records and failures on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "cbk", Level: log.WarnLevel})

// Setup applies the environment to the global flags that were not set on the
// command line, and validates them. It must be called after flag.Parse.
func Setup() error {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v := os.Getenv(EnvLedgerFile); v != "" && !set["ledger-file"] {
		*ledgerFile = v
	}
	if v := os.Getenv(EnvCurrency); v != "" && !set["currency"] {
		*currency = v
	}
	if os.Getenv(EnvVerbose) == "true" && !set["v"] {
		*Verbose = true
	}
	if *Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if err := cashbook.ValidateCurrency(*currency); err != nil {
		return err
	}
	logger.Debug("configuration", "ledger", *ledgerFile, "currency", *currency)
	return nil
}

// store returns the ledger file store.
func store() cashbook.Store { return cashbook.Store{Path: *ledgerFile} }

// now returns the current time, or the frozen time of EnvTestingNow.
func now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		t, err := time.Parse(time.DateTime, v)
		if err == nil {
			return t
		}
		logger.Warn("ignoring invalid testing time", "value", v, "err", err)
	}
	return time.Now()
}

func today() date.Date { return date.Of(now()) }

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		logger.Debug("cannot render markdown", "err", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
