// Command cbk keeps a personal cashbook: deposits and payments recorded in a
// flat ledger file, listed and summarized on demand.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/etnz/cashbook/cmd"
	"github.com/etnz/cashbook/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file in the working directory provides defaults for the CBK_* variables.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, "cbk")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	completion(commander).Complete("cbk")

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	if flag.NArg() == 0 {
		// the interactive menu is the default command
		flag.CommandLine.Parse(append(os.Args[1:], "menu"))
	} else if name := flag.Arg(0); !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	// An interrupt cancels ctx, the menu stops at its next or pending prompt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// registered reports whether name is a subcommand of c.
func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}

// flagPredictors completes the values of the flags shared by several commands.
var flagPredictors = map[string]complete.Predictor{
	"type":   predict.Set{"deposit", "payment"},
	"month":  predict.Set{"current", "previous"},
	"year":   predict.Set{"current", "previous"},
	"p":      predict.Set{"day", "week", "month", "quarter", "year"},
	"format": predict.Set{"jsonl", "yaml"},
	"o":      predict.Files("*"),
	"raw":    predict.Nothing,
	"drop":   predict.Nothing,
	"n":      predict.Nothing,
}

// completion describes the command line of cbk for shell completion.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*"),
			"currency":    predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD"},
			"v":           predict.Nothing,
		},
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		flags := map[string]complete.Predictor{}
		fs.VisitAll(func(f *flag.Flag) {
			if p, ok := flagPredictors[f.Name]; ok {
				flags[f.Name] = p
				return
			}
			flags[f.Name] = predict.Something
		})
		sc := &complete.Command{Flags: flags}
		switch sub.Name() {
		case "import":
			sc.Args = predict.Files("*.json")
		case "help":
			sc.Args = predict.Set(commandNames(c))
		case "topic":
			topics, _ := docs.GetAllTopics()
			sc.Args = predict.Set(append(topics, "readme"))
		}
		root.Sub[sub.Name()] = sc
	})
	return root
}

func commandNames(c *subcommands.Commander) []string {
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		names = append(names, sub.Name())
	})
	return names
}
