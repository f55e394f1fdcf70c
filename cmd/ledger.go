package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type ledgerCmd struct {
	view     string
	markdown bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the transactions of the ledger" }
func (*ledgerCmd) Usage() string {
	return `ledger [-view all|deposits|payments] [-md]

  Displays the ledger. "all" lists every transaction, most recent first.
  "deposits" and "payments" list only positive or negative amounts, oldest first.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", fintrack.ViewAll.String(), "Transactions to display: all, deposits or payments")
	f.BoolVar(&c.markdown, "md", false, "Render the view as a markdown table")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := fintrack.ParseView(c.view)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := OpenStore().LoadAll()
	if err != nil {
		// The ledger holds whatever could be read.
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}

	if c.markdown {
		printMarkdown(renderer.LedgerMarkdown(view, ledger))
		return subcommands.ExitSuccess
	}
	if err := fintrack.Display(stdout, view, ledger.Transactions()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
