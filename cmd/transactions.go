package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/google/subcommands"
)

// appendTransaction appends a transaction to the store.
func appendTransaction(store *fintrack.Store, tx fintrack.Transaction) subcommands.ExitStatus {
	if err := store.Append(tx); err != nil {
		fmt.Fprintf(stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully appended transaction to %s\n", store.Path())
	return subcommands.ExitSuccess
}

// entryFlags are the flags shared by the commands recording a transaction.
type entryFlags struct {
	date        string
	time        string
	description string
	vendor      string
	amount      string
}

func (e *entryFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&e.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&e.time, "t", "", "Transaction time (HH:MM:SS), defaults to now")
	f.StringVar(&e.description, "desc", "", "What the transaction is about")
	f.StringVar(&e.vendor, "vendor", "", "Who paid, or who was paid")
	f.StringVar(&e.amount, "a", "", "Amount, a positive decimal number")
}

// errUsage reports invalid or missing flags.
var errUsage = errors.New("usage error")

// transaction builds the transaction described by the flags. The amount must
// be entered positive, it is negated for payments.
func (e *entryFlags) transaction(payment bool) (fintrack.Transaction, error) {
	if e.description == "" || e.vendor == "" || e.amount == "" {
		return fintrack.Transaction{}, errUsage
	}
	at := now()
	day, clock := date.Of(at), date.ClockOf(at)
	var err error
	if e.date != "" {
		if day, err = date.Parse(e.date); err != nil {
			return fintrack.Transaction{}, err
		}
	}
	if e.time != "" {
		if clock, err = date.ParseClock(e.time); err != nil {
			return fintrack.Transaction{}, err
		}
	}
	amount, err := parsePositiveAmount(e.amount)
	if err != nil {
		return fintrack.Transaction{}, err
	}
	if payment {
		amount = amount.Neg()
	}
	return fintrack.NewTransaction(day, clock, e.description, e.vendor, amount)
}

// parsePositiveAmount parses an amount as entered by the user. It must stay
// positive once rounded to the cent it is stored with.
func parsePositiveAmount(s string) (fintrack.Amount, error) {
	amount, err := fintrack.ParseAmount(s)
	if err != nil {
		return fintrack.Amount{}, err
	}
	if !amount.Cents().IsPositive() {
		return fintrack.Amount{}, fmt.Errorf("amount must be positive, got %s", s)
	}
	return amount, nil
}

// execute records the transaction described by e.
func (e *entryFlags) execute(f *flag.FlagSet, payment bool) subcommands.ExitStatus {
	tx, err := e.transaction(payment)
	if errors.Is(err, errUsage) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(OpenStore(), tx)
}

// --- Deposit Command ---

type depositCmd struct {
	entryFlags
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record money coming into the ledger" }
func (*depositCmd) Usage() string {
	return `deposit -desc <description> -vendor <vendor> -a <amount> [-d <date>] [-t <time>]

  Records a deposit. The amount is stored as a positive number.
`
}
func (c *depositCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }
func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(f, false)
}

// --- Payment Command ---

type paymentCmd struct {
	entryFlags
}

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "record money going out of the ledger" }
func (*paymentCmd) Usage() string {
	return `payment -desc <description> -vendor <vendor> -a <amount> [-d <date>] [-t <time>]

  Records a payment. The amount is entered positive and stored as a negative number.
`
}
func (c *paymentCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }
func (c *paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(f, true)
}
