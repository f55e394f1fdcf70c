package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/google/subcommands"
)

const banner = `==========================================
         WELCOME TO FINTRACK APP
==========================================
`

const mainMenu = `
MAIN MENU:
1) Add Deposit
2) Add Payment
3) View Ledger
4) Exit
Choose an option: `

const ledgerMenu = `
LEDGER MENU:
1) View All Transactions
2) View Deposits
3) View Payments
Choose an option: `

// Menu is the interactive, line oriented, user interface.
//
// Every action reloads the ledger from the store: nothing is kept in memory
// between two choices.
type Menu struct {
	Store *fintrack.Store
	In    io.Reader
	Out   io.Writer
	Now   func() time.Time // timestamps new transactions

	scanner *bufio.Scanner
}

// Run shows the main menu until the user exits, the input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	m.scanner = bufio.NewScanner(m.In)
	fmt.Fprint(m.Out, banner)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(m.Out, mainMenu)
		choice, ok := m.readLine()
		if !ok {
			break
		}
		switch choice {
		case "1":
			m.addTransaction(false)
		case "2":
			m.addTransaction(true)
		case "3":
			m.showLedger()
		case "4":
			fmt.Fprintln(m.Out, "Goodbye! Thank you for choosing FinTrack APP!")
			return nil
		default:
			fmt.Fprintln(m.Out, "Invalid choice. Please try again.")
		}
	}
	fmt.Fprintln(m.Out)
	return m.scanner.Err()
}

// readLine reads the next trimmed line of input. ok is false at the end of input.
func (m *Menu) readLine() (line string, ok bool) {
	if !m.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

// prompt prints label and reads the answer.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.Out, label)
	return m.readLine()
}

// addTransaction asks for a deposit or a payment and appends it to the store.
func (m *Menu) addTransaction(payment bool) {
	description, ok := m.prompt("Enter description: ")
	if !ok {
		return
	}
	vendor, ok := m.prompt("Enter vendor: ")
	if !ok {
		return
	}
	input, ok := m.prompt("Enter amount: ")
	if !ok {
		return
	}

	amount, err := parsePositiveAmount(input)
	if err != nil {
		fmt.Fprintf(m.Out, "Error adding transaction: %v\n", err)
		return
	}
	if payment {
		amount = amount.Neg()
	}
	at := m.Now()
	tx, err := fintrack.NewTransaction(date.Of(at), date.ClockOf(at), description, vendor, amount)
	if err != nil {
		fmt.Fprintf(m.Out, "Error adding transaction: %v\n", err)
		return
	}
	if err := m.Store.Append(tx); err != nil {
		fmt.Fprintf(m.Out, "Error adding transaction: %v\n", err)
		return
	}
	fmt.Fprintln(m.Out, "Transaction saved successfully!")
}

// showLedger asks for a view and displays it.
func (m *Menu) showLedger() {
	option, ok := m.prompt(ledgerMenu)
	if !ok {
		return
	}
	var view fintrack.View
	switch option {
	case "1":
		view = fintrack.ViewAll
	case "2":
		view = fintrack.ViewDeposits
	case "3":
		view = fintrack.ViewPayments
	default:
		fmt.Fprintln(m.Out, "Invalid option. Returning to main menu.")
		return
	}

	ledger, err := m.Store.LoadAll()
	if err != nil {
		fmt.Fprintf(m.Out, "Warning: %v\n", err)
	}
	fmt.Fprintln(m.Out)
	if err := fintrack.Display(m.Out, view, ledger.Transactions()); err != nil {
		fmt.Fprintf(m.Out, "Error displaying ledger: %v\n", err)
	}
}

// --- Menu Command ---

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "record and display transactions interactively" }
func (*menuCmd) Usage() string {
	return `menu

  Starts the interactive menu. This is the default when no command is given.
`
}
func (*menuCmd) SetFlags(*flag.FlagSet) {}
func (*menuCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := &Menu{Store: OpenStore(), In: stdin, Out: stdout, Now: now}
	if err := m.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
