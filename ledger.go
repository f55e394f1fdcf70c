package fintrack

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are kept in the order they were appended to the
// store, oldest first. A Ledger is a transient copy of the store content.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger holding txs, in that order.
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: slices.Clone(txs)}
}

// Append appends transactions at the end of the ledger.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of all transactions in load order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// All iterates over all transactions in load order.
func (l *Ledger) All() iter.Seq[Transaction] { return slices.Values(l.transactions) }

// Newest returns all transactions, most recent first.
func (l *Ledger) Newest() []Transaction { return Newest(l.transactions) }

// Deposits returns the deposits in load order.
func (l *Ledger) Deposits() []Transaction { return Deposits(l.transactions) }

// Payments returns the payments in load order.
func (l *Ledger) Payments() []Transaction { return Payments(l.transactions) }

// View returns the transactions selected by v, in v's display order.
func (l *Ledger) View(v View) []Transaction { return v.Select(l.transactions) }

// Newest returns txs in reverse order. The ledger is append-only so the last
// appended entry is the most recent one.
func Newest(txs []Transaction) []Transaction {
	r := slices.Clone(txs)
	slices.Reverse(r)
	return r
}

// Deposits returns the transactions with a positive amount, in their original order.
func Deposits(txs []Transaction) []Transaction { return filter(txs, Transaction.IsDeposit) }

// Payments returns the transactions with a negative amount, in their original order.
func Payments(txs []Transaction) []Transaction { return filter(txs, Transaction.IsPayment) }

func filter(txs []Transaction, keep func(Transaction) bool) []Transaction {
	r := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if keep(tx) {
			r = append(r, tx)
		}
	}
	return r
}

// View selects and orders the transactions to display.
type View int

const (
	// ViewAll shows every transaction, most recent first.
	ViewAll View = iota
	// ViewDeposits shows deposits in load order.
	ViewDeposits
	// ViewPayments shows payments in load order.
	ViewPayments
)

// Views lists all views, in menu order.
var Views = []View{ViewAll, ViewDeposits, ViewPayments}

func (v View) String() string {
	switch v {
	case ViewAll:
		return "all"
	case ViewDeposits:
		return "deposits"
	case ViewPayments:
		return "payments"
	default:
		return "unknown"
	}
}

// Title returns the heading displayed above the view.
func (v View) Title() string {
	switch v {
	case ViewAll:
		return "ALL TRANSACTIONS"
	case ViewDeposits:
		return "DEPOSITS"
	case ViewPayments:
		return "PAYMENTS"
	default:
		return "UNKNOWN"
	}
}

// Select returns the transactions of txs that belong to the view, in display order.
func (v View) Select(txs []Transaction) []Transaction {
	switch v {
	case ViewDeposits:
		return Deposits(txs)
	case ViewPayments:
		return Payments(txs)
	default:
		return Newest(txs)
	}
}

// ParseView parses a View from its String form.
func ParseView(s string) (View, error) {
	switch s {
	case "all":
		return ViewAll, nil
	case "deposits":
		return ViewDeposits, nil
	case "payments":
		return ViewPayments, nil
	default:
		return 0, fmt.Errorf("unknown view: %q", s)
	}
}
