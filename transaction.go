package fintrack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
)

// Delimiter separates the fields of a transaction in its line encoding.
const Delimiter = '|'

var (
	// ErrInvalidTransaction is returned when a transaction cannot be built from
	// its fields: a required field is missing or a text field would corrupt the
	// line encoding.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrMalformedLine is returned when a stored line cannot be decoded into a
	// transaction.
	ErrMalformedLine = errors.New("malformed line")
)

// Transaction is a single ledger entry. It is immutable once created.
type Transaction struct {
	date        date.Date
	time        date.Clock
	description string
	vendor      string
	amount      Amount
}

// NewTransaction validates its arguments and returns the corresponding
// transaction. Description and vendor are stored trimmed.
//
// It fails with ErrInvalidTransaction when the date or time is missing, when
// the year does not fit in 4 digits, when description or vendor is empty, or when they contain the Delimiter or a line
// break.
func NewTransaction(day date.Date, at date.Clock, description, vendor string, amount Amount) (Transaction, error) {
	if day.IsZero() {
		return Transaction{}, fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	if y := day.Year(); y < 0 || y > 9999 {
		return Transaction{}, fmt.Errorf("%w: date %s is not a 4-digit year", ErrInvalidTransaction, day)
	}
	if at.IsZero() {
		return Transaction{}, fmt.Errorf("%w: time is required", ErrInvalidTransaction)
	}
	description, err := checkText("description", description)
	if err != nil {
		return Transaction{}, err
	}
	vendor, err = checkText("vendor", vendor)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		date:        day,
		time:        at,
		description: description,
		vendor:      vendor,
		amount:      amount,
	}, nil
}

// MustNewTransaction is like NewTransaction but panics on error.
func MustNewTransaction(day date.Date, at date.Clock, description, vendor string, amount Amount) Transaction {
	tx, err := NewTransaction(day, at, description, vendor, amount)
	if err != nil {
		panic(err.Error())
	}
	return tx
}

// checkText validates a free text field and returns it trimmed.
func checkText(field, raw string) (string, error) {
	if strings.ContainsRune(raw, Delimiter) {
		return "", fmt.Errorf("%w: %s %q contains %q", ErrInvalidTransaction, field, raw, Delimiter)
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidTransaction, field)
	}
	if strings.ContainsAny(s, "\r\n") {
		return "", fmt.Errorf("%w: %s %q spans several lines", ErrInvalidTransaction, field, raw)
	}
	return s, nil
}

func (t Transaction) Date() date.Date     { return t.date }
func (t Transaction) Time() date.Clock    { return t.time }
func (t Transaction) Description() string { return t.description }
func (t Transaction) Vendor() string      { return t.vendor }
func (t Transaction) Amount() Amount      { return t.amount }

// IsDeposit reports whether money came in.
func (t Transaction) IsDeposit() bool { return t.amount.IsPositive() }

// IsPayment reports whether money went out.
func (t Transaction) IsPayment() bool { return t.amount.IsNegative() }

// Equal reports whether t and u hold the same entry. Amounts are compared at
// the cent, the precision of the line encoding.
func (t Transaction) Equal(u Transaction) bool {
	return t.date == u.date &&
		t.time == u.time &&
		t.description == u.description &&
		t.vendor == u.vendor &&
		t.amount.Equal(u.amount)
}

// Render returns the human readable, single line form of the transaction:
//
//	2025-03-10 12:30:23 | office chair | Amazon | -169.99
func (t Transaction) Render() string {
	return fmt.Sprintf("%s %s | %s | %s | %s", t.date, t.time, t.description, t.vendor, t.amount)
}

// String implements fmt.Stringer using Render.
func (t Transaction) String() string { return t.Render() }
