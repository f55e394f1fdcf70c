package fintrack

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
)

// fieldCount is the number of fields in an encoded transaction.
const fieldCount = 5

// Encode returns the canonical line encoding of the transaction, without line
// terminator:
//
//	2025-03-10|12:30:23|office chair|Amazon|-169.99
//
// The amount always has two fractional digits. Description and vendor never
// contain the Delimiter, so the line always splits back into five fields.
func (t Transaction) Encode() string {
	var b strings.Builder
	b.WriteString(t.date.String())
	b.WriteRune(Delimiter)
	b.WriteString(t.time.String())
	b.WriteRune(Delimiter)
	b.WriteString(t.description)
	b.WriteRune(Delimiter)
	b.WriteString(t.vendor)
	b.WriteRune(Delimiter)
	b.WriteString(t.amount.String())
	return b.String()
}

// DecodeTransaction parses a line produced by Encode.
//
// Every failure matches ErrMalformedLine. When the fields are well formed but
// do not make a valid transaction, the error also matches ErrInvalidTransaction.
func DecodeTransaction(line string) (Transaction, error) {
	if strings.TrimSpace(line) == "" {
		return Transaction{}, fmt.Errorf("%w: empty line", ErrMalformedLine)
	}
	fields := strings.Split(line, string(Delimiter))
	if len(fields) != fieldCount {
		return Transaction{}, fmt.Errorf("%w: %q has %d fields, want %d", ErrMalformedLine, line, len(fields), fieldCount)
	}

	day, err := date.ParseISO(fields[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	at, err := date.ParseClock(fields[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	amount, err := ParseAmount(strings.TrimSpace(fields[4]))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	tx, err := NewTransaction(day, at, fields[2], fields[3], amount)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	return tx, nil
}
