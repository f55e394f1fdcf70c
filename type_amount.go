package fintrack

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a signed monetary value. A positive amount is a deposit, a negative
// amount a payment.
//
// Amounts are kept exact, they are only rounded when formatted.
type Amount struct {
	value decimal.Decimal
}

// A creates an amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported amount type %T", value))
	}
}

// ParseAmount parses a decimal amount such as "-169.99", "12" or "1e3".
func ParseAmount(s string) (Amount, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: v}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// String formats the amount with exactly two fractional digits, rounding half
// away from zero: 1.005 is "1.01" and -1.005 is "-1.01".
func (a Amount) String() string { return a.value.StringFixed(2) }

// Decimal returns the exact value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Cents returns the amount rounded to two fractional digits.
func (a Amount) Cents() Amount { return Amount{value: a.value.Round(2)} }

// Equal reports whether a and b are the same once rounded to cents, which is
// the precision they are persisted with.
func (a Amount) Equal(b Amount) bool { return a.value.Round(2).Equal(b.value.Round(2)) }

func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsPositive() bool { return a.value.IsPositive() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }
func (a Amount) Neg() Amount      { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount      { return Amount{value: a.value.Abs()} }
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}
