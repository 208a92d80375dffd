// Package types provides shared value objects and type definitions
// used across multiple modules (Shared Kernel pattern).
package types

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Money errors.
var (
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidAmount    = errors.New("invalid decimal amount")
	ErrSubCentPrecision = errors.New("amount has more than two decimal places")
	ErrAmountOverflow   = errors.New("amount exceeds the representable range")
)

// Money represents a monetary value in the store currency.
// Immutable value object - all operations return new instances.
// The amount is held in cents so arithmetic never drifts the way
// floating point would; the decimal form only exists at the API boundary.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// MustNewMoney creates a Money value, panicking on a negative amount.
// Use only for trusted input (e.g., from database).
func MustNewMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses a decimal string such as "12.99" into Money.
// Sub-cent precision is rejected rather than rounded.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return Money{}, ErrSubCentPrecision
	}
	return Money{cents: cents.IntPart()}, nil
}

func (m Money) Cents() int64 { return m.cents }
func (m Money) IsZero() bool { return m.cents == 0 }

// Decimal returns the amount as an exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// AddChecked is Add with an overflow guard, for sums built from
// client-supplied input.
func (m Money) AddChecked(other Money) (Money, error) {
	if m.cents > math.MaxInt64-other.cents {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: m.cents + other.cents}, nil
}

// Multiply scales the amount by an integer factor (e.g. a quantity).
func (m Money) Multiply(factor int64) Money {
	return Money{cents: m.cents * factor}
}

// MultiplyChecked is Multiply with an overflow guard. The factor must
// be positive; amounts are non-negative by construction, so overflow
// only ever happens past MaxInt64.
func (m Money) MultiplyChecked(factor int64) (Money, error) {
	if factor <= 0 {
		return Money{}, ErrInvalidAmount
	}
	if m.cents != 0 && factor > math.MaxInt64/m.cents {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: m.cents * factor}, nil
}

func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "50.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON renders the amount as a decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
