package kernel

import (
	"fmt"
	"math"

	"medpanda/internal/pkg/errs"
)

// maxMoneyCents bounds a single amount to keep totals inside int64 arithmetic
// even after summing a full order.
const maxMoneyCents = int64(1) << 50

// Money is a value object representing a non-negative currency amount.
// Amounts are stored as integer cents so that sums over order lines are exact;
// float representations are produced only at the presentation boundary.
//
// The zero value of Money is a valid zero amount, which keeps aggregates
// restored from persistence simple. Negative amounts cannot be constructed.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromFloat(12.99)
//	if err != nil {
//	    // handle error
//	}
//	lineTotal := price.Mul(3)
//	fmt.Println(lineTotal.Float64()) // 38.97
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money amount from integer cents.
// Returns an error for negative or absurdly large values.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 || cents > maxMoneyCents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, maxMoneyCents)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money amount from a float value in currency units.
// The value is rounded to the nearest cent, matching how prices arrive from
// catalog feeds and API payloads.
func NewMoneyFromFloat(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, errs.NewValueIsInvalidError("money")
	}
	return NewMoneyFromCents(int64(math.Round(value * 100)))
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units for presentation.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Mul returns the amount multiplied by a non-negative quantity.
func (m Money) Mul(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
