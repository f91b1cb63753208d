package kernel

import (
	"fmt"

	"hatid/internal/pkg/errs"
)

// Money is a non-negative peso amount stored in centavos.
//
// Money is used for order service fees and totals and for delivery earnings.
// Amounts never go negative; arithmetic that would produce a negative amount
// returns an error instead.
//
// The zero value (zero centavos) is a valid amount, so Money has no
// constructor guard; NewMoney only rejects negative input.
type Money struct {
	centavos int64
}

// NewMoney creates a Money amount from centavos. Negative amounts are rejected.
func NewMoney(centavos int64) (Money, error) {
	if centavos < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d centavos is negative", centavos),
		)
	}
	return Money{centavos: centavos}, nil
}

// Centavos returns the amount in centavos.
func (m Money) Centavos() int64 {
	return m.centavos
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{centavos: m.centavos + other.centavos}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.centavos == 0
}

// GreaterOrEqual reports whether m is at least other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.centavos >= other.centavos
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.centavos == other.centavos
}

// String renders the amount as pesos with two decimal places, e.g. "₱65.00".
func (m Money) String() string {
	return fmt.Sprintf("₱%d.%02d", m.centavos/100, m.centavos%100)
}
