// Package money represents DZD amounts as int64 centimes to keep
// installment arithmetic exact.
package money

import "fmt"

// Amount is a monetary value in centimes (1/100 DZD).
type Amount int64

// FromDinars converts a whole-dinar value to an Amount.
func FromDinars(d int64) Amount {
	return Amount(d * 100)
}

// Dinars returns the whole-dinar part of the amount, truncated.
func (a Amount) Dinars() int64 {
	return int64(a) / 100
}

// DivRound divides the amount into n parts, rounding half up.
// The caller is responsible for n > 0.
func (a Amount) DivRound(n int64) Amount {
	return Amount((int64(a)*2 + n) / (2 * n))
}

// String formats the amount as a DZD figure, e.g. "5200.00 DZD".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d DZD", int64(a)/100, int64(a)%100)
}
