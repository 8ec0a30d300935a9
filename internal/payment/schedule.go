package payment

import (
	"time"

	"github.com/autodinar/autodinar/internal/money"
)

// Installment is one scheduled partial payment within a plan.
type Installment struct {
	DueDate time.Time    `json:"due_date"`
	Amount  money.Amount `json:"amount"`
	Status  Status       `json:"status"`
}

// AddMonths advances t by n calendar months, clamping the day of month
// to the last day of the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := daysIn(target.Year(), target.Month())
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Schedule produces the installment sequence for a plan of count
// payments over total, placed relative to orderDate.
//
// count == 1 is the full-payment path: a single installment dated at
// the order date itself, already Paid. For count > 1 the first
// installment falls exactly one calendar month after the order date and
// each subsequent one a month after the previous; every installment
// carries the rounded per-installment amount, so the sum of the
// schedule can drift from total by a few centimes. The drift is
// deliberate and absorbed downstream by the derived-status tolerance.
func Schedule(total money.Amount, count int, orderDate, today time.Time) []Installment {
	if count <= 1 {
		return []Installment{{
			DueDate: StartOfDay(orderDate),
			Amount:  total,
			Status:  StatusPaid,
		}}
	}

	per := total.DivRound(int64(count))
	first := AddMonths(StartOfDay(orderDate), 1)
	out := make([]Installment, 0, count)
	for i := 0; i < count; i++ {
		due := StartOfDay(AddMonths(first, i))
		out = append(out, Installment{
			DueDate: due,
			Amount:  per,
			Status:  Classify(due, false, today),
		})
	}
	return out
}
