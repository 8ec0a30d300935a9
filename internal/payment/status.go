// Package payment implements the installment payment engine: schedule
// generation, per-installment status classification, plan aggregation,
// and the derived order-level payment status.
//
// Only "Paid" is ground truth. Every other installment status is a
// function of the current date and is recomputed on each read, so all
// classification entry points take an explicit today parameter.
package payment

import "time"

// Status is the state of a single installment at an evaluation instant.
type Status string

const (
	StatusPaid     Status = "Paid"
	StatusDue      Status = "Due"
	StatusOverdue  Status = "Overdue"
	StatusUpcoming Status = "Upcoming"
)

// Frequency is the cadence of a payment plan.
type Frequency string

const (
	FrequencySingle  Frequency = "Single"
	FrequencyMonthly Frequency = "Monthly"
)

// StartOfDay truncates t to midnight UTC. All due-date comparisons
// happen at day granularity in UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// Classify assigns the status of one installment. It is a pure function
// of (dueDate, paid, today): paid wins outright, then the due date is
// compared against today at day granularity.
func Classify(dueDate time.Time, paid bool, today time.Time) Status {
	if paid {
		return StatusPaid
	}
	due := StartOfDay(dueDate)
	day := StartOfDay(today)
	switch {
	case due.Equal(day):
		return StatusDue
	case due.Before(day):
		return StatusOverdue
	default:
		return StatusUpcoming
	}
}
