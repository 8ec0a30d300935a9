package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodinar/autodinar/internal/money"
)

// planWithPaid builds a monthly plan and marks the first paid
// installments Paid, refreshed against today.
func planWithPaid(t *testing.T, total money.Amount, count, paid int, orderDate, today time.Time) Plan {
	t.Helper()
	p := NewPlan(total, count, orderDate, today)
	for i := 0; i < paid; i++ {
		require.True(t, p.MarkNextPaid(today))
	}
	return p
}

func TestDeriveSinglePaymentIsPaidInFull(t *testing.T) {
	// Scenario: 1 DZD, one installment. Full-payment path, no plan.
	p := NewSinglePayment(money.FromDinars(1), date(2025, time.June, 1))

	assert.False(t, p.IsInstallment)
	assert.Equal(t, 1, p.InstallmentCount)
	assert.Equal(t, 1, p.InstallmentsPaid)
	assert.Equal(t, StatusPaid, p.Installments[0].Status)
	assert.Nil(t, p.NextDueDate)
	assert.Equal(t, PaidInFull, Derive(p))
}

func TestDeriveOverdueTakesPriority(t *testing.T) {
	// Scenario: 6000 DZD over 6, ordered just over 3 months ago with 2
	// installments paid. The 3rd fell due roughly a month ago.
	today := date(2025, time.June, 15)
	orderDate := date(2025, time.March, 10)
	p := planWithPaid(t, money.FromDinars(6000), 6, 2, orderDate, today)

	assert.Equal(t, money.FromDinars(1000), p.InstallmentAmount)
	assert.Equal(t, money.FromDinars(2000), p.AmountPaid)
	assert.Equal(t, money.FromDinars(4000), p.RemainingAmount)
	assert.Equal(t, StatusOverdue, p.Installments[2].Status)
	require.NotNil(t, p.NextDueDate)
	assert.Equal(t, date(2025, time.June, 10), *p.NextDueDate)
	assert.Equal(t, InstallmentOverdue, Derive(p))
}

func TestDerivePaymentPendingOnFirstDueDay(t *testing.T) {
	// Scenario: 3000 DZD over 3, nothing paid, today is exactly the
	// first due date.
	orderDate := date(2025, time.May, 15)
	today := date(2025, time.June, 15)
	p := NewPlan(money.FromDinars(3000), 3, orderDate, today)

	assert.Equal(t, StatusDue, p.Installments[0].Status)
	assert.Equal(t, PaymentPending, Derive(p))
}

func TestDeriveAwaitingFinalPayment(t *testing.T) {
	// Scenario: 6 installments, 5 paid, last one still in the future.
	today := date(2025, time.June, 15)
	orderDate := date(2025, time.January, 20)
	p := planWithPaid(t, money.FromDinars(12000), 6, 5, orderDate, today)

	last := p.Installments[len(p.Installments)-1]
	assert.Equal(t, StatusUpcoming, last.Status)
	assert.Equal(t, AwaitingFinalPayment, Derive(p))
}

func TestDeriveInstallmentsOngoing(t *testing.T) {
	// Mid-plan, nothing overdue: 2 of 6 paid, 3rd due next month.
	today := date(2025, time.June, 15)
	orderDate := date(2025, time.April, 20)
	p := planWithPaid(t, money.FromDinars(6000), 6, 2, orderDate, today)

	assert.Equal(t, InstallmentsOngoing, Derive(p))
}

func TestDeriveAllPaidWithRoundingDrift(t *testing.T) {
	// 1000 DZD over 3 leaves the paid sum one centime short of the
	// total; the tolerance still reports the plan Paid in Full.
	today := date(2026, time.January, 10)
	orderDate := date(2025, time.January, 10)
	p := planWithPaid(t, money.FromDinars(1000), 3, 3, orderDate, today)

	assert.Equal(t, money.Amount(99999), p.AmountPaid)
	assert.Equal(t, money.Amount(1), p.RemainingAmount)
	assert.Equal(t, PaidInFull, Derive(p))
}

func TestDeriveIdempotent(t *testing.T) {
	today := date(2025, time.June, 15)
	p := planWithPaid(t, money.FromDinars(6000), 6, 2, date(2025, time.March, 10), today)

	first := Derive(p)
	for i := 0; i < 3; i++ {
		p.Refresh(today)
		assert.Equal(t, first, Derive(p))
	}
}

// The fallback status must be unreachable for any plan built through
// the constructors, whatever the evaluation date.
func TestDeriveNeverFallsBack(t *testing.T) {
	orderDate := date(2025, time.January, 31)
	for _, count := range []int{2, 3, 6, 12} {
		for paid := 0; paid <= count; paid++ {
			p := planWithPaid(t, money.FromDinars(24000), count, paid, orderDate, orderDate)
			for day := 0; day < 400; day += 23 {
				today := orderDate.AddDate(0, 0, day)
				p.Refresh(today)
				got := Derive(p)
				assert.NotEqual(t, PaymentProcessing, got,
					"count=%d paid=%d day=%d", count, paid, day)
			}
		}
	}
}

// amountPaid + remainingAmount stays equal to the total except for the
// bounded per-installment rounding drift, for every evaluation date.
func TestAggregateConservation(t *testing.T) {
	totals := []money.Amount{money.FromDinars(1000), money.FromDinars(6000), 99999}
	orderDate := date(2025, time.February, 5)
	for _, total := range totals {
		for _, count := range []int{2, 3, 6, 7} {
			for paid := 0; paid <= count; paid++ {
				p := planWithPaid(t, total, count, paid, orderDate, orderDate)
				for day := 0; day < 300; day += 31 {
					p.Refresh(orderDate.AddDate(0, 0, day))
					sum := p.AmountPaid + p.RemainingAmount
					drift := sum - total
					if drift < 0 {
						drift = -drift
					}
					assert.LessOrEqual(t, int64(drift), int64(count),
						"total=%d count=%d paid=%d", total, count, paid)
				}
			}
		}
	}
}

func TestRefreshNeverUnpays(t *testing.T) {
	today := date(2025, time.June, 15)
	p := planWithPaid(t, money.FromDinars(6000), 6, 3, date(2025, time.January, 10), today)

	for day := 0; day < 200; day += 13 {
		p.Refresh(today.AddDate(0, 0, day))
		for i := 0; i < 3; i++ {
			assert.Equal(t, StatusPaid, p.Installments[i].Status)
		}
		assert.Equal(t, 3, p.InstallmentsPaid)
	}
}

func TestMarkNextPaidKeepsPrefix(t *testing.T) {
	today := date(2025, time.June, 15)
	p := NewPlan(money.FromDinars(6000), 6, date(2025, time.March, 10), today)

	for n := 1; n <= 6; n++ {
		require.True(t, p.MarkNextPaid(today))
		for i := 0; i < n; i++ {
			assert.Equal(t, StatusPaid, p.Installments[i].Status)
		}
		for i := n; i < 6; i++ {
			assert.NotEqual(t, StatusPaid, p.Installments[i].Status)
		}
	}
	assert.False(t, p.MarkNextPaid(today), "all installments already paid")
}
