package payment

import (
	"time"

	"github.com/autodinar/autodinar/internal/money"
)

// Plan is a full payment plan for one order. Paid flags and the
// schedule are the stored ground truth; every aggregate field and every
// non-Paid installment status is recomputed by Refresh before the plan
// is shown.
type Plan struct {
	TotalAmount       money.Amount  `json:"total_amount"`
	AmountPaid        money.Amount  `json:"amount_paid"`
	RemainingAmount   money.Amount  `json:"remaining_amount"`
	InstallmentCount  int           `json:"installment_count"`
	InstallmentsPaid  int           `json:"installments_paid"`
	InstallmentAmount money.Amount  `json:"installment_amount"`
	Frequency         Frequency     `json:"payment_frequency"`
	IsInstallment     bool          `json:"is_installment"`
	Installments      []Installment `json:"installments"`
	NextDueDate       *time.Time    `json:"next_due_date,omitempty"`
}

// NewSinglePayment builds the full-payment plan: one Paid installment
// at the order date.
func NewSinglePayment(total money.Amount, orderDate time.Time) Plan {
	p := Plan{
		TotalAmount:       total,
		InstallmentCount:  1,
		InstallmentAmount: total,
		Frequency:         FrequencySingle,
		IsInstallment:     false,
		Installments:      Schedule(total, 1, orderDate, orderDate),
	}
	p.aggregate()
	return p
}

// NewPlan builds a monthly installment plan of count payments starting
// one month after orderDate, classified against today.
func NewPlan(total money.Amount, count int, orderDate, today time.Time) Plan {
	p := Plan{
		TotalAmount:       total,
		InstallmentCount:  count,
		InstallmentAmount: total.DivRound(int64(count)),
		Frequency:         FrequencyMonthly,
		IsInstallment:     true,
		Installments:      Schedule(total, count, orderDate, today),
	}
	p.aggregate()
	return p
}

// Refresh reclassifies every non-Paid installment against today and
// recomputes the aggregates. The single today snapshot applies to the
// whole schedule so one pass cannot mix evaluation instants.
func (p *Plan) Refresh(today time.Time) {
	for i := range p.Installments {
		inst := &p.Installments[i]
		inst.Status = Classify(inst.DueDate, inst.Status == StatusPaid, today)
	}
	p.aggregate()
}

// MarkNextPaid marks the earliest unpaid installment as Paid and
// reports whether there was one. Paying strictly in schedule order
// keeps the Paid installments a prefix of the sequence.
func (p *Plan) MarkNextPaid(today time.Time) bool {
	for i := range p.Installments {
		if p.Installments[i].Status != StatusPaid {
			p.Installments[i].Status = StatusPaid
			p.Refresh(today)
			return true
		}
	}
	return false
}

// aggregate rolls the classified schedule up into the summary fields.
func (p *Plan) aggregate() {
	var paid money.Amount
	count := 0
	p.NextDueDate = nil
	for i := range p.Installments {
		inst := &p.Installments[i]
		if inst.Status == StatusPaid {
			paid += inst.Amount
			count++
		} else if p.NextDueDate == nil {
			d := inst.DueDate
			p.NextDueDate = &d
		}
	}
	p.AmountPaid = paid
	p.InstallmentsPaid = count
	p.RemainingAmount = p.TotalAmount - paid
	if p.RemainingAmount < 0 {
		p.RemainingAmount = 0
	}
}
