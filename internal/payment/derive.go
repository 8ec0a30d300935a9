package payment

// DerivedStatus is the order-level payment label shown to buyers. It is
// derived fresh from a refreshed Plan on every read and never stored.
type DerivedStatus string

const (
	PaidInFull           DerivedStatus = "Paid in Full"
	PaymentPending       DerivedStatus = "Payment Pending"
	InstallmentsOngoing  DerivedStatus = "Installments Ongoing"
	InstallmentOverdue   DerivedStatus = "Installment Overdue"
	AwaitingFinalPayment DerivedStatus = "Awaiting Final Payment"

	// PaymentProcessing is the unreachable fallback. Seeing it means a
	// plan violated the classification invariants.
	PaymentProcessing DerivedStatus = "Payment Processing"
)

// Derive computes the order-level payment status from a refreshed plan.
// The rules are ordered; the first match wins.
//
// Rule 2 allows amountPaid to fall short of the total by up to 1% of a
// single installment: rounded per-installment amounts can leave the sum
// of a fully paid schedule a few centimes shy of the total.
func Derive(p Plan) DerivedStatus {
	if !p.IsInstallment {
		return PaidInFull
	}

	if p.InstallmentsPaid >= p.InstallmentCount &&
		p.AmountPaid >= p.TotalAmount-p.InstallmentAmount/100 {
		return PaidInFull
	}

	for _, inst := range p.Installments {
		if inst.Status == StatusOverdue {
			return InstallmentOverdue
		}
	}

	if p.InstallmentsPaid == 0 {
		for _, inst := range p.Installments {
			if inst.Status == StatusDue || inst.Status == StatusUpcoming {
				return PaymentPending
			}
		}
	}

	if p.InstallmentsPaid < p.InstallmentCount {
		if p.InstallmentsPaid == p.InstallmentCount-1 {
			last := p.Installments[len(p.Installments)-1]
			if last.Status == StatusDue || last.Status == StatusUpcoming {
				return AwaitingFinalPayment
			}
		}
		return InstallmentsOngoing
	}

	return PaymentProcessing
}
