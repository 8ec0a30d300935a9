package order

import "errors"

var (
	// ErrInvalidPrice rejects order creation with a non-positive price.
	ErrInvalidPrice = errors.New("item price must be positive")

	// ErrInstallmentTooSmall rejects plans whose per-installment amount
	// falls below the minimum monthly payment floor.
	ErrInstallmentTooSmall = errors.New("per-installment amount below minimum monthly payment")

	// ErrOrderNotFound is returned by lookups for unknown order IDs.
	ErrOrderNotFound = errors.New("order not found")

	// ErrAlreadyPaid is returned when recording a payment against a
	// fully paid plan.
	ErrAlreadyPaid = errors.New("all installments already paid")

	// ErrUnknownFulfillment rejects fulfillment updates with a value
	// outside the known set.
	ErrUnknownFulfillment = errors.New("unknown fulfillment status")
)
