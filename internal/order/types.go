// Package order holds the order aggregate, its in-memory store, and
// the lifecycle manager that creates and mutates orders.
package order

import (
	"github.com/autodinar/autodinar/internal/money"
	"github.com/autodinar/autodinar/internal/payment"
)

// ItemType distinguishes purchased products from booked services.
type ItemType string

const (
	ItemProduct ItemType = "product"
	ItemService ItemType = "service"
)

// FulfillmentStatus tracks the physical handover of a product or the
// completion of a service. It is independent of the payment plan and
// only mutated by store staff through the API; there is no automatic
// transition logic.
type FulfillmentStatus string

const (
	PendingPickup    FulfillmentStatus = "Pending Pickup"
	PickupConfirmed  FulfillmentStatus = "Pickup Confirmed"
	ServiceScheduled FulfillmentStatus = "Service Scheduled"
	ItemPickedUp     FulfillmentStatus = "Item Picked Up"
	ServiceCompleted FulfillmentStatus = "Service Completed"
	Cancelled        FulfillmentStatus = "Cancelled"
)

// ValidFulfillment reports whether s is a known fulfillment status.
func ValidFulfillment(s FulfillmentStatus) bool {
	switch s {
	case PendingPickup, PickupConfirmed, ServiceScheduled,
		ItemPickedUp, ServiceCompleted, Cancelled:
		return true
	}
	return false
}

// Order is one purchase. OrderID, ConfirmationCode, QRCodeValue, the
// item fields, and Created are immutable after creation; the payment
// plan advances via RecordPayment and the clock, the fulfillment
// status via staff action.
type Order struct {
	OrderID          string            `json:"order_id"`
	ItemID           string            `json:"item_id"`
	ItemType         ItemType          `json:"item_type"`
	ItemName         string            `json:"item_name"`
	ItemPrice        money.Amount      `json:"item_price"`
	Created          int64             `json:"created"` // unix seconds
	BuyerID          string            `json:"buyer_id"`
	QRCodeValue      string            `json:"qr_code_value"`
	ConfirmationCode string            `json:"confirmation_code"`
	Fulfillment      FulfillmentStatus `json:"fulfillment_status"`
	Payment          payment.Plan      `json:"payment"`
}
