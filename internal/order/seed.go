package order

import (
	"fmt"
	"time"

	"github.com/autodinar/autodinar/internal/catalog"
	"github.com/autodinar/autodinar/internal/payment"
)

// DemoBuyerID is the buyer attached to seeded demo orders.
const DemoBuyerID = "AutoDinarUser001"

// SeedDemo populates the store with demo orders covering the payment
// states a buyer can be in: mid-plan, due today, overdue, awaiting the
// last installment, and paid in full. Orders are created through the
// normal lifecycle path by rewinding the clock to each placement date;
// the clock is restored afterwards.
func SeedDemo(m *Manager, cat *catalog.Catalog) error {
	now := m.store.Clock.Now()
	defer m.store.Clock.Set(now)

	scenarios := []struct {
		kind         ItemType
		itemID       string
		installments int
		paid         int
		placed       time.Time
		fulfillment  FulfillmentStatus
	}{
		// 3/6 paid, 4th due about now.
		{ItemProduct, "prod_battery_70ah", 6, 3, payment.AddMonths(now, -4), PickupConfirmed},
		// 1/6 paid, 2nd a month overdue.
		{ItemProduct, "prod_michelin_tire_205", 6, 1, payment.AddMonths(now, -3), PendingPickup},
		// 1/3 paid, service booked.
		{ItemService, "serv_engine_diagnostic", 3, 1, payment.AddMonths(now, -2), ServiceScheduled},
		// 2/6 paid, work already done.
		{ItemService, "serv_timing_belt", 6, 2, payment.AddMonths(now, -3), ServiceCompleted},
		// Paid in full ten days ago.
		{ItemProduct, "prod_brakepads_front", 1, 0, now.AddDate(0, 0, -10), ItemPickedUp},
	}

	for _, sc := range scenarios {
		item, ok := cat.Item(string(sc.kind), sc.itemID)
		if !ok {
			return fmt.Errorf("seed: unknown catalog item %q", sc.itemID)
		}

		m.store.Clock.Set(sc.placed)
		o, err := m.CreateOrder(CreateParams{
			ItemID:       item.ID,
			ItemType:     sc.kind,
			ItemName:     item.Name,
			Price:        item.Price,
			Installments: sc.installments,
			BuyerID:      DemoBuyerID,
		})
		if err != nil {
			return fmt.Errorf("seed: creating order for %q: %w", sc.itemID, err)
		}

		for i := 0; i < sc.paid; i++ {
			if _, err := m.RecordPayment(o.OrderID); err != nil {
				return fmt.Errorf("seed: recording payment on %q: %w", o.OrderID, err)
			}
		}
		if _, err := m.SetFulfillment(o.OrderID, sc.fulfillment); err != nil {
			return fmt.Errorf("seed: setting fulfillment on %q: %w", o.OrderID, err)
		}
	}

	m.logger.Info("seeded demo orders", "count", len(scenarios))
	return nil
}
