package order

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodinar/autodinar/internal/catalog"
	"github.com/autodinar/autodinar/internal/money"
	"github.com/autodinar/autodinar/internal/payment"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store := NewMemoryStore()
	store.Clock.Set(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC))
	return NewManager(store, nil, 0)
}

func TestCreateOrderFullPayment(t *testing.T) {
	m := newTestManager(t)

	o, err := m.CreateOrder(CreateParams{
		ItemID:   "prod_brakepads_front",
		ItemType: ItemProduct,
		ItemName: "Premium Ceramic Brake Pads (Front)",
		Price:    money.FromDinars(5200),
		BuyerID:  DemoBuyerID,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(o.OrderID, "ORD-"))
	assert.Len(t, o.ConfirmationCode, 6)
	assert.Contains(t, o.QRCodeValue, o.OrderID)
	assert.Equal(t, PendingPickup, o.Fulfillment)

	p := o.Payment
	assert.False(t, p.IsInstallment)
	assert.Equal(t, 1, p.InstallmentCount)
	assert.Equal(t, 1, p.InstallmentsPaid)
	assert.Equal(t, money.Amount(0), p.RemainingAmount)
	assert.Equal(t, payment.PaidInFull, payment.Derive(p))
}

func TestCreateOrderInstallmentPlan(t *testing.T) {
	m := newTestManager(t)

	o, err := m.CreateOrder(CreateParams{
		ItemID:       "prod_battery_70ah",
		ItemType:     ItemProduct,
		ItemName:     "Heavy Duty Car Battery 12V 70Ah",
		Price:        money.FromDinars(8500),
		Installments: 6,
		BuyerID:      DemoBuyerID,
	})
	require.NoError(t, err)

	p := o.Payment
	assert.True(t, p.IsInstallment)
	assert.Equal(t, 6, p.InstallmentCount)
	assert.Equal(t, 0, p.InstallmentsPaid)
	assert.Equal(t, payment.FrequencyMonthly, p.Frequency)
	// First installment is a month out, so the whole plan starts Upcoming.
	for _, inst := range p.Installments {
		assert.Equal(t, payment.StatusUpcoming, inst.Status)
	}
	assert.Equal(t, payment.PaymentPending, payment.Derive(p))
}

func TestCreateOrderServiceFulfillment(t *testing.T) {
	m := newTestManager(t)

	o, err := m.CreateOrder(CreateParams{
		ItemID:   "serv_engine_diagnostic",
		ItemType: ItemService,
		ItemName: "Complete Engine Diagnostic",
		Price:    money.FromDinars(6000),
		BuyerID:  DemoBuyerID,
	})
	require.NoError(t, err)
	assert.Equal(t, ServiceScheduled, o.Fulfillment)
}

func TestCreateOrderRejectsInvalidPrice(t *testing.T) {
	m := newTestManager(t)

	_, err := m.CreateOrder(CreateParams{ItemID: "x", ItemType: ItemProduct, Price: 0})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = m.CreateOrder(CreateParams{ItemID: "x", ItemType: ItemProduct, Price: -100})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCreateOrderRejectsTinyInstallments(t *testing.T) {
	m := newTestManager(t)

	// 3000 DZD over 6 is 500 a month, below the 1000 DZD floor.
	_, err := m.CreateOrder(CreateParams{
		ItemID:       "prod_led_headlight_h7",
		ItemType:     ItemProduct,
		Price:        money.FromDinars(3000),
		Installments: 6,
	})
	assert.ErrorIs(t, err, ErrInstallmentTooSmall)

	// The same price is fine over 3 months.
	_, err = m.CreateOrder(CreateParams{
		ItemID:       "prod_led_headlight_h7",
		ItemType:     ItemProduct,
		Price:        money.FromDinars(3000),
		Installments: 3,
	})
	assert.NoError(t, err)
}

func TestInstallmentOptions(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, []int{3, 6}, m.InstallmentOptions(money.FromDinars(8500)))
	assert.Equal(t, []int{3, 6, 9, 12, 18, 24}, m.InstallmentOptions(money.FromDinars(28000)))
	assert.Nil(t, m.InstallmentOptions(money.FromDinars(1500)))
}

func TestGetOrderNotFound(t *testing.T) {
	m := newTestManager(t)
	_, err := m.GetOrder("ORD-NOPE")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrderRefreshesAgainstClock(t *testing.T) {
	m := newTestManager(t)

	o, err := m.CreateOrder(CreateParams{
		ItemID: "prod_battery_70ah", ItemType: ItemProduct,
		Price: money.FromDinars(8500), Installments: 6,
	})
	require.NoError(t, err)

	// Two months later the first installment has gone overdue.
	m.store.Clock.Advance(61 * 24 * time.Hour)
	got, err := m.GetOrder(o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusOverdue, got.Payment.Installments[0].Status)
	assert.Equal(t, payment.InstallmentOverdue, payment.Derive(got.Payment))
}

func TestRecordPaymentAdvancesPlan(t *testing.T) {
	m := newTestManager(t)

	o, err := m.CreateOrder(CreateParams{
		ItemID: "prod_battery_70ah", ItemType: ItemProduct,
		Price: money.FromDinars(8500), Installments: 3,
	})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		got, err := m.RecordPayment(o.OrderID)
		require.NoError(t, err)
		assert.Equal(t, i, got.Payment.InstallmentsPaid)
	}

	got, err := m.GetOrder(o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, payment.PaidInFull, payment.Derive(got.Payment))

	_, err = m.RecordPayment(o.OrderID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestSetFulfillment(t *testing.T) {
	m := newTestManager(t)

	o, err := m.CreateOrder(CreateParams{
		ItemID: "prod_brakepads_front", ItemType: ItemProduct,
		Price: money.FromDinars(5200),
	})
	require.NoError(t, err)

	got, err := m.SetFulfillment(o.OrderID, ItemPickedUp)
	require.NoError(t, err)
	assert.Equal(t, ItemPickedUp, got.Fulfillment)

	_, err = m.SetFulfillment(o.OrderID, FulfillmentStatus("Teleported"))
	assert.ErrorIs(t, err, ErrUnknownFulfillment)

	_, err = m.SetFulfillment("ORD-NOPE", Cancelled)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersNewestFirst(t *testing.T) {
	m := newTestManager(t)

	first, err := m.CreateOrder(CreateParams{
		ItemID: "prod_brakepads_front", ItemType: ItemProduct, Price: money.FromDinars(5200),
	})
	require.NoError(t, err)

	m.store.Clock.Advance(time.Hour)
	second, err := m.CreateOrder(CreateParams{
		ItemID: "serv_engine_diagnostic", ItemType: ItemService, Price: money.FromDinars(6000),
	})
	require.NoError(t, err)

	orders := m.ListOrders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.OrderID, orders[0].OrderID)
	assert.Equal(t, first.OrderID, orders[1].OrderID)
}

func TestSeedDemo(t *testing.T) {
	m := newTestManager(t)
	now := m.Clock()

	require.NoError(t, SeedDemo(m, catalog.Default()))
	assert.True(t, m.Clock().Equal(now), "seed must restore the clock")

	orders := m.ListOrders()
	require.Len(t, orders, 5)

	// Every derived state the demo promises must actually appear.
	seen := map[payment.DerivedStatus]bool{}
	for _, o := range orders {
		seen[payment.Derive(o.Payment)] = true
	}
	assert.True(t, seen[payment.PaidInFull], "missing fully paid demo order")
	assert.True(t, seen[payment.InstallmentOverdue], "missing overdue demo order")
	assert.True(t, seen[payment.InstallmentsOngoing], "missing ongoing demo order")
}

func TestSeedDemoIsRepeatableAfterReset(t *testing.T) {
	m := newTestManager(t)
	cat := catalog.Default()

	require.NoError(t, SeedDemo(m, cat))
	m.store.Reset()
	m.store.Clock.Set(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC))
	require.NoError(t, SeedDemo(m, cat))
	assert.Len(t, m.ListOrders(), 5)
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	m := newTestManager(t)
	_, err := m.CreateOrder(CreateParams{ItemID: "x", ItemType: ItemProduct, Price: -1})
	var target error = ErrInvalidPrice
	assert.True(t, errors.Is(err, target))
}
