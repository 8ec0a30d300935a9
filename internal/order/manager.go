package order

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/autodinar/autodinar/internal/money"
	"github.com/autodinar/autodinar/internal/payment"
)

// MinMonthlyPayment is the default floor for one installment, in
// centimes. Plans whose per-installment amount falls below it are
// rejected and not offered.
const MinMonthlyPayment = money.Amount(1000 * 100)

// PreferredInstallmentMonths are the plan lengths offered to buyers,
// filtered per item by the monthly payment floor.
var PreferredInstallmentMonths = []int{3, 6, 9, 12, 18, 24}

const confirmationCodeLen = 6

// Manager owns the order lifecycle: creation, lookup with
// recompute-on-read, payment recording, and fulfillment updates.
// Mutations are serialized so concurrent writers cannot lose updates.
type Manager struct {
	mu         sync.Mutex // serializes read-modify-write on orders
	store      *MemoryStore
	logger     *slog.Logger
	minMonthly money.Amount
}

// NewManager creates a Manager over the given store. A zero minMonthly
// falls back to MinMonthlyPayment.
func NewManager(store *MemoryStore, logger *slog.Logger, minMonthly money.Amount) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if minMonthly == 0 {
		minMonthly = MinMonthlyPayment
	}
	return &Manager{store: store, logger: logger, minMonthly: minMonthly}
}

// Clock exposes the store clock, the single source of "now" for every
// derivation pass.
func (m *Manager) Clock() time.Time {
	return m.store.Clock.Now()
}

// InstallmentOptions returns the plan lengths available for a price:
// the preferred months whose per-installment amount stays at or above
// the monthly floor.
func (m *Manager) InstallmentOptions(price money.Amount) []int {
	var opts []int
	for _, months := range PreferredInstallmentMonths {
		if price.DivRound(int64(months)) >= m.minMonthly {
			opts = append(opts, months)
		}
	}
	return opts
}

// CreateParams are the inputs to CreateOrder.
type CreateParams struct {
	ItemID       string
	ItemType     ItemType
	ItemName     string
	Price        money.Amount
	Installments int
	BuyerID      string
}

// CreateOrder validates the purchase, builds the payment plan, and
// appends the new order to the store.
func (m *Manager) CreateOrder(p CreateParams) (Order, error) {
	if p.Price <= 0 {
		return Order{}, fmt.Errorf("creating order for %q: %w", p.ItemID, ErrInvalidPrice)
	}
	if p.Installments > 1 && p.Price.DivRound(int64(p.Installments)) < m.minMonthly {
		return Order{}, fmt.Errorf("%d installments on %s: %w",
			p.Installments, p.Price, ErrInstallmentTooSmall)
	}

	now := m.store.Clock.Now()

	var plan payment.Plan
	if p.Installments <= 1 {
		plan = payment.NewSinglePayment(p.Price, now)
	} else {
		plan = payment.NewPlan(p.Price, p.Installments, now, now)
	}

	fulfillment := PendingPickup
	if p.ItemType == ItemService {
		fulfillment = ServiceScheduled
	}

	id := newOrderID(now)
	o := Order{
		OrderID:          id,
		ItemID:           p.ItemID,
		ItemType:         p.ItemType,
		ItemName:         p.ItemName,
		ItemPrice:        p.Price,
		Created:          now.Unix(),
		BuyerID:          p.BuyerID,
		QRCodeValue:      fmt.Sprintf("AUTODINAR_ORDER:%s|ITEM:%s|BUYER:%s", id, p.ItemID, p.BuyerID),
		ConfirmationCode: alphanumericCode(confirmationCodeLen),
		Fulfillment:      fulfillment,
		Payment:          plan,
	}

	m.mu.Lock()
	m.store.Orders.Set(id, o)
	m.mu.Unlock()

	m.logger.Info("order created",
		"order_id", id,
		"item_id", p.ItemID,
		"item_type", p.ItemType,
		"installments", plan.InstallmentCount,
	)
	return o, nil
}

// GetOrder returns the order with its plan refreshed against the
// current clock.
func (m *Manager) GetOrder(id string) (Order, error) {
	o, ok := m.store.Orders.Get(id)
	if !ok {
		return Order{}, fmt.Errorf("%q: %w", id, ErrOrderNotFound)
	}
	o.Payment.Refresh(m.store.Clock.Now())
	return o, nil
}

// ListOrders returns all orders newest first, each plan refreshed
// against one shared snapshot of the clock.
func (m *Manager) ListOrders() []Order {
	today := m.store.Clock.Now()
	orders := m.store.Orders.List()
	for i := range orders {
		orders[i].Payment.Refresh(today)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Created > orders[j].Created
	})
	return orders
}

// RecordPayment marks the earliest unpaid installment of the order as
// Paid and persists the refreshed plan.
func (m *Manager) RecordPayment(id string) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.store.Orders.Get(id)
	if !ok {
		return Order{}, fmt.Errorf("%q: %w", id, ErrOrderNotFound)
	}
	today := m.store.Clock.Now()
	if !o.Payment.MarkNextPaid(today) {
		return Order{}, fmt.Errorf("%q: %w", id, ErrAlreadyPaid)
	}
	m.store.Orders.Set(id, o)

	m.logger.Info("installment paid",
		"order_id", id,
		"installments_paid", o.Payment.InstallmentsPaid,
		"installment_count", o.Payment.InstallmentCount,
	)
	return o, nil
}

// SetFulfillment records a staff-side fulfillment update. Values are
// checked against the known set; there is no transition graph.
func (m *Manager) SetFulfillment(id string, status FulfillmentStatus) (Order, error) {
	if !ValidFulfillment(status) {
		return Order{}, fmt.Errorf("%q: %w", status, ErrUnknownFulfillment)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.store.Orders.Get(id)
	if !ok {
		return Order{}, fmt.Errorf("%q: %w", id, ErrOrderNotFound)
	}
	o.Fulfillment = status
	m.store.Orders.Set(id, o)

	m.logger.Info("fulfillment updated", "order_id", id, "status", status)
	return o, nil
}

// newOrderID builds a timestamped order ID with a random suffix.
// Uniqueness is probabilistic; the store is single-tenant and the
// collision window is one millisecond.
func newOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// alphanumericCode returns a human-readable pickup code. Collisions
// against existing orders are not checked.
func alphanumericCode(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return b.String()
}
