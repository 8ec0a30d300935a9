// Package api implements the AutoDinar HTTP API: orders and their
// payment plans, the parts catalog, recommendations, and the admin
// plane.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autodinar/autodinar/internal/catalog"
	"github.com/autodinar/autodinar/internal/order"
	"github.com/autodinar/autodinar/internal/payment"
	"github.com/autodinar/autodinar/internal/recommend"
	"github.com/autodinar/autodinar/internal/server"
	"github.com/autodinar/autodinar/internal/webhook"
)

// Handler holds all API handler state.
type Handler struct {
	manager     *order.Manager
	store       *order.MemoryStore
	cat         *catalog.Catalog
	recommender recommend.Recommender
	dispatcher  *webhook.Dispatcher
	requestLog  *server.RequestLog
	logger      *slog.Logger
}

// NewHandler creates an API handler. recommender and requestLog may be
// nil; the corresponding endpoints then degrade (503 and empty log).
func NewHandler(m *order.Manager, s *order.MemoryStore, cat *catalog.Catalog,
	rec recommend.Recommender, d *webhook.Dispatcher, rl *server.RequestLog,
	logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		manager:     m,
		store:       s,
		cat:         cat,
		recommender: rec,
		dispatcher:  d,
		requestLog:  rl,
		logger:      logger,
	}
}

// Routes mounts the v1 API and the admin plane.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.GetOrder)
		r.Get("/orders/{id}/confirmation", h.GetConfirmation)
		r.Get("/orders/{id}/payments", h.GetPayments)
		r.Post("/orders/{id}/payments", h.RecordPayment)
		r.Post("/orders/{id}/fulfillment", h.SetFulfillment)

		r.Get("/catalog/products", h.ListProducts)
		r.Get("/catalog/services", h.ListServices)
		r.Get("/catalog/items/{type}/{id}", h.GetItem)
		r.Get("/catalog/stores", h.ListStores)
		r.Get("/catalog/stores/{id}", h.GetStore)
		r.Get("/catalog/categories", h.ListCategories)

		r.Post("/recommendations", h.Recommend)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/state", h.AdminGetState)
		r.Put("/state", h.AdminPutState)
		r.Post("/reset", h.AdminReset)
		r.Post("/seed", h.AdminSeed)
		r.Post("/clock", h.AdminSetClock)
		r.Post("/clock/advance", h.AdminAdvanceClock)
		r.Get("/requests", h.AdminListRequests)
		r.Delete("/requests", h.AdminClearRequests)
		r.Get("/events", h.AdminListEvents)
		r.Get("/deliveries", h.AdminListDeliveries)
		r.Post("/webhooks/flush", h.AdminFlushWebhooks)
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	server.JSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   h.manager.Clock(),
	})
}

// orderView is an order plus its derived payment status.
type orderView struct {
	order.Order
	DerivedStatus payment.DerivedStatus `json:"derived_status"`
}

func view(o order.Order) orderView {
	return orderView{Order: o, DerivedStatus: payment.Derive(o.Payment)}
}

// domainError maps manager errors to HTTP status codes.
func domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		server.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInstallmentTooSmall):
		server.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, order.ErrInvalidPrice),
		errors.Is(err, order.ErrUnknownFulfillment):
		server.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrAlreadyPaid):
		server.Error(w, http.StatusConflict, err.Error())
	default:
		server.Error(w, http.StatusInternalServerError, err.Error())
	}
}

// emitEvent queues an outbound webhook event. No-op without a
// dispatcher.
func (h *Handler) emitEvent(eventType string, v any) {
	if h.dispatcher == nil {
		return
	}
	h.dispatcher.Enqueue(eventType, v)
}
