package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/autodinar/autodinar/internal/order"
	"github.com/autodinar/autodinar/internal/server"
)

// AdminGetState handles GET /admin/state: the full order store as JSON.
func (h *Handler) AdminGetState(w http.ResponseWriter, r *http.Request) {
	server.JSON(w, http.StatusOK, h.store.Snapshot())
}

// AdminPutState handles PUT /admin/state: replaces the order store from
// a snapshot body.
func (h *Handler) AdminPutState(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		server.Error(w, http.StatusBadRequest, "reading body: "+err.Error())
		return
	}
	if err := h.store.LoadState(data); err != nil {
		server.Error(w, http.StatusBadRequest, "invalid state snapshot: "+err.Error())
		return
	}
	h.logger.Info("state loaded", "orders", h.store.Orders.Len())
	server.JSON(w, http.StatusOK, map[string]any{"loaded": true, "orders": h.store.Orders.Len()})
}

// AdminReset handles POST /admin/reset: clears orders, the clock, and
// the webhook dispatcher.
func (h *Handler) AdminReset(w http.ResponseWriter, r *http.Request) {
	h.store.Reset()
	if h.dispatcher != nil {
		h.dispatcher.Reset()
	}
	h.logger.Info("state reset")
	server.JSON(w, http.StatusOK, map[string]any{"reset": true})
}

// AdminSeed handles POST /admin/seed: loads the demo orders.
func (h *Handler) AdminSeed(w http.ResponseWriter, r *http.Request) {
	if err := order.SeedDemo(h.manager, h.cat); err != nil {
		server.Error(w, http.StatusInternalServerError, "seeding demo data: "+err.Error())
		return
	}
	h.logger.Info("demo data seeded", "orders", h.store.Orders.Len())
	server.JSON(w, http.StatusOK, map[string]any{"seeded": true, "orders": h.store.Orders.Len()})
}

// clockRequest is the JSON body for the clock endpoints.
type clockRequest struct {
	Time     string `json:"time,omitempty"`     // RFC 3339
	Duration string `json:"duration,omitempty"` // Go duration string
}

// AdminSetClock handles POST /admin/clock: freezes the clock at a fixed
// time.
func (h *Handler) AdminSetClock(w http.ResponseWriter, r *http.Request) {
	var req clockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.Error(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	t, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		server.Error(w, http.StatusBadRequest, "time must be RFC 3339: "+err.Error())
		return
	}
	h.store.Clock.Set(t)
	h.logger.Info("clock set", "time", t)
	server.JSON(w, http.StatusOK, map[string]any{"time": h.store.Clock.Now()})
}

// AdminAdvanceClock handles POST /admin/clock/advance: moves the clock
// forward (or back, with a negative duration).
func (h *Handler) AdminAdvanceClock(w http.ResponseWriter, r *http.Request) {
	var req clockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.Error(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	d, err := time.ParseDuration(req.Duration)
	if err != nil {
		server.Error(w, http.StatusBadRequest, "invalid duration: "+err.Error())
		return
	}
	h.store.Clock.Advance(d)
	h.logger.Info("clock advanced", "duration", d)
	server.JSON(w, http.StatusOK, map[string]any{"time": h.store.Clock.Now()})
}

// AdminListRequests handles GET /admin/requests: the recent request
// ring buffer.
func (h *Handler) AdminListRequests(w http.ResponseWriter, r *http.Request) {
	var entries []server.RequestLogEntry
	if h.requestLog != nil {
		entries = h.requestLog.Entries()
	}
	server.JSON(w, http.StatusOK, map[string]any{"data": entries, "count": len(entries)})
}

// AdminClearRequests handles DELETE /admin/requests.
func (h *Handler) AdminClearRequests(w http.ResponseWriter, r *http.Request) {
	if h.requestLog != nil {
		h.requestLog.Clear()
	}
	server.JSON(w, http.StatusOK, map[string]any{"cleared": true})
}

// AdminListEvents handles GET /admin/events: queued webhook events.
func (h *Handler) AdminListEvents(w http.ResponseWriter, r *http.Request) {
	if h.dispatcher == nil {
		server.JSON(w, http.StatusOK, map[string]any{"data": nil, "count": 0})
		return
	}
	events := h.dispatcher.QueuedEvents()
	server.JSON(w, http.StatusOK, map[string]any{"data": events, "count": len(events)})
}

// AdminListDeliveries handles GET /admin/deliveries: webhook delivery
// attempts.
func (h *Handler) AdminListDeliveries(w http.ResponseWriter, r *http.Request) {
	if h.dispatcher == nil {
		server.JSON(w, http.StatusOK, map[string]any{"data": nil, "count": 0})
		return
	}
	deliveries := h.dispatcher.Deliveries()
	server.JSON(w, http.StatusOK, map[string]any{"data": deliveries, "count": len(deliveries)})
}

// AdminFlushWebhooks handles POST /admin/webhooks/flush: delivers all
// queued events synchronously.
func (h *Handler) AdminFlushWebhooks(w http.ResponseWriter, r *http.Request) {
	if h.dispatcher == nil {
		server.JSON(w, http.StatusOK, map[string]any{"flushed": true})
		return
	}
	if err := h.dispatcher.Flush(); err != nil {
		server.Error(w, http.StatusBadGateway, "flushing webhooks: "+err.Error())
		return
	}
	server.JSON(w, http.StatusOK, map[string]any{"flushed": true})
}
