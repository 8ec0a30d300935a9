package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autodinar/autodinar/internal/order"
	"github.com/autodinar/autodinar/internal/server"
	"github.com/autodinar/autodinar/internal/webhook"
)

// createOrderRequest is the JSON body for POST /v1/orders. The price
// comes from the catalog listing, never from the client.
type createOrderRequest struct {
	ItemID       string `json:"item_id"`
	ItemType     string `json:"item_type"`
	Installments int    `json:"installments"`
	BuyerID      string `json:"buyer_id"`
}

// CreateOrder handles POST /v1/orders.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.Error(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.ItemID == "" {
		server.Error(w, http.StatusBadRequest, "item_id is required")
		return
	}
	if req.ItemType == "" {
		req.ItemType = string(order.ItemProduct)
	}
	if req.ItemType != string(order.ItemProduct) && req.ItemType != string(order.ItemService) {
		server.Error(w, http.StatusBadRequest, "item_type must be \"product\" or \"service\"")
		return
	}
	if req.BuyerID == "" {
		req.BuyerID = order.DemoBuyerID
	}

	listing, ok := h.cat.Item(req.ItemType, req.ItemID)
	if !ok {
		server.Error(w, http.StatusNotFound, "no such "+req.ItemType+": "+req.ItemID)
		return
	}

	o, err := h.manager.CreateOrder(order.CreateParams{
		ItemID:       listing.ID,
		ItemType:     order.ItemType(req.ItemType),
		ItemName:     listing.Name,
		Price:        listing.Price,
		Installments: req.Installments,
		BuyerID:      req.BuyerID,
	})
	if err != nil {
		domainError(w, err)
		return
	}

	h.emitEvent(webhook.EventOrderCreated, view(o))
	server.JSON(w, http.StatusCreated, view(o))
}

// ListOrders handles GET /v1/orders. Accepts an optional buyer_id
// query filter.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	buyerID := r.URL.Query().Get("buyer_id")

	orders := h.manager.ListOrders()
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		if buyerID != "" && o.BuyerID != buyerID {
			continue
		}
		views = append(views, view(o))
	}

	server.JSON(w, http.StatusOK, map[string]any{
		"data":  views,
		"count": len(views),
	})
}

// GetOrder handles GET /v1/orders/{id}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.manager.GetOrder(chi.URLParam(r, "id"))
	if err != nil {
		domainError(w, err)
		return
	}
	server.JSON(w, http.StatusOK, view(o))
}

// GetConfirmation handles GET /v1/orders/{id}/confirmation: the pickup
// code and QR value shown to store staff.
func (h *Handler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	o, err := h.manager.GetOrder(chi.URLParam(r, "id"))
	if err != nil {
		domainError(w, err)
		return
	}
	server.JSON(w, http.StatusOK, map[string]any{
		"order_id":           o.OrderID,
		"confirmation_code":  o.ConfirmationCode,
		"qr_code_value":      o.QRCodeValue,
		"fulfillment_status": o.Fulfillment,
	})
}

// GetPayments handles GET /v1/orders/{id}/payments: the refreshed plan
// with its derived status.
func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	o, err := h.manager.GetOrder(chi.URLParam(r, "id"))
	if err != nil {
		domainError(w, err)
		return
	}
	server.JSON(w, http.StatusOK, map[string]any{
		"order_id":       o.OrderID,
		"payment":        o.Payment,
		"derived_status": view(o).DerivedStatus,
	})
}

// RecordPayment handles POST /v1/orders/{id}/payments: marks the
// earliest unpaid installment as paid.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	o, err := h.manager.RecordPayment(chi.URLParam(r, "id"))
	if err != nil {
		domainError(w, err)
		return
	}

	h.emitEvent(webhook.EventInstallmentPaid, map[string]any{
		"order_id":          o.OrderID,
		"installments_paid": o.Payment.InstallmentsPaid,
		"installment_count": o.Payment.InstallmentCount,
		"derived_status":    view(o).DerivedStatus,
	})
	server.JSON(w, http.StatusOK, view(o))
}

// fulfillmentRequest is the JSON body for POST /v1/orders/{id}/fulfillment.
type fulfillmentRequest struct {
	Status string `json:"status"`
}

// SetFulfillment handles POST /v1/orders/{id}/fulfillment: a staff-side
// handover update.
func (h *Handler) SetFulfillment(w http.ResponseWriter, r *http.Request) {
	var req fulfillmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.Error(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	o, err := h.manager.SetFulfillment(chi.URLParam(r, "id"), order.FulfillmentStatus(req.Status))
	if err != nil {
		domainError(w, err)
		return
	}

	h.emitEvent(webhook.EventFulfillmentUpdated, map[string]any{
		"order_id":           o.OrderID,
		"fulfillment_status": o.Fulfillment,
	})
	server.JSON(w, http.StatusOK, view(o))
}
