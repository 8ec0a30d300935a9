package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/autodinar/autodinar/internal/catalog"
	"github.com/autodinar/autodinar/internal/order"
	"github.com/autodinar/autodinar/internal/server"
)

// recommendRequest is the JSON body for POST /v1/recommendations.
type recommendRequest struct {
	BuyerID string           `json:"buyer_id"`
	Vehicle *catalog.Vehicle `json:"vehicle,omitempty"`
}

// Recommend handles POST /v1/recommendations. Failures never touch
// order state; the client falls back to an empty suggestion list.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.Error(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.BuyerID == "" {
		req.BuyerID = order.DemoBuyerID
	}

	if h.recommender == nil {
		server.Error(w, http.StatusServiceUnavailable, "recommendations unavailable")
		return
	}

	var past []string
	for _, o := range h.manager.ListOrders() {
		if o.BuyerID == req.BuyerID {
			past = append(past, o.ItemName)
		}
	}

	names, err := h.recommender.Recommend(r.Context(), past, vehicleInfo(req.Vehicle))
	if err != nil {
		h.logger.Warn("recommendation failed", "buyer_id", req.BuyerID, "err", err)
		server.Error(w, http.StatusServiceUnavailable, "recommendations unavailable")
		return
	}

	// Resolve names back to catalog listings; unknown names are dropped.
	var items []listingView
	for _, name := range names {
		if l, ok := listingByName(h.cat, name); ok {
			items = append(items, listingView{
				Listing:            l,
				InstallmentOptions: h.manager.InstallmentOptions(l.Price),
			})
		}
	}

	server.JSON(w, http.StatusOK, map[string]any{
		"data":  items,
		"count": len(items),
	})
}

func vehicleInfo(v *catalog.Vehicle) string {
	if v == nil || v.Brand == "" {
		return ""
	}
	parts := []string{v.Brand}
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	if v.Year != 0 {
		parts = append(parts, fmt.Sprint(v.Year))
	}
	if v.Engine != "" {
		parts = append(parts, v.Engine)
	}
	return strings.Join(parts, " ")
}

func listingByName(cat *catalog.Catalog, name string) (catalog.Listing, bool) {
	for _, l := range cat.Products {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	for _, l := range cat.Services {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return catalog.Listing{}, false
}
