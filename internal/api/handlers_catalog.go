package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/autodinar/autodinar/internal/catalog"
	"github.com/autodinar/autodinar/internal/money"
	"github.com/autodinar/autodinar/internal/server"
)

// listingQuery parses the shared catalog filter parameters. Prices in
// the query string are whole dinars.
func listingQuery(values url.Values) catalog.Query {
	q := catalog.Query{
		Text:         values.Get("q"),
		MainCategory: values.Get("main_category"),
		SubCategory:  values.Get("sub_category"),
		Sort:         values.Get("sort"),
	}
	if v, err := strconv.ParseInt(values.Get("min_price"), 10, 64); err == nil {
		q.MinPrice = money.FromDinars(v)
	}
	if v, err := strconv.ParseInt(values.Get("max_price"), 10, 64); err == nil {
		q.MaxPrice = money.FromDinars(v)
	}
	if v, err := strconv.Atoi(values.Get("min_reviews")); err == nil {
		q.MinReviews = v
	}
	if brand := values.Get("brand"); brand != "" {
		vehicle := &catalog.Vehicle{
			Brand:  brand,
			Model:  values.Get("model"),
			Engine: values.Get("engine"),
		}
		if y, err := strconv.Atoi(values.Get("year")); err == nil {
			vehicle.Year = y
		}
		q.Vehicle = vehicle
	}
	return q
}

// listingView is a catalog listing plus the installment plans offered
// for its price.
type listingView struct {
	catalog.Listing
	InstallmentOptions []int `json:"installment_options"`
}

func (h *Handler) listingViews(items []catalog.Listing) []listingView {
	views := make([]listingView, 0, len(items))
	for _, l := range items {
		views = append(views, listingView{
			Listing:            l,
			InstallmentOptions: h.manager.InstallmentOptions(l.Price),
		})
	}
	return views
}

// ListProducts handles GET /v1/catalog/products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	items := catalog.Filter(h.cat.Products, listingQuery(r.URL.Query()))
	views := h.listingViews(items)
	server.JSON(w, http.StatusOK, map[string]any{"data": views, "count": len(views)})
}

// ListServices handles GET /v1/catalog/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	items := catalog.Filter(h.cat.Services, listingQuery(r.URL.Query()))
	views := h.listingViews(items)
	server.JSON(w, http.StatusOK, map[string]any{"data": views, "count": len(views)})
}

// GetItem handles GET /v1/catalog/items/{type}/{id}.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	if kind != "product" && kind != "service" {
		server.Error(w, http.StatusBadRequest, "item type must be \"product\" or \"service\"")
		return
	}
	l, ok := h.cat.Item(kind, id)
	if !ok {
		server.Error(w, http.StatusNotFound, "no such "+kind+": "+id)
		return
	}
	server.JSON(w, http.StatusOK, listingView{
		Listing:            l,
		InstallmentOptions: h.manager.InstallmentOptions(l.Price),
	})
}

// ListStores handles GET /v1/catalog/stores.
func (h *Handler) ListStores(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := catalog.StoreQuery{
		Text:   values.Get("q"),
		Wilaya: values.Get("wilaya"),
		Sort:   values.Get("sort"),
	}
	if v, err := strconv.ParseFloat(values.Get("min_rating"), 64); err == nil {
		q.MinRating = v
	}
	stores := catalog.FilterStores(h.cat.Stores, q)
	server.JSON(w, http.StatusOK, map[string]any{"data": stores, "count": len(stores)})
}

// GetStore handles GET /v1/catalog/stores/{id}: the store plus its
// listings.
func (h *Handler) GetStore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, ok := h.cat.StoreByID(id)
	if !ok {
		server.Error(w, http.StatusNotFound, "no such store: "+id)
		return
	}
	products, services := h.cat.ListingsForStore(s.Name)
	server.JSON(w, http.StatusOK, map[string]any{
		"store":    s,
		"products": h.listingViews(products),
		"services": h.listingViews(services),
	})
}

// ListCategories handles GET /v1/catalog/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	server.JSON(w, http.StatusOK, map[string]any{
		"data":  h.cat.Categories,
		"count": len(h.cat.Categories),
	})
}
