package catalog

import (
	"sort"
	"strings"

	"github.com/autodinar/autodinar/internal/money"
)

// Sort options for listing queries.
const (
	SortPriceAsc    = "price_asc"
	SortPriceDesc   = "price_desc"
	SortReviewsDesc = "reviews_desc"
)

// Query is a filter over listings. Zero fields match everything; the
// predicates are ANDed.
type Query struct {
	Text         string
	MainCategory string
	SubCategory  string
	MinPrice     money.Amount
	MaxPrice     money.Amount // 0 means no ceiling
	MinReviews   int
	Vehicle      *Vehicle
	Sort         string
}

// Filter returns the listings matching q, sorted per q.Sort.
func Filter(items []Listing, q Query) []Listing {
	var out []Listing
	for _, l := range items {
		if !matches(l, q) {
			continue
		}
		out = append(out, l)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortReviewsDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Reviews > out[j].Reviews })
	}
	return out
}

func matches(l Listing, q Query) bool {
	if q.Text != "" && !textMatch(l, q.Text) {
		return false
	}
	if q.MainCategory != "" && l.MainCategory != q.MainCategory {
		return false
	}
	if q.SubCategory != "" && l.SubCategory != q.SubCategory {
		return false
	}
	if l.Price < q.MinPrice {
		return false
	}
	if q.MaxPrice > 0 && l.Price > q.MaxPrice {
		return false
	}
	if q.MinReviews > 0 && l.Reviews < q.MinReviews {
		return false
	}
	return VehicleCompatible(l.Compatible, q.Vehicle)
}

// textMatch searches name, store, categories, and location,
// case-insensitively.
func textMatch(l Listing, text string) bool {
	t := strings.ToLower(text)
	for _, field := range []string{l.Name, l.Store, l.MainCategory, l.SubCategory, l.Location} {
		if strings.Contains(strings.ToLower(field), t) {
			return true
		}
	}
	return false
}

// VehicleCompatible reports whether a listing fits the selected
// vehicle. A listing with no compatibility data fits everything, as
// does an empty selection. A populated list must contain an entry
// matching the selected brand, and that entry's model and year
// constraints, when both sides state them, must agree.
func VehicleCompatible(compat []CompatibleVehicle, v *Vehicle) bool {
	if v == nil || v.Brand == "" {
		return true
	}
	if len(compat) == 0 {
		return true
	}
	for _, c := range compat {
		if c.Brand != v.Brand {
			continue
		}
		if v.Model != "" && c.Model != "" && c.Model != v.Model {
			continue
		}
		if v.Year != 0 && len(c.Years) > 0 && !containsInt(c.Years, v.Year) {
			continue
		}
		return true
	}
	return false
}

// StoreQuery is a filter over stores.
type StoreQuery struct {
	Text      string
	Wilaya    string
	MinRating float64
	Sort      string
}

// FilterStores returns the stores matching q.
func FilterStores(stores []Store, q StoreQuery) []Store {
	var out []Store
	for _, s := range stores {
		if q.Text != "" && !storeTextMatch(s, q.Text) {
			continue
		}
		if q.Wilaya != "" && s.Wilaya != q.Wilaya {
			continue
		}
		if q.MinRating > 0 && s.Rating < q.MinRating {
			continue
		}
		out = append(out, s)
	}
	if q.Sort == SortReviewsDesc {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

func storeTextMatch(s Store, text string) bool {
	t := strings.ToLower(text)
	for _, field := range []string{s.Name, s.Location, s.Type} {
		if strings.Contains(strings.ToLower(field), t) {
			return true
		}
	}
	return false
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
