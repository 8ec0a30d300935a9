// Package catalog holds the marketplace listings (automotive parts,
// services, and stores) and the filter/sort pipeline over them. The
// data set is embedded; the catalog is read-only at runtime.
package catalog

import "github.com/autodinar/autodinar/internal/money"

// Vehicle is a buyer-selected vehicle used to filter compatible
// listings. Empty fields are wildcards.
type Vehicle struct {
	Brand  string `json:"brand"`
	Model  string `json:"model,omitempty"`
	Year   int    `json:"year,omitempty"`
	Engine string `json:"engine,omitempty"`
}

// CompatibleVehicle describes one vehicle range a listing fits.
type CompatibleVehicle struct {
	Brand  string `json:"brand"`
	Model  string `json:"model,omitempty"`
	Years  []int  `json:"years,omitempty"`
	Engine string `json:"engine,omitempty"`
}

// Listing is one product or service offered by a store.
type Listing struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Store        string              `json:"store"`
	Location     string              `json:"location"`
	Wilaya       string              `json:"wilaya,omitempty"`
	Price        money.Amount        `json:"price"`
	Description  string              `json:"description"`
	MainCategory string              `json:"main_category"`
	SubCategory  string              `json:"sub_category"`
	Reviews      int                 `json:"reviews"`
	StoreAddress string              `json:"store_address"`
	Compatible   []CompatibleVehicle `json:"compatible_vehicles,omitempty"`
}

// Store is a parts shop or service garage.
type Store struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Wilaya   string  `json:"wilaya"`
	Type     string  `json:"type"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
}

// SubCategory is one leaf of a category tree.
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category groups listings of one kind.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Kind          string        `json:"type"` // "product" or "service"
	SubCategories []SubCategory `json:"sub_categories"`
}

// Catalog is the full data set.
type Catalog struct {
	Products   []Listing
	Services   []Listing
	Stores     []Store
	Categories []Category
}

// Product returns the product listing with the given ID.
func (c *Catalog) Product(id string) (Listing, bool) {
	return findListing(c.Products, id)
}

// Service returns the service listing with the given ID.
func (c *Catalog) Service(id string) (Listing, bool) {
	return findListing(c.Services, id)
}

// Item resolves a listing by kind and ID.
func (c *Catalog) Item(kind, id string) (Listing, bool) {
	if kind == "service" {
		return c.Service(id)
	}
	return c.Product(id)
}

// StoreByID returns the store with the given ID.
func (c *Catalog) StoreByID(id string) (Store, bool) {
	for _, s := range c.Stores {
		if s.ID == id {
			return s, true
		}
	}
	return Store{}, false
}

// ListingsForStore returns the products and services sold by the named
// store.
func (c *Catalog) ListingsForStore(name string) (products, services []Listing) {
	for _, l := range c.Products {
		if l.Store == name {
			products = append(products, l)
		}
	}
	for _, l := range c.Services {
		if l.Store == name {
			services = append(services, l)
		}
	}
	return products, services
}

func findListing(items []Listing, id string) (Listing, bool) {
	for _, l := range items {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}
