package app

import (
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// Item is the display-ready union of one cart entry and its matching
// catalog product. Items are derived state: rebuilt from scratch on every
// recompute, never mutated in place.
type Item struct {
	ProductID string
	Name      string
	Category  string
	Cost      float64
	Rating    int
	ImageURL  string
	Qty       int
}

// Merge pairs every cart entry with the first catalog product sharing its
// ID, preserving the server's entry order. A nil entry slice means "no
// cart" and yields an empty result. An entry without a catalog match keeps
// zero-valued product fields; it resolves on a later re-merge once the
// catalog arrives.
func Merge(entries []cartdomain.Entry, catalog []catalogdomain.Product) []Item {
	items := make([]Item, 0, len(entries))
	if entries == nil {
		return items
	}

	for _, e := range entries {
		it := Item{ProductID: e.ProductID, Qty: e.Qty}
		for _, p := range catalog {
			if p.ID == e.ProductID {
				it.Name = p.Name
				it.Category = p.Category
				it.Cost = p.Cost
				it.Rating = p.Rating
				it.ImageURL = p.ImageURL
				break
			}
		}
		items = append(items, it)
	}
	return items
}

// Total sums cost times quantity over the items. Entries that never
// matched a catalog product carry a zero cost and contribute nothing.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Cost * float64(it.Qty)
	}
	return total
}
