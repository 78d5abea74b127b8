// Package prices splits a product's offers into the visible and hidden sets
// for a store selection and summarizes what the hidden ones cost.
package prices

import (
	"sort"

	"catalog-service/internal/catalog"
	"catalog-service/internal/format"
	"catalog-service/internal/models"
)

// UnknownRange is the summary used when none of the hidden offers carries a
// usable price.
const UnknownRange = "unknown price"

// Partitioned is the result of routing one product's offers through a store
// selection.
type Partitioned struct {
	Visible []models.Price
	Hidden  []models.Price
	// HiddenRange summarizes the hidden offers' prices: a single formatted
	// value when they all agree, "min - max" otherwise, UnknownRange when no
	// price is known. Nil when nothing is hidden.
	HiddenRange *string
}

// Partition sorts the offers ascending by unit price (unknown unit prices
// last) and, when a store selection is active, routes each offer to Visible
// or Hidden by store membership. An empty selection hides nothing. The input
// slice is left untouched.
func Partition(offers []models.Price, selectedStores catalog.StringSet) Partitioned {
	sorted := make([]models.Price, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(a, b int) bool {
		pa, pb := sorted[a].UnitPrice, sorted[b].UnitPrice
		if pa == nil {
			return false
		}
		if pb == nil {
			return true
		}
		return *pa < *pb
	})

	if len(selectedStores) == 0 {
		return Partitioned{Visible: sorted, Hidden: []models.Price{}}
	}

	visible := make([]models.Price, 0, len(sorted))
	hidden := make([]models.Price, 0)
	for _, offer := range sorted {
		if selectedStores.Has(offer.StoreName) {
			visible = append(visible, offer)
		} else {
			hidden = append(hidden, offer)
		}
	}

	out := Partitioned{Visible: visible, Hidden: hidden}
	if len(hidden) > 0 {
		summary := hiddenRange(hidden)
		out.HiddenRange = &summary
	}
	return out
}

func hiddenRange(hidden []models.Price) string {
	var vals []float64
	for i := range hidden {
		if hidden[i].Price != nil {
			vals = append(vals, *hidden[i].Price)
		}
	}
	if len(vals) == 0 {
		return UnknownRange
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return format.Price(min)
	}
	return format.Price(min) + " - " + format.Price(max)
}
