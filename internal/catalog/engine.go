package catalog

import (
	"math"
	"sort"

	"catalog-service/internal/models"
)

// SelectionPolicy tags which category selection model is in effect. The tag
// drives the filter predicate, the state machine semantics and the tree
// display together; the two models are not equivalent and must not be mixed.
//
// PolicyTriState is the id-based model: an explicit exclude set with
// "match any" inclusion over category_ids.
//
// PolicyAncestorExclusion is the legacy path-based model: a flat include set
// over category names where selecting both a parent and a child means
// "select only within the child" (the deepest match is dropped whenever a
// strict ancestor of it is also selected).
type SelectionPolicy string

const (
	PolicyTriState          SelectionPolicy = "tri-state"
	PolicyAncestorExclusion SelectionPolicy = "ancestor-exclusion"
)

// ParsePolicy normalizes a configured policy name, defaulting to tri-state.
func ParsePolicy(raw string) SelectionPolicy {
	if SelectionPolicy(raw) == PolicyAncestorExclusion {
		return PolicyAncestorExclusion
	}
	return PolicyTriState
}

// FilterAndSort returns the products passing every active filter clause, in
// the order selected by sort. Pure: inputs are never mutated and the result
// is always a fresh slice. The default sort preserves input order exactly.
func FilterAndSort(products []models.Product, filters FilterState, sortOpt SortOption, policy SelectionPolicy) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for i := range products {
		if matches(&products[i], filters, policy) {
			filtered = append(filtered, products[i])
		}
	}

	field, descending, active := sortPlan(sortOpt)
	if !active {
		return filtered
	}

	metrics := make([]float64, len(filtered))
	for i := range filtered {
		metrics[i] = priceMetric(&filtered[i], filters.Stores, field, descending)
	}
	order := make([]int, len(filtered))
	for i := range order {
		order[i] = i
	}
	// Stable: ties keep their original relative order, there is no
	// secondary key.
	sort.SliceStable(order, func(a, b int) bool {
		if descending {
			return metrics[order[a]] > metrics[order[b]]
		}
		return metrics[order[a]] < metrics[order[b]]
	})

	out := make([]models.Product, len(filtered))
	for i, idx := range order {
		out[i] = filtered[idx]
	}
	return out
}

func matches(p *models.Product, filters FilterState, policy SelectionPolicy) bool {
	if len(filters.Brands) > 0 {
		if p.Brand == nil || !filters.Brands.Has(*p.Brand) {
			return false
		}
	}

	// Exclusion is evaluated before inclusion so that a hand-crafted state
	// with an id in both sets resolves toward exclude.
	if policy == PolicyTriState && len(filters.ExcludeCategories) > 0 {
		for _, id := range p.CategoryIDs {
			if filters.ExcludeCategories.Has(id) {
				return false
			}
		}
	}

	if len(filters.Categories) > 0 {
		switch policy {
		case PolicyAncestorExclusion:
			if !matchesPathSelection(p.Categories, filters.Categories) {
				return false
			}
		default:
			if !intersects(p.CategoryIDs, filters.Categories) {
				return false
			}
		}
	}

	if len(filters.Stores) > 0 {
		matched := false
		for i := range p.Prices {
			if filters.Stores.Has(p.Prices[i].StoreName) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// matchesPathSelection implements the path-based deepest-match rule: the
// product is kept when at least one selected name lies on its path and no
// other selected name is a strict ancestor of the deepest such match.
func matchesPathSelection(path []string, selected StringSet) bool {
	deepest := -1
	matchCount := 0
	for idx, name := range path {
		if selected.Has(name) {
			matchCount++
			if idx > deepest {
				deepest = idx
			}
		}
	}
	if matchCount == 0 {
		return false
	}
	// Any second match is by construction at a lower index than the deepest.
	return matchCount == 1
}

func intersects(values []string, set StringSet) bool {
	for _, v := range values {
		if set.Has(v) {
			return true
		}
	}
	return false
}

type priceField int

const (
	fieldPrice priceField = iota
	fieldUnitPrice
)

func sortPlan(opt SortOption) (field priceField, descending, active bool) {
	switch opt {
	case SortPriceAsc:
		return fieldPrice, false, true
	case SortPriceDesc:
		return fieldPrice, true, true
	case SortUnitAsc:
		return fieldUnitPrice, false, true
	case SortUnitDesc:
		return fieldUnitPrice, true, true
	}
	return 0, false, false
}

// priceMetric reduces a product's relevant offers to a single comparison
// key: min of the present values for ascending sorts, max for descending.
// With no usable value the metric is +Inf ascending and -1 descending, so
// metricless products land at the end either way.
func priceMetric(p *models.Product, stores StringSet, field priceField, descending bool) float64 {
	found := false
	var best float64
	for i := range p.Prices {
		pr := &p.Prices[i]
		if len(stores) > 0 && !stores.Has(pr.StoreName) {
			continue
		}
		var v *float64
		if field == fieldPrice {
			v = pr.Price
		} else {
			v = pr.UnitPrice
		}
		if v == nil {
			continue
		}
		if !found {
			best = *v
			found = true
			continue
		}
		if descending {
			if *v > best {
				best = *v
			}
		} else if *v < best {
			best = *v
		}
	}
	if !found {
		if descending {
			return -1
		}
		return math.Inf(1)
	}
	return best
}

// NodeSelection reports how a tree node should be presented under the active
// policy. For the tri-state model id is the node's stable id; for the legacy
// path model it is the node's name and hasSelectedAncestor tells whether any
// ancestor on the displayed path is itself selected (a checked node under a
// checked ancestor displays as excluding).
func NodeSelection(policy SelectionPolicy, filters FilterState, id string, hasSelectedAncestor bool) CategorySelection {
	if policy == PolicyAncestorExclusion {
		if !filters.Categories.Has(id) {
			return SelectionNeutral
		}
		if hasSelectedAncestor {
			return SelectionExcluded
		}
		return SelectionIncluded
	}
	return filters.CategoryState(id)
}
