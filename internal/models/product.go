package models

// Price represents a single store offer for a product. A price is owned by
// exactly one product and has no lifecycle of its own.
//
// Price and UnitPrice are pointers because "unknown" is a valid domain value:
// a nil price never contributes to a sort metric and always sorts last.
type Price struct {
	StoreName     string   `json:"store_name"`
	Price         *float64 `json:"price"`
	UnitPrice     *float64 `json:"unit_price"`
	Unit          *string  `json:"unit"`
	PackageSize   *string  `json:"package_size"`
	Condition     *string  `json:"condition"`
	DiscountPct   *float64 `json:"discount_pct,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Validity      *string  `json:"validity,omitempty"`
	ValidityStart *string  `json:"validity_start,omitempty"`
	ValidityEnd   *string  `json:"validity_end,omitempty"`
}

// Product is a single catalog entry from a snapshot source.
//
// Categories is the root-to-leaf category path. CategoryIDs, when present,
// is index-aligned with Categories: position i in both arrays refers to the
// same tree node. Older snapshots omit CategoryIDs entirely.
type Product struct {
	Name        string   `json:"name"`
	Brand       *string  `json:"brand"`
	ImageURL    *string  `json:"image_url"`
	Categories  []string `json:"categories"`
	CategoryIDs []string `json:"category_ids,omitempty"`
	Prices      []Price  `json:"prices"`
	Description *string  `json:"description,omitempty"`
	ProductURL  *string  `json:"product_url,omitempty"`
	AIFindings  []string `json:"ai_findings,omitempty"`
}

// HasStore reports whether any of the product's offers comes from store.
func (p *Product) HasStore(store string) bool {
	for i := range p.Prices {
		if p.Prices[i].StoreName == store {
			return true
		}
	}
	return false
}
