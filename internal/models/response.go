package models

// Error describes a single API error
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

// SourcesResponse lists the available snapshot sources
type SourcesResponse struct {
	Success bool     `json:"success"`
	Data    []Source `json:"data"`
}

// ProductView is a product enriched with its partitioned price view for the
// current store selection
type ProductView struct {
	Product
	VisiblePrices []Price `json:"visible_prices"`
	HiddenPrices  []Price `json:"hidden_prices"`
	HiddenRange   *string `json:"hidden_range,omitempty"`
}

// ProductListResponse is the filtered+sorted catalog view
type ProductListResponse struct {
	Success       bool          `json:"success"`
	Source        string        `json:"source"`
	Data          []ProductView `json:"data"`
	FilteredCount int           `json:"filteredCount"`
	TotalProducts int           `json:"totalProducts"`
	Sort          string        `json:"sort"`
}

// ProductResponse wraps a single resolved product
type ProductResponse struct {
	Success bool    `json:"success"`
	Source  string  `json:"source"`
	Data    Product `json:"data"`
}

// CategoryTreeResponse is the grouped category tree for one source
type CategoryTreeResponse struct {
	Success bool           `json:"success"`
	Source  string         `json:"source"`
	Food    []CategoryNode `json:"food"`
	Other   []CategoryNode `json:"other"`
}

// StateResponse carries a canonical re-encoding of the filter state
type StateResponse struct {
	Success bool                `json:"success"`
	Query   string              `json:"query"`
	Params  map[string][]string `json:"params"`
}
