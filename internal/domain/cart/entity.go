// internal/domain/cart/entity.go
package cart

// Line relates a product to a quantity. A cart holds at most one line per
// product; quantities are always >= 1.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Record is the persisted cart state. The field names and shape match the
// original storefront's local-storage record, a compatibility contract.
type Record struct {
	Items []Line  `json:"items"`
	Total float64 `json:"total"`
}

// LineView is a cart line joined with its product details for display.
type LineView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"` // Effective price at render time
	LineTotal float64 `json:"line_total"`
}

// View represents a shopping cart with items and derived totals.
type View struct {
	Items     []LineView `json:"items"`
	ItemCount int        `json:"item_count"` // Sum of all line quantities
	Total     float64    `json:"total"`
}
