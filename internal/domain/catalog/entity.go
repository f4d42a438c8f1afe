// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog entry. Products are immutable once loaded;
// the cart and favorites stores never mutate them.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"` // List price in dollars
	SalePrice   *float64 `json:"sale_price,omitempty"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Size        string   `json:"size"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Badge       string   `json:"badge,omitempty"`
}

// EffectivePrice returns the sale price when set, otherwise the list price.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// IsOnSale reports whether a sale price is set.
func (p *Product) IsOnSale() bool {
	return p.SalePrice != nil
}

// DiscountPercentage returns the discount over the list price, 0 when not on sale.
func (p *Product) DiscountPercentage() int {
	if p.SalePrice != nil && *p.SalePrice < p.Price && p.Price > 0 {
		return int((p.Price - *p.SalePrice) * 100 / p.Price)
	}
	return 0
}
