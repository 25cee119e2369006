package models

import "github.com/shopspring/decimal"

// Product represents a catalog entry available for order.
// A zero price means the item is priced on request ("Custom").
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// IsCustomPrice reports whether the product is priced on request
func (p Product) IsCustomPrice() bool {
	return p.Price.IsZero()
}
