package models

import "github.com/shopspring/decimal"

func init() {
	// The order endpoint exchanges amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// CartLine is one product's selection within a cart. Name and price are
// snapshots taken when the product was first added.
type CartLine struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"product"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"qty"`
}

// Total returns unit price x quantity
func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderLine is a cart line as sent to the order notification endpoint
type OrderLine struct {
	CartLine
	Total decimal.Decimal `json:"total"`
}

// OrderRequest is the body of POST /api/send-email
type OrderRequest struct {
	Reference string          `json:"reference,omitempty"`
	Cart      []OrderLine     `json:"cart"`
	Total     decimal.Decimal `json:"total"`
	Name      string          `json:"name,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// NewOrderLine snapshots a cart line together with its line total
func NewOrderLine(line CartLine) OrderLine {
	return OrderLine{CartLine: line, Total: line.Total()}
}

// NotifyResponse is the reply of the order notification endpoint
type NotifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`

	// StatusCode is the HTTP status the response arrived with
	StatusCode int `json:"-"`
}
