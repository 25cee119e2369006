// Package cart holds the per-session shopping cart.
//
// A Store belongs to exactly one session and is not safe for concurrent use.
// Mutations are driven by user actions, derived values are recomputed on
// every read.
package cart

import (
	"errors"
	"math"

	"github.com/galactic-greens/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProduct   = errors.New("product is not in the catalog")
	ErrQuantityTooLarge = errors.New("quantity is too large")
)

// Store is the authoritative set of cart lines for one session
type Store struct {
	catalog map[int64]models.Product
	pending map[int64]int

	lines map[int64]*models.CartLine
	order []int64 // insertion order of lines
}

// NewStore creates an empty cart over the given catalog
func NewStore(catalog []models.Product) *Store {
	byID := make(map[int64]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	return &Store{
		catalog: byID,
		pending: make(map[int64]int),
		lines:   make(map[int64]*models.CartLine),
	}
}

// SetPendingQuantity stages the quantity that the next AddToCart for the
// product will commit. Negative amounts are clamped to zero.
func (s *Store) SetPendingQuantity(productID int64, amount int) {
	if amount < 0 {
		amount = 0
	}
	if amount == 0 {
		delete(s.pending, productID)
		return
	}
	s.pending[productID] = amount
}

// PendingQuantity returns the staged quantity for a product
func (s *Store) PendingQuantity(productID int64) int {
	return s.pending[productID]
}

// AddToCart commits the pending quantity for productID. A non-positive
// pending quantity is a no-op. An add that would overflow the line quantity
// returns ErrQuantityTooLarge and changes nothing.
func (s *Store) AddToCart(productID int64) error {
	amount := s.pending[productID]
	if amount <= 0 {
		return nil
	}

	if line, ok := s.lines[productID]; ok {
		if amount > math.MaxInt-line.Quantity {
			return ErrQuantityTooLarge
		}
		line.Quantity += amount
	} else {
		product, ok := s.catalog[productID]
		if !ok {
			return ErrUnknownProduct
		}
		s.lines[productID] = &models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  amount,
		}
		s.order = append(s.order, productID)
	}

	delete(s.pending, productID)
	return nil
}

// UpdateLineQuantity sets a line's quantity. A quantity <= 0 removes the line.
// Missing lines are left alone.
func (s *Store) UpdateLineQuantity(productID int64, quantity int) {
	line, ok := s.lines[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		s.remove(productID)
		return
	}
	line.Quantity = quantity
}

// RemoveOneUnit decrements a line by one and drops it when it reaches zero
func (s *Store) RemoveOneUnit(productID int64) {
	line, ok := s.lines[productID]
	if !ok {
		return
	}
	s.UpdateLineQuantity(productID, line.Quantity-1)
}

// Clear empties the cart and any staged quantities
func (s *Store) Clear() {
	s.lines = make(map[int64]*models.CartLine)
	s.pending = make(map[int64]int)
	s.order = nil
}

// Lines returns a copy of the cart lines in the order they were added
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.lines[id])
	}
	return out
}

// Line returns the line for productID, if present
func (s *Store) Line(productID int64) (models.CartLine, bool) {
	line, ok := s.lines[productID]
	if !ok {
		return models.CartLine{}, false
	}
	return *line, true
}

// Total is the sum of unit price x quantity over all lines
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Total())
	}
	return total
}

// Count is the number of units in the cart, saturating at math.MaxInt
func (s *Store) Count() int {
	count := 0
	for _, line := range s.lines {
		if line.Quantity > math.MaxInt-count {
			return math.MaxInt
		}
		count += line.Quantity
	}
	return count
}

func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s *Store) remove(productID int64) {
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
