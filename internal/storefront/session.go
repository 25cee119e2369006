// Package storefront ties one cart, its order form and the order submitter
// into a user session.
package storefront

import (
	"context"

	"github.com/galactic-greens/storefront/internal/cart"
	"github.com/galactic-greens/storefront/internal/models"
	"github.com/galactic-greens/storefront/internal/order"
)

// Session is owned by a single user. It is not safe for concurrent mutation
// apart from Submit, which the submitter guards against re-entry.
type Session struct {
	Catalog   []models.Product
	Cart      *cart.Store
	Contact   order.Contact
	submitter *order.Submitter
}

// NewSession creates a session with an empty cart over catalog
func NewSession(catalog []models.Product, submitter *order.Submitter) *Session {
	return &Session{
		Catalog:   catalog,
		Cart:      cart.NewStore(catalog),
		submitter: submitter,
	}
}

// Submit sends the current cart and contact fields. On success the cart is
// cleared and the contact fields are reset; on failure both are kept so the
// user can try again with the same data.
func (s *Session) Submit(ctx context.Context) (*order.Confirmation, error) {
	conf, err := s.submitter.Submit(ctx, s.Cart.Lines(), s.Contact)
	if err != nil {
		return nil, err
	}

	s.Cart.Clear()
	s.Contact = order.Contact{}
	return conf, nil
}

// SubmissionState reports the submitter's current state
func (s *Session) SubmissionState() order.State {
	return s.submitter.State()
}

// Product looks a product up in the session catalog
func (s *Session) Product(id int64) (models.Product, bool) {
	for _, p := range s.Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
