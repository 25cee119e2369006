package service

import (
	"context"

	"github.com/galactic-greens/storefront/internal/models"
	"github.com/galactic-greens/storefront/internal/repository"
)

// ProductService serves the read-only storefront catalog. Products with a
// zero price are listed as custom priced; the service does not filter them.
type ProductService struct {
	catalog repository.ProductRepository
}

func NewProductService(catalog repository.ProductRepository) *ProductService {
	return &ProductService{catalog: catalog}
}

// ListProducts returns every catalog entry, lowest id first
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.catalog.GetAll(ctx)
}

// GetProduct looks up one catalog entry. Unknown ids yield
// repository.ErrProductNotFound.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.catalog.GetByID(ctx, id)
}
