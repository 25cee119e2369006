package repository

import (
	"context"
	"errors"
	"slices"

	"github.com/galactic-greens/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// The catalog is seeded once and never modified.
type InMemoryProductRepository struct {
	products map[int64]models.Product
	ordered  []models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository with the store catalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewInMemoryProductRepositoryFrom(seedProducts())
}

// NewInMemoryProductRepositoryFrom creates a repository over the given products.
// Later duplicates of an id replace earlier ones.
func NewInMemoryProductRepositoryFrom(products []models.Product) *InMemoryProductRepository {
	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]models.Product, 0, len(byID))
	for _, p := range byID {
		ordered = append(ordered, p)
	}
	slices.SortFunc(ordered, func(a, b models.Product) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return &InMemoryProductRepository{
		products: byID,
		ordered:  ordered,
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Accessories (Ashtrays & Trays)", Price: decimal.Zero, Image: "/assets/accessory1.jpg"},
		{ID: 2, Name: "Grinder", Price: decimal.NewFromInt(2000), Image: "/assets/grinder.jpg"},
		{ID: 3, Name: "Bong", Price: decimal.NewFromInt(2000), Image: "/assets/bong.jpg"},
		{ID: 4, Name: "Cookies (2pc)", Price: decimal.NewFromInt(350), Image: "/assets/cookies.jpg"},
		{ID: 5, Name: "Kashata", Price: decimal.NewFromInt(150), Image: "/assets/kashata.jpg"},
		{ID: 6, Name: "Mabuyu", Price: decimal.NewFromInt(150), Image: "/assets/mabuyu.jpg"},
		{ID: 7, Name: "Pre-roll (Foreign)", Price: decimal.NewFromInt(150), Image: "/assets/preroll1.jpg"},
		{ID: 8, Name: "Pre-roll (Skunk)", Price: decimal.NewFromInt(100), Image: "/assets/preroll2.jpg"},
	}
}

// GetAll returns all products ordered by id
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return slices.Clone(r.ordered), nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}
