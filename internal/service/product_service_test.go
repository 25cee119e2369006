package service

import (
	"context"
	"errors"
	"testing"

	"github.com/galactic-greens/storefront/internal/repository"
)

func TestProductService_ListProducts(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository())

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() unexpected error = %v", err)
	}
	if len(products) != 8 {
		t.Fatalf("got %d products, want 8", len(products))
	}
	if !products[0].IsCustomPrice() {
		t.Errorf("expected the first product to be custom priced, got %s", products[0].Price)
	}
}

func TestProductService_GetProduct(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository())

	p, err := svc.GetProduct(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetProduct(2) unexpected error = %v", err)
	}
	if p.Name != "Grinder" {
		t.Errorf("GetProduct(2) name = %q, want Grinder", p.Name)
	}

	if _, err := svc.GetProduct(context.Background(), 99); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("GetProduct(99) error = %v, want ErrProductNotFound", err)
	}
}
