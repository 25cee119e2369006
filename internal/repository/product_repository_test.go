package repository

import (
	"context"
	"testing"

	"github.com/galactic-greens/storefront/internal/models"
	"github.com/shopspring/decimal"
)

func TestInMemoryProductRepository_GetAll(t *testing.T) {
	repo := NewInMemoryProductRepository()

	products, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() unexpected error = %v", err)
	}

	if len(products) != 8 {
		t.Fatalf("expected 8 products, got %d", len(products))
	}

	for i, p := range products {
		if p.ID != int64(i+1) {
			t.Errorf("products[%d].ID = %d, want %d", i, p.ID, i+1)
		}
	}

	// Mutating the returned slice must not leak into the catalog
	products[0].Name = "changed"
	again, _ := repo.GetAll(context.Background())
	if again[0].Name == "changed" {
		t.Error("GetAll() returned a slice aliasing the catalog")
	}
}

func TestInMemoryProductRepository_GetByID(t *testing.T) {
	repo := NewInMemoryProductRepository()

	tests := []struct {
		name      string
		id        int64
		wantName  string
		wantPrice int64
		wantErr   error
	}{
		{name: "grinder", id: 2, wantName: "Grinder", wantPrice: 2000},
		{name: "custom priced accessory", id: 1, wantName: "Accessories (Ashtrays & Trays)", wantPrice: 0},
		{name: "skunk pre-roll", id: 8, wantName: "Pre-roll (Skunk)", wantPrice: 100},
		{name: "unknown id", id: 99, wantErr: ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := repo.GetByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("GetByID() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetByID() unexpected error = %v", err)
			}
			if p.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", p.Name, tt.wantName)
			}
			if !p.Price.Equal(decimal.NewFromInt(tt.wantPrice)) {
				t.Errorf("Price = %s, want %d", p.Price, tt.wantPrice)
			}
		})
	}
}

func TestNewInMemoryProductRepositoryFrom_DuplicateIDs(t *testing.T) {
	repo := NewInMemoryProductRepositoryFrom([]models.Product{
		{ID: 3, Name: "first"},
		{ID: 1, Name: "one"},
		{ID: 3, Name: "second"},
	})

	products, _ := repo.GetAll(context.Background())
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != 1 || products[1].ID != 3 {
		t.Errorf("products not ordered by id: %+v", products)
	}
	if products[1].Name != "second" {
		t.Errorf("expected later duplicate to win, got %q", products[1].Name)
	}
}
