package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"150", "150"},
		{"2000", "2,000"},
		{"1250000", "1,250,000"},
		{"1051.5", "1,051.50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatAmount(decimal.RequireFromString(tt.in)); got != tt.want {
				t.Errorf("FormatAmount(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPriceLabel(t *testing.T) {
	if got := PriceLabel(Product{Price: decimal.Zero}); got != "Custom" {
		t.Errorf("PriceLabel(0) = %q, want Custom", got)
	}
	if got := PriceLabel(Product{Price: decimal.NewFromInt(2000)}); got != "KSh 2,000" {
		t.Errorf("PriceLabel(2000) = %q, want KSh 2,000", got)
	}
}

func TestOrderLine_JSON(t *testing.T) {
	line := NewOrderLine(CartLine{ProductID: 2, Name: "Grinder", UnitPrice: decimal.NewFromInt(2000), Quantity: 3})

	b, err := json.Marshal(line)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"id":2,"product":"Grinder","price":2000,"qty":3,"total":6000}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}
