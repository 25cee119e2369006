package models

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with thousands separators, e.g. 12,500 or 1,051.50
func FormatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return humanize.Comma(d.IntPart())
	}
	return humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// PriceLabel is the catalog display price: "Custom" for priced-on-request items
func PriceLabel(p Product) string {
	if p.IsCustomPrice() {
		return "Custom"
	}
	return "KSh " + FormatAmount(p.Price)
}
