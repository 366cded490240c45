// Package pricing computes the displayed and charged price for one cart line.
package pricing

import (
	"strings"

	"github.com/ray-remotestate/storefront/models"
)

// originalPriceMarkup inflates the base price for the strike-through
// "original price" shown next to discounted products. The charged price is
// not reduced; the discount is presentation only.
const originalPriceMarkup = 1.2

type Quote struct {
	UnitPrice     float64 `json:"unit_price"`
	Total         float64 `json:"total"`
	HasDiscount   bool    `json:"has_discount"`
	OriginalPrice float64 `json:"original_price,omitempty"`
}

// HasDiscount flags a product as discounted when its name contains "promo"
// (case-insensitive) or its id is divisible by 3.
func HasDiscount(p *models.Product) bool {
	return strings.Contains(strings.ToLower(p.Name), "promo") || p.ID%3 == 0
}

// ForLine prices one cart line: base price plus every selected add-on
// surcharge, multiplied by the line quantity. Add-ons with quantity 0
// contribute nothing. The caller must supply quantity >= 1.
func ForLine(p *models.Product, selections []models.IngredientSelection, quantity int) Quote {
	unit := p.Price
	for _, sel := range selections {
		if sel.Quantity > 0 {
			unit += sel.Price * float64(sel.Quantity)
		}
	}

	q := Quote{
		UnitPrice: unit,
		Total:     unit * float64(quantity),
	}
	if HasDiscount(p) {
		q.HasDiscount = true
		q.OriginalPrice = p.Price * originalPriceMarkup
	}
	return q
}
