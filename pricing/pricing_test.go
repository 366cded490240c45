package pricing

import (
	"testing"

	"github.com/ray-remotestate/storefront/models"
	"github.com/stretchr/testify/assert"
)

func TestForLine_AddOnSurcharges(t *testing.T) {
	product := &models.Product{ID: 7, Name: "Burger", Price: 100}
	selections := []models.IngredientSelection{
		{Name: "cheese", Quantity: 1, Price: 10},
		{Name: "lettuce", Quantity: 0, Price: 0},
	}

	q := ForLine(product, selections, 2)

	assert.Equal(t, 110.0, q.UnitPrice)
	assert.Equal(t, 220.0, q.Total)
	assert.False(t, q.HasDiscount)
}

func TestForLine_ZeroQuantitySelectionIgnored(t *testing.T) {
	product := &models.Product{ID: 7, Name: "Burger", Price: 50}
	selections := []models.IngredientSelection{
		{Name: "bacon", Quantity: 0, Price: 15},
	}

	q := ForLine(product, selections, 1)
	assert.Equal(t, 50.0, q.Total)
}

func TestForLine_DiscountIsCosmeticOnly(t *testing.T) {
	product := &models.Product{ID: 9, Name: "Pizza", Price: 100}

	q := ForLine(product, nil, 1)

	assert.True(t, q.HasDiscount)
	assert.InDelta(t, 120.0, q.OriginalPrice, 1e-9)
	// charged price stays at base
	assert.Equal(t, 100.0, q.UnitPrice)
	assert.Equal(t, 100.0, q.Total)
}

func TestHasDiscount(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    bool
	}{
		{"id divisible by 3", models.Product{ID: 9, Name: "Pizza"}, true},
		{"promo in name", models.Product{ID: 7, Name: "PROMO Wings"}, true},
		{"promo lowercase", models.Product{ID: 8, Name: "taco promo deal"}, true},
		{"no discount", models.Product{ID: 7, Name: "Burger"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDiscount(&tt.product))
		})
	}
}
