package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/ray-remotestate/storefront/models"
)

var (
	branchCentro  = uuid.MustParse("f1b7b3a0-6f3e-4b6e-9b1a-2c8d4e5f6a70")
	branchNorte   = uuid.MustParse("a2c8d4e5-7a4f-4c7f-8c2b-3d9e5f6a7b81")
	branchRiviera = uuid.MustParse("b3d9e5f6-8b50-4d80-9d3c-4eaf6a7b8c92")
	seedCreatedAt = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
)

// SeedSnapshot returns the static catalog the simulated upstream serves.
func SeedSnapshot() *Snapshot {
	return &Snapshot{
		Branches: seedBranches(),
		Products: seedProducts(),
	}
}

func seedBranches() []models.Branch {
	return []models.Branch{
		{
			ID:      branchCentro,
			Name:    "Centro",
			Address: "Av. Principal 120, Centro",
			Phone:   "+58 212 555 0120",
			IsOpen:  true,
			Hours: &models.OpeningHours{
				Weekday:       models.Shift{Open: "19:00", Close: "23:59"},
				WeekendLunch:  models.Shift{Open: "12:00", Close: "15:00"},
				WeekendDinner: models.Shift{Open: "19:00", Close: "23:59"},
			},
			CreatedAt: seedCreatedAt,
		},
		{
			ID:      branchNorte,
			Name:    "Norte",
			Address: "Calle 45 con Av. Norte, CC Galerias",
			Phone:   "+58 212 555 0145",
			IsOpen:  true,
			Hours: &models.OpeningHours{
				Weekday:       models.Shift{Open: "18:00", Close: "23:00"},
				WeekendLunch:  models.Shift{Open: "11:30", Close: "15:30"},
				WeekendDinner: models.Shift{Open: "18:00", Close: "23:30"},
			},
			CreatedAt: seedCreatedAt,
		},
		{
			// no structured schedule, falls back to the static flag
			ID:        branchRiviera,
			Name:      "Riviera",
			Address:   "Blvd. Riviera local 8",
			Phone:     "+58 212 555 0198",
			IsOpen:    true,
			CreatedAt: seedCreatedAt,
		},
	}
}

func seedProducts() []models.Product {
	burgers := []models.Ingredient{
		{Name: "cheese", Price: 1.5},
		{Name: "bacon", Price: 2.0},
		{Name: "lettuce", Price: 0},
		{Name: "tomato", Price: 0},
	}
	condiments := []string{"ketchup", "mustard", "mayo", "hot sauce"}

	return []models.Product{
		{
			ID: 1, BranchID: branchCentro, Name: "Classic Burger",
			Description: "180g beef, brioche bun", Price: 8.5,
			Image: "classic-burger.jpg", IsAvailable: true, Category: "burgers",
			Ingredients: burgers, Condiments: condiments, CreatedAt: seedCreatedAt,
		},
		{
			ID: 2, BranchID: branchCentro, Name: "Double Smash",
			Description: "two smashed patties, cheddar", Price: 11.0,
			Image: "double-smash.jpg", IsAvailable: true, Category: "burgers",
			Ingredients: burgers, Condiments: condiments, CreatedAt: seedCreatedAt,
		},
		{
			ID: 3, BranchID: branchCentro, Name: "Promo Combo Burger",
			Description: "burger, fries and a drink", Price: 12.5,
			Image: "promo-combo.jpg", IsAvailable: true, Category: "combos",
			Condiments: condiments, CreatedAt: seedCreatedAt,
		},
		{
			ID: 4, BranchID: branchCentro, Name: "Fries",
			Description: "hand cut, double fried", Price: 3.5,
			Image: "fries.jpg", IsAvailable: true, Category: "sides",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: 5, BranchID: branchCentro, Name: "Craft Soda",
			Description: "house made, 350ml", Price: 2.5,
			Image: "craft-soda.jpg", IsAvailable: true, Category: "drinks",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: 6, BranchID: branchNorte, Name: "Pepperoni Pizza",
			Description: "12 inch, wood fired", Price: 10.0,
			Image: "pepperoni.jpg", IsAvailable: true, Category: "pizzas",
			Ingredients: []models.Ingredient{
				{Name: "extra cheese", Price: 2.0},
				{Name: "mushrooms", Price: 1.5},
				{Name: "olives", Price: 1.0},
			},
			CreatedAt: seedCreatedAt,
		},
		{
			ID: 7, BranchID: branchNorte, Name: "Margherita",
			Description: "tomato, mozzarella, basil", Price: 9.0,
			Image: "margherita.jpg", IsAvailable: true, Category: "pizzas",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: 8, BranchID: branchNorte, Name: "Garlic Knots",
			Description: "six pieces, parmesan", Price: 4.0,
			Image: "garlic-knots.jpg", IsAvailable: false, Category: "sides",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: 9, BranchID: branchRiviera, Name: "Fish Tacos",
			Description: "three tacos, grilled fish", Price: 9.5,
			Image: "fish-tacos.jpg", IsAvailable: true, Category: "tacos",
			Condiments: []string{"pico de gallo", "chipotle crema"},
			CreatedAt:  seedCreatedAt,
		},
		{
			ID: 10, BranchID: branchRiviera, Name: "Churros",
			Description: "with dulce de leche", Price: 4.5,
			Image: "churros.jpg", IsAvailable: true, Category: "desserts",
			CreatedAt: seedCreatedAt,
		},
	}
}
