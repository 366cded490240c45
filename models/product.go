package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          int64        `db:"id" json:"id"`
	BranchID    uuid.UUID    `db:"branch_id" json:"branch_id"`
	Name        string       `db:"name" json:"name"`
	Description string       `db:"description" json:"description"`
	Price       float64      `db:"price" json:"price"`
	Image       string       `db:"image" json:"image"`
	IsAvailable bool         `db:"is_available" json:"is_available"`
	Category    string       `db:"category" json:"category"`
	Ingredients []Ingredient `db:"-" json:"ingredients,omitempty"`
	Condiments  []string     `db:"-" json:"condiments,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}

// Ingredient is an optional add-on; Price is the per-unit surcharge (zero for
// free add-ons).
type Ingredient struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
