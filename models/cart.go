package models

import "github.com/google/uuid"

// IngredientSelection is one chosen add-on on a cart line. Selections with
// Quantity 0 are kept for display but contribute nothing to the total.
type IngredientSelection struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CartLine is one entry in a cart: a product plus its customizations.
// UniqueID distinguishes differently-customized lines of the same product.
type CartLine struct {
	UniqueID    uuid.UUID             `json:"unique_id"`
	ProductID   int64                 `json:"product_id"`
	Name        string                `json:"name"`
	UnitPrice   float64               `json:"unit_price"`
	Quantity    int                   `json:"quantity"`
	Ingredients []IngredientSelection `json:"ingredients,omitempty"`
	Condiments  []string              `json:"condiments,omitempty"`
	Comment     string                `json:"comment,omitempty"`
	Total       float64               `json:"total"`
}

// CartLinePatch carries partial updates for an existing line. Nil fields are
// left untouched; a Quantity of exactly 0 removes the line.
type CartLinePatch struct {
	Quantity    *int                   `json:"quantity,omitempty"`
	Ingredients *[]IngredientSelection `json:"ingredients,omitempty"`
	Condiments  *[]string              `json:"condiments,omitempty"`
	Comment     *string                `json:"comment,omitempty"`
}
