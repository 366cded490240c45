// Package cart is the single source of truth for the items a customer
// intends to order. Carts are keyed by session id; state lives in memory and
// is lost on restart.
package cart

import "github.com/ray-remotestate/storefront/models"

// Subscriber is notified with the session id after every cart mutation.
type Subscriber func(sessionID string)

// Store defines cart storage operations. Operations on unknown session or
// product ids degrade silently; none of them surface errors.
type Store interface {
	// Add appends a new line, or overwrites the existing line for the same
	// product id (last write wins, no quantity summing).
	Add(sessionID string, line models.CartLine)

	// Update merges partial fields into the matching line. A patch setting
	// quantity to exactly 0 removes the line.
	Update(sessionID string, productID int64, patch models.CartLinePatch)

	// Remove drops the matching line.
	Remove(sessionID string, productID int64)

	// Lines returns a copy of the cart's lines.
	Lines(sessionID string) []models.CartLine

	// Quantity returns the quantity of the matching line, or 0.
	Quantity(sessionID string, productID int64) int

	// TotalItems is the sum of quantities across all lines.
	TotalItems(sessionID string) int

	// TotalPrice is the sum of unit price times quantity across all lines,
	// ignoring add-on surcharges.
	TotalPrice(sessionID string) float64

	// TotalWithAddOns is the customization-aware total: the sum of per-line
	// totals including add-on surcharges.
	TotalWithAddOns(sessionID string) float64

	// Clear empties the cart.
	Clear(sessionID string)

	// Subscribe registers a change listener and returns an unsubscribe func.
	Subscribe(fn Subscriber) (unsubscribe func())

	// Revision is a monotonic counter incremented on every mutation.
	Revision() int64
}
