package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	return s == StatusPending || s == StatusProcessing || s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo enforces the order lifecycle: pending -> processing ->
// completed, with cancellation allowed until the order completes.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

type Order struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	UserID    uuid.UUID   `db:"user_id" json:"user_id"`
	BranchID  uuid.UUID   `db:"branch_id" json:"branch_id"`
	Status    OrderStatus `db:"status" json:"status"`
	Total     float64     `db:"total" json:"total"`
	Items     []OrderItem `db:"-" json:"items"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

type OrderItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OrderID   uuid.UUID `db:"order_id" json:"order_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	Name      string    `db:"name" json:"name"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Price     float64   `db:"price" json:"price"`
	Comment   string    `db:"comment" json:"comment"`
}

// DeliveryMethod and PaymentMethod are the checkout choices carried on the
// checkout form and, once submitted, on the order request.
type DeliveryMethod string

const (
	DeliveryToAddress DeliveryMethod = "delivery"
	DeliveryPickup    DeliveryMethod = "pickup"
)

func (d DeliveryMethod) IsValid() bool {
	return d == DeliveryToAddress || d == DeliveryPickup
}

type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCard     PaymentMethod = "card"
	PaymentCash     PaymentMethod = "cash"
)

func (p PaymentMethod) IsValid() bool {
	return p == PaymentTransfer || p == PaymentCard || p == PaymentCash
}
