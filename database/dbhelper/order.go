package dbhelper

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ray-remotestate/storefront/database"
	"github.com/ray-remotestate/storefront/models"
)

func CreateOrder(tx *sqlx.Tx, order *models.Order) error {
	_, err := tx.Exec(`
		INSERT INTO orders (id, user_id, branch_id, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.UserID, order.BranchID, order.Status, order.Total, order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		_, err = tx.Exec(`
			INSERT INTO order_items (id, order_id, product_id, name, quantity, price, comment)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, order.ID, item.ProductID, item.Name, item.Quantity, item.Price, item.Comment)
		if err != nil {
			return err
		}
	}
	return nil
}

func GetOrderByID(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := database.Storefront.Get(&order, `
		SELECT id, user_id, branch_id, status, total, created_at
		FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return nil, err
	}

	if err := database.Storefront.Select(&order.Items, `
		SELECT id, order_id, product_id, name, quantity, price, comment
		FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return nil, err
	}
	return &order, nil
}

func ListOrdersByUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := database.Storefront.Select(&orders, `
		SELECT id, user_id, branch_id, status, total, created_at
		FROM orders WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if err := database.Storefront.Select(&orders[i].Items, `
			SELECT id, order_id, product_id, name, quantity, price, comment
			FROM order_items WHERE order_id = $1`, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func GetOrderStatus(orderID uuid.UUID) (models.OrderStatus, error) {
	var status models.OrderStatus
	err := database.Storefront.Get(&status, `SELECT status FROM orders WHERE id = $1`, orderID)
	return status, err
}

func UpdateOrderStatus(orderID uuid.UUID, status models.OrderStatus) error {
	_, err := database.Storefront.Exec(`UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	return err
}
