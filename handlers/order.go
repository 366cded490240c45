package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/storefront/cart"
	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/database"
	"github.com/ray-remotestate/storefront/database/dbhelper"
	"github.com/ray-remotestate/storefront/models"
	"github.com/ray-remotestate/storefront/session"
	"github.com/ray-remotestate/storefront/utils"
)

type OrderHandler struct {
	cart     cart.Store
	catalog  *catalog.Catalog
	sessions *session.Store
}

func NewOrderHandler(store cart.Store, cat *catalog.Catalog, sessions *session.Store) *OrderHandler {
	return &OrderHandler{cart: store, catalog: cat, sessions: sessions}
}

// CreateOrder turns the session's cart and checkout form into an order.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	type request struct {
		UserID   uuid.UUID `json:"user_id"`
		BranchID uuid.UUID `json:"branch_id"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.UserID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	branch, ok := h.catalog.Branch(req.BranchID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "branch not found")
		return
	}
	if !branch.OpenAt(time.Now()) {
		utils.RespondError(w, http.StatusConflict, "branch is closed, it is not possible to place orders")
		return
	}

	sessionID := sessionIDFrom(r)
	lines := h.cart.Lines(sessionID)
	if len(lines) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	form := h.sessions.Checkout(sessionID)
	if err := form.Validate(); err != nil {
		logrus.Warnf("checkout validation failed for session %s: %v", sessionID, err)
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	order := &models.Order{
		ID:        uuid.New(),
		UserID:    req.UserID,
		BranchID:  branch.ID,
		Status:    models.StatusPending,
		Total:     h.cart.TotalWithAddOns(sessionID),
		CreatedAt: time.Now(),
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Total,
			Comment:   line.Comment,
		})
	}

	txErr := database.Tx(func(tx *sqlx.Tx) error {
		return dbhelper.CreateOrder(tx, order)
	})
	if txErr != nil {
		logrus.WithError(txErr).Error("failed to create order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	h.cart.Clear(sessionID)
	h.sessions.Reset(sessionID)

	utils.RespondMessage(w, http.StatusCreated, order, "order placed")
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userParam := r.URL.Query().Get("userId")
	if userParam == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	userID, err := uuid.Parse(userParam)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	orders, err := dbhelper.ListOrdersByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("failed to list orders")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	utils.RespondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := dbhelper.GetOrderByID(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to fetch order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order")
		return
	}

	utils.RespondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	type request struct {
		Status models.OrderStatus `json:"status"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !req.Status.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "unknown order status")
		return
	}

	current, err := dbhelper.GetOrderStatus(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to fetch order status")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order")
		return
	}

	if !current.CanTransitionTo(req.Status) {
		utils.RespondError(w, http.StatusConflict, "invalid status transition")
		return
	}

	if err := dbhelper.UpdateOrderStatus(orderID, req.Status); err != nil {
		logrus.WithError(err).Error("failed to update order status")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update order")
		return
	}

	utils.RespondMessage(w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"status":   req.Status,
	}, "status updated")
}
