package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/storefront/cart"
	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/middlewares"
	"github.com/ray-remotestate/storefront/models"
	"github.com/ray-remotestate/storefront/pricing"
	"github.com/ray-remotestate/storefront/utils"
)

type CartHandler struct {
	cart    cart.Store
	catalog *catalog.Catalog
}

func NewCartHandler(store cart.Store, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{cart: store, catalog: cat}
}

func sessionIDFrom(r *http.Request) string {
	return middlewares.SessionID(r)
}

type cartView struct {
	Lines           []models.CartLine `json:"lines"`
	TotalItems      int               `json:"total_items"`
	TotalPrice      float64           `json:"total_price"`
	TotalWithAddOns float64           `json:"total_with_add_ons"`
}

func (h *CartHandler) view(sessionID string) cartView {
	return cartView{
		Lines:           h.cart.Lines(sessionID),
		TotalItems:      h.cart.TotalItems(sessionID),
		TotalPrice:      h.cart.TotalPrice(sessionID),
		TotalWithAddOns: h.cart.TotalWithAddOns(sessionID),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.view(sessionIDFrom(r)))
}

type ingredientChoice struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// resolveSelections matches requested add-ons against the product's
// ingredient list so the surcharge always comes from the catalog, never
// from the client.
func resolveSelections(product *models.Product, choices []ingredientChoice) ([]models.IngredientSelection, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	prices := make(map[string]float64, len(product.Ingredients))
	for _, ing := range product.Ingredients {
		prices[ing.Name] = ing.Price
	}

	selections := make([]models.IngredientSelection, 0, len(choices))
	for _, choice := range choices {
		price, ok := prices[choice.Name]
		if !ok {
			return nil, fmt.Errorf("ingredient %q is not offered for %s", choice.Name, product.Name)
		}
		if choice.Quantity < 0 {
			return nil, fmt.Errorf("ingredient %q quantity must not be negative", choice.Name)
		}
		selections = append(selections, models.IngredientSelection{
			Name:     choice.Name,
			Quantity: choice.Quantity,
			Price:    price,
		})
	}
	return selections, nil
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	type request struct {
		ProductID   int64              `json:"product_id"`
		Quantity    int                `json:"quantity"`
		Ingredients []ingredientChoice `json:"ingredients,omitempty"`
		Condiments  []string           `json:"condiments,omitempty"`
		Comment     string             `json:"comment,omitempty"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Quantity < 1 {
		logrus.Warnf("cart: rejected add with quantity %d", req.Quantity)
		utils.RespondError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	product, ok := h.catalog.Product(req.ProductID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "product not found")
		return
	}
	if !product.IsAvailable {
		utils.RespondError(w, http.StatusConflict, "product is not available")
		return
	}

	branch, ok := h.catalog.Branch(product.BranchID)
	if !ok || !branch.OpenAt(time.Now()) {
		utils.RespondError(w, http.StatusConflict, "branch is closed, it is not possible to add products")
		return
	}

	selections, err := resolveSelections(&product, req.Ingredients)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	quote := pricing.ForLine(&product, selections, req.Quantity)

	sessionID := sessionIDFrom(r)
	h.cart.Add(sessionID, models.CartLine{
		UniqueID:    uuid.New(),
		ProductID:   product.ID,
		Name:        product.Name,
		UnitPrice:   product.Price,
		Quantity:    req.Quantity,
		Ingredients: selections,
		Condiments:  req.Condiments,
		Comment:     req.Comment,
		Total:       quote.Total,
	})

	utils.RespondJSON(w, http.StatusCreated, h.view(sessionID))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil || productID <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	type request struct {
		Quantity    *int                `json:"quantity,omitempty"`
		Ingredients *[]ingredientChoice `json:"ingredients,omitempty"`
		Condiments  *[]string           `json:"condiments,omitempty"`
		Comment     *string             `json:"comment,omitempty"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Quantity != nil && *req.Quantity < 0 {
		utils.RespondError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	patch := models.CartLinePatch{
		Quantity:   req.Quantity,
		Condiments: req.Condiments,
		Comment:    req.Comment,
	}

	if req.Ingredients != nil {
		product, ok := h.catalog.Product(productID)
		if !ok {
			utils.RespondError(w, http.StatusNotFound, "product not found")
			return
		}
		selections, err := resolveSelections(&product, *req.Ingredients)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		patch.Ingredients = &selections
	}

	sessionID := sessionIDFrom(r)
	h.cart.Update(sessionID, productID, patch)

	utils.RespondJSON(w, http.StatusOK, h.view(sessionID))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil || productID <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	sessionID := sessionIDFrom(r)
	h.cart.Remove(sessionID, productID)

	utils.RespondJSON(w, http.StatusOK, h.view(sessionID))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFrom(r)
	h.cart.Clear(sessionID)

	utils.RespondMessage(w, http.StatusOK, h.view(sessionID), "cart cleared")
}
