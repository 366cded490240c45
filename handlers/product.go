package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/models"
	"github.com/ray-remotestate/storefront/pricing"
	"github.com/ray-remotestate/storefront/utils"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

type productView struct {
	models.Product
	HasDiscount   bool    `json:"has_discount"`
	OriginalPrice float64 `json:"original_price,omitempty"`
}

func toProductView(p models.Product) productView {
	view := productView{Product: p}
	if pricing.HasDiscount(&p) {
		quote := pricing.ForLine(&p, nil, 1)
		view.HasDiscount = true
		view.OriginalPrice = quote.OriginalPrice
	}
	return view
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	branchParam := r.URL.Query().Get("branchId")
	if branchParam == "" {
		utils.RespondError(w, http.StatusBadRequest, "branchId query parameter is required")
		return
	}

	branchID, err := uuid.Parse(branchParam)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid branchId")
		return
	}

	if _, ok := h.catalog.Branch(branchID); !ok {
		utils.RespondError(w, http.StatusNotFound, "branch not found")
		return
	}

	products := h.catalog.ProductsByBranch(branchID)
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	utils.RespondJSON(w, http.StatusOK, views)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || productID <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, ok := h.catalog.Product(productID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "product not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, toProductView(product))
}
