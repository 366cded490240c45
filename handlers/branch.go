package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/models"
	"github.com/ray-remotestate/storefront/session"
	"github.com/ray-remotestate/storefront/utils"
)

type BranchHandler struct {
	catalog  *catalog.Catalog
	sessions *session.Store
}

func NewBranchHandler(cat *catalog.Catalog, sessions *session.Store) *BranchHandler {
	return &BranchHandler{catalog: cat, sessions: sessions}
}

type branchView struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Address   string               `json:"address"`
	Phone     string               `json:"phone"`
	OpenNow   bool                 `json:"open_now"`
	Hours     *models.OpeningHours `json:"hours,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func toBranchView(b models.Branch, now time.Time) branchView {
	return branchView{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		OpenNow:   b.OpenAt(now),
		Hours:     b.Hours,
		CreatedAt: b.CreatedAt,
	}
}

func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	branches := h.catalog.Branches()

	views := make([]branchView, 0, len(branches))
	for _, b := range branches {
		views = append(views, toBranchView(b, now))
	}

	utils.RespondJSON(w, http.StatusOK, views)
}

func (h *BranchHandler) GetBranch(w http.ResponseWriter, r *http.Request) {
	param := mux.Vars(r)["id"]

	branch, ok := session.ResolveBranch(param, h.catalog.Branches())
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "branch not found")
		return
	}

	if sessionID := sessionIDFrom(r); sessionID != "" {
		h.sessions.SetActiveBranch(sessionID, branch.ID)
	}

	utils.RespondJSON(w, http.StatusOK, toBranchView(branch, time.Now()))
}
