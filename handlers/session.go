package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/session"
	"github.com/ray-remotestate/storefront/utils"
)

type SessionHandler struct {
	catalog  *catalog.Catalog
	sessions *session.Store
}

func NewSessionHandler(cat *catalog.Catalog, sessions *session.Store) *SessionHandler {
	return &SessionHandler{catalog: cat, sessions: sessions}
}

func (h *SessionHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.sessions.Navigation(sessionIDFrom(r)))
}

// UpdateNavigation applies navigation changes: activating a tab, toggling a
// section, or selecting a branch by route parameter.
func (h *SessionHandler) UpdateNavigation(w http.ResponseWriter, r *http.Request) {
	type request struct {
		ActivateTab   *string `json:"activate_tab,omitempty"`
		ToggleSection *string `json:"toggle_section,omitempty"`
		BranchParam   *string `json:"branch_param,omitempty"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	sessionID := sessionIDFrom(r)

	var branchID *uuid.UUID
	if req.BranchParam != nil {
		branch, ok := session.ResolveBranch(*req.BranchParam, h.catalog.Branches())
		if !ok {
			utils.RespondError(w, http.StatusNotFound, "branch not found")
			return
		}
		branchID = &branch.ID
	}

	if req.ActivateTab != nil {
		h.sessions.ActivateTab(sessionID, *req.ActivateTab)
	}
	if req.ToggleSection != nil {
		h.sessions.ToggleSection(sessionID, *req.ToggleSection)
	}
	if branchID != nil {
		h.sessions.SetActiveBranch(sessionID, *branchID)
	}

	utils.RespondJSON(w, http.StatusOK, h.sessions.Navigation(sessionID))
}

func (h *SessionHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.sessions.Checkout(sessionIDFrom(r)))
}

// UpdateCheckout merges form fields; validation only runs when the order is
// placed, so partial in-progress forms are fine here.
func (h *SessionHandler) UpdateCheckout(w http.ResponseWriter, r *http.Request) {
	var patch session.CheckoutPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	form := h.sessions.UpdateCheckout(sessionIDFrom(r), patch)
	utils.RespondJSON(w, http.StatusOK, form)
}
