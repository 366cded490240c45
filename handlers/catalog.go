package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/config"
	"github.com/ray-remotestate/storefront/utils"
)

type CatalogHandler struct {
	fetcher *catalog.Fetcher
	catalog *catalog.Catalog
}

func NewCatalogHandler(fetcher *catalog.Fetcher, cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{fetcher: fetcher, catalog: cat}
}

// Refresh re-fetches the catalog from the upstream backend. Upstream
// failures (including injected ones) surface as a generic bad-gateway
// error; the previously loaded catalog stays in place.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = config.CatalogPath()
	}

	if err := h.fetcher.Refresh(r.Context(), path); err != nil {
		logrus.WithError(err).Warnf("catalog refresh from %s failed", path)
		utils.RespondError(w, http.StatusBadGateway, "failed to refresh catalog")
		return
	}

	utils.RespondMessage(w, http.StatusOK, map[string]interface{}{
		"branches": len(h.catalog.Branches()),
	}, "catalog refreshed")
}
