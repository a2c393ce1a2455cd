package handlers

import (
	"net/http"

	"websync/services/catalog"
	"websync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the service catalog endpoints.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler with its dependencies.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Logger: logger}
}

// ListServicesHandler handles GET /services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogSvc.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching services", "store unavailable")
		return
	}

	c.JSON(http.StatusOK, services)
}
