package handlers

import (
	"net/http"

	"continuous-improvement-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the status, champion and category reference lists
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListStatuses lists all statuses
// @Summary List statuses
// @Tags catalog
// @Produce json
// @Success 200 {array} service.StatusResponse
// @Failure 500 {object} ErrorResponse
// @Router /statuses [get]
func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.catalogService.ListStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to list statuses")
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// ListChampions lists all champions
// @Summary List champions
// @Description Returns id and name only
// @Tags catalog
// @Produce json
// @Success 200 {array} service.ChampionResponse
// @Failure 500 {object} ErrorResponse
// @Router /champions [get]
func (h *CatalogHandler) ListChampions(c *gin.Context) {
	champions, err := h.catalogService.ListChampions(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to list champions")
		return
	}
	c.JSON(http.StatusOK, champions)
}

// ListCategories lists all categories
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} service.CategoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
