package handlers

import (
	"net/http"

	"maturity-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for measurement categories
type CategoryHandler struct {
	catalog service.CatalogServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(catalog service.CatalogServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		catalog: catalog,
	}
}

// ListCategories handles GET /categories
// @Summary List all categories
// @Description Get all measurement categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} service.CategoryResponse "Successfully retrieved categories"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
