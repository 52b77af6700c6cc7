package handlers

import (
	"net/http"

	"maturity-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaturityModelHandler handles HTTP requests for maturity models and their measurements
type MaturityModelHandler struct {
	catalog service.CatalogServiceInterface
}

// NewMaturityModelHandler creates a new maturity model handler
func NewMaturityModelHandler(catalog service.CatalogServiceInterface) *MaturityModelHandler {
	return &MaturityModelHandler{
		catalog: catalog,
	}
}

// ListModels handles GET /maturity-models
// @Summary List maturity models
// @Description Get every maturity model with its owner and measurement count
// @Tags maturity-models
// @Produce json
// @Success 200 {array} service.MaturityModelListItem "Successfully retrieved models"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maturity-models [get]
func (h *MaturityModelHandler) ListModels(c *gin.Context) {
	models, err := h.catalog.ListModels(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models)
}

// GetModel handles GET /maturity-models/:id
// @Summary Get maturity model by ID
// @Description Get a maturity model with its measurements and level rules
// @Tags maturity-models
// @Produce json
// @Param id path string true "Maturity model ID (UUID)"
// @Success 200 {object} service.MaturityModelResponse "Successfully retrieved model"
// @Failure 400 {object} ErrorResponse "Invalid model ID"
// @Failure 404 {object} ErrorResponse "Maturity model not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maturity-models/{id} [get]
func (h *MaturityModelHandler) GetModel(c *gin.Context) {
	id, ok := parseID(c, "id", "maturity model")
	if !ok {
		return
	}

	model, err := h.catalog.GetModel(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// CreateModel handles POST /maturity-models
// @Summary Create a maturity model
// @Description Create a maturity model with the default five level rules
// @Tags maturity-models
// @Accept json
// @Produce json
// @Param model body service.CreateModelRequest true "Model data"
// @Success 201 {object} service.MaturityModelResponse "Successfully created model"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Model name already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maturity-models [post]
func (h *MaturityModelHandler) CreateModel(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req service.CreateModelRequest
	if !bindJSON(c, &req) {
		return
	}

	model, err := h.catalog.CreateModel(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

// UpdateModel handles PUT /maturity-models/:id
// @Summary Update a maturity model
// @Description Partially update a model's name, description or owner
// @Tags maturity-models
// @Accept json
// @Produce json
// @Param id path string true "Maturity model ID (UUID)"
// @Param model body service.UpdateModelRequest true "Fields to change"
// @Success 200 {object} service.MaturityModelResponse "Successfully updated model"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Model or owner not found"
// @Failure 409 {object} ErrorResponse "Model name already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maturity-models/{id} [put]
func (h *MaturityModelHandler) UpdateModel(c *gin.Context) {
	id, ok := parseID(c, "id", "maturity model")
	if !ok {
		return
	}
	var req service.UpdateModelRequest
	if !bindJSON(c, &req) {
		return
	}

	model, err := h.catalog.UpdateModel(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// DeleteModel handles DELETE /maturity-models/:id
// @Summary Delete a maturity model
// @Description Delete a maturity model that no campaign uses
// @Tags maturity-models
// @Param id path string true "Maturity model ID (UUID)"
// @Success 204 "Model deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID or model in use"
// @Failure 404 {object} ErrorResponse "Maturity model not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maturity-models/{id} [delete]
func (h *MaturityModelHandler) DeleteModel(c *gin.Context) {
	id, ok := parseID(c, "id", "maturity model")
	if !ok {
		return
	}

	if err := h.catalog.DeleteModel(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMeasurement handles POST /maturity-models/:id/measurements
// @Summary Add a measurement
// @Description Add a measurement to a maturity model. Existing participants are not backfilled.
// @Tags maturity-models
// @Accept json
// @Produce json
// @Param id path string true "Maturity model ID (UUID)"
// @Param measurement body service.CreateMeasurementRequest true "Measurement data"
// @Success 201 {object} service.MeasurementResponse "Successfully created measurement"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Model or category not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maturity-models/{id}/measurements [post]
func (h *MaturityModelHandler) AddMeasurement(c *gin.Context) {
	id, ok := parseID(c, "id", "maturity model")
	if !ok {
		return
	}
	var req service.CreateMeasurementRequest
	if !bindJSON(c, &req) {
		return
	}

	measurement, err := h.catalog.AddMeasurement(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, measurement)
}

// UpdateLevelRules handles PUT /maturity-models/:id/rules
// @Summary Replace level rules
// @Description Replace the complete level rule set. Levels 0..4, ranges within 0..100, non-overlapping.
// @Tags maturity-models
// @Accept json
// @Produce json
// @Param id path string true "Maturity model ID (UUID)"
// @Param rules body service.UpdateLevelRulesRequest true "Complete rule set"
// @Success 200 {array} service.LevelRuleResponse "Stored rules"
// @Failure 400 {object} ErrorResponse "Invalid rule set"
// @Failure 404 {object} ErrorResponse "Maturity model not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maturity-models/{id}/rules [put]
func (h *MaturityModelHandler) UpdateLevelRules(c *gin.Context) {
	id, ok := parseID(c, "id", "maturity model")
	if !ok {
		return
	}
	var req service.UpdateLevelRulesRequest
	if !bindJSON(c, &req) {
		return
	}

	rules, err := h.catalog.UpdateLevelRules(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}
