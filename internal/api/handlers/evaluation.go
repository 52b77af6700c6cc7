package handlers

import (
	"net/http"

	"maturity-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EvaluationHandler handles HTTP requests for measurement evaluations
type EvaluationHandler struct {
	evaluations service.EvaluationServiceInterface
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evaluations service.EvaluationServiceInterface) *EvaluationHandler {
	return &EvaluationHandler{
		evaluations: evaluations,
	}
}

// ListEvaluations handles GET /evaluations/campaign/:campaignId/service/:serviceId
// @Summary List a participant's evaluations
// @Description Get the evaluations of one enrolled service ordered by category then measurement name
// @Tags evaluations
// @Produce json
// @Param campaignId path string true "Campaign ID (UUID)"
// @Param serviceId path string true "Service ID (UUID)"
// @Success 200 {array} service.EvaluationResponse "Successfully retrieved evaluations"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Campaign or participant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /evaluations/campaign/{campaignId}/service/{serviceId} [get]
func (h *EvaluationHandler) ListEvaluations(c *gin.Context) {
	campaignID, ok := parseID(c, "campaignId", "campaign")
	if !ok {
		return
	}
	serviceID, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	evaluations, err := h.evaluations.ListEvaluations(c, campaignID, serviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluations)
}

// UpdateEvaluation handles PUT /evaluations/:id
// @Summary Update an evaluation
// @Description Change status, evidence and notes. The campaign must be active. Every call writes one history entry.
// @Tags evaluations
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID (UUID)"
// @Param evaluation body service.UpdateEvaluationRequest true "New status with optional evidence and notes"
// @Success 200 {object} service.EvaluationResponse "Successfully updated evaluation"
// @Failure 400 {object} ErrorResponse "Invalid request or campaign not active"
// @Failure 404 {object} ErrorResponse "Evaluation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /evaluations/{id} [put]
func (h *EvaluationHandler) UpdateEvaluation(c *gin.Context) {
	id, ok := parseID(c, "id", "evaluation")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req service.UpdateEvaluationRequest
	if !bindJSON(c, &req) {
		return
	}

	evaluation, err := h.evaluations.UpdateEvaluation(c, id, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

// GetHistory handles GET /evaluations/:id/history
// @Summary Evaluation history
// @Description Get the audit trail of an evaluation, newest first
// @Tags evaluations
// @Produce json
// @Param id path string true "Evaluation ID (UUID)"
// @Success 200 {array} service.HistoryResponse "Successfully retrieved history"
// @Failure 400 {object} ErrorResponse "Invalid evaluation ID"
// @Failure 404 {object} ErrorResponse "Evaluation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /evaluations/{id}/history [get]
func (h *EvaluationHandler) GetHistory(c *gin.Context) {
	id, ok := parseID(c, "id", "evaluation")
	if !ok {
		return
	}

	history, err := h.evaluations.GetHistory(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// BulkUpdate handles POST /evaluations/campaign/:campaignId/service/:serviceId/bulk
// @Summary Bulk update evaluations
// @Description Set one status on every evaluation of a participant, optionally limited to a category. All or nothing.
// @Tags evaluations
// @Accept json
// @Produce json
// @Param campaignId path string true "Campaign ID (UUID)"
// @Param serviceId path string true "Service ID (UUID)"
// @Param bulk body service.BulkUpdateRequest true "Status and optional category"
// @Success 200 {object} service.BulkUpdateResponse "Number of evaluations updated"
// @Failure 400 {object} ErrorResponse "Invalid request or campaign not active"
// @Failure 404 {object} ErrorResponse "Campaign, participant or evaluations not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /evaluations/campaign/{campaignId}/service/{serviceId}/bulk [post]
func (h *EvaluationHandler) BulkUpdate(c *gin.Context) {
	campaignID, ok := parseID(c, "campaignId", "campaign")
	if !ok {
		return
	}
	serviceID, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req service.BulkUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.evaluations.BulkUpdate(c, campaignID, serviceID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
