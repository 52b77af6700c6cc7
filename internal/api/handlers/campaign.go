package handlers

import (
	"context"
	"net/http"

	"maturity-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles HTTP requests for campaigns, their participants and summaries
type CampaignHandler struct {
	campaigns service.CampaignServiceInterface
	summaries service.SummaryServiceInterface
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaigns service.CampaignServiceInterface, summaries service.SummaryServiceInterface) *CampaignHandler {
	return &CampaignHandler{
		campaigns: campaigns,
		summaries: summaries,
	}
}

// ListCampaigns handles GET /campaigns
// @Summary List campaigns
// @Description Get every campaign with model name, creator and participant count, newest first
// @Tags campaigns
// @Produce json
// @Success 200 {array} service.CampaignResponse "Successfully retrieved campaigns"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaigns.ListCampaigns(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// CreateCampaign handles POST /campaigns
// @Summary Create a campaign
// @Description Create a campaign in draft status for a maturity model
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body service.CreateCampaignRequest true "Campaign data"
// @Success 201 {object} service.CampaignDetailResponse "Successfully created campaign"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Maturity model not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	creatorID, ok := actorID(c)
	if !ok {
		return
	}
	var req service.CreateCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.campaigns.CreateCampaign(c, creatorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// GetCampaign handles GET /campaigns/:id
// @Summary Get campaign by ID
// @Description Get a campaign with its participants and evaluation status counts
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignDetailResponse "Successfully retrieved campaign"
// @Failure 400 {object} ErrorResponse "Invalid campaign ID"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}

	campaign, err := h.campaigns.GetCampaign(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// UpdateCampaign handles PUT /campaigns/:id
// @Summary Update a campaign
// @Description Partially update name, dates or status. Completed and cancelled campaigns reject status changes.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param campaign body service.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} service.CampaignDetailResponse "Successfully updated campaign"
// @Failure 400 {object} ErrorResponse "Invalid request or status transition"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}
	var req service.UpdateCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.campaigns.UpdateCampaign(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// UpdateCampaignStatus handles PATCH /campaigns/:id/status
// @Summary Change campaign status
// @Description Move a campaign between draft, active, completed and cancelled
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param status body service.UpdateCampaignStatusRequest true "New status"
// @Success 200 {object} service.CampaignDetailResponse "Successfully changed status"
// @Failure 400 {object} ErrorResponse "Invalid status or transition"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id}/status [patch]
func (h *CampaignHandler) UpdateCampaignStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}
	var req service.UpdateCampaignStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.campaigns.UpdateCampaignStatus(c, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /campaigns/:id
// @Summary Delete a campaign
// @Description Delete a campaign with its participants and evaluations. Audit history is kept.
// @Tags campaigns
// @Param id path string true "Campaign ID (UUID)"
// @Success 204 "Campaign deleted"
// @Failure 400 {object} ErrorResponse "Invalid campaign ID"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}

	if err := h.campaigns.DeleteCampaign(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddParticipant handles POST /campaigns/:id/participants
// @Summary Enroll a service
// @Description Enroll a service and create one Not Implemented evaluation per measurement of the campaign's model
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param participant body service.AddParticipantRequest true "Service to enroll"
// @Success 201 {object} service.ParticipantResponse "Service enrolled"
// @Failure 400 {object} ErrorResponse "Invalid request or campaign is completed or cancelled"
// @Failure 404 {object} ErrorResponse "Campaign or service not found"
// @Failure 409 {object} ErrorResponse "Service already enrolled"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id}/participants [post]
func (h *CampaignHandler) AddParticipant(c *gin.Context) {
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}
	var req service.AddParticipantRequest
	if !bindJSON(c, &req) {
		return
	}

	participant, err := h.campaigns.AddParticipant(c, id, req.ServiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, participant)
}

// RemoveParticipant handles DELETE /campaigns/:id/participants/:serviceId
// @Summary Remove a participant
// @Description Remove a service and its evaluations from a campaign. Audit history is kept.
// @Tags campaigns
// @Param id path string true "Campaign ID (UUID)"
// @Param serviceId path string true "Service ID (UUID)"
// @Success 204 "Participant removed"
// @Failure 400 {object} ErrorResponse "Invalid ID or campaign is completed or cancelled"
// @Failure 404 {object} ErrorResponse "Campaign or participant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id}/participants/{serviceId} [delete]
func (h *CampaignHandler) RemoveParticipant(c *gin.Context) {
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}
	serviceID, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	if err := h.campaigns.RemoveParticipant(c, id, serviceID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSummary handles GET /campaigns/:id/summary
// @Summary Campaign summary
// @Description Implementation percentages and maturity levels per service, team and category
// @Tags summaries
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignSummaryResponse "Successfully computed summary"
// @Failure 400 {object} ErrorResponse "Invalid campaign ID"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id}/summary [get]
func (h *CampaignHandler) GetSummary(c *gin.Context) {
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}

	summary, err := h.summaries.GetCampaignSummary(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetServiceSummary handles GET /campaigns/:id/summary/services
// @Summary Per-service summary
// @Tags summaries
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {array} service.SummaryItem
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/summary/services [get]
func (h *CampaignHandler) GetServiceSummary(c *gin.Context) {
	h.summaryItems(c, h.summaries.SummaryByService)
}

// GetTeamSummary handles GET /campaigns/:id/summary/teams
// @Summary Per-team summary
// @Tags summaries
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {array} service.SummaryItem
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/summary/teams [get]
func (h *CampaignHandler) GetTeamSummary(c *gin.Context) {
	h.summaryItems(c, h.summaries.SummaryByTeam)
}

// GetCategorySummary handles GET /campaigns/:id/summary/categories
// @Summary Per-category summary
// @Tags summaries
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {array} service.SummaryItem
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/summary/categories [get]
func (h *CampaignHandler) GetCategorySummary(c *gin.Context) {
	h.summaryItems(c, h.summaries.SummaryByCategory)
}

func (h *CampaignHandler) summaryItems(c *gin.Context, fetch func(ctx context.Context, id uuid.UUID) ([]service.SummaryItem, error)) {
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}

	items, err := fetch(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
