package handlers

import (
	"net/http"

	"maturity-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServiceHandler handles HTTP requests for services
type ServiceHandler struct {
	roster service.RosterServiceInterface
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(roster service.RosterServiceInterface) *ServiceHandler {
	return &ServiceHandler{
		roster: roster,
	}
}

// ListServices handles GET /services
// @Summary List services
// @Description Get all services, optionally filtered by team
// @Tags services
// @Produce json
// @Param team_id query string false "Team ID (UUID)"
// @Success 200 {array} service.ServiceResponse "Successfully retrieved services"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var teamID *uuid.UUID
	if raw := c.Query("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team ID"})
			return
		}
		teamID = &id
	}

	services, err := h.roster.ListServices(c, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /services
// @Summary Create a service
// @Description Create a service under a team. The owner defaults to the caller.
// @Tags services
// @Accept json
// @Produce json
// @Param service body service.CreateServiceRequest true "Service data"
// @Success 201 {object} service.ServiceResponse "Successfully created service"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req service.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.roster.CreateService(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetService handles GET /services/:id
// @Summary Get service by ID
// @Description Get a service with its team and owner
// @Tags services
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Success 200 {object} service.ServiceResponse "Successfully retrieved service"
// @Failure 400 {object} ErrorResponse "Invalid service ID"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, ok := parseID(c, "id", "service")
	if !ok {
		return
	}

	svc, err := h.roster.GetService(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// UpdateService handles PUT /services/:id
// @Summary Update a service
// @Description Partially update a service. A new team or owner must exist.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Param service body service.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} service.ServiceResponse "Successfully updated service"
// @Failure 400 {object} ErrorResponse "Invalid request body or service type"
// @Failure 404 {object} ErrorResponse "Service, team or owner not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id", "service")
	if !ok {
		return
	}
	var req service.UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.roster.UpdateService(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /services/:id
// @Summary Delete a service
// @Description Delete a service with its campaign enrollments and evaluations
// @Tags services
// @Param id path string true "Service ID (UUID)"
// @Success 204 "Service deleted"
// @Failure 400 {object} ErrorResponse "Invalid service ID"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id", "service")
	if !ok {
		return
	}

	if err := h.roster.DeleteService(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
