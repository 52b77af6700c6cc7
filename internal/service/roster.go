package service

import (
	"context"
	"errors"
	"time"

	"maturity-tracker-backend/internal/database/models"
	apperrors "maturity-tracker-backend/internal/errors"
	"maturity-tracker-backend/internal/logger"
	"maturity-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errInvalidServiceType = apperrors.NewValidationError("service_type",
	"must be one of: API Service, UI Application, Workflow, Application Module")

// RosterService handles teams and the services they own
type RosterService struct {
	teams     repository.TeamRepositoryInterface
	services  repository.ServiceRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewRosterService creates a new roster service
func NewRosterService(
	teams repository.TeamRepositoryInterface,
	services repository.ServiceRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *RosterService {
	return &RosterService{
		teams:     teams,
		services:  services,
		users:     users,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team. OwnerID defaults to the acting user.
type CreateTeamRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=500"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
}

// CreateServiceRequest represents the request to create a service. OwnerID defaults to the acting user.
type CreateServiceRequest struct {
	Name             string             `json:"name" validate:"required,min=1,max=100"`
	TeamID           uuid.UUID          `json:"team_id" validate:"required"`
	Description      string             `json:"description" validate:"max=500"`
	ServiceType      models.ServiceType `json:"service_type" validate:"required"`
	ResourceLocation string             `json:"resource_location" validate:"max=500"`
	OwnerID          *uuid.UUID         `json:"owner_id,omitempty"`
}

// UpdateTeamRequest is a partial team update; omitted fields are left unchanged
type UpdateTeamRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitnil,max=500"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
}

// UpdateServiceRequest is a partial service update; omitted fields are left unchanged
type UpdateServiceRequest struct {
	Name             *string             `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	TeamID           *uuid.UUID          `json:"team_id,omitempty"`
	Description      *string             `json:"description,omitempty" validate:"omitnil,max=500"`
	ServiceType      *models.ServiceType `json:"service_type,omitempty"`
	ResourceLocation *string             `json:"resource_location,omitempty" validate:"omitnil,max=500"`
	OwnerID          *uuid.UUID          `json:"owner_id,omitempty"`
}

// TeamResponse is a team with its owner's username
type TeamResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	CreatedAt     time.Time `json:"created_at"`
}

// TeamDetailResponse is a team with the services it owns
type TeamDetailResponse struct {
	TeamResponse
	Services []ServiceResponse `json:"services"`
}

// ServiceResponse is a service with its team and owner
type ServiceResponse struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	ServiceType      models.ServiceType `json:"service_type"`
	ResourceLocation string             `json:"resource_location"`
	TeamID           uuid.UUID          `json:"team_id"`
	TeamName         string             `json:"team_name"`
	OwnerID          uuid.UUID          `json:"owner_id"`
	OwnerUsername    string             `json:"owner_username"`
	CreatedAt        time.Time          `json:"created_at"`
}

// CreateTeam creates a team with a unique name
func (s *RosterService) CreateTeam(ctx context.Context, actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	ownerID := actorID
	if req.OwnerID != nil {
		ownerID = *req.OwnerID
	}
	owner, err := s.users.GetByID(ownerID)
	if err != nil {
		return nil, lookupError("get owner", err, apperrors.ErrUserNotFound)
	}

	if _, err := s.teams.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrTeamExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError("get team by name", err)
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := s.teams.Create(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, storageError("create team", err)
	}
	team.Owner = owner

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("team created")
	resp := toTeamResponse(team)
	return &resp, nil
}

// ListTeams returns every team ordered by name
func (s *RosterService) ListTeams(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, storageError("list teams", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = toTeamResponse(&teams[i])
	}
	return responses, nil
}

// GetTeam returns a team with its services ordered by name
func (s *RosterService) GetTeam(ctx context.Context, id uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.teams.GetByID(id)
	if err != nil {
		return nil, lookupError("get team", err, apperrors.ErrTeamNotFound)
	}
	services, err := s.services.GetAll(&id)
	if err != nil {
		return nil, storageError("list team services", err)
	}

	resp := &TeamDetailResponse{
		TeamResponse: toTeamResponse(team),
		Services:     make([]ServiceResponse, len(services)),
	}
	for i := range services {
		resp.Services[i] = toServiceResponse(&services[i])
	}
	return resp, nil
}

// UpdateTeam applies a partial update. A new name must be unique and a new owner must exist.
func (s *RosterService) UpdateTeam(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if _, err := s.teams.GetByID(id); err != nil {
		return nil, lookupError("get team", err, apperrors.ErrTeamNotFound)
	}

	update := repository.TeamUpdate{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	}
	if update.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.OwnerID != nil {
		if _, err := s.users.GetByID(*req.OwnerID); err != nil {
			return nil, lookupError("get owner", err, apperrors.ErrUserNotFound)
		}
	}
	if req.Name != nil {
		existing, err := s.teams.GetByName(*req.Name)
		if err == nil && existing.ID != id {
			return nil, apperrors.ErrTeamExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storageError("get team by name", err)
		}
	}

	if err := s.teams.Update(id, update); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, storageError("update team", err)
	}
	logger.WithContext(ctx).WithField("team_id", id).Info("team updated")

	team, err := s.teams.GetByID(id)
	if err != nil {
		return nil, lookupError("get team", err, apperrors.ErrTeamNotFound)
	}
	resp := toTeamResponse(team)
	return &resp, nil
}

// DeleteTeam deletes a team that owns no services
func (s *RosterService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if _, err := s.teams.GetByID(id); err != nil {
		return lookupError("get team", err, apperrors.ErrTeamNotFound)
	}
	count, err := s.teams.CountServices(id)
	if err != nil {
		return storageError("count team services", err)
	}
	if count > 0 {
		return apperrors.ErrTeamHasServices
	}
	if err := s.teams.Delete(id); err != nil {
		return storageError("delete team", err)
	}

	logger.WithContext(ctx).WithField("team_id", id).Info("team deleted")
	return nil
}

// CreateService creates a service owned by a team
func (s *RosterService) CreateService(ctx context.Context, actorID uuid.UUID, req *CreateServiceRequest) (*ServiceResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.teams.GetByID(req.TeamID)
	if err != nil {
		return nil, lookupError("get team", err, apperrors.ErrTeamNotFound)
	}
	ownerID := actorID
	if req.OwnerID != nil {
		ownerID = *req.OwnerID
	}
	owner, err := s.users.GetByID(ownerID)
	if err != nil {
		return nil, lookupError("get owner", err, apperrors.ErrUserNotFound)
	}
	if !req.ServiceType.IsValid() {
		return nil, errInvalidServiceType
	}

	svc := &models.Service{
		Name:             req.Name,
		OwnerID:          ownerID,
		TeamID:           req.TeamID,
		Description:      req.Description,
		ServiceType:      req.ServiceType,
		ResourceLocation: req.ResourceLocation,
	}
	if err := s.services.Create(svc); err != nil {
		return nil, storageError("create service", err)
	}
	svc.Team = team
	svc.Owner = owner

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"service_id": svc.ID,
		"team_id":    team.ID,
	}).Info("service created")

	resp := toServiceResponse(svc)
	return &resp, nil
}

// GetService returns a service with its team and owner
func (s *RosterService) GetService(ctx context.Context, id uuid.UUID) (*ServiceResponse, error) {
	svc, err := s.services.GetByID(id)
	if err != nil {
		return nil, lookupError("get service", err, apperrors.ErrServiceNotFound)
	}
	resp := toServiceResponse(svc)
	return &resp, nil
}

// UpdateService applies a partial update. A new team and a new owner must exist.
func (s *RosterService) UpdateService(ctx context.Context, id uuid.UUID, req *UpdateServiceRequest) (*ServiceResponse, error) {
	if _, err := s.services.GetByID(id); err != nil {
		return nil, lookupError("get service", err, apperrors.ErrServiceNotFound)
	}

	update := repository.ServiceUpdate{
		Name:             req.Name,
		Description:      req.Description,
		ServiceType:      req.ServiceType,
		ResourceLocation: req.ResourceLocation,
		TeamID:           req.TeamID,
		OwnerID:          req.OwnerID,
	}
	if update.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.ServiceType != nil && !req.ServiceType.IsValid() {
		return nil, errInvalidServiceType
	}
	if req.OwnerID != nil {
		if _, err := s.users.GetByID(*req.OwnerID); err != nil {
			return nil, lookupError("get owner", err, apperrors.ErrUserNotFound)
		}
	}
	if req.TeamID != nil {
		if _, err := s.teams.GetByID(*req.TeamID); err != nil {
			return nil, lookupError("get team", err, apperrors.ErrTeamNotFound)
		}
	}

	if err := s.services.Update(id, update); err != nil {
		return nil, storageError("update service", err)
	}
	logger.WithContext(ctx).WithField("service_id", id).Info("service updated")

	return s.GetService(ctx, id)
}

// ListServices returns services ordered by name, optionally for one team
func (s *RosterService) ListServices(ctx context.Context, teamID *uuid.UUID) ([]ServiceResponse, error) {
	services, err := s.services.GetAll(teamID)
	if err != nil {
		return nil, storageError("list services", err)
	}

	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = toServiceResponse(&services[i])
	}
	return responses, nil
}

// DeleteService deletes a service that participates in no campaign
func (s *RosterService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if _, err := s.services.GetByID(id); err != nil {
		return lookupError("get service", err, apperrors.ErrServiceNotFound)
	}
	count, err := s.services.CountParticipations(id)
	if err != nil {
		return storageError("count participations", err)
	}
	if count > 0 {
		return apperrors.ErrServiceEnrolled
	}
	if err := s.services.Delete(id); err != nil {
		return storageError("delete service", err)
	}

	logger.WithContext(ctx).WithField("service_id", id).Info("service deleted")
	return nil
}

func toTeamResponse(t *models.Team) TeamResponse {
	resp := TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
	}
	if t.Owner != nil {
		resp.OwnerUsername = t.Owner.Username
	}
	return resp
}

func toServiceResponse(s *models.Service) ServiceResponse {
	resp := ServiceResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		ServiceType:      s.ServiceType,
		ResourceLocation: s.ResourceLocation,
		TeamID:           s.TeamID,
		OwnerID:          s.OwnerID,
		CreatedAt:        s.CreatedAt,
	}
	if s.Team != nil {
		resp.TeamName = s.Team.Name
	}
	if s.Owner != nil {
		resp.OwnerUsername = s.Owner.Username
	}
	return resp
}
