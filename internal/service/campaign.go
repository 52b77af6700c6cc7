package service

import (
	"context"
	"errors"
	"time"

	"maturity-tracker-backend/internal/database"
	"maturity-tracker-backend/internal/database/models"
	apperrors "maturity-tracker-backend/internal/errors"
	"maturity-tracker-backend/internal/logger"
	"maturity-tracker-backend/internal/metrics"
	"maturity-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignService owns campaign status, participant membership and the
// evaluation fan-out that enrollment triggers
type CampaignService struct {
	tx          database.Transactor
	campaigns   repository.CampaignRepositoryInterface
	evaluations repository.EvaluationRepositoryInterface
	models      repository.MaturityModelRepositoryInterface
	services    repository.ServiceRepositoryInterface
	users       repository.UserRepositoryInterface
	validator   *validator.Validate
	metrics     *metrics.Metrics
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	tx database.Transactor,
	campaigns repository.CampaignRepositoryInterface,
	evaluations repository.EvaluationRepositoryInterface,
	modelRepo repository.MaturityModelRepositoryInterface,
	services repository.ServiceRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
	m *metrics.Metrics,
) *CampaignService {
	return &CampaignService{
		tx:          tx,
		campaigns:   campaigns,
		evaluations: evaluations,
		models:      modelRepo,
		services:    services,
		users:       users,
		validator:   validator,
		metrics:     m,
	}
}

// CreateCampaignRequest represents the request to create a campaign
type CreateCampaignRequest struct {
	Name            string    `json:"name" validate:"required,min=1,max=200"`
	MaturityModelID uuid.UUID `json:"maturity_model_id" validate:"required"`
	StartDate       *string   `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-01-15"`
	EndDate         *string   `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-03-31"`
}

// UpdateCampaignRequest represents a partial campaign update; omitted fields are unchanged
type UpdateCampaignRequest struct {
	Name      *string                `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate *string                `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string                `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status    *models.CampaignStatus `json:"status,omitempty"`
}

// UpdateCampaignStatusRequest represents the request to change a campaign's status
type UpdateCampaignStatusRequest struct {
	Status models.CampaignStatus `json:"status" binding:"required"`
}

// AddParticipantRequest represents the request to enroll a service
type AddParticipantRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
}

// CampaignResponse is a campaign joined with its model, creator and participant count
type CampaignResponse struct {
	ID                uuid.UUID             `json:"id"`
	Name              string                `json:"name"`
	MaturityModelID   uuid.UUID             `json:"maturity_model_id"`
	MaturityModelName string                `json:"maturity_model_name"`
	StartDate         *string               `json:"start_date"`
	EndDate           *string               `json:"end_date"`
	Status            models.CampaignStatus `json:"status"`
	CreatedBy         uuid.UUID             `json:"created_by"`
	CreatorUsername   string                `json:"created_by_username"`
	ParticipantCount  int64                 `json:"participant_count"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// ParticipantResponse is an enrolled service with its team
type ParticipantResponse struct {
	ID                 uuid.UUID          `json:"id"`
	CampaignID         uuid.UUID          `json:"campaign_id"`
	ServiceID          uuid.UUID          `json:"service_id"`
	ServiceName        string             `json:"service_name"`
	ServiceType        models.ServiceType `json:"service_type"`
	TeamID             uuid.UUID          `json:"team_id"`
	TeamName           string             `json:"team_name"`
	EvaluationsCreated *int               `json:"evaluations_created,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// StatusCount is the number of a campaign's evaluations in one status
type StatusCount struct {
	Status models.EvaluationStatus `json:"status"`
	Count  int64                   `json:"count"`
}

// CampaignDetailResponse is a campaign with its participants and evaluation status counts
type CampaignDetailResponse struct {
	CampaignResponse
	Participants      []ParticipantResponse `json:"participants"`
	EvaluationSummary []StatusCount         `json:"evaluation_summary"`
}

// CreateCampaign creates a campaign in draft status
func (s *CampaignService) CreateCampaign(ctx context.Context, creatorID uuid.UUID, req *CreateCampaignRequest) (*CampaignDetailResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.models.GetByID(req.MaturityModelID); err != nil {
		return nil, lookupError("get maturity model", err, apperrors.ErrMaturityModelNotFound)
	}
	if _, err := s.users.GetByID(creatorID); err != nil {
		return nil, lookupError("get creator", err, apperrors.ErrUserNotFound)
	}

	campaign := &models.Campaign{
		Name:            req.Name,
		MaturityModelID: req.MaturityModelID,
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          models.CampaignStatusDraft,
		CreatedBy:       creatorID,
	}
	if err := s.campaigns.Create(campaign); err != nil {
		return nil, storageError("create campaign", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id":       campaign.ID,
		"maturity_model_id": campaign.MaturityModelID,
	}).Info("campaign created")

	return s.GetCampaign(ctx, campaign.ID)
}

// ListCampaigns returns every campaign, newest first
func (s *CampaignService) ListCampaigns(ctx context.Context) ([]CampaignResponse, error) {
	rows, err := s.campaigns.GetAll()
	if err != nil {
		return nil, storageError("list campaigns", err)
	}

	responses := make([]CampaignResponse, len(rows))
	for i, row := range rows {
		responses[i] = CampaignResponse{
			ID:                row.ID,
			Name:              row.Name,
			MaturityModelID:   row.MaturityModelID,
			MaturityModelName: row.MaturityModelName,
			StartDate:         formatDate(row.StartDate),
			EndDate:           formatDate(row.EndDate),
			Status:            row.Status,
			CreatedBy:         row.CreatedBy,
			CreatorUsername:   row.CreatorUsername,
			ParticipantCount:  row.ParticipantCount,
			CreatedAt:         row.CreatedAt,
			UpdatedAt:         row.UpdatedAt,
		}
	}
	return responses, nil
}

// GetCampaign returns a campaign with participants and evaluation status counts
func (s *CampaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignDetailResponse, error) {
	campaign, err := s.campaigns.GetWithDetails(id)
	if err != nil {
		return nil, lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}

	participants, err := s.campaigns.GetParticipants(id)
	if err != nil {
		return nil, storageError("get participants", err)
	}
	counts, err := s.campaigns.GetStatusCounts(id)
	if err != nil {
		return nil, storageError("get evaluation status counts", err)
	}

	resp := &CampaignDetailResponse{
		CampaignResponse: CampaignResponse{
			ID:               campaign.ID,
			Name:             campaign.Name,
			MaturityModelID:  campaign.MaturityModelID,
			StartDate:        formatDate(campaign.StartDate),
			EndDate:          formatDate(campaign.EndDate),
			Status:           campaign.Status,
			CreatedBy:        campaign.CreatedBy,
			ParticipantCount: int64(len(participants)),
			CreatedAt:        campaign.CreatedAt,
			UpdatedAt:        campaign.UpdatedAt,
		},
		Participants:      make([]ParticipantResponse, len(participants)),
		EvaluationSummary: make([]StatusCount, len(counts)),
	}
	if campaign.MaturityModel != nil {
		resp.MaturityModelName = campaign.MaturityModel.Name
	}
	if campaign.Creator != nil {
		resp.CreatorUsername = campaign.Creator.Username
	}
	for i, p := range participants {
		resp.Participants[i] = ParticipantResponse{
			ID:          p.ID,
			CampaignID:  p.CampaignID,
			ServiceID:   p.ServiceID,
			ServiceName: p.ServiceName,
			ServiceType: p.ServiceType,
			TeamID:      p.TeamID,
			TeamName:    p.TeamName,
			CreatedAt:   p.CreatedAt,
		}
	}
	for i, c := range counts {
		resp.EvaluationSummary[i] = StatusCount{Status: c.Status, Count: c.Count}
	}
	return resp, nil
}

// UpdateCampaign applies a partial update. A status change follows the same
// rules as UpdateCampaignStatus.
func (s *CampaignService) UpdateCampaign(ctx context.Context, id uuid.UUID, req *UpdateCampaignRequest) (*CampaignDetailResponse, error) {
	campaign, err := s.campaigns.GetByID(id)
	if err != nil {
		return nil, lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}

	if req.Name == nil && req.StartDate == nil && req.EndDate == nil && req.Status == nil {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	update := repository.CampaignUpdate{Name: req.Name, Status: req.Status}
	if update.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
		return nil, err
	}
	if update.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
		return nil, err
	}

	start, end := campaign.StartDate, campaign.EndDate
	if update.StartDate != nil {
		start = update.StartDate
	}
	if update.EndDate != nil {
		end = update.EndDate
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if req.Status != nil {
		if err := models.ValidateCampaignTransition(campaign.Status, *req.Status); err != nil {
			return nil, err
		}
	}

	if update.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if err := s.campaigns.Update(id, update); err != nil {
		return nil, storageError("update campaign", err)
	}

	entry := logger.WithContext(ctx).WithField("campaign_id", id)
	if req.Status != nil && *req.Status != campaign.Status {
		entry = entry.WithFields(map[string]interface{}{"from": campaign.Status, "to": *req.Status})
	}
	entry.Info("campaign updated")

	return s.GetCampaign(ctx, id)
}

// UpdateCampaignStatus changes a campaign's status. Completed and cancelled
// campaigns accept no further change.
func (s *CampaignService) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status models.CampaignStatus) (*CampaignDetailResponse, error) {
	return s.UpdateCampaign(ctx, id, &UpdateCampaignRequest{Status: &status})
}

// AddParticipant enrolls a service and creates one Not Implemented evaluation
// per measurement of the campaign's model, all in one transaction
func (s *CampaignService) AddParticipant(ctx context.Context, campaignID, serviceID uuid.UUID) (*ParticipantResponse, error) {
	campaign, err := s.campaigns.GetByID(campaignID)
	if err != nil {
		return nil, lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}
	svc, err := s.services.GetByID(serviceID)
	if err != nil {
		return nil, lookupError("get service", err, apperrors.ErrServiceNotFound)
	}
	if campaign.Status.IsTerminal() {
		return nil, terminalCampaignError(campaign.Status)
	}
	if _, err := s.campaigns.GetParticipant(campaignID, serviceID); err == nil {
		return nil, apperrors.ErrParticipantExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError("get participant", err)
	}

	participant := &models.CampaignParticipant{CampaignID: campaignID, ServiceID: serviceID}
	var created int
	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.campaigns.WithTx(tx).AddParticipant(participant); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrParticipantExists
			}
			return err
		}

		measurements, err := s.models.WithTx(tx).GetMeasurements(campaign.MaturityModelID)
		if err != nil {
			return err
		}

		evaluations := make([]models.MeasurementEvaluation, len(measurements))
		for i, m := range measurements {
			evaluations[i] = models.MeasurementEvaluation{
				CampaignID:    campaignID,
				ServiceID:     serviceID,
				MeasurementID: m.ID,
				Status:        models.EvaluationStatusNotImplemented,
			}
		}
		if err := s.evaluations.WithTx(tx).CreateMany(evaluations); err != nil {
			return err
		}
		created = len(evaluations)
		return nil
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"campaign_id": campaignID,
			"service_id":  serviceID,
		}).Error("participant enrollment rolled back")
		return nil, storageError("add participant", err)
	}

	s.metrics.RecordEnrollment(created)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": campaignID,
		"service_id":  serviceID,
		"evaluations": created,
	}).Info("participant enrolled")

	resp := &ParticipantResponse{
		ID:                 participant.ID,
		CampaignID:         campaignID,
		ServiceID:          serviceID,
		ServiceName:        svc.Name,
		ServiceType:        svc.ServiceType,
		TeamID:             svc.TeamID,
		EvaluationsCreated: &created,
		CreatedAt:          participant.CreatedAt,
	}
	if svc.Team != nil {
		resp.TeamName = svc.Team.Name
	}
	return resp, nil
}

// RemoveParticipant deletes a service's evaluations and its participation in one
// transaction. Audit history for the deleted evaluations is kept.
func (s *CampaignService) RemoveParticipant(ctx context.Context, campaignID, serviceID uuid.UUID) error {
	campaign, err := s.campaigns.GetByID(campaignID)
	if err != nil {
		return lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}
	if _, err := s.campaigns.GetParticipant(campaignID, serviceID); err != nil {
		return lookupError("get participant", err, apperrors.ErrParticipantNotFound)
	}
	if campaign.Status.IsTerminal() {
		return terminalCampaignError(campaign.Status)
	}

	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.evaluations.WithTx(tx).DeleteByParticipant(campaignID, serviceID); err != nil {
			return err
		}
		return s.campaigns.WithTx(tx).DeleteParticipant(campaignID, serviceID)
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("campaign_id", campaignID).Error("participant removal rolled back")
		return storageError("remove participant", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": campaignID,
		"service_id":  serviceID,
	}).Info("participant removed")
	return nil
}

// DeleteCampaign deletes a campaign with its evaluations and participants
func (s *CampaignService) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	if _, err := s.campaigns.GetByID(id); err != nil {
		return lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}

	err := s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.evaluations.WithTx(tx).DeleteByCampaign(id); err != nil {
			return err
		}
		campaigns := s.campaigns.WithTx(tx)
		if err := campaigns.DeleteParticipants(id); err != nil {
			return err
		}
		return campaigns.Delete(id)
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("campaign_id", id).Error("campaign deletion rolled back")
		return storageError("delete campaign", err)
	}

	logger.WithContext(ctx).WithField("campaign_id", id).Info("campaign deleted")
	return nil
}

func terminalCampaignError(status models.CampaignStatus) error {
	return apperrors.NewInvalidStateError("campaign", string(status),
		"cannot modify participants or evaluations of a "+string(status)+" campaign")
}
