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

// BulkUpdateNote is the audit note recorded for every bulk status change
const BulkUpdateNote = "Bulk update"

// EvaluationService owns the evaluation status machine and its audit trail
type EvaluationService struct {
	tx          database.Transactor
	evaluations repository.EvaluationRepositoryInterface
	campaigns   repository.CampaignRepositoryInterface
	services    repository.ServiceRepositoryInterface
	validator   *validator.Validate
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(
	tx database.Transactor,
	evaluations repository.EvaluationRepositoryInterface,
	campaigns repository.CampaignRepositoryInterface,
	services repository.ServiceRepositoryInterface,
	validator *validator.Validate,
	m *metrics.Metrics,
) *EvaluationService {
	return &EvaluationService{
		tx:          tx,
		evaluations: evaluations,
		campaigns:   campaigns,
		services:    services,
		validator:   validator,
		metrics:     m,
		now:         time.Now,
	}
}

// UpdateEvaluationRequest represents a status change with optional evidence and notes.
// Empty evidence or notes leave the stored values unchanged.
type UpdateEvaluationRequest struct {
	Status           models.EvaluationStatus `json:"status" validate:"required"`
	EvidenceLocation *string                 `json:"evidence_location,omitempty" validate:"omitempty,max=1000"`
	Notes            *string                 `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// BulkUpdateRequest represents a status change for every evaluation of a participant,
// optionally limited to one category
type BulkUpdateRequest struct {
	Status     models.EvaluationStatus `json:"status" validate:"required"`
	CategoryID *uuid.UUID              `json:"category_id,omitempty"`
}

// BulkUpdateResponse reports how many evaluations a bulk update changed
type BulkUpdateResponse struct {
	Updated int `json:"updated"`
}

// EvaluationResponse is an evaluation joined with its measurement, category and evaluator
type EvaluationResponse struct {
	ID                  uuid.UUID               `json:"id"`
	CampaignID          uuid.UUID               `json:"campaign_id"`
	ServiceID           uuid.UUID               `json:"service_id"`
	MeasurementID       uuid.UUID               `json:"measurement_id"`
	MeasurementName     string                  `json:"measurement_name"`
	MeasurementDesc     string                  `json:"measurement_description"`
	EvidenceType        models.EvidenceType     `json:"evidence_type"`
	SampleEvidence      string                  `json:"sample_evidence"`
	CategoryID          uuid.UUID               `json:"category_id"`
	CategoryName        string                  `json:"category_name"`
	Status              models.EvaluationStatus `json:"status"`
	EvidenceLocation    *string                 `json:"evidence_location"`
	Notes               *string                 `json:"notes"`
	EvaluatedBy         *uuid.UUID              `json:"evaluated_by"`
	EvaluatedByUsername *string                 `json:"evaluated_by_username"`
	EvaluatedAt         *time.Time              `json:"evaluated_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

// HistoryResponse is one audit entry joined with the acting user
type HistoryResponse struct {
	ID                uuid.UUID               `json:"id"`
	EvaluationID      uuid.UUID               `json:"evaluation_id"`
	PreviousStatus    models.EvaluationStatus `json:"previous_status"`
	NewStatus         models.EvaluationStatus `json:"new_status"`
	Sequence          int64                   `json:"sequence"`
	ChangedBy         uuid.UUID               `json:"changed_by"`
	ChangedByUsername string                  `json:"changed_by_username"`
	Notes             *string                 `json:"notes"`
	CreatedAt         time.Time               `json:"created_at"`
}

// ListEvaluations returns a participant's evaluations ordered by category then measurement name
func (s *EvaluationService) ListEvaluations(ctx context.Context, campaignID, serviceID uuid.UUID) ([]EvaluationResponse, error) {
	if _, err := s.campaigns.GetByID(campaignID); err != nil {
		return nil, lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}
	if _, err := s.services.GetByID(serviceID); err != nil {
		return nil, lookupError("get service", err, apperrors.ErrServiceNotFound)
	}
	if _, err := s.campaigns.GetParticipant(campaignID, serviceID); err != nil {
		return nil, lookupError("get participant", err, apperrors.ErrParticipantNotFound)
	}

	evaluations, err := s.evaluations.GetByParticipant(campaignID, serviceID)
	if err != nil {
		return nil, storageError("list evaluations", err)
	}

	responses := make([]EvaluationResponse, len(evaluations))
	for i := range evaluations {
		responses[i] = toEvaluationResponse(&evaluations[i])
	}
	return responses, nil
}

// UpdateEvaluation records a status change and its audit entry in one transaction.
// The owning campaign must be active.
func (s *EvaluationService) UpdateEvaluation(ctx context.Context, id, actorID uuid.UUID, req *UpdateEvaluationRequest) (*EvaluationResponse, error) {
	evaluation, err := s.evaluations.GetByID(id)
	if err != nil {
		return nil, lookupError("get evaluation", err, apperrors.ErrEvaluationNotFound)
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := models.ValidateEvaluationTransition(evaluation.Status, req.Status); err != nil {
		return nil, err
	}
	campaign, err := s.campaigns.GetByID(evaluation.CampaignID)
	if err != nil {
		return nil, lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, inactiveCampaignError(campaign.Status)
	}

	notes := optionalText(req.Notes)
	from := evaluation.Status
	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.evaluations.WithTx(tx)
		current, err := repo.GetByIDForUpdate(id)
		if err != nil {
			return lookupError("get evaluation", err, apperrors.ErrEvaluationNotFound)
		}
		from = current.Status
		return s.applyStatus(repo, current, req.Status, actorID, notes,
			optionalText(req.EvidenceLocation), notes)
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("evaluation_id", id).Error("evaluation update rolled back")
		return nil, storageError("update evaluation", err)
	}

	s.metrics.RecordStatusChange(string(req.Status), metrics.SourceSingle)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"evaluation_id": id,
		"from":          from,
		"to":            req.Status,
	}).Info("evaluation status changed")

	updated, err := s.evaluations.GetWithDetails(id)
	if err != nil {
		return nil, lookupError("get evaluation", err, apperrors.ErrEvaluationNotFound)
	}
	resp := toEvaluationResponse(updated)
	return &resp, nil
}

// GetHistory returns an evaluation's audit entries, newest first
func (s *EvaluationService) GetHistory(ctx context.Context, id uuid.UUID) ([]HistoryResponse, error) {
	if _, err := s.evaluations.GetByID(id); err != nil {
		return nil, lookupError("get evaluation", err, apperrors.ErrEvaluationNotFound)
	}

	rows, err := s.evaluations.GetHistory(id)
	if err != nil {
		return nil, storageError("get evaluation history", err)
	}

	responses := make([]HistoryResponse, len(rows))
	for i, row := range rows {
		responses[i] = HistoryResponse{
			ID:                row.ID,
			EvaluationID:      row.EvaluationID,
			PreviousStatus:    row.PreviousStatus,
			NewStatus:         row.NewStatus,
			Sequence:          row.Sequence,
			ChangedBy:         row.ChangedBy,
			ChangedByUsername: row.ChangedByUsername,
			Notes:             row.Notes,
			CreatedAt:         row.CreatedAt,
		}
	}
	return responses, nil
}

// BulkUpdate applies one status to every evaluation of a participant, optionally
// limited to a category. Each change gets its own audit entry; the batch is all-or-nothing.
func (s *EvaluationService) BulkUpdate(ctx context.Context, campaignID, serviceID, actorID uuid.UUID, req *BulkUpdateRequest) (*BulkUpdateResponse, error) {
	campaign, err := s.campaigns.GetByID(campaignID)
	if err != nil {
		return nil, lookupError("get campaign", err, apperrors.ErrCampaignNotFound)
	}
	if _, err := s.campaigns.GetParticipant(campaignID, serviceID); err != nil {
		return nil, lookupError("get participant", err, apperrors.ErrParticipantNotFound)
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := models.ValidateEvaluationTransition("", req.Status); err != nil {
		return nil, err
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, inactiveCampaignError(campaign.Status)
	}

	// The selection is read inside the transaction so every audit entry
	// records the status it actually replaced.
	var evaluations []models.MeasurementEvaluation
	note := BulkUpdateNote
	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.evaluations.WithTx(tx)
		selected, err := repo.GetForBulkUpdate(campaignID, serviceID, req.CategoryID)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			return apperrors.ErrNoEvaluationsFound
		}
		evaluations = selected
		for i := range evaluations {
			if err := s.applyStatus(repo, &evaluations[i], req.Status, actorID, &note, nil, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, apperrors.ErrNoEvaluationsFound) {
		return nil, err
	}
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"campaign_id": campaignID,
			"service_id":  serviceID,
		}).Error("bulk update rolled back")
		return nil, storageError("bulk update evaluations", err)
	}

	for range evaluations {
		s.metrics.RecordStatusChange(string(req.Status), metrics.SourceBulk)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": campaignID,
		"service_id":  serviceID,
		"status":      req.Status,
		"updated":     len(evaluations),
	}).Info("bulk evaluation update")

	return &BulkUpdateResponse{Updated: len(evaluations)}, nil
}

// applyStatus writes the audit entry then the evaluation row. Implemented and
// Evidence Rejected stamp the evaluator; other statuses keep any previous stamp.
func (s *EvaluationService) applyStatus(
	repo repository.EvaluationRepositoryInterface,
	evaluation *models.MeasurementEvaluation,
	status models.EvaluationStatus,
	actorID uuid.UUID,
	historyNote, evidence, notes *string,
) error {
	entry := &models.EvaluationHistory{
		EvaluationID:   evaluation.ID,
		CampaignID:     evaluation.CampaignID,
		ServiceID:      evaluation.ServiceID,
		MeasurementID:  evaluation.MeasurementID,
		PreviousStatus: evaluation.Status,
		NewStatus:      status,
		ChangedBy:      actorID,
		Notes:          historyNote,
	}
	if err := repo.CreateHistory(entry); err != nil {
		return err
	}

	update := repository.EvaluationUpdate{
		Status:           status,
		EvidenceLocation: evidence,
		Notes:            notes,
	}
	if status.StampsEvaluator() {
		now := s.now()
		update.EvaluatedBy = &actorID
		update.EvaluatedAt = &now
	}
	return repo.Update(evaluation.ID, update)
}

func inactiveCampaignError(status models.CampaignStatus) error {
	return apperrors.NewInvalidStateError("campaign", string(status),
		"evaluations can only be changed while the campaign is active")
}

func toEvaluationResponse(e *models.MeasurementEvaluation) EvaluationResponse {
	resp := EvaluationResponse{
		ID:               e.ID,
		CampaignID:       e.CampaignID,
		ServiceID:        e.ServiceID,
		MeasurementID:    e.MeasurementID,
		Status:           e.Status,
		EvidenceLocation: e.EvidenceLocation,
		Notes:            e.Notes,
		EvaluatedBy:      e.EvaluatedBy,
		EvaluatedAt:      e.EvaluatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if m := e.Measurement; m != nil {
		resp.MeasurementName = m.Name
		resp.MeasurementDesc = m.Description
		resp.EvidenceType = m.EvidenceType
		resp.SampleEvidence = m.SampleEvidence
		resp.CategoryID = m.CategoryID
		if m.Category != nil {
			resp.CategoryName = m.Category.Name
		}
	}
	if e.Evaluator != nil {
		username := e.Evaluator.Username
		resp.EvaluatedByUsername = &username
	}
	return resp
}
