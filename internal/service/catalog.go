package service

import (
	"context"
	"errors"
	"time"

	"maturity-tracker-backend/internal/database"
	"maturity-tracker-backend/internal/database/models"
	apperrors "maturity-tracker-backend/internal/errors"
	"maturity-tracker-backend/internal/logger"
	"maturity-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService handles maturity models, their measurements and level rules,
// and the measurement categories
type CatalogService struct {
	tx         database.Transactor
	models     repository.MaturityModelRepositoryInterface
	categories repository.CategoryRepositoryInterface
	campaigns  repository.CampaignRepositoryInterface
	users      repository.UserRepositoryInterface
	validator  *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	tx database.Transactor,
	modelRepo repository.MaturityModelRepositoryInterface,
	categories repository.CategoryRepositoryInterface,
	campaigns repository.CampaignRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *CatalogService {
	return &CatalogService{
		tx:         tx,
		models:     modelRepo,
		categories: categories,
		campaigns:  campaigns,
		users:      users,
		validator:  validator,
	}
}

// CreateModelRequest represents the request to create a maturity model.
// OwnerID defaults to the acting user.
type CreateModelRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=1000"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
}

// UpdateModelRequest is a partial maturity model update; omitted fields are left unchanged
type UpdateModelRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitnil,max=1000"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
}

// CreateMeasurementRequest represents the request to add a measurement to a model
type CreateMeasurementRequest struct {
	Name           string              `json:"name" validate:"required,min=1,max=200"`
	CategoryID     uuid.UUID           `json:"category_id" validate:"required"`
	EvidenceType   models.EvidenceType `json:"evidence_type" validate:"required"`
	Description    string              `json:"description" validate:"max=1000"`
	SampleEvidence string              `json:"sample_evidence" validate:"max=1000"`
}

// LevelRuleInput is one level's percentage range
type LevelRuleInput struct {
	Level         int     `json:"level"`
	MinPercentage float64 `json:"min_percentage"`
	MaxPercentage float64 `json:"max_percentage"`
}

// UpdateLevelRulesRequest replaces a model's complete rule set
type UpdateLevelRulesRequest struct {
	Rules []LevelRuleInput `json:"rules"`
}

// CategoryResponse represents a measurement category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// MeasurementResponse is a measurement with its category name
type MeasurementResponse struct {
	ID              uuid.UUID           `json:"id"`
	MaturityModelID uuid.UUID           `json:"maturity_model_id"`
	Name            string              `json:"name"`
	CategoryID      uuid.UUID           `json:"category_id"`
	CategoryName    string              `json:"category_name"`
	Description     string              `json:"description"`
	EvidenceType    models.EvidenceType `json:"evidence_type"`
	SampleEvidence  string              `json:"sample_evidence"`
}

// LevelRuleResponse is one level's percentage range
type LevelRuleResponse struct {
	ID            uuid.UUID `json:"id"`
	Level         int       `json:"level"`
	MinPercentage float64   `json:"min_percentage"`
	MaxPercentage float64   `json:"max_percentage"`
}

// MaturityModelResponse is a model with owner, measurements and level rules
type MaturityModelResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	OwnerID       uuid.UUID             `json:"owner_id"`
	OwnerUsername string                `json:"owner_username"`
	Measurements  []MeasurementResponse `json:"measurements"`
	LevelRules    []LevelRuleResponse   `json:"level_rules"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// MaturityModelListItem is a model with its measurement count
type MaturityModelListItem struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	OwnerID          uuid.UUID `json:"owner_id"`
	OwnerUsername    string    `json:"owner_username"`
	MeasurementCount int       `json:"measurement_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateModel creates a maturity model with the default level rules
func (s *CatalogService) CreateModel(ctx context.Context, actorID uuid.UUID, req *CreateModelRequest) (*MaturityModelResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	ownerID := actorID
	if req.OwnerID != nil {
		ownerID = *req.OwnerID
	}
	if _, err := s.users.GetByID(ownerID); err != nil {
		return nil, lookupError("get owner", err, apperrors.ErrUserNotFound)
	}

	if _, err := s.models.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrMaturityModelExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError("get maturity model by name", err)
	}

	model := &models.MaturityModel{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	err := s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.models.WithTx(tx)
		if err := repo.Create(model); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrMaturityModelExists
			}
			return err
		}
		return repo.CreateLevelRules(models.DefaultLevelRules(model.ID))
	})
	if err != nil {
		return nil, storageError("create maturity model", err)
	}

	logger.WithContext(ctx).WithField("maturity_model_id", model.ID).Info("maturity model created")
	return s.GetModel(ctx, model.ID)
}

// GetModel returns a model with owner, measurements and level rules
func (s *CatalogService) GetModel(ctx context.Context, id uuid.UUID) (*MaturityModelResponse, error) {
	model, err := s.models.GetWithDetails(id)
	if err != nil {
		return nil, lookupError("get maturity model", err, apperrors.ErrMaturityModelNotFound)
	}

	resp := &MaturityModelResponse{
		ID:           model.ID,
		Name:         model.Name,
		Description:  model.Description,
		OwnerID:      model.OwnerID,
		Measurements: make([]MeasurementResponse, len(model.Measurements)),
		LevelRules:   toLevelRuleResponses(model.LevelRules),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.Owner != nil {
		resp.OwnerUsername = model.Owner.Username
	}
	for i := range model.Measurements {
		resp.Measurements[i] = toMeasurementResponse(&model.Measurements[i])
	}
	return resp, nil
}

// UpdateModel applies a partial update. A new name must be unique and a new owner must exist.
func (s *CatalogService) UpdateModel(ctx context.Context, id uuid.UUID, req *UpdateModelRequest) (*MaturityModelResponse, error) {
	if _, err := s.models.GetByID(id); err != nil {
		return nil, lookupError("get maturity model", err, apperrors.ErrMaturityModelNotFound)
	}

	update := repository.MaturityModelUpdate{
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
		existing, err := s.models.GetByName(*req.Name)
		if err == nil && existing.ID != id {
			return nil, apperrors.ErrMaturityModelExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storageError("get maturity model by name", err)
		}
	}

	if err := s.models.Update(id, update); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMaturityModelExists
		}
		return nil, storageError("update maturity model", err)
	}
	logger.WithContext(ctx).WithField("maturity_model_id", id).Info("maturity model updated")

	return s.GetModel(ctx, id)
}

// ListModels returns every model with its measurement count, ordered by name
func (s *CatalogService) ListModels(ctx context.Context) ([]MaturityModelListItem, error) {
	list, err := s.models.GetAll()
	if err != nil {
		return nil, storageError("list maturity models", err)
	}

	items := make([]MaturityModelListItem, len(list))
	for i, model := range list {
		items[i] = MaturityModelListItem{
			ID:               model.ID,
			Name:             model.Name,
			Description:      model.Description,
			OwnerID:          model.OwnerID,
			MeasurementCount: len(model.Measurements),
			CreatedAt:        model.CreatedAt,
		}
		if model.Owner != nil {
			items[i].OwnerUsername = model.Owner.Username
		}
	}
	return items, nil
}

// AddMeasurement adds a measurement to a model. Services already enrolled in a
// campaign on the model get no evaluation row for it.
func (s *CatalogService) AddMeasurement(ctx context.Context, modelID uuid.UUID, req *CreateMeasurementRequest) (*MeasurementResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.models.GetByID(modelID); err != nil {
		return nil, lookupError("get maturity model", err, apperrors.ErrMaturityModelNotFound)
	}
	category, err := s.categories.GetByID(req.CategoryID)
	if err != nil {
		return nil, lookupError("get category", err, apperrors.ErrCategoryNotFound)
	}
	if !req.EvidenceType.IsValid() {
		return nil, apperrors.NewValidationError("evidence_type", "must be one of: URL, Document, Image, Text")
	}

	measurement := &models.Measurement{
		Name:            req.Name,
		MaturityModelID: modelID,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		EvidenceType:    req.EvidenceType,
		SampleEvidence:  req.SampleEvidence,
	}
	if err := s.models.CreateMeasurement(measurement); err != nil {
		return nil, storageError("create measurement", err)
	}
	measurement.Category = category

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"maturity_model_id": modelID,
		"measurement_id":    measurement.ID,
	}).Info("measurement added")

	resp := toMeasurementResponse(measurement)
	return &resp, nil
}

// UpdateLevelRules validates and replaces a model's level rules in one transaction
func (s *CatalogService) UpdateLevelRules(ctx context.Context, modelID uuid.UUID, req *UpdateLevelRulesRequest) ([]LevelRuleResponse, error) {
	if _, err := s.models.GetByID(modelID); err != nil {
		return nil, lookupError("get maturity model", err, apperrors.ErrMaturityModelNotFound)
	}

	rules := make([]models.MaturityLevelRule, len(req.Rules))
	for i, r := range req.Rules {
		rules[i] = models.MaturityLevelRule{
			MaturityModelID: modelID,
			Level:           r.Level,
			MinPercentage:   r.MinPercentage,
			MaxPercentage:   r.MaxPercentage,
		}
	}
	if err := models.ValidateLevelRules(rules); err != nil {
		return nil, err
	}

	err := s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.models.WithTx(tx)
		if err := repo.DeleteLevelRules(modelID); err != nil {
			return err
		}
		return repo.CreateLevelRules(rules)
	})
	if err != nil {
		return nil, storageError("update level rules", err)
	}

	logger.WithContext(ctx).WithField("maturity_model_id", modelID).Info("level rules replaced")

	stored, err := s.models.GetLevelRules(modelID)
	if err != nil {
		return nil, storageError("get level rules", err)
	}
	return toLevelRuleResponses(stored), nil
}

// DeleteModel deletes a model with its rules and measurements. Models used by
// any campaign cannot be deleted.
func (s *CatalogService) DeleteModel(ctx context.Context, id uuid.UUID) error {
	if _, err := s.models.GetByID(id); err != nil {
		return lookupError("get maturity model", err, apperrors.ErrMaturityModelNotFound)
	}
	count, err := s.campaigns.CountByModel(id)
	if err != nil {
		return storageError("count campaigns", err)
	}
	if count > 0 {
		return apperrors.ErrMaturityModelInUse
	}

	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.models.WithTx(tx)
		if err := repo.DeleteLevelRules(id); err != nil {
			return err
		}
		if err := repo.DeleteMeasurements(id); err != nil {
			return err
		}
		return repo.Delete(id)
	})
	if err != nil {
		return storageError("delete maturity model", err)
	}

	logger.WithContext(ctx).WithField("maturity_model_id", id).Info("maturity model deleted")
	return nil
}

// ListCategories returns every measurement category ordered by name
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, storageError("list categories", err)
	}

	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
	}
	return responses, nil
}

func toMeasurementResponse(m *models.Measurement) MeasurementResponse {
	resp := MeasurementResponse{
		ID:              m.ID,
		MaturityModelID: m.MaturityModelID,
		Name:            m.Name,
		CategoryID:      m.CategoryID,
		Description:     m.Description,
		EvidenceType:    m.EvidenceType,
		SampleEvidence:  m.SampleEvidence,
	}
	if m.Category != nil {
		resp.CategoryName = m.Category.Name
	}
	return resp
}

func toLevelRuleResponses(rules []models.MaturityLevelRule) []LevelRuleResponse {
	responses := make([]LevelRuleResponse, len(rules))
	for i, r := range rules {
		responses[i] = LevelRuleResponse{
			ID:            r.ID,
			Level:         r.Level,
			MinPercentage: r.MinPercentage,
			MaxPercentage: r.MaxPercentage,
		}
	}
	return responses
}
