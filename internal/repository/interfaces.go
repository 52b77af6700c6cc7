package repository

import (
	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(id uuid.UUID, update TeamUpdate) error
	CountServices(id uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// ServiceRepositoryInterface defines the interface for service repository operations
type ServiceRepositoryInterface interface {
	Create(service *models.Service) error
	GetByID(id uuid.UUID) (*models.Service, error)
	GetAll(teamID *uuid.UUID) ([]models.Service, error)
	Update(id uuid.UUID, update ServiceUpdate) error
	CountParticipations(id uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the interface for measurement category repository operations
type CategoryRepositoryInterface interface {
	GetAll() ([]models.MeasurementCategory, error)
	GetByID(id uuid.UUID) (*models.MeasurementCategory, error)
}

// MaturityModelRepositoryInterface defines the interface for maturity model repository operations,
// including the measurements and level rules the model owns
type MaturityModelRepositoryInterface interface {
	WithTx(tx *gorm.DB) MaturityModelRepositoryInterface
	Create(model *models.MaturityModel) error
	GetByID(id uuid.UUID) (*models.MaturityModel, error)
	GetByName(name string) (*models.MaturityModel, error)
	GetWithDetails(id uuid.UUID) (*models.MaturityModel, error)
	GetAll() ([]models.MaturityModel, error)
	Update(id uuid.UUID, update MaturityModelUpdate) error
	Delete(id uuid.UUID) error
	CreateMeasurement(measurement *models.Measurement) error
	GetMeasurements(modelID uuid.UUID) ([]models.Measurement, error)
	DeleteMeasurements(modelID uuid.UUID) error
	GetLevelRules(modelID uuid.UUID) ([]models.MaturityLevelRule, error)
	CreateLevelRules(rules []models.MaturityLevelRule) error
	DeleteLevelRules(modelID uuid.UUID) error
}

// CampaignRepositoryInterface defines the interface for campaign and participant repository operations
type CampaignRepositoryInterface interface {
	WithTx(tx *gorm.DB) CampaignRepositoryInterface
	Create(campaign *models.Campaign) error
	GetByID(id uuid.UUID) (*models.Campaign, error)
	GetWithDetails(id uuid.UUID) (*models.Campaign, error)
	GetAll() ([]CampaignListRow, error)
	Update(id uuid.UUID, update CampaignUpdate) error
	Delete(id uuid.UUID) error
	CountByModel(modelID uuid.UUID) (int64, error)
	AddParticipant(participant *models.CampaignParticipant) error
	GetParticipant(campaignID, serviceID uuid.UUID) (*models.CampaignParticipant, error)
	GetParticipants(campaignID uuid.UUID) ([]ParticipantRow, error)
	DeleteParticipant(campaignID, serviceID uuid.UUID) error
	DeleteParticipants(campaignID uuid.UUID) error
	GetStatusCounts(campaignID uuid.UUID) ([]StatusCountRow, error)
}

// EvaluationRepositoryInterface defines the interface for evaluation and audit history repository operations
type EvaluationRepositoryInterface interface {
	WithTx(tx *gorm.DB) EvaluationRepositoryInterface
	CreateMany(evaluations []models.MeasurementEvaluation) error
	GetByID(id uuid.UUID) (*models.MeasurementEvaluation, error)
	GetByIDForUpdate(id uuid.UUID) (*models.MeasurementEvaluation, error)
	GetWithDetails(id uuid.UUID) (*models.MeasurementEvaluation, error)
	GetByParticipant(campaignID, serviceID uuid.UUID) ([]models.MeasurementEvaluation, error)
	GetForBulkUpdate(campaignID, serviceID uuid.UUID, categoryID *uuid.UUID) ([]models.MeasurementEvaluation, error)
	Update(id uuid.UUID, update EvaluationUpdate) error
	DeleteByParticipant(campaignID, serviceID uuid.UUID) error
	DeleteByCampaign(campaignID uuid.UUID) error
	CreateHistory(entry *models.EvaluationHistory) error
	GetHistory(evaluationID uuid.UUID) ([]HistoryRow, error)
}

// SummaryRepositoryInterface defines the read-only aggregation queries for a campaign
type SummaryRepositoryInterface interface {
	ServiceSummaries(campaignID uuid.UUID) ([]SummaryRow, error)
	TeamSummaries(campaignID uuid.UUID) ([]SummaryRow, error)
	CategorySummaries(campaignID uuid.UUID) ([]SummaryRow, error)
}
