package service

import (
	"context"

	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CampaignServiceInterface defines the interface for the campaign lifecycle
type CampaignServiceInterface interface {
	CreateCampaign(ctx context.Context, creatorID uuid.UUID, req *CreateCampaignRequest) (*CampaignDetailResponse, error)
	ListCampaigns(ctx context.Context) ([]CampaignResponse, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignDetailResponse, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, req *UpdateCampaignRequest) (*CampaignDetailResponse, error)
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status models.CampaignStatus) (*CampaignDetailResponse, error)
	AddParticipant(ctx context.Context, campaignID, serviceID uuid.UUID) (*ParticipantResponse, error)
	RemoveParticipant(ctx context.Context, campaignID, serviceID uuid.UUID) error
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
}

// EvaluationServiceInterface defines the interface for the evaluation engine
type EvaluationServiceInterface interface {
	ListEvaluations(ctx context.Context, campaignID, serviceID uuid.UUID) ([]EvaluationResponse, error)
	UpdateEvaluation(ctx context.Context, id, actorID uuid.UUID, req *UpdateEvaluationRequest) (*EvaluationResponse, error)
	GetHistory(ctx context.Context, id uuid.UUID) ([]HistoryResponse, error)
	BulkUpdate(ctx context.Context, campaignID, serviceID, actorID uuid.UUID, req *BulkUpdateRequest) (*BulkUpdateResponse, error)
}

// SummaryServiceInterface defines the interface for campaign roll-ups
type SummaryServiceInterface interface {
	GetCampaignSummary(ctx context.Context, campaignID uuid.UUID) (*CampaignSummaryResponse, error)
	SummaryByService(ctx context.Context, campaignID uuid.UUID) ([]SummaryItem, error)
	SummaryByTeam(ctx context.Context, campaignID uuid.UUID) ([]SummaryItem, error)
	SummaryByCategory(ctx context.Context, campaignID uuid.UUID) ([]SummaryItem, error)
}

// CatalogServiceInterface defines the interface for maturity models, measurements and categories
type CatalogServiceInterface interface {
	CreateModel(ctx context.Context, actorID uuid.UUID, req *CreateModelRequest) (*MaturityModelResponse, error)
	GetModel(ctx context.Context, id uuid.UUID) (*MaturityModelResponse, error)
	ListModels(ctx context.Context) ([]MaturityModelListItem, error)
	UpdateModel(ctx context.Context, id uuid.UUID, req *UpdateModelRequest) (*MaturityModelResponse, error)
	AddMeasurement(ctx context.Context, modelID uuid.UUID, req *CreateMeasurementRequest) (*MeasurementResponse, error)
	UpdateLevelRules(ctx context.Context, modelID uuid.UUID, req *UpdateLevelRulesRequest) ([]LevelRuleResponse, error)
	DeleteModel(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
}

// RosterServiceInterface defines the interface for teams and services
type RosterServiceInterface interface {
	CreateTeam(ctx context.Context, actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	ListTeams(ctx context.Context) ([]TeamResponse, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*TeamDetailResponse, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	CreateService(ctx context.Context, actorID uuid.UUID, req *CreateServiceRequest) (*ServiceResponse, error)
	ListServices(ctx context.Context, teamID *uuid.UUID) ([]ServiceResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *UpdateServiceRequest) (*ServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}
