package testutils

import (
	"fmt"
	"time"

	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique username and email derived from the ID to avoid conflicts
	short := id.String()[:8]
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user-" + short,
		PasswordHash: "not-a-real-hash",
		Email:        fmt.Sprintf("user-%s@example.com", short),
		Role:         models.UserRoleTeamMember,
	}
}

// WithRole creates a test User with the given role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Team " + id.String()[:8],
		OwnerID:     uuid.New(),
		Description: "A test team",
	}
}

// WithOwner creates a test Team owned by the given user
func (f *TeamFactory) WithOwner(ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.OwnerID = ownerID
	return team
}

// ServiceFactory provides methods to create test Service data
type ServiceFactory struct{}

// NewServiceFactory creates a new ServiceFactory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// Create creates a test Service with default values
func (f *ServiceFactory) Create() *models.Service {
	id := uuid.New()
	return &models.Service{
		BaseModel:        models.BaseModel{ID: id},
		Name:             "Service " + id.String()[:8],
		OwnerID:          uuid.New(),
		TeamID:           uuid.New(),
		Description:      "A test service",
		ServiceType:      models.ServiceTypeAPI,
		ResourceLocation: "https://git.example.com/" + id.String()[:8],
	}
}

// WithTeam creates a test Service owned by the given team and user
func (f *ServiceFactory) WithTeam(teamID, ownerID uuid.UUID) *models.Service {
	service := f.Create()
	service.TeamID = teamID
	service.OwnerID = ownerID
	return service
}

// CategoryFactory provides methods to create test MeasurementCategory data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test MeasurementCategory with default values
func (f *CategoryFactory) Create() *models.MeasurementCategory {
	id := uuid.New()
	return &models.MeasurementCategory{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Category " + id.String()[:8],
		Description: "A test category",
	}
}

// WithName creates a test MeasurementCategory with a custom name
func (f *CategoryFactory) WithName(name string) *models.MeasurementCategory {
	category := f.Create()
	category.Name = name
	return category
}

// MaturityModelFactory provides methods to create test MaturityModel data
type MaturityModelFactory struct{}

// NewMaturityModelFactory creates a new MaturityModelFactory
func NewMaturityModelFactory() *MaturityModelFactory {
	return &MaturityModelFactory{}
}

// Create creates a test MaturityModel with default values
func (f *MaturityModelFactory) Create() *models.MaturityModel {
	id := uuid.New()
	return &models.MaturityModel{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Model " + id.String()[:8],
		OwnerID:     uuid.New(),
		Description: "A test maturity model",
	}
}

// WithOwner creates a test MaturityModel owned by the given user
func (f *MaturityModelFactory) WithOwner(ownerID uuid.UUID) *models.MaturityModel {
	model := f.Create()
	model.OwnerID = ownerID
	return model
}

// MeasurementFactory provides methods to create test Measurement data
type MeasurementFactory struct{}

// NewMeasurementFactory creates a new MeasurementFactory
func NewMeasurementFactory() *MeasurementFactory {
	return &MeasurementFactory{}
}

// Create creates a test Measurement with default values
func (f *MeasurementFactory) Create() *models.Measurement {
	id := uuid.New()
	return &models.Measurement{
		BaseModel:      models.BaseModel{ID: id},
		Name:           "Measurement " + id.String()[:8],
		Description:    "A test measurement",
		EvidenceType:   models.EvidenceTypeURL,
		SampleEvidence: "https://evidence.example.com",
	}
}

// For creates a test Measurement in the given model and category
func (f *MeasurementFactory) For(modelID, categoryID uuid.UUID) *models.Measurement {
	measurement := f.Create()
	measurement.MaturityModelID = modelID
	measurement.CategoryID = categoryID
	return measurement
}

// CampaignFactory provides methods to create test Campaign data
type CampaignFactory struct{}

// NewCampaignFactory creates a new CampaignFactory
func NewCampaignFactory() *CampaignFactory {
	return &CampaignFactory{}
}

// Create creates a test Campaign with default values
func (f *CampaignFactory) Create() *models.Campaign {
	id := uuid.New()
	start := time.Now().Truncate(time.Second)
	end := start.AddDate(0, 1, 0)
	return &models.Campaign{
		BaseModel:       models.BaseModel{ID: id},
		Name:            "Campaign " + id.String()[:8],
		MaturityModelID: uuid.New(),
		StartDate:       &start,
		EndDate:         &end,
		Status:          models.CampaignStatusDraft,
		CreatedBy:       uuid.New(),
	}
}

// For creates a test Campaign on the given model, created by the given user
func (f *CampaignFactory) For(modelID, creatorID uuid.UUID, status models.CampaignStatus) *models.Campaign {
	campaign := f.Create()
	campaign.MaturityModelID = modelID
	campaign.CreatedBy = creatorID
	campaign.Status = status
	return campaign
}

// FactorySet provides access to all factories
type FactorySet struct {
	User          *UserFactory
	Team          *TeamFactory
	Service       *ServiceFactory
	Category      *CategoryFactory
	MaturityModel *MaturityModelFactory
	Measurement   *MeasurementFactory
	Campaign      *CampaignFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          NewUserFactory(),
		Team:          NewTeamFactory(),
		Service:       NewServiceFactory(),
		Category:      NewCategoryFactory(),
		MaturityModel: NewMaturityModelFactory(),
		Measurement:   NewMeasurementFactory(),
		Campaign:      NewCampaignFactory(),
	}
}
