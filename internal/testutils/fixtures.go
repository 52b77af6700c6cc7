package testutils

import (
	"testing"

	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixtures persists factory-built rows, failing the test on any insert error
type Fixtures struct {
	t         *testing.T
	db        *gorm.DB
	factories *FactorySet
}

// NewFixtures creates fixtures bound to a database
func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db, factories: NewFactorySet()}
}

func (f *Fixtures) create(value interface{}) {
	f.t.Helper()
	require.NoError(f.t, f.db.Create(value).Error)
}

// User persists a user with the given role
func (f *Fixtures) User(role models.UserRole) *models.User {
	user := f.factories.User.WithRole(role)
	f.create(user)
	return user
}

// Team persists a team owned by ownerID
func (f *Fixtures) Team(ownerID uuid.UUID) *models.Team {
	team := f.factories.Team.WithOwner(ownerID)
	f.create(team)
	return team
}

// NamedTeam persists a team with a fixed name
func (f *Fixtures) NamedTeam(name string, ownerID uuid.UUID) *models.Team {
	team := f.factories.Team.WithOwner(ownerID)
	team.Name = name
	f.create(team)
	return team
}

// Service persists a service in teamID owned by ownerID
func (f *Fixtures) Service(teamID, ownerID uuid.UUID) *models.Service {
	service := f.factories.Service.WithTeam(teamID, ownerID)
	f.create(service)
	return service
}

// NamedService persists a service with a fixed name
func (f *Fixtures) NamedService(name string, teamID, ownerID uuid.UUID) *models.Service {
	service := f.factories.Service.WithTeam(teamID, ownerID)
	service.Name = name
	f.create(service)
	return service
}

// Category persists a measurement category with a fixed name
func (f *Fixtures) Category(name string) *models.MeasurementCategory {
	category := f.factories.Category.WithName(name)
	f.create(category)
	return category
}

// Model persists a maturity model with the default level rules
func (f *Fixtures) Model(ownerID uuid.UUID) *models.MaturityModel {
	model := f.factories.MaturityModel.WithOwner(ownerID)
	f.create(model)
	rules := models.DefaultLevelRules(model.ID)
	f.create(&rules)
	return model
}

// Measurement persists a measurement in modelID and categoryID
func (f *Fixtures) Measurement(modelID, categoryID uuid.UUID) *models.Measurement {
	measurement := f.factories.Measurement.For(modelID, categoryID)
	f.create(measurement)
	return measurement
}

// Campaign persists a campaign on modelID in the given status
func (f *Fixtures) Campaign(modelID, creatorID uuid.UUID, status models.CampaignStatus) *models.Campaign {
	campaign := f.factories.Campaign.For(modelID, creatorID, status)
	f.create(campaign)
	return campaign
}

// Enroll persists a participant with one Not Implemented evaluation per measurement
func (f *Fixtures) Enroll(campaignID, serviceID uuid.UUID, measurements ...*models.Measurement) []models.MeasurementEvaluation {
	f.create(&models.CampaignParticipant{CampaignID: campaignID, ServiceID: serviceID})
	evaluations := make([]models.MeasurementEvaluation, 0, len(measurements))
	for _, m := range measurements {
		evaluation := models.MeasurementEvaluation{
			CampaignID:    campaignID,
			ServiceID:     serviceID,
			MeasurementID: m.ID,
			Status:        models.EvaluationStatusNotImplemented,
		}
		f.create(&evaluation)
		evaluations = append(evaluations, evaluation)
	}
	return evaluations
}

// SetStatus forces an evaluation status without writing history
func (f *Fixtures) SetStatus(evaluationID uuid.UUID, status models.EvaluationStatus) {
	f.t.Helper()
	require.NoError(f.t, f.db.Model(&models.MeasurementEvaluation{}).
		Where("id = ?", evaluationID).Update("status", status).Error)
}

// Count counts the rows of a model matching an optional condition
func (f *Fixtures) Count(model interface{}, query string, args ...interface{}) int64 {
	f.t.Helper()
	var count int64
	q := f.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(f.t, q.Count(&count).Error)
	return count
}
