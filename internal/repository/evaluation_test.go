//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EvaluationRepositoryTestSuite tests the EvaluationRepository
type EvaluationRepositoryTestSuite struct {
	postgresSuite
	repo     *EvaluationRepository
	admin    *models.User
	campaign *models.Campaign
	service  *models.Service
	security *models.MeasurementCategory
	alpha    *models.Measurement
	beta     *models.Measurement
	gamma    *models.Measurement
}

func (s *EvaluationRepositoryTestSuite) SetupTest() {
	s.postgresSuite.SetupTest()
	s.repo = NewEvaluationRepository(s.db)

	f := s.fixtures
	s.admin = f.User(models.UserRoleAdmin)
	model := f.Model(s.admin.ID)
	s.security = f.Category("Security")
	observability := f.Category("Observability")
	s.alpha = s.namedMeasurement(model.ID, s.security.ID, "alpha")
	s.beta = s.namedMeasurement(model.ID, observability.ID, "beta")
	s.gamma = s.namedMeasurement(model.ID, observability.ID, "gamma")
	s.campaign = f.Campaign(model.ID, s.admin.ID, models.CampaignStatusActive)
	s.service = f.Service(f.Team(s.admin.ID).ID, s.admin.ID)
	f.Enroll(s.campaign.ID, s.service.ID)
}

func (s *EvaluationRepositoryTestSuite) namedMeasurement(modelID, categoryID uuid.UUID, name string) *models.Measurement {
	m := s.factories.Measurement.For(modelID, categoryID)
	m.Name = name
	s.Require().NoError(s.db.Create(m).Error)
	return m
}

func (s *EvaluationRepositoryTestSuite) createEvaluations() []models.MeasurementEvaluation {
	evaluations := []models.MeasurementEvaluation{}
	for _, m := range []*models.Measurement{s.gamma, s.alpha, s.beta} {
		evaluations = append(evaluations, models.MeasurementEvaluation{
			CampaignID:    s.campaign.ID,
			ServiceID:     s.service.ID,
			MeasurementID: m.ID,
			Status:        models.EvaluationStatusNotImplemented,
		})
	}
	s.Require().NoError(s.repo.CreateMany(evaluations))
	return evaluations
}

func (s *EvaluationRepositoryTestSuite) TestCreateManyRejectsDuplicateTriple() {
	s.createEvaluations()

	err := s.repo.CreateMany([]models.MeasurementEvaluation{{
		CampaignID:    s.campaign.ID,
		ServiceID:     s.service.ID,
		MeasurementID: s.alpha.ID,
		Status:        models.EvaluationStatusNotImplemented,
	}})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *EvaluationRepositoryTestSuite) TestGetByParticipantOrdersByCategoryThenMeasurement() {
	s.createEvaluations()

	evaluations, err := s.repo.GetByParticipant(s.campaign.ID, s.service.ID)

	s.Require().NoError(err)
	s.Require().Len(evaluations, 3)
	names := []string{}
	for _, e := range evaluations {
		s.Require().NotNil(e.Measurement)
		s.Require().NotNil(e.Measurement.Category)
		names = append(names, e.Measurement.Category.Name+"/"+e.Measurement.Name)
	}
	s.Equal([]string{"Observability/beta", "Observability/gamma", "Security/alpha"}, names)
}

func (s *EvaluationRepositoryTestSuite) TestGetForBulkUpdateFiltersByCategory() {
	s.createEvaluations()

	all, err := s.repo.GetForBulkUpdate(s.campaign.ID, s.service.ID, nil)
	s.NoError(err)
	s.Len(all, 3)

	security, err := s.repo.GetForBulkUpdate(s.campaign.ID, s.service.ID, &s.security.ID)
	s.NoError(err)
	s.Require().Len(security, 1)
	s.Equal(s.alpha.ID, security[0].MeasurementID)
}

func (s *EvaluationRepositoryTestSuite) TestUpdateSetsAndClearsOptionalColumns() {
	evaluation := s.createEvaluations()[0]
	evidence := "https://evidence.example.com/1"
	notes := "checked"
	now := time.Now()

	s.Require().NoError(s.repo.Update(evaluation.ID, EvaluationUpdate{
		Status:           models.EvaluationStatusEvidenceSubmitted,
		EvidenceLocation: &evidence,
		Notes:            &notes,
		EvaluatedBy:      &s.admin.ID,
		EvaluatedAt:      &now,
	}))

	detailed, err := s.repo.GetWithDetails(evaluation.ID)
	s.Require().NoError(err)
	s.Equal(models.EvaluationStatusEvidenceSubmitted, detailed.Status)
	s.Require().NotNil(detailed.EvidenceLocation)
	s.Equal(evidence, *detailed.EvidenceLocation)
	s.Require().NotNil(detailed.Evaluator)
	s.Equal(s.admin.Username, detailed.Evaluator.Username)

	// nil leaves notes alone, "" clears the evidence
	cleared := ""
	s.Require().NoError(s.repo.Update(evaluation.ID, EvaluationUpdate{
		Status:           models.EvaluationStatusImplemented,
		EvidenceLocation: &cleared,
	}))

	updated, err := s.repo.GetByID(evaluation.ID)
	s.Require().NoError(err)
	s.Equal(models.EvaluationStatusImplemented, updated.Status)
	s.Nil(updated.EvidenceLocation)
	s.Require().NotNil(updated.Notes)
	s.Equal("checked", *updated.Notes)
}

func (s *EvaluationRepositoryTestSuite) TestHistoryOutlivesEvaluations() {
	evaluation := s.createEvaluations()[0]
	older := time.Now().Add(-time.Minute)
	for i, status := range []models.EvaluationStatus{models.EvaluationStatusEvidenceSubmitted, models.EvaluationStatusImplemented} {
		s.Require().NoError(s.repo.CreateHistory(&models.EvaluationHistory{
			EvaluationID:   evaluation.ID,
			CampaignID:     s.campaign.ID,
			ServiceID:      s.service.ID,
			MeasurementID:  evaluation.MeasurementID,
			PreviousStatus: models.EvaluationStatusNotImplemented,
			NewStatus:      status,
			ChangedBy:      s.admin.ID,
			CreatedAt:      older.Add(time.Duration(i) * time.Second),
		}))
	}

	s.Require().NoError(s.repo.DeleteByParticipant(s.campaign.ID, s.service.ID))
	remaining, err := s.repo.GetByParticipant(s.campaign.ID, s.service.ID)
	s.NoError(err)
	s.Empty(remaining)

	history, err := s.repo.GetHistory(evaluation.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(models.EvaluationStatusImplemented, history[0].NewStatus)
	s.Equal(s.admin.Username, history[0].ChangedByUsername)
}

func (s *EvaluationRepositoryTestSuite) TestHistoryOrderWithinOneTimestamp() {
	evaluation := s.createEvaluations()[0]
	at := time.Now().Truncate(time.Second)
	chain := []models.EvaluationStatus{
		models.EvaluationStatusNotImplemented,
		models.EvaluationStatusEvidenceSubmitted,
		models.EvaluationStatusValidatingEvidence,
		models.EvaluationStatusImplemented,
	}
	for i := 1; i < len(chain); i++ {
		s.Require().NoError(s.repo.CreateHistory(&models.EvaluationHistory{
			EvaluationID:   evaluation.ID,
			CampaignID:     s.campaign.ID,
			ServiceID:      s.service.ID,
			MeasurementID:  evaluation.MeasurementID,
			PreviousStatus: chain[i-1],
			NewStatus:      chain[i],
			ChangedBy:      s.admin.ID,
			CreatedAt:      at,
		}))
	}

	history, err := s.repo.GetHistory(evaluation.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 3)
	for i, row := range history {
		s.Equal(int64(3-i), row.Sequence)
		s.Equal(chain[3-i], row.NewStatus)
		s.Equal(chain[2-i], row.PreviousStatus)
	}
}

func (s *EvaluationRepositoryTestSuite) TestDeleteByCampaign() {
	s.createEvaluations()

	s.Require().NoError(s.repo.DeleteByCampaign(s.campaign.ID))

	var count int64
	s.Require().NoError(s.db.Model(&models.MeasurementEvaluation{}).Count(&count).Error)
	s.Zero(count)
}

func TestEvaluationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluationRepositoryTestSuite))
}
