//go:build integration
// +build integration

package repository

import (
	"testing"

	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// SummaryRepositoryTestSuite tests the roll-up queries on Postgres
type SummaryRepositoryTestSuite struct {
	postgresSuite
	repo *SummaryRepository
}

func (s *SummaryRepositoryTestSuite) SetupTest() {
	s.postgresSuite.SetupTest()
	s.repo = NewSummaryRepository(s.db)
}

func byID(rows []SummaryRow) map[uuid.UUID]SummaryRow {
	out := make(map[uuid.UUID]SummaryRow, len(rows))
	for _, row := range rows {
		out[row.ID] = row
	}
	return out
}

func (s *SummaryRepositoryTestSuite) TestRollUps() {
	f := s.fixtures
	admin := f.User(models.UserRoleAdmin)
	model := f.Model(admin.ID)
	security := f.Category("Security")
	observability := f.Category("Observability")
	first := f.Measurement(model.ID, security.ID)
	second := f.Measurement(model.ID, observability.ID)
	campaign := f.Campaign(model.ID, admin.ID, models.CampaignStatusActive)
	other := f.Campaign(model.ID, admin.ID, models.CampaignStatusActive)

	platform := f.Team(admin.ID)
	frontend := f.Team(admin.ID)
	gateway := f.Service(platform.ID, admin.ID)
	auth := f.Service(platform.ID, admin.ID)
	portal := f.Service(frontend.ID, admin.ID)

	gatewayEvals := f.Enroll(campaign.ID, gateway.ID, first, second)
	f.SetStatus(gatewayEvals[0].ID, models.EvaluationStatusImplemented)
	f.SetStatus(gatewayEvals[1].ID, models.EvaluationStatusImplemented)
	authEvals := f.Enroll(campaign.ID, auth.ID, first, second)
	f.SetStatus(authEvals[0].ID, models.EvaluationStatusImplemented)
	// enrolled without evaluations
	f.Enroll(campaign.ID, portal.ID)
	// other campaigns never leak in
	for _, e := range f.Enroll(other.ID, portal.ID, first, second) {
		f.SetStatus(e.ID, models.EvaluationStatusImplemented)
	}

	services, err := s.repo.ServiceSummaries(campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(services, 3)
	rows := byID(services)
	s.Equal(int64(2), rows[gateway.ID].ImplementedCount)
	s.Equal(int64(2), rows[gateway.ID].TotalCount)
	s.Equal(int64(1), rows[auth.ID].ImplementedCount)
	s.Equal(int64(0), rows[portal.ID].TotalCount)
	s.Equal(portal.Name, rows[portal.ID].Name)

	teams, err := s.repo.TeamSummaries(campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(teams, 2)
	rows = byID(teams)
	s.Equal(int64(3), rows[platform.ID].ImplementedCount)
	s.Equal(int64(4), rows[platform.ID].TotalCount)
	s.Equal(int64(2), rows[platform.ID].ServiceCount)
	s.Equal(int64(0), rows[frontend.ID].TotalCount)
	s.Equal(int64(1), rows[frontend.ID].ServiceCount)

	categories, err := s.repo.CategorySummaries(campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(categories, 2)
	rows = byID(categories)
	s.Equal(int64(2), rows[security.ID].ImplementedCount)
	s.Equal(int64(2), rows[security.ID].TotalCount)
	s.Equal(int64(1), rows[observability.ID].ImplementedCount)
	s.Equal("Observability", rows[observability.ID].Name)
}

func (s *SummaryRepositoryTestSuite) TestEmptyCampaign() {
	rows, err := s.repo.ServiceSummaries(uuid.New())
	s.NoError(err)
	s.Empty(rows)

	rows, err = s.repo.CategorySummaries(uuid.New())
	s.NoError(err)
	s.Empty(rows)
}

func TestSummaryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryRepositoryTestSuite))
}
