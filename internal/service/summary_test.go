package service_test

import (
	"testing"

	"maturity-tracker-backend/internal/database/models"
	apperrors "maturity-tracker-backend/internal/errors"
	"maturity-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// SummaryServiceTestSuite tests the campaign implementation roll-ups
type SummaryServiceTestSuite struct {
	serviceSuite
}

func (s *SummaryServiceTestSuite) TestCampaignSummary() {
	f := s.Fixtures
	w := s.buildWorld(models.CampaignStatusActive)

	// first service: one Alpha measurement implemented
	first := f.Enroll(w.campaign.ID, w.service.ID, w.measurements...)
	f.SetStatus(first[0].ID, models.EvaluationStatusImplemented)

	// second service in another team: everything implemented
	otherTeam := f.Team(s.admin.ID)
	second := f.Service(otherTeam.ID, s.admin.ID)
	for _, e := range f.Enroll(w.campaign.ID, second.ID, w.measurements...) {
		f.SetStatus(e.ID, models.EvaluationStatusImplemented)
	}

	// third service in the first team, enrolled without evaluations
	third := f.Service(w.team.ID, s.admin.ID)
	f.Enroll(w.campaign.ID, third.ID)

	summary, err := s.summaries.GetCampaignSummary(s.ctx, w.campaign.ID)
	s.Require().NoError(err)
	s.Equal(w.campaign.ID, summary.CampaignID)

	s.Require().Len(summary.ServiceSummaries, 3)
	services := summary.ServiceSummaries
	s.Equal(second.ID, services[0].ID)
	s.Equal(100.0, *services[0].ImplementationPercentage)
	s.Equal(4, *services[0].MaturityLevel)
	s.Equal(w.service.ID, services[1].ID)
	s.Equal(int64(1), services[1].ImplementedCount)
	s.Equal(int64(3), services[1].TotalCount)
	s.Equal(33.33, *services[1].ImplementationPercentage)
	s.Equal(1, *services[1].MaturityLevel)
	s.Equal(third.ID, services[2].ID)
	s.Zero(services[2].TotalCount)
	s.Nil(services[2].ImplementationPercentage)
	s.Nil(services[2].MaturityLevel)
	s.Nil(services[0].ServiceCount)

	s.Require().Len(summary.TeamSummaries, 2)
	teams := summary.TeamSummaries
	s.Equal(otherTeam.ID, teams[0].ID)
	s.Require().NotNil(teams[0].ServiceCount)
	s.Equal(int64(1), *teams[0].ServiceCount)
	s.Equal(w.team.ID, teams[1].ID)
	s.Equal(int64(2), *teams[1].ServiceCount)
	s.Equal(int64(1), teams[1].ImplementedCount)
	s.Equal(int64(3), teams[1].TotalCount)
	s.Equal(33.33, *teams[1].ImplementationPercentage)

	s.Require().Len(summary.CategorySummaries, 2)
	categories := summary.CategorySummaries
	s.Equal("Alpha", categories[0].Name)
	s.Equal(int64(3), categories[0].ImplementedCount)
	s.Equal(int64(4), categories[0].TotalCount)
	s.Equal(75.0, *categories[0].ImplementationPercentage)
	s.Equal(3, *categories[0].MaturityLevel)
	s.Equal("Beta", categories[1].Name)
	s.Equal(50.0, *categories[1].ImplementationPercentage)
	s.Equal(2, *categories[1].MaturityLevel)

	byTeam, err := s.summaries.SummaryByTeam(s.ctx, w.campaign.ID)
	s.Require().NoError(err)
	s.Equal(teams, byTeam)

	byCategory, err := s.summaries.SummaryByCategory(s.ctx, w.campaign.ID)
	s.Require().NoError(err)
	s.Equal(categories, byCategory)
}

func (s *SummaryServiceTestSuite) TestTiesOrderByName() {
	f := s.Fixtures
	w := s.buildWorld(models.CampaignStatusActive)
	zulu := f.NamedService("zulu", w.team.ID, s.admin.ID)
	alpha := f.NamedService("alpha", w.team.ID, s.admin.ID)
	f.Enroll(w.campaign.ID, zulu.ID, w.measurements...)
	f.Enroll(w.campaign.ID, alpha.ID, w.measurements...)

	items, err := s.summaries.SummaryByService(s.ctx, w.campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("alpha", items[0].Name)
	s.Equal("zulu", items[1].Name)
	s.Equal(0.0, *items[0].ImplementationPercentage)
	s.Equal(0, *items[0].MaturityLevel)
}

func (s *SummaryServiceTestSuite) TestCustomRulesWithGap() {
	w := s.buildWorld(models.CampaignStatusActive)
	evaluations := s.Fixtures.Enroll(w.campaign.ID, w.service.ID, w.measurements...)
	s.Fixtures.SetStatus(evaluations[0].ID, models.EvaluationStatusImplemented)

	_, err := s.catalog.UpdateLevelRules(s.ctx, w.model.ID, &service.UpdateLevelRulesRequest{
		Rules: []service.LevelRuleInput{
			{Level: 0, MinPercentage: 0, MaxPercentage: 10},
			{Level: 1, MinPercentage: 50, MaxPercentage: 100},
		},
	})
	s.Require().NoError(err)

	items, err := s.summaries.SummaryByService(s.ctx, w.campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(33.33, *items[0].ImplementationPercentage)
	s.Nil(items[0].MaturityLevel)
}

func (s *SummaryServiceTestSuite) TestEmptyCampaign() {
	w := s.buildWorld(models.CampaignStatusDraft)

	summary, err := s.summaries.GetCampaignSummary(s.ctx, w.campaign.ID)
	s.Require().NoError(err)
	s.Empty(summary.ServiceSummaries)
	s.Empty(summary.TeamSummaries)
	s.Empty(summary.CategorySummaries)

	_, err = s.summaries.GetCampaignSummary(s.ctx, uuid.New())
	s.ErrorIs(err, apperrors.ErrCampaignNotFound)
	_, err = s.summaries.SummaryByService(s.ctx, uuid.New())
	s.ErrorIs(err, apperrors.ErrCampaignNotFound)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func TestImplementationPercentage(t *testing.T) {
	cases := []struct {
		implemented, total int64
		want               *float64
	}{
		{1, 3, float64Ptr(33.33)},
		{2, 3, float64Ptr(66.67)},
		{3, 3, float64Ptr(100)},
		{0, 5, float64Ptr(0)},
		{1, 8, float64Ptr(12.5)},
		{0, 0, nil},
	}
	for _, tc := range cases {
		got := service.ImplementationPercentage(tc.implemented, tc.total)
		if tc.want == nil {
			assert.Nil(t, got, "%d/%d", tc.implemented, tc.total)
			continue
		}
		if assert.NotNil(t, got, "%d/%d", tc.implemented, tc.total) {
			assert.Equal(t, *tc.want, *got, "%d/%d", tc.implemented, tc.total)
		}
	}
}

func float64Ptr(f float64) *float64 { return &f }
