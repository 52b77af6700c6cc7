package service_test

import (
	"context"
	"errors"
	"testing"

	"maturity-tracker-backend/internal/database"
	"maturity-tracker-backend/internal/database/models"
	"maturity-tracker-backend/internal/metrics"
	"maturity-tracker-backend/internal/repository"
	"maturity-tracker-backend/internal/service"
	"maturity-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errInjected = errors.New("injected storage failure")

// serviceSuite wires every service against a fresh in-memory database
type serviceSuite struct {
	testutils.SQLiteTestSuite
	ctx         context.Context
	metrics     *metrics.Metrics
	campaigns   *service.CampaignService
	evaluations *service.EvaluationService
	summaries   *service.SummaryService
	catalog     *service.CatalogService
	roster      *service.RosterService
	admin       *models.User
}

func (s *serviceSuite) SetupTest() {
	s.SQLiteTestSuite.SetupTest()
	s.ctx = context.Background()
	s.metrics = metrics.New()

	tx := database.NewTxManager(s.DB)
	validate := service.NewValidator()
	users := repository.NewUserRepository(s.DB)
	teams := repository.NewTeamRepository(s.DB)
	services := repository.NewServiceRepository(s.DB)
	categories := repository.NewCategoryRepository(s.DB)
	modelRepo := repository.NewMaturityModelRepository(s.DB)
	campaigns := repository.NewCampaignRepository(s.DB)
	evaluations := repository.NewEvaluationRepository(s.DB)
	summaries := repository.NewSummaryRepository(s.DB)

	s.campaigns = service.NewCampaignService(tx, campaigns, evaluations, modelRepo, services, users, validate, s.metrics)
	s.evaluations = service.NewEvaluationService(tx, evaluations, campaigns, services, validate, s.metrics)
	s.summaries = service.NewSummaryService(summaries, campaigns, modelRepo)
	s.catalog = service.NewCatalogService(tx, modelRepo, categories, campaigns, users, validate)
	s.roster = service.NewRosterService(teams, services, users, validate)

	s.admin = s.Fixtures.User(models.UserRoleAdmin)
}

// world is a model with three measurements (two in Alpha, one in Beta),
// one team with one service and one campaign on the model
type world struct {
	model        *models.MaturityModel
	alpha        *models.MeasurementCategory
	beta         *models.MeasurementCategory
	measurements []*models.Measurement
	team         *models.Team
	service      *models.Service
	campaign     *models.Campaign
}

func (s *serviceSuite) buildWorld(status models.CampaignStatus) *world {
	f := s.Fixtures
	w := &world{}
	w.alpha = f.Category("Alpha")
	w.beta = f.Category("Beta")
	w.model = f.Model(s.admin.ID)
	w.measurements = []*models.Measurement{
		f.Measurement(w.model.ID, w.alpha.ID),
		f.Measurement(w.model.ID, w.alpha.ID),
		f.Measurement(w.model.ID, w.beta.ID),
	}
	w.team = f.Team(s.admin.ID)
	w.service = f.Service(w.team.ID, s.admin.ID)
	w.campaign = f.Campaign(w.model.ID, s.admin.ID, status)
	return w
}

// failNth makes the nth create or update statement on table fail
func (s *serviceSuite) failNth(kind, table string, n int) {
	count := 0
	hook := func(db *gorm.DB) {
		if db.Statement.Table != table {
			return
		}
		count++
		if count == n {
			_ = db.AddError(errInjected)
		}
	}

	var err error
	switch kind {
	case "create":
		err = s.DB.Callback().Create().Before("gorm:create").Register("test:fail_nth_create", hook)
	case "update":
		err = s.DB.Callback().Update().Before("gorm:update").Register("test:fail_nth_update", hook)
	}
	s.Require().NoError(err)
}

func (s *serviceSuite) evaluationsOf(campaign *models.Campaign, svc *models.Service) []models.MeasurementEvaluation {
	var evaluations []models.MeasurementEvaluation
	s.Require().NoError(s.DB.
		Where("campaign_id = ? AND service_id = ?", campaign.ID, svc.ID).
		Find(&evaluations).Error)
	return evaluations
}

func (s *serviceSuite) reloadEvaluation(id interface{}) models.MeasurementEvaluation {
	var evaluation models.MeasurementEvaluation
	s.Require().NoError(s.DB.First(&evaluation, "id = ?", id).Error)
	return evaluation
}

// counterValue sums every series of a counter family in the metrics registry
func counterValue(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}
