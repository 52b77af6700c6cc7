package service_test

import (
	"context"
	"errors"
	"testing"

	"maturity-tracker-backend/internal/database/models"
	apperrors "maturity-tracker-backend/internal/errors"
	"maturity-tracker-backend/internal/mocks"
	"maturity-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FailFastTestSuite checks that rejected requests never reach a write.
// Mocks fail the test on any call not expected here.
type FailFastTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ctx         context.Context
	tx          *mocks.MockTransactor
	campaigns   *mocks.MockCampaignRepositoryInterface
	evaluations *mocks.MockEvaluationRepositoryInterface
	models      *mocks.MockMaturityModelRepositoryInterface
	services    *mocks.MockServiceRepositoryInterface
	users       *mocks.MockUserRepositoryInterface
	categories  *mocks.MockCategoryRepositoryInterface

	campaignService   *service.CampaignService
	evaluationService *service.EvaluationService
	catalogService    *service.CatalogService
}

func (suite *FailFastTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.tx = mocks.NewMockTransactor(suite.ctrl)
	suite.campaigns = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.evaluations = mocks.NewMockEvaluationRepositoryInterface(suite.ctrl)
	suite.models = mocks.NewMockMaturityModelRepositoryInterface(suite.ctrl)
	suite.services = mocks.NewMockServiceRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.categories = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)

	validate := service.NewValidator()
	suite.campaignService = service.NewCampaignService(suite.tx, suite.campaigns, suite.evaluations,
		suite.models, suite.services, suite.users, validate, nil)
	suite.evaluationService = service.NewEvaluationService(suite.tx, suite.evaluations, suite.campaigns,
		suite.services, validate, nil)
	suite.catalogService = service.NewCatalogService(suite.tx, suite.models, suite.categories,
		suite.campaigns, suite.users, validate)
}

func (suite *FailFastTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func campaignIn(status models.CampaignStatus) *models.Campaign {
	c := &models.Campaign{Status: status, MaturityModelID: uuid.New()}
	c.ID = uuid.New()
	return c
}

func (suite *FailFastTestSuite) TestAddParticipantToCompletedCampaignOpensNoTransaction() {
	campaign := campaignIn(models.CampaignStatusCompleted)
	serviceID := uuid.New()

	suite.campaigns.EXPECT().GetByID(campaign.ID).Return(campaign, nil)
	suite.services.EXPECT().GetByID(serviceID).Return(&models.Service{}, nil)

	_, err := suite.campaignService.AddParticipant(suite.ctx, campaign.ID, serviceID)
	suite.True(apperrors.IsInvalidState(err))
}

func (suite *FailFastTestSuite) TestAddParticipantCampaignLookupFirst() {
	id := uuid.New()
	suite.campaigns.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.campaignService.AddParticipant(suite.ctx, id, uuid.New())
	suite.ErrorIs(err, apperrors.ErrCampaignNotFound)
}

func (suite *FailFastTestSuite) TestStorageFailureBecomesInternal() {
	id := uuid.New()
	boom := errors.New("connection reset")
	suite.campaigns.EXPECT().GetByID(id).Return(nil, boom)

	err := suite.campaignService.DeleteCampaign(suite.ctx, id)
	suite.True(apperrors.IsInternal(err))
	suite.ErrorIs(err, boom)
}

func (suite *FailFastTestSuite) TestTransactionFailureBecomesInternal() {
	campaign := campaignIn(models.CampaignStatusActive)
	serviceID := uuid.New()
	boom := errors.New("serialization failure")

	suite.campaigns.EXPECT().GetByID(campaign.ID).Return(campaign, nil)
	suite.services.EXPECT().GetByID(serviceID).Return(&models.Service{}, nil)
	suite.campaigns.EXPECT().GetParticipant(campaign.ID, serviceID).Return(nil, gorm.ErrRecordNotFound)
	suite.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(boom)

	_, err := suite.campaignService.AddParticipant(suite.ctx, campaign.ID, serviceID)
	suite.True(apperrors.IsInternal(err))
	suite.ErrorIs(err, boom)
}

func (suite *FailFastTestSuite) TestUpdateEvaluationRejectsUnknownStatusBeforeCampaignLookup() {
	evaluation := &models.MeasurementEvaluation{CampaignID: uuid.New(), Status: models.EvaluationStatusNotImplemented}
	evaluation.ID = uuid.New()
	suite.evaluations.EXPECT().GetByID(evaluation.ID).Return(evaluation, nil)

	_, err := suite.evaluationService.UpdateEvaluation(suite.ctx, evaluation.ID, uuid.New(), &service.UpdateEvaluationRequest{
		Status: models.EvaluationStatus("Shipped"),
	})
	suite.ErrorIs(err, apperrors.ErrInvalidEvaluationStatus)
}

func (suite *FailFastTestSuite) TestUpdateEvaluationInDraftCampaignOpensNoTransaction() {
	campaign := campaignIn(models.CampaignStatusDraft)
	evaluation := &models.MeasurementEvaluation{CampaignID: campaign.ID, Status: models.EvaluationStatusNotImplemented}
	evaluation.ID = uuid.New()
	suite.evaluations.EXPECT().GetByID(evaluation.ID).Return(evaluation, nil)
	suite.campaigns.EXPECT().GetByID(campaign.ID).Return(campaign, nil)

	_, err := suite.evaluationService.UpdateEvaluation(suite.ctx, evaluation.ID, uuid.New(), &service.UpdateEvaluationRequest{
		Status: models.EvaluationStatusImplemented,
	})
	suite.True(apperrors.IsInvalidState(err))
}

func (suite *FailFastTestSuite) TestBulkUpdateValidatesBeforeCampaignState() {
	campaign := campaignIn(models.CampaignStatusCancelled)
	serviceID := uuid.New()
	suite.campaigns.EXPECT().GetByID(campaign.ID).Return(campaign, nil)
	suite.campaigns.EXPECT().GetParticipant(campaign.ID, serviceID).Return(&models.CampaignParticipant{}, nil)

	_, err := suite.evaluationService.BulkUpdate(suite.ctx, campaign.ID, serviceID, uuid.New(), &service.BulkUpdateRequest{
		Status: models.EvaluationStatus("Shipped"),
	})
	suite.ErrorIs(err, apperrors.ErrInvalidEvaluationStatus)
}

func (suite *FailFastTestSuite) TestBulkUpdateSelectsThroughTransaction() {
	campaign := campaignIn(models.CampaignStatusActive)
	serviceID := uuid.New()
	txEvaluations := mocks.NewMockEvaluationRepositoryInterface(suite.ctrl)

	suite.campaigns.EXPECT().GetByID(campaign.ID).Return(campaign, nil)
	suite.campaigns.EXPECT().GetParticipant(campaign.ID, serviceID).Return(&models.CampaignParticipant{}, nil)
	suite.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *gorm.DB) error) error {
			return fn(nil)
		})
	suite.evaluations.EXPECT().WithTx(gomock.Nil()).Return(txEvaluations)
	txEvaluations.EXPECT().GetForBulkUpdate(campaign.ID, serviceID, gomock.Nil()).Return(nil, nil)

	_, err := suite.evaluationService.BulkUpdate(suite.ctx, campaign.ID, serviceID, uuid.New(), &service.BulkUpdateRequest{
		Status: models.EvaluationStatusImplemented,
	})
	suite.ErrorIs(err, apperrors.ErrNoEvaluationsFound)
}

func (suite *FailFastTestSuite) TestInvalidLevelRulesNeverDeleteStoredRules() {
	modelID := uuid.New()
	suite.models.EXPECT().GetByID(modelID).Return(&models.MaturityModel{}, nil)

	_, err := suite.catalogService.UpdateLevelRules(suite.ctx, modelID, &service.UpdateLevelRulesRequest{
		Rules: []service.LevelRuleInput{{Level: 7, MinPercentage: 0, MaxPercentage: 100}},
	})
	suite.True(apperrors.IsValidation(err))
}

func TestFailFastTestSuite(t *testing.T) {
	suite.Run(t, new(FailFastTestSuite))
}
