package handlers_test

import (
	"net/http"
	"testing"

	"maturity-tracker-backend/internal/api/handlers"
	"maturity-tracker-backend/internal/database/models"
	apperrors "maturity-tracker-backend/internal/errors"
	"maturity-tracker-backend/internal/mocks"
	"maturity-tracker-backend/internal/service"
	"maturity-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogHandlerTestSuite covers the maturity model and category handlers
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *mocks.MockCatalogServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCatalog = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	userID, authenticate := asUser(models.UserRoleAdmin)
	suite.userID = userID

	modelHandler := handlers.NewMaturityModelHandler(suite.mockCatalog)
	categoryHandler := handlers.NewCategoryHandler(suite.mockCatalog)

	v1 := suite.httpSuite.Router.Group("/api/v1", authenticate)
	v1.GET("/categories", categoryHandler.ListCategories)
	maturityModels := v1.Group("/maturity-models")
	{
		maturityModels.GET("", modelHandler.ListModels)
		maturityModels.POST("", modelHandler.CreateModel)
		maturityModels.GET("/:id", modelHandler.GetModel)
		maturityModels.PUT("/:id", modelHandler.UpdateModel)
		maturityModels.DELETE("/:id", modelHandler.DeleteModel)
		maturityModels.POST("/:id/measurements", modelHandler.AddMeasurement)
		maturityModels.PUT("/:id/rules", modelHandler.UpdateLevelRules)
	}
}

// TearDownTest cleans up after each test
func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestListCategories() {
	suite.mockCatalog.EXPECT().ListCategories(gomock.Any()).Return([]service.CategoryResponse{
		{ID: uuid.New(), Name: "Observability"},
		{ID: uuid.New(), Name: "Security"},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/categories", nil)

	var response []service.CategoryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
}

func (suite *CatalogHandlerTestSuite) TestListModels() {
	suite.mockCatalog.EXPECT().ListModels(gomock.Any()).Return([]service.MaturityModelListItem{
		{ID: uuid.New(), Name: "Operational Excellence", MeasurementCount: 12},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maturity-models", nil)

	var response []service.MaturityModelListItem
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(12, response[0].MeasurementCount)
}

func (suite *CatalogHandlerTestSuite) TestCreateModel() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockCatalog.EXPECT().CreateModel(gomock.Any(), suite.userID, gomock.Any()).
			Return(&service.MaturityModelResponse{ID: uuid.New(), Name: "Security Baseline", OwnerID: suite.userID}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maturity-models",
			map[string]string{"name": "Security Baseline"})

		var response service.MaturityModelResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, suite.userID, response.OwnerID)
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		suite.mockCatalog.EXPECT().CreateModel(gomock.Any(), suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrMaturityModelExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maturity-models",
			map[string]string{"name": "Security Baseline"})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func (suite *CatalogHandlerTestSuite) TestGetModel() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maturity-models/xyz", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid maturity model ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockCatalog.EXPECT().GetModel(gomock.Any(), id).Return(nil, apperrors.ErrMaturityModelNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/maturity-models/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *CatalogHandlerTestSuite) TestUpdateModel() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockCatalog.EXPECT().UpdateModel(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UpdateModelRequest) (*service.MaturityModelResponse, error) {
				assert.NotNil(t, req.Description)
				assert.Nil(t, req.Name)
				return &service.MaturityModelResponse{ID: id, Name: "Baseline", Description: *req.Description}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/maturity-models/"+id.String(),
			map[string]string{"description": "Core operational checks"})

		var response service.MaturityModelResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Core operational checks", response.Description)
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		id := uuid.New()
		suite.mockCatalog.EXPECT().UpdateModel(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrMaturityModelExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/maturity-models/"+id.String(),
			map[string]string{"name": "Security"})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockCatalog.EXPECT().UpdateModel(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrMaturityModelNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/maturity-models/"+id.String(),
			map[string]string{"name": "Security"})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "maturity model not found")
	})
}

func (suite *CatalogHandlerTestSuite) TestDeleteModelInUse() {
	id := uuid.New()
	suite.mockCatalog.EXPECT().DeleteModel(gomock.Any(), id).Return(apperrors.ErrMaturityModelInUse)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/maturity-models/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "used in campaigns")
}

func (suite *CatalogHandlerTestSuite) TestAddMeasurement() {
	id := uuid.New()
	categoryID := uuid.New()
	suite.mockCatalog.EXPECT().AddMeasurement(gomock.Any(), id, gomock.Any()).
		Return(&service.MeasurementResponse{ID: uuid.New(), MaturityModelID: id, CategoryID: categoryID, Name: "SLOs defined"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/maturity-models/"+id.String()+"/measurements",
		map[string]string{
			"name":          "SLOs defined",
			"category_id":   categoryID.String(),
			"evidence_type": "URL",
		})

	var response service.MeasurementResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(categoryID, response.CategoryID)
}

func (suite *CatalogHandlerTestSuite) TestUpdateLevelRules() {
	id := uuid.New()

	suite.T().Run("Overlapping ranges", func(t *testing.T) {
		suite.mockCatalog.EXPECT().UpdateLevelRules(gomock.Any(), id, gomock.Any()).
			Return(nil, apperrors.ErrInvalidPercentageRange)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/maturity-models/"+id.String()+"/rules",
			map[string]interface{}{"rules": []map[string]interface{}{
				{"level": 1, "min_percentage": 0, "max_percentage": 60},
				{"level": 2, "min_percentage": 50, "max_percentage": 100},
			}})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockCatalog.EXPECT().UpdateLevelRules(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UpdateLevelRulesRequest) ([]service.LevelRuleResponse, error) {
				assert.Len(t, req.Rules, 2)
				return []service.LevelRuleResponse{
					{Level: 1, MinPercentage: 0, MaxPercentage: 50},
					{Level: 2, MinPercentage: 51, MaxPercentage: 100},
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/maturity-models/"+id.String()+"/rules",
			map[string]interface{}{"rules": []map[string]interface{}{
				{"level": 1, "min_percentage": 0, "max_percentage": 50},
				{"level": 2, "min_percentage": 51, "max_percentage": 100},
			}})

		var response []service.LevelRuleResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
