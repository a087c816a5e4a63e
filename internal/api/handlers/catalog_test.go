package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"continuous-improvement-backend/internal/api/handlers"
	"continuous-improvement-backend/internal/mocks"
	"continuous-improvement-backend/internal/service"
	"continuous-improvement-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogHandlerTestSuite defines the test suite for CatalogHandler
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockCatalogSvc *mocks.MockCatalogServiceInterface
	httpSuite      *testutils.HTTPTestSuite
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCatalogSvc = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	handler := handlers.NewCatalogHandler(suite.mockCatalogSvc)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/statuses", handler.ListStatuses)
	suite.httpSuite.Router.GET("/champions", handler.ListChampions)
	suite.httpSuite.Router.GET("/categories", handler.ListCategories)
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestListStatuses() {
	suite.mockCatalogSvc.EXPECT().ListStatuses(gomock.Any()).
		Return([]service.StatusResponse{{ID: 1, Name: "Registered"}}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/statuses", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[{"id":1,"name":"Registered"}]`, w.Body.String())
}

func (suite *CatalogHandlerTestSuite) TestListChampions() {
	suite.mockCatalogSvc.EXPECT().ListChampions(gomock.Any()).
		Return([]service.ChampionResponse{{ID: 4, Name: "Marta Gil"}}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/champions", nil)

	var got []service.ChampionResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), []service.ChampionResponse{{ID: 4, Name: "Marta Gil"}}, got)
	assert.NotContains(suite.T(), w.Body.String(), "email")
}

func (suite *CatalogHandlerTestSuite) TestListCategories_Empty() {
	suite.mockCatalogSvc.EXPECT().ListCategories(gomock.Any()).Return([]service.CategoryResponse{}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/categories", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[]`, w.Body.String())
}

func (suite *CatalogHandlerTestSuite) TestListChampions_Error() {
	suite.mockCatalogSvc.EXPECT().ListChampions(gomock.Any()).Return(nil, errors.New("db down"))

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/champions", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to list champions")
	assert.NotContains(suite.T(), w.Body.String(), "db down")
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
