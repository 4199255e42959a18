//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"cafe-kiosk/internal/domain/catalog"
	"cafe-kiosk/internal/handler/api"
	resdto "cafe-kiosk/internal/handler/dto/response"
	"cafe-kiosk/internal/usecase/queries"
	"cafe-kiosk/tests/common/httptest"
	queriesmock "cafe-kiosk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockMenuQueries
	handler     *api.MenuHandler
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockMenuQueries(s.mockCtrl)
	s.handler = api.NewMenuHandler(s.mockQueries)

	s.router.GET("/api/menu", s.handler.List)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestList() {
	url := "/api/menu"

	s.Run("success: returns categories in kiosk order", func() {
		menu, err := queries.NewMenuQueries(catalog.NewDefaultCatalog()).ListMenu(context.Background())
		s.Require().NoError(err)
		s.mockQueries.EXPECT().ListMenu(gomock.Any()).Return(menu, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.MenuCategoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 3)
		s.Equal("Main Course", response[0].Title)
		s.Equal("drinks", response[1].Category)

		coffee := response[1].Items[1]
		s.Equal("coffee", coffee.Kind)
		s.Equal("60.00", coffee.BasePrice)
		s.Require().Len(coffee.Dimensions, 2)
		s.Equal(resdto.OptionResponse{Position: 3, Label: "Large", PriceDelta: "25.00"}, coffee.Dimensions[0].Options[2])
		s.Equal("Latte", coffee.Dimensions[1].Options[3].Label)
	})

	s.Run("error: 500 when the menu cannot be listed", func() {
		s.mockQueries.EXPECT().ListMenu(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
