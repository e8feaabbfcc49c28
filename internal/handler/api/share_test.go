//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/handler/api"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/queries"
	"quoteshare/tests/common/httptest"
	commandsmock "quoteshare/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShareHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuoteCommands
	handler      *api.ShareHandler
}

func (s *ShareHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.handler = api.NewShareHandler(s.mockCommands)

	// Public route: the share token itself is the capability.
	s.router.GET("/share/:shareId", s.handler.View)
}

func (s *ShareHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShareHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShareHandlerTestSuite))
}

func (s *ShareHandlerTestSuite) TestView() {
	const shareID = "abcdef0123456789"

	s.Run("success: renders the shared quote", func() {
		view := &queries.SharedQuoteView{
			QuoteNumber: "Q-2024-001",
			ClientName:  "에이컴퍼니",
			TotalAmount: 1500000,
			Status:      quote.StatusViewed,
		}
		s.mockCommands.EXPECT().ViewShared(gomock.Any(), shareID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/share/"+shareID, nil, "")

		var response queries.SharedQuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Q-2024-001", response.QuoteNumber)
		s.Equal(quote.StatusViewed, response.Status)
	})

	s.Run("error: 404 for a wrong-length token without touching storage", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/share/short", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})

	s.Run("error: 404 for an unknown token", func() {
		s.mockCommands.EXPECT().ViewShared(gomock.Any(), shareID).Return(nil, errs.ErrQuoteNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/share/"+shareID, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})
}
