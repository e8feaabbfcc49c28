//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/handler/api"
	resdto "quoteshare/internal/handler/dto/response"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/commands"
	"quoteshare/internal/usecase/queries"
	"quoteshare/tests/common/httptest"
	commandsmock "quoteshare/tests/mock/commands"
	queriesmock "quoteshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuoteCommands
	mockQueries  *queriesmock.MockQuoteQueries
	handler      *api.QuoteHandler
	userID       uuid.UUID
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock middleware behavior: every request is authenticated as s.userID.
	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	authed.GET("/quotes", s.handler.List)
	authed.GET("/quotes/:id", s.handler.Get)
	authed.POST("/quotes/:id/share", s.handler.RegenerateShareToken)
	authed.PATCH("/quotes/:id/status", s.handler.UpdateStatus)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestList() {
	s.Run("success: returns quotes with total", func() {
		summaries := []queries.QuoteSummaryView{
			{ID: uuid.New(), QuoteNumber: "Q-2024-001", ClientName: "에이컴퍼니", Status: quote.StatusSent},
			{ID: uuid.New(), QuoteNumber: "Q-2024-002", ClientName: "비컴퍼니", Status: quote.StatusDraft},
		}
		s.mockQueries.EXPECT().ListQuotes(gomock.Any(), s.userID).Return(summaries, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes", nil, "")

		var response resdto.QuoteListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Total)
		s.Len(response.Quotes, 2)
		s.Equal("Q-2024-001", response.Quotes[0].QuoteNumber)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListQuotes(gomock.Any(), s.userID).Return(nil, assert.AnError)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *QuoteHandlerTestSuite) TestGet() {
	quoteID := uuid.New()

	s.Run("success: returns quote detail", func() {
		detail := &queries.QuoteDetailView{ID: quoteID, UserID: s.userID, QuoteNumber: "Q-2024-001"}
		s.mockQueries.EXPECT().GetQuote(gomock.Any(), s.userID, quoteID).Return(detail, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes/"+quoteID.String(), nil, "")

		var response queries.QuoteDetailView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Q-2024-001", response.QuoteNumber)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid quote ID")
	})

	s.Run("error: 404 when the quote does not exist", func() {
		s.mockQueries.EXPECT().GetQuote(gomock.Any(), s.userID, quoteID).Return(nil, errs.ErrQuoteNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes/"+quoteID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})

	s.Run("error: access denial looks identical to a missing quote", func() {
		s.mockQueries.EXPECT().GetQuote(gomock.Any(), s.userID, quoteID).Return(nil, queries.ErrQuoteAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes/"+quoteID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})
}

func (s *QuoteHandlerTestSuite) TestRegenerateShareToken() {
	quoteID := uuid.New()

	s.Run("success: returns the fresh token", func() {
		s.mockCommands.EXPECT().RegenerateShareToken(gomock.Any(), s.userID, quoteID).
			Return("abcdef0123456789", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes/"+quoteID.String()+"/share", nil, "")

		var response resdto.ShareTokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("abcdef0123456789", response.ShareID)
	})

	s.Run("error: 404 for someone else's quote", func() {
		s.mockCommands.EXPECT().RegenerateShareToken(gomock.Any(), s.userID, quoteID).
			Return("", commands.ErrQuoteAccessDenied)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes/"+quoteID.String()+"/share", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})
}

func (s *QuoteHandlerTestSuite) TestUpdateStatus() {
	quoteID := uuid.New()

	s.Run("success: status updated and mirrored", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.userID, quoteID, quote.StatusApproved).
			Return(&commands.StatusUpdateResult{Status: quote.StatusApproved, NotionUpdated: true}, nil)

		body := map[string]any{"status": "APPROVED"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/quotes/"+quoteID.String()+"/status", body, "")

		var response commands.StatusUpdateResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(quote.StatusApproved, response.Status)
		s.True(response.NotionUpdated)
	})

	s.Run("error: 400 for an unknown status value", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.userID, quoteID, quote.Status("SHIPPED")).
			Return(nil, commands.ErrInvalidStatus)

		body := map[string]any{"status": "SHIPPED"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/quotes/"+quoteID.String()+"/status", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status value")
	})

	s.Run("error: 400 for a missing body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/quotes/"+quoteID.String()+"/status", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
