//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"quoteshare/internal/handler/api"
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

type SettingsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettingsCommands
	mockQueries  *queriesmock.MockQuoteQueries
	handler      *api.SettingsHandler
	userID       uuid.UUID
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewSettingsHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	authed.PUT("/settings/notion", s.handler.Update)
	authed.GET("/settings/notion", s.handler.Get)
	authed.POST("/settings/notion/test", s.handler.TestConnection)
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func (s *SettingsHandlerTestSuite) TestUpdate() {
	const apiKey = "ntn_0123456789abcdef0123456789abcdef"
	const databaseID = "0123456789abcdef0123456789abcdef"

	s.Run("success: 204 when credentials validate", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, apiKey, databaseID).Return(nil)

		body := map[string]any{"api_key": apiKey, "database_id": databaseID}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/notion", body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for a malformed API key", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, "bogus", databaseID).
			Return(errs.ErrInvalidAPIKeyFormat)

		body := map[string]any{"api_key": "bogus", "database_id": databaseID}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/notion", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "API 키 형식이 올바르지 않습니다.")
	})

	s.Run("error: 400 for a malformed database id", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, apiKey, "not-a-database").
			Return(errs.ErrInvalidDatabaseIDFormat)

		body := map[string]any{"api_key": apiKey, "database_id": "not-a-database"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/notion", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "데이터베이스 ID 형식이 올바르지 않습니다.")
	})

	s.Run("error: 400 when required fields are missing", func() {
		body := map[string]any{"api_key": apiKey}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/notion", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *SettingsHandlerTestSuite) TestGet() {
	s.Run("success: masked settings for a connected user", func() {
		s.mockQueries.EXPECT().GetNotionSettings(gomock.Any(), s.userID).
			Return(&queries.NotionSettingsView{
				Connected:    true,
				APIKeyMasked: strings.Repeat("•", 12),
				DatabaseID:   "01234567-89ab-cdef-0123-456789abcdef",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/notion", nil, "")

		var response queries.NotionSettingsView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Connected)
		s.Equal(strings.Repeat("•", 12), response.APIKeyMasked)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().GetNotionSettings(gomock.Any(), s.userID).Return(nil, assert.AnError)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/notion", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *SettingsHandlerTestSuite) TestTestConnection() {
	const apiKey = "ntn_0123456789abcdef0123456789abcdef"
	const databaseID = "0123456789abcdef0123456789abcdef"

	s.Run("success: probes with explicit credentials", func() {
		s.mockCommands.EXPECT().TestConnection(gomock.Any(), s.userID, apiKey, databaseID).
			Return(&commands.TestConnectionResult{
				Success:      true,
				Message:      "노션 데이터베이스에 연결되었습니다.",
				DatabaseName: "견적서 관리",
			}, nil)

		body := map[string]any{"api_key": apiKey, "database_id": databaseID}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/settings/notion/test", body, "")

		var response commands.TestConnectionResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("견적서 관리", response.DatabaseName)
	})

	s.Run("success: empty body falls back to stored credentials", func() {
		s.mockCommands.EXPECT().TestConnection(gomock.Any(), s.userID, "", "").
			Return(&commands.TestConnectionResult{Success: true, Message: "노션 데이터베이스에 연결되었습니다."}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/settings/notion/test", nil, "")

		var response commands.TestConnectionResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
	})

	s.Run("probe failures still answer 200 with a failed result", func() {
		s.mockCommands.EXPECT().TestConnection(gomock.Any(), s.userID, apiKey, databaseID).
			Return(&commands.TestConnectionResult{Success: false, Message: "API 키가 유효하지 않습니다."}, nil)

		body := map[string]any{"api_key": apiKey, "database_id": databaseID}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/settings/notion/test", body, "")

		var response commands.TestConnectionResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Success)
	})

	s.Run("error: 400 when nothing is configured", func() {
		s.mockCommands.EXPECT().TestConnection(gomock.Any(), s.userID, "", "").
			Return(nil, errs.ErrNotionNotConfigured)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/settings/notion/test", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "노션 연동이 설정되지 않았습니다.")
	})
}
