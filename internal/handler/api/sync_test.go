//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"quoteshare/internal/handler/api"
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

type SyncHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSyncCommands
	mockQueries  *queriesmock.MockQuoteQueries
	handler      *api.SyncHandler
	userID       uuid.UUID
}

func (s *SyncHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSyncCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewSyncHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	authed.POST("/sync", s.handler.Run)
	authed.GET("/sync/status", s.handler.Status)
}

func (s *SyncHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSyncHandlerSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}

func (s *SyncHandlerTestSuite) TestRun() {
	syncedAt := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	s.Run("success: forwards the force flag and returns the result", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), s.userID, true).
			Return(&commands.SyncResult{
				Success:      true,
				Message:      "동기화 완료: 2개 추가, 1개 업데이트",
				NewCount:     2,
				UpdatedCount: 1,
				TotalCount:   3,
				SyncedAt:     syncedAt,
			})

		body := map[string]any{"force": true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync", body, "")

		var response commands.SyncResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal(2, response.NewCount)
		s.Equal(1, response.UpdatedCount)
	})

	s.Run("success: an empty body defaults to a regular run", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), s.userID, false).
			Return(&commands.SyncResult{Success: true, Message: "동기화할 견적서가 없습니다.", SyncedAt: syncedAt})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync", nil, "")

		var response commands.SyncResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
	})

	s.Run("sync failures still answer 200 with a failed result", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), s.userID, false).
			Return(&commands.SyncResult{Success: false, Message: "노션 연동이 설정되지 않았습니다. 설정에서 API 키와 데이터베이스 ID를 등록해주세요.", SyncedAt: syncedAt})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync", nil, "")

		var response commands.SyncResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Success)
		s.Contains(response.Message, "노션 연동이 설정되지 않았습니다")
	})
}

func (s *SyncHandlerTestSuite) TestStatus() {
	s.Run("success: reports connection state and quote count", func() {
		lastSync := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().GetSyncStatus(gomock.Any(), s.userID).
			Return(&queries.SyncStatusView{Connected: true, LastSyncAt: &lastSync, QuoteCount: 12}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sync/status", nil, "")

		var response queries.SyncStatusView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Connected)
		s.Equal(int64(12), response.QuoteCount)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().GetSyncStatus(gomock.Any(), s.userID).Return(nil, assert.AnError)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sync/status", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
