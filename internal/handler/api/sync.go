package api

import (
	"net/http"

	reqdto "quoteshare/internal/handler/dto/request"
	"quoteshare/internal/handler/middleware"
	"quoteshare/internal/usecase/commands"
	"quoteshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncCommands commands.SyncCommands
	quoteQueries queries.QuoteQueries
}

func NewSyncHandler(syncCommands commands.SyncCommands, quoteQueries queries.QuoteQueries) *SyncHandler {
	return &SyncHandler{
		syncCommands: syncCommands,
		quoteQueries: quoteQueries,
	}
}

// @Summary Run sync
// @Description Pull quotes from the connected Notion database
// @Tags sync
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SyncRequest false "Sync options"
// @Success 200 {object} commands.SyncResult
// @Router /sync [post]
func (h *SyncHandler) Run(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.SyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	// The orchestrator folds every failure into the result; the transport
	// answer is always 200 with a success flag.
	result := h.syncCommands.Run(c.Request.Context(), userID, req.Force)
	c.JSON(http.StatusOK, result)
}

// @Summary Get sync status
// @Description Report connection state, last sync time and quote count
// @Tags sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.SyncStatusView
// @Router /sync/status [get]
func (h *SyncHandler) Status(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	status, err := h.quoteQueries.GetSyncStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, status)
}
