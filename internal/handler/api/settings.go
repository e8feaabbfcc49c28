package api

import (
	"errors"
	"net/http"

	reqdto "quoteshare/internal/handler/dto/request"
	"quoteshare/internal/handler/middleware"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/commands"
	"quoteshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	quoteQueries     queries.QuoteQueries
}

func NewSettingsHandler(settingsCommands commands.SettingsCommands, quoteQueries queries.QuoteQueries) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: settingsCommands,
		quoteQueries:     quoteQueries,
	}
}

// @Summary Update Notion settings
// @Description Validate and store the user's Notion integration credentials
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.UpdateNotionSettingsRequest true "Notion settings"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /settings/notion [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.UpdateNotionSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.settingsCommands.Update(c.Request.Context(), userID, req.APIKey, req.DatabaseID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidAPIKeyFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "API 키 형식이 올바르지 않습니다."})
		case errors.Is(err, errs.ErrInvalidDatabaseIDFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "데이터베이스 ID 형식이 올바르지 않습니다."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get Notion settings
// @Description Get the stored integration state; the API key is never returned
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.NotionSettingsView
// @Router /settings/notion [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.quoteQueries.GetNotionSettings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Test Notion connection
// @Description Probe the database with given or stored credentials
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.TestConnectionRequest false "Credentials override"
// @Success 200 {object} commands.TestConnectionResult
// @Failure 400 {object} map[string]string
// @Router /settings/notion/test [post]
func (h *SettingsHandler) TestConnection(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.TestConnectionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	result, err := h.settingsCommands.TestConnection(c.Request.Context(), userID, req.APIKey, req.DatabaseID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotionNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"error": "노션 연동이 설정되지 않았습니다."})
		case errors.Is(err, errs.ErrInvalidDatabaseIDFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "데이터베이스 ID 형식이 올바르지 않습니다."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
