package api

import (
	"errors"
	"net/http"

	"quoteshare/internal/domain/quote"
	reqdto "quoteshare/internal/handler/dto/request"
	resdto "quoteshare/internal/handler/dto/response"
	"quoteshare/internal/handler/middleware"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/commands"
	"quoteshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quoteCommands commands.QuoteCommands
	quoteQueries  queries.QuoteQueries
}

func NewQuoteHandler(quoteCommands commands.QuoteCommands, quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteCommands: quoteCommands,
		quoteQueries:  quoteQueries,
	}
}

// @Summary List quotes
// @Description List the authenticated user's quotes
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.QuoteListResponse
// @Failure 401 {object} map[string]string
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quotes, err := h.quoteQueries.ListQuotes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteListResponse{Quotes: quotes, Total: len(quotes)})
}

// @Summary Get quote
// @Description Get one quote with its full detail
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} queries.QuoteDetailView
// @Failure 404 {object} map[string]string
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	detail, err := h.quoteQueries.GetQuote(c.Request.Context(), userID, quoteID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrQuoteNotFound), errors.Is(err, queries.ErrQuoteAccess):
			// Access denials look like missing quotes to avoid leaking existence
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary Regenerate share token
// @Description Replace the quote's share token; the old link stops working
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.ShareTokenResponse
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/share [post]
func (h *QuoteHandler) RegenerateShareToken(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	token, err := h.quoteCommands.RegenerateShareToken(c.Request.Context(), userID, quoteID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrQuoteNotFound), errors.Is(err, commands.ErrQuoteAccessDenied):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ShareTokenResponse{ShareID: token})
}

// @Summary Update quote status
// @Description Change the quote's status and mirror it to Notion best-effort
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body reqdto.UpdateQuoteStatusRequest true "Status update"
// @Success 200 {object} commands.StatusUpdateResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	var req reqdto.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.quoteCommands.UpdateStatus(c.Request.Context(), userID, quoteID, quote.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		case errors.Is(err, errs.ErrQuoteNotFound), errors.Is(err, commands.ErrQuoteAccessDenied):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
