package api

import (
	"errors"
	"net/http"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// ShareHandler serves quotes through their public share links. No auth: the
// token itself is the capability.
type ShareHandler struct {
	quoteCommands commands.QuoteCommands
}

func NewShareHandler(quoteCommands commands.QuoteCommands) *ShareHandler {
	return &ShareHandler{
		quoteCommands: quoteCommands,
	}
}

// @Summary View shared quote
// @Description View a quote via its share link; the first view marks it VIEWED
// @Tags share
// @Produce json
// @Param shareId path string true "Share token"
// @Success 200 {object} queries.SharedQuoteView
// @Failure 404 {object} map[string]string
// @Router /share/{shareId} [get]
func (h *ShareHandler) View(c *gin.Context) {
	shareID := c.Param("shareId")
	if len(shareID) != quote.ShareTokenLength {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	view, err := h.quoteCommands.ViewShared(c.Request.Context(), shareID)
	if err != nil {
		if errors.Is(err, errs.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}
