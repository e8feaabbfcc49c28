// Package httperr carries structured error responses through gin's error
// stack so the error middleware can render them after the handler chain
// unwinds.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint answers with: a flat user-facing
// message plus optional detail. Status travels out of band.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError renders the response and records the original error on the
// context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
