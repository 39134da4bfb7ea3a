package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/nbpstat/internal/domain/dto"
)

// ErrorHandler turns errors attached with c.Error into a JSON 500 response
// when no handler has written a body yet.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	last := c.Errors.Last()
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError records err on the context and aborts with a standardized
// error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
