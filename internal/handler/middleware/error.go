package middleware

import (
	"log/slog"
	"net/http"

	"laundromat-api/internal/handler/httperr"
	"laundromat-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs every error recorded by httperr with its kind, and answers
// with the last public response when the handler has not written one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			logRequestError(c, err)
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func logRequestError(c *gin.Context, err *gin.Error) {
	status := c.Writer.Status()
	if resp, ok := err.Meta.(httperr.Response); ok {
		status = resp.Status
	}

	attrs := []any{
		"request_id", GetRequestID(c),
		"path", c.Request.URL.Path,
		"status", status,
		"kind", string(errs.KindOf(err.Err)),
		"error", err.Err.Error(),
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", append(attrs, "stack", errs.ExtractStackLines(err.Err, 5))...)
		return
	}
	slog.Warn("request rejected", attrs...)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
