package middleware

import (
	"log/slog"
	"net/http"

	"genesis-storefront/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public httperr.Response attached by a
// handler. Handlers that already wrote a body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

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

		status := c.Writer.Status()
		switch {
		case status < http.StatusBadRequest && status != http.StatusOK:
			c.Writer.WriteHeaderNow()
		case status >= http.StatusBadRequest:
			resp := httperr.Response{Status: status}
			resp.Error.Message = http.StatusText(status)
			c.JSON(status, resp)
		default:
			// A handler returned without answering.
			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.JSON(http.StatusInternalServerError, resp)
		}
	}
}

// CustomRecovery turns a panic into a 500 and logs it with the request id.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
