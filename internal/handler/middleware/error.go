package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"fitbook-storefront/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public httperr.Response attached to the context.
// Handlers that already wrote a body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if !ge.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ge.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		// AbortWithStatus などでステータスだけ決まっている場合
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

// CustomRecovery turns a panic into a 500 with the generic message. The panic value only goes to the log.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			attrs := []any{
				"panic", fmt.Sprint(rec),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			}
			if id := GetRequestID(c); id != "" {
				attrs = append(attrs, "request_id", id)
			}
			if visitorID, ok := GetVisitorID(c); ok {
				attrs = append(attrs, "visitor_id", visitorID)
			}
			logger.Error("Recovered from panic", attrs...)

			c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
