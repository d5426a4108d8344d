package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bloomie-blog/cmd/api/trace"
	"bloomie-blog/cmd/internal/logger"
)

const headerRequestID = "X-Request-Id"

// RequestTrace assigns each inbound request an ID (honoring an incoming
// X-Request-Id header), stores it in the context, echoes it on the response,
// and logs the completed request with method, path, status and duration.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		c.Request = req.WithContext(trace.WithRequestID(req.Context(), requestID))
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": requestID,
		})
	}
}
