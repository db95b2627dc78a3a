package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/metrics"
)

// RequestID injects a request id into the request context so FromCtx picks
// it up in every layer below the handler.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), reqID))
		c.Writer.Header().Set("X-Request-ID", reqID)

		c.Next()
	}
}

// RequestLogger logs every request after the handler chain completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := metrics.StartTimer()
		log := FromCtx(c.Request.Context())

		c.Next()

		metrics.Requests.Inc()
		log.Info("incoming request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("duration_ms", timer.Duration()),
		)
	}
}
