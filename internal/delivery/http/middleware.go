package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ilindan-dev/channel-notifier/internal/logger"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
)

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it in the response.
// The id travels on the request context, so driver log records carry it too.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// requestLogger returns base annotated with the request id, if any.
func requestLogger(c *gin.Context, base zerolog.Logger) zerolog.Logger {
	return logger.FromContext(c.Request.Context(), base)
}
