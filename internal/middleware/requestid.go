package middleware

import (
	"time" // Request duration

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request ids
	"github.com/sirupsen/logrus" // Logging library
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns a request id (keeping a client supplied one) and logs every request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString() // Replace missing or malformed ids
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"request_id": id,                         // Correlation id
			"method":     c.Request.Method,           // HTTP method
			"path":       c.FullPath(),               // Route pattern
			"status":     c.Writer.Status(),          // Response status
			"duration":   time.Since(start).String(), // Handling time
		}
		if userID, ok := UserID(c); ok {
			fields["user_id"] = userID
		}
		logrus.WithFields(fields).Info("HTTP request")
	}
}
