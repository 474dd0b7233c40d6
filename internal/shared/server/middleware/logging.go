package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"plancompare-backend/internal/shared/metrics"
	"plancompare-backend/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	CategoryKey     = "category"
	ComparisonIDKey = "comparisonId"
)

// Logging emits a structured log per request and records request metrics.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), status, latency)

		telemetry.Info("request.complete", map[string]any{
			"request_id":    RequestIDFromContext(c),
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"route":         c.FullPath(),
			"status":        status,
			"duration_ms":   float64(latency.Microseconds()) / 1000.0,
			"user_id":       UserIDFromContext(c),
			"is_guest":      IsGuest(c),
			"category":      c.GetString(CategoryKey),
			"comparison_id": c.GetString(ComparisonIDKey),
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
		})
	}
}
