package middleware

import (
	"github.com/arkamaulana/eventhub/internal/metrics"
	"github.com/gin-gonic/gin"
)

func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("metrics", m)
		c.Next()
	}
}

func GetMetrics(c *gin.Context) *metrics.Metrics {
	m, exists := c.Get("metrics")
	if !exists {
		return nil
	}
	return m.(*metrics.Metrics)
}
