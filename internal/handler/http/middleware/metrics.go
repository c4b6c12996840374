package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/metrics"
)

// Metrics records request counts, latencies and in-flight requests per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.ActiveRequests.Inc()
		start := time.Now()
		c.Next()
		metrics.ActiveRequests.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.HttpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HttpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
