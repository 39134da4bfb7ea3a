package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/nbpstat/internal/metrics"
)

// Metrics records the duration of every request, labelled by status code,
// method and matched route. Unmatched requests share the "unmatched" route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(strconv.Itoa(c.Writer.Status()), c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
