package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-site/metrics"
	"github.com/yeremiapane/restaurant-site/utils"
)

// LoggerMiddleware logs each request and records it in m when m is set.
func LoggerMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		if m != nil {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			m.HTTPRequests.WithLabelValues(c.Request.Method, route, statusLabel(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(latency.Seconds())
		}

		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"status":  status,
			"latency": latency.String(),
			"client":  c.ClientIP(),
			"path":    path,
		})
		if status >= 500 {
			entry.Warn("request failed")
			return
		}
		entry.Info("request")
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
