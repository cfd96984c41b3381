package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeAccepted is recorded when the marketplace buys the lead
const OutcomeAccepted = "accepted"

// Collect records request counters and latency. The scrape endpoint itself is skipped.
func Collect() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.URL.Path == "/metrics" {
			return
		}

		// route template, not the raw path, to keep label cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := strconv.Itoa(c.Writer.Status())

		totalHttpRequests.WithLabelValues(code, c.Request.Method, route).Inc()
		responseTime.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ObserveRelay counts one relay by outcome (accepted or a relay error kind)
func ObserveRelay(outcome string) {
	leadRelays.WithLabelValues(outcome).Inc()
}

func Handler() http.Handler { return promhttp.Handler() }
