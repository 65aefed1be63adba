package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedEndpoint labels requests no route matched, so probes for random
// paths land in one series.
const unmatchedEndpoint = "unmatched"

// scrapePaths are not measured.
var scrapePaths = map[string]struct{}{
	"/metrics": {},
	"/health":  {},
}

// PrometheusMiddleware records request count, latency, in-flight gauge and
// response size per route template.
func PrometheusMiddleware() gin.HandlerFunc {
	m := Get()

	return func(c *gin.Context) {
		if _, skip := scrapePaths[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		m.HTTPRequestsInFlight.Inc()
		start := time.Now()
		c.Next()
		m.HTTPRequestsInFlight.Dec()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = unmatchedEndpoint
		}
		// gin reports -1 until a body is written
		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}
		m.RecordHTTPRequest(endpoint, c.Request.Method, c.Writer.Status(), time.Since(start), size)
	}
}

// PrometheusHandler serves the default registry
func PrometheusHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
