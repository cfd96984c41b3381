package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "http response time.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"route"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "http requests by code, method and route"},
		[]string{"code", "method", "route"},
	)

	leadRelays = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "lead_relays_total", Help: "lead relays by outcome"},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequests,
		leadRelays,
	)
}
