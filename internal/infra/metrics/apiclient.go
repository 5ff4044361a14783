package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(apiRequestsTotal, apiLatencyMs) }

var apiRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "successapi_requests_total",
		Help: "Requests to the success-numbers API, labeled by endpoint and result.",
	},
	[]string{"endpoint", "success"},
)

var apiLatencyMs = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "successapi_latency_ms",
		Help:    "Success-numbers API call latency distribution in milliseconds.",
		Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
	},
	[]string{"endpoint"},
)

func ObserveAPIRequest(endpoint string, success bool, latencyMs int) {
	apiRequestsTotal.WithLabelValues(norm(endpoint), strconv.FormatBool(success)).Inc()
	apiLatencyMs.WithLabelValues(norm(endpoint)).Observe(float64(latencyMs))
}
