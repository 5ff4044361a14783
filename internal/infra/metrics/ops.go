package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(opsRequestsTotal) }

var opsRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ops_requests_total",
		Help: "Requests served by the ops HTTP surface.",
	},
	[]string{"path", "code"},
)

func IncOpsRequest(path string, code int) {
	opsRequestsTotal.WithLabelValues(path, strconv.Itoa(code)).Inc()
}
