package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(seenStoreSize, seenMarksTotal) }

var seenStoreSize = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "seen_store_size",
		Help: "Record ids held by the seen store.",
	},
)

var seenMarksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "seen_marks_total",
		Help: "MarkSeen calls, labeled by result.",
	},
	[]string{"result"}, // 'new', 'duplicate', 'error'
)

func SetSeenStoreSize(n int) { seenStoreSize.Set(float64(n)) }

func IncSeenMark(result string) { seenMarksTotal.WithLabelValues(norm(result)).Inc() }
