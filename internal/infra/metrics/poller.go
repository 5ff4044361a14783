package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(pollTicksTotal, pollTickLatencyMs, forwardedTotal, dedupedTotal)
}

var pollTicksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "poll_ticks_total",
		Help: "Completed poll ticks, labeled by outcome.",
	},
	[]string{"status"}, // 'ok', 'error'
)

var pollTickLatencyMs = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "poll_tick_latency_ms",
		Help:    "Poll tick duration distribution in milliseconds.",
		Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
	},
)

var forwardedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "success_numbers_forwarded_total",
		Help: "Success-number records forwarded to the group.",
	},
)

var dedupedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "success_numbers_deduped_total",
		Help: "Fetched records skipped because their id was already seen.",
	},
)

func ObservePollTick(status string, latencyMs int) {
	pollTicksTotal.WithLabelValues(norm(status)).Inc()
	pollTickLatencyMs.Observe(float64(latencyMs))
}

func AddForwarded(n int) { forwardedTotal.Add(float64(n)) }
func AddDeduped(n int)   { dedupedTotal.Add(float64(n)) }
