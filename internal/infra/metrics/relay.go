package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(otpDetectedTotal, relayRepliesTotal) }

var otpDetectedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "otp_detected_total",
		Help: "OTPs detected in group messages, labeled by application.",
	},
	[]string{"application"},
)

var relayRepliesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "relay_replies_total",
		Help: "Messages the relay posted to the group.",
	},
	[]string{"kind", "status"}, // kind: 'local', 'remote'; status: 'sent', 'failed'
)

func IncOTPDetected(application string) {
	otpDetectedTotal.WithLabelValues(norm(application)).Inc()
}

func IncRelayReply(kind, status string) {
	relayRepliesTotal.WithLabelValues(norm(kind), norm(status)).Inc()
}
