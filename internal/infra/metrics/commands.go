package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(botCommandsTotal) }

var botCommandsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bot_commands_total",
		Help: "Bot commands received, labeled by command.",
	},
	[]string{"command"},
)

func IncBotCommand(command string) {
	botCommandsTotal.WithLabelValues(norm(command)).Inc()
}
