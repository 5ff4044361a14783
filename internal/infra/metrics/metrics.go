// File: internal/infra/metrics/metrics.go
// Package metrics holds the Prometheus collectors for the relay. Each file
// declares the collectors of one concern and enqueues them via register();
// main calls MustRegister() once after config is loaded.
package metrics

import "strings"

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
