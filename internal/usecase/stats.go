// File: internal/usecase/stats.go
package usecase

import (
	"sync"
	"time"
)

// RelayStats aggregates live counters shared by the relay paths. The bot
// facade and the ops API read it; the use cases and the poller write it.
// Safe for concurrent use.
type RelayStats struct {
	mu           sync.Mutex
	detected     int64
	forwarded    int64
	deduped      int64
	lastTickAt   time.Time
	lastTickNote string
}

// StatsView is a point-in-time copy of the counters.
type StatsView struct {
	Detected     int64
	Forwarded    int64
	Deduped      int64
	LastTickAt   time.Time
	LastTickNote string
}

func NewRelayStats() *RelayStats { return &RelayStats{} }

// RecordDetection counts one OTP found in the monitored group.
func (s *RelayStats) RecordDetection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detected++
}

// RecordForwarded counts records delivered from the success-numbers feed.
func (s *RelayStats) RecordForwarded(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forwarded += int64(n)
}

// RecordDeduped counts feed records dropped as already seen.
func (s *RelayStats) RecordDeduped(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deduped += int64(n)
}

// RecordTick notes the outcome of the latest poll tick.
func (s *RelayStats) RecordTick(at time.Time, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTickAt = at
	s.lastTickNote = note
}

// View returns a consistent snapshot of all counters.
func (s *RelayStats) View() StatsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsView{
		Detected:     s.detected,
		Forwarded:    s.forwarded,
		Deduped:      s.deduped,
		LastTickAt:   s.lastTickAt,
		LastTickNote: s.lastTickNote,
	}
}
