// File: internal/usecase/status_uc.go
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/domain/model"
	"telegram-otp-relay/internal/domain/ports/adapter"
	"telegram-otp-relay/internal/domain/ports/repository"
	"telegram-otp-relay/internal/infra/logging"
	"telegram-otp-relay/internal/otp"
)

// Compile-time check
var _ StatusUseCase = (*statusUC)(nil)

// StatusReport is the live snapshot behind /status and the ops stats API.
// RemoteTotalKnown is false when the revenue API could not be reached; the
// report is still served, the total just reads as unavailable.
type StatusReport struct {
	Uptime           time.Duration
	PatternsLoaded   int
	SeenThisRun      int
	RemoteTotal      int
	RemoteTotalKnown bool
	Detected         int64
	Forwarded        int64
	Deduped          int64
	LastTickAt       time.Time
	LastTickNote     string
}

// StatusUseCase reports runtime health without side effects.
type StatusUseCase interface {
	Report(ctx context.Context) StatusReport
}

type statusUC struct {
	api     adapter.SuccessNumbersAPI
	seen    repository.SeenRepository
	session *model.RelaySession
	stats   *RelayStats
	log     *zerolog.Logger
}

func NewStatusUseCase(
	api adapter.SuccessNumbersAPI,
	seen repository.SeenRepository,
	session *model.RelaySession,
	stats *RelayStats,
	logger *zerolog.Logger,
) *statusUC {
	return &statusUC{api: api, seen: seen, session: session, stats: stats, log: logger}
}

func (s *statusUC) Report(ctx context.Context) StatusReport {
	defer logging.TraceDuration(s.log, "StatusUC.Report")()

	view := s.stats.View()
	rep := StatusReport{
		Uptime:         s.session.Uptime(),
		PatternsLoaded: otp.PatternCount(),
		Detected:       view.Detected,
		Forwarded:      view.Forwarded,
		Deduped:        view.Deduped,
		LastTickAt:     view.LastTickAt,
		LastTickNote:   view.LastTickNote,
	}
	if n, err := s.seen.Len(ctx); err == nil {
		rep.SeenThisRun = n
	} else {
		s.log.Warn().Err(err).Msg("seen store size unavailable")
	}
	if total, err := s.api.Count(ctx); err == nil {
		rep.RemoteTotal = total
		rep.RemoteTotalKnown = true
	} else {
		s.log.Warn().Err(err).Msg("success-numbers total unavailable")
	}
	return rep
}
