package sched

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/infra/logging"
	"telegram-otp-relay/internal/infra/metrics"
	"telegram-otp-relay/internal/usecase"
)

// SuccessPoller drives the feed-to-group forwarding loop. The first tick
// fires after firstDelay, never immediately, and a failed tick is logged and
// absorbed; only context cancellation stops the loop.
type SuccessPoller struct {
	interval    time.Duration
	firstDelay  time.Duration
	tickTimeout time.Duration
	forwardUC   usecase.ForwardUseCase
	stats       *usecase.RelayStats
	log         *zerolog.Logger
}

func NewSuccessPoller(
	interval, firstDelay, tickTimeout time.Duration,
	forwardUC usecase.ForwardUseCase,
	stats *usecase.RelayStats,
	logger *zerolog.Logger,
) *SuccessPoller {
	compLog := logger.With().Str("component", "SuccessPoller").Logger()
	return &SuccessPoller{
		interval:    interval,
		firstDelay:  firstDelay,
		tickTimeout: tickTimeout,
		forwardUC:   forwardUC,
		stats:       stats,
		log:         &compLog,
	}
}

func (p *SuccessPoller) Run(ctx context.Context) error {
	p.log.Info().
		Dur("interval", p.interval).
		Dur("first_delay", p.firstDelay).
		Msg("Starting success-numbers poller")

	first := time.NewTimer(p.firstDelay)
	defer first.Stop()
	select {
	case <-ctx.Done():
		p.log.Info().Msg("Stopping success-numbers poller")
		return ctx.Err()
	case <-first.C:
		p.runTick(ctx)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("Stopping success-numbers poller")
			return ctx.Err()
		case <-ticker.C:
			p.runTick(ctx)
		}
	}
}

// runTick executes one fetch-and-forward cycle under a bounded deadline so a
// hung remote endpoint cannot stall the schedule.
func (p *SuccessPoller) runTick(ctx context.Context) {
	runID := uuid.NewString()
	tickCtx := logging.WithRunID(ctx, runID)
	if p.tickTimeout > 0 {
		var cancel context.CancelFunc
		tickCtx, cancel = context.WithTimeout(tickCtx, p.tickTimeout)
		defer cancel()
	}
	log := logging.With(tickCtx, p.log)

	start := time.Now()
	sent, err := p.forwardUC.ForwardNew(tickCtx)
	elapsed := time.Since(start)

	status := "ok"
	note := "ok"
	if err != nil {
		status = "error"
		note = err.Error()
		log.Error().Err(err).Int("forwarded", sent).Msg("poll tick failed")
	} else if sent > 0 {
		log.Info().Int("forwarded", sent).Dur("took", elapsed).Msg("poll tick complete")
	}
	metrics.ObservePollTick(status, int(elapsed.Milliseconds()))
	p.stats.RecordTick(time.Now(), note)
}
