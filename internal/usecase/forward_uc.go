// File: internal/usecase/forward_uc.go
package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/domain/model"
	"telegram-otp-relay/internal/domain/ports/adapter"
	"telegram-otp-relay/internal/domain/ports/repository"
	"telegram-otp-relay/internal/infra/logging"
	"telegram-otp-relay/internal/infra/metrics"
	"telegram-otp-relay/internal/otp"
)

// Compile-time check
var _ ForwardUseCase = (*forwardUC)(nil)

// ForwardUseCase drains the success-numbers feed into the configured group.
type ForwardUseCase interface {
	// ForwardNew fetches the newest feed records, drops ids already seen this
	// run, and forwards the rest sequentially in fetch order. Every new id is
	// marked seen before the first send, so a record whose delivery fails is
	// dropped rather than duplicated. Returns the number of records forwarded.
	ForwardNew(ctx context.Context) (int, error)
}

type forwardUC struct {
	api     adapter.SuccessNumbersAPI
	seen    repository.SeenRepository
	bot     adapter.TelegramBotAdapter
	session *model.RelaySession
	stats   *RelayStats
	limit   int
	buttons [][]adapter.InlineButton
	log     *zerolog.Logger
}

func NewForwardUseCase(
	api adapter.SuccessNumbersAPI,
	seen repository.SeenRepository,
	bot adapter.TelegramBotAdapter,
	session *model.RelaySession,
	stats *RelayStats,
	limit int,
	botURL, groupURL string,
	logger *zerolog.Logger,
) *forwardUC {
	return &forwardUC{
		api:     api,
		seen:    seen,
		bot:     bot,
		session: session,
		stats:   stats,
		limit:   limit,
		buttons: linkButtons(botURL, groupURL),
		log:     logger,
	}
}

func (f *forwardUC) ForwardNew(ctx context.Context) (int, error) {
	defer logging.TraceDuration(f.log, "ForwardUC.ForwardNew")()

	records, err := f.api.FetchRecent(ctx, f.limit, f.session.StartedAt)
	if err != nil {
		return 0, fmt.Errorf("fetch success numbers: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	fresh := make([]model.SuccessNumber, 0, len(records))
	for _, rec := range records {
		if rec.ID == 0 {
			f.log.Debug().Msg("skipping feed record without id")
			continue
		}
		wasNew, err := f.seen.MarkSeen(ctx, rec.Key())
		if err != nil {
			metrics.IncSeenMark("error")
			return 0, fmt.Errorf("mark record %s seen: %w", rec.Key(), err)
		}
		if !wasNew {
			metrics.IncSeenMark("duplicate")
			metrics.AddDeduped(1)
			f.stats.RecordDeduped(1)
			continue
		}
		metrics.IncSeenMark("new")
		fresh = append(fresh, rec)
	}
	if n, err := f.seen.Len(ctx); err == nil {
		metrics.SetSeenStoreSize(n)
	}

	sent := 0
	for _, rec := range fresh {
		if err := f.forward(ctx, rec); err != nil {
			metrics.IncRelayReply("remote", "failed")
			f.stats.RecordForwarded(sent)
			return sent, fmt.Errorf("forward record %s: %w", rec.Key(), err)
		}
		metrics.IncRelayReply("remote", "sent")
		metrics.AddForwarded(1)
		sent++
	}
	f.stats.RecordForwarded(sent)
	if sent > 0 {
		f.log.Info().Int("forwarded", sent).Int("fetched", len(records)).Msg("forwarded new success numbers")
	}
	return sent, nil
}

func (f *forwardUC) forward(ctx context.Context, rec model.SuccessNumber) error {
	country := rec.Country
	if country == "" {
		country = otp.CountryFromPrefix(rec.PhoneNumber)
	}
	alert := otp.SuccessAlert{
		Service:    orNA(rec.Service),
		Number:     otp.MaskNumber(rec.PhoneNumber),
		OTP:        orNA(rec.OTPCode),
		Country:    country,
		ReceivedAt: orNA(rec.ReceivedAt),
		FullText:   orNA(rec.FullMessage),
	}
	return f.bot.SendButtons(ctx, f.session.ChatID, alert.Render(), adapter.ParseModeMarkdownV2, f.buttons)
}

// linkButtons builds the single promo row under every forwarded record.
// Either link may be empty; an empty row collapses to no keyboard at all.
func linkButtons(botURL, groupURL string) [][]adapter.InlineButton {
	var row []adapter.InlineButton
	if botURL != "" {
		row = append(row, adapter.InlineButton{Text: "Bot", URL: botURL})
	}
	if groupURL != "" {
		row = append(row, adapter.InlineButton{Text: "Group", URL: groupURL})
	}
	if len(row) == 0 {
		return nil
	}
	return [][]adapter.InlineButton{row}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
