// File: internal/usecase/relay_uc.go
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/domain/model"
	"telegram-otp-relay/internal/domain/ports/adapter"
	"telegram-otp-relay/internal/infra/logging"
	"telegram-otp-relay/internal/infra/metrics"
	"telegram-otp-relay/internal/otp"
)

// Compile-time check
var _ RelayUseCase = (*relayUC)(nil)

// RelayUseCase turns messages posted in the monitored group into local OTP
// announcements.
type RelayUseCase interface {
	// HandleGroupMessage scans one group message for an OTP. When one is
	// found it returns the rendered announcement and true; otherwise it
	// returns "" and false. Lookup failures degrade, they never fail the
	// message.
	HandleGroupMessage(ctx context.Context, chatTitle, text string) (string, bool)
}

type relayUC struct {
	api   adapter.SuccessNumbersAPI
	stats *RelayStats
	log   *zerolog.Logger
}

func NewRelayUseCase(api adapter.SuccessNumbersAPI, stats *RelayStats, logger *zerolog.Logger) *relayUC {
	return &relayUC{api: api, stats: stats, log: logger}
}

func (r *relayUC) HandleGroupMessage(ctx context.Context, chatTitle, text string) (string, bool) {
	defer logging.TraceDuration(r.log, "RelayUC.HandleGroupMessage")()

	code, ok := otp.ExtractOTP(text)
	if !ok {
		return "", false
	}

	ext := model.Extraction{
		OTP:         code,
		Application: otp.ExtractApplicationName(text),
		PhoneNumber: r.phoneFor(chatTitle, text),
	}

	alert := otp.LocalAlert{
		Application: ext.Application,
		Number:      otp.FormatPhoneNumber(ext.PhoneNumber),
		OTP:         ext.OTP,
		Country:     r.countryFor(ctx, ext.PhoneNumber),
		DetectedAt:  time.Now().UTC(),
		FullText:    text,
	}

	metrics.IncOTPDetected(ext.Application)
	r.stats.RecordDetection()
	r.log.Info().
		Str("application", ext.Application).
		Str("number", otp.MaskNumber(ext.PhoneNumber)).
		Msg("otp detected in group message")
	return alert.Render(), true
}

// phoneFor prefers a number embedded in the chat title over one in the
// message body. Group titles carry the rented number in this deployment.
func (r *relayUC) phoneFor(chatTitle, text string) string {
	if number, ok := otp.ExtractPhoneNumber(chatTitle); ok {
		return number
	}
	if number, ok := otp.ExtractPhoneNumber(text); ok {
		return number
	}
	return "Unknown"
}

// countryFor resolves the country through the revenue API. Local messages
// never consult the static prefix table; that stays a feed-record fallback.
func (r *relayUC) countryFor(ctx context.Context, number string) string {
	if number == "Unknown" {
		return "Unknown"
	}
	country, err := r.api.PhoneCountry(ctx, number)
	if err != nil {
		r.log.Warn().Err(err).Msg("phone-country lookup failed")
		return "Unknown"
	}
	return country
}
