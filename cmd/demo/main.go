// Offline demo: runs the relay pipeline against a canned feed and the noop
// Telegram adapter. No network, no tokens; useful to eyeball the exact
// messages the bot would send.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/application"
	"telegram-otp-relay/internal/domain/model"
	tele "telegram-otp-relay/internal/infra/adapters/telegram"
	"telegram-otp-relay/internal/infra/memory"
	"telegram-otp-relay/internal/usecase"
)

// cannedFeed serves a fixed set of success records in place of the remote API.
type cannedFeed struct {
	records   []model.SuccessNumber
	countries map[string]string
}

func (f *cannedFeed) FetchRecent(ctx context.Context, limit int, after time.Time) ([]model.SuccessNumber, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return f.records[:limit], nil
}

func (f *cannedFeed) Count(ctx context.Context) (int, error) { return len(f.records), nil }

func (f *cannedFeed) PhoneCountry(ctx context.Context, number string) (string, error) {
	if c, ok := f.countries[number]; ok {
		return c, nil
	}
	return "Unknown", nil
}

func main() {
	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	logger := zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	ctx := context.Background()

	session, err := model.NewRelaySession(-1001234567890)
	if err != nil {
		logger.Fatal().Err(err).Msg("session")
	}
	stats := usecase.NewRelayStats()
	seen := memory.NewSeenRepo()
	bot := tele.NewNoopBotAdapter()

	feed := &cannedFeed{
		records: []model.SuccessNumber{
			{ID: 101, PhoneNumber: "+8801712345678", OTPCode: "443311", Service: "WhatsApp", Country: "Bangladesh", ReceivedAt: "2025-03-12T06:03:05Z", FullMessage: "Your WhatsApp code is 443311"},
			{ID: 102, PhoneNumber: "+989121234567", OTPCode: "90210", Service: "Telegram", ReceivedAt: "2025-03-12T06:04:41Z", FullMessage: "Telegram code: 90210"},
		},
		countries: map[string]string{"+8801712345678": "Bangladesh"},
	}

	relayUC := usecase.NewRelayUseCase(feed, stats, &logger)
	statusUC := usecase.NewStatusUseCase(feed, seen, session, stats, &logger)
	facade := application.NewBotFacade(relayUC, statusUC, session)

	// 1. A group message carrying an OTP triggers a local announcement.
	title := "+8801712345678 Rented"
	for _, text := range []string{"Your WhatsApp code is 443311", "good morning"} {
		reply, ok := relayUC.HandleGroupMessage(ctx, title, text)
		if !ok {
			logger.Info().Str("text", text).Msg("no passcode detected")
			continue
		}
		fmt.Printf("\n--- local announcement ---\n%s\n\n", reply)
	}

	// 2. The forwarder delivers the canned feed through the noop bot.
	forwardUC := usecase.NewForwardUseCase(feed, seen, bot, session, stats, 50,
		"https://t.me/example_bot", "https://t.me/example_group", &logger)
	sent, err := forwardUC.ForwardNew(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("forward")
	}
	logger.Info().Int("sent", sent).Msg("first forward pass")

	// 3. A second pass forwards nothing; every id is already marked seen.
	sent, err = forwardUC.ForwardNew(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("forward")
	}
	logger.Info().Int("sent", sent).Msg("second forward pass")

	// 4. What /start and /status would answer.
	startText, _ := facade.HandleStart(ctx)
	statusText, _ := facade.HandleStatus(ctx)
	fmt.Printf("\n--- /start ---\n%s\n\n--- /status ---\n%s\n", startText, statusText)
}
