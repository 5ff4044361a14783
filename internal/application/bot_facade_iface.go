package application

import (
	"context"

	"telegram-otp-relay/internal/domain/ports/adapter"
)

// ---- small interface to decouple transports from the concrete facade ----
// Facade is the surface the Telegram command router calls into. Using an
// interface enables transport tests to pass in light-weight mocks.
type Facade interface {
	// HandleStart answers /start with a static description of the bot.
	HandleStart(ctx context.Context) (string, adapter.ParseMode)
	// HandleStatus answers /status with uptime and live counters.
	HandleStatus(ctx context.Context) (string, adapter.ParseMode)
	// HandleHelp answers /help with the command list.
	HandleHelp(ctx context.Context) (string, adapter.ParseMode)
	// HandleGroupText runs a plain text message through the OTP pipeline.
	// Messages from chats other than the configured group are ignored and
	// return ok=false, as do messages carrying no OTP.
	HandleGroupText(ctx context.Context, chatID int64, chatTitle, text string) (reply string, mode adapter.ParseMode, ok bool)
}
