package telegram

import (
	"context"
	"log"
	"time"

	"telegram-otp-relay/internal/domain/ports/adapter"
)

var _ adapter.TelegramBotAdapter = (*NoopBotAdapter)(nil)

// NoopBotAdapter implements adapter.TelegramBotAdapter for local/dev testing.
// It logs messages instead of sending real Telegram messages.
type NoopBotAdapter struct{}

// NewNoopBotAdapter constructs the noop adapter.
func NewNoopBotAdapter() *NoopBotAdapter {
	return &NoopBotAdapter{}
}

// SendMessage logs the message and simulates small delay.
func (b *NoopBotAdapter) SendMessage(ctx context.Context, chatID int64, text string, mode adapter.ParseMode) error {
	// Simulate slight processing time and respect ctx
	select {
	case <-time.After(100 * time.Millisecond):
		// proceed
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Printf("[noop-telegram] To chat %d (%s): %s\n", chatID, modeLabel(mode), text)
	return nil
}

func (b *NoopBotAdapter) SendButtons(ctx context.Context, chatID int64, text string, mode adapter.ParseMode, rows [][]adapter.InlineButton) error {
	// Simulate slight processing time and respect ctx
	select {
	case <-time.After(100 * time.Millisecond):
		// proceed
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Printf("[noop-telegram] To chat %d (%s): %s [buttons: %v]\n", chatID, modeLabel(mode), text, rows)
	return nil
}

func modeLabel(mode adapter.ParseMode) string {
	if mode == adapter.ParseModePlain {
		return "plain"
	}
	return string(mode)
}
