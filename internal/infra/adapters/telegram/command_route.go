package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-otp-relay/internal/infra/metrics"
)

type commandHandler func(ctx context.Context, message *tgbotapi.Message) error

// commandRoutes defines all available bot commands and their handlers.
// Commands are answered wherever they were issued; only plain group text is
// fenced to the configured chat.
func (r *RealTelegramBotAdapter) commandRoutes() map[string]commandHandler {
	return map[string]commandHandler{
		"start":  r.handleStartCommand,
		"status": r.handleStatusCommand,
		"help":   r.handleHelpCommand,
	}
}

// handleStartCommand handles the /start command.
func (r *RealTelegramBotAdapter) handleStartCommand(ctx context.Context, message *tgbotapi.Message) error {
	metrics.IncBotCommand("/start")
	text, mode := r.facade.HandleStart(ctx)
	return r.SendMessage(ctx, message.Chat.ID, text, mode)
}

// handleStatusCommand handles the /status command.
func (r *RealTelegramBotAdapter) handleStatusCommand(ctx context.Context, message *tgbotapi.Message) error {
	metrics.IncBotCommand("/status")
	text, mode := r.facade.HandleStatus(ctx)
	return r.SendMessage(ctx, message.Chat.ID, text, mode)
}

// handleHelpCommand provides a list of commands.
func (r *RealTelegramBotAdapter) handleHelpCommand(ctx context.Context, message *tgbotapi.Message) error {
	metrics.IncBotCommand("/help")
	text, mode := r.facade.HandleHelp(ctx)
	return r.SendMessage(ctx, message.Chat.ID, text, mode)
}

// handleGroupText feeds a plain text message through the detection pipeline
// and answers into the same chat when an OTP was found.
func (r *RealTelegramBotAdapter) handleGroupText(ctx context.Context, message *tgbotapi.Message) error {
	reply, mode, ok := r.facade.HandleGroupText(ctx, message.Chat.ID, message.Chat.Title, message.Text)
	if !ok {
		return nil
	}
	if err := r.SendMessage(ctx, message.Chat.ID, reply, mode); err != nil {
		metrics.IncRelayReply("local", "failed")
		return err
	}
	metrics.IncRelayReply("local", "sent")
	return nil
}
