package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"telegram-otp-relay/internal/domain/model"
	"telegram-otp-relay/internal/domain/ports/adapter"
	"telegram-otp-relay/internal/usecase"
)

// BotFacade composes usecases into high-level bot replies.
// Keep the facade methods returning strings so the Telegram adapter just forwards them to the chat.
type BotFacade struct {
	RelayUC  usecase.RelayUseCase
	StatusUC usecase.StatusUseCase
	session  *model.RelaySession
}

var _ Facade = (*BotFacade)(nil)

// NewBotFacade constructs a facade from the provided usecases and the process
// session. The session carries the configured group id used to fence off
// messages from other chats.
func NewBotFacade(relayUC usecase.RelayUseCase, statusUC usecase.StatusUseCase, session *model.RelaySession) *BotFacade {
	return &BotFacade{
		RelayUC:  relayUC,
		StatusUC: statusUC,
		session:  session,
	}
}

// HandleStart returns the static banner. Matches the legacy reply verbatim.
func (b *BotFacade) HandleStart(ctx context.Context) (string, adapter.ParseMode) {
	return "🤖 OTP Fetcher is running.\n" +
		"It will monitor messages and send detected OTP notifications to the configured group.\n" +
		"Use /status to check uptime.", adapter.ParseModeMarkdown
}

// HandleStatus formats the live status report.
func (b *BotFacade) HandleStatus(ctx context.Context) (string, adapter.ParseMode) {
	rep := b.StatusUC.Report(ctx)

	var sb strings.Builder
	sb.WriteString("✅ Bot status: running\n")
	sb.WriteString(fmt.Sprintf("Uptime: %s\n", rep.Uptime.Truncate(time.Second)))
	sb.WriteString(fmt.Sprintf("Patterns loaded: %d\n", rep.PatternsLoaded))
	sb.WriteString(fmt.Sprintf("Seen this run: %d\n", rep.SeenThisRun))
	sb.WriteString(fmt.Sprintf("Forwarded: %d\n", rep.Forwarded))
	if rep.RemoteTotalKnown {
		sb.WriteString(fmt.Sprintf("Success numbers total: %d", rep.RemoteTotal))
	} else {
		sb.WriteString("Success numbers total: n/a")
	}
	return sb.String(), adapter.ParseModeMarkdown
}

// HandleHelp lists the available commands.
func (b *BotFacade) HandleHelp(ctx context.Context) (string, adapter.ParseMode) {
	return "Available commands:\n" +
		"/start - what this bot does\n" +
		"/status - uptime and relay counters\n" +
		"/help - this message", adapter.ParseModePlain
}

// HandleGroupText feeds one group message through the detection pipeline.
// Only the configured group is monitored; everything else is dropped here so
// no announcement can leak across chats.
func (b *BotFacade) HandleGroupText(ctx context.Context, chatID int64, chatTitle, text string) (string, adapter.ParseMode, bool) {
	if !b.session.OwnsChat(chatID) {
		return "", adapter.ParseModePlain, false
	}
	reply, ok := b.RelayUC.HandleGroupMessage(ctx, chatTitle, text)
	if !ok {
		return "", adapter.ParseModePlain, false
	}
	return reply, adapter.ParseModeMarkdown, true
}
