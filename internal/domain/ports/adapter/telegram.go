// File: internal/domain/ports/adapter/telegram.go
package adapter

import "context"

type InlineButton struct {
	Text string
	Data string
	URL  string
}

// ParseMode selects the Telegram formatting applied to an outbound message.
// MarkdownV2 requires the caller to escape reserved punctuation first.
type ParseMode string

const (
	ParseModePlain      ParseMode = ""
	ParseModeMarkdown   ParseMode = "Markdown"
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
)

type TelegramBotAdapter interface {
	SendMessage(ctx context.Context, chatID int64, text string, mode ParseMode) error
	SendButtons(ctx context.Context, chatID int64, text string, mode ParseMode, rows [][]InlineButton) error
}
