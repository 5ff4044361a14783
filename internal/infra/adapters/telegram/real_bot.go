package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/application"
	"telegram-otp-relay/internal/config"
	"telegram-otp-relay/internal/domain/ports/adapter"
)

var _ adapter.TelegramBotAdapter = (*RealTelegramBotAdapter)(nil)

// RealTelegramBotAdapter uses tgbotapi to poll updates and delegates to the
// BotFacade. It also implements the outbound adapter port used by the
// forwarder, so inbound and outbound traffic share one underlying client.
type RealTelegramBotAdapter struct {
	bot    *tgbotapi.BotAPI
	cfg    *config.BotConfig
	facade application.Facade

	updateWorkers int
	cancelPolling context.CancelFunc
	log           *zerolog.Logger
}

func NewRealTelegramBotAdapter(cfg *config.BotConfig, facade application.Facade, logger *zerolog.Logger) (*RealTelegramBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if facade == nil {
		return nil, errors.New("bot facade is nil")
	}
	// One worker keeps updates strictly in order. More are allowed via
	// config, at the cost of interleaved handling.
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	return &RealTelegramBotAdapter{
		bot:           bot,
		cfg:           cfg,
		facade:        facade,
		updateWorkers: workers,
		log:           logger,
	}, nil
}

func (r *RealTelegramBotAdapter) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	for i := 0; i < r.updateWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case up := <-updateChan:
					r.safeHandle(ctx, up)
				}
			}
		}()
	}

	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			close(updateChan)
			wg.Wait()
			return ctx.Err()
		case up := <-updates:
			updateChan <- up
		}
	}
}

func (r *RealTelegramBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

// safeHandle is the catch-all around every update. Faults are logged and the
// loop keeps running; a single bad update must never take the process down.
func (r *RealTelegramBotAdapter) safeHandle(ctx context.Context, up tgbotapi.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Interface("panic", rec).Msg("recovered from update handler")
		}
	}()
	if err := r.handleUpdate(ctx, up); err != nil {
		r.log.Error().Err(err).Msg("update handling failed")
	}
}

func (r *RealTelegramBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		return nil
	}
	if msg.IsCommand() {
		if fn, ok := r.commandRoutes()[msg.Command()]; ok {
			return fn(ctx, msg)
		}
		// unknown commands are ignored
		return nil
	}
	return r.handleGroupText(ctx, msg)
}

// SendMessage implements the adapter port.
func (r *RealTelegramBotAdapter) SendMessage(ctx context.Context, chatID int64, text string, mode adapter.ParseMode) error {
	// Support early cancellation
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if mode != adapter.ParseModePlain {
		msg.ParseMode = string(mode)
	}
	_, err := r.bot.Send(msg)
	return err
}

// SendButtons sends a message with inline buttons using tgbotapi.
// - If btn.URL is set, the button opens a link
// - Else if btn.Data is set, the button sends callback data
// - Else a safe fallback uses btn.Text as callback data
func (r *RealTelegramBotAdapter) SendButtons(
	ctx context.Context,
	chatID int64,
	text string,
	mode adapter.ParseMode,
	rows [][]adapter.InlineButton,
) error {
	// Support early cancellation
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			label := strings.TrimSpace(btn.Text)
			if label == "" {
				label = "•"
			}
			var kb tgbotapi.InlineKeyboardButton
			switch {
			case btn.URL != "":
				kb = tgbotapi.NewInlineKeyboardButtonURL(label, btn.URL)
			case btn.Data != "":
				kb = tgbotapi.NewInlineKeyboardButtonData(label, btn.Data)
			default:
				kb = tgbotapi.NewInlineKeyboardButtonData(label, label)
			}
			btns = append(btns, kb)
		}
		kbRows = append(kbRows, btns)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if mode != adapter.ParseModePlain {
		msg.ParseMode = string(mode)
	}
	// Feed announcements link out; suppress the link preview card.
	msg.DisableWebPagePreview = true
	if len(kbRows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(kbRows...)
	}
	_, err := r.bot.Send(msg)
	return err
}
