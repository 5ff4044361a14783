//go:build !integration

package usecase_test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/domain"
	"telegram-otp-relay/internal/domain/model"
	"telegram-otp-relay/internal/domain/ports/adapter"
	"telegram-otp-relay/internal/domain/ports/repository"
)

// -----------------------------
// Utilities: tiny helpers
// -----------------------------

// newTestLogger creates a silent zerolog.Logger for use in tests.
// It writes to io.Discard to prevent logs from cluttering test output.
func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

// newTestSession builds a session that "started" at the given time so tests
// can pin the fetch lower bound and the uptime.
func newTestSession(chatID int64, startedAt time.Time) *model.RelaySession {
	return &model.RelaySession{ChatID: chatID, StartedAt: startedAt}
}

// ---- Mock SuccessNumbersAPI ----

type MockSuccessAPI struct {
	mu sync.Mutex

	// configurable behavior
	FetchRecentFunc  func(ctx context.Context, limit int, after time.Time) ([]model.SuccessNumber, error)
	CountFunc        func(ctx context.Context) (int, error)
	PhoneCountryFunc func(ctx context.Context, number string) (string, error)

	// call capture
	FetchCalls   int
	CountryCalls []string
}

var _ adapter.SuccessNumbersAPI = (*MockSuccessAPI)(nil)

func (m *MockSuccessAPI) FetchRecent(ctx context.Context, limit int, after time.Time) ([]model.SuccessNumber, error) {
	m.mu.Lock()
	m.FetchCalls++
	m.mu.Unlock()
	if m.FetchRecentFunc != nil {
		return m.FetchRecentFunc(ctx, limit, after)
	}
	return nil, nil
}

func (m *MockSuccessAPI) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, domain.ErrUnavailable
}

func (m *MockSuccessAPI) PhoneCountry(ctx context.Context, number string) (string, error) {
	m.mu.Lock()
	m.CountryCalls = append(m.CountryCalls, number)
	m.mu.Unlock()
	if m.PhoneCountryFunc != nil {
		return m.PhoneCountryFunc(ctx, number)
	}
	return "Unknown", nil
}

// ---- Mock TelegramBotAdapter ----

// SentMessage captures one outbound bot call, plain sends and button sends
// alike.
type SentMessage struct {
	ChatID int64
	Text   string
	Mode   adapter.ParseMode
	Rows   [][]adapter.InlineButton
}

type MockBot struct {
	mu   sync.Mutex
	Sent []SentMessage

	SendMessageFunc func(ctx context.Context, chatID int64, text string, mode adapter.ParseMode) error
	SendButtonsFunc func(ctx context.Context, chatID int64, text string, mode adapter.ParseMode, rows [][]adapter.InlineButton) error
}

var _ adapter.TelegramBotAdapter = (*MockBot)(nil)

func (m *MockBot) SendMessage(ctx context.Context, chatID int64, text string, mode adapter.ParseMode) error {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, chatID, text, mode)
	}
	m.record(SentMessage{ChatID: chatID, Text: text, Mode: mode})
	return nil
}

func (m *MockBot) SendButtons(ctx context.Context, chatID int64, text string, mode adapter.ParseMode, rows [][]adapter.InlineButton) error {
	if m.SendButtonsFunc != nil {
		return m.SendButtonsFunc(ctx, chatID, text, mode, rows)
	}
	m.record(SentMessage{ChatID: chatID, Text: text, Mode: mode, Rows: rows})
	return nil
}

func (m *MockBot) record(s SentMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, s)
}

// ---- Mock SeenRepository ----

// memSeenRepo is a small in-memory implementation used by unit tests.
type memSeenRepo struct {
	mu      sync.Mutex
	store   map[string]struct{}
	markErr error // used by tests to simulate store failures
}

var _ repository.SeenRepository = (*memSeenRepo)(nil)

func newMemSeenRepo() *memSeenRepo {
	return &memSeenRepo{store: make(map[string]struct{})}
}

func (m *memSeenRepo) MarkSeen(ctx context.Context, id string) (bool, error) {
	if m.markErr != nil {
		return false, m.markErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; ok {
		return false, nil
	}
	m.store[id] = struct{}{}
	return true, nil
}

func (m *memSeenRepo) Len(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.store), nil
}
