package model

import (
	"time"

	"telegram-otp-relay/internal/domain"
)

// RelaySession is the process-wide relay state: the single group the bot
// serves and the start timestamp used both as the poller's lower bound for
// "new" records and as the /status uptime base.
type RelaySession struct {
	ChatID    int64
	StartedAt time.Time
}

func NewRelaySession(chatID int64) (*RelaySession, error) {
	if chatID == 0 {
		return nil, domain.ErrInvalidArgument
	}
	return &RelaySession{ChatID: chatID, StartedAt: time.Now().UTC()}, nil
}

// OwnsChat reports whether an update belongs to the configured group.
func (s *RelaySession) OwnsChat(chatID int64) bool { return s != nil && s.ChatID == chatID }

func (s *RelaySession) Uptime() time.Duration { return time.Since(s.StartedAt) }
