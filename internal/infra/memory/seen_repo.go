package memory

import (
	"context"
	"sync"

	"telegram-otp-relay/internal/domain/ports/repository"
)

var _ repository.SeenRepository = (*SeenRepo)(nil)

// SeenRepo is the default in-process seen store. Ids live for the process
// lifetime and reset on restart; nothing is ever evicted.
type SeenRepo struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

func NewSeenRepo() *SeenRepo {
	return &SeenRepo{seen: make(map[string]struct{})}
}

func (s *SeenRepo) MarkSeen(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[id]; ok {
		return false, nil
	}
	s.seen[id] = struct{}{}
	return true, nil
}

func (s *SeenRepo) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen), nil
}
