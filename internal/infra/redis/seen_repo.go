package redis

import (
	"context"

	"telegram-otp-relay/internal/domain/ports/repository"
)

var _ repository.SeenRepository = (*SeenRepo)(nil)

// SeenRepo keeps forwarded record ids in a redis set, so the at-most-once
// guarantee survives restarts and is shared by replicas pointed at the same
// instance.
type SeenRepo struct {
	client *redClient
	key    string
}

func NewSeenRepo(client *redClient) *SeenRepo {
	return &SeenRepo{client: client, key: "relay:seen"}
}

// MarkSeen relies on SADD reporting how many members were actually added,
// which makes the check-and-insert a single round trip.
func (s *SeenRepo) MarkSeen(ctx context.Context, id string) (bool, error) {
	added, err := s.client.SAdd(ctx, s.key, id)
	if err != nil {
		return false, err
	}
	return added == 1, nil
}

func (s *SeenRepo) Len(ctx context.Context) (int, error) {
	n, err := s.client.SCard(ctx, s.key)
	return int(n), err
}
