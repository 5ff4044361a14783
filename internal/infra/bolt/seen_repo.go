package bolt

import (
	"context"
	"fmt"
	"time"

	"telegram-otp-relay/internal/domain/ports/repository"

	"go.etcd.io/bbolt"
)

var _ repository.SeenRepository = (*SeenRepo)(nil)

var seenBucket = []byte("seen")

// SeenRepo persists forwarded record ids in a local bbolt file, extending
// the at-most-once guarantee across restarts without an external service.
type SeenRepo struct {
	db *bbolt.DB
}

func NewSeenRepo(path string) (*SeenRepo, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open seen store: %w", err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(seenBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create seen bucket: %w", err)
	}
	return &SeenRepo{db: db}, nil
}

func (s *SeenRepo) MarkSeen(ctx context.Context, id string) (bool, error) {
	wasNew := false
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(seenBucket)
		if b.Get([]byte(id)) != nil {
			return nil
		}
		wasNew = true
		return b.Put([]byte(id), []byte{1})
	})
	if err != nil {
		return false, err
	}
	return wasNew, nil
}

func (s *SeenRepo) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(seenBucket).Stats().KeyN
		return nil
	})
	return n, err
}

func (s *SeenRepo) Close() error { return s.db.Close() }
