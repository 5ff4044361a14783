//go:build !integration

package memory

import (
	"context"
	"sync"
	"testing"
)

func TestSeenRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("should report new ids exactly once", func(t *testing.T) {
		repo := NewSeenRepo()

		wasNew, err := repo.MarkSeen(ctx, "42")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if !wasNew {
			t.Error("expected first mark to be new")
		}

		wasNew, err = repo.MarkSeen(ctx, "42")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if wasNew {
			t.Error("expected second mark to be a duplicate")
		}
	})

	t.Run("should count distinct ids", func(t *testing.T) {
		repo := NewSeenRepo()
		for _, id := range []string{"1", "2", "2", "3"} {
			if _, err := repo.MarkSeen(ctx, id); err != nil {
				t.Fatalf("expected no error, but got: %v", err)
			}
		}
		n, err := repo.Len(ctx)
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if n != 3 {
			t.Errorf("expected 3 ids, but got %d", n)
		}
	})

	t.Run("should stay consistent under concurrent marks", func(t *testing.T) {
		repo := NewSeenRepo()
		var wg sync.WaitGroup
		var mu sync.Mutex
		newCount := 0

		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				wasNew, err := repo.MarkSeen(ctx, "same-id")
				if err != nil {
					t.Errorf("expected no error, but got: %v", err)
					return
				}
				if wasNew {
					mu.Lock()
					newCount++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		if newCount != 1 {
			t.Errorf("expected exactly one goroutine to win, but got %d", newCount)
		}
	})
}
