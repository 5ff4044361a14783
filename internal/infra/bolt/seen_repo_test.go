//go:build !integration

package bolt

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSeenRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("should mark and deduplicate ids", func(t *testing.T) {
		repo, err := NewSeenRepo(filepath.Join(t.TempDir(), "seen.db"))
		if err != nil {
			t.Fatalf("expected no error opening store, but got: %v", err)
		}
		defer repo.Close()

		wasNew, err := repo.MarkSeen(ctx, "7")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if !wasNew {
			t.Error("expected first mark to be new")
		}

		wasNew, err = repo.MarkSeen(ctx, "7")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if wasNew {
			t.Error("expected second mark to be a duplicate")
		}

		n, err := repo.Len(ctx)
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 id, but got %d", n)
		}
	})

	t.Run("should keep ids across reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seen.db")

		repo, err := NewSeenRepo(path)
		if err != nil {
			t.Fatalf("expected no error opening store, but got: %v", err)
		}
		if _, err := repo.MarkSeen(ctx, "1001"); err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if err := repo.Close(); err != nil {
			t.Fatalf("expected no error closing store, but got: %v", err)
		}

		reopened, err := NewSeenRepo(path)
		if err != nil {
			t.Fatalf("expected no error reopening store, but got: %v", err)
		}
		defer reopened.Close()

		wasNew, err := reopened.MarkSeen(ctx, "1001")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if wasNew {
			t.Error("expected id to survive the restart, but it was reported new")
		}
	})
}
