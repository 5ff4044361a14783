//go:build !integration

package sched_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/infra/sched"
	"telegram-otp-relay/internal/usecase"
)

type fakeForwarder struct {
	mu          sync.Mutex
	err         error
	hadDeadline bool
	calls       chan time.Time
}

func newFakeForwarder() *fakeForwarder {
	return &fakeForwarder{calls: make(chan time.Time, 16)}
}

func (f *fakeForwarder) ForwardNew(ctx context.Context) (int, error) {
	f.mu.Lock()
	_, f.hadDeadline = ctx.Deadline()
	err := f.err
	f.mu.Unlock()
	f.calls <- time.Now()
	return 0, err
}

func (f *fakeForwarder) deadlineSeen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hadDeadline
}

func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

func waitForTick(t *testing.T, f *fakeForwarder) time.Time {
	t.Helper()
	select {
	case at := <-f.calls:
		return at
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a poll tick")
		return time.Time{}
	}
}

func TestSuccessPoller(t *testing.T) {
	t.Run("should hold the first tick until the first delay elapsed", func(t *testing.T) {
		f := newFakeForwarder()
		p := sched.NewSuccessPoller(40*time.Millisecond, 80*time.Millisecond, time.Second, f, usecase.NewRelayStats(), newTestLogger())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		start := time.Now()
		go p.Run(ctx)

		firstAt := waitForTick(t, f)
		if got := firstAt.Sub(start); got < 60*time.Millisecond {
			t.Errorf("first tick fired too early: after %v", got)
		}
	})

	t.Run("should keep ticking after failing ticks", func(t *testing.T) {
		f := newFakeForwarder()
		f.err = errors.New("fetch success numbers: connection refused")
		stats := usecase.NewRelayStats()
		p := sched.NewSuccessPoller(30*time.Millisecond, 10*time.Millisecond, time.Second, f, stats, newTestLogger())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- p.Run(ctx) }()

		for i := 0; i < 3; i++ {
			waitForTick(t, f)
		}
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled from Run, got %v", err)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("poller did not stop on cancellation")
		}

		if note := stats.View().LastTickNote; note == "" || note == "ok" {
			t.Errorf("expected the failure to be recorded, got note %q", note)
		}
	})

	t.Run("should bound every tick with the configured timeout", func(t *testing.T) {
		f := newFakeForwarder()
		p := sched.NewSuccessPoller(50*time.Millisecond, 5*time.Millisecond, 500*time.Millisecond, f, usecase.NewRelayStats(), newTestLogger())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go p.Run(ctx)

		waitForTick(t, f)
		if !f.deadlineSeen() {
			t.Error("expected the tick context to carry a deadline")
		}
	})
}
