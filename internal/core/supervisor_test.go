package core

import (
	"context"
	"errors"
	"testing"
	"time"

	logx "dayplan/pkg/logx"
)

func TestSupervisorStop(t *testing.T) {
	t.Parallel()
	s := NewSupervisor(context.Background(), logx.Nop())

	started := make(chan struct{})
	s.Go0("blocker", func(ctx context.Context) {
		close(started)
		<-ctx.Done()
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
}

func TestSupervisorFirstError(t *testing.T) {
	t.Parallel()
	s := NewSupervisor(context.Background(), logx.Nop())

	boom := errors.New("boom")
	s.Go("fails", func(ctx context.Context) error { return boom })
	s.Go("cancels", func(ctx context.Context) error { return context.Canceled })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Stop(ctx); !errors.Is(err, boom) {
		t.Fatalf("Stop error = %v, want %v", err, boom)
	}
}

func TestSupervisorRecoversPanic(t *testing.T) {
	t.Parallel()
	s := NewSupervisor(context.Background(), logx.Nop())

	s.Go0("panics", func(ctx context.Context) { panic("kaboom") })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := s.Stop(ctx)
	if err == nil || err.Error() != "panic in panics: kaboom" {
		t.Fatalf("Stop error = %v", err)
	}
}

func TestSupervisorWaitTimeout(t *testing.T) {
	t.Parallel()
	s := NewSupervisor(context.Background(), logx.Nop())

	s.Go0("stuck", func(ctx context.Context) {
		// Ignores cancellation on purpose.
		time.Sleep(5 * time.Second)
	})
	s.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := s.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait error = %v, want deadline exceeded", err)
	}
}
