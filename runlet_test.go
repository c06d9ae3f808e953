package runlet_test

import (
	"context"
	"testing"
	"time"

	"github.com/bft-labs/runlet"
)

func TestRootAPI_StartStopCycle(t *testing.T) {
	s := runlet.NewScheduler()

	lc, err := runlet.New(s, func(ctx context.Context) { <-ctx.Done() })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if lc.State() != runlet.StateIdle {
		t.Fatalf("State() = %v, want StateIdle", lc.State())
	}

	if err := lc.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if lc.State() != runlet.StateRunning {
		t.Fatalf("State() = %v, want StateRunning", lc.State())
	}

	lc.Stop()
	if err := lc.WaitWithTimeout(time.Second); err != nil {
		t.Fatalf("WaitWithTimeout() = %v", err)
	}
	if lc.State() != runlet.StateStopped {
		t.Errorf("State() = %v, want StateStopped", lc.State())
	}
}

func TestRootAPI_ScopedAcquire(t *testing.T) {
	s := runlet.NewScheduler()

	lc, err := runlet.New(s, func(ctx context.Context) { <-ctx.Done() })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	g, err := lc.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	g.Release()
	if err := lc.WaitWithTimeout(time.Second); err != nil {
		t.Fatalf("WaitWithTimeout() = %v", err)
	}

	if got := g.Release(); got != runlet.ReleaseCancelled {
		t.Errorf("Release() re-report = %v, want ReleaseCancelled", got)
	}
}

func TestRootAPI_StartImmediately(t *testing.T) {
	s := runlet.NewScheduler()
	started := make(chan struct{})

	lc, err := runlet.New(s,
		func(ctx context.Context) {
			close(started)
			<-ctx.Done()
		},
		runlet.WithStartImmediately(),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("work did not start during New")
	}

	lc.Stop()
	if err := lc.WaitWithTimeout(time.Second); err != nil {
		t.Fatalf("WaitWithTimeout() = %v", err)
	}
}
