package janitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type fakePruneRepo struct {
	cutoff time.Time
	n      int64
	err    error
}

func (f *fakePruneRepo) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.n, f.err
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewPruner_RejectsBadSchedule(t *testing.T) {
	if _, err := NewPruner(&fakePruneRepo{}, discard, time.Hour, "not a schedule"); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}

func TestPrune_UsesRetentionCutoff(t *testing.T) {
	repo := &fakePruneRepo{n: 3}
	p, err := NewPruner(repo, discard, 24*time.Hour, "@daily")
	if err != nil {
		t.Fatalf("NewPruner: %v", err)
	}
	now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	if got := p.Prune(context.Background()); got != 3 {
		t.Errorf("Prune = %d, want 3", got)
	}
	if want := now.Add(-24 * time.Hour); !repo.cutoff.Equal(want) {
		t.Errorf("cutoff = %v, want %v", repo.cutoff, want)
	}
}

func TestPrune_RepoErrorReturnsZero(t *testing.T) {
	repo := &fakePruneRepo{n: 5, err: errors.New("db down")}
	p, err := NewPruner(repo, discard, time.Hour, "@every 1m")
	if err != nil {
		t.Fatalf("NewPruner: %v", err)
	}

	if got := p.Prune(context.Background()); got != 0 {
		t.Errorf("Prune = %d, want 0", got)
	}
}

func TestStart_StopsOnCancel(t *testing.T) {
	p, err := NewPruner(&fakePruneRepo{}, discard, time.Hour, "@daily")
	if err != nil {
		t.Fatalf("NewPruner: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

type blockingPruneRepo struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
	ctxErr  chan error
}

func (b *blockingPruneRepo) PruneBefore(ctx context.Context, _ time.Time) (int64, error) {
	b.once.Do(func() { close(b.started) })
	<-b.release
	select {
	case b.ctxErr <- ctx.Err():
	default:
	}
	return 1, nil
}

func TestStart_WaitsForRunInFlight(t *testing.T) {
	repo := &blockingPruneRepo{
		started: make(chan struct{}),
		release: make(chan struct{}),
		ctxErr:  make(chan error, 1),
	}
	p, err := NewPruner(repo, discard, time.Hour, "@every 1s")
	if err != nil {
		t.Fatalf("NewPruner: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	select {
	case <-repo.started:
	case <-time.After(3 * time.Second):
		t.Fatal("prune never ran")
	}
	cancel()

	select {
	case <-done:
		t.Fatal("Start returned while a prune was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(repo.release)
	if err := <-repo.ctxErr; err != nil {
		t.Errorf("prune ctx err = %v, want nil", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after the prune finished")
	}
}
