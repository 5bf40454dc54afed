package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

type captureRecorder struct {
	mu      sync.Mutex
	entries []domain.Activity
}

func (r *captureRecorder) Record(_ context.Context, activity domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, activity)
	return nil
}

func (r *captureRecorder) snapshot() []domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Activity, len(r.entries))
	copy(out, r.entries)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcherDeliversAllEntries(t *testing.T) {
	recorder := &captureRecorder{}
	d := NewDispatcher(4, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Enqueue(domain.Activity{UserID: "u1", Kind: domain.ActivityLogin})
	}

	waitFor(t, func() bool { return len(recorder.snapshot()) == 20 })
}

func TestDispatcherPreservesPerUserOrder(t *testing.T) {
	recorder := &captureRecorder{}
	d := NewDispatcher(4, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	kinds := []domain.ActivityKind{
		domain.ActivitySignUp,
		domain.ActivityLogin,
		domain.ActivityRefresh,
		domain.ActivityRoleChange,
	}
	for _, k := range kinds {
		d.Enqueue(domain.Activity{UserID: "u1", Kind: k})
	}

	waitFor(t, func() bool { return len(recorder.snapshot()) == len(kinds) })

	got := recorder.snapshot()
	for i, k := range kinds {
		if got[i].Kind != k {
			t.Fatalf("entry %d: kind = %q, want %q", i, got[i].Kind, k)
		}
	}
}

func TestDispatcherShardIsStablePerUser(t *testing.T) {
	d := NewDispatcher(8, &captureRecorder{}, zerolog.Nop())

	first := d.shardIndex("user-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("user-42"); got != first {
			t.Fatalf("shardIndex not stable: got %d, want %d", got, first)
		}
	}
}
