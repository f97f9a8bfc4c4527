package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CokeFamer_Go/internal/worker"
)

type countingFlusher struct {
	flushes atomic.Int32
}

func (f *countingFlusher) Flush(ctx context.Context) error {
	f.flushes.Add(1)
	return nil
}

func TestScheduler_RunsAutosave(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	f := &countingFlusher{}
	sched.Schedule(10*time.Millisecond, worker.AutosaveJob{Sessions: f})

	assert.Eventually(t, func() bool { return f.flushes.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopHalts(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	f := &countingFlusher{}
	sched.Schedule(5*time.Millisecond, worker.AutosaveJob{Sessions: f})

	assert.Eventually(t, func() bool { return f.flushes.Load() >= 1 }, time.Second, 5*time.Millisecond)
	sched.Stop()
	sched.Stop()

	time.Sleep(20 * time.Millisecond)
	after := f.flushes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, f.flushes.Load())
}
