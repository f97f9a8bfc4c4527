package bootstrap

import (
	"log/slog"
	"time"

	"github.com/osse101/CokeFamer_Go/internal/scheduler"
	"github.com/osse101/CokeFamer_Go/internal/worker"
)

// StartAutosave flushes open sessions every interval on a single background
// worker. It returns nil when interval is zero. The returned tasks must be
// stopped scheduler first.
func StartAutosave(interval time.Duration, sessions worker.Flusher) []BackgroundTask {
	if interval <= 0 {
		slog.Info(LogMsgAutosaveDisabled)
		return nil
	}

	pool := worker.NewPool(AutosaveWorkers, AutosaveQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	timeout := interval / 2
	if timeout > AutosaveMaxTimeout {
		timeout = AutosaveMaxTimeout
	}
	sched.Schedule(interval, worker.AutosaveJob{Sessions: sessions, Timeout: timeout})

	slog.Info(LogMsgAutosaveScheduled, "interval", interval)
	return []BackgroundTask{sched, pool}
}
