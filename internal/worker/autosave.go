package worker

import (
	"context"
	"log/slog"
	"time"
)

// Flusher saves every open game. *session.Manager satisfies it.
type Flusher interface {
	Flush(ctx context.Context) error
}

// AutosaveJob writes all open sessions to storage.
type AutosaveJob struct {
	Sessions Flusher
	Timeout  time.Duration
}

func (j AutosaveJob) Process(ctx context.Context) error {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}
	start := time.Now()
	if err := j.Sessions.Flush(ctx); err != nil {
		return err
	}
	slog.Default().Debug(LogMsgAutosaveCompleted, "duration", time.Since(start))
	return nil
}
