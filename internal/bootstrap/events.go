package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CokeFamer_Go/internal/event"
	"github.com/osse101/CokeFamer_Go/internal/logger"
	"github.com/osse101/CokeFamer_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and subscribes the
// metrics collector and a debug-level event log to it.
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range event.AllTypes {
		bus.Subscribe(t, logEvent)
	}

	slog.Info(LogMsgEventSystemInitialized, "types", len(event.AllTypes))
	return bus
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgGameEvent,
		"type", evt.Type,
		logger.AttrKeySlot, evt.Slot,
		"payload", evt.Payload)
	return nil
}
