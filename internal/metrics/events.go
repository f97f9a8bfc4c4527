package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/CokeFamer_Go/internal/event"
	"github.com/osse101/CokeFamer_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range event.AllTypes {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent records metrics for one event. Undecodable payloads are logged
// and skipped so metrics never fail a game action.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.DayEnded:
		var p event.DayEndedPayloadV1
		if p, err = event.DecodePayload[event.DayEndedPayloadV1](evt.Payload); err == nil {
			DaysEnded.Inc()
			ItemsShipped.Add(float64(p.ItemsSold))
			GoldEarned.WithLabelValues(SourceShip).Add(float64(p.ShippedGold))
		}

	case event.ItemsBought:
		var p event.ItemsPayloadV1
		if p, err = event.DecodePayload[event.ItemsPayloadV1](evt.Payload); err == nil {
			ItemsBought.WithLabelValues(p.Item).Add(float64(p.Qty))
			GoldSpent.Add(float64(p.Gold))
		}

	case event.ItemsCrafted:
		var p event.ItemsPayloadV1
		if p, err = event.DecodePayload[event.ItemsPayloadV1](evt.Payload); err == nil {
			ItemsCrafted.WithLabelValues(p.Item).Add(float64(p.Qty))
		}

	case event.ItemsSold:
		var p event.ItemsPayloadV1
		if p, err = event.DecodePayload[event.ItemsPayloadV1](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(p.Item).Add(float64(p.Qty))
			GoldEarned.WithLabelValues(SourceSale).Add(float64(p.Gold))
		}

	case event.BinShipped:
		var p event.ShipmentPayloadV1
		if p, err = event.DecodePayload[event.ShipmentPayloadV1](evt.Payload); err == nil {
			ItemsShipped.Add(float64(p.ItemsSold))
			GoldEarned.WithLabelValues(SourceShip).Add(float64(p.ShippedGold))
		}

	case event.QuestCompleted:
		var p event.ItemsPayloadV1
		if p, err = event.DecodePayload[event.ItemsPayloadV1](evt.Payload); err == nil {
			QuestsCompleted.Inc()
			GoldEarned.WithLabelValues(SourceQuest).Add(float64(p.Gold))
		}

	case event.SaveMigrated:
		var p event.SaveMigratedPayloadV1
		if p, err = event.DecodePayload[event.SaveMigratedPayloadV1](evt.Payload); err == nil {
			SavesMigrated.WithLabelValues(strconv.Itoa(p.FromVersion)).Inc()
		}

	case event.ActionResolved:
		var p event.ActionPayloadV1
		if p, err = event.DecodePayload[event.ActionPayloadV1](evt.Payload); err == nil {
			outcome := OutcomeOK
			switch {
			case p.OK:
			case p.Reason == "":
				outcome = OutcomeRejected
			default:
				outcome = p.Reason
			}
			Actions.WithLabelValues(p.Action, outcome).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
