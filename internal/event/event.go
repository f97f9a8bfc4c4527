package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Event is something that happened inside a game session
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Slot    int         `json:"slot"`
	Payload interface{} `json:"payload"`
}

// Game event types
const (
	DayEnded       Type = "day.ended"
	ItemsBought    Type = "economy.bought"
	ItemsCrafted   Type = "economy.crafted"
	ItemsSold      Type = "economy.sold"
	BinShipped     Type = "economy.shipped"
	QuestCompleted Type = "quest.completed"
	SaveMigrated   Type = "save.migrated"
	ActionResolved Type = "action.resolved"
)

// AllTypes lists every event type a session publishes
var AllTypes = []Type{
	DayEnded,
	ItemsBought,
	ItemsCrafted,
	ItemsSold,
	BinShipped,
	QuestCompleted,
	SaveMigrated,
	ActionResolved,
}

// DayEndedPayloadV1 describes one day rollover
type DayEndedPayloadV1 struct {
	Day         int    `json:"day"`
	Weather     string `json:"weather"`
	ShippedGold int    `json:"shipped_gold"`
	ItemsSold   int    `json:"items_sold"`
	CropsLost   int    `json:"crops_lost"`
}

// ItemsPayloadV1 describes a quantity of one item changing hands
type ItemsPayloadV1 struct {
	Item string `json:"item"`
	Qty  int    `json:"qty"`
	Gold int    `json:"gold"`
}

// ShipmentPayloadV1 describes the shipping bin sold off outside a rollover
type ShipmentPayloadV1 struct {
	ShippedGold int `json:"shipped_gold"`
	ItemsSold   int `json:"items_sold"`
}

// SaveMigratedPayloadV1 records a stored save upgraded on load
type SaveMigratedPayloadV1 struct {
	FromVersion int `json:"from_version"`
	ToVersion   int `json:"to_version"`
}

// ActionPayloadV1 records the outcome of a player action
type ActionPayloadV1 struct {
	Action string `json:"action"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// New builds an event at the current schema version
func New(t Type, slot int, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Slot: slot, Payload: payload}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber for the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Nop discards every event
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

func (Nop) Subscribe(Type, Handler) {}
