// Package engine is the single façade over the farm simulation: the clock, the
// field, placed objects, the player's purse and pack, quests and villagers, and
// persistence of all of it into a save slot.
//
// An Engine is not safe for concurrent use. Callers that share one across
// goroutines serialise access themselves (see the session package).
package engine

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/content"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/event"
	"github.com/osse101/CokeFamer_Go/internal/farm"
	"github.com/osse101/CokeFamer_Go/internal/logger"
	"github.com/osse101/CokeFamer_Go/internal/objects"
	"github.com/osse101/CokeFamer_Go/internal/quest"
	"github.com/osse101/CokeFamer_Go/internal/save"
	"github.com/osse101/CokeFamer_Go/internal/slots"
	"github.com/osse101/CokeFamer_Go/internal/social"
	"github.com/osse101/CokeFamer_Go/internal/storage"
)

// Engine owns one save slot's world state.
type Engine struct {
	content *content.Registry
	tuning  config.Tuning
	store   storage.Store
	codec   *save.Codec
	bus     event.Bus
	log     *slog.Logger
	slot    int

	day     int
	minutes int
	player  domain.Player
	field   *farm.Field
	objects *objects.Registry
	quest   domain.Quest
	ledger  *social.Ledger
}

// New returns an engine for slot holding a fresh game. store and bus may be
// nil: without a store the persistence operations fail and autosave is skipped.
func New(
	reg *content.Registry,
	tuning config.Tuning,
	store storage.Store,
	bus event.Bus,
	slot int,
) *Engine {
	if bus == nil {
		bus = event.Nop{}
	}
	e := &Engine{
		content: reg,
		tuning:  tuning,
		store:   store,
		bus:     bus,
		slot:    slot,
		log:     slog.Default().With(logger.AttrKeySlot, slot),
		codec: save.NewCodec(save.Defaults{
			Minutes: tuning.DayStartMinutes,
			Energy:  tuning.EnergyMax,
			Gold:    tuning.StartingGold,
			Stacks:  reg,
		}),
	}
	e.NewGame()
	return e
}

// NewGame replaces the in-memory state with day 1 of a fresh game. Storage is
// not touched; see ResetToNewGame.
func (e *Engine) NewGame() {
	e.day = 1
	e.minutes = e.tuning.DayStartMinutes
	e.player = domain.Player{
		Gold:      e.tuning.StartingGold,
		Energy:    e.tuning.EnergyMax,
		Inventory: domain.NewSlots(domain.InventorySize),
	}
	for _, id := range slices.Sorted(maps.Keys(e.tuning.StartingItems)) {
		slots.Add(e.content, e.player.Inventory, domain.ItemID(id), e.tuning.StartingItems[id])
	}
	e.field = farm.NewField(e.content)
	e.objects = objects.NewRegistry()
	e.quest = quest.Generate(e.day)
	e.ledger = social.NewLedger(e.content)
}

// Slot is the save slot this engine persists to.
func (e *Engine) Slot() int { return e.slot }

func (e *Engine) Day() int { return e.day }

func (e *Engine) Minutes() int { return e.minutes }

func (e *Engine) Energy() int { return e.player.Energy }

func (e *Engine) Gold() int { return e.player.Gold }

// EnergyMax is the energy restored each morning.
func (e *Engine) EnergyMax() int { return e.tuning.EnergyMax }

func (e *Engine) publish(t event.Type, payload interface{}) {
	if err := e.bus.Publish(context.Background(), event.New(t, e.slot, payload)); err != nil {
		e.log.Warn(LogMsgPublishFailed, "type", t, "error", err)
	}
}

// resolved reports the outcome of a player action and passes ok through.
func (e *Engine) resolved(a Action, ok bool, reason domain.Reason) bool {
	e.publish(event.ActionResolved, event.ActionPayloadV1{Action: string(a), OK: ok, Reason: string(reason)})
	return ok
}

func (e *Engine) result(a Action, r domain.Result) domain.Result {
	e.resolved(a, r.OK, r.Reason)
	return r
}
