package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

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

// Snapshot captures the full state as a current-version save record.
func (e *Engine) Snapshot() save.Current {
	rec := save.Current{
		Version:        save.CurrentVersion,
		Day:            e.day,
		Minutes:        e.minutes,
		Energy:         e.player.Energy,
		Gold:           e.player.Gold,
		InventorySlots: e.player.Inventory.Clone(),
		Tiles:          []save.TileRecord{},
		Objects:        []save.ObjectRecord{},
		Relationships:  e.ledger.All(),
	}
	for _, t := range e.field.All() {
		rec.Tiles = append(rec.Tiles, save.TileRecord{X: t.X, Y: t.Y, State: t.State})
	}
	for _, o := range e.objects.All() {
		rec.Objects = append(rec.Objects, save.ObjectRecord{X: o.Coord.X, Y: o.Coord.Y, Object: save.EncodeObject(o.Object)})
	}
	q := e.quest
	rec.Quest = &q
	return rec
}

// Restore replaces the state with rec. Nothing changes if rec is invalid.
func (e *Engine) Restore(rec save.Current) error {
	if rec.Day < 1 {
		return fmt.Errorf("%w: day %d", domain.ErrMalformedSave, rec.Day)
	}

	field := farm.NewField(e.content)
	for _, t := range rec.Tiles {
		if t.State.Crop != nil {
			if _, ok := e.content.Crop(t.State.Crop.Crop); !ok {
				return fmt.Errorf("%w: unknown crop %q at %d,%d", domain.ErrMalformedSave, t.State.Crop.Crop, t.X, t.Y)
			}
		}
		field.Set(domain.At(t.X, t.Y), t.State)
	}

	if err := e.checkSlots("inventory", rec.InventorySlots); err != nil {
		return err
	}

	reg := objects.NewRegistry()
	for _, o := range rec.Objects {
		obj, err := save.DecodeObject(o.Object)
		if err != nil {
			return err
		}
		if err := e.checkObjectItems(obj); err != nil {
			return fmt.Errorf("%w at %d,%d", err, o.X, o.Y)
		}
		if !reg.Place(domain.At(o.X, o.Y), obj) {
			return fmt.Errorf("%w: two objects at %d,%d", domain.ErrMalformedSave, o.X, o.Y)
		}
	}

	ledger := social.NewLedger(e.content)
	for npc, rel := range rec.Relationships {
		ledger.Set(npc, rel)
	}

	q := quest.Generate(rec.Day)
	if rec.Quest != nil {
		q = *rec.Quest
	}

	e.day = rec.Day
	e.minutes = max(rec.Minutes, 0)
	e.player = domain.Player{
		Gold:      max(rec.Gold, 0),
		Energy:    min(max(rec.Energy, 0), e.tuning.EnergyMax),
		Inventory: slots.Normalize(rec.InventorySlots, domain.InventorySize),
	}
	e.field = field
	e.objects = reg
	e.ledger = ledger
	e.quest = q
	return nil
}

// checkSlots rejects stacks of unknown items or above the item's stack limit.
func (e *Engine) checkSlots(where string, s domain.Slots) error {
	for i, st := range s {
		if st == nil || st.Qty <= 0 {
			continue
		}
		if _, ok := e.content.Item(st.Item); !ok {
			return fmt.Errorf("%w: unknown item %q in %s slot %d", domain.ErrMalformedSave, st.Item, where, i)
		}
		if limit := e.content.MaxStack(st.Item); st.Qty > limit {
			return fmt.Errorf("%w: %d %s in %s slot %d exceeds stack of %d", domain.ErrMalformedSave, st.Qty, st.Item, where, i, limit)
		}
	}
	return nil
}

func (e *Engine) checkObjectItems(obj domain.PlacedObject) error {
	switch o := obj.(type) {
	case *domain.Chest:
		return e.checkSlots("chest", o.Slots)
	case *domain.ShippingBin:
		return e.checkSlots("shipping bin", o.Slots)
	case *domain.PreservesJar:
		for _, id := range []*domain.ItemID{o.Input, o.Output} {
			if id == nil {
				continue
			}
			if _, ok := e.content.Item(*id); !ok {
				return fmt.Errorf("%w: unknown item %q in preserves jar", domain.ErrMalformedSave, *id)
			}
		}
	}
	return nil
}

// LoadFromStorage replaces the state with the save in slot and makes slot the
// active one. It reports false when there is no usable save: a missing record,
// or one that is malformed or of an unknown version. Older versions are
// migrated and written back at the current version.
func (e *Engine) LoadFromStorage(ctx context.Context, slot int) (bool, error) {
	if e.store == nil {
		return false, domain.ErrStorageUnavailable
	}
	raw, ok, err := storage.LoadSlot(ctx, e.store, slot)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgReadSave, err)
	}
	if !ok {
		return false, nil
	}

	rec, from, err := e.codec.Decode(raw)
	if err == nil {
		err = e.Restore(rec)
	}
	if err != nil {
		if errors.Is(err, domain.ErrMalformedSave) || errors.Is(err, domain.ErrUnknownSaveVersion) {
			e.log.Warn(LogMsgSaveUnreadable, logger.AttrKeySlot, slot, "error", err)
			return false, nil
		}
		return false, err
	}

	e.slot = slot
	e.log = slog.Default().With(logger.AttrKeySlot, slot)
	e.log.Info(LogMsgSaveLoaded, "day", e.day, "version", from)

	if from < save.CurrentVersion {
		e.log.Info(LogMsgSaveMigrated, "from", from, "to", save.CurrentVersion)
		e.publish(event.SaveMigrated, event.SaveMigratedPayloadV1{FromVersion: from, ToVersion: save.CurrentVersion})
		if err := e.SaveToStorage(ctx, slot); err != nil {
			return true, err
		}
	}
	return true, nil
}

// SaveToStorage writes the current state to slot.
func (e *Engine) SaveToStorage(ctx context.Context, slot int) error {
	if e.store == nil {
		return domain.ErrStorageUnavailable
	}
	raw, err := e.codec.Encode(e.Snapshot())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeSave, err)
	}
	if err := storage.SaveSlot(ctx, e.store, slot, raw); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteSave, err)
	}
	return nil
}

// ResetToNewGame starts over in the active slot and saves the fresh game.
func (e *Engine) ResetToNewGame(ctx context.Context) error {
	e.NewGame()
	e.log.Info(LogMsgGameReset)
	if e.store == nil {
		return nil
	}
	return e.SaveToStorage(ctx, e.slot)
}

// ExportSaveJSON returns the save text for slot. The active slot exports the
// live state; other slots export what is stored.
func (e *Engine) ExportSaveJSON(ctx context.Context, slot int) (string, bool, error) {
	if err := storage.ValidateSlot(slot); err != nil {
		return "", false, err
	}
	if slot == e.slot {
		raw, err := e.codec.Encode(e.Snapshot())
		if err != nil {
			return "", false, fmt.Errorf("%s: %w", ErrMsgEncodeSave, err)
		}
		return string(raw), true, nil
	}
	if e.store == nil {
		return "", false, domain.ErrStorageUnavailable
	}
	raw, ok, err := storage.LoadSlot(ctx, e.store, slot)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", ErrMsgReadSave, err)
	}
	return string(raw), ok, nil
}

// ImportSaveJSON stores text as the save for slot after checking it. Text that
// is not JSON is rejected with ReasonParse, anything that is not a loadable
// save with ReasonJSON; either way storage and state are untouched. Importing
// into the active slot also loads it.
func (e *Engine) ImportSaveJSON(ctx context.Context, slot int, text string) (domain.Result, error) {
	if err := storage.ValidateSlot(slot); err != nil {
		return domain.Result{}, err
	}
	if e.store == nil {
		return domain.Result{}, domain.ErrStorageUnavailable
	}

	raw := []byte(text)
	if reason, ok := e.codec.Validate(raw); !ok {
		e.log.Info(LogMsgImportRejected, logger.AttrKeySlot, slot, "reason", reason)
		return e.result(ActionImport, domain.Fail(reason)), nil
	}
	rec, _, err := e.codec.Decode(raw)
	if err == nil {
		// Dry run on a scratch engine so object and crop data are checked too.
		scratch := &Engine{content: e.content, tuning: e.tuning}
		err = scratch.Restore(rec)
	}
	if err != nil {
		e.log.Info(LogMsgImportRejected, logger.AttrKeySlot, slot, "reason", domain.ReasonJSON, "error", err)
		return e.result(ActionImport, domain.Fail(domain.ReasonJSON)), nil
	}

	if err := storage.SaveSlot(ctx, e.store, slot, raw); err != nil {
		return domain.Result{}, fmt.Errorf("%s: %w", ErrMsgWriteSave, err)
	}
	if slot == e.slot {
		if _, err := e.LoadFromStorage(ctx, slot); err != nil {
			return domain.Result{}, err
		}
	}
	return e.result(ActionImport, domain.Ok()), nil
}
