// Package storage persists serialized saves under string keys.
package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/CokeFamer_Go/internal/domain"
)

// Key layout
const (
	// LegacyKey is the unslotted key older builds wrote. It is read as slot 1.
	LegacyKey = "coke-famer-save"
	KeyPrefix = LegacyKey + ":"
	MaxSlots  = 3
)

// Store is a key/value store for save payloads.
type Store interface {
	// Get returns the payload for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ValidateSlot reports ErrInvalidSlot for slots outside 1..MaxSlots.
func ValidateSlot(slot int) error {
	if slot < 1 || slot > MaxSlots {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSlot, slot)
	}
	return nil
}

// SlotKey returns the storage key for a save slot.
func SlotKey(slot int) string {
	return KeyPrefix + strconv.Itoa(slot)
}

// LoadSlot reads the payload for slot. Slot 1 falls back to LegacyKey
// when no slotted record exists.
func LoadSlot(ctx context.Context, s Store, slot int) ([]byte, bool, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, false, err
	}
	raw, ok, err := s.Get(ctx, SlotKey(slot))
	if err != nil || ok {
		return raw, ok, err
	}
	if slot != 1 {
		return nil, false, nil
	}
	return s.Get(ctx, LegacyKey)
}

// SaveSlot writes the payload for slot.
func SaveSlot(ctx context.Context, s Store, slot int, payload []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	return s.Put(ctx, SlotKey(slot), payload)
}

// DeleteSlot removes the payload for slot. Deleting slot 1 also clears the
// legacy record so it does not resurface on the next load.
func DeleteSlot(ctx context.Context, s Store, slot int) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	if err := s.Delete(ctx, SlotKey(slot)); err != nil {
		return err
	}
	if slot == 1 {
		return s.Delete(ctx, LegacyKey)
	}
	return nil
}
