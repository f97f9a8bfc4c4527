// Package backup copies every save slot to and from a compressed archive.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/save"
	"github.com/osse101/CokeFamer_Go/internal/storage"
)

const (
	LogMsgExported = "Saves exported"
	LogMsgRestored = "Saves restored"
)

// Export writes the stored record of every occupied slot to w and returns
// the slots it wrote.
func Export(ctx context.Context, store storage.Store, w io.Writer) ([]int, error) {
	a := save.Archive{CreatedAt: time.Now().UTC(), Slots: map[int]json.RawMessage{}}
	for slot := 1; slot <= storage.MaxSlots; slot++ {
		raw, ok, err := storage.LoadSlot(ctx, store, slot)
		if err != nil {
			return nil, fmt.Errorf("read slot %d: %w", slot, err)
		}
		if ok {
			a.Slots[slot] = json.RawMessage(raw)
		}
	}
	if err := save.WriteArchive(w, a); err != nil {
		return nil, err
	}

	slots := sortedSlots(a)
	slog.Info(LogMsgExported, "slots", slots)
	return slots, nil
}

// Restore reads an archive from r and writes its slots to store. Every record
// is validated first so a bad archive leaves storage untouched.
func Restore(ctx context.Context, store storage.Store, r io.Reader) ([]int, error) {
	a, err := save.ReadArchive(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSave, err)
	}

	codec := save.NewCodec(save.Defaults{})
	slots := sortedSlots(a)
	for _, slot := range slots {
		if err := storage.ValidateSlot(slot); err != nil {
			return nil, err
		}
		if reason, ok := codec.Validate(a.Slots[slot]); !ok {
			return nil, fmt.Errorf("%w: slot %d: %s", domain.ErrMalformedSave, slot, reason)
		}
	}

	for _, slot := range slots {
		if err := storage.SaveSlot(ctx, store, slot, a.Slots[slot]); err != nil {
			return nil, fmt.Errorf("write slot %d: %w", slot, err)
		}
	}

	slog.Info(LogMsgRestored, "slots", slots, "created_at", a.CreatedAt)
	return slots, nil
}

func sortedSlots(a save.Archive) []int {
	slots := make([]int, 0, len(a.Slots))
	for slot := range a.Slots {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}
