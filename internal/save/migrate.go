package save

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/quest"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// Defaults are the new-game values used for fields an older record lacks.
type Defaults struct {
	Minutes int
	Energy  int
	Gold    int
	Stacks  slots.MaxStacker
}

// MigrateV0 adds the clock fields, left unset so the next step defaults them.
func MigrateV0(in SaveV0) SaveV1 {
	return SaveV1{
		Version:   1,
		Day:       in.Day,
		Inventory: in.Inventory,
		Tiles:     in.Tiles,
	}
}

// MigrateV1 turns the flat item list into positional slots, stacking by item limits.
func MigrateV1(in SaveV1, d Defaults) SaveV2 {
	inv := domain.NewSlots(domain.InventorySize)
	for _, st := range in.Inventory {
		slots.Add(d.Stacks, inv, st.Item, st.Qty)
	}
	return SaveV2{
		Version:        2,
		Day:            in.Day,
		Minutes:        in.Minutes,
		Energy:         in.Energy,
		InventorySlots: inv,
		Tiles:          in.Tiles,
	}
}

// MigrateV2 only bumps the version; v3 tiles may carry harvest counters.
func MigrateV2(in SaveV2) SaveV3 {
	out := SaveV3(in)
	out.Version = 3
	return out
}

// MigrateV3 adds an empty object list.
func MigrateV3(in SaveV3) SaveV4 {
	return SaveV4{
		Version:        4,
		Day:            in.Day,
		Minutes:        in.Minutes,
		Energy:         in.Energy,
		Gold:           in.Gold,
		InventorySlots: in.InventorySlots,
		Tiles:          in.Tiles,
		Objects:        []ObjectRecord{},
	}
}

// MigrateV4 adds the day's quest and an empty friendship table.
func MigrateV4(in SaveV4) SaveV5 {
	q := quest.Generate(in.Day)
	return SaveV5{
		Version:        5,
		Day:            in.Day,
		Minutes:        in.Minutes,
		Energy:         in.Energy,
		Gold:           in.Gold,
		InventorySlots: in.InventorySlots,
		Tiles:          in.Tiles,
		Objects:        in.Objects,
		Quest:          &QuestV5{Item: q.Item, Qty: q.Qty, Reward: q.Reward},
		Friendship:     map[domain.NpcID]int{},
	}
}

// MigrateV5 resolves every remaining default and expands friendship into relationships.
func MigrateV5(in SaveV5, d Defaults) SaveV6 {
	out := SaveV6{
		Version:        6,
		Day:            max(in.Day, 1),
		Minutes:        valueOr(in.Minutes, d.Minutes),
		Energy:         valueOr(in.Energy, d.Energy),
		Gold:           valueOr(in.Gold, d.Gold),
		InventorySlots: slots.Normalize(in.InventorySlots, domain.InventorySize),
		Tiles:          in.Tiles,
		Objects:        in.Objects,
		Relationships:  make(map[domain.NpcID]domain.Relationship, len(in.Friendship)),
	}
	if out.Objects == nil {
		out.Objects = []ObjectRecord{}
	}
	if in.Quest != nil {
		out.Quest = &domain.Quest{
			DayIssued: out.Day,
			Item:      in.Quest.Item,
			Qty:       in.Quest.Qty,
			Reward:    in.Quest.Reward,
			Completed: in.Quest.Completed,
		}
	} else {
		q := quest.Generate(out.Day)
		out.Quest = &q
	}
	for npc, f := range in.Friendship {
		out.Relationships[npc] = domain.Relationship{Friendship: max(f, 0)}
	}
	return out
}

// migration rewrites a raw record of one version into the next.
type migration func(raw []byte) ([]byte, error)

// step lifts a typed, pure migration into the raw table form.
func step[From, To any](fn func(From) To) migration {
	return func(raw []byte) ([]byte, error) {
		var in From
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSave, err)
		}
		return json.Marshal(fn(in))
	}
}

// Migrator upgrades raw records to CurrentVersion.
type Migrator struct {
	table [CurrentVersion]migration
}

// NewMigrator builds the table; entry v upgrades a vN record to vN+1.
func NewMigrator(d Defaults) *Migrator {
	return &Migrator{table: [CurrentVersion]migration{
		0: step(MigrateV0),
		1: step(func(in SaveV1) SaveV2 { return MigrateV1(in, d) }),
		2: step(MigrateV2),
		3: step(MigrateV3),
		4: step(MigrateV4),
		5: step(func(in SaveV5) SaveV6 { return MigrateV5(in, d) }),
	}}
}

// Upgrade applies migrations from version up to CurrentVersion.
func (m *Migrator) Upgrade(raw []byte, version int) ([]byte, error) {
	if version < 0 || version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownSaveVersion, version)
	}
	for v := version; v < CurrentVersion; v++ {
		next, err := m.table[v](raw)
		if err != nil {
			return nil, fmt.Errorf("migrating v%d: %w", v, err)
		}
		raw = next
	}
	return raw, nil
}
