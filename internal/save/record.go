// Package save defines the on-disk save records, their forward migrations,
// and the archive format used for backups.
package save

import "github.com/osse101/CokeFamer_Go/internal/domain"

// CurrentVersion is the schema version written by Encode.
const CurrentVersion = 6

// TileRecord is one stored tile. Crop state gained the harvest counter in v3;
// earlier records simply omit it.
type TileRecord struct {
	X     int              `json:"tx"`
	Y     int              `json:"ty"`
	State domain.TileState `json:"state"`
}

// ObjectRecord is one stored object.
type ObjectRecord struct {
	X      int         `json:"tx"`
	Y      int         `json:"ty"`
	Object ObjectState `json:"object"`
}

// SaveV0 is the first layout: day, a flat item list and tiles.
type SaveV0 struct {
	Version   int                `json:"version"`
	Day       int                `json:"day"`
	Inventory []domain.ItemStack `json:"inventory"`
	Tiles     []TileRecord       `json:"tiles"`
}

// SaveV1 added the clock and energy.
type SaveV1 struct {
	Version   int                `json:"version"`
	Day       int                `json:"day"`
	Minutes   *int               `json:"minutes,omitempty"`
	Energy    *int               `json:"energy,omitempty"`
	Inventory []domain.ItemStack `json:"inventory"`
	Tiles     []TileRecord       `json:"tiles"`
}

// SaveV2 replaced the item list with positional slots and added gold.
type SaveV2 struct {
	Version        int          `json:"version"`
	Day            int          `json:"day"`
	Minutes        *int         `json:"minutes,omitempty"`
	Energy         *int         `json:"energy,omitempty"`
	Gold           *int         `json:"gold,omitempty"`
	InventorySlots domain.Slots `json:"inventorySlots"`
	Tiles          []TileRecord `json:"tiles"`
}

// SaveV3 has the v2 layout; tiles may carry crop harvest counters.
type SaveV3 SaveV2

// SaveV4 added placed objects.
type SaveV4 struct {
	Version        int            `json:"version"`
	Day            int            `json:"day"`
	Minutes        *int           `json:"minutes,omitempty"`
	Energy         *int           `json:"energy,omitempty"`
	Gold           *int           `json:"gold,omitempty"`
	InventorySlots domain.Slots   `json:"inventorySlots"`
	Tiles          []TileRecord   `json:"tiles"`
	Objects        []ObjectRecord `json:"objects"`
}

// QuestV5 predates tracking the issue day.
type QuestV5 struct {
	Item      domain.ItemID `json:"itemId"`
	Qty       int           `json:"qty"`
	Reward    int           `json:"rewardGold"`
	Completed bool          `json:"completed"`
}

// SaveV5 added the quest and a flat friendship table.
type SaveV5 struct {
	Version        int                  `json:"version"`
	Day            int                  `json:"day"`
	Minutes        *int                 `json:"minutes,omitempty"`
	Energy         *int                 `json:"energy,omitempty"`
	Gold           *int                 `json:"gold,omitempty"`
	InventorySlots domain.Slots         `json:"inventorySlots"`
	Tiles          []TileRecord         `json:"tiles"`
	Objects        []ObjectRecord       `json:"objects"`
	Quest          *QuestV5             `json:"quest,omitempty"`
	Friendship     map[domain.NpcID]int `json:"friendship,omitempty"`
}

// SaveV6 is the current layout.
type SaveV6 struct {
	Version        int                                  `json:"version"`
	Day            int                                  `json:"day"`
	Minutes        int                                  `json:"minutes"`
	Energy         int                                  `json:"energy"`
	Gold           int                                  `json:"gold"`
	InventorySlots domain.Slots                         `json:"inventorySlots"`
	Tiles          []TileRecord                         `json:"tiles"`
	Objects        []ObjectRecord                       `json:"objects"`
	Quest          *domain.Quest                        `json:"quest"`
	Relationships  map[domain.NpcID]domain.Relationship `json:"relationships"`
}

// Current is the latest record type.
type Current = SaveV6
