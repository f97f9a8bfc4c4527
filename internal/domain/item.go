package domain

// ItemID identifies an item definition in the content registry.
type ItemID string

// Item identifiers referenced by engine rules. Everything else is data.
const (
	ItemParsnipSeed      ItemID = "parsnip_seed"
	ItemParsnip          ItemID = "parsnip"
	ItemPotatoSeed       ItemID = "potato_seed"
	ItemPotato           ItemID = "potato"
	ItemBlueberrySeed    ItemID = "blueberry_seed"
	ItemBlueberry        ItemID = "blueberry"
	ItemCranberrySeed    ItemID = "cranberry_seed"
	ItemCranberry        ItemID = "cranberry"
	ItemParsnipJar       ItemID = "parsnip_jar"
	ItemPotatoJar        ItemID = "potato_jar"
	ItemBlueberryJar     ItemID = "blueberry_jar"
	ItemCranberryJar     ItemID = "cranberry_jar"
	ItemWood             ItemID = "wood"
	ItemStone            ItemID = "stone"
	ItemFiber            ItemID = "fiber"
	ItemAcorn            ItemID = "acorn"
	ItemFence            ItemID = "fence"
	ItemPath             ItemID = "path"
	ItemSprinkler        ItemID = "sprinkler"
	ItemQualitySprinkler ItemID = "quality_sprinkler"
	ItemPreservesJar     ItemID = "preserves_jar"
	ItemChest            ItemID = "chest"
)

// ItemDef is an immutable item definition owned by the content registry.
type ItemDef struct {
	ID            ItemID `json:"id"`
	Name          string `json:"name"`
	MaxStack      int    `json:"maxStack"`
	BuyPrice      *int   `json:"buyPrice,omitempty"`
	SellPrice     int    `json:"sellPrice"`
	EnergyRestore *int   `json:"energyRestore,omitempty"`
}

// Buyable reports whether the item can be purchased.
func (d ItemDef) Buyable() bool {
	return d.BuyPrice != nil
}

// Edible reports whether eating the item restores energy.
func (d ItemDef) Edible() bool {
	return d.EnergyRestore != nil && *d.EnergyRestore > 0
}

// Recipe maps ingredient quantities to an output stack.
type Recipe struct {
	Output      ItemID         `json:"output"`
	Qty         int            `json:"qty"`
	Ingredients map[ItemID]int `json:"ingredients"`
}
