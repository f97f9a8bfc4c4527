package domain

// NpcID identifies a villager.
type NpcID string

const (
	NpcTownie   NpcID = "townie"
	NpcMerchant NpcID = "merchant"
)

// GiftTaste is how much an NPC likes receiving an item.
type GiftTaste string

const (
	TasteLoved    GiftTaste = "loved"
	TasteLiked    GiftTaste = "liked"
	TasteNeutral  GiftTaste = "neutral"
	TasteDisliked GiftTaste = "disliked"
)

// NpcDef is a villager definition.
type NpcDef struct {
	ID         NpcID                `json:"id"`
	Name       string               `json:"name"`
	GiftTastes map[ItemID]GiftTaste `json:"giftTastes,omitempty"`
}

// TasteFor returns the NPC's taste for an item, neutral when unlisted.
func (d NpcDef) TasteFor(item ItemID) GiftTaste {
	if t, ok := d.GiftTastes[item]; ok {
		return t
	}
	return TasteNeutral
}

// Relationship tracks friendship with one NPC. Day fields are 0 when the action never happened.
type Relationship struct {
	Friendship  int `json:"friendship"`
	LastTalkDay int `json:"lastTalkDay"`
	LastGiftDay int `json:"lastGiftDay"`
}

// Quest is the single active delivery request.
type Quest struct {
	DayIssued int    `json:"dayIssued"`
	Item      ItemID `json:"itemId"`
	Qty       int    `json:"qty"`
	Reward    int    `json:"rewardGold"`
	Completed bool   `json:"completed"`
}
