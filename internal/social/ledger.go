// Package social tracks friendship with villagers.
package social

import (
	"sort"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// Friendship gains and losses.
const (
	TalkPoints     = 20
	LovedPoints    = 80
	LikedPoints    = 45
	NeutralPoints  = 20
	DislikedPoints = -20
)

// GiftPriority is the order items are picked when the caller names none.
var GiftPriority = []domain.ItemID{
	domain.ItemBlueberry,
	domain.ItemCranberry,
	domain.ItemPotato,
	domain.ItemParsnip,
	domain.ItemWood,
	domain.ItemFiber,
	domain.ItemStone,
}

// Directory resolves villagers and items. *content.Registry satisfies it.
type Directory interface {
	Npc(id domain.NpcID) (domain.NpcDef, bool)
	Item(id domain.ItemID) (domain.ItemDef, bool)
}

// Ledger holds one relationship per villager, zero until first contact.
type Ledger struct {
	dir  Directory
	rels map[domain.NpcID]domain.Relationship
}

func NewLedger(dir Directory) *Ledger {
	return &Ledger{dir: dir, rels: make(map[domain.NpcID]domain.Relationship)}
}

// Get returns the relationship with npc.
func (l *Ledger) Get(npc domain.NpcID) domain.Relationship {
	return l.rels[npc]
}

// Set overwrites a relationship, used when restoring a save.
func (l *Ledger) Set(npc domain.NpcID, rel domain.Relationship) {
	if rel.Friendship < 0 {
		rel.Friendship = 0
	}
	l.rels[npc] = rel
}

// All returns a copy of every stored relationship.
func (l *Ledger) All() map[domain.NpcID]domain.Relationship {
	out := make(map[domain.NpcID]domain.Relationship, len(l.rels))
	for k, v := range l.rels {
		out[k] = v
	}
	return out
}

// Npcs lists villagers with a stored relationship, sorted.
func (l *Ledger) Npcs() []domain.NpcID {
	out := make([]domain.NpcID, 0, len(l.rels))
	for k := range l.rels {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Talk grants friendship once per day.
func (l *Ledger) Talk(npc domain.NpcID, day int) domain.Result {
	if _, ok := l.dir.Npc(npc); !ok {
		return domain.Fail(domain.ReasonUnknownNpc)
	}
	rel := l.rels[npc]
	if rel.LastTalkDay == day {
		return domain.Fail(domain.ReasonAlreadyTalked)
	}
	rel.Friendship += TalkPoints
	rel.LastTalkDay = day
	l.rels[npc] = rel
	return domain.Ok()
}

// Gift gives one unit of item, or the best candidate from GiftPriority when item is empty.
func (l *Ledger) Gift(npc domain.NpcID, item domain.ItemID, day int, p *domain.Player) domain.GiftResult {
	def, ok := l.dir.Npc(npc)
	if !ok {
		return domain.GiftResult{Reason: domain.ReasonUnknownNpc}
	}
	rel := l.rels[npc]
	if rel.LastGiftDay == day {
		return domain.GiftResult{Reason: domain.ReasonAlreadyGifted, Friendship: rel.Friendship}
	}

	if item == "" {
		item = pickGift(p.Inventory)
		if item == "" {
			return domain.GiftResult{Reason: domain.ReasonNoGiftItems, Friendship: rel.Friendship}
		}
	} else if _, ok := l.dir.Item(item); !ok {
		return domain.GiftResult{Reason: domain.ReasonUnknownItem, Friendship: rel.Friendship}
	}

	if !slots.Consume(p.Inventory, item, 1) {
		return domain.GiftResult{Reason: domain.ReasonMissingItem, Friendship: rel.Friendship}
	}

	taste := def.TasteFor(item)
	delta := TastePoints(taste)
	rel.Friendship = max(rel.Friendship+delta, 0)
	rel.LastGiftDay = day
	l.rels[npc] = rel

	return domain.GiftResult{
		OK:         true,
		Item:       item,
		Taste:      taste,
		Delta:      delta,
		Friendship: rel.Friendship,
	}
}

// TastePoints maps a gift taste to its friendship change.
func TastePoints(t domain.GiftTaste) int {
	switch t {
	case domain.TasteLoved:
		return LovedPoints
	case domain.TasteLiked:
		return LikedPoints
	case domain.TasteDisliked:
		return DislikedPoints
	default:
		return NeutralPoints
	}
}

func pickGift(inv domain.Slots) domain.ItemID {
	for _, id := range GiftPriority {
		if slots.Count(inv, id) > 0 {
			return id
		}
	}
	return ""
}
