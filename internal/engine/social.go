package engine

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/event"
	"github.com/osse101/CokeFamer_Go/internal/quest"
)

// GetQuest returns today's quest.
func (e *Engine) GetQuest() domain.Quest {
	return e.quest
}

// CompleteQuest hands in the quest items for the reward.
func (e *Engine) CompleteQuest() domain.Result {
	r := quest.Complete(&e.quest, &e.player)
	if r.OK {
		e.publish(event.QuestCompleted, event.ItemsPayloadV1{
			Item: string(e.quest.Item),
			Qty:  e.quest.Qty,
			Gold: e.quest.Reward,
		})
	}
	return e.result(ActionQuest, r)
}

func (e *Engine) TalkToNpc(npc domain.NpcID) domain.Result {
	return e.result(ActionTalk, e.ledger.Talk(npc, e.day))
}

// GiftToNpc gives one item to a villager. An empty item picks from the
// inventory in gift priority order.
func (e *Engine) GiftToNpc(npc domain.NpcID, item domain.ItemID) domain.GiftResult {
	r := e.ledger.Gift(npc, item, e.day, &e.player)
	e.resolved(ActionGift, r.OK, r.Reason)
	return r
}

func (e *Engine) GetRelationship(npc domain.NpcID) domain.Relationship {
	return e.ledger.Get(npc)
}

// GetRelationships returns every villager's relationship, including ones
// never spoken to.
func (e *Engine) GetRelationships() map[domain.NpcID]domain.Relationship {
	out := e.ledger.All()
	for _, def := range e.content.Npcs() {
		if _, ok := out[def.ID]; !ok {
			out[def.ID] = domain.Relationship{}
		}
	}
	return out
}
