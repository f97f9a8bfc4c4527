// Package quest generates the daily delivery request and settles it.
package quest

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// Template is one entry of the daily quest pool before scaling.
type Template struct {
	Item   domain.ItemID
	Qty    int
	Reward int
}

// Pool is indexed by day mod len(Pool).
var Pool = []Template{
	{Item: domain.ItemWood, Qty: 10, Reward: 100},
	{Item: domain.ItemStone, Qty: 10, Reward: 100},
	{Item: domain.ItemFiber, Qty: 5, Reward: 60},
	{Item: domain.ItemParsnip, Qty: 3, Reward: 150},
}

const (
	weekLength = 7
	scaleEvery = 3
)

// Scale is the multiplier for a day: it steps up every third day of the week.
func Scale(day int) int {
	if day < 1 {
		day = 1
	}
	return 1 + ((day-1)%weekLength)/scaleEvery
}

// Generate builds the quest for a day. The same day always yields the same quest.
func Generate(day int) domain.Quest {
	idx := day % len(Pool)
	if idx < 0 {
		idx += len(Pool)
	}
	tpl := Pool[idx]
	m := Scale(day)
	return domain.Quest{
		DayIssued: day,
		Item:      tpl.Item,
		Qty:       tpl.Qty * m,
		Reward:    tpl.Reward * m,
	}
}

// Complete hands in the quest items and pays out the reward.
func Complete(q *domain.Quest, p *domain.Player) domain.Result {
	if q == nil {
		return domain.Fail(domain.ReasonNoQuest)
	}
	if q.Completed {
		return domain.Fail(domain.ReasonCompleted)
	}
	if !slots.Consume(p.Inventory, q.Item, q.Qty) {
		return domain.Fail(domain.ReasonMissingItem)
	}
	p.Gold += q.Reward
	q.Completed = true
	return domain.Ok()
}
