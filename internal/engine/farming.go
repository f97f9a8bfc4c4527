package engine

import (
	"github.com/osse101/CokeFamer_Go/internal/calendar"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// Hoe tills bare ground.
func (e *Engine) Hoe(x, y int) bool {
	c := domain.At(x, y)
	cost := e.CostOf(ActionHoe)
	if e.objects.Occupied(c) || e.field.Get(c).Tilled || e.player.Energy < cost.Energy {
		return e.resolved(ActionHoe, false, "")
	}
	e.field.Till(c)
	e.spend(cost)
	return e.resolved(ActionHoe, true, "")
}

// Water wets a tilled tile that is still dry today.
func (e *Engine) Water(x, y int) bool {
	c := domain.At(x, y)
	cost := e.CostOf(ActionWater)
	t := e.field.Get(c)
	if e.objects.Occupied(c) || !t.Tilled || t.Watered || e.player.Energy < cost.Energy {
		return e.resolved(ActionWater, false, "")
	}
	e.field.Water(c)
	e.spend(cost)
	return e.resolved(ActionWater, true, "")
}

// Plant sows crop on a tilled, empty tile, using one of its seeds.
func (e *Engine) Plant(x, y int, crop domain.CropID) bool {
	c := domain.At(x, y)
	cost := e.CostOf(ActionPlant)
	def, ok := e.content.Crop(crop)
	switch {
	case !ok,
		e.objects.Occupied(c),
		e.player.Energy < cost.Energy,
		!e.field.CanPlant(c, def, calendar.SeasonOf(e.day)),
		slots.Count(e.player.Inventory, def.SeedItem) < 1:
		return e.resolved(ActionPlant, false, "")
	}
	slots.Consume(e.player.Inventory, def.SeedItem, 1)
	e.field.Plant(c, def, calendar.SeasonOf(e.day))
	e.spend(cost)
	return e.resolved(ActionPlant, true, "")
}

// IsHarvestable reports whether the crop at (x, y) is ripe.
func (e *Engine) IsHarvestable(x, y int) bool {
	return e.field.IsHarvestable(domain.At(x, y))
}

// Harvest picks a ripe crop into the inventory. It fails without side effects
// when the produce does not fit.
func (e *Engine) Harvest(x, y int) bool {
	c := domain.At(x, y)
	cost := e.CostOf(ActionHarvest)
	drop := e.field.PeekHarvest(c)
	if drop == nil || e.player.Energy < cost.Energy || !slots.CanAdd(e.content, e.player.Inventory, drop.Item, drop.Qty) {
		return e.resolved(ActionHarvest, false, "")
	}
	drop = e.field.Harvest(c)
	slots.Add(e.content, e.player.Inventory, drop.Item, drop.Qty)
	e.spend(cost)
	return e.resolved(ActionHarvest, true, "")
}
