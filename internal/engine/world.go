package engine

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/objects"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// free reports whether an object may be placed at c.
func (e *Engine) free(c domain.Coord) bool {
	return !e.objects.Occupied(c) && !e.field.Farmed(c)
}

// Chop swings the axe at a wood node or tree.
func (e *Engine) Chop(x, y int) bool {
	return e.strike(domain.At(x, y), objects.ToolAxe, ActionChop)
}

// Mine swings the pickaxe at a stone node.
func (e *Engine) Mine(x, y int) bool {
	return e.strike(domain.At(x, y), objects.ToolPickaxe, ActionMine)
}

// Scythe cuts a weed.
func (e *Engine) Scythe(x, y int) bool {
	return e.strike(domain.At(x, y), objects.ToolScythe, ActionScythe)
}

// strike applies one tool hit. A hit that would destroy the object is refused
// when its drops do not fit the inventory.
func (e *Engine) strike(c domain.Coord, tool objects.Tool, a Action) bool {
	s, ok := e.objects.PlanStrike(c, tool, e.day)
	cost := e.CostOf(a)
	if !ok || e.player.Energy < cost.Energy {
		return e.resolved(a, false, "")
	}
	if s.Destroyed && !slots.CanAddAll(e.content, e.player.Inventory, s.Drops) {
		return e.resolved(a, false, domain.ReasonInvFull)
	}
	e.objects.Apply(s)
	slots.AddAll(e.content, e.player.Inventory, s.Drops)
	e.spend(cost)
	return e.resolved(a, true, "")
}

// PlaceResource spawns a wood or stone node at full hit points.
func (e *Engine) PlaceResource(x, y int, kind domain.ObjectKind) bool {
	c := domain.At(x, y)
	if !domain.IsResourceKind(kind) || !e.free(c) {
		return false
	}
	return e.objects.Place(c, &domain.ResourceNode{Resource: kind, HP: domain.ResourceNodeHP})
}

// PlaceWeed spawns a weed.
func (e *Engine) PlaceWeed(x, y int) bool {
	c := domain.At(x, y)
	if !e.free(c) {
		return false
	}
	return e.objects.Place(c, &domain.Weed{HP: domain.WeedHP})
}

// PlantTree plants an acorn from the inventory as a tree seed.
func (e *Engine) PlantTree(x, y int) bool {
	c := domain.At(x, y)
	cost := e.CostOf(ActionPlantTree)
	if !e.free(c) || e.player.Energy < cost.Energy || slots.Count(e.player.Inventory, domain.ItemAcorn) < 1 {
		return e.resolved(ActionPlantTree, false, "")
	}
	slots.Consume(e.player.Inventory, domain.ItemAcorn, 1)
	e.objects.Place(c, objects.NewTree())
	e.spend(cost)
	return e.resolved(ActionPlantTree, true, "")
}

// placeFromInventory puts obj at c, paying one item from the inventory.
func (e *Engine) placeFromInventory(c domain.Coord, item domain.ItemID, obj domain.PlacedObject) bool {
	if !e.free(c) || slots.Count(e.player.Inventory, item) < 1 {
		return e.resolved(ActionPlace, false, "")
	}
	slots.Consume(e.player.Inventory, item, 1)
	e.objects.Place(c, obj)
	return e.resolved(ActionPlace, true, "")
}

// PlaceChest places a chest item from the inventory as an empty chest.
func (e *Engine) PlaceChest(x, y int) bool {
	return e.placeFromInventory(domain.At(x, y), domain.ItemChest,
		&domain.Chest{Slots: domain.NewSlots(domain.ContainerSize)})
}

// PlaceSimpleObject places a fence, path or sprinkler from the inventory.
func (e *Engine) PlaceSimpleObject(x, y int, kind domain.ObjectKind) bool {
	if !domain.IsSimpleKind(kind) {
		return false
	}
	return e.placeFromInventory(domain.At(x, y), domain.ItemID(kind), &domain.SimplePlaceable{Placeable: kind})
}

// PlacePreservesJar places an idle jar from the inventory.
func (e *Engine) PlacePreservesJar(x, y int) bool {
	return e.placeFromInventory(domain.At(x, y), domain.ItemPreservesJar, &domain.PreservesJar{})
}

// PickupSimpleObject returns a fence, path or sprinkler to the inventory.
func (e *Engine) PickupSimpleObject(x, y int) bool {
	c := domain.At(x, y)
	obj, ok := e.objects.Lookup(c)
	sp, isSimple := obj.(*domain.SimplePlaceable)
	if !ok || !isSimple || !slots.CanAdd(e.content, e.player.Inventory, domain.ItemID(sp.Placeable), 1) {
		return e.resolved(ActionPickup, false, "")
	}
	e.objects.Remove(c)
	slots.Add(e.content, e.player.Inventory, domain.ItemID(sp.Placeable), 1)
	return e.resolved(ActionPickup, true, "")
}

// PickupChestIfEmpty returns an empty chest to the inventory.
func (e *Engine) PickupChestIfEmpty(x, y int) domain.Result {
	c := domain.At(x, y)
	chest, ok := e.objects.Chest(c)
	switch {
	case !ok:
		return e.result(ActionPickup, domain.Fail(domain.ReasonNotAChest))
	case !slots.IsEmpty(chest.Slots):
		return e.result(ActionPickup, domain.Fail(domain.ReasonNotEmpty))
	case !slots.CanAdd(e.content, e.player.Inventory, domain.ItemChest, 1):
		return e.result(ActionPickup, domain.Fail(domain.ReasonInvFull))
	}
	e.objects.Remove(c)
	slots.Add(e.content, e.player.Inventory, domain.ItemChest, 1)
	return e.result(ActionPickup, domain.Ok())
}

// PickupPreservesJarIfIdle returns an idle jar to the inventory.
func (e *Engine) PickupPreservesJarIfIdle(x, y int) domain.Result {
	c := domain.At(x, y)
	e.objects.UpdateMachines(e.AbsoluteMinutes())
	jar, ok := e.objects.Jar(c)
	switch {
	case !ok:
		return e.result(ActionPickup, domain.Fail(domain.ReasonNotAJar))
	case !jar.Idle():
		return e.result(ActionPickup, domain.Fail(domain.ReasonBusy))
	case !slots.CanAdd(e.content, e.player.Inventory, domain.ItemPreservesJar, 1):
		return e.result(ActionPickup, domain.Fail(domain.ReasonInvFull))
	}
	e.objects.Remove(c)
	slots.Add(e.content, e.player.Inventory, domain.ItemPreservesJar, 1)
	return e.result(ActionPickup, domain.Ok())
}

// EnsureShippingBin returns the shipping bin's position, placing one on the
// nearest free tile around near when the world has none.
func (e *Engine) EnsureShippingBin(near domain.Coord) (domain.Coord, bool) {
	if c, _, ok := e.objects.ShippingBin(); ok {
		return c, true
	}
	c, ok := objects.FindFreeNear(near, e.tuning.ShippingBinSearchRadius, e.free)
	if !ok {
		return domain.Coord{}, false
	}
	e.objects.Place(c, &domain.ShippingBin{Slots: domain.NewSlots(domain.ContainerSize)})
	e.log.Debug(LogMsgShippingBinAdded, "at", c)
	return c, true
}
