package engine

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// The held stack lives with the caller: pickups hand it out, places take it
// back and return whatever is left in hand.

func (e *Engine) InventoryPickup(i int) *domain.ItemStack {
	return slots.Pickup(e.player.Inventory, i)
}

func (e *Engine) InventorySplitHalf(i int) *domain.ItemStack {
	return slots.SplitHalf(e.player.Inventory, i)
}

func (e *Engine) InventoryPlace(i int, held *domain.ItemStack) *domain.ItemStack {
	return slots.Place(e.content, e.player.Inventory, i, held)
}

func (e *Engine) InventoryPlaceOne(i int, held *domain.ItemStack) domain.PlaceOneResult {
	return slots.PlaceOne(e.content, e.player.Inventory, i, held)
}

// chestSlots returns the live slots of the chest at (x, y).
func (e *Engine) chestSlots(x, y int) (domain.Slots, bool) {
	chest, ok := e.objects.Chest(domain.At(x, y))
	if !ok {
		return nil, false
	}
	return chest.Slots, true
}

// GetChestSlots returns a copy of a chest's contents.
func (e *Engine) GetChestSlots(x, y int) (domain.Slots, bool) {
	s, ok := e.chestSlots(x, y)
	return s.Clone(), ok
}

func (e *Engine) ChestPickup(x, y, i int) *domain.ItemStack {
	s, _ := e.chestSlots(x, y)
	return slots.Pickup(s, i)
}

func (e *Engine) ChestSplitHalf(x, y, i int) *domain.ItemStack {
	s, _ := e.chestSlots(x, y)
	return slots.SplitHalf(s, i)
}

// ChestPlace drops held into a chest slot. Without a chest the stack stays in hand.
func (e *Engine) ChestPlace(x, y, i int, held *domain.ItemStack) *domain.ItemStack {
	s, ok := e.chestSlots(x, y)
	if !ok {
		return held
	}
	return slots.Place(e.content, s, i, held)
}

func (e *Engine) ChestPlaceOne(x, y, i int, held *domain.ItemStack) domain.PlaceOneResult {
	s, ok := e.chestSlots(x, y)
	if !ok {
		return domain.PlaceOneResult{Remaining: held}
	}
	return slots.PlaceOne(e.content, s, i, held)
}

func (e *Engine) shippingSlots() (domain.Slots, bool) {
	_, bin, ok := e.objects.ShippingBin()
	if !ok {
		return nil, false
	}
	return bin.Slots, true
}

// GetShippingSlots returns a copy of the shipping bin's contents.
func (e *Engine) GetShippingSlots() (domain.Slots, bool) {
	s, ok := e.shippingSlots()
	return s.Clone(), ok
}

func (e *Engine) ShippingPickup(i int) *domain.ItemStack {
	s, _ := e.shippingSlots()
	return slots.Pickup(s, i)
}

func (e *Engine) ShippingSplitHalf(i int) *domain.ItemStack {
	s, _ := e.shippingSlots()
	return slots.SplitHalf(s, i)
}

func (e *Engine) ShippingPlace(i int, held *domain.ItemStack) *domain.ItemStack {
	s, ok := e.shippingSlots()
	if !ok {
		return held
	}
	return slots.Place(e.content, s, i, held)
}

func (e *Engine) ShippingPlaceOne(i int, held *domain.ItemStack) domain.PlaceOneResult {
	s, ok := e.shippingSlots()
	if !ok {
		return domain.PlaceOneResult{Remaining: held}
	}
	return slots.PlaceOne(e.content, s, i, held)
}
