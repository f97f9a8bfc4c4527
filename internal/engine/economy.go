package engine

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/economy"
	"github.com/osse101/CokeFamer_Go/internal/event"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// Buy purchases qty units of item from the shop.
func (e *Engine) Buy(item domain.ItemID, qty int) domain.Result {
	before := e.player.Gold
	r := economy.Buy(e.content, &e.player, item, qty)
	if r.OK {
		e.publish(event.ItemsBought, event.ItemsPayloadV1{Item: string(item), Qty: qty, Gold: before - e.player.Gold})
	}
	return e.result(ActionBuy, r)
}

// Craft makes qty batches of output from its recipe.
func (e *Engine) Craft(output domain.ItemID, qty int) domain.Result {
	r := economy.Craft(e.content, &e.player, output, qty)
	if r.OK {
		recipe, _ := e.content.RecipeFor(output)
		e.publish(event.ItemsCrafted, event.ItemsPayloadV1{Item: string(output), Qty: recipe.Qty * qty})
	}
	return e.result(ActionCraft, r)
}

// SellStack sells a stack the caller is holding and returns the gold earned.
func (e *Engine) SellStack(st *domain.ItemStack) int {
	gold := economy.SellStack(e.content, &e.player, st)
	if gold > 0 {
		e.publish(event.ItemsSold, event.ItemsPayloadV1{Item: string(st.Item), Qty: st.Qty, Gold: gold})
	}
	return gold
}

// SellShippingBin sells the bin's contents immediately instead of at rollover.
func (e *Engine) SellShippingBin() domain.SleepResult {
	var res domain.SleepResult
	if s, ok := e.shippingSlots(); ok {
		res.ShippedGold, res.ItemsSold = economy.SellAll(e.content, s)
		e.player.Gold += res.ShippedGold
	}
	if res.ShippedGold > 0 {
		e.publish(event.BinShipped, event.ShipmentPayloadV1{ShippedGold: res.ShippedGold, ItemsSold: res.ItemsSold})
	}
	return res
}

// Eat consumes one edible item and restores energy up to the maximum.
func (e *Engine) Eat(item domain.ItemID) domain.Result {
	def, ok := e.content.Item(item)
	switch {
	case !ok:
		return e.result(ActionEat, domain.Fail(domain.ReasonUnknownItem))
	case !def.Edible():
		return e.result(ActionEat, domain.Fail(domain.ReasonNotEdible))
	case !slots.Consume(e.player.Inventory, item, 1):
		return e.result(ActionEat, domain.Fail(domain.ReasonMissingItem))
	}
	e.player.Energy = min(e.tuning.EnergyMax, e.player.Energy+*def.EnergyRestore)
	return e.result(ActionEat, domain.Ok())
}
