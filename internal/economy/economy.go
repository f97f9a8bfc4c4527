// Package economy implements buying, crafting and selling against the content registry.
// Every operation either fully applies or leaves the player untouched.
package economy

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// Catalog is the slice of the content registry the economy reads.
type Catalog interface {
	slots.MaxStacker
	Item(id domain.ItemID) (domain.ItemDef, bool)
	RecipeFor(output domain.ItemID) (domain.Recipe, bool)
	SellPrice(id domain.ItemID) int
}

// Buy debits gold and credits qty units of item.
func Buy(cat Catalog, p *domain.Player, item domain.ItemID, qty int) domain.Result {
	// 1. Validate request
	if qty <= 0 {
		return domain.Fail(domain.ReasonQty)
	}
	def, ok := cat.Item(item)
	if !ok || !def.Buyable() {
		return domain.Fail(domain.ReasonNotForSale)
	}

	// 2. Check funds and capacity. Dividing keeps huge quantities from overflowing the cost.
	price := *def.BuyPrice
	if price > 0 && qty > p.Gold/price {
		return domain.Fail(domain.ReasonGold)
	}
	cost := price * qty
	if !slots.CanAdd(cat, p.Inventory, item, qty) {
		return domain.Fail(domain.ReasonInvFull)
	}

	// 3. Apply
	slots.Add(cat, p.Inventory, item, qty)
	p.Gold -= cost
	return domain.Ok()
}

// Craft consumes qty times the recipe ingredients and adds the outputs.
func Craft(cat Catalog, p *domain.Player, output domain.ItemID, qty int) domain.Result {
	if qty <= 0 {
		return domain.Fail(domain.ReasonQty)
	}
	recipe, ok := cat.RecipeFor(output)
	if !ok {
		return domain.Fail(domain.ReasonNoRecipe)
	}

	for ing, need := range recipe.Ingredients {
		if need > 0 && slots.Count(p.Inventory, ing)/need < qty {
			return domain.Fail(domain.ReasonMissing)
		}
	}

	// Capacity is checked against the inventory after ingredients are gone,
	// since consuming them may free slots.
	trial := p.Inventory.Clone()
	for ing, need := range recipe.Ingredients {
		slots.Consume(trial, ing, need*qty)
	}
	if !slots.Add(cat, trial, recipe.Output, recipe.Qty*qty) {
		return domain.Fail(domain.ReasonInvFull)
	}

	copy(p.Inventory, trial)
	return domain.Ok()
}

// SellValue is the gold a stack fetches.
func SellValue(cat Catalog, st *domain.ItemStack) int {
	if st == nil || st.Qty <= 0 {
		return 0
	}
	return cat.SellPrice(st.Item) * st.Qty
}

// SellStack credits the stack's value. It never fails for a non-empty stack.
func SellStack(cat Catalog, p *domain.Player, st *domain.ItemStack) int {
	gold := SellValue(cat, st)
	p.Gold += gold
	return gold
}

// SellAll empties a container and returns the gold earned and units sold.
func SellAll(cat Catalog, container domain.Slots) (gold, items int) {
	for i, st := range container {
		if st == nil || st.Qty <= 0 {
			container[i] = nil
			continue
		}
		gold += SellValue(cat, st)
		items += st.Qty
		container[i] = nil
	}
	return gold, items
}
