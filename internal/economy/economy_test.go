package economy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CokeFamer_Go/internal/content"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

func newPlayer(gold int) *domain.Player {
	return &domain.Player{Gold: gold, Inventory: domain.NewSlots(domain.InventorySize)}
}

func give(t *testing.T, p *domain.Player, id domain.ItemID, qty int) {
	t.Helper()
	require.True(t, slots.Add(content.Default(), p.Inventory, id, qty))
}

func TestBuy(t *testing.T) {
	reg := content.Default()

	t.Run("debits gold and credits seeds", func(t *testing.T) {
		p := newPlayer(500)
		give(t, p, domain.ItemParsnipSeed, 15)
		res := Buy(reg, p, domain.ItemParsnipSeed, 5)
		assert.True(t, res.OK)
		assert.Equal(t, 400, p.Gold)
		assert.Equal(t, 20, slots.Count(p.Inventory, domain.ItemParsnipSeed))
	})

	tests := []struct {
		name   string
		gold   int
		item   domain.ItemID
		qty    int
		fill   bool
		reason domain.Reason
	}{
		{"zero quantity", 500, domain.ItemParsnipSeed, 0, false, domain.ReasonQty},
		{"not buyable", 500, domain.ItemParsnip, 1, false, domain.ReasonNotForSale},
		{"unknown item", 500, "diamond", 1, false, domain.ReasonNotForSale},
		{"insufficient gold", 99, domain.ItemParsnipSeed, 5, false, domain.ReasonGold},
		{"inventory full", 500, domain.ItemParsnipSeed, 1, true, domain.ReasonInvFull},
		{"quantity that overflows the cost", 500, domain.ItemParsnipSeed, math.MaxInt / 10, false, domain.ReasonGold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer(tt.gold)
			if tt.fill {
				for i := range p.Inventory {
					p.Inventory[i] = &domain.ItemStack{Item: domain.ItemWood, Qty: 1}
				}
			}
			before := p.Inventory.Clone()
			res := Buy(reg, p, tt.item, tt.qty)
			assert.False(t, res.OK)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, tt.gold, p.Gold)
			assert.Equal(t, before, p.Inventory)
		})
	}
}

func TestCraft(t *testing.T) {
	reg := content.Default()

	t.Run("chest from exactly ten wood", func(t *testing.T) {
		p := newPlayer(0)
		give(t, p, domain.ItemWood, 10)
		res := Craft(reg, p, domain.ItemChest, 1)
		require.True(t, res.OK)
		assert.Equal(t, 0, slots.Count(p.Inventory, domain.ItemWood))
		assert.Equal(t, 1, slots.Count(p.Inventory, domain.ItemChest))
	})

	t.Run("nine wood is not enough", func(t *testing.T) {
		p := newPlayer(0)
		give(t, p, domain.ItemWood, 9)
		before := p.Inventory.Clone()
		res := Craft(reg, p, domain.ItemChest, 1)
		assert.Equal(t, domain.Fail(domain.ReasonMissing), res)
		assert.Equal(t, before, p.Inventory)
	})

	t.Run("multiple ingredients scale with quantity", func(t *testing.T) {
		p := newPlayer(0)
		give(t, p, domain.ItemStone, 10)
		give(t, p, domain.ItemFiber, 10)
		require.True(t, Craft(reg, p, domain.ItemSprinkler, 2).OK)
		assert.Equal(t, 2, slots.Count(p.Inventory, domain.ItemSprinkler))
		assert.Equal(t, 0, slots.Count(p.Inventory, domain.ItemStone))
	})

	t.Run("freed slots count toward capacity", func(t *testing.T) {
		p := newPlayer(0)
		for i := range p.Inventory {
			p.Inventory[i] = &domain.ItemStack{Item: domain.ItemAcorn, Qty: 1}
		}
		p.Inventory[0] = &domain.ItemStack{Item: domain.ItemWood, Qty: 2}
		require.True(t, Craft(reg, p, domain.ItemFence, 1).OK)
		assert.Equal(t, &domain.ItemStack{Item: domain.ItemFence, Qty: 1}, p.Inventory[0])
	})

	t.Run("huge quantity is missing ingredients", func(t *testing.T) {
		p := newPlayer(0)
		give(t, p, domain.ItemWood, 10)
		assert.Equal(t, domain.Fail(domain.ReasonMissing), Craft(reg, p, domain.ItemChest, math.MaxInt/5+1))
		assert.Equal(t, 10, slots.Count(p.Inventory, domain.ItemWood))
	})

	t.Run("no recipe", func(t *testing.T) {
		p := newPlayer(0)
		assert.Equal(t, domain.ReasonNoRecipe, Craft(reg, p, domain.ItemParsnip, 1).Reason)
		assert.Equal(t, domain.ReasonQty, Craft(reg, p, domain.ItemChest, 0).Reason)
	})
}

func TestSell(t *testing.T) {
	reg := content.Default()
	p := newPlayer(10)

	gold := SellStack(reg, p, &domain.ItemStack{Item: domain.ItemParsnip, Qty: 3})
	assert.Equal(t, 105, gold)
	assert.Equal(t, 115, p.Gold)
	assert.Equal(t, 0, SellStack(reg, p, nil))

	bin := domain.NewSlots(domain.ContainerSize)
	bin[0] = &domain.ItemStack{Item: domain.ItemParsnip, Qty: 2}
	bin[5] = &domain.ItemStack{Item: domain.ItemWood, Qty: 10}
	earned, items := SellAll(reg, bin)
	assert.Equal(t, 70+20, earned)
	assert.Equal(t, 12, items)
	assert.True(t, slots.IsEmpty(bin))
}
