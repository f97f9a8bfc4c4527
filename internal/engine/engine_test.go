package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/content"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/event"
	"github.com/osse101/CokeFamer_Go/internal/slots"
	"github.com/osse101/CokeFamer_Go/internal/storage/memory"
)

type fixture struct {
	engine *Engine
	store  *memory.Store
	bus    *event.MemoryBus
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.New()
	bus := event.NewMemoryBus()
	return fixture{
		engine: New(content.Default(), config.DefaultTuning(), store, bus, 1),
		store:  store,
		bus:    bus,
	}
}

func give(t *testing.T, e *Engine, id domain.ItemID, qty int) {
	t.Helper()
	require.True(t, slots.Add(e.content, e.player.Inventory, id, qty), "give %d %s", qty, id)
}

func fillInventory(e *Engine) {
	for i := range e.player.Inventory {
		e.player.Inventory[i] = &domain.ItemStack{Item: domain.ItemAcorn, Qty: 999}
	}
}

func TestNewGame(t *testing.T) {
	e := newFixture(t).engine

	assert.Equal(t, 1, e.Day())
	assert.Equal(t, 360, e.Minutes())
	assert.Equal(t, 270, e.Energy())
	assert.Equal(t, 500, e.Gold())
	assert.Equal(t, 15, e.CountItem(domain.ItemParsnipSeed))
	assert.Len(t, e.GetInventorySlots(), domain.InventorySize)
	assert.Empty(t, e.GetAllTiles())
	assert.Empty(t, e.GetAllObjects())
	assert.Equal(t, 1, e.GetQuest().DayIssued)
}

func TestBuyScenario(t *testing.T) {
	e := newFixture(t).engine

	r := e.Buy(domain.ItemParsnipSeed, 5)
	require.True(t, r.OK)
	assert.Equal(t, 400, e.Gold())
	assert.Equal(t, 20, e.CountItem(domain.ItemParsnipSeed))

	r = e.Buy(domain.ItemParsnipSeed, 1000)
	assert.Equal(t, domain.ReasonGold, r.Reason)
	assert.Equal(t, 400, e.Gold())
}

func TestGrowAndHarvestScenario(t *testing.T) {
	e := newFixture(t).engine

	require.True(t, e.Hoe(1, 1))
	require.True(t, e.Plant(1, 1, domain.CropParsnip))
	assert.Equal(t, 14, e.CountItem(domain.ItemParsnipSeed))

	for range 4 {
		assert.False(t, e.IsHarvestable(1, 1))
		e.Water(1, 1)
		e.SleepNextDay()
	}
	require.True(t, e.IsHarvestable(1, 1))

	require.True(t, e.Harvest(1, 1))
	assert.Equal(t, 1, e.CountItem(domain.ItemParsnip))
	assert.Nil(t, e.GetTile(1, 1).Crop)
	assert.True(t, e.GetTile(1, 1).Tilled)

	assert.False(t, e.Harvest(1, 1), "second harvest finds nothing")
	assert.Equal(t, 1, e.CountItem(domain.ItemParsnip))
}

func TestHarvestNeedsRoom(t *testing.T) {
	e := newFixture(t).engine
	e.field.Set(domain.At(0, 0), domain.TileState{
		Tilled: true,
		Crop:   &domain.CropState{Crop: domain.CropParsnip, Stage: 4},
	})
	require.True(t, e.IsHarvestable(0, 0))
	fillInventory(e)

	assert.False(t, e.Harvest(0, 0))
	assert.True(t, e.IsHarvestable(0, 0))
}

func TestCraftScenario(t *testing.T) {
	e := newFixture(t).engine
	give(t, e, domain.ItemWood, 10)

	require.True(t, e.Craft(domain.ItemChest, 1).OK)
	assert.Equal(t, 0, e.CountItem(domain.ItemWood))
	assert.Equal(t, 1, e.CountItem(domain.ItemChest))

	give(t, e, domain.ItemWood, 9)
	before := e.GetInventorySlots()
	r := e.Craft(domain.ItemChest, 1)
	assert.Equal(t, domain.ReasonMissing, r.Reason)
	assert.Equal(t, before, e.GetInventorySlots())
}

func TestChestSurvivesReload(t *testing.T) {
	f := newFixture(t)
	e := f.engine
	ctx := context.Background()
	give(t, e, domain.ItemChest, 1)
	require.True(t, e.PlaceChest(3, 3))

	held := e.InventoryPickup(0)
	require.Equal(t, 15, held.Qty)
	for range 5 {
		res := e.ChestPlaceOne(3, 3, 0, held)
		require.True(t, res.OK)
		held = res.Remaining
	}
	assert.Nil(t, e.InventoryPlace(0, held))
	require.NoError(t, e.SaveToStorage(ctx, 1))

	reloaded := New(content.Default(), config.DefaultTuning(), f.store, nil, 1)
	ok, err := reloaded.LoadFromStorage(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	chest, ok := reloaded.GetChestSlots(3, 3)
	require.True(t, ok)
	assert.Equal(t, &domain.ItemStack{Item: domain.ItemParsnipSeed, Qty: 5}, chest[0])
	assert.Equal(t, 10, reloaded.CountItem(domain.ItemParsnipSeed))
}

func TestPreservesJarScenario(t *testing.T) {
	e := newFixture(t).engine
	give(t, e, domain.ItemPreservesJar, 1)
	give(t, e, domain.ItemParsnip, 1)
	require.True(t, e.PlacePreservesJar(2, 2))

	r := e.InteractPreservesJar(2, 2, domain.ItemParsnip)
	require.True(t, r.OK)
	assert.Equal(t, domain.ItemParsnip, *r.Inserted)
	assert.Equal(t, 0, e.CountItem(domain.ItemParsnip))

	assert.Equal(t, domain.ReasonProcessing, e.InteractPreservesJar(2, 2, "").Reason)
	assert.Equal(t, domain.ReasonBusy, e.PickupPreservesJarIfIdle(2, 2).Reason)

	e.AdvanceMinutes(180)
	obj, ok := e.GetObject(2, 2)
	require.True(t, ok)
	jar := obj.(*domain.PreservesJar)
	require.NotNil(t, jar.Output)
	assert.Equal(t, domain.ItemParsnipJar, *jar.Output)

	r = e.InteractPreservesJar(2, 2, "")
	require.True(t, r.OK)
	assert.Equal(t, &domain.ItemStack{Item: domain.ItemParsnipJar, Qty: 1}, r.Collected)
	assert.Equal(t, 1, e.CountItem(domain.ItemParsnipJar))

	assert.True(t, e.PickupPreservesJarIfIdle(2, 2).OK)
	assert.Equal(t, 1, e.CountItem(domain.ItemPreservesJar))
}

func TestPreservesJarRejections(t *testing.T) {
	e := newFixture(t).engine
	give(t, e, domain.ItemPreservesJar, 1)
	require.True(t, e.PlacePreservesJar(0, 0))

	tests := []struct {
		name  string
		x     int
		input domain.ItemID
		want  domain.Reason
	}{
		{"no jar there", 5, "", domain.ReasonNotAJar},
		{"nothing to load", 0, "", domain.ReasonNoInput},
		{"not produce", 0, domain.ItemWood, domain.ReasonBadInput},
		{"produce not held", 0, domain.ItemPotato, domain.ReasonNoInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.InteractPreservesJar(tt.x, 0, tt.input)
			assert.False(t, r.OK)
			assert.Equal(t, tt.want, r.Reason)
		})
	}
}

func TestActionCosts(t *testing.T) {
	e := newFixture(t).engine

	tests := []struct {
		action Action
		want   config.ActionCost
	}{
		{ActionHoe, config.ActionCost{Minutes: 10, Energy: 2}},
		{ActionWater, config.ActionCost{Minutes: 10, Energy: 2}},
		{ActionPlant, config.ActionCost{Minutes: 10, Energy: 2}},
		{ActionHarvest, config.ActionCost{Minutes: 5, Energy: 0}},
		{ActionChop, config.ActionCost{Minutes: 10, Energy: 2}},
		{ActionMine, config.ActionCost{Minutes: 10, Energy: 2}},
		{ActionPlantTree, config.ActionCost{Minutes: 10, Energy: 2}},
		{ActionScythe, config.ActionCost{}},
		{ActionBuy, config.ActionCost{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, e.CostOf(tt.action))
		})
	}

	t.Run("spend floors energy", func(t *testing.T) {
		e.player.Energy = 1
		e.spend(config.ActionCost{Minutes: 10, Energy: 2})
		assert.Equal(t, 0, e.Energy())
		assert.Equal(t, 370, e.Minutes())
	})

	t.Run("exhausted player cannot hoe", func(t *testing.T) {
		e.player.Energy = 1
		before := e.Minutes()
		assert.False(t, e.CanAfford(ActionHoe))
		assert.False(t, e.Hoe(9, 9))
		assert.Equal(t, before, e.Minutes())
		assert.True(t, e.CanAfford(ActionScythe))
	})
}

func TestTileActionsBlockedByObjects(t *testing.T) {
	e := newFixture(t).engine
	require.True(t, e.PlaceWeed(0, 0))

	assert.False(t, e.Hoe(0, 0))
	assert.False(t, e.GetTile(0, 0).Tilled)

	require.True(t, e.Hoe(1, 0))
	assert.False(t, e.PlaceWeed(1, 0), "farmed tiles take no objects")
	assert.False(t, e.Hoe(1, 0), "already tilled")
	require.True(t, e.Water(1, 0))
	assert.False(t, e.Water(1, 0), "already watered")
}

func TestStrikes(t *testing.T) {
	t.Run("stone breaks on the third swing", func(t *testing.T) {
		e := newFixture(t).engine
		require.True(t, e.PlaceResource(4, 4, domain.KindStone))
		assert.False(t, e.Chop(4, 4), "axe does not mine")

		require.True(t, e.Mine(4, 4))
		require.True(t, e.Mine(4, 4))
		assert.Equal(t, 0, e.CountItem(domain.ItemStone))
		require.True(t, e.Mine(4, 4))
		assert.Equal(t, 5, e.CountItem(domain.ItemStone))

		_, ok := e.GetObject(4, 4)
		assert.False(t, ok)
		assert.Equal(t, 270-6, e.Energy())
		assert.Equal(t, 360+30, e.Minutes())
	})

	t.Run("weed is free and needs room for fiber", func(t *testing.T) {
		e := newFixture(t).engine
		require.True(t, e.PlaceWeed(1, 1))
		fillInventory(e)
		assert.False(t, e.Scythe(1, 1))
		_, ok := e.GetObject(1, 1)
		assert.True(t, ok)

		e.player.Inventory[0] = nil
		require.True(t, e.Scythe(1, 1))
		assert.Equal(t, 3, e.CountItem(domain.ItemFiber))
		assert.Equal(t, 270, e.Energy())
		assert.Equal(t, 360, e.Minutes())
	})

	t.Run("felled mature tree drops wood then acorn", func(t *testing.T) {
		for range 20 {
			e := newFixture(t).engine
			e.player.Inventory = domain.NewSlots(domain.InventorySize)
			e.day = 2
			require.True(t, e.objects.Place(domain.At(5, 5), &domain.Tree{Stage: domain.TreeMature, HP: 1}))

			require.True(t, e.Chop(5, 5))
			inv := e.GetInventorySlots()
			assert.Equal(t, &domain.ItemStack{Item: domain.ItemWood, Qty: 15}, inv[0])
			assert.Equal(t, &domain.ItemStack{Item: domain.ItemAcorn, Qty: 1}, inv[1])
		}
	})

	t.Run("tree from acorn", func(t *testing.T) {
		e := newFixture(t).engine
		assert.False(t, e.PlantTree(2, 2))
		give(t, e, domain.ItemAcorn, 1)
		require.True(t, e.PlantTree(2, 2))
		assert.Equal(t, 0, e.CountItem(domain.ItemAcorn))
		obj, ok := e.GetObject(2, 2)
		require.True(t, ok)
		assert.Equal(t, domain.KindTree, obj.Kind())
	})
}

func TestPlaceAndPickup(t *testing.T) {
	e := newFixture(t).engine

	assert.False(t, e.PlaceSimpleObject(0, 0, domain.KindFence), "no fence held")
	give(t, e, domain.ItemFence, 1)
	assert.False(t, e.PlaceSimpleObject(0, 0, domain.KindChest), "chest is not simple")
	require.True(t, e.PlaceSimpleObject(0, 0, domain.KindFence))
	assert.Equal(t, 0, e.CountItem(domain.ItemFence))
	require.True(t, e.PickupSimpleObject(0, 0))
	assert.Equal(t, 1, e.CountItem(domain.ItemFence))

	give(t, e, domain.ItemChest, 1)
	require.True(t, e.PlaceChest(1, 0))
	assert.Equal(t, domain.ReasonNotAChest, e.PickupChestIfEmpty(0, 0).Reason)
	assert.Nil(t, e.ChestPlace(1, 0, 3, &domain.ItemStack{Item: domain.ItemWood, Qty: 2}))
	assert.Equal(t, domain.ReasonNotEmpty, e.PickupChestIfEmpty(1, 0).Reason)
	require.NotNil(t, e.ChestPickup(1, 0, 3))
	assert.True(t, e.PickupChestIfEmpty(1, 0).OK)
	assert.Equal(t, 1, e.CountItem(domain.ItemChest))
}

func TestShippingBin(t *testing.T) {
	f := newFixture(t)
	e := f.engine
	var shipments []event.ShipmentPayloadV1
	f.bus.Subscribe(event.BinShipped, func(_ context.Context, ev event.Event) error {
		p, err := event.DecodePayload[event.ShipmentPayloadV1](ev.Payload)
		require.NoError(t, err)
		shipments = append(shipments, p)
		return nil
	})
	_, ok := e.GetShippingSlots()
	require.False(t, ok)

	require.True(t, e.PlaceWeed(0, 0))
	c, ok := e.EnsureShippingBin(domain.At(0, 0))
	require.True(t, ok)
	assert.NotEqual(t, domain.At(0, 0), c)
	again, _ := e.EnsureShippingBin(domain.At(5, 5))
	assert.Equal(t, c, again, "only one bin")

	assert.Nil(t, e.ShippingPlace(0, &domain.ItemStack{Item: domain.ItemParsnip, Qty: 2}))
	res := e.SellShippingBin()
	assert.Equal(t, domain.SleepResult{ShippedGold: 70, ItemsSold: 2}, res)
	assert.Equal(t, 570, e.Gold())
	assert.Equal(t, []event.ShipmentPayloadV1{{ShippedGold: 70, ItemsSold: 2}}, shipments)

	assert.Equal(t, domain.SleepResult{}, e.SellShippingBin(), "empty bin")
	assert.Len(t, shipments, 1, "nothing sold, nothing published")
}

func TestEat(t *testing.T) {
	e := newFixture(t).engine
	give(t, e, domain.ItemParsnip, 2)
	e.player.Energy = 200

	require.True(t, e.Eat(domain.ItemParsnip).OK)
	assert.Equal(t, 225, e.Energy())

	e.player.Energy = 260
	require.True(t, e.Eat(domain.ItemParsnip).OK)
	assert.Equal(t, 270, e.Energy())

	assert.Equal(t, domain.ReasonMissingItem, e.Eat(domain.ItemParsnip).Reason)
	assert.Equal(t, domain.ReasonNotEdible, e.Eat(domain.ItemParsnipSeed).Reason)
	assert.Equal(t, domain.ReasonUnknownItem, e.Eat("mystery").Reason)
}

func TestQuestAndVillagers(t *testing.T) {
	e := newFixture(t).engine
	q := e.GetQuest()
	require.Equal(t, domain.ItemStone, q.Item)

	assert.Equal(t, domain.ReasonMissingItem, e.CompleteQuest().Reason)
	give(t, e, domain.ItemStone, q.Qty)
	require.True(t, e.CompleteQuest().OK)
	assert.Equal(t, 500+q.Reward, e.Gold())
	assert.Equal(t, domain.ReasonCompleted, e.CompleteQuest().Reason)

	require.True(t, e.TalkToNpc(domain.NpcTownie).OK)
	assert.Equal(t, domain.ReasonAlreadyTalked, e.TalkToNpc(domain.NpcTownie).Reason)
	assert.Equal(t, domain.ReasonUnknownNpc, e.TalkToNpc("stranger").Reason)

	rels := e.GetRelationships()
	assert.Contains(t, rels, domain.NpcMerchant)
	assert.Equal(t, e.GetRelationship(domain.NpcTownie), rels[domain.NpcTownie])
	assert.Positive(t, rels[domain.NpcTownie].Friendship)
}

func TestActionEvents(t *testing.T) {
	f := newFixture(t)
	var got []event.ActionPayloadV1
	f.bus.Subscribe(event.ActionResolved, func(_ context.Context, ev event.Event) error {
		p, err := event.DecodePayload[event.ActionPayloadV1](ev.Payload)
		require.NoError(t, err)
		got = append(got, p)
		return nil
	})

	f.engine.Hoe(0, 0)
	f.engine.Hoe(0, 0)
	f.engine.Eat("mystery")

	assert.Equal(t, []event.ActionPayloadV1{
		{Action: "hoe", OK: true},
		{Action: "hoe", OK: false},
		{Action: "eat", OK: false, Reason: "unknown_item"},
	}, got)
}

func TestSummary(t *testing.T) {
	e := newFixture(t).engine
	assert.Equal(t, "Spring 1, Year 1 | 6:00 AM | Sunny | 500g | Energy 270/270", e.Summary(language.English))

	e.player.Gold = 1234
	assert.Contains(t, e.Summary(language.English), "| 1,234g |")
}

func TestClockString(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{360, "6:00 AM"},
		{725, "12:05 PM"},
		{1439, "11:59 PM"},
		{1500, "1:00 AM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClockString(tt.minutes))
	}
}
